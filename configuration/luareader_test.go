// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/contractd/configuration"
	"github.com/bitmark-inc/contractd/fault"
)

type database struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type sample struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Admin         string            `gluamapper:"admin"`
	Listen        []string          `gluamapper:"listen"`
	Rate          float64           `gluamapper:"request_rate"`
	Database      database          `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
}

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.admin = "e" .. "opaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2"
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.request_rate = 12.5

M.database = {
    name = "contractd.leveldb",
}

M.levels = {
    main = "info",
    DEFAULT = "critical",
}

return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "contractd.conf", sampleConfiguration)

	c := sample{
		Database: database{
			Directory: "data",
			Name:      "default.leveldb",
		},
	}
	err = configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "parse")

	assert.Equal(t, ".", c.DataDirectory, "data directory")
	assert.Equal(t, "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2", c.Admin, "admin")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen, "listen")
	assert.Equal(t, 12.5, c.Rate, "rate")
	assert.Equal(t, "data", c.Database.Directory, "default kept")
	assert.Equal(t, "contractd.leveldb", c.Database.Name, "name")
	assert.Equal(t, "info", c.Levels["main"], "level")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	good := writeFile(t, dir, "good.conf", sampleConfiguration)

	var c sample
	err = configuration.ParseConfigurationFile(good, c)
	assert.Equal(t, fault.ConfigurationNotStruct, err, "non-pointer")

	n := 5
	err = configuration.ParseConfigurationFile(good, &n)
	assert.Equal(t, fault.ConfigurationNotStruct, err, "pointer to int")

	noTable := writeFile(t, dir, "number.conf", "return 42\n")
	err = configuration.ParseConfigurationFile(noTable, &c)
	assert.Equal(t, fault.ConfigurationNotTable, err, "no table")

	broken := writeFile(t, dir, "broken.conf", "return {\n")
	err = configuration.ParseConfigurationFile(broken, &c)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &c)
	assert.NotNil(t, err, "missing file")
}
