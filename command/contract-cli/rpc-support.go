// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/command/contract-cli/rpccalls"
)

// connect to the configured contractd
func newClient(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.config.Connect)
	}
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}

// decrypt the admin key, prompting when no password was given
func adminKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}
	return m.config.PrivateKey(password)
}
