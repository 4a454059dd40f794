// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/command/contract-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect, err := checkConnect(c.String("connect"))
	if err != nil {
		return err
	}

	var privateKey *account.PrivateKey
	if k := c.String("private-key"); "" != k {
		privateKey, err = account.PrivateKeyFromBase58(k)
	} else {
		privateKey, err = account.NewPrivateKey(c.Bool("testnet"), nil)
	}
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", privateKey.IsTesting())
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "account: %s\n", privateKey.Account())
	}

	// Create the folder hierarchy for configuration if not existing
	configDir := filepath.Dir(m.file)
	d, err := checkFileExists(configDir)
	if err != nil {
		if err := os.MkdirAll(configDir, 0750); err != nil {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if err != nil {
			return err
		}
	} else if err := checkPassword(password); nil != err {
		return err
	}

	config, err := configuration.New(connect, privateKey, password)
	if err != nil {
		return err
	}

	m.config = config
	m.save = true

	// the account must be given to contractd as its admin
	fmt.Fprintf(m.w, "admin: %s\n", config.Account)

	return nil
}
