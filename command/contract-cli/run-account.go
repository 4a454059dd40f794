// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type accountResult struct {
	Account string `json:"account"`
	TestNet bool   `json:"testnet"`
	Connect string `json:"connect"`
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	acc, err := m.config.AdminAccount()
	if nil != err {
		return err
	}

	return printJson(m.w, accountResult{
		Account: acc.String(),
		TestNet: acc.IsTesting(),
		Connect: m.config.Connect,
	})
}
