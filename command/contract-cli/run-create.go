// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c.String("owner"))
	if nil != err {
		return err
	}

	data, err := createData(owner, c.StringSlice("field"), c.String("party-a"), c.String("party-b"), c.String("type"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "fields: %d\n", len(data.FieldNames))
	}

	key, err := adminKey(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Create(key, data)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
