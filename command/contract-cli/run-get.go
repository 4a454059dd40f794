// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c.String("owner"))
	if nil != err {
		return err
	}
	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}
	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetField(owner, id, name)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runFields(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c.String("owner"))
	if nil != err {
		return err
	}
	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAllFields(owner, id)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c.String("owner"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListIds(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
