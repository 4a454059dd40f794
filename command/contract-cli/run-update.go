// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type changeResult struct {
	Id     uint64 `json:"id,string"`
	Name   string `json:"name"`
	Result string `json:"result"`
}

func runUpdate(c *cli.Context) error {

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

	key, err := adminKey(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.UpdateField(key, owner, id, name, c.String("value"))
	if nil != err {
		return err
	}

	return printJson(m.w, changeResult{Id: id, Name: name, Result: "updated"})
}

func runDelete(c *cli.Context) error {

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

	key, err := adminKey(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.DeleteField(key, owner, id, name)
	if nil != err {
		return err
	}

	return printJson(m.w, changeResult{Id: id, Name: name, Result: "deleted"})
}
