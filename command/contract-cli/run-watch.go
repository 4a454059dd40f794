// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/rpc/node"
	"github.com/bitmark-inc/contractd/util"
	"github.com/bitmark-inc/contractd/zmqutil"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subscribe := c.String("subscribe")
	if "" == subscribe {
		return fault.MissingParameters
	}
	listen, err := util.ParseListen(subscribe)
	if nil != err {
		return err
	}
	count := c.Int("count")

	// the publisher key comes from the daemon
	client, err := newClient(m)
	if nil != err {
		return err
	}
	info, err := client.GetInfo()
	client.Close()
	if nil != err {
		return err
	}
	serverPublicKey, err := publisherKey(info)
	if nil != err {
		return err
	}

	publicKey, privateKey, err := zmqutil.NewKeyPair()
	if nil != err {
		return err
	}

	subscriber, err := zmqutil.NewSubscriber(privateKey, publicKey, 0)
	if nil != err {
		return err
	}
	defer subscriber.Close()

	err = subscriber.Connect(listen, serverPublicKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed: %s\n", subscriber)
	}

	for received := 0; 0 == count || received < count; received += 1 {
		frames, err := subscriber.Receive()
		if nil != err {
			return err
		}

		n, err := decodeNotification(frames)
		if nil != err {
			fmt.Fprintf(m.e, "discard notification: %s\n", err)
			continue
		}

		b, err := json.Marshal(n)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%s\n", b)
	}

	return nil
}

// the curve key notifications are published with
func publisherKey(info *node.InfoReply) ([]byte, error) {
	if "" == info.PublicKey {
		return nil, fault.NotPublishing
	}
	key, err := hex.DecodeString(info.PublicKey)
	if nil != err || 32 != len(key) {
		return nil, fault.InvalidPublicKey
	}
	return key, nil
}
