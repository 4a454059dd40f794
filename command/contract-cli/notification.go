// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"

	"github.com/bitmark-inc/contractd/account"
)

// notification - one decoded publisher message
type notification struct {
	Command string           `json:"command"`
	Id      uint64           `json:"id,string"`
	Owner   *account.Account `json:"owner,omitempty"`
	Name    string           `json:"name,omitempty"`
	Value   *string          `json:"value,omitempty"`
}

// frames are: command, 8 byte big endian id, then
//   recordAdded:  owner
//   fieldUpdated: name, value
//   fieldDeleted: name
func decodeNotification(frames [][]byte) (*notification, error) {
	if len(frames) < 2 || 8 != len(frames[1]) {
		return nil, ErrShortNotification
	}

	n := &notification{
		Command: string(frames[0]),
		Id:      binary.BigEndian.Uint64(frames[1]),
	}

	switch n.Command {
	case "recordAdded":
		if len(frames) < 3 {
			return nil, ErrShortNotification
		}
		if 0 != len(frames[2]) {
			owner, err := account.AccountFromBytes(frames[2])
			if nil != err {
				return nil, err
			}
			n.Owner = owner
		}

	case "fieldUpdated":
		if len(frames) < 4 {
			return nil, ErrShortNotification
		}
		n.Name = string(frames[2])
		value := string(frames[3])
		n.Value = &value

	case "fieldDeleted":
		if len(frames) < 3 {
			return nil, ErrShortNotification
		}
		n.Name = string(frames[2])
	}

	return n, nil
}
