// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/contractd/account"
)

// EventKind - type of change notification
type EventKind int

// the notifications a store emits
const (
	RecordAdded EventKind = iota + 1
	FieldUpdated
	FieldDeleted
)

// String - command name used on the wire
func (k EventKind) String() string {
	switch k {
	case RecordAdded:
		return "recordAdded"
	case FieldUpdated:
		return "fieldUpdated"
	case FieldDeleted:
		return "fieldDeleted"
	default:
		return "unknown"
	}
}

// Event - a committed change
//
// RecordAdded carries Id and Owner
// FieldUpdated carries Id, Name and Value
// FieldDeleted carries Id and Name
type Event struct {
	Kind  EventKind
	Id    uint64
	Owner *account.Account
	Name  string
	Value string
}

// Publisher - receives events in commit order
type Publisher interface {
	Publish(Event)
}

// used when no publisher is given
type nullPublisher struct{}

func (nullPublisher) Publish(Event) {}
