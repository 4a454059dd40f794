// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"encoding/binary"

	"github.com/bitmark-inc/contractd/record"
)

// Publisher - forward record events onto a queue
//
// parameters: id(8 byte big endian) ++ owner | name ++ value | name
type Publisher struct {
	Queue *BusQueue
}

// NewPublisher - publisher writing to the events queue
func NewPublisher() *Publisher {
	return &Publisher{
		Queue: Bus.Events,
	}
}

// Publish - queue one event
func (p *Publisher) Publish(e record.Event) {
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, e.Id)

	switch e.Kind {
	case record.RecordAdded:
		owner := []byte(nil)
		if nil != e.Owner && nil != e.Owner.AccountInterface {
			owner = e.Owner.Bytes()
		}
		p.Queue.Send(e.Kind.String(), id, owner)
	case record.FieldUpdated:
		p.Queue.Send(e.Kind.String(), id, []byte(e.Name), []byte(e.Value))
	case record.FieldDeleted:
		p.Queue.Send(e.Kind.String(), id, []byte(e.Name))
	}
}
