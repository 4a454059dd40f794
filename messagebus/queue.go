// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"reflect"
	"strconv"
)

// Message - a command and its binary parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BusQueue - a buffered ordered queue
type BusQueue struct {
	c chan Message
}

// the exported queues
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type busses struct {
	Events    *BusQueue `size:"1000"`
	TestQueue *BusQueue `size:"50"`
}

// Bus - the set of queues
var Bus busses

// create all queues
func init() {
	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {
		fieldInfo := busType.Field(i)

		size, err := strconv.Atoi(fieldInfo.Tag.Get("size"))
		if nil != err || size <= 0 {
			panic("messagebus: invalid size for: " + fieldInfo.Name)
		}

		q := &BusQueue{
			c: make(chan Message, size),
		}
		busValue.Field(i).Set(reflect.ValueOf(q))
	}
}

// Send - queue a message, blocks while the queue is full
func (queue *BusQueue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from
func (queue *BusQueue) Chan() <-chan Message {
	return queue.c
}

// Len - number of queued messages
func (queue *BusQueue) Len() int {
	return len(queue.c)
}
