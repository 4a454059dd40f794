// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - atomic group of pool writes
//
// reads through the transaction see its own pending writes, nothing
// reaches the database until Commit
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

// TransactionData - transaction over one data access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start a transaction
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - queue a key/value write
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.access.Put(handle.prefixKey(key), value)
}

// PutN - queue a big endian uint64 write
func (t *TransactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(handle.prefixKey(key), buffer)
}

// Delete - queue a delete
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	t.access.Delete(handle.prefixKey(key))
}

// Get - read including pending writes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// GetN - read uint64 including pending writes
func (t *TransactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

// Has - check including pending writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// InUse - transaction has begun
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Commit - write all pending data
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard all pending data
func (t *TransactionData) Abort() {
	t.access.Abort()
}
