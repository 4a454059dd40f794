// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/util"
)

// fixed attributes of a record
type header struct {
	createdAt    uint64
	partyA       string
	partyB       string
	contractType string
}

// createdAt(varint) ++ partyA ++ partyB ++ contractType
func (h *header) pack() []byte {
	buffer := util.ToVarint64(h.createdAt)
	buffer = util.AppendBytes(buffer, []byte(h.partyA))
	buffer = util.AppendBytes(buffer, []byte(h.partyB))
	return util.AppendBytes(buffer, []byte(h.contractType))
}

func unpackHeader(buffer []byte) (*header, error) {
	createdAt, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.RecordTruncated
	}

	strings := [3]string{}
	for i := range strings {
		s, l := util.FromBytes(buffer[n:])
		if 0 == l {
			return nil, fault.RecordTruncated
		}
		strings[i] = string(s)
		n += l
	}
	if n != len(buffer) {
		return nil, fault.RecordTruncated
	}

	h := &header{
		createdAt:    createdAt,
		partyA:       strings[0],
		partyB:       strings[1],
		contractType: strings[2],
	}
	return h, nil
}

// count(varint) ++ [ name ++ value ]
func packFields(f *Fields) []byte {
	buffer := util.ToVarint64(uint64(f.Len()))
	for _, e := range f.list {
		buffer = util.AppendBytes(buffer, []byte(e.Name))
		buffer = util.AppendBytes(buffer, []byte(e.Value))
	}
	return buffer
}

func unpackFields(buffer []byte) (*Fields, error) {
	count, n := util.FromVarint64(buffer)
	if 0 == n || count > uint64(len(buffer)) {
		return nil, fault.RecordTruncated
	}

	f := NewFields()
	for i := uint64(0); i < count; i += 1 {
		name, l := util.FromBytes(buffer[n:])
		if 0 == l {
			return nil, fault.RecordTruncated
		}
		n += l
		value, l := util.FromBytes(buffer[n:])
		if 0 == l {
			return nil, fault.RecordTruncated
		}
		n += l
		f.Set(string(name), string(value))
	}
	if n != len(buffer) {
		return nil, fault.RecordTruncated
	}
	return f, nil
}

// owner ++ id
func recordKey(owner []byte, id uint64) []byte {
	return appendUint64(owner, id)
}

// owner ++ count
func listKey(owner []byte, count uint64) []byte {
	return appendUint64(owner, count)
}

func appendUint64(prefix []byte, n uint64) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], n)
	return key
}

func uint64Bytes(n uint64) []byte {
	return appendUint64(nil, n)
}
