// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = record id as big endian uint64 (8 bytes)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. owner        = account bytes (key variant ++ 32 byte public key)
// 6. *others*     = byte values of various length
//
// Metadata:
//
//   M ++ "next-id"             - next record id to allocate
//                                data: id
//   M ++ "admin"               - account allowed to modify records
//                                data: owner
//
// Ownership:
//
//   N ++ owner                 - next count value to use for appending to owned ids
//                                data: count
//   L ++ owner ++ count        - list of owned ids in creation order
//                                data: id
//
// Records:
//
//   R ++ owner ++ id           - fixed record attributes
//                                data: createdAt(varint) ++ partyA ++ partyB ++ contractType
//                                      (strings are varint length ++ bytes)
//   F ++ owner ++ id           - ordered field list
//                                data: count(varint) ++ [ name ++ value ]
package storage
