// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - per-owner contract records with a dynamic field schema
//
// every record is addressed by (owner, id), where id comes from a
// single counter shared by all owners; a record carries its creation
// time, two party strings, a contract type and an ordered set of
// named string fields
//
// only the admin account given to New may create records or change
// fields; reads are open to everyone
//
// all operations on a Store are serialised by its mutex and each
// mutation is committed as a single storage transaction
package record
