// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for contractd
//
// the admin private key is kept in a JSON file sealed with a password,
// e.g. to set up and create a record:
//
//   contract-cli --config=admin.json setup --connect=127.0.0.1:2130 --testnet
//   contract-cli --config=admin.json create --owner=ACCOUNT --field=name=value --party-a=A --party-b=B --type=T
package main
