// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/command/contract-cli/rpccalls"
	"github.com/bitmark-inc/contractd/fault"
)

// returns true if the path is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// HOST:PORT where HOST may be a name or an IP address
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrMissingConnect
	}

	host, port, err := net.SplitHostPort(connect)
	if nil != err {
		return "", err
	}
	if "" == host {
		return "", ErrMissingConnect
	}
	if p, err := strconv.ParseUint(port, 10, 16); nil != err || 0 == p {
		return "", fault.InvalidPortNumber
	}
	return connect, nil
}

func checkOwner(owner string) (*account.Account, error) {
	if "" == owner {
		return nil, ErrMissingOwner
	}
	return account.AccountFromBase58(owner)
}

func checkId(id string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if nil != err || 0 == n {
		return 0, ErrInvalidId
	}
	return n, nil
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrMissingName
	}
	return name, nil
}

// split NAME=VALUE pairs keeping their order
//
// the value may be empty and may contain "="
func checkFields(fields []string) ([]string, []string, error) {
	names := make([]string, 0, len(fields))
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		n := strings.Index(f, "=")
		if n <= 0 {
			return nil, nil, ErrInvalidField
		}
		names = append(names, f[:n])
		values = append(values, f[n+1:])
	}
	return names, values, nil
}

func createData(owner *account.Account, fields []string, partyA string, partyB string, contractType string) (*rpccalls.CreateData, error) {
	names, values, err := checkFields(fields)
	if nil != err {
		return nil, err
	}
	data := &rpccalls.CreateData{
		Owner:        owner,
		FieldNames:   names,
		FieldValues:  values,
		PartyA:       partyA,
		PartyB:       partyB,
		ContractType: contractType,
	}
	return data, nil
}
