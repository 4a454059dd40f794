// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"

	"github.com/bitmark-inc/contractd/fault"
)

// Listen - a validated listen address
type Listen struct {
	Network string // tcp, tcp4 or tcp6
	Address string // suitable for net.Listen
	IPv6    bool
}

// ParseListen - convert "IP:PORT", "[IPv6]:PORT" or "*:PORT" into a
// listen address
//
// "*" is expanded to "[::]" on the assumption that this will listen
// on both tcp4 and tcp6
func ParseListen(listen string) (*Listen, error) {
	host, port, err := net.SplitHostPort(listen)
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	portNumber, err := strconv.Atoi(port)
	if nil != err || portNumber < 1 || portNumber > 65535 {
		return nil, fault.InvalidPortNumber
	}

	if "*" == host {
		return &Listen{
			Network: "tcp",
			Address: net.JoinHostPort("::", port),
			IPv6:    true,
		}, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return nil, fault.InvalidIpAddress
	}

	if nil != ip.To4() {
		return &Listen{
			Network: "tcp4",
			Address: net.JoinHostPort(ip.String(), port),
			IPv6:    false,
		}, nil
	}
	return &Listen{
		Network: "tcp6",
		Address: net.JoinHostPort(ip.String(), port),
		IPv6:    true,
	}, nil
}

// ParseListens - parse a list of listen addresses
func ParseListens(listens []string) ([]*Listen, error) {
	result := make([]*Listen, 0, len(listens))
	for _, l := range listens {
		if "" == l {
			continue
		}
		parsed, err := ParseListen(l)
		if nil != err {
			return nil, err
		}
		result = append(result, parsed)
	}
	return result, nil
}

// ZMQ - the address in the form used by a ZeroMQ bind
func (l *Listen) ZMQ() string {
	return "tcp://" + l.Address
}
