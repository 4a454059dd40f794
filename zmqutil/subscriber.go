// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/util"
)

const (
	identifierSize = 32
)

// Subscriber - CURVE client side of a PUB socket
type Subscriber struct {
	publicKey  []byte
	privateKey []byte
	address    string
	socket     *zmq.Socket
	timeout    time.Duration
}

// NewSubscriber - create an unconnected subscriber with its own keys
//
// zero timeout blocks on receive
func NewSubscriber(privateKey []byte, publicKey []byte, timeout time.Duration) (*Subscriber, error) {

	if len(publicKey) != publicLength {
		return nil, fault.InvalidPublicKey
	}
	if len(privateKey) != privateLength {
		return nil, fault.InvalidPrivateKey
	}

	s := &Subscriber{
		publicKey:  make([]byte, publicLength),
		privateKey: make([]byte, privateLength),
		timeout:    timeout,
	}
	copy(s.privateKey, privateKey)
	copy(s.publicKey, publicKey)
	return s, nil
}

// Connect - subscribe to everything published at listen
func (s *Subscriber) Connect(listen *util.Listen, serverPublicKey []byte) error {

	if len(serverPublicKey) != publicLength {
		return fault.InvalidPublicKey
	}

	err := s.Close()
	if nil != err {
		return err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return err
	}

	// create a secure random identifier
	randomIdBytes := make([]byte, identifierSize)
	_, err = rand.Read(randomIdBytes)
	if nil != err {
		socket.Close()
		return err
	}

	// set up as client
	err = socket.SetCurveServer(0)
	if nil != err {
		goto failure
	}
	err = socket.SetCurvePublickey(string(s.publicKey))
	if nil != err {
		goto failure
	}
	err = socket.SetCurveSecretkey(string(s.privateKey))
	if nil != err {
		goto failure
	}

	// local identity is a random value
	err = socket.SetIdentity(string(randomIdBytes))
	if nil != err {
		goto failure
	}

	// destination identity is its public key
	err = socket.SetCurveServerkey(string(serverPublicKey))
	if nil != err {
		goto failure
	}

	// zero => do not set timeout
	if 0 != s.timeout {
		err = socket.SetRcvtimeo(s.timeout)
		if nil != err {
			goto failure
		}
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto failure
	}

	// empty prefix => receive everything
	err = socket.SetSubscribe("")
	if nil != err {
		goto failure
	}

	err = socket.SetIpv6(listen.IPv6)
	if nil != err {
		goto failure
	}

	err = socket.Connect(listen.ZMQ())
	if nil != err {
		goto failure
	}

	s.socket = socket
	s.address = listen.ZMQ()
	return nil

failure:
	socket.Close()
	return err
}

// IsConnected - check if connected to a publisher
func (s *Subscriber) IsConnected() bool {
	return "" != s.address
}

// Receive - next multipart message
func (s *Subscriber) Receive() ([][]byte, error) {
	if nil == s.socket {
		return nil, fault.NotConnected
	}
	return s.socket.RecvMessageBytes(0)
}

// Close - disconnect and close the socket
func (s *Subscriber) Close() error {
	if nil == s.socket {
		return nil
	}
	s.socket.Disconnect(s.address)
	err := s.socket.Close()
	s.socket = nil
	s.address = ""
	return err
}

// String - connected address
func (s *Subscriber) String() string {
	return s.address
}
