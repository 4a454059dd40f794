// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/util"
)

// tags prefixed to each packed request so that a signature for one
// operation can never verify as another
const (
	createTag      = 0x01
	updateFieldTag = 0x02
	deleteFieldTag = 0x03
)

// CreateArguments - arguments for Contract.Create
type CreateArguments struct {
	Caller       *account.Account  `json:"caller"`
	Owner        *account.Account  `json:"owner"`
	FieldNames   []string          `json:"fieldNames"`
	FieldValues  []string          `json:"fieldValues"`
	PartyA       string            `json:"partyA"`
	PartyB       string            `json:"partyB"`
	ContractType string            `json:"contractType"`
	Signature    account.Signature `json:"signature"`
}

// CreateReply - result of Contract.Create
type CreateReply struct {
	Id uint64 `json:"id,string"`
}

// UpdateFieldArguments - arguments for Contract.UpdateField
type UpdateFieldArguments struct {
	Caller    *account.Account  `json:"caller"`
	Owner     *account.Account  `json:"owner"`
	Id        uint64            `json:"id,string"`
	Name      string            `json:"name"`
	Value     string            `json:"value"`
	Signature account.Signature `json:"signature"`
}

// UpdateFieldReply - result of Contract.UpdateField
type UpdateFieldReply struct{}

// DeleteFieldArguments - arguments for Contract.DeleteField
type DeleteFieldArguments struct {
	Caller    *account.Account  `json:"caller"`
	Owner     *account.Account  `json:"owner"`
	Id        uint64            `json:"id,string"`
	Name      string            `json:"name"`
	Signature account.Signature `json:"signature"`
}

// DeleteFieldReply - result of Contract.DeleteField
type DeleteFieldReply struct{}

// Pack - the signed form of a create request
func (a *CreateArguments) Pack() []byte {
	buffer := packHeader(createTag, a.Caller, a.Owner)
	buffer = append(buffer, util.ToVarint64(uint64(len(a.FieldNames)))...)
	for _, name := range a.FieldNames {
		buffer = util.AppendBytes(buffer, []byte(name))
	}
	buffer = append(buffer, util.ToVarint64(uint64(len(a.FieldValues)))...)
	for _, value := range a.FieldValues {
		buffer = util.AppendBytes(buffer, []byte(value))
	}
	buffer = util.AppendBytes(buffer, []byte(a.PartyA))
	buffer = util.AppendBytes(buffer, []byte(a.PartyB))
	return util.AppendBytes(buffer, []byte(a.ContractType))
}

// Sign - set the caller and signature from a private key
func (a *CreateArguments) Sign(key *account.PrivateKey) {
	a.Caller = key.Account()
	a.Signature = key.Sign(a.Pack())
}

// Pack - the signed form of an update request
func (a *UpdateFieldArguments) Pack() []byte {
	buffer := packHeader(updateFieldTag, a.Caller, a.Owner)
	buffer = append(buffer, util.ToVarint64(a.Id)...)
	buffer = util.AppendBytes(buffer, []byte(a.Name))
	return util.AppendBytes(buffer, []byte(a.Value))
}

// Sign - set the caller and signature from a private key
func (a *UpdateFieldArguments) Sign(key *account.PrivateKey) {
	a.Caller = key.Account()
	a.Signature = key.Sign(a.Pack())
}

// Pack - the signed form of a delete request
func (a *DeleteFieldArguments) Pack() []byte {
	buffer := packHeader(deleteFieldTag, a.Caller, a.Owner)
	buffer = append(buffer, util.ToVarint64(a.Id)...)
	return util.AppendBytes(buffer, []byte(a.Name))
}

// Sign - set the caller and signature from a private key
func (a *DeleteFieldArguments) Sign(key *account.PrivateKey) {
	a.Caller = key.Account()
	a.Signature = key.Sign(a.Pack())
}

func packHeader(tag byte, caller *account.Account, owner *account.Account) []byte {
	buffer := []byte{tag}
	buffer = util.AppendBytes(buffer, accountBytes(caller))
	return util.AppendBytes(buffer, accountBytes(owner))
}

func accountBytes(a *account.Account) []byte {
	if a.IsZero() {
		return nil
	}
	return a.Bytes()
}

// check the caller signed exactly this request
func verify(caller *account.Account, packed []byte, signature account.Signature) error {
	if nil == caller || nil == caller.AccountInterface {
		return fault.Unauthorized
	}
	if 0 == len(signature) {
		return fault.InvalidSignature
	}
	return caller.CheckSignature(packed, signature)
}
