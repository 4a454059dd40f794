// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/record"
	"github.com/bitmark-inc/contractd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// MaximumFieldCount - largest field list accepted by a single create
//
// a create costs one token per field plus one, so the request burst
// must exceed this
const MaximumFieldCount = 64

// Store - the record store operations served over RPC
type Store interface {
	Create(caller *account.Account, owner *account.Account, fieldNames []string, fieldValues []string, partyA string, partyB string, contractType string) (uint64, error)
	UpdateField(caller *account.Account, owner *account.Account, id uint64, name string, value string) error
	DeleteField(caller *account.Account, owner *account.Account, id uint64, name string) error
	LookupField(owner *account.Account, id uint64, name string) (string, bool)
	GetAllFields(owner *account.Account, id uint64) (*record.Contract, error)
	ListIds(owner *account.Account) []uint64
}

// Contract - type for the RPC
type Contract struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Store   Store
}

// New - create the contract handlers
func New(log *logger.L, store Store, limiter *rate.Limiter) *Contract {
	return &Contract{
		Log:     log,
		Limiter: limiter,
		Store:   store,
	}
}

// Create - add a record for an owner, admin only
func (c *Contract) Create(arguments *CreateArguments, reply *CreateReply) error {

	// the record and each of its fields count as one request
	count := 1 + len(arguments.FieldNames)
	if err := ratelimit.LimitN(c.Limiter, count, 1+MaximumFieldCount); nil != err {
		return err
	}

	log := c.Log
	log.Infof("Contract.Create: owner: %s  fields: %d", arguments.Owner, len(arguments.FieldNames))

	if err := verify(arguments.Caller, arguments.Pack(), arguments.Signature); nil != err {
		log.Warnf("Contract.Create: caller: %s  error: %s", arguments.Caller, err)
		return err
	}

	id, err := c.Store.Create(
		arguments.Caller,
		arguments.Owner,
		arguments.FieldNames,
		arguments.FieldValues,
		arguments.PartyA,
		arguments.PartyB,
		arguments.ContractType,
	)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// UpdateField - set one field of a record, admin only
func (c *Contract) UpdateField(arguments *UpdateFieldArguments, reply *UpdateFieldReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log
	log.Infof("Contract.UpdateField: owner: %s  id: %d  name: %q", arguments.Owner, arguments.Id, arguments.Name)

	if err := verify(arguments.Caller, arguments.Pack(), arguments.Signature); nil != err {
		log.Warnf("Contract.UpdateField: caller: %s  error: %s", arguments.Caller, err)
		return err
	}

	return c.Store.UpdateField(arguments.Caller, arguments.Owner, arguments.Id, arguments.Name, arguments.Value)
}

// DeleteField - remove one field of a record, admin only
func (c *Contract) DeleteField(arguments *DeleteFieldArguments, reply *DeleteFieldReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log
	log.Infof("Contract.DeleteField: owner: %s  id: %d  name: %q", arguments.Owner, arguments.Id, arguments.Name)

	if err := verify(arguments.Caller, arguments.Pack(), arguments.Signature); nil != err {
		log.Warnf("Contract.DeleteField: caller: %s  error: %s", arguments.Caller, err)
		return err
	}

	return c.Store.DeleteField(arguments.Caller, arguments.Owner, arguments.Id, arguments.Name)
}

// ---

// GetFieldArguments - arguments for Contract.GetField
type GetFieldArguments struct {
	Owner *account.Account `json:"owner"`
	Id    uint64           `json:"id,string"`
	Name  string           `json:"name"`
}

// GetFieldReply - value is empty when the field is absent
type GetFieldReply struct {
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// GetField - read one field
func (c *Contract) GetField(arguments *GetFieldArguments, reply *GetFieldReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Debugf("Contract.GetField: owner: %s  id: %d  name: %q", arguments.Owner, arguments.Id, arguments.Name)

	reply.Value, reply.Present = c.Store.LookupField(arguments.Owner, arguments.Id, arguments.Name)
	return nil
}

// GetAllFieldsArguments - arguments for Contract.GetAllFields
type GetAllFieldsArguments struct {
	Owner *account.Account `json:"owner"`
	Id    uint64           `json:"id,string"`
}

// GetAllFieldsReply - the whole record
type GetAllFieldsReply struct {
	record.Contract
}

// GetAllFields - read a whole record
func (c *Contract) GetAllFields(arguments *GetAllFieldsArguments, reply *GetAllFieldsReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Debugf("Contract.GetAllFields: owner: %s  id: %d", arguments.Owner, arguments.Id)

	contract, err := c.Store.GetAllFields(arguments.Owner, arguments.Id)
	if nil != err {
		return err
	}
	reply.Contract = *contract
	return nil
}

// ListIdsArguments - arguments for Contract.ListIds
type ListIdsArguments struct {
	Owner *account.Account `json:"owner"`
}

// ListIdsReply - ids in creation order
type ListIdsReply struct {
	Ids []uint64 `json:"ids"`
}

// ListIds - all record ids of an owner
func (c *Contract) ListIds(arguments *ListIdsArguments, reply *ListIdsReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Debugf("Contract.ListIds: owner: %s", arguments.Owner)

	reply.Ids = c.Store.ListIds(arguments.Owner)
	if nil == reply.Ids {
		reply.Ids = []uint64{}
	}
	return nil
}
