// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/rpc/contract"
)

// CreateData - the new record
type CreateData struct {
	Owner        *account.Account
	FieldNames   []string
	FieldValues  []string
	PartyA       string
	PartyB       string
	ContractType string
}

// Create - add a record, signed by the admin key
func (client *Client) Create(key *account.PrivateKey, data *CreateData) (*contract.CreateReply, error) {

	args := contract.CreateArguments{
		Owner:        data.Owner,
		FieldNames:   data.FieldNames,
		FieldValues:  data.FieldValues,
		PartyA:       data.PartyA,
		PartyB:       data.PartyB,
		ContractType: data.ContractType,
	}
	args.Sign(key)

	client.printJson("Create Request", args)

	var reply contract.CreateReply
	if err := client.client.Call("Contract.Create", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return &reply, nil
}

// UpdateField - set one field, signed by the admin key
func (client *Client) UpdateField(key *account.PrivateKey, owner *account.Account, id uint64, name string, value string) error {

	args := contract.UpdateFieldArguments{
		Owner: owner,
		Id:    id,
		Name:  name,
		Value: value,
	}
	args.Sign(key)

	client.printJson("Update Request", args)

	var reply contract.UpdateFieldReply
	return client.client.Call("Contract.UpdateField", &args, &reply)
}

// DeleteField - remove one field, signed by the admin key
func (client *Client) DeleteField(key *account.PrivateKey, owner *account.Account, id uint64, name string) error {

	args := contract.DeleteFieldArguments{
		Owner: owner,
		Id:    id,
		Name:  name,
	}
	args.Sign(key)

	client.printJson("Delete Request", args)

	var reply contract.DeleteFieldReply
	return client.client.Call("Contract.DeleteField", &args, &reply)
}

// GetField - read one field
func (client *Client) GetField(owner *account.Account, id uint64, name string) (*contract.GetFieldReply, error) {

	args := contract.GetFieldArguments{
		Owner: owner,
		Id:    id,
		Name:  name,
	}

	client.printJson("Get Field Request", args)

	var reply contract.GetFieldReply
	if err := client.client.Call("Contract.GetField", &args, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// GetAllFields - read a whole record
func (client *Client) GetAllFields(owner *account.Account, id uint64) (*contract.GetAllFieldsReply, error) {

	args := contract.GetAllFieldsArguments{
		Owner: owner,
		Id:    id,
	}

	client.printJson("Get All Fields Request", args)

	var reply contract.GetAllFieldsReply
	if err := client.client.Call("Contract.GetAllFields", &args, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// ListIds - record ids of an owner in creation order
func (client *Client) ListIds(owner *account.Account) (*contract.ListIdsReply, error) {

	args := contract.ListIdsArguments{
		Owner: owner,
	}

	client.printJson("List Request", args)

	var reply contract.ListIdsReply
	if err := client.client.Call("Contract.ListIds", &args, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}
