// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/record"
	"github.com/bitmark-inc/contractd/rpc/contract"
	"github.com/bitmark-inc/contractd/rpc/fixtures"
	"github.com/bitmark-inc/contractd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func newContract(ctl *gomock.Controller) (*contract.Contract, *mocks.MockStore) {
	s := mocks.NewMockStore(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), s, rate.NewLimiter(1000, 100))
	return c, s
}

func TestContractCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c, s := newContract(ctl)

	admin := fixtures.PrivateKey(1)
	owner := fixtures.PrivateKey(2).Account()

	arg := contract.CreateArguments{
		Owner:        owner,
		FieldNames:   []string{"a", "b"},
		FieldValues:  []string{"1", "2"},
		PartyA:       "alice",
		PartyB:       "bob",
		ContractType: "lease",
	}
	arg.Sign(admin)

	s.EXPECT().Create(arg.Caller, owner, arg.FieldNames, arg.FieldValues, "alice", "bob", "lease").Return(uint64(9), nil).Times(1)

	var reply contract.CreateReply
	err := c.Create(&arg, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, uint64(9), reply.Id, "wrong id")
}

func TestContractCreateStoreError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c, s := newContract(ctl)

	arg := contract.CreateArguments{
		Owner:       fixtures.PrivateKey(2).Account(),
		FieldNames:  []string{"a"},
		FieldValues: []string{},
	}
	arg.Sign(fixtures.PrivateKey(3))

	s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint64(0), fault.Unauthorized).Times(1)

	var reply contract.CreateReply
	err := c.Create(&arg, &reply)
	assert.Equal(t, fault.Unauthorized, err, "wrong error")
	assert.Equal(t, uint64(0), reply.Id, "id set on error")
}

func TestContractCreateBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store calls are expected
	c, _ := newContract(ctl)

	arg := contract.CreateArguments{
		Owner:       fixtures.PrivateKey(2).Account(),
		FieldNames:  []string{"a"},
		FieldValues: []string{"1"},
	}
	arg.Sign(fixtures.PrivateKey(1))

	// altered after signing
	arg.FieldValues = []string{"2"}

	var reply contract.CreateReply
	err := c.Create(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "altered request")

	// signed by someone other than the claimed caller
	arg.Sign(fixtures.PrivateKey(1))
	arg.Caller = fixtures.PrivateKey(4).Account()
	err = c.Create(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong signer")

	arg.Sign(fixtures.PrivateKey(1))
	arg.Signature = nil
	err = c.Create(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "missing signature")

	arg.Caller = nil
	err = c.Create(&arg, &reply)
	assert.Equal(t, fault.Unauthorized, err, "missing caller")
}

func TestContractCreateFieldLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store calls are expected
	c, _ := newContract(ctl)

	arg := contract.CreateArguments{
		Owner: fixtures.PrivateKey(2).Account(),
	}
	for i := 0; i <= contract.MaximumFieldCount; i += 1 {
		arg.FieldNames = append(arg.FieldNames, fmt.Sprintf("f%d", i))
		arg.FieldValues = append(arg.FieldValues, "v")
	}
	arg.Sign(fixtures.PrivateKey(1))

	var reply contract.CreateReply
	err := c.Create(&arg, &reply)
	assert.Equal(t, fault.InvalidCount, err, "too many fields")
}

func TestContractCreateCountsFields(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockStore(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), s, rate.NewLimiter(rate.Every(time.Hour), 10))

	owner := fixtures.PrivateKey(2).Account()

	// record plus twenty fields is more than the burst allows
	arg := contract.CreateArguments{
		Owner: owner,
	}
	for i := 0; i < 20; i += 1 {
		arg.FieldNames = append(arg.FieldNames, fmt.Sprintf("f%d", i))
		arg.FieldValues = append(arg.FieldValues, "v")
	}
	arg.Sign(fixtures.PrivateKey(1))

	var reply contract.CreateReply
	err := c.Create(&arg, &reply)
	assert.Equal(t, fault.RateLimiting, err, "fields not counted")

	// a record without fields costs a single request
	small := contract.CreateArguments{
		Owner: owner,
	}
	small.Sign(fixtures.PrivateKey(1))

	s.EXPECT().Create(small.Caller, owner, gomock.Any(), gomock.Any(), "", "", "").Return(uint64(1), nil).Times(1)

	err = c.Create(&small, &reply)
	assert.Nil(t, err, "single request")
	assert.Equal(t, uint64(1), reply.Id, "wrong id")
}

func TestContractUpdateField(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c, s := newContract(ctl)
	owner := fixtures.PrivateKey(2).Account()

	arg := contract.UpdateFieldArguments{
		Owner: owner,
		Id:    3,
		Name:  "status",
		Value: "",
	}
	arg.Sign(fixtures.PrivateKey(1))

	s.EXPECT().UpdateField(arg.Caller, owner, uint64(3), "status", "").Return(nil).Times(1)

	var reply contract.UpdateFieldReply
	err := c.UpdateField(&arg, &reply)
	assert.Nil(t, err, "wrong UpdateField")

	arg.Id = 4
	err = c.UpdateField(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "altered id")
}

func TestContractDeleteField(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c, s := newContract(ctl)
	owner := fixtures.PrivateKey(2).Account()

	arg := contract.DeleteFieldArguments{
		Owner: owner,
		Id:    3,
		Name:  "status",
	}
	arg.Sign(fixtures.PrivateKey(1))

	s.EXPECT().DeleteField(arg.Caller, owner, uint64(3), "status").Return(fault.FieldNotFound).Times(1)

	var reply contract.DeleteFieldReply
	err := c.DeleteField(&arg, &reply)
	assert.Equal(t, fault.FieldNotFound, err, "wrong DeleteField")
}

// a signature for one operation never verifies as another
func TestPackedRequestsAreDistinct(t *testing.T) {
	owner := fixtures.PrivateKey(2).Account()
	caller := fixtures.PrivateKey(1).Account()

	update := contract.UpdateFieldArguments{Caller: caller, Owner: owner, Id: 1, Name: "x"}
	del := contract.DeleteFieldArguments{Caller: caller, Owner: owner, Id: 1, Name: "x"}
	assert.False(t, bytes.Equal(update.Pack(), del.Pack()), "update and delete pack the same")

	a := contract.CreateArguments{Caller: caller, Owner: owner, FieldNames: []string{"ab"}, FieldValues: []string{"c"}}
	b := contract.CreateArguments{Caller: caller, Owner: owner, FieldNames: []string{"a"}, FieldValues: []string{"bc"}}
	assert.False(t, bytes.Equal(a.Pack(), b.Pack()), "field boundaries lost")
}

func TestContractGetField(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c, s := newContract(ctl)
	owner := fixtures.PrivateKey(2).Account()

	gomock.InOrder(
		s.EXPECT().LookupField(owner, uint64(1), "a").Return("1", true),
		s.EXPECT().LookupField(owner, uint64(1), "z").Return("", false),
	)

	var reply contract.GetFieldReply
	err := c.GetField(&contract.GetFieldArguments{Owner: owner, Id: 1, Name: "a"}, &reply)
	assert.Nil(t, err, "wrong GetField")
	assert.Equal(t, "1", reply.Value, "wrong value")
	assert.True(t, reply.Present, "present")

	reply = contract.GetFieldReply{}
	err = c.GetField(&contract.GetFieldArguments{Owner: owner, Id: 1, Name: "z"}, &reply)
	assert.Nil(t, err, "absent field is not an error")
	assert.Equal(t, "", reply.Value, "absent value")
	assert.False(t, reply.Present, "absent")
}

func TestContractGetAllFields(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c, s := newContract(ctl)
	owner := fixtures.PrivateKey(2).Account()

	expected := record.Contract{
		CreatedAt:    1580000000,
		FieldNames:   []string{"a", "b"},
		FieldValues:  []string{"1", ""},
		PartyA:       "alice",
		PartyB:       "bob",
		ContractType: "lease",
	}
	gomock.InOrder(
		s.EXPECT().GetAllFields(owner, uint64(1)).Return(&expected, nil),
		s.EXPECT().GetAllFields(owner, uint64(2)).Return(nil, fault.RecordNotFound),
	)

	var reply contract.GetAllFieldsReply
	err := c.GetAllFields(&contract.GetAllFieldsArguments{Owner: owner, Id: 1}, &reply)
	assert.Nil(t, err, "wrong GetAllFields")
	assert.Equal(t, expected, reply.Contract, "wrong contract")

	err = c.GetAllFields(&contract.GetAllFieldsArguments{Owner: owner, Id: 2}, &reply)
	assert.Equal(t, fault.RecordNotFound, err, "wrong error")
}

func TestContractListIds(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c, s := newContract(ctl)
	owner := fixtures.PrivateKey(2).Account()
	other := fixtures.PrivateKey(5).Account()

	gomock.InOrder(
		s.EXPECT().ListIds(owner).Return([]uint64{1, 4, 7}),
		s.EXPECT().ListIds(other).Return(nil),
	)

	var reply contract.ListIdsReply
	err := c.ListIds(&contract.ListIdsArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "wrong ListIds")
	assert.Equal(t, []uint64{1, 4, 7}, reply.Ids, "wrong ids")

	err = c.ListIds(&contract.ListIdsArguments{Owner: other}, &reply)
	assert.Nil(t, err, "wrong ListIds")
	assert.Equal(t, []uint64{}, reply.Ids, "empty list")
}
