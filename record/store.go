// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/storage"
	"github.com/bitmark-inc/logger"
)

// keys in the meta pool
var (
	nextIdKey = []byte("next-id")
	adminKey  = []byte("admin")
)

// Handles - the storage pools a store works on
type Handles struct {
	Meta           *storage.PoolHandle
	OwnerNextCount *storage.PoolHandle
	OwnerList      *storage.PoolHandle
	Records        *storage.PoolHandle
	Fields         *storage.PoolHandle
	NewTransaction func() (storage.Transaction, error)
}

// DefaultHandles - the pools of the initialised storage package
func DefaultHandles() Handles {
	return Handles{
		Meta:           storage.Pool.Meta,
		OwnerNextCount: storage.Pool.OwnerNextCount,
		OwnerList:      storage.Pool.OwnerList,
		Records:        storage.Pool.Records,
		Fields:         storage.Pool.Fields,
		NewTransaction: storage.NewDBTransaction,
	}
}

// Contract - everything stored for one record
type Contract struct {
	CreatedAt    uint64   `json:"createdAt,string"`
	FieldNames   []string `json:"fieldNames"`
	FieldValues  []string `json:"fieldValues"`
	PartyA       string   `json:"partyA"`
	PartyB       string   `json:"partyB"`
	ContractType string   `json:"contractType"`
}

// Store - the record store
type Store struct {
	lock sync.Mutex

	log       *logger.L
	admin     *account.Account
	handles   Handles
	publisher Publisher
	clock     func() time.Time
}

// New - open a store for the given admin
//
// the first admin is saved with the data and any later store opened
// on the same data must use the same admin
func New(admin *account.Account, handles Handles, publisher Publisher, clock func() time.Time) (*Store, error) {
	if admin.IsZero() {
		return nil, fault.ZeroAdmin
	}
	if nil == handles.Meta || nil == handles.OwnerNextCount || nil == handles.OwnerList ||
		nil == handles.Records || nil == handles.Fields || nil == handles.NewTransaction {
		return nil, fault.StorageNotInitialised
	}
	if nil == publisher {
		publisher = nullPublisher{}
	}
	if nil == clock {
		clock = time.Now
	}

	s := &Store{
		log:       logger.New("record"),
		admin:     admin,
		handles:   handles,
		publisher: publisher,
		clock:     clock,
	}

	adminBytes := handles.Meta.Get(adminKey)
	if nil != adminBytes {
		saved, err := account.AccountFromBytes(adminBytes)
		if nil != err {
			s.log.Criticalf("stored admin: %x  error: %s", adminBytes, err)
			return nil, err
		}
		if !saved.Equal(admin) {
			s.log.Errorf("admin: %s  does not match stored admin: %s", admin, saved)
			return nil, fault.AdminMismatch
		}
		s.log.Infof("admin: %s  next id: %d", admin, s.nextId())
		return s, nil
	}

	trx, err := handles.NewTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(handles.Meta, adminKey, admin.Bytes())
	if !trx.Has(handles.Meta, nextIdKey) {
		trx.PutN(handles.Meta, nextIdKey, 1)
	}
	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	s.log.Infof("initialised with admin: %s", admin)
	return s, nil
}

// Admin - the account allowed to modify records
func (s *Store) Admin() *account.Account {
	return s.admin
}

// NextId - the id the next created record will receive
func (s *Store) NextId() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.nextId()
}

// caller must hold the lock
func (s *Store) nextId() uint64 {
	n, found := s.handles.Meta.GetN(nextIdKey)
	if !found {
		return 1
	}
	return n
}

// Create - add a new record for owner and return its id
func (s *Store) Create(caller *account.Account, owner *account.Account, fieldNames []string, fieldValues []string, partyA string, partyB string, contractType string) (uint64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.admin.Equal(caller) {
		return 0, fault.Unauthorized
	}
	if owner.IsZero() {
		return 0, fault.InvalidOwner
	}
	if len(fieldNames) != len(fieldValues) {
		return 0, fault.FieldCountMismatch
	}

	fields := NewFields()
	for i, name := range fieldNames {
		if "" == name {
			return 0, fault.EmptyFieldName
		}
		if !fields.Set(name, fieldValues[i]) {
			return 0, fault.DuplicateFieldName
		}
	}

	createdAt := s.clock().Unix()
	if createdAt <= 0 {
		createdAt = 1 // zero marks a missing record
	}
	h := header{
		createdAt:    uint64(createdAt),
		partyA:       partyA,
		partyB:       partyB,
		contractType: contractType,
	}

	trx, err := s.handles.NewTransaction()
	if nil != err {
		return 0, err
	}

	id, found := trx.GetN(s.handles.Meta, nextIdKey)
	if !found {
		id = 1
	}
	trx.PutN(s.handles.Meta, nextIdKey, id+1)

	ownerKey := owner.Bytes()
	count, _ := trx.GetN(s.handles.OwnerNextCount, ownerKey)
	trx.PutN(s.handles.OwnerNextCount, ownerKey, count+1)
	trx.Put(s.handles.OwnerList, listKey(ownerKey, count), uint64Bytes(id))

	key := recordKey(ownerKey, id)
	trx.Put(s.handles.Records, key, h.pack())
	trx.Put(s.handles.Fields, key, packFields(fields))

	err = trx.Commit()
	if nil != err {
		s.log.Errorf("create: owner: %s  id: %d  error: %s", owner, id, err)
		return 0, err
	}

	s.log.Infof("created: owner: %s  id: %d  fields: %d", owner, id, fields.Len())

	s.publisher.Publish(Event{
		Kind:  RecordAdded,
		Id:    id,
		Owner: owner,
	})
	return id, nil
}

// UpdateField - set a field, appending the name if it is new
func (s *Store) UpdateField(caller *account.Account, owner *account.Account, id uint64, name string, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.admin.Equal(caller) {
		return fault.Unauthorized
	}
	if 0 == id || id >= s.nextId() {
		return fault.InvalidId
	}
	if "" == name {
		return fault.EmptyFieldName
	}

	key, fields, err := s.loadFields(owner, id)
	if nil != err {
		return err
	}
	fields.Set(name, value)

	err = s.saveFields(key, fields)
	if nil != err {
		s.log.Errorf("update: owner: %s  id: %d  error: %s", owner, id, err)
		return err
	}

	s.log.Debugf("updated: owner: %s  id: %d  name: %q", owner, id, name)

	s.publisher.Publish(Event{
		Kind:  FieldUpdated,
		Id:    id,
		Name:  name,
		Value: value,
	})
	return nil
}

// DeleteField - remove a field that is present
func (s *Store) DeleteField(caller *account.Account, owner *account.Account, id uint64, name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.admin.Equal(caller) {
		return fault.Unauthorized
	}
	if 0 == id || id >= s.nextId() {
		return fault.InvalidId
	}

	key, fields, err := s.loadFields(owner, id)
	if nil != err {
		return err
	}
	if !fields.Delete(name) {
		return fault.FieldNotFound
	}

	err = s.saveFields(key, fields)
	if nil != err {
		s.log.Errorf("delete: owner: %s  id: %d  error: %s", owner, id, err)
		return err
	}

	s.log.Debugf("deleted: owner: %s  id: %d  name: %q", owner, id, name)

	s.publisher.Publish(Event{
		Kind: FieldDeleted,
		Id:   id,
		Name: name,
	})
	return nil
}

// GetField - value of a field, empty if the record or field is missing
func (s *Store) GetField(owner *account.Account, id uint64, name string) string {
	value, _ := s.LookupField(owner, id, name)
	return value
}

// LookupField - value of a field and whether it is present
func (s *Store) LookupField(owner *account.Account, id uint64, name string) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, fields, err := s.loadFields(owner, id)
	if nil != err {
		return "", false
	}
	return fields.Get(name)
}

// GetAllFields - the complete record
func (s *Store) GetAllFields(owner *account.Account, id uint64) (*Contract, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if owner.IsZero() || !s.handles.OwnerNextCount.Has(owner.Bytes()) {
		return nil, fault.OwnerNotFound
	}

	key := recordKey(owner.Bytes(), id)
	packed := s.handles.Records.Get(key)
	if nil == packed {
		return nil, fault.RecordNotFound
	}
	h, err := unpackHeader(packed)
	fault.PanicIfError("record: header", err)
	if 0 == h.createdAt {
		return nil, fault.RecordNotFound
	}

	fields := s.readFields(key)
	c := &Contract{
		CreatedAt:    h.createdAt,
		FieldNames:   fields.Names(),
		FieldValues:  fields.Values(),
		PartyA:       h.partyA,
		PartyB:       h.partyB,
		ContractType: h.contractType,
	}
	return c, nil
}

// ListIds - ids created for owner in creation order
func (s *Store) ListIds(owner *account.Account) []uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	ids := make([]uint64, 0, 16)
	if owner.IsZero() {
		return ids
	}

	cursor := s.handles.OwnerList.NewPrefixCursor(owner.Bytes())
	err := cursor.Map(func(key []byte, value []byte) error {
		if 8 != len(value) {
			return fault.RecordTruncated
		}
		ids = append(ids, binary.BigEndian.Uint64(value))
		return nil
	})
	fault.PanicIfError("record: list ids", err)
	return ids
}

// ListIdsFrom - at most count ids of owner starting from a creation position
//
// positions start at zero; returns the ids and the position to continue from
func (s *Store) ListIdsFrom(owner *account.Account, start uint64, count int) ([]uint64, uint64, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	ids := make([]uint64, 0, count)
	if owner.IsZero() {
		return ids, start, nil
	}

	ownerKey := owner.Bytes()
	cursor := s.handles.OwnerList.NewPrefixCursor(ownerKey).Seek(listKey(ownerKey, start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}
	for _, e := range elements {
		if 8 != len(e.Value) {
			fault.Criticalf("record: list entry truncated for: %x", e.Key)
			fault.Panic("record: list entry truncated")
		}
		ids = append(ids, binary.BigEndian.Uint64(e.Value))
	}
	return ids, start + uint64(len(elements)), nil
}

// fetch the field set of an existing record
func (s *Store) loadFields(owner *account.Account, id uint64) ([]byte, *Fields, error) {
	if owner.IsZero() {
		return nil, nil, fault.RecordNotFound
	}
	key := recordKey(owner.Bytes(), id)
	if !s.handles.Records.Has(key) {
		return nil, nil, fault.RecordNotFound
	}
	return key, s.readFields(key), nil
}

func (s *Store) readFields(key []byte) *Fields {
	packed := s.handles.Fields.Get(key)
	if nil == packed {
		fault.Criticalf("record: fields missing for: %x", key)
		fault.Panic("record: fields missing")
	}
	fields, err := unpackFields(packed)
	fault.PanicIfError("record: fields", err)
	return fields
}

func (s *Store) saveFields(key []byte, fields *Fields) error {
	trx, err := s.handles.NewTransaction()
	if nil != err {
		return err
	}
	trx.Put(s.handles.Fields, key, packFields(fields))
	return trx.Commit()
}
