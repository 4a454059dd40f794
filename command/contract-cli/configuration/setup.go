// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	Connect string `json:"connect"`
	TestNet bool   `json:"testnet"`
	Account string `json:"account"`
	Data    string `json:"data"`
	Salt    string `json:"salt"`
}

// New - configuration holding a password sealed private key
func New(connect string, privateKey *account.PrivateKey, password string) (*Configuration, error) {

	if "" == connect || nil == privateKey {
		return nil, fault.MissingParameters
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return nil, err
	}

	encrypted, err := encryptData(privateKey.String(), secretKey)
	if nil != err {
		return nil, err
	}

	config := &Configuration{
		Connect: connect,
		TestNet: privateKey.IsTesting(),
		Account: privateKey.Account().String(),
		Data:    encrypted,
		Salt:    salt.String(),
	}
	return config, nil
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	dec := json.NewDecoder(f)
	err = dec.Decode(options)
	if nil != err {
		return nil, err
	}

	return options, nil
}

// AdminAccount - the public account, no password needed
func (config *Configuration) AdminAccount() (*account.Account, error) {
	return account.AccountFromBase58(config.Account)
}

// PrivateKey - decrypt the stored key
func (config *Configuration) PrivateKey(password string) (*account.PrivateKey, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(config.Salt))
	if nil != err || "" == config.Data {
		return nil, fault.InvalidPrivateKey
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	data, err := decryptData(config.Data, key)
	if nil != err {
		return nil, fault.WrongPassword
	}

	privateKey, err := account.PrivateKeyFromBase58(data)
	if nil != err {
		return nil, err
	}

	// the stored account must match the sealed key
	if config.Account != privateKey.Account().String() {
		return nil, fault.InvalidPrivateKey
	}

	return privateKey, nil
}
