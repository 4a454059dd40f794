// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AdminMismatch             = PermissionError("admin account differs from the database admin")
	AlreadyInitialised        = ExistsError("already initialised")
	CannotDecodeAccount       = InvalidError("cannot decode account")
	CertificateFileExists     = ExistsError("certificate file already exists")
	CertificateNotFound       = NotFoundError("certificate file not found")
	ChecksumMismatch          = ProcessError("checksum mismatch")
	ConfigurationFileNotFound = NotFoundError("configuration file not found")
	ConfigurationNotStruct    = InvalidError("configuration is not a struct pointer")
	ConfigurationNotTable     = InvalidError("configuration did not return a table")
	CryptoFailed              = ProcessError("encryption failed")
	DatabaseVersionTooNew     = ProcessError("database version is newer than this program")
	DuplicateFieldName        = InvalidError("duplicate field name")
	EmptyFieldName            = InvalidError("empty field name")
	FieldCountMismatch        = InvalidError("field names and values differ in length")
	FieldNotFound             = NotFoundError("field not found")
	IdentityNotFound          = NotFoundError("identity not found")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidId                 = InvalidError("invalid record id")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidKeyLength          = InvalidError("invalid key length")
	InvalidKeyType            = InvalidError("invalid key type")
	InvalidLoggerChannel      = ProcessError("invalid logger channel")
	InvalidOwner              = InvalidError("invalid owner")
	InvalidPortNumber         = InvalidError("invalid port number")
	InvalidPrivateKey         = InvalidError("invalid private key")
	InvalidPrivateKeyFile     = InvalidError("invalid private key file")
	InvalidPublicKey          = InvalidError("invalid public key")
	InvalidPublicKeyFile      = InvalidError("invalid public key file")
	InvalidSignature          = PermissionError("invalid signature")
	KeyFileAlreadyExists      = ExistsError("key file already exists")
	KeyFileNotFound           = NotFoundError("key file not found")
	MissingParameters         = InvalidError("missing parameters")
	NotConnected              = ProcessError("not connected")
	NotInitialised            = NotFoundError("not initialised")
	NotPublicKey              = InvalidError("not a public key")
	NotPublishing             = NotFoundError("notifications are not published")
	OwnerNotFound             = NotFoundError("owner has no records")
	RateLimiting              = InvalidError("rate limiting")
	RecordNotFound            = NotFoundError("record not found")
	RecordTruncated           = ProcessError("record is truncated")
	StorageNotInitialised     = ProcessError("storage not initialised")
	TransactionAlreadyInUse   = ProcessError("transaction already in use")
	TransactionNotInUse       = ProcessError("transaction not in use")
	Unauthorized              = PermissionError("unauthorized")
	UnmarshalTextFailed       = InvalidError("unmarshal text failed")
	WrongPassword             = InvalidError("wrong password")
	ZeroAdmin                 = InvalidError("admin account is not set")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
