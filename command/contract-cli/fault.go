// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/contractd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidField          = fault.InvalidError("field must be NAME=VALUE")
	ErrInvalidId             = fault.InvalidError("invalid record id")
	ErrInvalidPasswordLength = fault.InvalidError("password must be at least 8 characters")
	ErrMissingConnect        = fault.InvalidError("connect HOST:PORT is required")
	ErrMissingName           = fault.InvalidError("field name is required")
	ErrMissingOwner          = fault.InvalidError("owner account is required")
	ErrPasswordMismatch      = fault.InvalidError("passwords do not match")
	ErrShortNotification     = fault.InvalidError("notification has too few frames")
)
