// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// errors are grouped into classes so that callers can decide how to
// report them without knowing every individual instance:
//
//   PermissionError - caller is not allowed to perform the operation
//   InvalidError    - malformed or out of range arguments
//   NotFoundError   - lookup target does not exist
//   ExistsError     - item already present
//   ProcessError    - internal processing failure
package fault
