// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrInvalidKeyOrder           = InvalidError("invalid key order")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidOperation          = InvalidError("invalid operation")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidTreeDescription    = InvalidError("invalid tree description")
	ErrInvalidTreeKind           = InvalidError("invalid tree kind")
	ErrInvariantViolated         = ProcessError("tree invariant violated")
	ErrKeyNotFound               = NotFoundError("key not found")
	ErrMissingKey                = InvalidError("key is required")
	ErrNotFoundConfigurationFile = NotFoundError("configuration file is not found")
	ErrNotFoundScenarioFile      = NotFoundError("scenario file is not found")
	ErrUnexpectedValue           = ProcessError("unexpected value")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { var x ExistsError; return errors.As(e, &x) }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { var x InvalidError; return errors.As(e, &x) }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { var x ProcessError; return errors.As(e, &x) }
