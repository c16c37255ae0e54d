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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailure        = ProcessError("node allocation failed")
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCancelled                = ProcessError("cancelled")
	ErrConfigurationNotTable    = InvalidError("configuration must return a table")
	ErrHeightMismatch           = InvalidError("stored height does not match subtrees")
	ErrInvalidDataDirectory     = InvalidError("invalid data directory")
	ErrInvalidFiller            = InvalidError("filler must be a single printable character")
	ErrInvalidLabelMode         = InvalidError("invalid label mode")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidRebuildRate       = InvalidError("rebuild rate must be positive")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidValue             = InvalidError("invalid value")
	ErrInvariantViolation       = InvalidError("tree invariant violation")
	ErrLabelTooWide             = LengthError("label too wide for its slot")
	ErrMissingConfigurationFile = InvalidError("configuration file is required")
	ErrMissingOutputFile        = InvalidError("output file is required")
	ErrMissingValuesFile        = InvalidError("values file is required")
	ErrNotFoundConfigFile       = NotFoundError("config file is not found")
	ErrNotFoundValuesFile       = NotFoundError("values file is not found")
	ErrOrderViolation           = InvalidError("search order violated")
	ErrRateLimiting             = ProcessError("rate limiting")
	ErrTreeTooTall              = LengthError("tree too tall to render")
	ErrUnbalanced               = InvalidError("balance factor out of range")
	ErrValueOutOfRange          = InvalidError("value out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
