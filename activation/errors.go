// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"fmt"
	"strings"

	"github.com/born-ml/actbind/internal/convention"
	"github.com/pkg/errors"
)

// Errors wrapped by the typed errors below, for use with errors.Is.
var (
	ErrLookup          = errors.New("no native activation for model key")
	ErrWrongInputType  = errors.New("wrong input type")
	ErrNoQuantizer     = errors.New("no quantizer in activation")
	ErrQuantizerExists = errors.New("quantizer already exists in activation")
	ErrUnknownOption   = convention.ErrUnknownName
)

// UnknownOptionError reports an option name the activation kind doesn't recognize.
type UnknownOptionError = convention.UnknownNameError

// LookupError reports a composite key missing from a kind's constructor table.
type LookupError struct {
	Kind      string   // Activation kind, e.g. "Tanh".
	Key       string   // The composite key that was looked up.
	Supported []string // Keys the kind's table holds.
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: no native activation for %q (supported: %s)",
		e.Kind, e.Key, strings.Join(e.Supported, ", "))
}

// Unwrap returns ErrLookup.
func (e *LookupError) Unwrap() error { return ErrLookup }

// WrongInputTypeError reports an option value of an unexpected Go type.
type WrongInputTypeError struct {
	Option   string   // Option name.
	Got      string   // Go type of the value given.
	Expected []string // Accepted types or capabilities.
}

// Error implements the error interface.
func (e *WrongInputTypeError) Error() string {
	return fmt.Sprintf("option %q: got value of type %s, expected %s",
		e.Option, e.Got, strings.Join(e.Expected, " or "))
}

// Unwrap returns ErrWrongInputType.
func (e *WrongInputTypeError) Unwrap() error { return ErrWrongInputType }
