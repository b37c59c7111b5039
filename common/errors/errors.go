// Package errors implements errors identified by a module name and a
// numeric code, which stay matchable after context has been attached.
package errors

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// UnknownModule is the module name used when the module is unknown.
	UnknownModule = "unknown"

	// CodeNoError is the reserved "no error" code.
	CodeNoError = 0
)

// Re-exports so this package can be used as a replacement for errors.
var (
	As     = errors.As
	Is     = errors.Is
	Unwrap = errors.Unwrap
)

type errorKey struct {
	module string
	code   uint32
}

func (k errorKey) String() string {
	return fmt.Sprintf("%s-%d", k.module, k.code)
}

var (
	registryLock sync.RWMutex
	registry     = make(map[errorKey]*codedError)

	errUnknownError = New(UnknownModule, 1, "unknown error")
)

type codedError struct {
	key errorKey
	msg string
}

func (e *codedError) Error() string {
	return e.msg
}

type contextError struct {
	err     error
	context string
}

func (e *contextError) Error() string {
	return e.err.Error() + ": " + e.context
}

func (e *contextError) Unwrap() error {
	return e.err
}

// New registers and returns a new error.
//
// The module and code pair must be unique and the code must not be the
// reserved "no error" code, otherwise New panics. Errors are meant to be
// created at package initialization time.
func New(module string, code uint32, msg string) error {
	if code == CodeNoError {
		panic(fmt.Errorf("errors: code %d is reserved", CodeNoError))
	}

	key := errorKey{module, code}

	registryLock.Lock()
	defer registryLock.Unlock()

	if prev, ok := registry[key]; ok {
		panic(fmt.Errorf("errors: already registered: %s (existing: %s)", key, prev))
	}
	e := &codedError{key: key, msg: msg}
	registry[key] = e

	return e
}

// WithContext wraps err, appending context to its message. An empty context
// returns err unchanged.
func WithContext(err error, context string) error {
	if context == "" {
		return err
	}
	return &contextError{err: err, context: context}
}

// WithContextf is WithContext with a formatted context.
func WithContextf(err error, format string, args ...interface{}) error {
	return WithContext(err, fmt.Sprintf(format, args...))
}

// Context returns the context attached to the outermost wrapped error.
func Context(err error) string {
	var ce *contextError
	if err == nil || !As(err, &ce) {
		return ""
	}
	return ce.context
}

// FromCode returns the error registered for the module and code, or nil.
func FromCode(module string, code uint32) error {
	registryLock.RLock()
	defer registryLock.RUnlock()

	if e, ok := registry[errorKey{module, code}]; ok {
		return e
	}
	return nil
}

// Code returns the module and code of the first registered error in err's
// chain. Unregistered errors map to the unknown error, nil maps to an empty
// module and CodeNoError.
func Code(err error) (string, uint32) {
	if err == nil {
		return "", CodeNoError
	}

	var ce *codedError
	if !As(err, &ce) {
		ce = errUnknownError.(*codedError)
	}
	return ce.key.module, ce.key.code
}
