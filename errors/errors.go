// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package errors provides the error definition used throughout
// jsfixture. Each error is assigned a class of error (kind) and an
// operation with optional arguments, typically the fixture it
// concerns. Errors may be chained, and thus can be used to annotate
// upstream errors such as parse failures.
//
// Errors are serialized to and from JSON, so that conformance reports
// can be stored and compared between runs.
//
// Package errors provides functions Errorf and New as convenience
// constructors, so that users need import only one error package.
//
// The API was inspired by package upspin.io/errors.
package errors

import (
	"bytes"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"os"
	"runtime"

	"github.com/grailbio/base/digest"
	"github.com/grailbio/jsfixture/log"
)

// Separator is inserted between chained errors while rendering.
// The default value (":\n\t") is intended for interactive tools.
// Reports render errors with ErrorSeparator to keep one per line.
var Separator = ":\n\t"

// Kind denotes the type of the error. The error's kind is used to
// render the error message and also for interpretation.
type Kind int

const (
	// Other denotes an unknown error.
	Other Kind = iota
	// Canceled denotes a cancellation error.
	Canceled
	// NotExist denotes an error originating from a nonexistant resource.
	NotExist
	// NotSupported indicates the operation was not supported.
	NotSupported
	// Invalid indicates an invalid state or data.
	Invalid
	// Syntax denotes a grammar error in a source text.
	Syntax
	// Early denotes an early error: a source text that is
	// grammatical but violates the language's static semantics.
	Early
	// Mismatch denotes two syntax trees or texts that were expected
	// to be equal but were not.
	Mismatch
	// Integrity denotes an integrity check error: a fixture whose
	// name does not match its content.
	Integrity
	// Unexpected denotes a fixture that was accepted or rejected
	// contrary to its category.
	Unexpected
	// Fatal denotes an unrecoverable error.
	Fatal

	maxKind
)

// kinds holds the serialized name and the description of each kind.
var kinds = [maxKind]struct{ name, desc string }{
	Other:        {"Other", "unknown error"},
	Canceled:     {"Canceled", "canceled"},
	NotExist:     {"NotExist", "resource does not exist"},
	NotSupported: {"NotSupported", "operation not supported"},
	Invalid:      {"Invalid", "invalid"},
	Syntax:       {"Syntax", "syntax error"},
	Early:        {"Early", "early error"},
	Mismatch:     {"Mismatch", "mismatch"},
	Integrity:    {"Integrity", "integrity error"},
	Unexpected:   {"Unexpected", "unexpected result"},
	Fatal:        {"Fatal", "fatal"},
}

// String renders a human-readable description of kind k.
func (k Kind) String() string {
	if k <= Other || k >= maxKind {
		return kinds[Other].desc
	}
	return kinds[k].desc
}

// parseKind returns the kind serialized as name. Unknown names are
// Other.
func parseKind(name string) Kind {
	for k := range kinds {
		if kinds[k].name == name {
			return Kind(k)
		}
	}
	return Other
}

// Error defines a jsfixture error. It is used to indicate an error
// associated with an operation (and arguments), and may wrap another
// error.
//
// Errors should be constructed by errors.E.
type Error struct {
	// Kind is the error's type.
	Kind Kind
	// Op is a one-word description of the operation that errored.
	Op string
	// Arg is an (optional) list of arguments to the operation.
	Arg []string
	// Err is this error's underlying error: this error is caused
	// by Err.
	Err error
}

// E is used to construct errors. E constructs errors from a set of
// arguments; each of which must be one of the following types:
//
//	string
//		The first string argument is taken as the error's Op; subsequent
//		arguments are taken as the error's Arg.
//	digest.Digest
//		Taken as an Arg, in its short form.
//	Kind
//		Taken as the error's Kind.
//	error
//		Taken as the error's underlying error.
//
// When no Kind is given, the kind is derived from the underlying
// error: an *Error passes its kind up the chain, context.Canceled
// gives Canceled, and errors satisfying os.IsNotExist give NotExist.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("no args")
	}
	e := new(Error)
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			if e.Op == "" {
				e.Op = arg
			} else {
				e.Arg = append(e.Arg, arg)
			}
		case digest.Digest:
			e.Arg = append(e.Arg, arg.Short())
		case Kind:
			e.Kind = arg
		case *Error:
			prev := *arg
			e.Err = &prev
		case error:
			e.Err = arg
		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("errors.E: bad call (type %T) from %s:%d: %v", arg, file, line, args)
			return Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}
	e.inherit()
	return e
}

// inherit derives e's kind from its underlying error. A chained
// *Error that gives up its kind, and carries no operation, is
// collapsed into e.
func (e *Error) inherit() {
	switch prev := e.Err.(type) {
	case nil:
	case *Error:
		if e.Kind == Other || e.Kind == prev.Kind {
			e.Kind, prev.Kind = prev.Kind, Other
		}
		if prev.Op == "" && prev.Kind == Other {
			e.Err = prev.Err
		}
	default:
		if e.Kind != Other {
			return
		}
		if e.Err == context.Canceled {
			e.Kind = Canceled
		} else if os.IsNotExist(e.Err) {
			e.Kind = NotExist
		}
	}
}

// Error renders this error and its chain of underlying errors,
// separated by Separator.
func (e *Error) Error() string {
	return e.ErrorSeparator(Separator)
}

// ErrorSeparator renders this errors and its chain of underlying
// errors, separated by sep.
func (e *Error) ErrorSeparator(sep string) string {
	if e == nil {
		return "<nil>"
	}
	var b bytes.Buffer
	b.WriteString(e.Op)
	for _, arg := range e.Arg {
		b.WriteString(" " + arg)
	}
	if e.Kind != Other {
		pad(&b, ": ")
		b.WriteString(e.Kind.String())
	}
	switch err := e.Err.(type) {
	case nil:
	case *Error:
		pad(&b, sep)
		b.WriteString(err.ErrorSeparator(sep))
	default:
		pad(&b, ": ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func pad(b *bytes.Buffer, s string) {
	if b.Len() > 0 {
		b.WriteString(s)
	}
}

// Unwrap returns the underlying error, so that the standard library's
// errors.As can reach, for example, the positioned errors of a parse.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is an alternate spelling of fmt.Errorf.
var Errorf = fmt.Errorf

// New is an alternate spelling of errors.New.
var New = goerrors.New

// Recover recovers any error into an *Error. If the passed-in Error
// is already an error, it is simply returned; otherwise it is wrapped.
func Recover(err error) *Error {
	if err == nil {
		return nil
	}
	if err, ok := err.(*Error); ok {
		return err
	}
	return E(err).(*Error)
}

// Is tells whether err is an error of the given kind.
func Is(kind Kind, err error) bool {
	return err != nil && Recover(err).Kind == kind
}

// jsonError is the serialized form of an error chain. Errors other
// than *Error are kept only as their message.
type jsonError struct {
	Op      string     `json:"op,omitempty"`
	Arg     []string   `json:"arg,omitempty"`
	Kind    string     `json:"kind,omitempty"`
	Cause   *jsonError `json:"cause,omitempty"`
	Message string     `json:"message,omitempty"`
}

func toJSON(err error) *jsonError {
	e, ok := err.(*Error)
	if !ok {
		return &jsonError{Message: err.Error()}
	}
	j := &jsonError{Op: e.Op, Arg: e.Arg}
	if e.Kind != Other {
		j.Kind = kinds[e.Kind].name
	}
	if e.Err != nil {
		j.Cause = toJSON(e.Err)
	}
	return j
}

func (j *jsonError) toError() error {
	if j.Message != "" {
		return New(j.Message)
	}
	// Construct directly: E would collapse the chain differently than
	// it was serialized.
	e := &Error{Op: j.Op, Arg: j.Arg, Kind: parseKind(j.Kind)}
	if j.Cause != nil {
		e.Err = j.Cause.toError()
	}
	return e
}

// MarshalJSON implements JSON marshalling for Error.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(e))
}

// UnmarshalJSON implements JSON unmarshalling for Error.
func (e *Error) UnmarshalJSON(b []byte) error {
	var j jsonError
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	e2, ok := j.toError().(*Error)
	if !ok {
		return Errorf("expected *Error, got message %q", j.Message)
	}
	*e = *e2
	return nil
}

// Match compares err1 with err2. If err1 has type Kind, Match
// reports whether err2's Kind is the same, otherwise, Match checks
// that every nonempty field in err1 has the same value in err2. If
// err1 is an *Error with a non-nil Err field, Match recurs to check
// that the two errors chain of underlying errors also match.
func Match(err1 interface{}, err2 error) bool {
	if err2 == nil {
		return false
	}
	e2 := Recover(err2)
	switch e1 := err1.(type) {
	case Kind:
		return e1 == e2.Kind
	case *Error:
		if e1.Op != "" && e2.Op != e1.Op {
			return false
		}
		if len(e1.Arg) != len(e2.Arg) {
			return false
		}
		for i := range e1.Arg {
			if e1.Arg[i] != e2.Arg[i] {
				return false
			}
		}
		if e1.Kind != Other && e2.Kind != e1.Kind {
			return false
		}
		switch cause := e1.Err.(type) {
		case nil:
			return true
		case *Error:
			return Match(cause, e2.Err)
		default:
			return e2.Err != nil && e2.Err.Error() == cause.Error()
		}
	}
	return false
}
