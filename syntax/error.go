// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"fmt"
)

// PosError attaches a source position to an error.
type PosError struct {
	File string
	Pos
	Err error
}

func (e PosError) Error() string {
	if e.File == "" {
		return e.Pos.String() + ": " + e.Err.Error()
	}
	return e.File + ":" + e.Pos.String() + ": " + e.Err.Error()
}

// PosErrors represents multiple PosErrors.
type PosErrors []PosError

func (e PosErrors) Error() string {
	b := new(bytes.Buffer)
	for i, err := range e {
		b.WriteString(err.Error())
		if i != len(e)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// errlist accumulates PosErrors.
type errlist []PosError

func (e errlist) Error(file string, pos Pos, err error) errlist {
	if err == nil {
		return e
	}
	return append(e, PosError{file, pos, err})
}

func (e errlist) Errorf(file string, pos Pos, format string, args ...interface{}) errlist {
	return e.Error(file, pos, fmt.Errorf(format, args...))
}

func (e errlist) Make() error {
	if len(e) > 0 {
		return PosErrors(e)
	}
	return nil
}
