// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package jsfixture

import (
	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/jsfixture/syntax"
	"github.com/grailbio/jsfixture/syntax/codegen"
)

// MakeExplicit parses src, as a module if isModule is set and as a
// script otherwise, and returns its explicit rendering. Early errors
// fail the parse.
func MakeExplicit(src string, isModule bool) (string, error) {
	mode := syntax.ParseScript
	if isModule {
		mode = syntax.ParseModule
	}
	tree, err := syntax.Parse("", []byte(src), mode, true)
	if err != nil {
		return "", errors.E("make-explicit", err)
	}
	return codegen.Explicit(tree), nil
}

// CheckRoundTrip renders the program in src in explicit form, parses
// the rendering, and returns an error of kind errors.Mismatch if the
// two trees differ. The rendering is returned when both parses
// succeed.
func CheckRoundTrip(file string, src []byte, mode syntax.ParserMode) (string, error) {
	tree, err := syntax.Parse(file, src, mode, false)
	if err != nil {
		return "", errors.E("roundtrip", file, err)
	}
	explicit := codegen.Explicit(tree)
	got, err := syntax.Parse(file+" (explicit)", []byte(explicit), mode, false)
	if err != nil {
		return "", errors.E("roundtrip", file, errors.Mismatch, err)
	}
	return explicit, Compare(file, tree, got)
}

// Compare returns an error of kind errors.Mismatch that describes the
// differences between trees want and got, or nil if they are
// structurally equal.
func Compare(file string, want, got syntax.Program) error {
	if diff := syntax.Diff(want, got); diff != "" {
		return errors.E("compare", file, errors.Mismatch, errors.Errorf("trees differ (-want +got):\n%s", diff))
	}
	return nil
}
