// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/jsfixture/syntax"
)

// Check checks a single fixture against its category, returning nil
// if it conforms:
//
//	pass:  parses with early errors enabled, and its explicit rendering
//	       parses, with early errors enabled, to the same tree;
//	fail:  does not parse with early errors disabled;
//	early: parses with early errors disabled, but not with them enabled.
//
// When names are verified, a conforming fixture whose name does not
// match its content slug is reported with kind errors.Integrity.
func (r *Runner) Check(f Fixture) error {
	src, err := r.Corpus.Read(f)
	if err != nil {
		return err
	}
	switch f.Category {
	case Pass:
		err = r.checkPass(f, src)
	case Fail:
		err = checkFail(f, src)
	case Early:
		err = checkEarly(f, src)
	default:
		err = errors.E("check", f.String(), errors.Invalid, errors.Errorf("bad category %q", f.Category))
	}
	if err != nil || !r.VerifyNames {
		return err
	}
	return CheckName(f, src)
}

func (r *Runner) checkPass(f Fixture, src []byte) error {
	tree, err := syntax.Parse(f.String(), src, f.Mode(), true)
	if err != nil {
		return errors.E("check", f.String(), errors.Unexpected, err)
	}
	explicit, err := r.Corpus.ReadExplicit(f)
	if err != nil {
		return errors.E("check", f.String(), err)
	}
	file := r.Corpus.Dirs.Explicit + "/" + f.Name
	etree, err := syntax.Parse(file, explicit, f.Mode(), true)
	if err != nil {
		return errors.E("check", f.String(), errors.Mismatch, err)
	}
	if err := jsfixture.Compare(file, tree, etree); err != nil {
		return errors.E("check", f.String(), err)
	}
	return nil
}

func checkFail(f Fixture, src []byte) error {
	_, err := syntax.Parse(f.String(), src, f.Mode(), false)
	switch {
	case err == nil:
		return errors.E("check", f.String(), errors.Unexpected, errors.New("accepted by the grammar"))
	case errors.Is(errors.Syntax, err):
		return nil
	default:
		return errors.E("check", f.String(), err)
	}
}

func checkEarly(f Fixture, src []byte) error {
	if _, err := syntax.Parse(f.String(), src, f.Mode(), false); err != nil {
		return errors.E("check", f.String(), errors.Unexpected, err)
	}
	_, err := syntax.Parse(f.String(), src, f.Mode(), true)
	switch {
	case err == nil:
		return errors.E("check", f.String(), errors.Unexpected, errors.New("no early error reported"))
	case errors.Is(errors.Early, err):
		return nil
	default:
		return errors.E("check", f.String(), err)
	}
}

// CheckName returns an error of kind errors.Integrity if fixture f,
// with contents src, is not named by its content slug.
func CheckName(f Fixture, src []byte) error {
	_, module, _ := jsfixture.SplitName(f.Name)
	if want := jsfixture.CanonicalName(src, module); f.Name != want {
		return errors.E("check", f.String(), errors.Integrity, errors.Errorf("content is named %s", want))
	}
	return nil
}
