// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package jsfixture_test

import (
	"testing"

	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/jsfixture/syntax"
	"github.com/grailbio/testutil/assert"
)

func TestSlug(t *testing.T) {
	assert.EQ(t, jsfixture.Slug(nil), "e3b0c44298fc1c14")
	assert.EQ(t, jsfixture.Slug([]byte("abc")), "ba7816bf8f01cfea")
	assert.EQ(t, jsfixture.CanonicalName([]byte("abc"), false), "ba7816bf8f01cfea.js")
	assert.EQ(t, jsfixture.CanonicalName([]byte("abc"), true), "ba7816bf8f01cfea.module.js")
}

func TestNames(t *testing.T) {
	for _, c := range []struct {
		name   string
		stem   string
		module bool
		ok     bool
	}{
		{"pass/0a1b.js", "0a1b", false, true},
		{"0a1b.module.js", "0a1b", true, true},
		{"early/x.module.js", "x", true, true},
		{"README.md", "", false, false},
		{"pass/.jsfixture.yaml", "", false, false},
	} {
		stem, module, ok := jsfixture.SplitName(c.name)
		if stem != c.stem || module != c.module || ok != c.ok {
			t.Errorf("SplitName(%q): got %q, %v, %v; want %q, %v, %v", c.name, stem, module, ok, c.stem, c.module, c.ok)
		}
		assert.EQ(t, jsfixture.IsModule(c.name), c.module)
		assert.EQ(t, jsfixture.IsFixture(c.name), c.ok)
	}
	assert.EQ(t, jsfixture.Mode("a.module.js"), syntax.ParseModule)
	assert.EQ(t, jsfixture.Mode("a.js"), syntax.ParseScript)
}

func TestMakeExplicit(t *testing.T) {
	for _, c := range []struct {
		src    string
		module bool
		want   string
	}{
		{"a = b + c", false, "a = (b + c);"},
		{"a = b", false, "a = b;"},
		{"a + b * c", false, "a + (b * c);"},
		{"let x = y;", false, "let x = (y);"},
		{"export default a * b;", true, "export default (a * b);"},
		{"import x from 'm'; x;", true, "import x from \"m\";\nx;"},
	} {
		got, err := jsfixture.MakeExplicit(c.src, c.module)
		if err != nil {
			t.Errorf("MakeExplicit(%q): %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("MakeExplicit(%q): got %q, want %q", c.src, got, c.want)
		}
	}
}

func TestMakeExplicitErrors(t *testing.T) {
	for _, c := range []struct {
		src    string
		module bool
		kind   errors.Kind
	}{
		{"a +", false, errors.Syntax},
		{"import x from 'm';", false, errors.Syntax},
		{"'use strict'; with (a) b;", false, errors.Early},
		{"let a; let a;", false, errors.Early},
		{"var await;", true, errors.Early},
	} {
		_, err := jsfixture.MakeExplicit(c.src, c.module)
		if !errors.Is(c.kind, err) {
			t.Errorf("MakeExplicit(%q): got %v, want kind %v", c.src, err, c.kind)
		}
	}
}

func TestCheckRoundTrip(t *testing.T) {
	out, err := jsfixture.CheckRoundTrip("a.js", []byte("a = b ? c : d, e"), syntax.ParseScript)
	assert.NoError(t, err)
	assert.EQ(t, out, "(a = (b ? c : d)), e;")
	_, err = jsfixture.CheckRoundTrip("b.js", []byte("a +"), syntax.ParseScript)
	if !errors.Is(errors.Syntax, err) {
		t.Errorf("got %v, want a syntax error", err)
	}
	a, err := syntax.Parse("a.js", []byte("a - b - c"), syntax.ParseScript, false)
	assert.NoError(t, err)
	b, err := syntax.Parse("b.js", []byte("a - (b - c)"), syntax.ParseScript, false)
	assert.NoError(t, err)
	if err := jsfixture.Compare("b.js", a, b); !errors.Is(errors.Mismatch, err) {
		t.Errorf("got %v, want a mismatch", err)
	}
	assert.NoError(t, jsfixture.Compare("a.js", a, a))
}
