// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package errors

import (
	"context"
	"crypto"
	_ "crypto/sha256"
	"encoding/json"
	goerrors "errors"
	"os"
	"testing"

	"github.com/grailbio/base/digest"
)

func roundtripJSON(in interface{}, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func TestMarshalKind(t *testing.T) {
	for k := Other; k < maxKind; k++ {
		var (
			e1 = E("op", "arg", k)
			e2 = new(Error)
		)
		if err := roundtripJSON(e1, e2); err != nil {
			t.Error(err)
			continue
		}
		if !Match(e1, e2) {
			t.Errorf("%v does not match %v", e1, e2)
		}
	}
}

func TestMarshalChain(t *testing.T) {
	var (
		e1 = E("check", "pass/a.js", Unexpected, E("parse", Early))
		e2 = new(Error)
	)
	if err := roundtripJSON(e1, e2); err != nil {
		t.Fatal(err)
	}
	if !Match(e1, e2) {
		t.Errorf("%v does not match %v", e1, e2)
	}
}

func TestE(t *testing.T) {
	e := E("read", context.Canceled)
	if got, want := e, E("read", Canceled); !Match(want, got) {
		t.Errorf("got %v, want %v", got, want)
	}
	e = E("read", "pass/x.js", &os.PathError{Op: "open", Path: "pass/x.js", Err: os.ErrNotExist})
	if got, want := e, E("read", "pass/x.js", NotExist); !Match(want, got) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Collapse errors
	e = E("check", Syntax, E("parse", Syntax))
	if got, want := e, E("check", Syntax, E("parse")); !Match(want, got) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestError(t *testing.T) {
	e := E("parse", "fail/0.js", Syntax, New("1:3: unexpected end of input"))
	if got, want := e.Error(), "parse fail/0.js: syntax error: 1:3: unexpected end of input"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	e = E("check", "early/1.js", E(Unexpected))
	if got, want := e.Error(), "check early/1.js: unexpected result"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	e = E("check", "pass/2.js", E("compare", "pass-explicit/2.js", Mismatch, New("trees differ")))
	if got, want := e.Error(), "check pass/2.js: mismatch:\n\tcompare pass-explicit/2.js: trees differ"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDigestArg(t *testing.T) {
	d := digest.Digester(crypto.SHA256).FromString("a = b;")
	e := E("verify", d, Integrity)
	if got, want := e.(*Error).Arg[0], d.Short(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIs(t *testing.T) {
	for kind := Canceled; kind < maxKind; kind++ {
		if !Is(kind, E(kind)) {
			t.Errorf("expected %v", kind)
		}
		if Is(kind, New("plain")) {
			t.Errorf("unexpected %v", kind)
		}
	}
	if Is(Syntax, nil) {
		t.Error("nil error has no kind")
	}
}

func TestUnwrap(t *testing.T) {
	pathErr := &os.PathError{Op: "open", Path: "pass/x.js", Err: os.ErrNotExist}
	e := E("check", "pass/x.js", E("read", pathErr))
	var target *os.PathError
	if !goerrors.As(e, &target) {
		t.Fatalf("%v does not wrap a *os.PathError", e)
	}
	if target.Path != "pass/x.js" {
		t.Errorf("got %v, want pass/x.js", target.Path)
	}
	if !goerrors.Is(e, os.ErrNotExist) {
		t.Errorf("%v does not wrap os.ErrNotExist", e)
	}
}

func TestJSONFormat(t *testing.T) {
	e := E("check", "fail/a.js", Unexpected, New("accepted by the grammar"))
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"op":"check","arg":["fail/a.js"],"kind":"Unexpected","cause":{"message":"accepted by the grammar"}}`
	if got := string(b); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	var e2 Error
	if err := json.Unmarshal([]byte(`{"message":"plain"}`), &e2); err == nil {
		t.Error("expected error decoding a plain message as *Error")
	}
}

func TestMatch(t *testing.T) {
	e := E("check", "pass/a.js", Mismatch, New("trees differ"))
	for _, c := range []struct {
		want  interface{}
		match bool
	}{
		{Mismatch, true},
		{Early, false},
		{&Error{Op: "check", Arg: []string{"pass/a.js"}}, true},
		{&Error{Op: "check"}, false},
		{&Error{Op: "parse"}, false},
		{&Error{Arg: []string{"pass/a.js"}}, true},
		{&Error{Arg: []string{"pass/b.js"}}, false},
		{&Error{Arg: []string{"pass/a.js"}, Kind: Mismatch, Err: New("trees differ")}, true},
		{&Error{Kind: Mismatch, Err: New("trees differ")}, false},
		{&Error{Err: New("other")}, false},
		{"check", false},
	} {
		if got := Match(c.want, e); got != c.match {
			t.Errorf("Match(%v, %v): got %v, want %v", c.want, e, got, c.match)
		}
	}
	if Match(Other, nil) {
		t.Error("nil matches nothing")
	}
}
