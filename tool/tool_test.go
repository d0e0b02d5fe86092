// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/grailbio/jsfixture/config"
	"github.com/grailbio/jsfixture/errors"
)

func TestClosest(t *testing.T) {
	names := (&Cmd{}).commandNames()
	for _, c := range []struct{ in, want string }{
		{"tset", "test"},
		{"explcit", "explicit"},
		{"check-explict", "check-explicit"},
		{"pars", "parse"},
		{"slugs", "slug"},
		{"versoin", "version"},
		{"frobnicate", ""},
	} {
		if got := closest(c.in, names); got != c.want {
			t.Errorf("closest(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCommands(t *testing.T) {
	c := &Cmd{Commands: map[string]Func{"extra": (*Cmd).versionCmd}}
	names := c.commandNames()
	want := []string{"check-explicit", "config", "explicit", "extra", "fmt", "parse", "slug", "test", "version"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("got %v, want %v", names, want)
		}
	}
}

func TestKeyDocs(t *testing.T) {
	for _, key := range config.FlagKeys {
		if keyDocs[key] == "" {
			t.Errorf("key %s is not documented", key)
		}
	}
}

func TestOneLine(t *testing.T) {
	err := errors.E("check", "pass/a.js", errors.E("compare", "pass-explicit/a.js", errors.Mismatch, errors.New("trees differ")))
	if got, want := oneLine(err), "check pass/a.js: mismatch: compare pass-explicit/a.js: trees differ"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPaste(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	if err := paste(w, "a+b\n\tc", "a + b;\nc;\nd;"); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "a+b|a + b;\n  c|c;\n   |d;\n"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
