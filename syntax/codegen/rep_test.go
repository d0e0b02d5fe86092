// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/grailbio/jsfixture/syntax"
)

func emit(r Rep) string {
	var b bytes.Buffer
	bw := bufio.NewWriter(&b)
	r.emit(newWriter(bw), false)
	bw.Flush()
	return b.String()
}

func TestFlatten(t *testing.T) {
	a, b := tok("a"), tok("b")
	if got := Flatten(seq(seq(empty(), a), empty())); got != Rep(a) {
		t.Errorf("got %v, want the lone token", got)
	}
	s, ok := Flatten(seq(a, seq(seq(b), empty()), empty())).(*Seq)
	if !ok {
		t.Fatal("expected a Seq")
	}
	if len(s.Children) != 2 || s.Children[0] != Rep(a) || s.Children[1] != Rep(b) {
		t.Errorf("got %v, want [a b]", s.Children)
	}
	if got := Flatten(a); got != Rep(a) {
		t.Errorf("got %v, want a", got)
	}
	p := &Paren{Rep: seq(a)}
	if got := Flatten(p); got != Rep(p) {
		t.Error("Flatten descended into a Paren")
	}
}

func TestExplicitParen(t *testing.T) {
	e := NewExplicitGenerator()
	a := tok("a")
	p := e.Paren(a)
	if e.Paren(p) != p {
		t.Error("Paren rewrapped a Paren")
	}
	if e.Paren(seq(empty(), p)) != p {
		t.Error("Paren rewrapped a flattened Paren")
	}
	if got, want := emit(e.Paren(seq(seq(p)))), "(a)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := emit(e.Paren(seq(a, tok("+"), tok("b")))), "(a+b)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExplicitP(t *testing.T) {
	e := NewExplicitGenerator()
	r := tok("x")
	for _, n := range []syntax.Node{
		&syntax.IdentifierExpression{Name: "x"},
		&syntax.BindingIdentifier{Name: "x"},
		&syntax.Super{},
		&syntax.FunctionBody{},
	} {
		if e.P(n, PrecPrimary, r) != Rep(r) {
			t.Errorf("%T: parenthesized", n)
		}
	}
	for _, n := range []syntax.Node{
		&syntax.ThisExpression{},
		&syntax.LiteralNumericExpression{Value: 1},
		&syntax.AssignmentTargetIdentifier{Name: "x"},
	} {
		if _, ok := e.P(n, PrecSequence, r).(*Paren); !ok {
			t.Errorf("%T: not parenthesized", n)
		}
	}
}

func TestWriterSpacing(t *testing.T) {
	for _, c := range []struct {
		reps []Rep
		want string
	}{
		{[]Rep{tok("typeof"), tok("x")}, "typeof x"},
		{[]Rep{tok("a"), tok("+"), tok("+"), tok("b")}, "a+ +b"},
		{[]Rep{tok("-"), tok("--"), tok("a")}, "- --a"},
		{[]Rep{tok("a"), tok("<"), tok("!"), tok("b")}, "a< !b"},
		{[]Rep{tok("a"), tok("/"), &Token{Text: "/b/", RegExp: true}}, "a/ /b/"},
		{[]Rep{&Token{Text: "/b/", RegExp: true}, tok("in")}, "/b/ in"},
		{[]Rep{&Number{Value: 1}, tok("."), tok("x")}, "1 .x"},
		{[]Rep{&Number{Value: 1.5}, tok("."), tok("x")}, "1.5.x"},
		{[]Rep{tok("a"), space(), space(), tok("b")}, "a b"},
		{[]Rep{tok("f"), &Raw{Text: "`a\n  b`"}}, "f`a\n  b`"},
	} {
		if got := emit(seq(c.reps...)); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestNoIn(t *testing.T) {
	in := seq(tok("a"), tok("in"), tok("b"))
	in.ContainsIn = true
	r := &NoIn{Rep: seq(tok("x"), tok("="), markContainsIn(in))}
	if got, want := emit(r), "x=(a in b)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	r = &NoIn{Rep: &Bracket{Rep: markContainsIn(in)}}
	if got, want := emit(r), "[a in b]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestQuoteString(t *testing.T) {
	for _, c := range []struct{ in, want string }{
		{"abc", `"abc"`},
		{`a"b`, `'a"b'`},
		{`a"b'c`, `"a\"b'c"`},
		{"a\nb\r\\", `"a\nb\r\\"`},
		{"\u2028\u2029", `"\u2028\u2029"`},
		{"\xed\xa0\x80", `"\uD800"`},
		{"é😀", `"é😀"`},
	} {
		if got := QuoteString(c.in); got != c.want {
			t.Errorf("QuoteString(%q): got %s, want %s", c.in, got, c.want)
		}
	}
}
