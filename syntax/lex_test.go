// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"math"
	"testing"

	"github.com/grailbio/testutil/assert"
)

func scanAll(src string, module bool) []token {
	l := newLexer(src, module)
	var toks []token
	for {
		tok := l.next()
		if tok.kind == tokEOF {
			return toks
		}
		toks = append(toks, tok)
		if tok.kind == tokIllegal {
			return toks
		}
	}
}

func TestLexTokens(t *testing.T) {
	toks := scanAll("a >>>= 0x1F;\n'x\\n' `t`", false)
	var (
		kinds []tokenKind
		texts []string
	)
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
		texts = append(texts, tok.text)
	}
	assert.EQ(t, kinds, []tokenKind{tokIdent, tokPunct, tokNumber, tokPunct, tokString, tokTemplate})
	assert.EQ(t, texts, []string{"a", ">>>=", "0x1F", ";", `'x\n'`, "`t`"})
	assert.EQ(t, toks[2].num, float64(31))
	assert.EQ(t, toks[4].value, "x\n")
	assert.True(t, toks[4].nl)
	assert.False(t, toks[3].nl)
	assert.EQ(t, toks[4].pos, Pos{Offset: 13, Line: 2, Column: 1})
	assert.True(t, toks[5].tail)
}

func TestLexNumbers(t *testing.T) {
	for _, c := range []struct {
		src   string
		num   float64
		octal bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"0b101", 5, false},
		{"0O17", 15, false},
		{"0xff", 255, false},
		{"017", 15, true},
		{"019", 19, true},
		{"1e3", 1000, false},
		{".5", 0.5, false},
		{"1.5e-1", 0.15, false},
		{"0x10000000000000000", 18446744073709551616, false},
	} {
		toks := scanAll(c.src, false)
		if len(toks) != 1 || toks[0].kind != tokNumber {
			t.Errorf("%s: got %v, want a single number", c.src, toks)
			continue
		}
		if got := toks[0].num; got != c.num {
			t.Errorf("%s: got %v, want %v", c.src, got, c.num)
		}
		if got := toks[0].octal; got != c.octal {
			t.Errorf("%s: got octal %v, want %v", c.src, got, c.octal)
		}
	}
	toks := scanAll("1e999", false)
	assert.True(t, math.IsInf(toks[0].num, 1))
}

func TestLexStrings(t *testing.T) {
	for _, c := range []struct {
		src, value string
		octal      bool
	}{
		{`"abc"`, "abc", false},
		{`'\x41B\u{43}'`, "ABC", false},
		{`'\u{1F600}'`, "\U0001F600", false},
		{`'😀'`, "\U0001F600", false},
		{`'\uD800'`, "\xed\xa0\x80", false},
		{`'\0'`, "\x00", false},
		{`'\101'`, "A", true},
		{`'\8'`, "8", true},
		{"'a\\\nb'", "ab", false},
		{`'\q'`, "q", false},
	} {
		toks := scanAll(c.src, false)
		if len(toks) != 1 || toks[0].kind != tokString {
			t.Errorf("%s: got %v, want a single string", c.src, toks)
			continue
		}
		if got := toks[0].value; got != c.value {
			t.Errorf("%s: got %q, want %q", c.src, got, c.value)
		}
		if got := toks[0].octal; got != c.octal {
			t.Errorf("%s: got octal %v, want %v", c.src, got, c.octal)
		}
	}
}

func TestLexIdentifiers(t *testing.T) {
	toks := scanAll(`\u0061b café if \u{69}f`, false)
	assert.EQ(t, len(toks), 4)
	assert.EQ(t, toks[0].value, "ab")
	assert.True(t, toks[0].escaped)
	assert.EQ(t, toks[1].value, "café")
	assert.True(t, toks[2].isName("if"))
	assert.EQ(t, toks[3].value, "if")
	assert.False(t, toks[3].isName("if"))
}

func TestLexComments(t *testing.T) {
	toks := scanAll("a /* x\n */ b // c\nd", false)
	assert.EQ(t, len(toks), 3)
	assert.True(t, toks[1].nl)
	assert.EQ(t, toks[1].pos.Line, 2)
	assert.True(t, toks[2].nl)
	assert.EQ(t, toks[2].pos.Line, 3)

	// HTML-like comments are recognized only in scripts.
	toks = scanAll("<!-- a\n--> b\nc", false)
	assert.EQ(t, len(toks), 1)
	assert.EQ(t, toks[0].text, "c")
	toks = scanAll("a <!-- b", true)
	assert.EQ(t, toks[1].text, "<")
}

func TestLexIllegal(t *testing.T) {
	for _, c := range []struct{ src, err string }{
		{"'abc", "unterminated string literal"},
		{"'a\nb'", "unterminated string literal"},
		{`'\x4'`, "invalid escape sequence"},
		{"/* a", "unterminated comment"},
		{"3in", "identifier directly after number"},
		{"0x", "missing digits in numeric literal"},
		{"1e+", "missing exponent in numeric literal"},
		{`\x61`, "invalid escape in identifier"},
		{`\u0031`, "invalid unicode escape in identifier"},
		{"#", `unexpected character '#'`},
	} {
		toks := scanAll(c.src, false)
		last := toks[len(toks)-1]
		if last.kind != tokIllegal {
			t.Errorf("%s: got %v, want illegal token", c.src, toks)
			continue
		}
		if last.err != c.err {
			t.Errorf("%s: got %q, want %q", c.src, last.err, c.err)
		}
	}
}

func TestRescanRegExp(t *testing.T) {
	l := newLexer("/a[/]b\\//gi;", false)
	tok := l.next()
	assert.True(t, tok.is("/"))
	tok = l.rescanRegExp(tok)
	assert.EQ(t, tok.kind, tokRegExp)
	assert.EQ(t, tok.value, `a[/]b\/`)
	assert.EQ(t, tok.flags, "gi")
	assert.True(t, l.next().is(";"))

	l = newLexer("/abc\n/", false)
	tok = l.rescanRegExp(l.next())
	assert.EQ(t, tok.kind, tokIllegal)
}

func TestIsIdentifierName(t *testing.T) {
	for _, c := range []struct {
		s  string
		ok bool
	}{
		{"a", true},
		{"$_1", true},
		{"if", true},
		{"café", true},
		{"", false},
		{"1a", false},
		{"a-b", false},
		{"a b", false},
	} {
		if got := IsIdentifierName(c.s); got != c.ok {
			t.Errorf("IsIdentifierName(%q): got %v, want %v", c.s, got, c.ok)
		}
	}
}
