// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"
	"testing"

	"github.com/grailbio/jsfixture/syntax"
)

func parse(t *testing.T, src string, mode syntax.ParserMode) syntax.Program {
	t.Helper()
	p, err := syntax.Parse("test.js", []byte(src), mode, false)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return p
}

func TestExplicit(t *testing.T) {
	for _, c := range []struct{ src, want string }{
		{"a = b + c", "a = (b + c);"},
		{"a = b", "a = b;"},
		{"a + b * c", "a + (b * c);"},
		{"a * b + c", "(a * b) + c;"},
		{"let x = y;", "let x = (y);"},
		{"var a = 1, b;", "var a = (1), b;"},
		{"x = f(a)", "x = (f(a));"},
		{"a.b.c", "(a.b).c;"},
		{"a[b + c]", "a[b + c];"},
		{"x => x * 2", "(x) => (x * (2));"},
		{"x = {a: 1, b}", "x = ({a: 1, b});"},
		{"1..x", "(1).x;"},
		{"({}).x", "({}).x;"},
		{"a`x${b}y`", "a`x${b}y`;"},
		{"if (a) b; else c;", "if (a) b; else c;"},
		{"for (var x = (a in b);;);", "for (var x = (a in b);;) ;"},
		{"a += b", "a += b;"},
		{"a -= b - c", "a -= (b - c);"},
		{"super_ = 1", "super_ = (1);"},
	} {
		if got := Explicit(parse(t, c.src, syntax.ParseScript)); got != c.want {
			t.Errorf("Explicit(%q): got %q, want %q", c.src, got, c.want)
		}
	}
}

func TestMinimal(t *testing.T) {
	for _, c := range []struct{ src, want string }{
		{"a = (b + c)", "a = b + c;"},
		{"(a + b) * c", "(a + b) * c;"},
		{"a - (b - c)", "a - (b - c);"},
		{"(a - b) - c", "a - b - c;"},
		{"a ** b ** c", "a ** b ** c;"},
		{"(a ** b) ** c", "(a ** b) ** c;"},
		{"new (f())", "new (f())();"},
		{"new X", "new X();"},
		{"({}).x", "({}.x);"},
		{"(function () {})", "(function() {});"},
		{"1..x", "1 .x;"},
		{"a + +b", "a + +b;"},
		{"a - -b", "a - -b;"},
		{"typeof x", "typeof x;"},
		{"('a')", `("a");`},
		{`'"'`, `'"';`},
		{"x = 'it\\'s'", `x = "it's";`},
		{"x = 1e21", "x = 1e+21;"},
		{"x = 0.5", "x = 0.5;"},
		{"x = 1e400", "x = 2e308;"},
		{"x = /a/gi", "x = /a/gi;"},
		{"if (a) { if (b) c; } else d;", "if (a) {\n  if (b) c;\n} else d;"},
		{"if (a) if (b) c; else d;", "if (a) if (b) c; else d;"},
		{"for (;;);", "for (;;) ;"},
		{"x = {'a': 1, 'b-c': 2, 3: 4}", `x = {a: 1, "b-c": 2, 3: 4};`},
		{"l: for (;;) break l;", "l: for (;;) break l;"},
	} {
		if got := Minimal(parse(t, c.src, syntax.ParseScript)); got != c.want {
			t.Errorf("Minimal(%q): got %q, want %q", c.src, got, c.want)
		}
	}
}

func TestLayout(t *testing.T) {
	for _, c := range []struct {
		src  string
		mode syntax.ParserMode
		want []string
	}{
		{
			"function f(a, b) { return a + b; }",
			syntax.ParseScript,
			[]string{
				"function f(a, b) {",
				"  return a + b;",
				"}",
			},
		},
		{
			"class A extends B { static m() {} }",
			syntax.ParseScript,
			[]string{
				"class A extends B {",
				"  static m() {}",
				"}",
			},
		},
		{
			"'use strict'; a;",
			syntax.ParseScript,
			[]string{
				`"use strict";`,
				"a;",
			},
		},
		{
			"switch (x) { case 1: a; break; default: b; }",
			syntax.ParseScript,
			[]string{
				"switch (x) {",
				"  case 1:",
				"    a;",
				"    break;",
				"  default:",
				"    b;",
				"}",
			},
		},
		{
			"import a, {b as c, d} from 'm'; export default a;",
			syntax.ParseModule,
			[]string{
				`import a, {b as c, d} from "m";`,
				"export default a;",
			},
		},
	} {
		want := strings.Join(c.want, "\n")
		if got := Minimal(parse(t, c.src, c.mode)); got != want {
			t.Errorf("Minimal(%q):\ngot:\n%s\nwant:\n%s", c.src, got, want)
		}
	}
}

// roundTrip are programs whose renderings must parse to the same
// tree.
var roundTrip = []struct {
	src  string
	mode syntax.ParserMode
}{
	{"a = b + c * d - e / f % g", syntax.ParseScript},
	{"a = b ? c : d ? e : f", syntax.ParseScript},
	{"(a, b) ? (c, d) : (e, f)", syntax.ParseScript},
	{"a = (b, c)", syntax.ParseScript},
	{"a || b && c | d ^ e & f == g < h << i + j * k ** l", syntax.ParseScript},
	{"(a || b) && c", syntax.ParseScript},
	{"a = b = c", syntax.ParseScript},
	{"[a, b] = [c, , d, ...e]", syntax.ParseScript},
	{"({a, b: [c = 1]} = e)", syntax.ParseScript},
	{"x = {a, b: 1, [c + d]: 2, get e() { return 1; }, set e(v) {}, f() {}, *g() {}, async h() {}}", syntax.ParseScript},
	{"new (a.b().c)(d)", syntax.ParseScript},
	{"new new X()()", syntax.ParseScript},
	{"new a.b.c", syntax.ParseScript},
	{"a.b(c)[d](e).f`g${h}i`", syntax.ParseScript},
	{"(function () {}).call(this)", syntax.ParseScript},
	{"(class {}).name", syntax.ParseScript},
	{"(async function () {})", syntax.ParseScript},
	{"async function f() { await (a + b); }", syntax.ParseScript},
	{"function* g() { yield; yield a, b; yield* (a, b); }", syntax.ParseScript},
	{"x = async (a, b) => a + b", syntax.ParseScript},
	{"x = () => ({})", syntax.ParseScript},
	{"x = (a = 1, {b}, ...c) => { return a; }", syntax.ParseScript},
	{"for (var i = 0, n = (a in b); i < n; i++) {}", syntax.ParseScript},
	{"for ((a in b) ? c : d;;);", syntax.ParseScript},
	{"for (let [a, b] of c) {}", syntax.ParseScript},
	{"for ((let) in a);", syntax.ParseScript},
	{"for ((let).x of a);", syntax.ParseScript},
	{"(let[a] = b)", syntax.ParseScript},
	{"if (a) { if (b) c; } else if (d) e; else f;", syntax.ParseScript},
	{"try { a; } catch ({b}) { c; } finally { d; }", syntax.ParseScript},
	{"l: { break l; }", syntax.ParseScript},
	{"do a++; while (b)", syntax.ParseScript},
	{"while (a) with (b) c;", syntax.ParseScript},
	{"-(-a); +(+a); - --a; typeof typeof a; void delete a.b; !(a in b)", syntax.ParseScript},
	{"(-a) ** b", syntax.ParseScript},
	{"(a++).b; ++a.b; a.b--", syntax.ParseScript},
	{"('not a directive'); 'x'", syntax.ParseScript},
	{"function f() { ('a'); }", syntax.ParseScript},
	{"x = `a${b}c${`d${e}`}`", syntax.ParseScript},
	{"x = '\\u2028\\n\"\\''", syntax.ParseScript},
	{"x = /[/]\\//y", syntax.ParseScript},
	{"x = 1..toString() + 0x10 + .5 + 1e-7", syntax.ParseScript},
	{"class A extends (B, C) { constructor() { super(); } static [a]() {} get b() {} }", syntax.ParseScript},
	{"switch (a) { case 1: case 2: b; default: c; case 3: }", syntax.ParseScript},
	{"import * as ns from 'm'; export * from 'n'; export {a as b} from 'o'; export {ns as default};", syntax.ParseModule},
	{"export default function () {} export const x = 1;", syntax.ParseModule},
	{"export default (function () {});", syntax.ParseModule},
	{"export default (1, 2);", syntax.ParseModule},
	{"export class C {} export function* g() {}", syntax.ParseModule},
}

func TestRoundTrip(t *testing.T) {
	for _, c := range roundTrip {
		tree := parse(t, c.src, c.mode)
		for _, gen := range []struct {
			name   string
			render func(syntax.Program) string
		}{
			{"Minimal", Minimal},
			{"Explicit", Explicit},
		} {
			out := gen.render(tree)
			got, err := syntax.Parse("out.js", []byte(out), c.mode, false)
			if err != nil {
				t.Errorf("%s(%q) = %q: %v", gen.name, c.src, out, err)
				continue
			}
			if diff := syntax.Diff(tree, got); diff != "" {
				t.Errorf("%s(%q) = %q: tree differs (-want +got):\n%s", gen.name, c.src, out, diff)
			}
		}
	}
}

func TestExplicitIdempotent(t *testing.T) {
	for _, c := range roundTrip {
		once := Explicit(parse(t, c.src, c.mode))
		twice := Explicit(parse(t, once, c.mode))
		if once != twice {
			t.Errorf("Explicit(%q) is not a fixed point:\n%s\n%s", c.src, once, twice)
		}
	}
}
