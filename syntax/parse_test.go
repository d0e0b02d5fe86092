// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"strings"
	"testing"

	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/testutil/assert"
)

func parse(t *testing.T, src string, mode ParserMode) Program {
	t.Helper()
	p, err := Parse("test.js", []byte(src), mode, true)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return p
}

func id(name string) *IdentifierExpression { return &IdentifierExpression{Name: name} }

func TestParseTree(t *testing.T) {
	got := parse(t, "'use strict'; a + b * c;", ParseScript)
	want := &Script{
		Directives: []*Directive{{RawValue: "use strict"}},
		Statements: []Statement{
			&ExpressionStatement{Expression: &BinaryExpression{
				Left:     id("a"),
				Operator: "+",
				Right:    &BinaryExpression{Left: id("b"), Operator: "*", Right: id("c")},
			}},
		},
	}
	if diff := Diff(want, got); diff != "" {
		t.Errorf("trees differ (-want +got):\n%s", diff)
	}

	got = parse(t, "x = 1;", ParseModule)
	want2 := &Module{
		Items: []ModuleItem{
			&ExpressionStatement{Expression: &AssignmentExpression{
				Binding:    &AssignmentTargetIdentifier{Name: "x"},
				Expression: &LiteralNumericExpression{Value: 1},
			}},
		},
	}
	if diff := Diff(want2, got); diff != "" {
		t.Errorf("trees differ (-want +got):\n%s", diff)
	}
}

func TestParseLoc(t *testing.T) {
	prog := parse(t, "a;\n  bc + d;", ParseScript).(*Script)
	assert.EQ(t, len(prog.Statements), 2)
	stmt := prog.Statements[1].(*ExpressionStatement)
	assert.EQ(t, stmt.Start, Pos{Offset: 5, Line: 2, Column: 3})
	assert.EQ(t, stmt.End, Pos{Offset: 12, Line: 2, Column: 10})
	bin := stmt.Expression.(*BinaryExpression)
	assert.EQ(t, bin.Left.Span(), Loc{
		Start: Pos{Offset: 5, Line: 2, Column: 3},
		End:   Pos{Offset: 7, Line: 2, Column: 5},
	})
}

func TestEqual(t *testing.T) {
	for _, c := range []struct {
		a, b string
		eq   bool
	}{
		{"a + b * c", "(a + (b * c))", true},
		{"a + b * c", "a  +  b\n*c;", true},
		{`x = "\x61"`, "x = 'a'", true},
		{`"\x61"`, "'a'", false},
		{"0x10", "16", true},
		{"(a, b)", "a, b", true},
		{"[a] = [b]", "[(a)] = [b]", true},
		{"(a + b) * c", "a + b * c", false},
		{"a - b - c", "a - (b - c)", false},
		{"a.b", "a['b']", false},
		{"'use strict'; a", "'use\\x20strict'; a", false},
	} {
		a := parse(t, c.a, ParseScript)
		b := parse(t, c.b, ParseScript)
		if got := Equal(a, b); got != c.eq {
			t.Errorf("Equal(%q, %q): got %v, want %v\n%s", c.a, c.b, got, c.eq, Diff(a, b))
		}
		if got := Diff(a, b) == ""; got != c.eq {
			t.Errorf("Diff(%q, %q): got empty %v, want %v", c.a, c.b, got, c.eq)
		}
	}
}

func TestParseValid(t *testing.T) {
	for _, src := range []string{
		"",
		"var a = 1, b; let [c, ...d] = e; const {f, g: h = 2} = i;",
		"function* f(a = 1, ...b) { yield a; yield* b; }",
		"async function f() { await x; }",
		"class A extends B { constructor() { super(); } static m() { return super.m; } get x() {} set x(v) {} }",
		"label: for (var i in o) { if (i) continue label; else break; }",
		"for (const x of y) ; for (let i = 0; i < n; i++) ; do x; while (y)",
		"switch (a) { case 1: b; default: c; case 2: }",
		"try { a } catch (e) { b } finally { c }",
		"x = a ? b : c; x **= 2; x = (-a) ** 2 === void 0",
		"x = `a${b}c${`d${e}`}`; tag`x`",
		"x = /a|b/gimuy.test(s) / 2",
		"x = {a, b: 1, [c]: 2, d() {}, get e() {}, set e(v) {}, async f() {}, *g() {}}",
		"({a, b: [c = 1]} = d); [e, ...f.g] = h",
		"(a, b) => a + b; async x => await x; async (y) => y; () => ({})",
		"new Foo; new Foo.bar(); new (f())",
		"a\n++b",
		"with (a) b",
		"var yield, static; yield = 1",
		"a: { break a; }",
		"x = function f() { 'use strict'; return new.target; }",
		"<!-- html comment\nx",
	} {
		if _, err := Parse("test.js", []byte(src), ParseScript, true); err != nil {
			t.Errorf("parse %q: %v", src, err)
		}
	}
	for _, src := range []string{
		"import a, {b as c, d} from 'm'; import * as e from 'n'; import 'o';",
		"export default function () {} export const a = 1; export {a as b};",
		"export * from 'm'; export {x as y} from 'n';",
		"export default class {}",
		"export default (1 + 2);",
		"var x; export {x};",
		"let a = 1; export {a as default};",
	} {
		if _, err := Parse("test.js", []byte(src), ParseModule, true); err != nil {
			t.Errorf("parse module %q: %v", src, err)
		}
	}
}

func TestGrammarErrors(t *testing.T) {
	for _, c := range []struct {
		src  string
		mode ParserMode
	}{
		{"a +", ParseScript},
		{"(a", ParseScript},
		{"var 1;", ParseScript},
		{"a b", ParseScript},
		{"'abc", ParseScript},
		{"3in x", ParseScript},
		{"if (a) const b = 1;", ParseScript},
		{"import a from 'm';", ParseScript},
		{"export var a;", ParseScript},
		{"{ export var a; }", ParseModule},
		{"1 = a", ParseScript},
		{"<!-- a", ParseModule},
		{"/*", ParseScript},
	} {
		for _, early := range []bool{false, true} {
			_, err := Parse("test.js", []byte(c.src), c.mode, early)
			if !errors.Is(errors.Syntax, err) {
				t.Errorf("parse %s %q: got %v, want Syntax error", c.mode, c.src, err)
			}
		}
	}
}

func TestEarlyErrors(t *testing.T) {
	for _, c := range []struct {
		src  string
		mode ParserMode
		msg  string
	}{
		{"'use strict'; with (a) b;", ParseScript, "with statement in strict mode"},
		{"let a; let a;", ParseScript, "redeclaration of a"},
		{"continue;", ParseScript, "continue outside of a loop"},
		{"break;", ParseScript, "break outside of a loop or switch"},
		{"a: a: ;", ParseScript, "duplicate label a"},
		{"x: while (a) break y;", ParseScript, "undefined label y"},
		{"new.target", ParseScript, "new.target outside of a function"},
		{"'use strict'; 010;", ParseScript, "octal literals are not allowed in strict mode"},
		{"'use strict'; delete x;", ParseScript, "delete of an unqualified identifier in strict mode"},
		{"({__proto__: 1, __proto__: 2})", ParseScript, "duplicate __proto__ property"},
		{"var await;", ParseModule, "await is a reserved word in modules"},
		{"export {a};", ParseModule, "exported binding a is not declared"},
		{"with (a) b;", ParseModule, "with statement in strict mode"},
		{"class A { constructor() {} constructor() {} }", ParseScript, "duplicate constructor"},
		{"function f() { super(); }", ParseScript, "super call outside of a derived class constructor"},
	} {
		if _, err := Parse("test.js", []byte(c.src), c.mode, false); err != nil {
			t.Errorf("parse %s %q without early errors: %v", c.mode, c.src, err)
			continue
		}
		_, err := Parse("test.js", []byte(c.src), c.mode, true)
		if !errors.Is(errors.Early, err) {
			t.Errorf("parse %s %q: got %v, want Early error", c.mode, c.src, err)
			continue
		}
		if msg := err.Error(); !strings.Contains(msg, c.msg) {
			t.Errorf("parse %s %q: got %q, want it to contain %q", c.mode, c.src, msg, c.msg)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := Parse("x.js", []byte("a;\nb +"), ParseScript, false)
	if !errors.Is(errors.Syntax, err) {
		t.Fatalf("got %v, want Syntax error", err)
	}
	list, ok := errors.Recover(err).Err.(PosErrors)
	if !ok {
		t.Fatalf("got %T, want PosErrors", errors.Recover(err).Err)
	}
	assert.EQ(t, len(list), 1)
	assert.EQ(t, list[0].File, "x.js")
	assert.EQ(t, list[0].Line, 2)
	assert.EQ(t, list[0].Column, 4)
	if msg := list[0].Error(); !strings.HasPrefix(msg, "x.js:2:4: ") {
		t.Errorf("unexpected error message %q", msg)
	}

	_, err = Parse("", []byte("let a;\nlet a;\ncontinue;"), ParseScript, true)
	list = errors.Recover(err).Err.(PosErrors)
	assert.EQ(t, len(list), 2)
	assert.EQ(t, list[0].Error(), "2:5: redeclaration of a")
	assert.EQ(t, list[1].Error(), "3:1: continue outside of a loop")
	assert.EQ(t, list.Error(), "2:5: redeclaration of a\n3:1: continue outside of a loop")
}

func TestParserMode(t *testing.T) {
	assert.EQ(t, ParseScript.String(), "script")
	assert.EQ(t, ParseModule.String(), "module")
	p := Parser{Body: strings.NewReader("yield = 1"), Mode: ParseScript, EarlyErrors: true}
	assert.NoError(t, p.Parse())
	if _, ok := p.Program.(*Script); !ok {
		t.Errorf("got %T, want *Script", p.Program)
	}
	p = Parser{Body: strings.NewReader("yield = 1"), Mode: ParseModule, EarlyErrors: true}
	if err := p.Parse(); !errors.Is(errors.Early, err) {
		t.Errorf("got %v, want Early error", err)
	}
}
