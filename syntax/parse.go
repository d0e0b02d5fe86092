// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/grailbio/jsfixture/errors"
)

// ParserMode selects the goal symbol of the parse.
type ParserMode int

const (
	// ParseScript parses a Script.
	ParseScript ParserMode = iota
	// ParseModule parses a Module.
	ParseModule
)

func (m ParserMode) String() string {
	if m == ParseModule {
		return "module"
	}
	return "script"
}

// Parser is a recursive-descent ECMAScript 2017 parser that produces
// Shift syntax trees.
//
// Grammar errors always fail the parse. Early errors (the static
// semantics of the language: strict mode restrictions, redeclarations,
// label rules, and so on) are collected while parsing and fail the
// parse only when EarlyErrors is set.
type Parser struct {
	// File is prefixed to parser error locations.
	File string
	// Body is the io.Reader that is parsed.
	Body io.Reader
	// Mode governs whether a script or a module is parsed.
	Mode ParserMode
	// EarlyErrors determines whether early errors fail the parse.
	EarlyErrors bool

	// Program contains the parsed program: a *Script or a *Module,
	// depending on Mode.
	Program Program

	src   string
	lex   *lexer
	tok   token
	prev  Pos
	el    errlist
	early errlist

	fn    *funcState
	scope *scope

	// parens holds the expressions and assignment targets that were
	// written in parentheses.
	parens map[Node]bool
	// coverInit holds the initializers of shorthand properties written
	// as cover-initialized names, as in ({a = 1} = b).
	coverInit map[*ShorthandProperty]Expression
	// octal holds string literals that contain legacy octal escapes.
	octal map[*LiteralStringExpression]bool
	// noIn is set while parsing an expression in which the in operator
	// is not permitted.
	noIn bool
	// potentialArrowAt is the offset of the assignment expression
	// being parsed, the only place an arrow function may begin.
	potentialArrowAt int
	// lastCall holds a call to async that did not turn out to be an
	// async arrow function.
	lastCall *CallExpression
	// exported holds the names exported by a module; localExports the
	// local bindings referenced by export clauses.
	exported     map[string]bool
	localExports []*IdentifierExpression
}

// bailout is panicked to abandon a parse after a grammar error.
type bailout struct{}

// Parse parses the parser's body and reports any error. Grammar errors
// are reported with kind errors.Syntax; early errors with kind
// errors.Early.
func (x *Parser) Parse() (err error) {
	b, err := ioutil.ReadAll(x.Body)
	if err != nil {
		return errors.E("parse", x.File, err)
	}
	x.src = string(b)
	x.lex = newLexer(x.src, x.Mode == ParseModule)
	x.parens = make(map[Node]bool)
	x.coverInit = make(map[*ShorthandProperty]Expression)
	x.octal = make(map[*LiteralStringExpression]bool)
	x.exported = make(map[string]bool)
	x.fn = &funcState{strict: x.Mode == ParseModule}
	x.scope = newScope(scopeTop, nil)
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
			err = errors.E(errors.Syntax, x.el.Make())
		}
	}()
	x.next()
	var prog Program
	switch x.Mode {
	case ParseScript:
		prog = x.parseScript()
	case ParseModule:
		prog = x.parseModule()
	default:
		panic(fmt.Sprintf("syntax: bad parser mode %d", x.Mode))
	}
	if x.EarlyErrors && len(x.early) > 0 {
		return errors.E(errors.Early, x.early.Make())
	}
	x.Program = prog
	return nil
}

// Parse parses src with the given mode. It is a convenience wrapper
// around Parser.
func Parse(file string, src []byte, mode ParserMode, earlyErrors bool) (Program, error) {
	p := Parser{File: file, Body: bytes.NewReader(src), Mode: mode, EarlyErrors: earlyErrors}
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Program, nil
}

// fail records a grammar error and abandons the parse.
func (x *Parser) fail(pos Pos, format string, args ...interface{}) {
	x.el = x.el.Errorf(x.File, pos, format, args...)
	panic(bailout{})
}

// earlyf records an early error.
func (x *Parser) earlyf(pos Pos, format string, args ...interface{}) {
	x.early = x.early.Errorf(x.File, pos, format, args...)
}

func (x *Parser) unexpected() {
	if x.tok.kind == tokIllegal {
		x.fail(x.tok.pos, "%s", x.tok.err)
	}
	x.fail(x.tok.pos, "unexpected %v", x.tok)
}

func (x *Parser) next() {
	x.prev = x.tok.end
	x.tok = x.lex.next()
}

// peek returns the token following the current one.
func (x *Parser) peek() token {
	s := x.lex.save()
	t := x.lex.next()
	x.lex.restore(s)
	return t
}

func (x *Parser) loc(start Pos) Loc {
	return Loc{Start: start, End: x.prev}
}

func (x *Parser) eat(punct string) bool {
	if x.tok.is(punct) {
		x.next()
		return true
	}
	return false
}

func (x *Parser) expect(punct string) {
	if !x.eat(punct) {
		x.unexpected()
	}
}

func (x *Parser) eatName(name string) bool {
	if x.tok.isName(name) {
		x.next()
		return true
	}
	return false
}

func (x *Parser) expectName(name string) {
	if !x.eatName(name) {
		x.unexpected()
	}
}

// semicolon consumes a statement terminator, inserting one where the
// automatic semicolon insertion rules permit.
func (x *Parser) semicolon() {
	if x.eat(";") {
		return
	}
	if x.tok.is("}") || x.tok.kind == tokEOF || x.tok.nl {
		return
	}
	x.unexpected()
}

func (x *Parser) parseScript() *Script {
	start := x.tok.pos
	dirs, stmts := x.parseBody(func() bool { return x.tok.kind == tokEOF }, nil)
	return &Script{Loc: x.loc(start), Directives: dirs, Statements: stmts}
}

func (x *Parser) parseModule() *Module {
	start := x.tok.pos
	var (
		dirs  []*Directive
		items []ModuleItem
	)
	prologue := true
	for x.tok.kind != tokEOF {
		item := x.parseModuleItem()
		if prologue {
			if d := x.directive(item); d != nil {
				dirs = append(dirs, d)
				continue
			}
			prologue = false
		}
		items = append(items, item)
	}
	for _, id := range x.localExports {
		if !x.scope.lexical[id.Name] && !x.scope.vars[id.Name] {
			x.earlyf(id.Start, "exported binding %s is not declared", id.Name)
		}
	}
	return &Module{Loc: x.loc(start), Directives: dirs, Items: items}
}

// parseBody parses a statement list with a directive prologue, up to
// (but not including) the token for which end returns true. When
// params is non-nil, it holds the parameters of the function whose
// body is parsed.
func (x *Parser) parseBody(end func() bool, params *FormalParameters) (dirs []*Directive, stmts []Statement) {
	prologue := true
	var octal *LiteralStringExpression
	for !end() {
		stmt := x.parseStatementListItem()
		if prologue {
			if d := x.directive(stmt); d != nil {
				lit := stmt.(*ExpressionStatement).Expression.(*LiteralStringExpression)
				if x.octal[lit] && octal == nil {
					octal = lit
				}
				if d.RawValue == "use strict" {
					if params != nil && !isSimpleParams(params) {
						x.earlyf(d.Start, `"use strict" not allowed in function with non-simple parameters`)
					}
					if octal != nil && !x.fn.strict {
						x.earlyf(octal.Start, "octal escape sequences are not allowed in strict mode")
					}
					x.fn.strict = true
				}
				dirs = append(dirs, d)
				continue
			}
			prologue = false
		}
		stmts = append(stmts, stmt)
	}
	return
}

// directive returns the directive represented by item, or nil if item
// is not a directive: an expression statement consisting only of an
// unparenthesized string literal.
func (x *Parser) directive(item ModuleItem) *Directive {
	stmt, ok := item.(*ExpressionStatement)
	if !ok {
		return nil
	}
	lit, ok := stmt.Expression.(*LiteralStringExpression)
	if !ok || x.parens[lit] {
		return nil
	}
	raw := x.src[lit.Start.Offset+1 : lit.End.Offset-1]
	return &Directive{Loc: stmt.Loc, RawValue: raw}
}
