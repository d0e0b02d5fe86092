// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

// funcState is the parsing context of a function body (or of the
// program's top level).
type funcState struct {
	parent *funcState
	strict bool
	// generator and async tell whether yield and await are operators.
	generator, async bool
	// inFunction tells whether return is permitted.
	inFunction bool
	arrow      bool
	// superProp, superCall and newTarget tell whether super
	// properties, super calls and new.target are permitted. Arrow
	// functions inherit them.
	superProp, superCall, newTarget bool
	// inParams is set while the function's parameters are parsed.
	inParams bool
	// yieldPos and awaitPos record the first yield and await
	// expressions in the current potential arrow parameter list.
	yieldPos, awaitPos Pos

	labels               []label
	breakable, iteration int
}

type label struct {
	name    string
	loop    bool
	pending bool
}

type funcKind int

const (
	funcPlain funcKind = iota
	funcArrow
	funcMethod
	funcConstructor
	funcDerivedConstructor
)

// pushFunc enters a new function context.
func (x *Parser) pushFunc(kind funcKind, generator, async bool) *funcState {
	fs := &funcState{
		parent:     x.fn,
		strict:     x.fn.strict,
		generator:  generator,
		async:      async,
		inFunction: true,
		arrow:      kind == funcArrow,
	}
	switch kind {
	case funcArrow:
		fs.superProp = x.fn.superProp
		fs.superCall = x.fn.superCall
		fs.newTarget = x.fn.newTarget
	case funcPlain:
		fs.newTarget = true
	case funcMethod, funcConstructor:
		fs.newTarget, fs.superProp = true, true
	case funcDerivedConstructor:
		fs.newTarget, fs.superProp, fs.superCall = true, true, true
	}
	x.fn = fs
	return fs
}

func (x *Parser) popFunc() {
	x.fn = x.fn.parent
}

// findLabel returns the innermost label with the given name in the
// current function, or nil.
func (x *Parser) findLabel(name string) *label {
	for i := len(x.fn.labels) - 1; i >= 0; i-- {
		if x.fn.labels[i].name == name {
			return &x.fn.labels[i]
		}
	}
	return nil
}

// settleLabels marks the pending labels as labelling a loop or not,
// once the statement they label has begun.
func (x *Parser) settleLabels(loop bool) {
	for i := len(x.fn.labels) - 1; i >= 0 && x.fn.labels[i].pending; i-- {
		x.fn.labels[i].loop = loop
		x.fn.labels[i].pending = false
	}
}

type scopeKind int

const (
	scopeTop scopeKind = iota
	scopeFunction
	scopeBlock
	scopeCatch
)

// scope records the names declared in a lexical scope, for the
// detection of conflicting declarations.
type scope struct {
	kind   scopeKind
	parent *scope
	// lexical holds let, const, class and (in blocks and modules)
	// function declarations; functions the subset of those that are
	// plain function declarations.
	lexical   map[string]bool
	functions map[string]bool
	// vars holds the var declarations in this scope or any nested
	// block.
	vars map[string]bool
	// params holds the parameters of a function scope; catchParams
	// the parameters of a catch clause.
	params      map[string]bool
	catchParams map[string]bool
	simpleCatch bool
}

func newScope(kind scopeKind, parent *scope) *scope {
	return &scope{
		kind:        kind,
		parent:      parent,
		lexical:     make(map[string]bool),
		functions:   make(map[string]bool),
		vars:        make(map[string]bool),
		params:      make(map[string]bool),
		catchParams: make(map[string]bool),
	}
}

func (x *Parser) pushScope(kind scopeKind) *scope {
	x.scope = newScope(kind, x.scope)
	return x.scope
}

func (x *Parser) popScope() {
	x.scope = x.scope.parent
}

// declareLexical declares a lexically scoped name in the current
// scope. Plain function declarations in blocks may be redeclared by
// other plain function declarations in sloppy mode.
func (x *Parser) declareLexical(name string, pos Pos, plainFunc bool) {
	s := x.scope
	switch {
	case s.lexical[name] && !(plainFunc && s.functions[name] && !x.fn.strict && s.kind != scopeTop):
		x.earlyf(pos, "redeclaration of %s", name)
	case s.vars[name]:
		x.earlyf(pos, "redeclaration of var %s", name)
	case s.kind == scopeFunction && s.params[name]:
		x.earlyf(pos, "redeclaration of parameter %s", name)
	case s.kind == scopeCatch && s.catchParams[name]:
		x.earlyf(pos, "redeclaration of catch parameter %s", name)
	}
	s.lexical[name] = true
	if plainFunc {
		s.functions[name] = true
	} else {
		delete(s.functions, name)
	}
}

// declareVar declares a var scoped name, recording it in every scope
// up to the enclosing function.
func (x *Parser) declareVar(name string, pos Pos) {
	for s := x.scope; s != nil; s = s.parent {
		switch {
		case s.lexical[name]:
			x.earlyf(pos, "redeclaration of %s", name)
		case s.kind == scopeCatch && s.catchParams[name] && !s.simpleCatch:
			x.earlyf(pos, "redeclaration of catch parameter %s", name)
		}
		s.vars[name] = true
		if s.kind == scopeFunction || s.kind == scopeTop {
			return
		}
	}
}

// declareFunction declares the name of a function declaration, which
// is var scoped at the top level of scripts and functions, and
// lexically scoped elsewhere.
func (x *Parser) declareFunction(name string, pos Pos, plain bool) {
	s := x.scope
	if s.kind == scopeFunction || s.kind == scopeTop && x.Mode == ParseScript {
		if s.lexical[name] {
			x.earlyf(pos, "redeclaration of %s", name)
		}
		s.vars[name] = true
		return
	}
	x.declareLexical(name, pos, plain)
}

// boundName is a name bound by a binding pattern.
type boundName struct {
	name string
	pos  Pos
}

// boundNames returns the names bound by n, which is a binding, a
// parameter, a set of formal parameters, or a declaration.
func boundNames(n Node) []boundName {
	var names []boundName
	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case nil:
		case *BindingIdentifier:
			names = append(names, boundName{n.Name, n.Start})
		case *BindingWithDefault:
			walk(n.Binding)
		case *ArrayBinding:
			for _, e := range n.Elements {
				walk(e)
			}
			walk(n.Rest)
		case *ObjectBinding:
			for _, p := range n.Properties {
				switch p := p.(type) {
				case *BindingPropertyIdentifier:
					walk(p.Binding)
				case *BindingPropertyProperty:
					walk(p.Binding)
				}
			}
		case *FormalParameters:
			for _, item := range n.Items {
				walk(item)
			}
			walk(n.Rest)
		case *VariableDeclaration:
			for _, d := range n.Declarators {
				walk(d.Binding)
			}
		case *FunctionDeclaration:
			walk(n.Name)
		case *ClassDeclaration:
			walk(n.Name)
		}
	}
	walk(n)
	return names
}

func isSimpleParams(params *FormalParameters) bool {
	if params.Rest != nil {
		return false
	}
	for _, item := range params.Items {
		if _, ok := item.(*BindingIdentifier); !ok {
			return false
		}
	}
	return true
}

// declareParams records the parameters of the current function scope.
func (x *Parser) declareParams(params *FormalParameters) {
	for _, b := range boundNames(params) {
		x.scope.params[b.name] = true
	}
}

// checkParams reports the early errors of a parameter list once the
// strictness of the function body is known. Duplicate names are
// forbidden when unique is set, in strict code, and when the
// parameter list is not simple. The names themselves are checked when
// recheck is set: they were parsed before the body made the function
// strict, or were parsed as expressions.
func (x *Parser) checkParams(params *FormalParameters, unique, recheck bool) {
	unique = unique || x.fn.strict || !isSimpleParams(params)
	seen := make(map[string]bool)
	for _, b := range boundNames(params) {
		if unique && seen[b.name] {
			x.earlyf(b.pos, "duplicate parameter %s", b.name)
		}
		seen[b.name] = true
		if recheck {
			x.checkStrictBinding(b.name, b.pos)
		}
	}
}

// checkStrictBinding reports names that may not be bound in strict
// code, if the current context is strict.
func (x *Parser) checkStrictBinding(name string, pos Pos) {
	if !x.fn.strict {
		return
	}
	switch {
	case name == "eval" || name == "arguments":
		x.earlyf(pos, "%s may not be bound in strict mode", name)
	case strictReserved[name]:
		x.earlyf(pos, "%s is a reserved word in strict mode", name)
	}
}

// keywords are reserved in all code.
var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "null": true,
	"true": true, "false": true, "enum": true,
}

// strictReserved are reserved in strict code.
var strictReserved = map[string]bool{
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
}
