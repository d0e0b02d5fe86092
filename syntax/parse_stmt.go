// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

// isLet tells whether the current let token begins a lexical
// declaration.
func (x *Parser) isLet() bool {
	if !x.tok.isName("let") {
		return false
	}
	t := x.peek()
	switch {
	case t.is("[") || t.is("{"):
		return true
	case t.kind == tokIdent:
		return !t.isName("in") && !t.isName("instanceof")
	}
	return false
}

func (x *Parser) parseStatementListItem() Statement {
	start := x.tok.pos
	switch {
	case x.tok.isName("function"):
		x.settleLabels(false)
		return x.parseFunctionDeclaration(start, false, false)
	case x.isAsyncFunction():
		x.settleLabels(false)
		x.next()
		return x.parseFunctionDeclaration(start, true, false)
	case x.tok.isName("class"):
		return x.parseClassDeclaration(start, false)
	case x.tok.isName("const") || x.isLet():
		decl := x.parseVariableDeclaration(false, false)
		x.semicolon()
		return &VariableDeclarationStatement{Loc: x.loc(start), Declaration: decl}
	}
	return x.parseStatement()
}

func (x *Parser) parseStatement() Statement {
	start := x.tok.pos
	t := x.tok
	if t.kind == tokIdent && !keywords[t.value] && x.peek().is(":") {
		return x.parseLabeled()
	}
	x.settleLabels(t.isName("for") || t.isName("while") || t.isName("do"))

	switch {
	case t.is("{"):
		return &BlockStatement{Loc: x.loc(start), Block: x.parseBlock(true)}
	case t.is(";"):
		x.next()
		return &EmptyStatement{Loc: x.loc(start)}
	case t.kind != tokIdent || t.escaped:
		return x.parseExpressionStatement()
	}
	switch t.value {
	case "var":
		decl := x.parseVariableDeclaration(false, false)
		x.semicolon()
		return &VariableDeclarationStatement{Loc: x.loc(start), Declaration: decl}
	case "if":
		return x.parseIf()
	case "for":
		return x.parseFor()
	case "while":
		x.next()
		x.expect("(")
		test := x.parseExpression(false)
		x.expect(")")
		body := x.parseLoopBody()
		return &WhileStatement{Loc: x.loc(start), Test: test, Body: body}
	case "do":
		x.next()
		body := x.parseLoopBody()
		x.expectName("while")
		x.expect("(")
		test := x.parseExpression(false)
		x.expect(")")
		x.eat(";")
		return &DoWhileStatement{Loc: x.loc(start), Body: body, Test: test}
	case "continue", "break":
		return x.parseBreakContinue()
	case "return":
		if !x.fn.inFunction {
			x.fail(start, "return outside of a function")
		}
		x.next()
		var e Expression
		if !x.tok.is(";") && !x.tok.is("}") && x.tok.kind != tokEOF && !x.tok.nl {
			e = x.parseExpression(false)
		}
		x.semicolon()
		return &ReturnStatement{Loc: x.loc(start), Expression: e}
	case "with":
		if x.fn.strict {
			x.earlyf(start, "with statement in strict mode")
		}
		x.next()
		x.expect("(")
		obj := x.parseExpression(false)
		x.expect(")")
		body := x.parseStatement()
		return &WithStatement{Loc: x.loc(start), Object: obj, Body: body}
	case "switch":
		return x.parseSwitch()
	case "throw":
		x.next()
		if x.tok.nl {
			x.fail(x.tok.pos, "illegal newline after throw")
		}
		e := x.parseExpression(false)
		x.semicolon()
		return &ThrowStatement{Loc: x.loc(start), Expression: e}
	case "try":
		return x.parseTry()
	case "debugger":
		x.next()
		x.semicolon()
		return &DebuggerStatement{Loc: x.loc(start)}
	case "function", "class", "const":
		x.fail(start, "%s declaration not allowed in statement position", t.value)
	case "import", "export":
		x.fail(start, "%s declaration may only appear at the top level of a module", t.value)
	}
	return x.parseExpressionStatement()
}

func (x *Parser) parseExpressionStatement() Statement {
	start := x.tok.pos
	switch {
	case x.tok.isName("let") && x.peek().is("["):
		x.fail(start, "lexical declaration not allowed in statement position")
	case x.isAsyncFunction():
		x.fail(start, "async function declaration not allowed in statement position")
	}
	e := x.parseExpression(false)
	x.semicolon()
	return &ExpressionStatement{Loc: x.loc(start), Expression: e}
}

func (x *Parser) parseLabeled() Statement {
	start := x.tok.pos
	name, pos := x.identifier()
	x.expect(":")
	if x.findLabel(name) != nil {
		x.earlyf(pos, "duplicate label %s", name)
	}
	x.fn.labels = append(x.fn.labels, label{name: name, pending: true})
	defer func() { x.fn.labels = x.fn.labels[:len(x.fn.labels)-1] }()
	var body Statement
	if x.tok.isName("function") {
		if x.fn.strict {
			x.earlyf(x.tok.pos, "labelled function declaration in strict mode")
		}
		x.settleLabels(false)
		fn := x.parseFunctionDeclaration(x.tok.pos, false, false)
		if fn.IsGenerator {
			x.fail(fn.Start, "generator declaration not allowed in labelled statement")
		}
		body = fn
	} else {
		body = x.parseStatement()
	}
	return &LabeledStatement{Loc: x.loc(start), Label: name, Body: body}
}

func (x *Parser) parseBreakContinue() Statement {
	start := x.tok.pos
	isContinue := x.tok.value == "continue"
	x.next()
	var name string
	if x.tok.kind == tokIdent && !x.tok.nl {
		var pos Pos
		name, pos = x.identifier()
		switch l := x.findLabel(name); {
		case l == nil:
			x.earlyf(pos, "undefined label %s", name)
		case isContinue && !l.loop:
			x.earlyf(pos, "continue must refer to a loop label")
		}
	} else if isContinue && x.fn.iteration == 0 {
		x.earlyf(start, "continue outside of a loop")
	} else if !isContinue && x.fn.breakable == 0 {
		x.earlyf(start, "break outside of a loop or switch")
	}
	x.semicolon()
	if isContinue {
		return &ContinueStatement{Loc: x.loc(start), Label: name}
	}
	return &BreakStatement{Loc: x.loc(start), Label: name}
}

// parseLoopBody parses the body of an iteration statement.
func (x *Parser) parseLoopBody() Statement {
	x.fn.iteration++
	x.fn.breakable++
	defer func() {
		x.fn.iteration--
		x.fn.breakable--
	}()
	return x.parseStatement()
}

// parseBlock parses a block. When scoped is false, the block's
// declarations are made in the current scope, as for catch clauses.
func (x *Parser) parseBlock(scoped bool) *Block {
	start := x.tok.pos
	x.expect("{")
	if scoped {
		x.pushScope(scopeBlock)
		defer x.popScope()
	}
	stmts := []Statement{}
	for !x.eat("}") {
		stmts = append(stmts, x.parseStatementListItem())
	}
	return &Block{Loc: x.loc(start), Statements: stmts}
}

func (x *Parser) parseIf() Statement {
	start := x.tok.pos
	x.next()
	x.expect("(")
	test := x.parseExpression(false)
	x.expect(")")
	cons := x.parseIfClause()
	var alt Statement
	if x.eatName("else") {
		alt = x.parseIfClause()
	}
	return &IfStatement{Loc: x.loc(start), Test: test, Consequent: cons, Alternate: alt}
}

// parseIfClause parses a branch of an if statement, which in sloppy
// mode may be a plain function declaration.
func (x *Parser) parseIfClause() Statement {
	if !x.tok.isName("function") || x.fn.strict {
		return x.parseStatement()
	}
	x.pushScope(scopeBlock)
	defer x.popScope()
	fn := x.parseFunctionDeclaration(x.tok.pos, false, false)
	if fn.IsGenerator {
		x.fail(fn.Start, "generator declaration not allowed in statement position")
	}
	return fn
}

func (x *Parser) parseFor() Statement {
	start := x.tok.pos
	x.next()
	x.expect("(")
	x.pushScope(scopeBlock)
	defer x.popScope()

	var init ForInit
	switch {
	case x.tok.is(";"):
	case x.tok.isName("var") || x.tok.isName("const") || x.isLet():
		decl := x.parseVariableDeclaration(true, true)
		if x.tok.isName("in") || x.tok.isName("of") {
			if len(decl.Declarators) != 1 {
				x.fail(decl.Start, "only one binding is permitted in the head of a for-%s statement", x.tok.value)
			}
			d := decl.Declarators[0]
			_, simple := d.Binding.(*BindingIdentifier)
			if d.Init != nil && (!x.tok.isName("in") || x.fn.strict || decl.Kind != "var" || !simple) {
				x.fail(d.Start, "for-%s declaration may not have an initializer", x.tok.value)
			}
			return x.parseForInOf(start, decl)
		}
		for _, d := range decl.Declarators {
			x.checkInitializer(decl.Kind, d)
		}
		init = decl
	default:
		letStart := x.tok.isName("let")
		cover := new(coverErrors)
		e := x.parseExpressionCover(true, cover)
		if x.tok.isName("in") || x.tok.isName("of") {
			if letStart && x.tok.isName("of") {
				x.fail(e.Span().Start, "the left side of a for-of statement may not start with let")
			}
			if isSet(cover.trailingComma) {
				x.fail(cover.trailingComma, "comma is not permitted after the rest element")
			}
			return x.parseForInOf(start, x.toTarget(e))
		}
		x.checkCover(cover)
		init = e
	}
	x.expect(";")
	var test, update Expression
	if !x.tok.is(";") {
		test = x.parseExpression(false)
	}
	x.expect(";")
	if !x.tok.is(")") {
		update = x.parseExpression(false)
	}
	x.expect(")")
	body := x.parseLoopBody()
	return &ForStatement{Loc: x.loc(start), Init: init, Test: test, Update: update, Body: body}
}

// parseExpressionCover parses an Expression whose cover errors are
// left for the caller to check.
func (x *Parser) parseExpressionCover(noIn bool, cover *coverErrors) Expression {
	start := x.tok.pos
	e := x.parseAssign(noIn, cover)
	for x.eat(",") {
		right := x.parseAssign(noIn, cover)
		e = &BinaryExpression{Loc: x.loc(start), Left: e, Operator: ",", Right: right}
	}
	return e
}

// parseForInOf parses a for-in or for-of statement from its in or of
// keyword.
func (x *Parser) parseForInOf(start Pos, left ForInOfLeft) Statement {
	isOf := x.tok.isName("of")
	x.next()
	var right Expression
	if isOf {
		right = x.parseAssign(false, nil)
	} else {
		right = x.parseExpression(false)
	}
	x.expect(")")
	body := x.parseLoopBody()
	if isOf {
		return &ForOfStatement{Loc: x.loc(start), Left: left, Right: right, Body: body}
	}
	return &ForInStatement{Loc: x.loc(start), Left: left, Right: right, Body: body}
}

// parseVariableDeclaration parses a var, let or const declaration,
// declaring its names. Declarators in the head of a for statement
// (inFor) are checked for initializers by the caller.
func (x *Parser) parseVariableDeclaration(noIn, inFor bool) *VariableDeclaration {
	start := x.tok.pos
	kind := x.tok.value
	x.next()
	decl := &VariableDeclaration{Kind: kind}
	for {
		dstart := x.tok.pos
		binding := x.parseBindingTarget()
		for _, b := range boundNames(binding) {
			if kind == "var" {
				x.declareVar(b.name, b.pos)
				continue
			}
			if b.name == "let" {
				x.earlyf(b.pos, "let may not be a lexically bound name")
			}
			x.declareLexical(b.name, b.pos, false)
		}
		var init Expression
		if x.eat("=") {
			init = x.parseAssign(noIn, nil)
		}
		d := &VariableDeclarator{Loc: x.loc(dstart), Binding: binding, Init: init}
		if !inFor {
			x.checkInitializer(kind, d)
		}
		decl.Declarators = append(decl.Declarators, d)
		if !x.eat(",") {
			break
		}
	}
	decl.Loc = x.loc(start)
	return decl
}

// checkInitializer fails declarators that require an initializer:
// constants and patterns.
func (x *Parser) checkInitializer(kind string, d *VariableDeclarator) {
	if d.Init != nil {
		return
	}
	if kind == "const" {
		x.fail(d.End, "missing initializer in const declaration")
	}
	if _, ok := d.Binding.(*BindingIdentifier); !ok {
		x.fail(d.End, "missing initializer in destructuring declaration")
	}
}

func (x *Parser) parseSwitch() Statement {
	start := x.tok.pos
	x.next()
	x.expect("(")
	disc := x.parseExpression(false)
	x.expect(")")
	x.expect("{")
	x.pushScope(scopeBlock)
	defer x.popScope()
	x.fn.breakable++
	defer func() { x.fn.breakable-- }()

	var (
		pre, post = []*SwitchCase{}, []*SwitchCase{}
		def       *SwitchDefault
	)
	for !x.eat("}") {
		cstart := x.tok.pos
		switch {
		case x.eatName("case"):
			test := x.parseExpression(false)
			x.expect(":")
			c := &SwitchCase{Test: test, Consequent: x.parseCaseBody()}
			c.Loc = x.loc(cstart)
			if def == nil {
				pre = append(pre, c)
			} else {
				post = append(post, c)
			}
		case x.eatName("default"):
			if def != nil {
				x.fail(cstart, "multiple default clauses")
			}
			x.expect(":")
			def = &SwitchDefault{Consequent: x.parseCaseBody()}
			def.Loc = x.loc(cstart)
		default:
			x.unexpected()
		}
	}
	if def == nil {
		return &SwitchStatement{Loc: x.loc(start), Discriminant: disc, Cases: pre}
	}
	return &SwitchStatementWithDefault{
		Loc:              x.loc(start),
		Discriminant:     disc,
		PreDefaultCases:  pre,
		DefaultCase:      def,
		PostDefaultCases: post,
	}
}

func (x *Parser) parseCaseBody() []Statement {
	stmts := []Statement{}
	for !x.tok.is("}") && !x.tok.isName("case") && !x.tok.isName("default") {
		stmts = append(stmts, x.parseStatementListItem())
	}
	return stmts
}

func (x *Parser) parseTry() Statement {
	start := x.tok.pos
	x.next()
	body := x.parseBlock(true)
	var handler *CatchClause
	if x.tok.isName("catch") {
		cstart := x.tok.pos
		x.next()
		x.expect("(")
		s := x.pushScope(scopeCatch)
		binding := x.parseBindingTarget()
		_, s.simpleCatch = binding.(*BindingIdentifier)
		for _, b := range boundNames(binding) {
			if s.catchParams[b.name] {
				x.earlyf(b.pos, "duplicate catch parameter %s", b.name)
			}
			s.catchParams[b.name] = true
		}
		x.expect(")")
		cbody := x.parseBlock(false)
		x.popScope()
		handler = &CatchClause{Loc: x.loc(cstart), Binding: binding, Body: cbody}
	}
	if !x.eatName("finally") {
		if handler == nil {
			x.fail(x.tok.pos, "missing catch or finally after try")
		}
		return &TryCatchStatement{Loc: x.loc(start), Body: body, CatchClause: handler}
	}
	finalizer := x.parseBlock(true)
	return &TryFinallyStatement{Loc: x.loc(start), Body: body, CatchClause: handler, Finalizer: finalizer}
}

func (x *Parser) parseModuleItem() ModuleItem {
	switch {
	case x.tok.isName("import"):
		return x.parseImport()
	case x.tok.isName("export"):
		return x.parseExport()
	}
	return x.parseStatementListItem()
}

func (x *Parser) moduleSpecifier() string {
	if x.tok.kind != tokString {
		x.unexpected()
	}
	s := x.tok.value
	x.next()
	return s
}

// importBinding parses and declares an imported binding.
func (x *Parser) importBinding() *BindingIdentifier {
	b := x.bindingIdentifier()
	x.declareLexical(b.Name, b.Start, false)
	return b
}

func (x *Parser) parseImport() ModuleItem {
	start := x.tok.pos
	x.next()
	if x.tok.kind == tokString {
		spec := x.moduleSpecifier()
		x.semicolon()
		return &Import{Loc: x.loc(start), ModuleSpecifier: spec, NamedImports: []*ImportSpecifier{}}
	}
	var def *BindingIdentifier
	if x.tok.kind == tokIdent {
		def = x.importBinding()
		if !x.eat(",") {
			x.expectName("from")
			spec := x.moduleSpecifier()
			x.semicolon()
			return &Import{Loc: x.loc(start), ModuleSpecifier: spec, DefaultBinding: def, NamedImports: []*ImportSpecifier{}}
		}
	}
	if x.eat("*") {
		x.expectName("as")
		ns := x.importBinding()
		x.expectName("from")
		spec := x.moduleSpecifier()
		x.semicolon()
		return &ImportNamespace{Loc: x.loc(start), ModuleSpecifier: spec, DefaultBinding: def, NamespaceBinding: ns}
	}
	x.expect("{")
	named := []*ImportSpecifier{}
	for !x.eat("}") {
		sstart := x.tok.pos
		t := x.tok
		name := x.identifierName()
		if x.eatName("as") {
			b := x.importBinding()
			named = append(named, &ImportSpecifier{Loc: x.loc(sstart), Name: name, Binding: b})
		} else {
			x.checkIdentifier(t)
			x.checkStrictBinding(name, t.pos)
			x.declareLexical(name, t.pos, false)
			b := &BindingIdentifier{Loc: x.loc(sstart), Name: name}
			named = append(named, &ImportSpecifier{Loc: x.loc(sstart), Binding: b})
		}
		if !x.tok.is("}") {
			x.expect(",")
		}
	}
	x.expectName("from")
	spec := x.moduleSpecifier()
	x.semicolon()
	return &Import{Loc: x.loc(start), ModuleSpecifier: spec, DefaultBinding: def, NamedImports: named}
}

// addExport records an exported name.
func (x *Parser) addExport(name string, pos Pos) {
	if x.exported[name] {
		x.earlyf(pos, "duplicate export %s", name)
	}
	x.exported[name] = true
}

func (x *Parser) parseExport() ModuleItem {
	start := x.tok.pos
	x.next()
	switch {
	case x.eat("*"):
		x.expectName("from")
		spec := x.moduleSpecifier()
		x.semicolon()
		return &ExportAllFrom{Loc: x.loc(start), ModuleSpecifier: spec}
	case x.tok.isName("default"):
		pos := x.tok.pos
		x.next()
		x.addExport("default", pos)
		dstart := x.tok.pos
		var body ExportDefaultBody
		switch {
		case x.tok.isName("function"):
			body = x.parseFunctionDeclaration(dstart, false, true)
		case x.isAsyncFunction():
			x.next()
			body = x.parseFunctionDeclaration(dstart, true, true)
		case x.tok.isName("class"):
			body = x.parseClassDeclaration(dstart, true)
		default:
			body = x.parseAssign(false, nil)
			x.semicolon()
		}
		return &ExportDefault{Loc: x.loc(start), Body: body}
	case x.eat("{"):
		return x.parseExportClause(start)
	}
	dstart := x.tok.pos
	var decl ExportDeclaration
	switch {
	case x.tok.isName("function"):
		decl = x.parseFunctionDeclaration(dstart, false, false)
	case x.isAsyncFunction():
		x.next()
		decl = x.parseFunctionDeclaration(dstart, true, false)
	case x.tok.isName("class"):
		decl = x.parseClassDeclaration(dstart, false)
	case x.tok.isName("var") || x.tok.isName("let") || x.tok.isName("const"):
		decl = x.parseVariableDeclaration(false, false)
		x.semicolon()
	default:
		x.unexpected()
	}
	for _, b := range boundNames(decl) {
		x.addExport(b.name, b.pos)
	}
	return &Export{Loc: x.loc(start), Declaration: decl}
}

// parseExportClause parses an export clause, from the token following
// its opening brace: the names of local bindings or, with a from
// clause, of another module's exports.
func (x *Parser) parseExportClause(start Pos) ModuleItem {
	type spec struct {
		loc      Loc
		name     token
		exported string
	}
	var specs []spec
	for !x.eat("}") {
		sstart := x.tok.pos
		t := x.tok
		x.identifierName()
		var exported string
		if x.eatName("as") {
			exported = x.identifierName()
		}
		specs = append(specs, spec{x.loc(sstart), t, exported})
		if !x.tok.is("}") {
			x.expect(",")
		}
	}
	exportedName := func(s spec) string {
		if s.exported != "" {
			return s.exported
		}
		return s.name.value
	}
	if x.eatName("from") {
		m := x.moduleSpecifier()
		x.semicolon()
		named := []*ExportFromSpecifier{}
		for _, s := range specs {
			x.addExport(exportedName(s), s.loc.Start)
			named = append(named, &ExportFromSpecifier{Loc: s.loc, Name: s.name.value, ExportedName: s.exported})
		}
		return &ExportFrom{Loc: x.loc(start), NamedExports: named, ModuleSpecifier: m}
	}
	x.semicolon()
	named := []*ExportLocalSpecifier{}
	for _, s := range specs {
		x.checkIdentifier(s.name)
		x.addExport(exportedName(s), s.loc.Start)
		id := &IdentifierExpression{Loc: Loc{Start: s.name.pos, End: s.name.end}, Name: s.name.value}
		x.localExports = append(x.localExports, id)
		named = append(named, &ExportLocalSpecifier{Loc: s.loc, Name: id, ExportedName: s.exported})
	}
	return &ExportLocals{Loc: x.loc(start), NamedExports: named}
}
