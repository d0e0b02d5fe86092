// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"math"
	"strings"
)

// coverErrors records constructs that are valid only if the expression
// being parsed turns out to be a destructuring pattern (or, for
// doubleProto, only if it does not), until this is known.
type coverErrors struct {
	shorthandAssign Pos
	doubleProto     Pos
	trailingComma   Pos
}

func isSet(p Pos) bool { return p.Line > 0 }

// checkCover reports the errors of an expression that is not a
// pattern.
func (x *Parser) checkCover(c *coverErrors) {
	if isSet(c.shorthandAssign) {
		x.fail(c.shorthandAssign, "shorthand property initializers are valid only in destructuring patterns")
	}
	if isSet(c.doubleProto) {
		x.earlyf(c.doubleProto, "duplicate __proto__ property")
	}
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true,
	"|=": true, "^=": true,
}

// parseExpression parses an Expression: a comma-separated sequence of
// assignment expressions.
func (x *Parser) parseExpression(noIn bool) Expression {
	start := x.tok.pos
	e := x.parseAssign(noIn, nil)
	for x.eat(",") {
		right := x.parseAssign(noIn, nil)
		e = &BinaryExpression{Loc: x.loc(start), Left: e, Operator: ",", Right: right}
	}
	return e
}

// parseAssign parses an AssignmentExpression. If cover is non-nil, it
// receives the cover errors of the expression, which the caller must
// check; otherwise they are checked here.
func (x *Parser) parseAssign(noIn bool, cover *coverErrors) Expression {
	saveNoIn := x.noIn
	x.noIn = noIn
	defer func() { x.noIn = saveNoIn }()

	if x.tok.isName("yield") && x.fn.generator {
		return x.parseYield(noIn)
	}
	own := cover == nil
	var old coverErrors
	if own {
		cover = new(coverErrors)
	} else {
		old = *cover
		cover.doubleProto, cover.trailingComma = Pos{}, Pos{}
	}
	start := x.tok.pos
	x.potentialArrowAt = start.Offset
	left := x.parseConditional(noIn, cover)
	if x.tok.kind == tokPunct && assignOps[x.tok.text] && !x.isArrow(left) {
		op := x.tok.text
		var target AssignmentTarget
		if op == "=" {
			target = x.toAssignTarget(left, cover)
		} else {
			target = x.toSimpleTarget(left)
		}
		if isSet(cover.shorthandAssign) && cover.shorthandAssign.Offset >= start.Offset {
			cover.shorthandAssign = Pos{}
		}
		cover.doubleProto, cover.trailingComma = old.doubleProto, old.trailingComma
		x.next()
		right := x.parseAssign(noIn, nil)
		if op == "=" {
			return &AssignmentExpression{Loc: x.loc(start), Binding: target, Expression: right}
		}
		return &CompoundAssignmentExpression{
			Loc:        x.loc(start),
			Binding:    target.(SimpleAssignmentTarget),
			Operator:   op,
			Expression: right,
		}
	}
	if own {
		x.checkCover(cover)
	} else {
		if !isSet(cover.doubleProto) {
			cover.doubleProto = old.doubleProto
		}
		if !isSet(cover.trailingComma) {
			cover.trailingComma = old.trailingComma
		}
	}
	return left
}

// isArrow tells whether e is an arrow function not enclosed in
// parentheses: such an expression may not be an operand.
func (x *Parser) isArrow(e Node) bool {
	_, ok := e.(*ArrowExpression)
	return ok && !x.parens[e]
}

// startsExpression tells whether the current token may begin an
// expression.
func (x *Parser) startsExpression() bool {
	switch x.tok.kind {
	case tokIdent:
		return x.tok.value != "in" && x.tok.value != "instanceof" || x.tok.escaped
	case tokNumber, tokString, tokTemplate:
		return true
	case tokPunct:
		switch x.tok.text {
		case "(", "[", "{", "+", "-", "!", "~", "++", "--", "/", "/=":
			return true
		}
	}
	return false
}

func (x *Parser) parseYield(noIn bool) Expression {
	start := x.tok.pos
	if x.fn.inParams {
		x.earlyf(start, "yield expression in formal parameters")
	}
	if !isSet(x.fn.yieldPos) {
		x.fn.yieldPos = start
	}
	x.next()
	if x.tok.nl {
		return &YieldExpression{Loc: x.loc(start)}
	}
	if x.eat("*") {
		e := x.parseAssign(noIn, nil)
		return &YieldGeneratorExpression{Loc: x.loc(start), Expression: e}
	}
	if !x.startsExpression() {
		return &YieldExpression{Loc: x.loc(start)}
	}
	e := x.parseAssign(noIn, nil)
	return &YieldExpression{Loc: x.loc(start), Expression: e}
}

func (x *Parser) parseConditional(noIn bool, cover *coverErrors) Expression {
	start := x.tok.pos
	test := x.parseBinary(noIn, cover)
	if x.isArrow(test) || !x.tok.is("?") {
		return test
	}
	x.next()
	cons := x.parseAssign(false, nil)
	x.expect(":")
	alt := x.parseAssign(noIn, nil)
	return &ConditionalExpression{Loc: x.loc(start), Test: test, Consequent: cons, Alternate: alt}
}

var binaryPrec = map[string]int{
	"||": 1, "&&": 2, "|": 3, "^": 4, "&": 5,
	"==": 6, "!=": 6, "===": 6, "!==": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7, "instanceof": 7, "in": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
	"**": 11,
}

// binaryOp returns the binary operator at the current token and its
// precedence, or a zero precedence.
func (x *Parser) binaryOp(noIn bool) (string, int) {
	switch x.tok.kind {
	case tokPunct:
		return x.tok.text, binaryPrec[x.tok.text]
	case tokIdent:
		if x.tok.escaped {
			return "", 0
		}
		switch x.tok.value {
		case "instanceof":
			return "instanceof", binaryPrec["instanceof"]
		case "in":
			if !noIn {
				return "in", binaryPrec["in"]
			}
		}
	}
	return "", 0
}

func (x *Parser) parseBinary(noIn bool, cover *coverErrors) Expression {
	start := x.tok.pos
	left := x.parseUnary(cover)
	if x.isArrow(left) {
		return left
	}
	return x.parseBinaryOps(left, start, 0, noIn)
}

func (x *Parser) parseBinaryOps(left Expression, start Pos, minPrec int, noIn bool) Expression {
	op, prec := x.binaryOp(noIn)
	if prec == 0 || prec <= minPrec {
		return left
	}
	if op == "**" {
		switch left.(type) {
		case *UnaryExpression, *AwaitExpression:
			if !x.parens[left] {
				x.fail(x.tok.pos, "unparenthesized unary expression cannot be the base of **")
			}
		}
	}
	x.next()
	rstart := x.tok.pos
	rprec := prec
	if op == "**" {
		rprec--
	}
	right := x.parseBinaryOps(x.parseUnary(nil), rstart, rprec, noIn)
	e := &BinaryExpression{Loc: x.loc(start), Left: left, Operator: op, Right: right}
	return x.parseBinaryOps(e, start, minPrec, noIn)
}

func (x *Parser) parseUnary(cover *coverErrors) Expression {
	start := x.tok.pos
	if x.tok.isName("await") && x.fn.async {
		return x.parseAwait()
	}
	var op string
	switch {
	case x.tok.kind == tokPunct:
		switch x.tok.text {
		case "+", "-", "!", "~":
			op = x.tok.text
		case "++", "--":
			op = x.tok.text
			x.next()
			operand := x.toSimpleTarget(x.parseUnary(nil))
			return &UpdateExpression{Loc: x.loc(start), IsPrefix: true, Operator: op, Operand: operand}
		}
	case x.tok.isName("delete") || x.tok.isName("void") || x.tok.isName("typeof"):
		op = x.tok.value
	}
	if op != "" {
		x.next()
		operand := x.parseUnary(nil)
		if op == "delete" && x.fn.strict {
			if _, ok := operand.(*IdentifierExpression); ok {
				x.earlyf(start, "delete of an unqualified identifier in strict mode")
			}
		}
		return &UnaryExpression{Loc: x.loc(start), Operator: op, Operand: operand}
	}
	e := x.parseExprSubscripts(cover)
	if x.isArrow(e) {
		return e
	}
	if (x.tok.is("++") || x.tok.is("--")) && !x.tok.nl {
		operand := x.toSimpleTarget(e)
		op := x.tok.text
		x.next()
		return &UpdateExpression{Loc: x.loc(start), Operator: op, Operand: operand}
	}
	return e
}

func (x *Parser) parseAwait() Expression {
	start := x.tok.pos
	if x.fn.inParams {
		x.earlyf(start, "await expression in formal parameters")
	}
	if !isSet(x.fn.awaitPos) {
		x.fn.awaitPos = start
	}
	x.next()
	e := x.parseUnary(nil)
	return &AwaitExpression{Loc: x.loc(start), Expression: e}
}

func (x *Parser) parseExprSubscripts(cover *coverErrors) Expression {
	start := x.tok.pos
	base := x.parseExprAtom(cover)
	if x.isArrow(base) {
		return base.(Expression)
	}
	return x.parseSubscripts(base, start, false)
}

// parseSubscripts parses the member accesses, calls and tagged
// templates applied to base. Calls are not parsed when noCalls is
// set, as in the callee of a new expression.
func (x *Parser) parseSubscripts(base ExpressionSuper, start Pos, noCalls bool) Expression {
	asyncArrow := false
	if id, ok := base.(*IdentifierExpression); ok && id.Name == "async" && !noCalls {
		asyncArrow = x.tok.is("(") && !x.tok.nl && x.potentialArrowAt == id.Start.Offset &&
			x.src[id.Start.Offset:id.End.Offset] == "async"
	}
	for {
		switch {
		case x.tok.is("."):
			x.next()
			name := x.identifierName()
			base = &StaticMemberExpression{Loc: x.loc(start), Object: base, Property: name}
		case x.tok.is("["):
			x.next()
			e := x.parseExpression(false)
			x.expect("]")
			base = &ComputedMemberExpression{Loc: x.loc(start), Object: base, Expression: e}
		case !noCalls && x.tok.is("("):
			if asyncArrow {
				if arrow := x.parseAsyncCall(base.(*IdentifierExpression), start); arrow != nil {
					return arrow
				}
				base = x.lastCall
				asyncArrow = false
				continue
			}
			args := x.parseArguments(nil)
			base = &CallExpression{Loc: x.loc(start), Callee: base, Arguments: args}
		case x.tok.kind == tokTemplate:
			tag, ok := base.(Expression)
			if !ok {
				x.fail(x.tok.pos, "super may not be used as a template tag")
			}
			base = x.parseTemplate(tag, start)
		default:
			e, ok := base.(Expression)
			if !ok {
				x.fail(start, "unexpected super")
			}
			return e
		}
		asyncArrow = false
	}
}

// parseAsyncCall parses the arguments of a call to async. If the call
// turns out to be the parameter list of an async arrow function, the
// arrow function is returned; otherwise the call is left in
// x.lastCall.
func (x *Parser) parseAsyncCall(callee *IdentifierExpression, start Pos) Expression {
	cover := new(coverErrors)
	saveYield, saveAwait := x.fn.yieldPos, x.fn.awaitPos
	x.fn.yieldPos, x.fn.awaitPos = Pos{}, Pos{}
	args := x.parseArguments(cover)
	if x.tok.is("=>") && !x.tok.nl {
		if isSet(cover.trailingComma) {
			x.fail(cover.trailingComma, "comma is not permitted after the rest element")
		}
		if isSet(x.fn.yieldPos) {
			x.earlyf(x.fn.yieldPos, "yield expression in arrow parameters")
		}
		if isSet(x.fn.awaitPos) {
			x.earlyf(x.fn.awaitPos, "await expression in async arrow parameters")
		}
		x.fn.yieldPos, x.fn.awaitPos = saveYield, saveAwait
		var (
			items []Expression
			rest  Expression
		)
		for i, arg := range args {
			if spread, ok := arg.(*SpreadElement); ok {
				if i != len(args)-1 {
					x.fail(spread.Start, "rest parameter must be last")
				}
				rest = spread.Expression
				continue
			}
			items = append(items, arg.(Expression))
		}
		params := x.toArrowParams(start, items, rest)
		return x.parseArrow(start, params, true)
	}
	x.checkCover(cover)
	if !isSet(saveYield) {
		saveYield = x.fn.yieldPos
	}
	if !isSet(saveAwait) {
		saveAwait = x.fn.awaitPos
	}
	x.fn.yieldPos, x.fn.awaitPos = saveYield, saveAwait
	x.lastCall = &CallExpression{Loc: x.loc(start), Callee: callee, Arguments: args}
	return nil
}

// parseArguments parses a parenthesized argument list.
func (x *Parser) parseArguments(cover *coverErrors) []SpreadElementExpression {
	x.expect("(")
	args := []SpreadElementExpression{}
	for !x.eat(")") {
		start := x.tok.pos
		if x.eat("...") {
			e := x.parseAssign(false, cover)
			args = append(args, &SpreadElement{Loc: x.loc(start), Expression: e})
			if cover != nil && x.tok.is(",") && !isSet(cover.trailingComma) {
				cover.trailingComma = x.tok.pos
			}
		} else {
			args = append(args, x.parseAssign(false, cover))
		}
		if !x.tok.is(")") {
			x.expect(",")
		}
	}
	return args
}

// identifierName parses an IdentifierName: any identifier, including
// reserved words.
func (x *Parser) identifierName() string {
	if x.tok.kind != tokIdent {
		x.unexpected()
	}
	name := x.tok.value
	x.next()
	return name
}

// checkIdentifier checks that the identifier token t may be used as an
// identifier reference or binding identifier in the current context.
func (x *Parser) checkIdentifier(t token) {
	name := t.value
	switch {
	case keywords[name]:
		if t.escaped {
			x.fail(t.pos, "keyword %s must not contain escaped characters", name)
		}
		x.fail(t.pos, "unexpected keyword %s", name)
	case name == "yield":
		if x.fn.generator {
			x.fail(t.pos, "yield is not a valid identifier in generators")
		}
		if x.fn.strict {
			x.earlyf(t.pos, "yield is a reserved word in strict mode")
		}
	case name == "await":
		if x.fn.async {
			x.fail(t.pos, "await is not a valid identifier in async functions")
		}
		if x.Mode == ParseModule {
			x.earlyf(t.pos, "await is a reserved word in modules")
		}
	case x.fn.strict && strictReserved[name]:
		x.earlyf(t.pos, "%s is a reserved word in strict mode", name)
	}
}

// identifier parses an identifier reference or binding identifier,
// returning its name and position.
func (x *Parser) identifier() (string, Pos) {
	if x.tok.kind != tokIdent {
		x.unexpected()
	}
	t := x.tok
	x.checkIdentifier(t)
	x.next()
	return t.value, t.pos
}

func (x *Parser) bindingIdentifier() *BindingIdentifier {
	name, start := x.identifier()
	x.checkStrictBinding(name, start)
	return &BindingIdentifier{Loc: x.loc(start), Name: name}
}

func (x *Parser) parseExprAtom(cover *coverErrors) ExpressionSuper {
	start := x.tok.pos
	t := x.tok
	canBeArrow := x.potentialArrowAt == start.Offset
	switch t.kind {
	case tokIdent:
		if !t.escaped {
			switch t.value {
			case "this":
				x.next()
				return &ThisExpression{Loc: x.loc(start)}
			case "null":
				x.next()
				return &LiteralNullExpression{Loc: x.loc(start)}
			case "true", "false":
				x.next()
				return &LiteralBooleanExpression{Loc: x.loc(start), Value: t.value == "true"}
			case "function":
				return x.parseFunctionExpression(start, false)
			case "class":
				return x.parseClassExpression()
			case "new":
				return x.parseNew()
			case "super":
				return x.parseSuper()
			case "async":
				if e := x.parseAsyncAtom(canBeArrow); e != nil {
					return e
				}
			}
		}
		name, _ := x.identifier()
		if canBeArrow && x.tok.is("=>") && !x.tok.nl {
			id := &IdentifierExpression{Loc: x.loc(start), Name: name}
			params := x.toArrowParams(start, []Expression{id}, nil)
			return x.parseArrow(start, params, false)
		}
		return &IdentifierExpression{Loc: x.loc(start), Name: name}
	case tokNumber:
		if t.octal && x.fn.strict {
			x.earlyf(start, "octal literals are not allowed in strict mode")
		}
		x.next()
		if math.IsInf(t.num, 0) {
			return &LiteralInfinityExpression{Loc: x.loc(start)}
		}
		return &LiteralNumericExpression{Loc: x.loc(start), Value: t.num}
	case tokString:
		if t.octal && x.fn.strict {
			x.earlyf(start, "octal escape sequences are not allowed in strict mode")
		}
		x.next()
		lit := &LiteralStringExpression{Loc: x.loc(start), Value: t.value}
		if t.octal {
			x.octal[lit] = true
		}
		return lit
	case tokTemplate:
		return x.parseTemplate(nil, start)
	case tokPunct:
		switch t.text {
		case "/", "/=":
			return x.parseRegExp()
		case "(":
			return x.parseParen(canBeArrow)
		case "[":
			return x.parseArrayLiteral(cover)
		case "{":
			return x.parseObjectLiteral(cover)
		}
	}
	x.unexpected()
	panic("not reached")
}

// parseAsyncAtom parses the async function expressions and the async
// arrow functions with a single unparenthesized parameter. It returns
// nil if the current async token is not one of these.
func (x *Parser) parseAsyncAtom(canBeArrow bool) Expression {
	start := x.tok.pos
	s := x.lex.save()
	t1 := x.lex.next()
	t2 := x.lex.next()
	x.lex.restore(s)
	switch {
	case t1.nl:
		return nil
	case t1.isName("function"):
		x.next()
		return x.parseFunctionExpression(start, true)
	case canBeArrow && t1.kind == tokIdent && t2.is("=>") && !t2.nl:
		x.next()
		name, pos := x.identifier()
		id := &IdentifierExpression{Loc: x.loc(pos), Name: name}
		params := x.toArrowParams(pos, []Expression{id}, nil)
		return x.parseArrow(start, params, true)
	}
	return nil
}

func (x *Parser) parseSuper() ExpressionSuper {
	start := x.tok.pos
	x.next()
	switch {
	case x.tok.is("("):
		if !x.fn.superCall {
			x.earlyf(start, "super call outside of a derived class constructor")
		}
	case x.tok.is(".") || x.tok.is("["):
		if !x.fn.superProp {
			x.earlyf(start, "super property outside of a method")
		}
	default:
		x.unexpected()
	}
	return &Super{Loc: x.loc(start)}
}

func (x *Parser) parseNew() Expression {
	start := x.tok.pos
	x.next()
	if x.eat(".") {
		if !x.tok.isName("target") {
			x.unexpected()
		}
		x.next()
		if !x.fn.newTarget {
			x.earlyf(start, "new.target outside of a function")
		}
		return &NewTargetExpression{Loc: x.loc(start)}
	}
	cstart := x.tok.pos
	var atom ExpressionSuper
	if x.tok.isName("super") {
		x.next()
		if !x.tok.is(".") && !x.tok.is("[") {
			x.unexpected()
		}
		if !x.fn.superProp {
			x.earlyf(cstart, "super property outside of a method")
		}
		atom = &Super{Loc: x.loc(cstart)}
	} else {
		atom = x.parseExprAtom(nil)
	}
	callee := x.parseSubscripts(atom, cstart, true)
	args := []SpreadElementExpression{}
	if x.tok.is("(") {
		args = x.parseArguments(nil)
	}
	return &NewExpression{Loc: x.loc(start), Callee: callee, Arguments: args}
}

// regexpFlags are the valid regular expression flags.
const regexpFlags = "gimsuy"

func (x *Parser) parseRegExp() Expression {
	start := x.tok.pos
	x.tok = x.lex.rescanRegExp(x.tok)
	if x.tok.kind == tokIllegal {
		x.unexpected()
	}
	t := x.tok
	x.next()
	re := &LiteralRegExpExpression{Loc: x.loc(start), Pattern: t.value}
	for i, f := range t.flags {
		if !strings.ContainsRune(regexpFlags, f) || strings.ContainsRune(t.flags[:i], f) {
			x.earlyf(start, "invalid regular expression flags %q", t.flags)
			break
		}
		switch f {
		case 'g':
			re.Global = true
		case 'i':
			re.IgnoreCase = true
		case 'm':
			re.MultiLine = true
		case 's':
			re.DotAll = true
		case 'u':
			re.Unicode = true
		case 'y':
			re.Sticky = true
		}
	}
	return re
}

// parseTemplate parses a template literal beginning at the current
// template token. Tag is nil for untagged templates.
func (x *Parser) parseTemplate(tag Expression, start Pos) *TemplateExpression {
	elements := []TemplatePart{}
	for {
		t := x.tok
		if t.kind != tokTemplate {
			x.unexpected()
		}
		if t.badEscape && tag == nil {
			x.fail(t.pos, "invalid escape sequence in template")
		}
		elements = append(elements, &TemplateElement{Loc: Loc{Start: t.pos, End: t.end}, RawValue: t.value})
		x.next()
		if t.tail {
			break
		}
		elements = append(elements, x.parseExpression(false))
		if !x.tok.is("}") {
			x.unexpected()
		}
		x.tok = x.lex.rescanTemplate(x.tok)
	}
	return &TemplateExpression{Loc: x.loc(start), Tag: tag, Elements: elements}
}

// parseParen parses a parenthesized expression or the parameter list
// of an arrow function.
func (x *Parser) parseParen(canBeArrow bool) Expression {
	start := x.tok.pos
	x.next()
	cover := new(coverErrors)
	saveYield, saveAwait := x.fn.yieldPos, x.fn.awaitPos
	x.fn.yieldPos, x.fn.awaitPos = Pos{}, Pos{}

	var (
		exprs         []Expression
		rest          *restParam
		trailingComma Pos
	)
	for first := true; !x.tok.is(")"); first = false {
		if !first {
			x.expect(",")
			if x.tok.is(")") {
				trailingComma = x.prev
				break
			}
		}
		if x.tok.is("...") {
			rstart := x.tok.pos
			x.next()
			rest = &restParam{pos: rstart, binding: x.parseBindingTarget()}
			if x.tok.is(",") {
				x.fail(x.tok.pos, "comma is not permitted after the rest element")
			}
			break
		}
		exprs = append(exprs, x.parseAssign(false, cover))
	}
	x.expect(")")

	if canBeArrow && x.tok.is("=>") && !x.tok.nl {
		if isSet(cover.trailingComma) {
			x.fail(cover.trailingComma, "comma is not permitted after the rest element")
		}
		if isSet(x.fn.yieldPos) {
			x.earlyf(x.fn.yieldPos, "yield expression in arrow parameters")
		}
		if isSet(x.fn.awaitPos) {
			x.earlyf(x.fn.awaitPos, "await expression in arrow parameters")
		}
		x.fn.yieldPos, x.fn.awaitPos = saveYield, saveAwait
		params := x.toArrowParams(start, exprs, nil)
		if rest != nil {
			params.Rest = rest.binding
			params.Loc = x.loc(start)
		}
		return x.parseArrow(start, params, false)
	}
	if len(exprs) == 0 || isSet(trailingComma) {
		x.fail(x.prev, "unexpected )")
	}
	if rest != nil {
		x.fail(rest.pos, "unexpected ...")
	}
	x.checkCover(cover)
	if !isSet(saveYield) {
		saveYield = x.fn.yieldPos
	}
	if !isSet(saveAwait) {
		saveAwait = x.fn.awaitPos
	}
	x.fn.yieldPos, x.fn.awaitPos = saveYield, saveAwait

	e := exprs[0]
	for _, right := range exprs[1:] {
		e = &BinaryExpression{
			Loc:      Loc{Start: e.Span().Start, End: right.Span().End},
			Left:     e,
			Operator: ",",
			Right:    right,
		}
	}
	x.parens[e] = true
	return e
}

type restParam struct {
	pos     Pos
	binding Binding
}

func (x *Parser) parseArrayLiteral(cover *coverErrors) Expression {
	start := x.tok.pos
	x.next()
	elements := []SpreadElementExpression{}
	for !x.eat("]") {
		if x.eat(",") {
			elements = append(elements, nil)
			continue
		}
		estart := x.tok.pos
		if x.eat("...") {
			e := x.parseAssign(false, cover)
			elements = append(elements, &SpreadElement{Loc: x.loc(estart), Expression: e})
			if cover != nil && x.tok.is(",") && !isSet(cover.trailingComma) {
				cover.trailingComma = x.tok.pos
			}
		} else {
			elements = append(elements, x.parseAssign(false, cover))
		}
		if !x.tok.is("]") {
			x.expect(",")
		}
	}
	return &ArrayExpression{Loc: x.loc(start), Elements: elements}
}

func (x *Parser) parseObjectLiteral(cover *coverErrors) Expression {
	start := x.tok.pos
	x.next()
	props := []ObjectProperty{}
	var proto bool
	for !x.eat("}") {
		props = append(props, x.parseObjectProperty(cover, &proto))
		if !x.tok.is("}") {
			x.expect(",")
		}
	}
	return &ObjectExpression{Loc: x.loc(start), Properties: props}
}

// isPropertyModifier tells whether the identifier at the current token
// (get, set, async, static) acts as a modifier of the property
// definition that follows, rather than as a property name.
func (x *Parser) isPropertyModifier() bool {
	t := x.peek()
	if t.kind == tokPunct {
		switch t.text {
		case "(", ")", ",", ":", "}", "=", ";":
			return false
		}
	}
	return t.kind != tokEOF
}

func (x *Parser) parseObjectProperty(cover *coverErrors, proto *bool) ObjectProperty {
	start := x.tok.pos
	if x.tok.is("*") {
		x.next()
		name, _ := x.parsePropertyName()
		return x.parseMethod(start, name, false, true, funcMethod)
	}
	if x.tok.isName("async") && x.isPropertyModifier() && !x.peek().nl {
		x.next()
		if x.tok.is("*") {
			x.fail(x.tok.pos, "async generators are not supported")
		}
		name, _ := x.parsePropertyName()
		return x.parseMethod(start, name, true, false, funcMethod)
	}
	if (x.tok.isName("get") || x.tok.isName("set")) && x.isPropertyModifier() {
		get := x.tok.value == "get"
		x.next()
		name, _ := x.parsePropertyName()
		if get {
			return x.parseGetter(start, name, funcMethod)
		}
		return x.parseSetter(start, name, funcMethod)
	}
	nameTok := x.tok
	name, computed := x.parsePropertyName()
	switch {
	case x.eat(":"):
		e := x.parseAssign(false, cover)
		if static, ok := name.(*StaticPropertyName); ok && !computed && static.Value == "__proto__" {
			if *proto {
				if cover != nil {
					if !isSet(cover.doubleProto) {
						cover.doubleProto = static.Start
					}
				} else {
					x.earlyf(static.Start, "duplicate __proto__ property")
				}
			}
			*proto = true
		}
		return &DataProperty{Loc: x.loc(start), Name: name, Expression: e}
	case x.tok.is("("):
		return x.parseMethod(start, name, false, false, funcMethod)
	case nameTok.kind == tokIdent:
		x.checkIdentifier(nameTok)
		id := &IdentifierExpression{Loc: x.loc(start), Name: nameTok.value}
		prop := &ShorthandProperty{Loc: x.loc(start), Name: id}
		if x.tok.is("=") {
			if cover == nil {
				x.fail(x.tok.pos, "shorthand property initializers are valid only in destructuring patterns")
			}
			if !isSet(cover.shorthandAssign) {
				cover.shorthandAssign = x.tok.pos
			}
			x.next()
			x.coverInit[prop] = x.parseAssign(false, nil)
			prop.Loc = x.loc(start)
		}
		return prop
	}
	x.unexpected()
	panic("not reached")
}

// parsePropertyName parses a property name, reporting whether it is
// computed.
func (x *Parser) parsePropertyName() (PropertyName, bool) {
	start := x.tok.pos
	t := x.tok
	switch t.kind {
	case tokIdent:
		x.next()
		return &StaticPropertyName{Loc: x.loc(start), Value: t.value}, false
	case tokString:
		if t.octal && x.fn.strict {
			x.earlyf(start, "octal escape sequences are not allowed in strict mode")
		}
		x.next()
		return &StaticPropertyName{Loc: x.loc(start), Value: t.value}, false
	case tokNumber:
		if t.octal && x.fn.strict {
			x.earlyf(start, "octal literals are not allowed in strict mode")
		}
		x.next()
		return &StaticPropertyName{Loc: x.loc(start), Value: NumberString(t.num)}, false
	case tokPunct:
		if t.text == "[" {
			x.next()
			e := x.parseAssign(false, nil)
			x.expect("]")
			return &ComputedPropertyName{Loc: x.loc(start), Expression: e}, true
		}
	}
	x.unexpected()
	panic("not reached")
}
