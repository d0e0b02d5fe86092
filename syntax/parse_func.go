// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

// isAsyncFunction tells whether the current token begins an async
// function.
func (x *Parser) isAsyncFunction() bool {
	if !x.tok.isName("async") {
		return false
	}
	t := x.peek()
	return t.isName("function") && !t.nl
}

// parseFunctionDeclaration parses a function declaration beginning at
// the function keyword. Declarations that are default exports
// (inDefault) may omit their name.
func (x *Parser) parseFunctionDeclaration(start Pos, async, inDefault bool) *FunctionDeclaration {
	x.expectName("function")
	generator := x.eat("*")
	if generator && async {
		x.fail(x.prev, "async generators are not supported")
	}
	var name *BindingIdentifier
	if inDefault && x.tok.is("(") {
		name = &BindingIdentifier{Loc: Loc{Start: x.tok.pos, End: x.tok.pos}, Name: DefaultName}
	} else {
		name = x.bindingIdentifier()
		x.declareFunction(name.Name, name.Start, !generator && !async)
	}
	x.pushFunc(funcPlain, generator, async)
	params, body, strict := x.parseFunctionRest(false)
	if strict && name.Name != DefaultName {
		x.checkStrictBinding(name.Name, name.Start)
	}
	x.popFunc()
	return &FunctionDeclaration{
		Loc:         x.loc(start),
		IsAsync:     async,
		IsGenerator: generator,
		Name:        name,
		Params:      params,
		Body:        body,
	}
}

// parseFunctionExpression parses a function expression beginning at
// the function keyword.
func (x *Parser) parseFunctionExpression(start Pos, async bool) Expression {
	x.expectName("function")
	generator := x.eat("*")
	if generator && async {
		x.fail(x.prev, "async generators are not supported")
	}
	x.pushFunc(funcPlain, generator, async)
	var name *BindingIdentifier
	if x.tok.kind == tokIdent {
		name = x.bindingIdentifier()
	}
	params, body, strict := x.parseFunctionRest(false)
	if strict && name != nil {
		x.checkStrictBinding(name.Name, name.Start)
	}
	x.popFunc()
	return &FunctionExpression{
		Loc:         x.loc(start),
		IsAsync:     async,
		IsGenerator: generator,
		Name:        name,
		Params:      params,
		Body:        body,
	}
}

// parseFunctionRest parses the parameters and body of the function
// whose state has been pushed. It reports whether the body's directive
// prologue made the function strict.
func (x *Parser) parseFunctionRest(unique bool) (*FormalParameters, *FunctionBody, bool) {
	x.pushScope(scopeFunction)
	defer x.popScope()
	x.fn.inParams = true
	params := x.parseFormalParams()
	x.fn.inParams = false
	x.declareParams(params)
	wasStrict := x.fn.strict
	body := x.parseFunctionBody(params)
	madeStrict := !wasStrict && x.fn.strict
	x.checkParams(params, unique, madeStrict)
	return params, body, madeStrict
}

func (x *Parser) parseFormalParams() *FormalParameters {
	start := x.tok.pos
	x.expect("(")
	params := &FormalParameters{Items: []Parameter{}}
	for !x.eat(")") {
		if x.eat("...") {
			params.Rest = x.parseBindingTarget()
			if !x.tok.is(")") {
				x.fail(x.tok.pos, "rest parameter must be last")
			}
			continue
		}
		params.Items = append(params.Items, x.parseBindingElement())
		if !x.tok.is(")") {
			x.expect(",")
		}
	}
	params.Loc = x.loc(start)
	return params
}

func (x *Parser) parseFunctionBody(params *FormalParameters) *FunctionBody {
	start := x.tok.pos
	x.expect("{")
	dirs, stmts := x.parseBody(func() bool { return x.tok.is("}") }, params)
	x.expect("}")
	return &FunctionBody{Loc: x.loc(start), Directives: dirs, Statements: stmts}
}

// parseArrow parses the arrow and body of an arrow function whose
// parameters have been parsed.
func (x *Parser) parseArrow(start Pos, params *FormalParameters, async bool) Expression {
	x.expect("=>")
	x.pushFunc(funcArrow, false, async)
	defer x.popFunc()
	x.pushScope(scopeFunction)
	defer x.popScope()
	x.declareParams(params)
	if async {
		for _, b := range boundNames(params) {
			if b.name == "await" {
				x.earlyf(b.pos, "await is not a valid parameter name in async functions")
			}
		}
	}
	var body ArrowBody
	if x.tok.is("{") {
		body = x.parseFunctionBody(params)
	} else {
		body = x.parseAssign(x.noIn, nil)
	}
	x.checkParams(params, true, true)
	return &ArrowExpression{Loc: x.loc(start), IsAsync: async, Params: params, Body: body}
}

// parseBindingTarget parses a binding identifier or a destructuring
// pattern.
func (x *Parser) parseBindingTarget() Binding {
	switch {
	case x.tok.is("["):
		return x.parseArrayBinding()
	case x.tok.is("{"):
		return x.parseObjectBinding()
	}
	return x.bindingIdentifier()
}

// parseBindingElement parses a binding target with an optional
// initializer.
func (x *Parser) parseBindingElement() Parameter {
	start := x.tok.pos
	b := x.parseBindingTarget()
	if !x.eat("=") {
		return b
	}
	init := x.parseAssign(false, nil)
	return &BindingWithDefault{Loc: x.loc(start), Binding: b, Init: init}
}

func (x *Parser) parseArrayBinding() *ArrayBinding {
	start := x.tok.pos
	x.expect("[")
	b := &ArrayBinding{Elements: []Parameter{}}
	for !x.eat("]") {
		if x.eat(",") {
			b.Elements = append(b.Elements, nil)
			continue
		}
		if x.eat("...") {
			b.Rest = x.parseBindingTarget()
			if !x.tok.is("]") {
				x.fail(x.tok.pos, "rest element must be last")
			}
			continue
		}
		b.Elements = append(b.Elements, x.parseBindingElement())
		if !x.tok.is("]") {
			x.expect(",")
		}
	}
	b.Loc = x.loc(start)
	return b
}

func (x *Parser) parseObjectBinding() *ObjectBinding {
	start := x.tok.pos
	x.expect("{")
	b := &ObjectBinding{Properties: []BindingProperty{}}
	for !x.eat("}") {
		pstart := x.tok.pos
		t := x.tok
		name, computed := x.parsePropertyName()
		if !computed && t.kind == tokIdent && !x.tok.is(":") {
			x.checkIdentifier(t)
			x.checkStrictBinding(t.value, t.pos)
			id := &BindingIdentifier{Loc: name.Span(), Name: t.value}
			var init Expression
			if x.eat("=") {
				init = x.parseAssign(false, nil)
			}
			b.Properties = append(b.Properties, &BindingPropertyIdentifier{Loc: x.loc(pstart), Binding: id, Init: init})
		} else {
			x.expect(":")
			elem := x.parseBindingElement()
			b.Properties = append(b.Properties, &BindingPropertyProperty{Loc: x.loc(pstart), Name: name, Binding: elem})
		}
		if !x.tok.is("}") {
			x.expect(",")
		}
	}
	b.Loc = x.loc(start)
	return b
}

// parseMethod parses the parameters and body of a method whose name
// has been parsed.
func (x *Parser) parseMethod(start Pos, name PropertyName, async, generator bool, kind funcKind) *Method {
	x.pushFunc(kind, generator, async)
	defer x.popFunc()
	params, body, _ := x.parseFunctionRest(true)
	return &Method{
		Loc:         x.loc(start),
		IsAsync:     async,
		IsGenerator: generator,
		Name:        name,
		Params:      params,
		Body:        body,
	}
}

func (x *Parser) parseGetter(start Pos, name PropertyName, kind funcKind) *Getter {
	x.pushFunc(kind, false, false)
	defer x.popFunc()
	x.pushScope(scopeFunction)
	defer x.popScope()
	x.expect("(")
	x.expect(")")
	body := x.parseFunctionBody(nil)
	return &Getter{Loc: x.loc(start), Name: name, Body: body}
}

func (x *Parser) parseSetter(start Pos, name PropertyName, kind funcKind) *Setter {
	x.pushFunc(kind, false, false)
	defer x.popFunc()
	x.pushScope(scopeFunction)
	defer x.popScope()
	pstart := x.tok.pos
	x.expect("(")
	x.fn.inParams = true
	param := x.parseBindingElement()
	x.fn.inParams = false
	x.expect(")")
	params := &FormalParameters{Loc: x.loc(pstart), Items: []Parameter{param}}
	x.declareParams(params)
	wasStrict := x.fn.strict
	body := x.parseFunctionBody(params)
	x.checkParams(params, true, !wasStrict && x.fn.strict)
	return &Setter{Loc: x.loc(start), Name: name, Param: param, Body: body}
}

func (x *Parser) parseClassDeclaration(start Pos, inDefault bool) *ClassDeclaration {
	name, super, elements := x.parseClass(true, inDefault)
	if name.Name != DefaultName {
		x.declareLexical(name.Name, name.Start, false)
	}
	return &ClassDeclaration{Loc: x.loc(start), Name: name, Super: super, Elements: elements}
}

func (x *Parser) parseClassExpression() *ClassExpression {
	start := x.tok.pos
	name, super, elements := x.parseClass(false, false)
	return &ClassExpression{Loc: x.loc(start), Name: name, Super: super, Elements: elements}
}

// parseClass parses a class beginning at the class keyword. All parts
// of a class are strict code.
func (x *Parser) parseClass(decl, inDefault bool) (name *BindingIdentifier, super Expression, elements []*ClassElement) {
	x.expectName("class")
	wasStrict := x.fn.strict
	x.fn.strict = true
	defer func() { x.fn.strict = wasStrict }()

	if x.tok.kind == tokIdent && !x.tok.isName("extends") {
		name = x.bindingIdentifier()
	} else if decl {
		if !inDefault {
			x.unexpected()
		}
		name = &BindingIdentifier{Loc: Loc{Start: x.tok.pos, End: x.tok.pos}, Name: DefaultName}
	}
	if x.eatName("extends") {
		super = x.parseExprSubscripts(nil)
	}
	x.expect("{")
	elements = []*ClassElement{}
	var ctor bool
	for !x.eat("}") {
		if x.eat(";") {
			continue
		}
		elements = append(elements, x.parseClassElement(super != nil, &ctor))
	}
	return
}

func (x *Parser) parseClassElement(derived bool, ctor *bool) *ClassElement {
	start := x.tok.pos
	static := false
	if x.tok.isName("static") && x.isPropertyModifier() {
		x.next()
		static = true
	}
	mstart := x.tok.pos
	var method MethodDefinition
	switch {
	case x.tok.is("*"):
		x.next()
		name := x.parseClassElementName(static, true)
		method = x.parseMethod(mstart, name, false, true, funcMethod)
	case x.tok.isName("async") && x.isPropertyModifier() && !x.peek().nl:
		x.next()
		if x.tok.is("*") {
			x.fail(x.tok.pos, "async generators are not supported")
		}
		name := x.parseClassElementName(static, true)
		method = x.parseMethod(mstart, name, true, false, funcMethod)
	case (x.tok.isName("get") || x.tok.isName("set")) && x.isPropertyModifier():
		get := x.tok.value == "get"
		x.next()
		name := x.parseClassElementName(static, true)
		if get {
			method = x.parseGetter(mstart, name, funcMethod)
		} else {
			method = x.parseSetter(mstart, name, funcMethod)
		}
	default:
		name := x.parseClassElementName(static, false)
		kind := funcMethod
		if !static && isPropertyNamed(name, "constructor") {
			if *ctor {
				x.earlyf(name.Span().Start, "duplicate constructor")
			}
			*ctor = true
			kind = funcConstructor
			if derived {
				kind = funcDerivedConstructor
			}
		}
		if !x.tok.is("(") {
			x.unexpected()
		}
		method = x.parseMethod(mstart, name, false, false, kind)
	}
	return &ClassElement{Loc: x.loc(start), IsStatic: static, Method: method}
}

// parseClassElementName parses the name of a class element. Static
// elements may not be named prototype; special methods (accessors,
// generators and async methods) may not be named constructor.
func (x *Parser) parseClassElementName(static, special bool) PropertyName {
	name, _ := x.parsePropertyName()
	switch {
	case static && isPropertyNamed(name, "prototype"):
		x.earlyf(name.Span().Start, "classes may not have a static property named prototype")
	case !static && special && isPropertyNamed(name, "constructor"):
		x.earlyf(name.Span().Start, "class constructor may not be a special method")
	}
	return name
}

// isPropertyNamed tells whether the property name is the non-computed
// name s.
func isPropertyNamed(name PropertyName, s string) bool {
	static, ok := name.(*StaticPropertyName)
	return ok && static.Value == s
}
