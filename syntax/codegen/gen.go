// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

import (
	"strconv"
	"strings"

	"github.com/grailbio/jsfixture/syntax"
)

// Hooks decide where a Generator places parentheses.
type Hooks interface {
	// Paren encloses r in parentheses.
	Paren(r Rep) Rep
	// P encloses r, the rendering of expression n, in parentheses
	// if n may not appear unparenthesized where precedence prec is
	// required.
	P(n syntax.Node, prec Precedence, r Rep) Rep
}

// minimal parenthesizes only where the grammar requires it.
type minimal struct{}

func (minimal) Paren(r Rep) Rep { return &Paren{Rep: r} }

func (m minimal) P(n syntax.Node, prec Precedence, r Rep) Rep {
	if GetPrecedence(n) < prec {
		return m.Paren(r)
	}
	return r
}

// Generator renders syntax trees as source text. It implements
// syntax.Reducer, computing the rendering of every node from the
// renderings of its children.
type Generator struct {
	Hooks Hooks
}

var _ syntax.Reducer[Rep] = (*Generator)(nil)

// NewGenerator returns a Generator that adds no more parentheses than
// needed to preserve the tree's shape.
func NewGenerator() *Generator {
	return &Generator{Hooks: minimal{}}
}

func (g *Generator) paren(r Rep) Rep { return g.Hooks.Paren(r) }

func (g *Generator) p(n syntax.Node, prec Precedence, r Rep) Rep { return g.Hooks.P(n, prec, r) }

func tok(s string) *Token { return &Token{Text: s} }

func semi() *Token { return tok(";") }

// op renders a binary operator with surrounding spaces.
func op(s string) Rep {
	if s == "," {
		return seq(tok(","), space())
	}
	return seq(space(), tok(s), space())
}

func bracket(r Rep) Rep { return &Bracket{Rep: r} }

func brace(r Rep) Rep { return &Brace{Rep: r} }

// block renders statements enclosed in curly braces, one per line.
func block(stmts []Rep) Rep {
	if len(stmts) == 0 {
		return seq(tok("{"), tok("}"))
	}
	return seq(tok("{"), &Lines{Children: stmts, Indent: true}, &Linebreak{}, tok("}"))
}

func orEmpty(r Rep) Rep {
	if r == nil {
		return empty()
	}
	return r
}

// inheritStart copies the flags describing how r begins to f.
func inheritStart(f *Flags, r Rep) {
	rf := r.flags()
	f.StartsWithCurly = rf.StartsWithCurly
	f.StartsWithLetSquareBracket = rf.StartsWithLetSquareBracket
	f.StartsWithFunctionOrClass = rf.StartsWithFunctionOrClass
	f.StartsWithLet = rf.StartsWithLet
}

func (g *Generator) getAssignmentExpr(r Rep) Rep {
	if r == nil {
		return empty()
	}
	if r.flags().ContainsGroup {
		return g.paren(r)
	}
	return r
}

// parenToAvoidBeingDirective parenthesizes the leading string literal
// statement of a body, which would otherwise read as a directive.
func (g *Generator) parenToAvoidBeingDirective(n syntax.Node, r Rep) Rep {
	stmt, ok := n.(*syntax.ExpressionStatement)
	if !ok {
		return r
	}
	if _, ok := stmt.Expression.(*syntax.LiteralStringExpression); !ok {
		return r
	}
	expr := r.(*Seq).Children[0]
	return seq(g.paren(expr), semi())
}

func (g *Generator) body(nodes []syntax.Statement, directives, stmts []Rep) []Rep {
	if len(stmts) > 0 {
		stmts[0] = g.parenToAvoidBeingDirective(nodes[0], stmts[0])
	}
	return append(directives, stmts...)
}

// Programs.

func (g *Generator) ReduceScript(node *syntax.Script, directives, statements []Rep) Rep {
	return &Lines{Children: g.body(node.Statements, directives, statements)}
}

func (g *Generator) ReduceModule(node *syntax.Module, directives, items []Rep) Rep {
	if len(items) > 0 {
		items[0] = g.parenToAvoidBeingDirective(node.Items[0], items[0])
	}
	return &Lines{Children: append(directives, items...)}
}

func (g *Generator) ReduceDirective(node *syntax.Directive) Rep {
	delim := directiveDelimiter(node.RawValue)
	return seq(tok(delim+node.RawValue+delim), semi())
}

// Bindings and targets.

func identifier(name string) Rep {
	id := tok(name)
	id.StartsWithLet = name == "let"
	return id
}

func (g *Generator) ReduceBindingIdentifier(node *syntax.BindingIdentifier) Rep {
	return identifier(node.Name)
}

func (g *Generator) ReduceAssignmentTargetIdentifier(node *syntax.AssignmentTargetIdentifier) Rep {
	return identifier(node.Name)
}

func (g *Generator) ReduceIdentifierExpression(node *syntax.IdentifierExpression) Rep {
	return identifier(node.Name)
}

func (g *Generator) withDefault(binding Rep, init syntax.Node, initRep Rep) Rep {
	return seq(binding, op("="), g.p(init, PrecAssignment, initRep))
}

func (g *Generator) ReduceBindingWithDefault(node *syntax.BindingWithDefault, binding, init Rep) Rep {
	return g.withDefault(binding, node.Init, init)
}

func (g *Generator) ReduceAssignmentTargetWithDefault(node *syntax.AssignmentTargetWithDefault, binding, init Rep) Rep {
	return g.withDefault(binding, node.Init, init)
}

func arrayPattern(elements []Rep, rest Rep) Rep {
	content := make([]Rep, len(elements))
	for i, e := range elements {
		content[i] = orEmpty(e)
	}
	if rest != nil {
		content = append(content, seq(tok("..."), rest))
	} else if len(elements) > 0 && elements[len(elements)-1] == nil {
		content = append(content, empty())
	}
	return bracket(commaSep(content))
}

func (g *Generator) ReduceArrayBinding(node *syntax.ArrayBinding, elements []Rep, rest Rep) Rep {
	return arrayPattern(elements, rest)
}

func (g *Generator) ReduceArrayAssignmentTarget(node *syntax.ArrayAssignmentTarget, elements []Rep, rest Rep) Rep {
	return arrayPattern(elements, rest)
}

func objectPattern(properties []Rep) Rep {
	r := &Brace{Rep: commaSep(properties)}
	r.StartsWithCurly = true
	return r
}

func (g *Generator) ReduceObjectBinding(node *syntax.ObjectBinding, properties []Rep) Rep {
	return objectPattern(properties)
}

func (g *Generator) ReduceObjectAssignmentTarget(node *syntax.ObjectAssignmentTarget, properties []Rep) Rep {
	return objectPattern(properties)
}

func (g *Generator) propertyIdentifier(binding Rep, init syntax.Node, initRep Rep) Rep {
	if initRep == nil {
		return binding
	}
	return g.withDefault(binding, init, initRep)
}

func (g *Generator) ReduceBindingPropertyIdentifier(node *syntax.BindingPropertyIdentifier, binding, init Rep) Rep {
	return g.propertyIdentifier(binding, node.Init, init)
}

func (g *Generator) ReduceAssignmentTargetPropertyIdentifier(node *syntax.AssignmentTargetPropertyIdentifier, binding, init Rep) Rep {
	return g.propertyIdentifier(binding, node.Init, init)
}

func (g *Generator) ReduceBindingPropertyProperty(node *syntax.BindingPropertyProperty, name, binding Rep) Rep {
	return seq(name, tok(":"), space(), binding)
}

func (g *Generator) ReduceAssignmentTargetPropertyProperty(node *syntax.AssignmentTargetPropertyProperty, name, binding Rep) Rep {
	return seq(name, tok(":"), space(), binding)
}

// member renders a member access on object.
func (g *Generator) member(node, object syntax.Node, objectRep Rep, access Rep) Rep {
	obj := g.p(object, GetPrecedence(node), objectRep)
	r := seq(obj, access)
	inheritStart(&r.Flags, obj)
	return r
}

func (g *Generator) computedMember(node, object syntax.Node, objectRep, expression Rep) Rep {
	r := g.member(node, object, objectRep, bracket(expression))
	if id, ok := object.(*syntax.IdentifierExpression); ok && id.Name == "let" {
		r.flags().StartsWithLetSquareBracket = true
	}
	return r
}

func (g *Generator) ReduceStaticMemberAssignmentTarget(node *syntax.StaticMemberAssignmentTarget, object Rep) Rep {
	return g.member(node, node.Object, object, seq(tok("."), tok(node.Property)))
}

func (g *Generator) ReduceStaticMemberExpression(node *syntax.StaticMemberExpression, object Rep) Rep {
	return g.member(node, node.Object, object, seq(tok("."), tok(node.Property)))
}

func (g *Generator) ReduceComputedMemberAssignmentTarget(node *syntax.ComputedMemberAssignmentTarget, object, expression Rep) Rep {
	return g.computedMember(node, node.Object, object, expression)
}

func (g *Generator) ReduceComputedMemberExpression(node *syntax.ComputedMemberExpression, object, expression Rep) Rep {
	return g.computedMember(node, node.Object, object, expression)
}

// Classes.

func (g *Generator) class(name *syntax.BindingIdentifier, nameRep Rep, super syntax.Node, superRep Rep, elements []Rep) *Seq {
	r := seq(tok("class"))
	if name != nil && name.Name != syntax.DefaultName {
		r.Children = append(r.Children, space(), nameRep)
	}
	if superRep != nil {
		r.Children = append(r.Children, space(), tok("extends"), space(), g.p(super, PrecNew, superRep))
	}
	r.Children = append(r.Children, space(), block(elements))
	return r
}

func (g *Generator) ReduceClassDeclaration(node *syntax.ClassDeclaration, name, super Rep, elements []Rep) Rep {
	return g.class(node.Name, name, node.Super, super, elements)
}

func (g *Generator) ReduceClassExpression(node *syntax.ClassExpression, name, super Rep, elements []Rep) Rep {
	r := g.class(node.Name, name, node.Super, super, elements)
	r.StartsWithFunctionOrClass = true
	return r
}

func (g *Generator) ReduceClassElement(node *syntax.ClassElement, method Rep) Rep {
	if !node.IsStatic {
		return method
	}
	return seq(tok("static"), space(), method)
}

// Functions.

func (g *Generator) function(async, generator bool, name *syntax.BindingIdentifier, nameRep, params, body Rep) *Seq {
	r := seq()
	if async {
		r.Children = append(r.Children, tok("async"), space())
	}
	r.Children = append(r.Children, tok("function"))
	if generator {
		r.Children = append(r.Children, tok("*"))
	}
	if name != nil && name.Name != syntax.DefaultName {
		r.Children = append(r.Children, space(), nameRep)
	}
	r.Children = append(r.Children, params, space(), body)
	return r
}

func (g *Generator) ReduceFunctionDeclaration(node *syntax.FunctionDeclaration, name, params, body Rep) Rep {
	return g.function(node.IsAsync, node.IsGenerator, node.Name, name, params, body)
}

func (g *Generator) ReduceFunctionExpression(node *syntax.FunctionExpression, name, params, body Rep) Rep {
	r := g.function(node.IsAsync, node.IsGenerator, node.Name, name, params, body)
	r.StartsWithFunctionOrClass = true
	return r
}

func (g *Generator) ReduceFormalParameters(node *syntax.FormalParameters, items []Rep, rest Rep) Rep {
	reps := append([]Rep{}, items...)
	if rest != nil {
		reps = append(reps, seq(tok("..."), rest))
	}
	return g.paren(commaSep(reps))
}

func (g *Generator) ReduceFunctionBody(node *syntax.FunctionBody, directives, statements []Rep) Rep {
	return block(g.body(node.Statements, directives, statements))
}

func (g *Generator) ReduceArrowExpression(node *syntax.ArrowExpression, params, body Rep) Rep {
	var containsIn bool
	if _, ok := node.Body.(*syntax.FunctionBody); !ok {
		if body.flags().StartsWithCurly {
			body = g.paren(body)
		} else if body.flags().ContainsIn {
			containsIn = true
		}
	}
	r := seq()
	if node.IsAsync {
		r.Children = append(r.Children, tok("async"), space())
	}
	r.Children = append(r.Children, params, op("=>"), g.p(node.Body, PrecAssignment, body))
	r.ContainsIn = containsIn
	return r
}

func (g *Generator) ReduceMethod(node *syntax.Method, name, params, body Rep) Rep {
	r := seq()
	if node.IsAsync {
		r.Children = append(r.Children, tok("async"), space())
	}
	if node.IsGenerator {
		r.Children = append(r.Children, tok("*"))
	}
	r.Children = append(r.Children, name, params, space(), body)
	return r
}

func (g *Generator) ReduceGetter(node *syntax.Getter, name, body Rep) Rep {
	return seq(tok("get"), space(), name, g.paren(empty()), space(), body)
}

func (g *Generator) ReduceSetter(node *syntax.Setter, name, param, body Rep) Rep {
	return seq(tok("set"), space(), name, g.paren(param), space(), body)
}

// Properties.

func (g *Generator) ReduceDataProperty(node *syntax.DataProperty, name, expression Rep) Rep {
	return seq(name, tok(":"), space(), g.getAssignmentExpr(expression))
}

func (g *Generator) ReduceShorthandProperty(node *syntax.ShorthandProperty, name Rep) Rep {
	return name
}

func (g *Generator) ReduceComputedPropertyName(node *syntax.ComputedPropertyName, expression Rep) Rep {
	return bracket(g.p(node.Expression, PrecAssignment, expression))
}

func (g *Generator) ReduceStaticPropertyName(node *syntax.StaticPropertyName) Rep {
	v := node.Value
	if syntax.IsIdentifierName(v) {
		return tok(v)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && syntax.NumberString(f) == v {
		return &Number{Value: f}
	}
	return tok(QuoteString(v))
}

func (g *Generator) ReduceObjectExpression(node *syntax.ObjectExpression, properties []Rep) Rep {
	r := &Brace{Rep: commaSep(properties)}
	r.StartsWithCurly = true
	return r
}

// Literals.

func (g *Generator) ReduceLiteralBooleanExpression(node *syntax.LiteralBooleanExpression) Rep {
	if node.Value {
		return tok("true")
	}
	return tok("false")
}

func (g *Generator) ReduceLiteralInfinityExpression(node *syntax.LiteralInfinityExpression) Rep {
	return tok("2e308")
}

func (g *Generator) ReduceLiteralNullExpression(node *syntax.LiteralNullExpression) Rep {
	return tok("null")
}

func (g *Generator) ReduceLiteralNumericExpression(node *syntax.LiteralNumericExpression) Rep {
	return &Number{Value: node.Value}
}

func (g *Generator) ReduceLiteralRegExpExpression(node *syntax.LiteralRegExpExpression) Rep {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(node.Pattern)
	b.WriteString("/")
	for _, f := range []struct {
		set  bool
		flag byte
	}{
		{node.Global, 'g'},
		{node.IgnoreCase, 'i'},
		{node.MultiLine, 'm'},
		{node.DotAll, 's'},
		{node.Unicode, 'u'},
		{node.Sticky, 'y'},
	} {
		if f.set {
			b.WriteByte(f.flag)
		}
	}
	return &Token{Text: b.String(), RegExp: true}
}

func (g *Generator) ReduceLiteralStringExpression(node *syntax.LiteralStringExpression) Rep {
	return tok(QuoteString(node.Value))
}

// Expressions.

func (g *Generator) ReduceArrayExpression(node *syntax.ArrayExpression, elements []Rep) Rep {
	content := make([]Rep, len(elements))
	for i, e := range elements {
		content[i] = g.getAssignmentExpr(e)
	}
	if len(elements) > 0 && elements[len(elements)-1] == nil {
		content = append(content, empty())
	}
	return bracket(commaSep(content))
}

func (g *Generator) ReduceSpreadElement(node *syntax.SpreadElement, expression Rep) Rep {
	return seq(tok("..."), g.p(node.Expression, PrecAssignment, expression))
}

func (g *Generator) assignment(binding Rep, operator string, expr syntax.Node, expression Rep) Rep {
	rhs := expression
	if GetPrecedence(expr) < PrecAssignment {
		rhs = g.paren(expression)
	}
	r := seq(binding, op(operator), rhs)
	r.ContainsIn = expression.flags().ContainsIn
	inheritStart(&r.Flags, binding)
	return r
}

func (g *Generator) ReduceAssignmentExpression(node *syntax.AssignmentExpression, binding, expression Rep) Rep {
	return g.assignment(binding, "=", node.Expression, expression)
}

func (g *Generator) ReduceCompoundAssignmentExpression(node *syntax.CompoundAssignmentExpression, binding, expression Rep) Rep {
	return g.assignment(binding, node.Operator, node.Expression, expression)
}

func (g *Generator) ReduceBinaryExpression(node *syntax.BinaryExpression, left, right Rep) Rep {
	prec := BinaryPrecedence[node.Operator]
	leftPrec := GetPrecedence(node.Left)
	rightPrec := GetPrecedence(node.Right)
	leftContainsIn := left.flags().ContainsIn
	rightContainsIn := right.flags().ContainsIn
	leftRep := left
	if node.Operator == "**" {
		// Exponentiation is right-associative, and its base may not be
		// a unary expression.
		_, unary := node.Left.(*syntax.UnaryExpression)
		_, await := node.Left.(*syntax.AwaitExpression)
		if leftPrec <= prec || unary || await {
			leftRep = g.paren(left)
			leftContainsIn = false
		}
	} else if leftPrec < prec {
		leftRep = g.paren(left)
		leftContainsIn = false
	}
	rightRep := right
	if node.Operator == "**" {
		if rightPrec < prec {
			rightRep = g.paren(right)
			rightContainsIn = false
		}
	} else if rightPrec <= prec {
		rightRep = g.paren(right)
		rightContainsIn = false
	}
	r := seq(leftRep, op(node.Operator), rightRep)
	r.ContainsIn = leftContainsIn || rightContainsIn || node.Operator == "in"
	r.ContainsGroup = node.Operator == ","
	inheritStart(&r.Flags, leftRep)
	return r
}

func (g *Generator) arguments(args []Rep) Rep {
	return g.paren(commaSep(args))
}

func (g *Generator) ReduceCallExpression(node *syntax.CallExpression, callee Rep, arguments []Rep) Rep {
	fn := g.p(node.Callee, GetPrecedence(node), callee)
	r := seq(fn, g.arguments(arguments))
	inheritStart(&r.Flags, fn)
	return r
}

func (g *Generator) ReduceNewExpression(node *syntax.NewExpression, callee Rep, arguments []Rep) Rep {
	// Arguments are always written, so a callee ending in a call
	// would take them as its own.
	calleeRep := g.p(node.Callee, GetPrecedence(node), callee)
	if GetPrecedence(node.Callee) == PrecCall {
		calleeRep = g.paren(callee)
	}
	return seq(tok("new"), space(), calleeRep, g.arguments(arguments))
}

func (g *Generator) ReduceNewTargetExpression(node *syntax.NewTargetExpression) Rep {
	return tok("new.target")
}

func (g *Generator) ReduceSuper(node *syntax.Super) Rep {
	return tok("super")
}

func (g *Generator) ReduceThisExpression(node *syntax.ThisExpression) Rep {
	return tok("this")
}

func (g *Generator) ReduceConditionalExpression(node *syntax.ConditionalExpression, test, consequent, alternate Rep) Rep {
	cond := g.p(node.Test, PrecLogicalOR, test)
	r := seq(
		cond, op("?"),
		g.p(node.Consequent, PrecAssignment, consequent), op(":"),
		g.p(node.Alternate, PrecAssignment, alternate))
	r.ContainsIn = test.flags().ContainsIn || alternate.flags().ContainsIn
	inheritStart(&r.Flags, cond)
	return r
}

func (g *Generator) ReduceUnaryExpression(node *syntax.UnaryExpression, operand Rep) Rep {
	r := seq(tok(node.Operator))
	switch node.Operator {
	case "delete", "void", "typeof":
		r.Children = append(r.Children, space())
	}
	r.Children = append(r.Children, g.p(node.Operand, GetPrecedence(node), operand))
	return r
}

func (g *Generator) ReduceUpdateExpression(node *syntax.UpdateExpression, operand Rep) Rep {
	if node.IsPrefix {
		return seq(tok(node.Operator), g.p(node.Operand, GetPrecedence(node), operand))
	}
	target := g.p(node.Operand, PrecNew, operand)
	r := seq(target, tok(node.Operator))
	inheritStart(&r.Flags, target)
	return r
}

func (g *Generator) ReduceAwaitExpression(node *syntax.AwaitExpression, expression Rep) Rep {
	return seq(tok("await"), space(), g.p(node.Expression, GetPrecedence(node), expression))
}

func (g *Generator) ReduceYieldExpression(node *syntax.YieldExpression, expression Rep) Rep {
	if expression == nil {
		return tok("yield")
	}
	r := seq(tok("yield"), space(), g.p(node.Expression, GetPrecedence(node), expression))
	r.ContainsIn = expression.flags().ContainsIn
	return r
}

func (g *Generator) ReduceYieldGeneratorExpression(node *syntax.YieldGeneratorExpression, expression Rep) Rep {
	r := seq(tok("yield"), tok("*"), space(), g.p(node.Expression, GetPrecedence(node), expression))
	r.ContainsIn = expression.flags().ContainsIn
	return r
}

func (g *Generator) ReduceTemplateExpression(node *syntax.TemplateExpression, tag Rep, elements []Rep) Rep {
	r := seq()
	if tag != nil {
		fn := g.p(node.Tag, GetPrecedence(node), tag)
		r.Children = append(r.Children, fn)
		inheritStart(&r.Flags, fn)
	}
	r.Children = append(r.Children, &Raw{Text: "`"})
	for i, e := range node.Elements {
		if _, ok := e.(*syntax.TemplateElement); ok {
			if i > 0 {
				r.Children = append(r.Children, &Raw{Text: "}"})
			}
			r.Children = append(r.Children, elements[i])
			if i < len(node.Elements)-1 {
				r.Children = append(r.Children, &Raw{Text: "${"})
			}
			continue
		}
		r.Children = append(r.Children, elements[i])
	}
	r.Children = append(r.Children, &Raw{Text: "`"})
	return r
}

func (g *Generator) ReduceTemplateElement(node *syntax.TemplateElement) Rep {
	return &Raw{Text: node.RawValue}
}

// Statements.

func (g *Generator) ReduceBlock(node *syntax.Block, statements []Rep) Rep {
	return block(statements)
}

func (g *Generator) ReduceBlockStatement(node *syntax.BlockStatement, b Rep) Rep {
	return b
}

func jump(keyword, label string) Rep {
	if label == "" {
		return seq(tok(keyword), semi())
	}
	return seq(tok(keyword), space(), tok(label), semi())
}

func (g *Generator) ReduceBreakStatement(node *syntax.BreakStatement) Rep {
	return jump("break", node.Label)
}

func (g *Generator) ReduceContinueStatement(node *syntax.ContinueStatement) Rep {
	return jump("continue", node.Label)
}

func (g *Generator) ReduceDebuggerStatement(node *syntax.DebuggerStatement) Rep {
	return seq(tok("debugger"), semi())
}

func (g *Generator) ReduceEmptyStatement(node *syntax.EmptyStatement) Rep {
	return semi()
}

func (g *Generator) ReduceExpressionStatement(node *syntax.ExpressionStatement, expression Rep) Rep {
	f := expression.flags()
	if f.StartsWithCurly || f.StartsWithLetSquareBracket || f.StartsWithFunctionOrClass {
		expression = g.paren(expression)
	}
	return seq(expression, semi())
}

func (g *Generator) ReduceDoWhileStatement(node *syntax.DoWhileStatement, body, test Rep) Rep {
	return seq(tok("do"), space(), body, space(), tok("while"), space(), g.paren(test), semi())
}

// loop renders a statement with a parenthesized head and a body.
func loop(keyword string, head, body Rep) Rep {
	r := seq(tok(keyword), space(), head, space(), body)
	r.EndsWithMissingElse = body.flags().EndsWithMissingElse
	return r
}

func (g *Generator) ReduceForInStatement(node *syntax.ForInStatement, left, right, body Rep) Rep {
	leftRep := left
	switch l := node.Left.(type) {
	case *syntax.VariableDeclaration:
		leftRep = &NoIn{Rep: markContainsIn(left)}
	case *syntax.AssignmentTargetIdentifier:
		if l.Name == "let" {
			leftRep = g.paren(left)
		}
	default:
		if left.flags().StartsWithLet {
			leftRep = g.paren(left)
		}
	}
	return loop("for", g.paren(seq(leftRep, space(), tok("in"), space(), right)), body)
}

func (g *Generator) ReduceForOfStatement(node *syntax.ForOfStatement, left, right, body Rep) Rep {
	leftRep := left
	if _, ok := node.Left.(*syntax.VariableDeclaration); ok {
		leftRep = &NoIn{Rep: markContainsIn(left)}
	} else if left.flags().StartsWithLet {
		leftRep = g.paren(left)
	}
	return loop("for", g.paren(seq(leftRep, space(), tok("of"), space(), g.p(node.Right, PrecAssignment, right))), body)
}

func (g *Generator) ReduceForStatement(node *syntax.ForStatement, init, test, update, body Rep) Rep {
	head := seq()
	if init != nil {
		if init.flags().StartsWithLetSquareBracket {
			init = g.paren(init)
		}
		head.Children = append(head.Children, &NoIn{Rep: markContainsIn(init)})
	}
	head.Children = append(head.Children, semi())
	if test != nil {
		head.Children = append(head.Children, space(), test)
	}
	head.Children = append(head.Children, semi())
	if update != nil {
		head.Children = append(head.Children, space(), update)
	}
	return loop("for", g.paren(head), body)
}

func (g *Generator) ReduceIfStatement(node *syntax.IfStatement, test, consequent, alternate Rep) Rep {
	if alternate != nil && consequent.flags().EndsWithMissingElse {
		consequent = block([]Rep{consequent})
	}
	r := seq(tok("if"), space(), g.paren(test), space(), consequent)
	if alternate == nil {
		r.EndsWithMissingElse = true
		return r
	}
	r.Children = append(r.Children, space(), tok("else"), space(), alternate)
	r.EndsWithMissingElse = alternate.flags().EndsWithMissingElse
	return r
}

func (g *Generator) ReduceLabeledStatement(node *syntax.LabeledStatement, body Rep) Rep {
	r := seq(tok(node.Label), tok(":"), space(), body)
	r.EndsWithMissingElse = body.flags().EndsWithMissingElse
	return r
}

func (g *Generator) ReduceReturnStatement(node *syntax.ReturnStatement, expression Rep) Rep {
	if expression == nil {
		return seq(tok("return"), semi())
	}
	return seq(tok("return"), space(), expression, semi())
}

func (g *Generator) ReduceSwitchCase(node *syntax.SwitchCase, test Rep, consequent []Rep) Rep {
	return seq(tok("case"), space(), test, tok(":"), &Lines{Children: consequent, Indent: true})
}

func (g *Generator) ReduceSwitchDefault(node *syntax.SwitchDefault, consequent []Rep) Rep {
	return seq(tok("default"), tok(":"), &Lines{Children: consequent, Indent: true})
}

func (g *Generator) ReduceSwitchStatement(node *syntax.SwitchStatement, discriminant Rep, cases []Rep) Rep {
	return seq(tok("switch"), space(), g.paren(discriminant), space(), block(cases))
}

func (g *Generator) ReduceSwitchStatementWithDefault(node *syntax.SwitchStatementWithDefault, discriminant Rep, preDefaultCases []Rep, defaultCase Rep, postDefaultCases []Rep) Rep {
	cases := append(append(append([]Rep{}, preDefaultCases...), defaultCase), postDefaultCases...)
	return seq(tok("switch"), space(), g.paren(discriminant), space(), block(cases))
}

func (g *Generator) ReduceThrowStatement(node *syntax.ThrowStatement, expression Rep) Rep {
	return seq(tok("throw"), space(), expression, semi())
}

func (g *Generator) ReduceTryCatchStatement(node *syntax.TryCatchStatement, body, catchClause Rep) Rep {
	return seq(tok("try"), space(), body, space(), catchClause)
}

func (g *Generator) ReduceTryFinallyStatement(node *syntax.TryFinallyStatement, body, catchClause, finalizer Rep) Rep {
	r := seq(tok("try"), space(), body)
	if catchClause != nil {
		r.Children = append(r.Children, space(), catchClause)
	}
	r.Children = append(r.Children, space(), tok("finally"), space(), finalizer)
	return r
}

func (g *Generator) ReduceCatchClause(node *syntax.CatchClause, binding, body Rep) Rep {
	return seq(tok("catch"), space(), g.paren(binding), space(), body)
}

func (g *Generator) ReduceVariableDeclaration(node *syntax.VariableDeclaration, declarators []Rep) Rep {
	return seq(tok(node.Kind), space(), commaSep(declarators))
}

func (g *Generator) ReduceVariableDeclarationStatement(node *syntax.VariableDeclarationStatement, declaration Rep) Rep {
	return seq(declaration, semi())
}

func (g *Generator) ReduceVariableDeclarator(node *syntax.VariableDeclarator, binding, init Rep) Rep {
	r := seq(binding)
	if init == nil {
		return r
	}
	if init.flags().ContainsGroup {
		init = g.paren(init)
	} else {
		init = markContainsIn(init)
	}
	r.Children = append(r.Children, op("="), init)
	return r
}

func (g *Generator) ReduceWhileStatement(node *syntax.WhileStatement, test, body Rep) Rep {
	return loop("while", g.paren(test), body)
}

func (g *Generator) ReduceWithStatement(node *syntax.WithStatement, object, body Rep) Rep {
	return loop("with", g.paren(object), body)
}

// Modules.

func fromClause(specifier string) Rep {
	return seq(space(), tok("from"), space(), tok(QuoteString(specifier)))
}

func (g *Generator) ReduceImport(node *syntax.Import, defaultBinding Rep, namedImports []Rep) Rep {
	var bindings []Rep
	if defaultBinding != nil {
		bindings = append(bindings, defaultBinding)
	}
	if len(namedImports) > 0 {
		bindings = append(bindings, brace(commaSep(namedImports)))
	}
	if len(bindings) == 0 {
		return seq(tok("import"), space(), tok(QuoteString(node.ModuleSpecifier)), semi())
	}
	return seq(tok("import"), space(), commaSep(bindings), fromClause(node.ModuleSpecifier), semi())
}

func (g *Generator) ReduceImportNamespace(node *syntax.ImportNamespace, defaultBinding, namespaceBinding Rep) Rep {
	r := seq(tok("import"), space())
	if defaultBinding != nil {
		r.Children = append(r.Children, defaultBinding, tok(","), space())
	}
	r.Children = append(r.Children, tok("*"), space(), tok("as"), space(), namespaceBinding, fromClause(node.ModuleSpecifier), semi())
	return r
}

func (g *Generator) ReduceImportSpecifier(node *syntax.ImportSpecifier, binding Rep) Rep {
	if node.Name == "" {
		return binding
	}
	return seq(tok(node.Name), space(), tok("as"), space(), binding)
}

func (g *Generator) ReduceExportAllFrom(node *syntax.ExportAllFrom) Rep {
	return seq(tok("export"), space(), tok("*"), fromClause(node.ModuleSpecifier), semi())
}

func (g *Generator) ReduceExportFrom(node *syntax.ExportFrom, namedExports []Rep) Rep {
	return seq(tok("export"), space(), brace(commaSep(namedExports)), fromClause(node.ModuleSpecifier), semi())
}

func (g *Generator) ReduceExportLocals(node *syntax.ExportLocals, namedExports []Rep) Rep {
	return seq(tok("export"), space(), brace(commaSep(namedExports)), semi())
}

func exportSpecifier(name Rep, exported string) Rep {
	if exported == "" {
		return name
	}
	return seq(name, space(), tok("as"), space(), tok(exported))
}

func (g *Generator) ReduceExportFromSpecifier(node *syntax.ExportFromSpecifier) Rep {
	return exportSpecifier(tok(node.Name), node.ExportedName)
}

func (g *Generator) ReduceExportLocalSpecifier(node *syntax.ExportLocalSpecifier, name Rep) Rep {
	return exportSpecifier(name, node.ExportedName)
}

func (g *Generator) ReduceExport(node *syntax.Export, declaration Rep) Rep {
	if _, ok := node.Declaration.(*syntax.VariableDeclaration); ok {
		declaration = seq(declaration, semi())
	}
	return seq(tok("export"), space(), declaration)
}

func (g *Generator) ReduceExportDefault(node *syntax.ExportDefault, body Rep) Rep {
	switch node.Body.(type) {
	case *syntax.FunctionDeclaration, *syntax.ClassDeclaration:
		return seq(tok("export"), space(), tok("default"), space(), body)
	}
	if body.flags().StartsWithFunctionOrClass {
		body = g.paren(body)
	}
	return seq(tok("export"), space(), tok("default"), space(), g.p(node.Body, PrecAssignment, body), semi())
}
