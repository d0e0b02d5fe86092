// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

import "github.com/grailbio/jsfixture/syntax"

// ExplicitGenerator renders programs with every compound expression
// parenthesized, so that the parse tree can be read off the text
// without knowledge of operator precedence. Identifier references,
// binding identifiers, super and function bodies are never
// parenthesized, since parentheses are not permitted around some of
// them.
type ExplicitGenerator struct {
	*Generator
}

// NewExplicitGenerator returns a new ExplicitGenerator.
func NewExplicitGenerator() *ExplicitGenerator {
	e := &ExplicitGenerator{Generator: new(Generator)}
	e.Hooks = e
	return e
}

// Paren encloses r in parentheses unless it already is.
func (e *ExplicitGenerator) Paren(r Rep) Rep {
	r = Flatten(r)
	if p, ok := r.(*Paren); ok {
		return p
	}
	return &Paren{Rep: r}
}

// P parenthesizes r regardless of precedence.
func (e *ExplicitGenerator) P(n syntax.Node, prec Precedence, r Rep) Rep {
	if isBare(n) {
		return r
	}
	return e.Paren(r)
}

func isBare(n syntax.Node) bool {
	switch n.(type) {
	case *syntax.IdentifierExpression, *syntax.BindingIdentifier, *syntax.Super, *syntax.FunctionBody:
		return true
	}
	return false
}

func isIdentifier(n syntax.Node) bool {
	switch n.(type) {
	case *syntax.IdentifierExpression, *syntax.BindingIdentifier:
		return true
	}
	return false
}

func (e *ExplicitGenerator) ReduceAssignmentExpression(node *syntax.AssignmentExpression, binding, expression Rep) Rep {
	if !isIdentifier(node.Expression) {
		expression = e.Paren(expression)
	}
	return e.Generator.ReduceAssignmentExpression(node, binding, expression)
}

func (e *ExplicitGenerator) ReduceCompoundAssignmentExpression(node *syntax.CompoundAssignmentExpression, binding, expression Rep) Rep {
	if !isIdentifier(node.Expression) {
		expression = e.Paren(expression)
	}
	return e.Generator.ReduceCompoundAssignmentExpression(node, binding, expression)
}

func (e *ExplicitGenerator) ReduceBinaryExpression(node *syntax.BinaryExpression, left, right Rep) Rep {
	if !isIdentifier(node.Left) {
		left = e.Paren(left)
	}
	if !isIdentifier(node.Right) {
		right = e.Paren(right)
	}
	return e.Generator.ReduceBinaryExpression(node, left, right)
}

func (e *ExplicitGenerator) ReduceVariableDeclarator(node *syntax.VariableDeclarator, binding, init Rep) Rep {
	if init != nil {
		init = e.Paren(init)
	}
	return e.Generator.ReduceVariableDeclarator(node, binding, init)
}
