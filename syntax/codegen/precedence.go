// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

import "github.com/grailbio/jsfixture/syntax"

// Precedence is the binding strength of an expression form. An
// expression of lower precedence than its context requires is
// parenthesized.
type Precedence int

const (
	PrecSequence       Precedence = 0
	PrecYield          Precedence = 1
	PrecAssignment     Precedence = 1
	PrecConditional    Precedence = 2
	PrecArrow          Precedence = 2
	PrecLogicalOR      Precedence = 3
	PrecLogicalAND     Precedence = 4
	PrecBitwiseOR      Precedence = 5
	PrecBitwiseXOR     Precedence = 6
	PrecBitwiseAND     Precedence = 7
	PrecEquality       Precedence = 8
	PrecRelational     Precedence = 9
	PrecBitwiseSHIFT   Precedence = 10
	PrecAdditive       Precedence = 11
	PrecMultiplicative Precedence = 12
	PrecExponential    Precedence = 13
	PrecPrefix         Precedence = 14
	PrecPostfix        Precedence = 15
	PrecNew            Precedence = 16
	PrecCall           Precedence = 17
	PrecTaggedTemplate Precedence = 18
	PrecMember         Precedence = 19
	PrecPrimary        Precedence = 20
)

// BinaryPrecedence gives the precedence of each binary operator.
var BinaryPrecedence = map[string]Precedence{
	",":          PrecSequence,
	"||":         PrecLogicalOR,
	"&&":         PrecLogicalAND,
	"|":          PrecBitwiseOR,
	"^":          PrecBitwiseXOR,
	"&":          PrecBitwiseAND,
	"==":         PrecEquality,
	"!=":         PrecEquality,
	"===":        PrecEquality,
	"!==":        PrecEquality,
	"<":          PrecRelational,
	">":          PrecRelational,
	"<=":         PrecRelational,
	">=":         PrecRelational,
	"in":         PrecRelational,
	"instanceof": PrecRelational,
	"<<":         PrecBitwiseSHIFT,
	">>":         PrecBitwiseSHIFT,
	">>>":        PrecBitwiseSHIFT,
	"+":          PrecAdditive,
	"-":          PrecAdditive,
	"*":          PrecMultiplicative,
	"%":          PrecMultiplicative,
	"/":          PrecMultiplicative,
	"**":         PrecExponential,
}

// GetPrecedence returns the precedence of the expression n.
func GetPrecedence(n syntax.Node) Precedence {
	switch n := n.(type) {
	case *syntax.ArrowExpression, *syntax.AssignmentExpression,
		*syntax.CompoundAssignmentExpression, *syntax.YieldExpression,
		*syntax.YieldGeneratorExpression:
		return PrecAssignment
	case *syntax.ConditionalExpression:
		return PrecConditional
	case *syntax.ComputedMemberExpression:
		return memberPrecedence(n.Object)
	case *syntax.StaticMemberExpression:
		return memberPrecedence(n.Object)
	case *syntax.ComputedMemberAssignmentTarget:
		return memberPrecedence(n.Object)
	case *syntax.StaticMemberAssignmentTarget:
		return memberPrecedence(n.Object)
	case *syntax.TemplateExpression:
		if n.Tag == nil {
			return PrecMember
		}
		return memberPrecedence(n.Tag)
	case *syntax.BinaryExpression:
		return BinaryPrecedence[n.Operator]
	case *syntax.CallExpression:
		return PrecCall
	case *syntax.NewExpression:
		if len(n.Arguments) == 0 {
			return PrecNew
		}
		return PrecMember
	case *syntax.UpdateExpression:
		if n.IsPrefix {
			return PrecPrefix
		}
		return PrecPostfix
	case *syntax.AwaitExpression, *syntax.UnaryExpression:
		return PrecPrefix
	}
	return PrecPrimary
}

// memberPrecedence is the precedence of a member access or tagged
// template on object: a chain rooted in a call binds like the call.
func memberPrecedence(object syntax.Node) Precedence {
	switch object.(type) {
	case *syntax.CallExpression, *syntax.ComputedMemberExpression,
		*syntax.StaticMemberExpression, *syntax.TemplateExpression:
		return GetPrecedence(object)
	}
	return PrecMember
}
