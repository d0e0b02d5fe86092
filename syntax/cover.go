// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"math"
	"strconv"
	"strings"
)

// Expressions are parsed before it is known whether they are in fact
// patterns: the left side of an assignment, the head of a for-in or
// for-of statement, or the parameters of an arrow function. The
// functions in this file reinterpret an expression as the pattern it
// covers, failing where it does not cover one.

// toAssignTarget converts the left side of an = assignment.
func (x *Parser) toAssignTarget(e Expression, cover *coverErrors) AssignmentTarget {
	if isSet(cover.trailingComma) {
		x.fail(cover.trailingComma, "comma is not permitted after the rest element")
	}
	return x.toTarget(e)
}

func (x *Parser) toTarget(e Expression) AssignmentTarget {
	switch e := e.(type) {
	case *ArrayExpression:
		if x.parens[e] {
			x.fail(e.Start, "invalid assignment target")
		}
		t := &ArrayAssignmentTarget{Loc: e.Loc, Elements: []AssignmentTargetMaybeDefault{}}
		for i, elem := range e.Elements {
			switch elem := elem.(type) {
			case nil:
				t.Elements = append(t.Elements, nil)
			case *SpreadElement:
				if i != len(e.Elements)-1 {
					x.fail(elem.Start, "rest element must be last")
				}
				t.Rest = x.toTarget(elem.Expression)
			case Expression:
				t.Elements = append(t.Elements, x.toTargetMaybeDefault(elem))
			}
		}
		return t
	case *ObjectExpression:
		if x.parens[e] {
			x.fail(e.Start, "invalid assignment target")
		}
		t := &ObjectAssignmentTarget{Loc: e.Loc, Properties: []AssignmentTargetProperty{}}
		for _, prop := range e.Properties {
			switch prop := prop.(type) {
			case *DataProperty:
				t.Properties = append(t.Properties, &AssignmentTargetPropertyProperty{
					Loc:     prop.Loc,
					Name:    prop.Name,
					Binding: x.toTargetMaybeDefault(prop.Expression),
				})
			case *ShorthandProperty:
				id := x.toSimpleTarget(prop.Name).(*AssignmentTargetIdentifier)
				t.Properties = append(t.Properties, &AssignmentTargetPropertyIdentifier{
					Loc:     prop.Loc,
					Binding: id,
					Init:    x.coverInit[prop],
				})
			default:
				x.fail(prop.Span().Start, "invalid destructuring target")
			}
		}
		return t
	}
	return x.toSimpleTarget(e)
}

func (x *Parser) toTargetMaybeDefault(e Expression) AssignmentTargetMaybeDefault {
	if a, ok := e.(*AssignmentExpression); ok && !x.parens[a] {
		return &AssignmentTargetWithDefault{Loc: a.Loc, Binding: a.Binding, Init: a.Expression}
	}
	return x.toTarget(e)
}

// toSimpleTarget converts the operand of a compound assignment or an
// update expression: an identifier or a member expression.
func (x *Parser) toSimpleTarget(e Expression) SimpleAssignmentTarget {
	var t SimpleAssignmentTarget
	switch e := e.(type) {
	case *IdentifierExpression:
		if x.fn.strict && (e.Name == "eval" || e.Name == "arguments") {
			x.earlyf(e.Start, "%s may not be assigned in strict mode", e.Name)
		}
		t = &AssignmentTargetIdentifier{Loc: e.Loc, Name: e.Name}
	case *StaticMemberExpression:
		t = &StaticMemberAssignmentTarget{Loc: e.Loc, Object: e.Object, Property: e.Property}
	case *ComputedMemberExpression:
		t = &ComputedMemberAssignmentTarget{Loc: e.Loc, Object: e.Object, Expression: e.Expression}
	default:
		x.fail(e.Span().Start, "invalid assignment target")
	}
	if x.parens[e] {
		x.parens[t] = true
	}
	return t
}

// toArrowParams converts the parenthesized expressions preceding an
// arrow into its parameters.
func (x *Parser) toArrowParams(start Pos, items []Expression, rest Expression) *FormalParameters {
	params := &FormalParameters{Loc: x.loc(start), Items: []Parameter{}}
	for _, e := range items {
		params.Items = append(params.Items, x.toParam(e))
	}
	if rest != nil {
		params.Rest = x.toBinding(rest)
	}
	return params
}

func (x *Parser) toParam(e Expression) Parameter {
	if a, ok := e.(*AssignmentExpression); ok && !x.parens[a] {
		return &BindingWithDefault{Loc: a.Loc, Binding: x.targetToBinding(a.Binding), Init: a.Expression}
	}
	return x.toBinding(e)
}

func (x *Parser) toBinding(e Expression) Binding {
	if x.parens[e] {
		x.fail(e.Span().Start, "invalid destructuring target")
	}
	switch e := e.(type) {
	case *IdentifierExpression:
		return &BindingIdentifier{Loc: e.Loc, Name: e.Name}
	case *ArrayExpression:
		b := &ArrayBinding{Loc: e.Loc, Elements: []Parameter{}}
		for i, elem := range e.Elements {
			switch elem := elem.(type) {
			case nil:
				b.Elements = append(b.Elements, nil)
			case *SpreadElement:
				if i != len(e.Elements)-1 {
					x.fail(elem.Start, "rest element must be last")
				}
				b.Rest = x.toBinding(elem.Expression)
			case Expression:
				b.Elements = append(b.Elements, x.toParam(elem))
			}
		}
		return b
	case *ObjectExpression:
		b := &ObjectBinding{Loc: e.Loc, Properties: []BindingProperty{}}
		for _, prop := range e.Properties {
			switch prop := prop.(type) {
			case *DataProperty:
				b.Properties = append(b.Properties, &BindingPropertyProperty{
					Loc:     prop.Loc,
					Name:    prop.Name,
					Binding: x.toParam(prop.Expression),
				})
			case *ShorthandProperty:
				b.Properties = append(b.Properties, &BindingPropertyIdentifier{
					Loc:     prop.Loc,
					Binding: &BindingIdentifier{Loc: prop.Name.Loc, Name: prop.Name.Name},
					Init:    x.coverInit[prop],
				})
			default:
				x.fail(prop.Span().Start, "invalid destructuring target")
			}
		}
		return b
	}
	x.fail(e.Span().Start, "invalid destructuring target")
	panic("not reached")
}

// targetToBinding converts an assignment target, already converted
// from an expression, into a binding. This happens for parameters with
// defaults, which are first parsed as assignments.
func (x *Parser) targetToBinding(t AssignmentTarget) Binding {
	if x.parens[t] {
		x.fail(t.Span().Start, "invalid destructuring target")
	}
	switch t := t.(type) {
	case *AssignmentTargetIdentifier:
		return &BindingIdentifier{Loc: t.Loc, Name: t.Name}
	case *ArrayAssignmentTarget:
		b := &ArrayBinding{Loc: t.Loc, Elements: []Parameter{}}
		for _, elem := range t.Elements {
			if elem == nil {
				b.Elements = append(b.Elements, nil)
				continue
			}
			b.Elements = append(b.Elements, x.targetToParam(elem))
		}
		if t.Rest != nil {
			b.Rest = x.targetToBinding(t.Rest)
		}
		return b
	case *ObjectAssignmentTarget:
		b := &ObjectBinding{Loc: t.Loc, Properties: []BindingProperty{}}
		for _, prop := range t.Properties {
			switch prop := prop.(type) {
			case *AssignmentTargetPropertyIdentifier:
				b.Properties = append(b.Properties, &BindingPropertyIdentifier{
					Loc:     prop.Loc,
					Binding: &BindingIdentifier{Loc: prop.Binding.Loc, Name: prop.Binding.Name},
					Init:    prop.Init,
				})
			case *AssignmentTargetPropertyProperty:
				b.Properties = append(b.Properties, &BindingPropertyProperty{
					Loc:     prop.Loc,
					Name:    prop.Name,
					Binding: x.targetToParam(prop.Binding),
				})
			}
		}
		return b
	}
	x.fail(t.Span().Start, "invalid destructuring target")
	panic("not reached")
}

func (x *Parser) targetToParam(t AssignmentTargetMaybeDefault) Parameter {
	if d, ok := t.(*AssignmentTargetWithDefault); ok {
		return &BindingWithDefault{Loc: d.Loc, Binding: x.targetToBinding(d.Binding), Init: d.Init}
	}
	return x.targetToBinding(t.(AssignmentTarget))
}

// NumberString renders f the way JavaScript converts numbers to
// strings. It gives the names of properties written as numeric
// literals.
func NumberString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + NumberString(-f)
	}
	// The shortest representation that round-trips, as d.ddde±x.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp := s, 0
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant = s[:i]
		exp, _ = strconv.Atoi(s[i+1:])
	}
	digits := strings.Replace(mant, ".", "", 1)
	k, n := len(digits), exp+1
	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}
	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	e := n - 1
	if e < 0 {
		e = -e
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(e)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(e)
}
