// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*
Package syntax implements a parser for ECMAScript 2017 that produces
Shift syntax trees.

A program is parsed with one of two goals:

	ParseScript    // the Script goal; sloppy mode unless "use strict"
	ParseModule    // the Module goal; always strict, with import and export

The tree is made of concrete node types, one per Shift node kind:
*Script and *Module at the root, then statements, declarations,
expressions, bindings, and assignment targets. The node categories
(Statement, Expression, Binding, AssignmentTarget, PropertyName,
and so on) are closed interfaces: every implementation is defined in
this package. Every node embeds a Loc giving its source extent.

Parenthesization is not represented in the tree. The programs

	a + (b * c)
	(a + (b * c))

produce equal trees, as do string literals that differ only in their
escapes.

Errors come in two kinds. Grammar errors, where the source is not
derivable from the grammar, always fail the parse and are reported
with kind errors.Syntax. Early errors are violations of the static
semantics: strict mode restrictions, redeclared bindings, undefined
labels, misplaced super and new.target, duplicate exports, and
similar. They are collected during the parse and fail it, with kind
errors.Early, only when early errors are requested:

	prog, err := syntax.Parse("a.js", src, syntax.ParseScript, true)

Both kinds carry a PosErrors value giving each error's position as
file:line:column.

Trees are compared structurally by Equal and Diff, which ignore
source locations. Reduce folds a tree bottom-up through a Reducer,
which has one method per node kind.
*/
package syntax
