// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package codegen renders syntax trees as JavaScript source text.
//
// Rendering proceeds in two steps. A generator, implementing
// syntax.Reducer, folds the tree into a Rep: a tree of tokens annotated
// with the flags that decide where parentheses are needed. The Rep is
// then written out, with whitespace inserted between tokens that would
// otherwise run together. Statements are written one per line, indented
// by two spaces per level of nesting, and always terminated by a
// semicolon.
//
// Two generators are provided. Generator parenthesizes only where the
// tree's shape requires it; ExplicitGenerator parenthesizes every
// compound subexpression, producing the "explicit" form used to check
// that a parser associates operators correctly.
package codegen

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grailbio/jsfixture/syntax"
)

// Render writes program p, as rendered by r, to w.
func Render(w io.Writer, p syntax.Program, r syntax.Reducer[Rep]) error {
	bw := bufio.NewWriter(w)
	out := newWriter(bw)
	syntax.Reduce[Rep](r, p).emit(out, false)
	if out.err != nil {
		return out.err
	}
	return bw.Flush()
}

func render(p syntax.Program, r syntax.Reducer[Rep]) string {
	var b bytes.Buffer
	// Writes to a bytes.Buffer do not fail.
	_ = Render(&b, p, r)
	return b.String()
}

// Minimal renders p with as few parentheses as possible.
func Minimal(p syntax.Program) string {
	return render(p, NewGenerator())
}

// Explicit renders p in explicit form: every compound subexpression
// is parenthesized.
func Explicit(p syntax.Program) string {
	return render(p, NewExplicitGenerator())
}
