// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

// Flags record the syntactic properties of a rendering that decide
// whether it may appear, unparenthesized, in a given context.
type Flags struct {
	// ContainsIn is set when the rendering contains an in operator
	// outside of any brackets, which would be misread in the head of a
	// for statement.
	ContainsIn bool
	// ContainsGroup is set for comma expressions.
	ContainsGroup bool
	// StartsWithCurly, StartsWithFunctionOrClass and
	// StartsWithLetSquareBracket would change the meaning of an
	// expression statement.
	StartsWithCurly            bool
	StartsWithFunctionOrClass  bool
	StartsWithLet              bool
	StartsWithLetSquareBracket bool
	// EndsWithMissingElse is set for statements ending in an if
	// statement without an else branch.
	EndsWithMissingElse bool
}

func (f *Flags) flags() *Flags { return f }

// A Rep is the rendering of a syntax tree node: a tree of printable
// fragments. Reps are built bottom-up, one per node, and are owned by
// the rendering of the parent node.
type Rep interface {
	flags() *Flags
	// emit writes the rendering. noIn is set when an in operator
	// must be parenthesized.
	emit(w *writer, noIn bool)
}

// Seq is an ordered sequence of renderings.
type Seq struct {
	Flags
	Children []Rep
}

func (s *Seq) emit(w *writer, noIn bool) {
	for _, c := range s.Children {
		c.emit(w, noIn)
	}
}

// Empty renders nothing.
type Empty struct{ Flags }

func (*Empty) emit(*writer, bool) {}

// Token is a literal token.
type Token struct {
	Flags
	Text string
	// RegExp is set for regular expression literals.
	RegExp bool
}

func (t *Token) emit(w *writer, noIn bool) { w.put(t.Text, t.RegExp) }

// Number is a numeric literal.
type Number struct {
	Flags
	Value float64
}

func (n *Number) emit(w *writer, noIn bool) { w.putNumber(n.Value) }

// Raw is template text, written verbatim.
type Raw struct {
	Flags
	Text string
}

func (r *Raw) emit(w *writer, noIn bool) { w.putRaw(r.Text) }

// Space separates tokens for legibility.
type Space struct{ Flags }

func (*Space) emit(w *writer, noIn bool) { w.space() }

// Paren is a rendering enclosed in parentheses.
type Paren struct {
	Flags
	Rep Rep
}

func (p *Paren) emit(w *writer, noIn bool) {
	w.put("(", false)
	p.Rep.emit(w, false)
	w.put(")", false)
}

// Bracket is a rendering enclosed in square brackets.
type Bracket struct {
	Flags
	Rep Rep
}

func (b *Bracket) emit(w *writer, noIn bool) {
	w.put("[", false)
	b.Rep.emit(w, false)
	w.put("]", false)
}

// Brace is a rendering enclosed in curly braces on a single line.
type Brace struct {
	Flags
	Rep Rep
}

func (b *Brace) emit(w *writer, noIn bool) {
	w.put("{", false)
	b.Rep.emit(w, false)
	w.put("}", false)
}

// CommaSep is a comma-separated list.
type CommaSep struct {
	Flags
	Children []Rep
}

func (c *CommaSep) emit(w *writer, noIn bool) {
	for i, r := range c.Children {
		if i > 0 {
			w.put(",", false)
			w.space()
		}
		r.emit(w, noIn)
	}
}

// Lines renders each of its children on its own line, indented one
// level deeper than the enclosing line if Indent is set.
type Lines struct {
	Flags
	Children []Rep
	Indent   bool
}

func (l *Lines) emit(w *writer, noIn bool) {
	if l.Indent {
		w.indent()
		defer w.unindent()
	}
	for _, r := range l.Children {
		w.newline()
		r.emit(w, false)
	}
}

// Linebreak ends the current line.
type Linebreak struct{ Flags }

func (*Linebreak) emit(w *writer, noIn bool) { w.newline() }

// NoIn renders its child in a context where the in operator must be
// parenthesized: the head of a for statement.
type NoIn struct {
	Flags
	Rep Rep
}

func (n *NoIn) emit(w *writer, noIn bool) { n.Rep.emit(w, true) }

// ContainsIn marks a rendering containing an in operator, which is
// parenthesized where in is not permitted.
type ContainsIn struct {
	Flags
	Rep Rep
}

func (c *ContainsIn) emit(w *writer, noIn bool) {
	if !noIn {
		c.Rep.emit(w, false)
		return
	}
	w.put("(", false)
	c.Rep.emit(w, false)
	w.put(")", false)
}

// Flatten returns the canonical form of r: if r is a Seq, nested Seqs
// are inlined and Empty children dropped, and a Seq left with a single
// child is replaced by that child. Other renderings are returned as
// is.
func Flatten(r Rep) Rep {
	s, ok := r.(*Seq)
	if !ok {
		return r
	}
	var reps []Rep
	for _, c := range s.Children {
		switch c := Flatten(c).(type) {
		case *Seq:
			reps = append(reps, c.Children...)
		case *Empty:
		default:
			reps = append(reps, c)
		}
	}
	if len(reps) == 1 {
		return reps[0]
	}
	return &Seq{Children: reps}
}

func seq(reps ...Rep) *Seq { return &Seq{Children: reps} }

func empty() *Empty { return new(Empty) }

func space() *Space { return new(Space) }

func commaSep(reps []Rep) *CommaSep { return &CommaSep{Children: reps} }

// markContainsIn wraps r if it contains an in operator.
func markContainsIn(r Rep) Rep {
	if r.flags().ContainsIn {
		return &ContainsIn{Rep: r}
	}
	return r
}
