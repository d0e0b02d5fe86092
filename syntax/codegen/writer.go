// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

import (
	"bufio"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// writer writes tokens, inserting the whitespace that keeps adjacent
// tokens from running together, and indents lines.
type writer struct {
	w                 *bufio.Writer
	level             int
	isAlreadyIndented bool
	// started is set once anything has been written.
	started bool

	// last is the last rune written on the current line, or 0 at the
	// start of a line.
	last rune
	// lastNumber holds the text of the last token if it was a number.
	lastNumber string
	lastRegExp bool

	err error
}

func newWriter(w *bufio.Writer) *writer {
	return &writer{w: w}
}

func (w *writer) writeString(s string) {
	if w.err != nil {
		return
	}
	if !w.isAlreadyIndented && len(s) > 0 {
		if _, err := w.w.WriteString(strings.Repeat("  ", w.level)); err != nil {
			w.err = err
			return
		}
		w.isAlreadyIndented = true
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
		return
	}
	w.started = true
}

// put writes a token.
func (w *writer) put(tok string, regexp bool) {
	if tok == "" {
		return
	}
	first, _ := utf8.DecodeRuneInString(tok)
	if w.needsSpace(first) {
		w.writeString(" ")
	}
	w.writeString(tok)
	w.last, _ = utf8.DecodeLastRuneInString(tok)
	w.lastRegExp = regexp
	w.lastNumber = ""
}

func (w *writer) putNumber(f float64) {
	s := formatNumber(f)
	w.put(s, false)
	w.lastNumber = s
}

// putRaw writes template text, which may span lines, without spacing
// or indentation.
func (w *writer) putRaw(s string) {
	if s == "" {
		return
	}
	w.writeString(s)
	w.last, _ = utf8.DecodeLastRuneInString(s)
	w.lastRegExp = false
	w.lastNumber = ""
}

func (w *writer) space() {
	if w.last == 0 || w.last == ' ' {
		return
	}
	w.writeString(" ")
	w.last = ' '
	w.lastRegExp = false
	w.lastNumber = ""
}

func (w *writer) newline() {
	if !w.started {
		return
	}
	if w.err == nil {
		if err := w.w.WriteByte('\n'); err != nil {
			w.err = err
		}
	}
	w.isAlreadyIndented = false
	w.last = 0
	w.lastRegExp = false
	w.lastNumber = ""
}

// needsSpace tells whether a token beginning with next, written
// directly after the last token, would be read differently.
func (w *writer) needsSpace(next rune) bool {
	switch last := w.last; {
	case last == 0 || last == ' ':
		return false
	case isIdentPart(last) && isIdentPart(next):
		return true
	case w.lastRegExp && isIdentPart(next):
		return true
	case (last == '+' || last == '-') && next == last:
		return true
	case last == '/' && (next == '/' || next == '*'):
		return true
	case last == '<' && next == '!':
		return true
	case next == '.' && w.lastNumber != "" && isDecimalInteger(w.lastNumber):
		return true
	}
	return false
}

func (w *writer) indent() {
	w.level++
}

func (w *writer) unindent() {
	if w.level <= 0 {
		panic("unindent called at level 0")
	}
	w.level--
}

// isIdentPart reports whether r may continue an identifier. It errs on
// the side of true for non-ASCII runes and escapes.
func isIdentPart(r rune) bool {
	switch {
	case r == '$' || r == '_' || r == '\\':
		return true
	case r >= utf8.RuneSelf:
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDecimalInteger(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// formatNumber renders a non-negative finite number so that it reads
// back as the same value.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && f < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
