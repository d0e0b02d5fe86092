// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIllegal
	tokIdent
	tokPunct
	tokNumber
	tokString
	tokTemplate
	tokRegExp
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIllegal:
		return "illegal token"
	case tokIdent:
		return "identifier"
	case tokPunct:
		return "punctuator"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokTemplate:
		return "template"
	case tokRegExp:
		return "regular expression"
	}
	panic("bad token kind")
}

// token is a lexical token. Identifiers (including keywords) carry
// their decoded name in value; strings carry their decoded value
// (WTF-8); templates carry their raw text.
type token struct {
	kind tokenKind
	// text is the source text of the token.
	text     string
	value    string
	num      float64
	pos, end Pos
	// nl is set when a line terminator precedes the token.
	nl bool
	// escaped is set for identifiers written with unicode escapes.
	escaped bool
	// octal is set for legacy octal numbers and strings containing
	// legacy octal escapes, which are forbidden in strict code.
	octal bool
	// tail is set for the last span of a template.
	tail bool
	// badEscape is set for template spans with malformed escapes.
	badEscape bool
	// flags holds the flags of a regular expression; value holds
	// its pattern.
	flags string
	// err describes an illegal token.
	err string
}

func (t token) is(punct string) bool {
	return t.kind == tokPunct && t.text == punct
}

// isName reports whether t is the identifier name, written without
// escapes. Contextual keywords are recognized only in this form.
func (t token) isName(name string) bool {
	return t.kind == tokIdent && !t.escaped && t.value == name
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokIllegal:
		return t.err
	case tokString:
		return "string " + t.text
	case tokTemplate:
		return "template"
	}
	return strconv.Quote(t.text)
}

// punctuators, longest first.
var punctuators = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "++", "--", "+=", "-=", "*=",
	"/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
	"{", "}", "(", ")", "[", "]", ".", ";", ",", "<", ">", "+", "-", "*",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", "/",
}

// lexer scans ECMAScript tokens on demand. The parser drives it,
// rescanning where the lexical goal depends on syntactic context
// (regular expressions and template continuations).
type lexer struct {
	src    string
	module bool
	lexState
}

type lexState struct {
	off, line, lineStart int
	// scanned is set once a token has been produced; HTML close
	// comments are recognized only at the start of a line.
	scanned bool
}

func newLexer(src string, module bool) *lexer {
	l := &lexer{src: src, module: module}
	l.line = 1
	return l
}

func (l *lexer) save() lexState     { return l.lexState }
func (l *lexer) restore(s lexState) { l.lexState = s }

func (l *lexer) pos() Pos {
	return Pos{Offset: l.off, Line: l.line, Column: l.off - l.lineStart + 1}
}

func (l *lexer) peekRune() (rune, int) {
	if l.off >= len(l.src) {
		return -1, 0
	}
	c := l.src[l.off]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) byteAt(i int) int {
	if i >= len(l.src) {
		return -1
	}
	return int(l.src[i])
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', 0xa0, 0xfeff:
		return true
	}
	return r > 0x7f && unicode.Is(unicode.Zs, r)
}

func isIDStart(r rune) bool {
	switch {
	case r == '$' || r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		return true
	case r < 0x80:
		return false
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_ID_Start)
}

func isIDPart(r rune) bool {
	switch {
	case isIDStart(r) || '0' <= r && r <= '9':
		return true
	case r == 0x200c || r == 0x200d:
		return true
	case r < 0x80:
		return false
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func isDecimal(c int) bool { return '0' <= c && c <= '9' }

func hexVal(c int) int {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return -1
}

// newline consumes a line terminator of width w, treating CR LF as a
// single terminator.
func (l *lexer) newline(r rune, w int) {
	l.off += w
	if r == '\r' && l.byteAt(l.off) == '\n' {
		l.off++
	}
	l.line++
	l.lineStart = l.off
}

// skipSpace skips whitespace and comments. It reports whether a line
// terminator was skipped.
func (l *lexer) skipSpace() (nl bool, err string) {
	for {
		r, w := l.peekRune()
		switch {
		case r < 0:
			return nl, ""
		case isLineTerminator(r):
			l.newline(r, w)
			nl = true
		case isWhitespace(r):
			l.off += w
		case strings.HasPrefix(l.src[l.off:], "//"):
			l.skipLine()
		case strings.HasPrefix(l.src[l.off:], "/*"):
			end := strings.Index(l.src[l.off+2:], "*/")
			if end < 0 {
				l.off = len(l.src)
				return nl, "unterminated comment"
			}
			stop := l.off + 2 + end + 2
			for l.off < stop {
				r, w := l.peekRune()
				if isLineTerminator(r) {
					l.newline(r, w)
					nl = true
				} else {
					l.off += w
				}
			}
		case !l.module && strings.HasPrefix(l.src[l.off:], "<!--"):
			l.skipLine()
		case !l.module && (nl || !l.scanned) && strings.HasPrefix(l.src[l.off:], "-->"):
			l.skipLine()
		default:
			return nl, ""
		}
	}
}

func (l *lexer) skipLine() {
	for {
		r, w := l.peekRune()
		if r < 0 || isLineTerminator(r) {
			return
		}
		l.off += w
	}
}

// next scans the next token in the default (non-regexp) goal.
func (l *lexer) next() token {
	nl, err := l.skipSpace()
	t := token{nl: nl, pos: l.pos()}
	l.scanned = true
	start := l.off
	switch {
	case err != "":
		t.kind, t.err = tokIllegal, err
	case l.off >= len(l.src):
		t.kind = tokEOF
	default:
		l.scan(&t)
	}
	t.text = l.src[start:l.off]
	t.end = l.pos()
	return t
}

func (l *lexer) illegal(t *token, msg string) {
	t.kind = tokIllegal
	t.err = msg
}

func (l *lexer) scan(t *token) {
	c := int(l.src[l.off])
	r, _ := l.peekRune()
	switch {
	case isIDStart(r) || c == '\\':
		l.scanIdent(t)
	case isDecimal(c) || c == '.' && isDecimal(l.byteAt(l.off+1)):
		l.scanNumber(t)
	case c == '"' || c == '\'':
		l.scanString(t)
	case c == '`':
		l.off++
		l.scanTemplate(t)
	default:
		for _, p := range punctuators {
			if strings.HasPrefix(l.src[l.off:], p) {
				l.off += len(p)
				t.kind = tokPunct
				return
			}
		}
		l.illegal(t, "unexpected character "+strconv.QuoteRune(r))
		_, w := l.peekRune()
		l.off += w
	}
}

// scanUnicodeEscape scans the part of a unicode escape following
// "\u": either four hex digits or a braced code point.
func (l *lexer) scanUnicodeEscape() (rune, bool) {
	if l.byteAt(l.off) == '{' {
		l.off++
		var v rune
		n := 0
		for {
			c := l.byteAt(l.off)
			if c == '}' {
				l.off++
				break
			}
			d := hexVal(c)
			if d < 0 {
				return 0, false
			}
			v = v*16 + rune(d)
			if v > unicode.MaxRune {
				return 0, false
			}
			n++
			l.off++
		}
		return v, n > 0
	}
	var v rune
	for i := 0; i < 4; i++ {
		d := hexVal(l.byteAt(l.off))
		if d < 0 {
			return 0, false
		}
		v = v*16 + rune(d)
		l.off++
	}
	return v, true
}

func (l *lexer) scanIdent(t *token) {
	t.kind = tokIdent
	var b strings.Builder
	for first := true; ; first = false {
		r, w := l.peekRune()
		if r == '\\' {
			if l.byteAt(l.off+1) != 'u' {
				l.illegal(t, "invalid escape in identifier")
				return
			}
			l.off += 2
			r, ok := l.scanUnicodeEscape()
			if !ok || utf16.IsSurrogate(r) || first && !isIDStart(r) || !first && !isIDPart(r) {
				l.illegal(t, "invalid unicode escape in identifier")
				return
			}
			t.escaped = true
			b.WriteRune(r)
			continue
		}
		if r < 0 || first && !isIDStart(r) || !first && !isIDPart(r) {
			break
		}
		b.WriteRune(r)
		l.off += w
	}
	t.value = b.String()
}

func (l *lexer) scanDigits(base int) int {
	n := 0
	for {
		c := l.byteAt(l.off)
		d := hexVal(c)
		if d < 0 || d >= base {
			return n
		}
		l.off++
		n++
	}
}

func (l *lexer) scanNumber(t *token) {
	t.kind = tokNumber
	start := l.off
	if l.src[l.off] == '0' {
		base := 0
		switch l.byteAt(l.off+1) | 0x20 {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			l.off += 2
			if l.scanDigits(base) == 0 {
				l.illegal(t, "missing digits in numeric literal")
				return
			}
			t.num = parseInt(l.src[start+2:l.off], base)
			l.checkNumberEnd(t)
			return
		}
		if isDecimal(l.byteAt(l.off + 1)) {
			t.octal = true
			l.scanDigits(10)
			digits := l.src[start:l.off]
			if strings.IndexAny(digits, "89") < 0 {
				t.num = parseInt(digits, 8)
				l.checkNumberEnd(t)
				return
			}
			// Non-octal decimal integer literals may carry a fraction
			// and an exponent.
			l.scanDecimalTail(t)
			l.finishDecimal(t, start)
			return
		}
	}
	if l.src[l.off] != '.' {
		l.scanDigits(10)
	}
	l.scanDecimalTail(t)
	l.finishDecimal(t, start)
}

func (l *lexer) scanDecimalTail(t *token) {
	if l.byteAt(l.off) == '.' {
		l.off++
		l.scanDigits(10)
	}
	if l.byteAt(l.off)|0x20 == 'e' {
		l.off++
		if c := l.byteAt(l.off); c == '+' || c == '-' {
			l.off++
		}
		if l.scanDigits(10) == 0 {
			l.illegal(t, "missing exponent in numeric literal")
		}
	}
}

func (l *lexer) finishDecimal(t *token, start int) {
	if t.kind == tokIllegal {
		return
	}
	// ParseFloat reports overflow with an infinite value, which is the
	// value we want.
	t.num, _ = strconv.ParseFloat(l.src[start:l.off], 64)
	l.checkNumberEnd(t)
}

func (l *lexer) checkNumberEnd(t *token) {
	r, _ := l.peekRune()
	if r >= 0 && (isIDStart(r) || r == '\\' || isDecimal(int(r))) {
		l.illegal(t, "identifier directly after number")
	}
}

func parseInt(digits string, base int) float64 {
	if len(digits) <= 12 {
		v, _ := strconv.ParseUint(digits, base, 64)
		return float64(v)
	}
	i, _ := new(big.Int).SetString(digits, base)
	f, _ := new(big.Float).SetInt(i).Float64()
	if math.IsInf(f, 0) {
		return math.Inf(1)
	}
	return f
}

func (l *lexer) scanString(t *token) {
	t.kind = tokString
	quote := l.src[l.off]
	l.off++
	var units []uint16
	for {
		r, w := l.peekRune()
		switch {
		case r < 0:
			l.illegal(t, "unterminated string literal")
			return
		case r == rune(quote):
			l.off++
			t.value = wtf8(units)
			return
		case r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029:
			l.illegal(t, "unterminated string literal")
			return
		case r == '\\':
			l.off++
			var ok bool
			units, ok = l.scanEscape(t, units)
			if !ok {
				l.illegal(t, "invalid escape sequence")
				return
			}
		default:
			l.off += w
			units = appendUnits(units, r)
		}
	}
}

// scanEscape scans the escape sequence following a backslash in a
// string literal, appending the code units it denotes.
func (l *lexer) scanEscape(t *token, units []uint16) ([]uint16, bool) {
	r, w := l.peekRune()
	if r < 0 {
		return units, false
	}
	if isLineTerminator(r) {
		l.newline(r, w)
		return units, true
	}
	l.off += w
	switch r {
	case 'n':
		return append(units, '\n'), true
	case 't':
		return append(units, '\t'), true
	case 'r':
		return append(units, '\r'), true
	case 'b':
		return append(units, '\b'), true
	case 'f':
		return append(units, '\f'), true
	case 'v':
		return append(units, '\v'), true
	case 'x':
		hi, lo := hexVal(l.byteAt(l.off)), hexVal(l.byteAt(l.off+1))
		if hi < 0 || lo < 0 {
			return units, false
		}
		l.off += 2
		return append(units, uint16(hi<<4|lo)), true
	case 'u':
		v, ok := l.scanUnicodeEscape()
		if !ok {
			return units, false
		}
		return appendUnits(units, v), true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if r == '0' && !isDecimal(l.byteAt(l.off)) {
			return append(units, 0), true
		}
		t.octal = true
		v := int(r - '0')
		max := 3
		if r > '3' {
			max = 2
		}
		for n := 1; n < max; n++ {
			c := l.byteAt(l.off)
			if c < '0' || c > '7' {
				break
			}
			v = v*8 + c - '0'
			l.off++
		}
		return append(units, uint16(v)), true
	case '8', '9':
		t.octal = true
		return append(units, uint16(r)), true
	}
	return appendUnits(units, r), true
}

// appendUnits appends the UTF-16 code units of r. Surrogate code points
// are appended as single units.
func appendUnits(units []uint16, r rune) []uint16 {
	if r >= 0x10000 {
		r1, r2 := utf16.EncodeRune(r)
		return append(units, uint16(r1), uint16(r2))
	}
	return append(units, uint16(r))
}

// wtf8 encodes UTF-16 code units as WTF-8: UTF-8, except that
// unpaired surrogates are encoded as if they were code points.
func wtf8(units []uint16) string {
	var b strings.Builder
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if utf16.IsSurrogate(u) && u < 0xdc00 && i+1 < len(units) {
			if r := utf16.DecodeRune(u, rune(units[i+1])); r != utf8.RuneError {
				b.WriteRune(r)
				i++
				continue
			}
		}
		if utf16.IsSurrogate(u) {
			b.WriteByte(byte(0xe0 | u>>12))
			b.WriteByte(byte(0x80 | (u>>6)&0x3f))
			b.WriteByte(byte(0x80 | u&0x3f))
			continue
		}
		b.WriteRune(u)
	}
	return b.String()
}

// scanTemplate scans a template span. The lexer is positioned after
// the opening backquote or the closing brace of a substitution.
func (l *lexer) scanTemplate(t *token) {
	t.kind = tokTemplate
	start := l.off
	for {
		r, w := l.peekRune()
		switch {
		case r < 0:
			l.illegal(t, "unterminated template literal")
			return
		case r == '`':
			t.value = l.src[start:l.off]
			t.tail = true
			l.off++
			return
		case r == '$' && l.byteAt(l.off+1) == '{':
			t.value = l.src[start:l.off]
			l.off += 2
			return
		case r == '\\':
			l.off++
			if !l.scanTemplateEscape() {
				t.badEscape = true
			}
		case isLineTerminator(r):
			l.newline(r, w)
		default:
			l.off += w
		}
	}
}

func (l *lexer) scanTemplateEscape() bool {
	r, w := l.peekRune()
	switch {
	case r < 0:
		return true
	case isLineTerminator(r):
		l.newline(r, w)
		return true
	case r == 'x':
		l.off++
		if hexVal(l.byteAt(l.off)) < 0 || hexVal(l.byteAt(l.off+1)) < 0 {
			return false
		}
		l.off += 2
		return true
	case r == 'u':
		l.off++
		_, ok := l.scanUnicodeEscape()
		return ok
	case r == '0':
		l.off++
		return !isDecimal(l.byteAt(l.off))
	case '1' <= r && r <= '9':
		l.off++
		return false
	}
	l.off += w
	return true
}

// rescanTemplate rescans from the closing brace of a template
// substitution, which must be the current token t.
func (l *lexer) rescanTemplate(t token) token {
	l.off = t.pos.Offset + 1
	l.line, l.lineStart = t.pos.Line, t.pos.Offset-t.pos.Column+1
	u := token{pos: t.pos}
	l.scanTemplate(&u)
	u.text = l.src[t.pos.Offset:l.off]
	u.end = l.pos()
	return u
}

// rescanRegExp rescans the current token t, which must be "/" or "/=",
// as a regular expression literal.
func (l *lexer) rescanRegExp(t token) token {
	l.off = t.pos.Offset + 1
	l.line, l.lineStart = t.pos.Line, t.pos.Offset-t.pos.Column+1
	u := token{kind: tokRegExp, pos: t.pos, nl: t.nl}
	inClass := false
scan:
	for {
		r, w := l.peekRune()
		switch {
		case r < 0 || isLineTerminator(r):
			l.illegal(&u, "unterminated regular expression")
			break scan
		case r == '\\':
			l.off++
			r, w = l.peekRune()
			if r < 0 || isLineTerminator(r) {
				l.illegal(&u, "unterminated regular expression")
				break scan
			}
		case r == '[':
			inClass = true
		case r == ']':
			inClass = false
		case r == '/' && !inClass:
			u.value = l.src[t.pos.Offset+1 : l.off]
			l.off++
			fstart := l.off
			for {
				r, w := l.peekRune()
				if r == '\\' {
					l.illegal(&u, "invalid regular expression flags")
					break scan
				}
				if r < 0 || !isIDPart(r) {
					break
				}
				l.off += w
			}
			u.flags = l.src[fstart:l.off]
			break scan
		}
		l.off += w
	}
	u.text = l.src[t.pos.Offset:l.off]
	u.end = l.pos()
	return u
}

// IsIdentifierName tells whether s is an IdentifierName: an identifier
// or a reserved word, written without escapes.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError || i == 0 && !isIDStart(r) || i > 0 && !isIDPart(r) {
			return false
		}
	}
	return true
}
