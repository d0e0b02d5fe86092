// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// QuoteString renders s, a string value encoded as WTF-8, as a string
// literal. Double quotes delimit the literal unless s contains more of
// them than single quotes.
func QuoteString(s string) string {
	delim := byte('"')
	if strings.Count(s, `"`) > strings.Count(s, "'") {
		delim = '\''
	}
	var b strings.Builder
	b.WriteByte(delim)
	for i := 0; i < len(s); {
		// Lone surrogates: ED A0-BF xx.
		if s[i] == 0xED && i+2 < len(s) && s[i+1] >= 0xA0 && s[i+1] <= 0xBF {
			u := 0xD000 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F)
			fmt.Fprintf(&b, `\u%04X`, u)
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case rune(delim):
			b.WriteByte('\\')
			b.WriteByte(delim)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte(delim)
	return b.String()
}

// directiveDelimiter returns the quote that can delimit the raw
// directive text raw: a double quote unless raw contains an unescaped
// one.
func directiveDelimiter(raw string) string {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '"':
			return "'"
		}
	}
	return `"`
}
