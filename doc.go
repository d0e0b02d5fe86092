// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package jsfixture implements the operations on individual fixtures
// of a JavaScript parser conformance corpus.
//
// A corpus holds small ECMAScript 2017 programs ("fixtures") in
// directories that name the parser's expected verdict: pass fixtures
// are accepted, fail fixtures are rejected by the grammar, and early
// fixtures are grammatical but violate the language's static
// semantics. Each pass fixture has an explicit counterpart, rendered
// by MakeExplicit, in which every compound expression is
// parenthesized; a conforming parser produces the same tree for both.
//
// Fixtures are named by their content: Slug is the first 16 hex
// digits of the SHA-256 of the fixture's source, and fixtures parsed
// as modules carry the ".module.js" suffix.
//
// Package conformance checks whole corpora; package syntax/codegen
// renders syntax trees.
package jsfixture
