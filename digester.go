// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package jsfixture

import (
	"crypto"
	_ "crypto/sha256"
	"path"
	"strings"

	"github.com/grailbio/base/digest"
	"github.com/grailbio/jsfixture/syntax"
)

// Digester computes the content digests that identify fixtures.
var Digester = digest.Digester(crypto.SHA256)

// SlugLen is the number of hex digits in a fixture slug.
const SlugLen = 16

const (
	scriptExt = ".js"
	moduleExt = ".module.js"
)

// Slug returns the slug of a fixture with the given contents: the
// first SlugLen hex digits of its SHA-256 digest.
func Slug(src []byte) string {
	return Digester.FromBytes(src).Hex()[:SlugLen]
}

// IsModule tells whether the fixture with the given name is parsed as
// a module. Module fixtures are named with the ".module.js" suffix.
func IsModule(name string) bool {
	return strings.HasSuffix(name, moduleExt)
}

// Mode returns the parser mode for the fixture with the given name.
func Mode(name string) syntax.ParserMode {
	if IsModule(name) {
		return syntax.ParseModule
	}
	return syntax.ParseScript
}

// CanonicalName returns the name a fixture with the given contents
// should have: its slug followed by ".module.js" for modules and
// ".js" otherwise.
func CanonicalName(src []byte, module bool) string {
	if module {
		return Slug(src) + moduleExt
	}
	return Slug(src) + scriptExt
}

// SplitName splits a fixture's base name into its stem and whether it
// is a module. It returns false if name does not name a fixture.
func SplitName(name string) (stem string, module, ok bool) {
	name = path.Base(name)
	switch {
	case strings.HasSuffix(name, moduleExt):
		return strings.TrimSuffix(name, moduleExt), true, true
	case strings.HasSuffix(name, scriptExt):
		return strings.TrimSuffix(name, scriptExt), false, true
	}
	return "", false, false
}

// IsFixture tells whether name names a fixture file.
func IsFixture(name string) bool {
	_, _, ok := SplitName(name)
	return ok
}
