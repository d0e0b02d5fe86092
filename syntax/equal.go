// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOpts compare trees structurally: source locations are ignored,
// and absent lists equal empty ones.
var equalOpts = []cmp.Option{
	cmpopts.IgnoreTypes(Loc{}),
	cmpopts.EquateEmpty(),
}

// Equal tells whether the trees a and b are structurally equal: they
// have the same node kinds, with the same attributes, in the same
// shape. Source locations are not compared.
func Equal(a, b Node) bool {
	return cmp.Equal(a, b, equalOpts...)
}

// Diff returns a human-readable report of the differences between
// trees a and b, or an empty string if they are equal.
func Diff(a, b Node) string {
	return cmp.Diff(a, b, equalOpts...)
}
