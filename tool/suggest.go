// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"github.com/hbollon/go-edlib"
)

// maxSuggestDistance is the largest edit distance at which a command
// name is suggested for a mistyped one.
const maxSuggestDistance = 3

// closest returns the name in names nearest to s by
// Damerau-Levenshtein distance, or an empty string if none is within
// maxSuggestDistance. Ties go to the first name.
func closest(s string, names []string) string {
	var (
		best string
		min  = maxSuggestDistance + 1
	)
	for _, name := range names {
		if d := edlib.DamerauLevenshteinDistance(s, name); d < min {
			best, min = name, d
		}
	}
	return best
}
