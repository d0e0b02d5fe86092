// Copyright 2020 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package jsfixture_test

import (
	"testing"

	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/errors"
)

func TestIsSemVer(t *testing.T) {
	for _, tc := range []struct {
		v    string
		want bool
	}{
		{"hello", false},
		{"jsfixture1.1.1safk", false},
		{"1.1", true},
		{"jsfixture1.1.1", true},
		{"jsfixture1.1.1-beta", true},
		{"jsfixturev1.1.1", true},
		{"v1.1.1", true},
	} {
		if got, want := jsfixture.IsSemVer(tc.v), tc.want; got != want {
			t.Errorf("IsSemVer(%s): got %v, want %v", tc.v, got, want)
		}
	}
}

func TestIsOlderVersion(t *testing.T) {
	for _, tc := range []struct {
		v1, v2 string
		want   bool
	}{
		{"jsfixture1.1.1", "jsfixture1.2.1", true},
		{"jsfixture1.124.1", "1.2.1", false},
		{"1.1.1", "jsfixture1.1.1", false},
		{"1", "1.1.1", true},
	} {
		if got, want := jsfixture.IsOlderVersion(tc.v1, tc.v2), tc.want; got != want {
			t.Errorf("IsOlderVersion(%s, %s): got %v, want %v", tc.v1, tc.v2, got, want)
		}
	}
}

func TestCheckMinVersion(t *testing.T) {
	for _, tc := range []struct {
		version, min string
		kind         errors.Kind
		ok           bool
	}{
		{"v1.2.0", "", 0, true},
		{"broken", "v9.0.0", 0, true},
		{"v1.2.0", "v1.1.0", 0, true},
		{"v1.2.0", "v1.2.0", 0, true},
		{"v1.2.0", "v1.3.0", errors.NotSupported, false},
		{"v1.2.0", "latest", errors.Invalid, false},
	} {
		err := jsfixture.CheckMinVersion(tc.version, tc.min)
		if tc.ok {
			if err != nil {
				t.Errorf("CheckMinVersion(%s, %s): %v", tc.version, tc.min, err)
			}
			continue
		}
		if !errors.Is(tc.kind, err) {
			t.Errorf("CheckMinVersion(%s, %s): got %v, want kind %v", tc.version, tc.min, err, tc.kind)
		}
	}
}
