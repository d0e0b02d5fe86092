// Copyright 2020 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package jsfixture

import (
	"fmt"
	"strings"

	"github.com/grailbio/jsfixture/errors"
	"golang.org/x/mod/semver"
)

// IsSemVer returns whether the given string is a jsfixture version:
// a semantic version as described in https://semver.org/, optionally
// prefixed by "jsfixture", and with the leading "v" optional.
func IsSemVer(v string) bool {
	return semver.IsValid(toSemver(v))
}

// IsOlderVersion returns whether the first of the given two versions
// is strictly older. Panics if either version is not valid (so user
// should call IsSemVer first).
func IsOlderVersion(v1, v2 string) bool {
	if !IsSemVer(v1) {
		panic(fmt.Errorf("not a valid jsfixture version: %s", v1))
	}
	if !IsSemVer(v2) {
		panic(fmt.Errorf("not a valid jsfixture version: %s", v2))
	}
	return semver.Compare(toSemver(v1), toSemver(v2)) < 0
}

// CheckMinVersion returns an error if version is older than min, the
// oldest version a corpus admits. An empty min admits every version,
// as does a version that is not a release (such as a development
// build).
func CheckMinVersion(version, min string) error {
	if min == "" || !IsSemVer(version) {
		return nil
	}
	if !IsSemVer(min) {
		return errors.E("min_version", min, errors.Invalid, errors.New("not a semantic version"))
	}
	if IsOlderVersion(version, min) {
		return errors.E("min_version", errors.NotSupported,
			errors.Errorf("corpus requires jsfixture %s or newer, this is %s", min, version))
	}
	return nil
}

// toSemver converts a jsfixture version string to match semver format.
func toSemver(r string) string {
	r = strings.TrimPrefix(r, "jsfixture")
	if !strings.HasPrefix(r, "v") {
		r = "v" + r
	}
	return r
}
