// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package config

import (
	"github.com/grailbio/base/sync/once"
	"github.com/spf13/afero"
)

// OnceConfig memoizes the first call of the following methods to the
// underlying config: FS and KnownDivergent.
type OnceConfig struct {
	Config

	fsOnce once.Task
	fs     afero.Fs

	divergentOnce once.Task
	divergent     Divergent
}

// Once constructs a new OnceConfig using the provided
// underlying configuration.
func Once(cfg Config) *OnceConfig {
	return &OnceConfig{Config: cfg}
}

// FS returns the result of the first call to the underlying
// configuration's FS.
func (o *OnceConfig) FS() (afero.Fs, error) {
	err := o.fsOnce.Do(func() (err error) {
		o.fs, err = o.Config.FS()
		return
	})
	return o.fs, err
}

// KnownDivergent returns the result of the first call to the
// underlying configuration's KnownDivergent.
func (o *OnceConfig) KnownDivergent() (Divergent, error) {
	err := o.divergentOnce.Do(func() (err error) {
		o.divergent, err = o.Config.KnownDivergent()
		return
	})
	return o.divergent, err
}
