// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package config

import (
	"github.com/spf13/afero"
)

func init() {
	Register(FS, "os", "dir", "use the local filesystem, optionally rooted at dir",
		func(cfg Config, arg string) (Config, error) {
			var fs afero.Fs = afero.NewOsFs()
			if arg != "" {
				fs = afero.NewBasePathFs(fs, arg)
			}
			return &localFS{cfg, fs}, nil
		},
	)
	Register(FS, "readonly", "dir", "use the local filesystem, read-only, optionally rooted at dir",
		func(cfg Config, arg string) (Config, error) {
			var fs afero.Fs = afero.NewOsFs()
			if arg != "" {
				fs = afero.NewBasePathFs(fs, arg)
			}
			return &localFS{cfg, afero.NewReadOnlyFs(fs)}, nil
		},
	)
	Register(FS, "mem", "", "use an empty in-memory filesystem",
		func(cfg Config, arg string) (Config, error) {
			return &localFS{cfg, afero.NewMemMapFs()}, nil
		},
	)
}

type localFS struct {
	Config
	fs afero.Fs
}

func (c *localFS) FS() (afero.Fs, error) {
	return c.fs, nil
}
