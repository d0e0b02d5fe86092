// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"context"
	"flag"
	"path"

	"github.com/grailbio/jsfixture"
	"github.com/spf13/afero"
)

func (c *Cmd) slug(ctx context.Context, args ...string) {
	var (
		flags = flag.NewFlagSet("slug", flag.ExitOnError)
		help  = `Slug prints the canonical name of each named file: the first 16 hex
digits of the SHA-256 of its contents, followed by ".module.js" for
modules and ".js" otherwise. Files that are not so named are marked
"misnamed". Slug does not rename files.`
	)
	c.Parse(flags, args, help, "slug path...")
	if flags.NArg() == 0 {
		flags.Usage()
	}
	fs, err := c.Config.FS()
	c.must(err)
	for _, p := range flags.Args() {
		src, err := afero.ReadFile(fs, p)
		if err != nil {
			c.Fatal(err)
		}
		name := jsfixture.CanonicalName(src, jsfixture.IsModule(p))
		if path.Base(p) != name {
			c.Printf("%s\t%s\tmisnamed\n", name, p)
		} else {
			c.Printf("%s\t%s\n", name, p)
		}
	}
}
