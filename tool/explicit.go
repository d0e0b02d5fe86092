// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"context"
	"flag"

	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/syntax"
	"github.com/spf13/afero"
)

func (c *Cmd) explicit(ctx context.Context, args ...string) {
	var (
		flags  = flag.NewFlagSet("explicit", flag.ExitOnError)
		module = flags.Bool("module", false, "parse every file as a module")
		check  = flags.Bool("check", false, "check that each rendering parses to the same tree as its source")
		help   = `Explicit prints the explicit rendering of each named file: the
program rendered with every compound expression parenthesized, so that
its grouping does not depend on operator precedence.

Files named with the suffix ".module.js" are parsed as modules and
others as scripts, unless -module is given. Early errors fail the
rendering. With -check, each rendering is parsed again and compared to
the source's tree. Paths are resolved in the configured filesystem.`
	)
	c.Parse(flags, args, help, "explicit [-module] [-check] path...")
	if flags.NArg() == 0 {
		flags.Usage()
	}
	fs, err := c.Config.FS()
	c.must(err)
	var failed bool
	for _, path := range flags.Args() {
		if ctx.Err() != nil {
			c.Fatal(ctx.Err())
		}
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			c.Errorln(err)
			failed = true
			continue
		}
		isModule := *module || jsfixture.IsModule(path)
		out, err := jsfixture.MakeExplicit(string(src), isModule)
		if err != nil {
			c.Errorf("%s: %v\n", path, err)
			failed = true
			continue
		}
		if *check {
			mode := syntax.ParseScript
			if isModule {
				mode = syntax.ParseModule
			}
			if _, err := jsfixture.CheckRoundTrip(path, src, mode); err != nil {
				c.Errorln(err)
				failed = true
				continue
			}
		}
		if flags.NArg() > 1 {
			c.Printf("==> %s <==\n", path)
		}
		c.Println(out)
	}
	if failed {
		c.Exit(1)
	}
}
