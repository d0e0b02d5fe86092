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

func (c *Cmd) parse(ctx context.Context, args ...string) {
	var (
		flags  = flag.NewFlagSet("parse", flag.ExitOnError)
		early  = flags.Bool("early", false, "fail on early errors")
		module = flags.Bool("module", false, "parse every file as a module")
		help   = `Parse parses each named file and reports its errors. Grammar errors
are always reported; early errors (violations of the language's static
semantics) only with -early.

Files named with the suffix ".module.js" are parsed as modules and
others as scripts, unless -module is given. Parse exits with status 1
if any file fails to parse.`
	)
	c.Parse(flags, args, help, "parse [-early] [-module] path...")
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
		mode := jsfixture.Mode(path)
		if *module {
			mode = syntax.ParseModule
		}
		if _, err := syntax.Parse(path, src, mode, *early); err != nil {
			c.Errorln(err)
			failed = true
			continue
		}
		c.Log.Debugf("%s: ok (%s)", path, mode)
	}
	if failed {
		c.Exit(1)
	}
}
