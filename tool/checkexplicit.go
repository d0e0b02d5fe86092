// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"context"
	"flag"
)

func (c *Cmd) checkExplicit(ctx context.Context, args ...string) {
	var (
		flags    = flag.NewFlagSet("check-explicit", flag.ExitOnError)
		contents = flags.Bool("contents", false, "also compare existing renderings with generated ones")
		write    = flags.Bool("w", false, "write generated renderings for fixtures that lack them or whose renderings are wrong")
		help     = `Check-explicit reports the pass fixtures without an explicit
rendering, the explicit renderings without a pass fixture, and, with
-contents, the renderings that differ from the generated ones.

With -w, the missing and wrong renderings are written. Orphaned
renderings are never removed. Check-explicit exits with status 1 if
the renderings are not in order (after writing, with -w).`
	)
	c.Parse(flags, args, help, "check-explicit [-contents] [-w]")
	if flags.NArg() != 0 {
		flags.Usage()
	}
	runner := c.runner()
	dir := runner.Corpus.Dirs.Explicit
	rep, err := runner.CheckExplicit(ctx, *contents)
	if err != nil {
		c.Fatal(err)
	}
	for _, r := range rep.Need {
		c.Printf("need %s/%s\n", dir, r.Fixture.Name)
	}
	for _, name := range rep.Orphaned {
		c.Printf("orphaned %s/%s\n", dir, name)
	}
	for _, r := range rep.Wrong {
		c.Printf("wrong %s/%s\n", dir, r.Fixture.Name)
	}
	for _, r := range rep.Errors {
		c.Printf("error %s: %v\n", r.Fixture, oneLine(r.Err))
	}
	ok := rep.OK()
	if *write {
		n, err := runner.WriteExplicit(rep)
		if err != nil {
			c.Fatal(err)
		}
		c.Log.Printf("wrote %d renderings", n)
		ok = len(rep.Orphaned) == 0 && len(rep.Errors) == 0
	}
	if !ok {
		c.Exit(1)
	}
}
