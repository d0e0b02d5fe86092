// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"context"
	"flag"
	"strings"

	"github.com/grailbio/jsfixture/conformance"
)

func (c *Cmd) test(ctx context.Context, args ...string) {
	var (
		flags    = flag.NewFlagSet("test", flag.ExitOnError)
		verbose  = flags.Bool("v", false, "print the result of every fixture")
		jsonFlag = flags.Bool("json", false, "write the result of every fixture as a JSON object instead of a summary")
		category = flags.String("category", "", "comma-separated list of categories to check (pass, fail, early); default all")
		help     = `Test checks every fixture of the corpus against its category:

	pass   fixtures must parse with early errors enabled, and their
	       explicit renderings must parse to the same tree;
	fail   fixtures must not parse;
	early  fixtures must parse, but not with early errors enabled.

Fixtures listed under known_divergent in the configuration are checked
and reported, but do not fail the run; a listed fixture that conforms,
or a listed fixture that does not exist, does. With verify_names set,
fixtures must be named by their content slug.

With -json, a JSON object is written for each fixture, giving its
status (ok, fail, divergent, stale or missing) and its error.

Test exits with status 1 if any fixture fails.`
	)
	c.Parse(flags, args, help, "test [-v] [-json] [-category categories]")
	if flags.NArg() != 0 {
		flags.Usage()
	}
	var cats []conformance.Category
	if *category != "" {
		for _, s := range strings.Split(*category, ",") {
			cat, err := conformance.ParseCategory(strings.TrimSpace(s))
			if err != nil {
				c.Fatal(err)
			}
			cats = append(cats, cat)
		}
	}
	runner := c.runner()
	runner.Status = c.Status.Group("test")
	report, err := runner.Run(ctx, cats...)
	if err != nil {
		c.Fatal(err)
	}
	if *jsonFlag {
		err = report.WriteJSON(c.Stdout)
	} else {
		if *verbose {
			for _, res := range report.Results {
				c.Printf("%s %s\n", res.Status(), res.Fixture)
			}
		}
		err = report.Write(c.Stdout)
	}
	if err != nil {
		c.Fatal(err)
	}
	if !report.OK() {
		c.Exit(1)
	}
}

// runner returns a conformance runner over the configured corpus.
func (c *Cmd) runner() *conformance.Runner {
	corpus, err := conformance.New(c.Config)
	if err != nil {
		c.Fatal(err)
	}
	runner, err := conformance.NewRunner(corpus, c.Config)
	if err != nil {
		c.Fatal(err)
	}
	return runner
}
