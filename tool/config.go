// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/grailbio/jsfixture/config"
)

var keyDocs = map[string]string{
	config.FS:             "the filesystem holding the corpus (see providers below)",
	config.Root:           "the corpus root directory (default .)",
	config.Pass:           "the directory of pass fixtures (default pass)",
	config.Fail:           "the directory of fail fixtures (default fail)",
	config.Early:          "the directory of early fixtures (default early)",
	config.Explicit:       "the directory of explicit renderings (default pass-explicit)",
	config.Parallelism:    "the number of fixtures checked concurrently (default 8)",
	config.VerifyNames:    "whether fixtures must be named by their content slug (default false)",
	config.KnownDivergent: "a map of category to fixture name to the reason it is known not to conform",
	config.MinVersion:     "the oldest jsfixture version that may check the corpus",
}

func (c *Cmd) config(ctx context.Context, args ...string) {
	var (
		flags  = flag.NewFlagSet("config", flag.ExitOnError)
		header = `Config writes the current jsfixture configuration to standard
output.

Jsfixture's configuration is a YAML file with the following toplevel
keys:

`
		footer = `The configuration file is read from .jsfixture.yaml in the current
directory unless another is given by the -config flag:

	$ jsfixture config > myconfig
	<edit myconfig>
	$ jsfixture -config myconfig ...`
	)
	b := new(bytes.Buffer)
	b.WriteString(header)
	var keys []string
	for key := range keyDocs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, "%s: %s\n", key, keyDocs[key])
	}
	b.WriteString("\nThe following providers are available for the fs key:\n\n")
	help := config.Help()
	for _, key := range config.AllKeys {
		usages := help[key]
		sort.Slice(usages, func(i, j int) bool { return usages[i].Kind < usages[j].Kind })
		for _, u := range usages {
			var arg string
			if u.Arg != "" {
				arg = "," + u.Arg
			}
			fmt.Fprintf(b, "%s: %s%s\n\t%s\n", key, u.Kind, arg, u.Usage)
		}
	}
	b.WriteString("\n")
	b.WriteString(footer)

	c.Parse(flags, args, b.String(), "config")
	if flags.NArg() != 0 {
		flags.Usage()
	}
	data, err := config.Marshal(c.Config)
	if err != nil {
		c.Fatal(err)
	}
	c.Stdout.Write(data)
}
