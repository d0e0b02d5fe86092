// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/grailbio/jsfixture/errors"
)

// Parse parses the provided FlagSet from the provided arguments. It
// adds a -help flag to the flagset, and prints the help and usage
// string when the command is called with -help. On usage error, it
// prints the flag defaults and exits with code 2.
func (c *Cmd) Parse(fs *flag.FlagSet, args []string, help, usage string) {
	helpFlag := fs.Bool("help", false, "display subcommand help")
	fs.SetOutput(c.Stderr)
	printUsage := func(withHelp bool) {
		fmt.Fprintln(c.Stderr, "usage: jsfixture "+usage)
		if withHelp {
			fmt.Fprintf(c.Stderr, "\n%s\n\n", help)
		}
		fmt.Fprintln(c.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	fs.Usage = func() {
		printUsage(false)
		c.Exit(2)
	}
	if err := fs.Parse(args); err != nil {
		c.Fatal(err)
	}
	if *helpFlag {
		printUsage(true)
		c.Exit(0)
	}
}

// must exits the tool if err is non-nil, naming the caller's source
// position.
func (c *Cmd) must(err error) {
	if err != nil {
		_, file, line, _ := runtime.Caller(1)
		c.Fatalf("%s:%d: %v", file, line, err)
	}
}

// oneLine renders err and its chain on a single line.
func oneLine(err error) string {
	return errors.Recover(err).ErrorSeparator(": ")
}
