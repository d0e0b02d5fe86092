// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"context"
	"flag"
	"runtime"
	"runtime/debug"
)

// version returns the linker-provided version, or else the module
// version recorded in the binary. Development builds are "broken".
func (c *Cmd) version() string {
	if c.Version != "" {
		return c.Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "broken"
}

func (c *Cmd) versionCmd(ctx context.Context, args ...string) {
	var (
		flags = flag.NewFlagSet("version", flag.ExitOnError)
		help  = "Version displays this binary's version and the Go version it was built with."
	)
	c.Parse(flags, args, help, "version")
	if flags.NArg() != 0 {
		flags.Usage()
	}
	c.Printf("%s (%s)\n", c.version(), runtime.Version())
}
