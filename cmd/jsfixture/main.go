// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command jsfixture manages JavaScript parser conformance fixtures.
// See package github.com/grailbio/jsfixture/tool for details.
package main

import (
	"os"

	"github.com/grailbio/jsfixture/config"
	"github.com/grailbio/jsfixture/tool"
)

// version is set by the linker:
//
//	go build -ldflags "-X main.version=v1.0.0" ./cmd/jsfixture
var version string

func main() {
	cmd := &tool.Cmd{
		Config:            make(config.Base),
		DefaultConfigFile: config.DefaultFile,
		Version:           version,
	}
	cmd.Flags().Parse(os.Args[1:])
	cmd.Main()
}
