// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tool

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/syntax"
	"github.com/grailbio/jsfixture/syntax/codegen"
	"github.com/spf13/afero"
)

const (
	codeBadSyntax = 10
	codeBadFormat = 11
)

func (c *Cmd) fmt(ctx context.Context, args ...string) {
	flags := flag.NewFlagSet("fmt", flag.ExitOnError)
	sideBySide := flags.Bool("side-by-side", false,
		"Paste original and formatted side-by-side, for comparison")
	debugCompare := flags.Bool("debug-compare", false,
		"Print the differences between the original and formatted trees")
	overwrite := flags.Bool("w", false, "write result to (source) file instead of stdout")
	help := fmt.Sprintf(
		`Fmt writes the minimal rendering of each named JavaScript file to
stdout: the program printed with only the parentheses its grouping
requires. Comments and layout are not preserved.

Files named with the suffix ".module.js" are parsed as modules.

As a self-test, if the formatted result is syntactically invalid or
does not parse to the same tree as the input, fmt exits with codes %d
and %d, respectively.`,
		codeBadSyntax, codeBadFormat)
	c.Parse(flags, args, help, "fmt [-w] [-side-by-side] path...")

	if flags.NArg() == 0 {
		flags.Usage()
	}
	fs, err := c.Config.FS()
	c.must(err)

	for _, path := range flags.Args() {
		if ctx.Err() != nil {
			c.Fatal(ctx.Err())
		}
		source, err := afero.ReadFile(fs, path)
		if err != nil {
			c.Fatalf("error reading file: %v", err)
		}
		mode := jsfixture.Mode(path)
		prog, err := syntax.Parse(path, source, mode, false)
		if err != nil {
			c.Fatalf("error parsing file: %v", err)
		}
		formatted := codegen.Minimal(prog)

		check, err := syntax.Parse(path, []byte(formatted), mode, false)
		if err != nil {
			c.Errorln("error: invalid syntax:", err)
			c.Exit(codeBadSyntax)
		}
		if !syntax.Equal(prog, check) {
			c.Errorln("error: formatted tree differs from the source")
			if *debugCompare {
				c.Errorln(syntax.Diff(prog, check))
			}
			c.Exit(codeBadFormat)
		}

		switch {
		case *overwrite:
			if err := afero.WriteFile(fs, path, []byte(formatted+"\n"), 0644); err != nil {
				c.Fatalf("failed to write %s: %v", path, err)
			}
		case *sideBySide:
			bw := bufio.NewWriter(c.Stdout)
			if err := paste(bw, string(source), formatted); err != nil {
				c.Fatalf("formatting %s: %v", path, err)
			}
			if err := bw.Flush(); err != nil {
				c.Fatalf("formatting %s: %v", path, err)
			}
		default:
			c.Println(formatted)
		}
	}
}

// paste writes l and r side by side, separated by a bar.
func paste(w *bufio.Writer, l, r string) error {
	normalizeWidth := func(s string) string {
		return strings.Replace(s, "\t", "  ", -1)
	}
	llines := strings.Split(normalizeWidth(l), "\n")
	rlines := strings.Split(normalizeWidth(r), "\n")

	maxLeftLength := 0
	for _, line := range llines {
		if len(line) > maxLeftLength {
			maxLeftLength = len(line)
		}
	}
	for i := 0; i < len(llines) || i < len(rlines); i++ {
		var left, right string
		if i < len(llines) {
			left = llines[i]
		}
		if i < len(rlines) {
			right = rlines[i]
		}
		if _, err := fmt.Fprintf(w, "%-*s|%s\n", maxLeftLength, left, right); err != nil {
			return err
		}
	}
	return nil
}
