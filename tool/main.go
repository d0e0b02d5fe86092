// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package tool implements the jsfixture command.
package tool

import (
	"context"
	"flag"
	"fmt"
	"io"
	golog "log"
	"net/http" // Global pprof handlers for all instantiations of the tool.
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/pprof"
	"sort"

	"github.com/grailbio/base/status"
	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/config"
	"github.com/grailbio/jsfixture/log"
	"github.com/spf13/afero"
)

// Func is the type of a command function.
type Func func(*Cmd, context.Context, ...string)

// Cmd holds the configuration, flag definitions, and runtime objects
// required for tool invocations.
type Cmd struct {
	// Config must be specified.
	Config config.Config
	// DefaultConfigFile is read when no -config flag is given. It may
	// be absent.
	DefaultConfigFile string
	// Version is the binary's version, set by the linker.
	Version string

	// Commands contains the additional set of invocable commands.
	Commands map[string]Func

	// ConfigFile stores the path of the active configuration file.
	// May be overriden by the -config flag.
	ConfigFile string

	// The standard output and error as defined by this command;
	// these are wrapped through a status writer so that output is
	// properly interleaved.
	Stdout, Stderr io.Writer

	// Status object for the current cmd invocation. This is used to
	// continuously update the progress of long-running commands.
	Status *status.Status

	Log *log.Logger

	configFlag     config.Flag
	httpFlag       string
	cpuProfileFlag string
	logFlag        string

	onexits []func()
	flags   *flag.FlagSet
}

var commands = map[string]Func{
	"explicit":       (*Cmd).explicit,
	"fmt":            (*Cmd).fmt,
	"parse":          (*Cmd).parse,
	"test":           (*Cmd).test,
	"check-explicit": (*Cmd).checkExplicit,
	"slug":           (*Cmd).slug,
	"config":         (*Cmd).config,
	"version":        (*Cmd).versionCmd,
}

var intro = `The jsfixture command manages a corpus of JavaScript parser
conformance fixtures: it checks that a parser accepts, rejects, or
reports early errors for each fixture as its category requires, and
keeps the explicitly parenthesized rendering of each passing fixture.

The command comprises a set of subcommands; the list of supported
commands can be obtained by running

	jsfixture -help

Each subcommand can in turn be invoked with -help, displaying its
usage and help text. For example, the following displays help for the
"test" command.

	jsfixture test -help

Global flags must be supplied after the "jsfixture" command; command
flags after that command's name. For example, the following checks
the early fixtures of a corpus rooted at test/fixtures:

	jsfixture -root test/fixtures test -category early

jsfixture is configured from the file .jsfixture.yaml in the current
directory, if it exists, or the file named by the -config flag. The
active configuration and its keys are documented by the config
command:

	jsfixture config -help

Configuration keys may be overridden by flags of the same name: -fs,
-root, -pass, -fail, -early, -explicit, -parallelism, and
-verify_names.`

func (c *Cmd) usage(flags *flag.FlagSet) {
	fmt.Fprintln(c.Stderr, `Jsfixture is a tool for managing JavaScript parser conformance fixtures.

Usage of jsfixture:
	jsfixture [flags] <command> [args]`)
	fmt.Fprintln(c.Stderr, "Jsfixture commands:")
	for _, name := range c.commandNames() {
		fmt.Fprintln(c.Stderr, "\t"+name)
	}
	fmt.Fprintln(c.Stderr, "Global flags:")
	flags.SetOutput(c.Stderr)
	flags.PrintDefaults()
	c.Exit(2)
}

// Main parses command line flags and then invokes the requested
// command. Main uses Cmd's config (and other initialization), which
// may be overriden by flag configs. The caller is expected to have
// parsed the flagset returned by Flags before calling Main.
//
// Main should only be called once.
func (c *Cmd) Main() {
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	flags := c.Flags()
	if flags.NArg() == 0 {
		fmt.Fprintln(c.Stderr, intro)
		c.Exit(2)
	}
	name := flags.Arg(0)
	fn := c.commands()[name]
	if fn == nil {
		if s := closest(name, c.commandNames()); s != "" {
			fmt.Fprintf(c.Stderr, "unknown command %q; did you mean %q?\n", name, s)
		} else {
			fmt.Fprintf(c.Stderr, "unknown command %q\n", name)
		}
		flags.Usage()
	}
	c.initLog()
	c.initConfig()
	c.initDebug()
	c.Log.Debug("jsfixture version ", c.version())

	// Note that the flag package stops parsing flags after the first
	// non-flag argument; thus flags.Args()[1:] contains all the flags
	// and arguments for the command.
	fn(c, c.signalContext(), flags.Args()[1:]...)
	c.Exit(0)
}

// initLog sets up the status reporter and the logger as configured by
// the -log flag. The standard logger is replaced by the same logger.
func (c *Cmd) initLog() {
	level, err := log.ParseLevel(c.logFlag)
	if err != nil {
		c.Fatal(err)
	}
	c.Status = new(status.Status)
	http.Handle("/debug/status", status.Handler(c.Status))
	// Progress is drawn only when it does not interleave with debug
	// output.
	if level < log.DebugLevel {
		reporter := make(status.Reporter)
		c.Stdout = reporter.Wrap(c.Stdout)
		c.Stderr = reporter.Wrap(c.Stderr)
		go reporter.Go(os.Stderr, c.Status)
		c.onexit(reporter.Stop)
	}
	flags, prefix := 0, "jsfixture: "
	if level > log.InfoLevel {
		flags, prefix = golog.LstdFlags, ""
	}
	log.Std = log.New(golog.New(c.Stderr, prefix, flags), level)
	c.Log = log.Std
}

// initConfig layers the configuration: the base configuration, the
// configuration file, the default local filesystem, and then flag
// overrides. It then checks that this binary may operate on the
// configured corpus.
func (c *Cmd) initConfig() {
	if c.Config == nil {
		c.Config = make(config.Base)
	}
	c.Config = &logConfig{c.Config, c.Log}
	if c.ConfigFile != "" {
		b, err := afero.ReadFile(afero.NewOsFs(), c.ConfigFile)
		switch {
		case err == nil:
			if err := config.Unmarshal(b, c.Config.Keys()); err != nil {
				c.Fatal(err)
			}
		case c.ConfigFile == c.DefaultConfigFile && os.IsNotExist(err):
			c.Log.Debugf("no configuration file %s", c.ConfigFile)
		default:
			c.Fatal(err)
		}
	}
	c.configFlag.Config = &config.DefaultConfig{
		Config:   c.Config,
		Defaults: config.Keys{config.FS: "os"},
	}
	cfg, err := config.Make(&c.configFlag)
	if err != nil {
		c.Fatal(err)
	}
	c.Config = config.Once(cfg)
	if err := jsfixture.CheckMinVersion(c.version(), c.Config.MinVersion()); err != nil {
		c.Fatal(err)
	}
}

// initDebug starts the diagnostic HTTP server and the CPU profile,
// if requested.
func (c *Cmd) initDebug() {
	if c.httpFlag != "" {
		go func() {
			c.Fatal(http.ListenAndServe(c.httpFlag, nil))
		}()
	}
	if c.cpuProfileFlag != "" {
		file, err := os.Create(c.cpuProfileFlag)
		if err != nil {
			c.Fatal(err)
		}
		if err := pprof.StartCPUProfile(file); err != nil {
			c.Fatal(err)
		}
		c.onexit(pprof.StopCPUProfile)
	}
}

// signalContext returns a context that is canceled on the first interrupt.
// The second interrupt exits the tool.
func (c *Cmd) signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		cancel()
		c.Errorln("interrupted")
		<-sigc
		c.Exit(1)
	}()
	return ctx
}

// Fatal formats a message in the manner of fmt.Print, prints it to
// stderr, and then exits the tool.
func (c *Cmd) Fatal(v ...interface{}) {
	fmt.Fprintln(c.Stderr, v...)
	c.Exit(1)
}

// Fatalf formats a message in the manner of fmt.Printf, prints it to
// stderr, and then exits the tool.
func (c *Cmd) Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(c.Stderr, format+"\n", v...)
	c.Exit(1)
}

// Errorln formats a message in the manner of fmt.Println and prints it
// to stderr.
func (c *Cmd) Errorln(v ...interface{}) {
	fmt.Fprintln(c.Stderr, v...)
}

// Errorf formats a message in the manner of fmt.Printf and prints it
// to stderr.
func (c *Cmd) Errorf(format string, v ...interface{}) {
	fmt.Fprintf(c.Stderr, format, v...)
}

// Println formats a message in the manner of fmt.Println and prints
// it to stdout.
func (c *Cmd) Println(v ...interface{}) {
	fmt.Fprintln(c.Stdout, v...)
}

// Printf formats a message in the manner of fmt.Printf and prints it
// to stdout.
func (c *Cmd) Printf(format string, v ...interface{}) {
	fmt.Fprintf(c.Stdout, format, v...)
}

// Exit runs the registered teardown functions and exits with the
// provided status code.
func (c *Cmd) Exit(code int) {
	for _, fn := range c.onexits {
		fn()
	}
	os.Exit(code)
}

func (c *Cmd) onexit(fn func()) {
	c.onexits = append(c.onexits, fn)
}

// Flags initializes and returns the FlagSet used by this Cmd instance.
// The user should parse this flagset before invoking (*Cmd).Main, e.g.:
//
//	cmd.Flags().Parse(os.Args[1:])
func (c *Cmd) Flags() *flag.FlagSet {
	if c.flags != nil {
		return c.flags
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	c.flags = flag.NewFlagSet("jsfixture", flag.ExitOnError)
	c.flags.Usage = func() { c.usage(c.flags) }
	c.flags.StringVar(&c.ConfigFile, "config", c.DefaultConfigFile, "path to configuration file; otherwise use the default configuration")
	c.flags.StringVar(&c.httpFlag, "http", "", "run a diagnostic HTTP server on this address")
	c.flags.StringVar(&c.cpuProfileFlag, "cpuprofile", "", "capture a CPU profile and deposit it to the provided path")
	c.flags.StringVar(&c.logFlag, "log", "info", "set the log level: off, error, info, debug")
	c.configFlag.Init(c.flags)
	return c.flags
}

func (c *Cmd) commands() map[string]Func {
	m := make(map[string]Func, len(commands)+len(c.Commands))
	for name, f := range commands {
		m[name] = f
	}
	for name, f := range c.Commands {
		m[name] = f
	}
	return m
}

func (c *Cmd) commandNames() []string {
	var names []string
	for name := range c.commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// logConfig supplies the tool's logger to the configuration.
type logConfig struct {
	config.Config
	logger *log.Logger
}

func (c *logConfig) Logger() (*log.Logger, error) {
	return c.logger, nil
}
