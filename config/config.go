// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package config defines an interface for configuring jsfixture. This
// interface can be composed in multiple ways, allowing for layered
// configuration: a corpus's configuration file, overridden by command
// line flags, over the builtin defaults.
//
// A configuration is a set of keys (corresponding to toplevel keys in
// a YAML document, by convention a .jsfixture.yaml file at the corpus
// root). For example:
//
//	root: test/fixtures
//	explicit: pass-explicit
//	parallelism: 16
//	verify_names: true
//	known_divergent:
//	  early:
//	    1e3b4f1b0a46b0d0.js: octal escape in template
//
// A subset of keys, defined by the package's AllKeys, correspond to
// objects that are provisioned by globally registered providers; the
// keys must be string formatted, and contain the (registered) name of
// the provider, followed by an optional comma and string argument.
// For example:
//
//	fs: os,/data/corpus
//
// Configures the corpus filesystem (Config.FS) using the os provider,
// rooted at /data/corpus.
package config

import (
	"fmt"
	"io/ioutil"
	golog "log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/jsfixture/log"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

// DefaultFile is the name of the configuration file looked up at the
// corpus root.
const DefaultFile = ".jsfixture.yaml"

// The following are the keys that configure jsfixture.
const (
	FS             = "fs"
	Root           = "root"
	Pass           = "pass"
	Fail           = "fail"
	Early          = "early"
	Explicit       = "explicit"
	Parallelism    = "parallelism"
	VerifyNames    = "verify_names"
	KnownDivergent = "known_divergent"
	MinVersion     = "min_version"
)

// AllKeys defines the order in which provider-configured keys are
// provisioned.
var AllKeys = []string{
	FS,
}

// FlagKeys are the keys that may be overridden from the command line.
var FlagKeys = []string{
	FS,
	Root,
	Pass,
	Fail,
	Early,
	Explicit,
	Parallelism,
	VerifyNames,
}

// Keys is a map of string keys to configuration values.
type Keys map[string]interface{}

// Dirs names the directories, relative to the corpus root, that hold
// each category of fixture.
type Dirs struct {
	Pass, Fail, Early, Explicit string
}

// Divergent lists, per category, the fixtures that are known not to
// conform, each with the reason why.
type Divergent map[string]map[string]string

// Reason returns the reason fixture name in category is known to
// diverge, and whether it is.
func (d Divergent) Reason(category, name string) (string, bool) {
	reason, ok := d[category][name]
	return reason, ok
}

// A Config provides the settings and objects used to check a fixture
// corpus. It is safe to call each method multiple times, but they
// should not be called concurrently.
type Config interface {
	// FS returns the filesystem that holds the corpus.
	FS() (afero.Fs, error)

	// Root returns the path of the corpus root within FS.
	Root() string

	// Dirs returns the category directories.
	Dirs() Dirs

	// Parallelism returns the number of fixtures checked
	// concurrently.
	Parallelism() (int, error)

	// VerifyNames tells whether fixture names are checked against
	// their contents.
	VerifyNames() (bool, error)

	// KnownDivergent returns the fixtures excluded from conformance.
	KnownDivergent() (Divergent, error)

	// MinVersion returns the oldest jsfixture version that may check
	// the corpus, or an empty string.
	MinVersion() string

	// Logger returns the configured logger.
	Logger() (*log.Logger, error)

	// Value returns the value of the given key.
	Value(key string) interface{}

	// Marshal marshals the current configuration into keys.
	Marshal(keys Keys) error

	// Keys returns all the keys as defined by this config.
	Keys() Keys
}

// Base defines a base configuration with reasonable defaults
// where they apply.
type Base Keys

// FS returns an error indicating no filesystem was configured.
func (b Base) FS() (afero.Fs, error) {
	return nil, errors.E(errors.NotExist, "fs not configured")
}

// Root returns the "root" key, or else the current directory.
func (b Base) Root() string { return root(b) }

// Dirs returns the configured category directories. Unconfigured
// categories use the directory of the same name; explicit renderings
// default to "pass-explicit".
func (b Base) Dirs() Dirs { return dirs(b) }

// Parallelism returns the "parallelism" key, or else 8.
func (b Base) Parallelism() (int, error) { return parallelism(b) }

// VerifyNames returns the "verify_names" key, or else false.
func (b Base) VerifyNames() (bool, error) { return boolValue(b, VerifyNames, false) }

// KnownDivergent decodes the "known_divergent" key.
func (b Base) KnownDivergent() (Divergent, error) { return knownDivergent(b) }

// MinVersion returns the "min_version" key.
func (b Base) MinVersion() string { return stringValue(b, MinVersion, "") }

// Logger returns a logger that outputs to standard error.
func (b Base) Logger() (*log.Logger, error) {
	return log.New(golog.New(os.Stderr, "", golog.LstdFlags), log.InfoLevel), nil
}

// Keys returns the configured keys.
func (b Base) Keys() Keys {
	return Keys(b)
}

// Value returns the value for the provided key.
func (b Base) Value(key string) interface{} {
	return b[key]
}

// Marshal populates the provided key dictionary with the keys
// present in this configuration.
func (b Base) Marshal(keys Keys) error {
	for k, v := range b {
		keys[k] = v
	}
	return nil
}

// settings reads plain (non-provider) keys through the whole layered
// configuration, so that flag and default layers are observed.
type settings struct {
	Config
}

func (s *settings) Root() string                       { return root(s.Config) }
func (s *settings) Dirs() Dirs                         { return dirs(s.Config) }
func (s *settings) Parallelism() (int, error)          { return parallelism(s.Config) }
func (s *settings) VerifyNames() (bool, error)         { return boolValue(s.Config, VerifyNames, false) }
func (s *settings) KnownDivergent() (Divergent, error) { return knownDivergent(s.Config) }
func (s *settings) MinVersion() string                 { return stringValue(s.Config, MinVersion, "") }

func root(cfg valuer) string {
	return stringValue(cfg, Root, ".")
}

func dirs(cfg valuer) Dirs {
	return Dirs{
		Pass:     stringValue(cfg, Pass, "pass"),
		Fail:     stringValue(cfg, Fail, "fail"),
		Early:    stringValue(cfg, Early, "early"),
		Explicit: stringValue(cfg, Explicit, "pass-explicit"),
	}
}

func parallelism(cfg valuer) (int, error) {
	n, err := intValue(cfg, Parallelism, 8)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.E(errors.Invalid, Parallelism, errors.Errorf("must be positive, got %d", n))
	}
	return n, nil
}

func knownDivergent(cfg valuer) (Divergent, error) {
	v := cfg.Value(KnownDivergent)
	if v == nil {
		return nil, nil
	}
	// Untyped YAML maps are re-encoded and decoded into the typed
	// representation.
	p, err := yaml.Marshal(v)
	if err != nil {
		return nil, errors.E(errors.Invalid, KnownDivergent, err)
	}
	var d Divergent
	if err := yaml.UnmarshalStrict(p, &d); err != nil {
		return nil, errors.E(errors.Invalid, KnownDivergent, err)
	}
	return d, nil
}

type valuer interface {
	Value(key string) interface{}
}

func stringValue(cfg valuer, key, def string) string {
	switch v := cfg.Value(key).(type) {
	case nil:
		return def
	case string:
		if v == "" {
			return def
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

// intValue reads an integer key, which is a string when it comes
// from a flag.
func intValue(cfg valuer, key string, def int) (int, error) {
	switch v := cfg.Value(key).(type) {
	case nil:
		return def, nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.E(errors.Invalid, key, err)
		}
		return n, nil
	default:
		return 0, errors.E(errors.Invalid, key, errors.Errorf("expected integer, got %T", v))
	}
}

func boolValue(cfg valuer, key string, def bool) (bool, error) {
	switch v := cfg.Value(key).(type) {
	case nil:
		return def, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, errors.E(errors.Invalid, key, err)
		}
		return b, nil
	default:
		return false, errors.E(errors.Invalid, key, errors.Errorf("expected boolean, got %T", v))
	}
}

// Unmarshal unmarshals the (YAML-configured) configuration in b into
// keys.
func Unmarshal(b []byte, keys Keys) error {
	return yaml.Unmarshal(b, keys)
}

// Marshal marshals the given keys into YAML-formatted bytes.
func Marshal(cfg Config) ([]byte, error) {
	keys := make(Keys)
	if err := cfg.Marshal(keys); err != nil {
		return nil, err
	}
	return yaml.Marshal(keys)
}

// Make evaluates a config's keys: for each key in AllKeys (and in
// the order defined by AllKeys), Make parses its provider, and
// provisions the key accordingly. Make returns errors if a provider
// cannot be found or if the provider fails to configure the given
// key. The returned configuration reads plain keys through every
// layer of cfg.
func Make(cfg Config) (Config, error) {
	for _, key := range AllKeys {
		v := cfg.Value(key)
		if v == nil {
			continue
		}
		vstr, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string for key %s, got %T", key, v)
		}
		name, arg := peel(vstr, ",")
		provider, ok := Lookup(key, name)
		if !ok {
			return nil, fmt.Errorf("provider %s not defined for key %s", name, key)
		}
		var err error
		cfg, err = provider.Configure(cfg, arg)
		if err != nil {
			return nil, fmt.Errorf("configuring key %s with provider %s: %v", key, name, err)
		}
	}
	return &settings{cfg}, nil
}

// Parse parses and provisions a configuration from the
// YAML-formatted bytes b.
func Parse(b []byte) (Config, error) {
	base := make(Base)
	if err := Unmarshal(b, Keys(base)); err != nil {
		return nil, err
	}
	return Make(base)
}

// ParseFile reads and then parses the configuration from the
// provided filename.
func ParseFile(filename string) (Config, error) {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// A Provider provisions a single key in a configuration. Providers
// must be registered via the package's Register function.
type Provider struct {
	Configure        func(cfg Config, arg string) (Config, error)
	Kind, Arg, Usage string
}

var (
	providers = make(map[string]map[string]Provider)
	mu        sync.Mutex
)

// Register the configuration provider kind for the given key. The
// arg and usage string should describe the provider's argument.
func Register(key, kind, arg, usage string, configure func(Config, string) (Config, error)) {
	mu.Lock()
	defer mu.Unlock()
	kindmap := providers[key]
	if kindmap == nil {
		kindmap = make(map[string]Provider)
		providers[key] = kindmap
	}
	if _, ok := kindmap[kind]; ok {
		panic(fmt.Sprintf("provider %s already registered for key %s", kind, key))
	}
	kindmap[kind] = Provider{
		Configure: configure,
		Kind:      kind,
		Arg:       arg,
		Usage:     usage,
	}
}

// Lookup returns the Provider of kind for key.
func Lookup(key, kind string) (Provider, bool) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := providers[key][kind]
	return p, ok
}

// Usage contains usage information for a provider.
type Usage struct {
	Kind, Arg, Usage string
}

// Help returns Usages, organized by key.
func Help() map[string][]Usage {
	mu.Lock()
	defer mu.Unlock()
	help := make(map[string][]Usage)
	for key, keyProviders := range providers {
		var usages []Usage
		for name, provider := range keyProviders {
			usages = append(usages, Usage{
				Kind:  name,
				Arg:   provider.Arg,
				Usage: provider.Usage,
			})
		}
		help[key] = usages
	}
	return help
}

func peel(s, sep string) (head, tail string) {
	switch parts := strings.SplitN(s, sep, 2); len(parts) {
	case 1:
		return parts[0], ""
	case 2:
		return parts[0], parts[1]
	default:
		panic("bug")
	}
}
