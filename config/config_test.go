// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"reflect"
	"testing"

	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/spf13/afero"
)

type testFS struct {
	Config
	arg   string
	calls *int
}

func (c *testFS) FS() (afero.Fs, error) {
	*c.calls++
	return nil, errors.New(c.arg)
}

var testCalls int

func init() {
	Register(FS, "test", "msg", "fail with msg", func(cfg Config, arg string) (Config, error) {
		return &testFS{cfg, arg, &testCalls}, nil
	})
}

func TestConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
fs: test,arg1
parallelism: 3
`))
	if err != nil {
		t.Fatal(err)
	}
	fs, err := cfg.FS()
	if fs != nil {
		t.Errorf("expected nil fs, got %v", fs)
	}
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if got, want := err.Error(), "arg1"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	n, err := cfg.Parallelism()
	assert.NoError(t, err)
	assert.EQ(t, n, 3)
	b, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg1, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Keys(), cfg1.Keys()) {
		t.Error("cfg, cfg1 not equal after marshal roundtrip")
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	assert.NoError(t, err)
	assert.EQ(t, cfg.Root(), ".")
	assert.EQ(t, cfg.Dirs(), Dirs{Pass: "pass", Fail: "fail", Early: "early", Explicit: "pass-explicit"})
	n, err := cfg.Parallelism()
	assert.NoError(t, err)
	assert.EQ(t, n, 8)
	v, err := cfg.VerifyNames()
	assert.NoError(t, err)
	assert.False(t, v)
	d, err := cfg.KnownDivergent()
	assert.NoError(t, err)
	assert.EQ(t, len(d), 0)
	if _, err := cfg.FS(); !errors.Is(errors.NotExist, err) {
		t.Errorf("expected NotExist, got %v", err)
	}
}

func TestKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
root: test/fixtures
explicit: explicit
verify_names: true
min_version: v1.2.0
known_divergent:
  early:
    a.js: octal escape in template
    b.module.js: html comment
  fail:
    c.js: regexp flags
`))
	assert.NoError(t, err)
	assert.EQ(t, cfg.Root(), "test/fixtures")
	assert.EQ(t, cfg.Dirs().Explicit, "explicit")
	assert.EQ(t, cfg.Dirs().Pass, "pass")
	assert.EQ(t, cfg.MinVersion(), "v1.2.0")
	v, err := cfg.VerifyNames()
	assert.NoError(t, err)
	assert.True(t, v)
	d, err := cfg.KnownDivergent()
	assert.NoError(t, err)
	reason, ok := d.Reason("early", "b.module.js")
	assert.True(t, ok)
	assert.EQ(t, reason, "html comment")
	if _, ok := d.Reason("early", "c.js"); ok {
		t.Error("c.js is not divergent in early")
	}
	if _, ok := d.Reason("pass", "a.js"); ok {
		t.Error("a.js is not divergent in pass")
	}
}

func TestInvalid(t *testing.T) {
	for _, c := range []struct {
		src string
		fn  func(Config) error
	}{
		{"parallelism: 0", func(cfg Config) error { _, err := cfg.Parallelism(); return err }},
		{"parallelism: many", func(cfg Config) error { _, err := cfg.Parallelism(); return err }},
		{"verify_names: maybe", func(cfg Config) error { _, err := cfg.VerifyNames(); return err }},
		{"known_divergent: [a, b]", func(cfg Config) error { _, err := cfg.KnownDivergent(); return err }},
	} {
		cfg, err := Parse([]byte(c.src))
		assert.NoError(t, err)
		if err := c.fn(cfg); !errors.Is(errors.Invalid, err) {
			t.Errorf("%s: expected Invalid, got %v", c.src, err)
		}
	}
	if _, err := Parse([]byte("fs: nonexistent")); err == nil {
		t.Error("expected error for undefined provider")
	}
	if _, err := Parse([]byte("fs: [os]")); err == nil {
		t.Error("expected error for non-string provider")
	}
}

func TestFlag(t *testing.T) {
	base, err := Parse([]byte("parallelism: 4\npass: ok\n"))
	assert.NoError(t, err)
	f := &Flag{Config: base}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Init(flags)
	assert.NoError(t, flags.Parse([]string{"-parallelism", "2", "-fs", "mem"}))
	cfg, err := Make(f)
	assert.NoError(t, err)
	n, err := cfg.Parallelism()
	assert.NoError(t, err)
	assert.EQ(t, n, 2)
	assert.EQ(t, cfg.Dirs().Pass, "ok")
	fs, err := cfg.FS()
	assert.NoError(t, err)
	if _, ok := fs.(*afero.MemMapFs); !ok {
		t.Errorf("expected a MemMapFs, got %T", fs)
	}
	keys := make(Keys)
	assert.NoError(t, cfg.Marshal(keys))
	assert.EQ(t, keys[Parallelism], "2")
	assert.EQ(t, keys[Pass], "ok")
}

func TestDefaultConfig(t *testing.T) {
	var cfg Config = &DefaultConfig{Base{}, Keys{FS: "mem", Root: "/fixtures"}}
	cfg, err := Make(cfg)
	assert.NoError(t, err)
	fs, err := cfg.FS()
	assert.NoError(t, err)
	if _, ok := fs.(*afero.MemMapFs); !ok {
		t.Errorf("expected a MemMapFs, got %T", fs)
	}
	assert.EQ(t, cfg.Root(), "/fixtures")
	keys := make(Keys)
	assert.NoError(t, cfg.Marshal(keys))
	assert.EQ(t, keys[Root], "/fixtures")

	cfg, err = Make(&DefaultConfig{Base{FS: "test,x", Root: "corpus"}, Keys{FS: "mem", Root: "/fixtures"}})
	assert.NoError(t, err)
	if _, err := cfg.FS(); err == nil || err.Error() != "x" {
		t.Errorf("got %v, want x", err)
	}
	assert.EQ(t, cfg.Root(), "corpus")
}

func TestReadOnly(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Parse([]byte("fs: readonly," + dir))
	assert.NoError(t, err)
	fs, err := cfg.FS()
	assert.NoError(t, err)
	if err := afero.WriteFile(fs, "a.js", []byte("a;"), 0644); err == nil {
		t.Error("expected write to a read-only filesystem to fail")
	}
	cfg, err = Parse([]byte("fs: os," + dir))
	assert.NoError(t, err)
	fs, err = cfg.FS()
	assert.NoError(t, err)
	assert.NoError(t, afero.WriteFile(fs, "a.js", []byte("a;"), 0644))
	ok, err := afero.Exists(afero.NewOsFs(), dir+"/a.js")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestOnce(t *testing.T) {
	testCalls = 0
	cfg, err := Parse([]byte("fs: test,once"))
	assert.NoError(t, err)
	o := Once(cfg)
	for i := 0; i < 3; i++ {
		if _, err := o.FS(); err == nil {
			t.Fatal("expected error")
		}
	}
	assert.EQ(t, testCalls, 1)
}
