// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"os"
	"path"
	"sort"

	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/config"
	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/jsfixture/syntax"
	"github.com/spf13/afero"
)

// Category is the expected verdict of a conformance fixture.
type Category string

const (
	// Pass fixtures are accepted with early errors enabled, and their
	// explicit renderings yield the same tree.
	Pass Category = "pass"
	// Fail fixtures are rejected by the grammar.
	Fail Category = "fail"
	// Early fixtures are grammatical but are rejected once early
	// errors are enabled.
	Early Category = "early"
)

// Categories lists all fixture categories in the order they are
// checked.
var Categories = []Category{Pass, Fail, Early}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errors.E("category", s, errors.Invalid, errors.New("must be one of pass, fail, early"))
}

// Fixture is a single conformance test.
type Fixture struct {
	Category Category
	// Name is the fixture's base name, as in "0a1b2c3d4e5f6a7b.js".
	Name string
	// Path is the fixture's path within the corpus filesystem.
	Path string
}

// Module tells whether the fixture is parsed as a module.
func (f Fixture) Module() bool {
	return jsfixture.IsModule(f.Name)
}

// Mode returns the parser mode of the fixture.
func (f Fixture) Mode() syntax.ParserMode {
	return jsfixture.Mode(f.Name)
}

// String returns the fixture's category and name, as in "pass/a.js".
func (f Fixture) String() string {
	return string(f.Category) + "/" + f.Name
}

// A Corpus is a set of fixture directories on a filesystem.
type Corpus struct {
	// FS holds the corpus.
	FS afero.Fs
	// Root is the directory containing the category directories.
	Root string
	// Dirs names the category directories.
	Dirs config.Dirs
}

// New returns the corpus described by cfg.
func New(cfg config.Config) (*Corpus, error) {
	fs, err := cfg.FS()
	if err != nil {
		return nil, err
	}
	return &Corpus{FS: fs, Root: cfg.Root(), Dirs: cfg.Dirs()}, nil
}

// Dir returns the path of the directory holding fixtures of category c.
func (c *Corpus) Dir(cat Category) string {
	switch cat {
	case Pass:
		return path.Join(c.Root, c.Dirs.Pass)
	case Fail:
		return path.Join(c.Root, c.Dirs.Fail)
	case Early:
		return path.Join(c.Root, c.Dirs.Early)
	}
	panic("conformance: bad category " + string(cat))
}

// ExplicitDir returns the path of the directory holding explicit
// renderings of pass fixtures.
func (c *Corpus) ExplicitDir() string {
	return path.Join(c.Root, c.Dirs.Explicit)
}

// ExplicitPath returns the path of the explicit rendering of pass
// fixture f.
func (c *Corpus) ExplicitPath(f Fixture) string {
	return path.Join(c.ExplicitDir(), f.Name)
}

// List returns the fixtures of category cat, ordered by name. Files
// that are not named as fixtures are ignored; a missing directory
// holds no fixtures.
func (c *Corpus) List(cat Category) ([]Fixture, error) {
	names, err := c.names(c.Dir(cat))
	if err != nil {
		return nil, errors.E("list", string(cat), err)
	}
	fixtures := make([]Fixture, len(names))
	for i, name := range names {
		fixtures[i] = Fixture{Category: cat, Name: name, Path: path.Join(c.Dir(cat), name)}
	}
	return fixtures, nil
}

// ListExplicit returns the base names of the explicit renderings in
// the corpus, ordered.
func (c *Corpus) ListExplicit() ([]string, error) {
	names, err := c.names(c.ExplicitDir())
	if err != nil {
		return nil, errors.E("list", c.Dirs.Explicit, err)
	}
	return names, nil
}

func (c *Corpus) names(dir string) ([]string, error) {
	infos, err := afero.ReadDir(c.FS, dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, info := range infos {
		if info.IsDir() || !jsfixture.IsFixture(info.Name()) {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the contents of fixture f.
func (c *Corpus) Read(f Fixture) ([]byte, error) {
	b, err := afero.ReadFile(c.FS, f.Path)
	if err != nil {
		return nil, errors.E("read", f.String(), err)
	}
	return b, nil
}

// ReadExplicit returns the contents of the explicit rendering of pass
// fixture f.
func (c *Corpus) ReadExplicit(f Fixture) ([]byte, error) {
	b, err := afero.ReadFile(c.FS, c.ExplicitPath(f))
	if err != nil {
		return nil, errors.E("read", c.Dirs.Explicit+"/"+f.Name, err)
	}
	return b, nil
}

// WriteExplicit writes the explicit rendering of pass fixture f,
// creating the explicit directory if needed.
func (c *Corpus) WriteExplicit(f Fixture, explicit string) error {
	if err := c.FS.MkdirAll(c.ExplicitDir(), 0777); err != nil {
		return errors.E("write", c.Dirs.Explicit, err)
	}
	if err := afero.WriteFile(c.FS, c.ExplicitPath(f), []byte(explicit), 0644); err != nil {
		return errors.E("write", c.Dirs.Explicit+"/"+f.Name, err)
	}
	return nil
}
