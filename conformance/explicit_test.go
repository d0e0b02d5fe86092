// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package conformance_test

import (
	"context"
	"testing"

	. "github.com/grailbio/jsfixture/conformance"
	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/spf13/afero"
)

func renderingNames(rs []Rendering) []string {
	var s []string
	for _, r := range rs {
		s = append(s, r.Fixture.Name)
	}
	return s
}

func TestCheckExplicit(t *testing.T) {
	c := newCorpus(t, map[string]string{
		"pass/a.js":               "a = b + c;",
		"pass-explicit/a.js":      "a = (b + c);",
		"pass/b.js":               "x = y * z;",
		"pass-explicit/b.js":      "x = y * z;",
		"pass/c.module.js":        "export default a * b;",
		"pass/d.js":               "let x = y;",
		"pass/e.js":               "'use strict'; with (a) b;",
		"pass-explicit/orphan.js": "a;",
	})
	r := &Runner{Corpus: c, Parallelism: 2}

	rep, err := r.CheckExplicit(context.Background(), false)
	assert.NoError(t, err)
	assert.EQ(t, renderingNames(rep.Need), []string{"c.module.js", "d.js"})
	assert.EQ(t, rep.Need[0].Explicit, "export default (a * b);")
	assert.EQ(t, rep.Need[1].Explicit, "let x = (y);")
	assert.EQ(t, rep.Orphaned, []string{"orphan.js"})
	assert.EQ(t, len(rep.Wrong), 0)
	assert.EQ(t, len(rep.Errors), 1)
	assert.EQ(t, rep.Errors[0].Fixture.Name, "e.js")
	if !errors.Is(errors.Early, rep.Errors[0].Err) {
		t.Errorf("got %v, want Early", rep.Errors[0].Err)
	}
	assert.False(t, rep.OK())

	rep, err = r.CheckExplicit(context.Background(), true)
	assert.NoError(t, err)
	assert.EQ(t, renderingNames(rep.Wrong), []string{"b.js"})
	assert.EQ(t, rep.Wrong[0].Explicit, "x = (y * z);")

	n, err := r.WriteExplicit(rep)
	assert.NoError(t, err)
	assert.EQ(t, n, 3)
	b, err := afero.ReadFile(c.FS, "/corpus/pass-explicit/b.js")
	assert.NoError(t, err)
	assert.EQ(t, string(b), "x = (y * z);")
	b, err = afero.ReadFile(c.FS, "/corpus/pass-explicit/c.module.js")
	assert.NoError(t, err)
	assert.EQ(t, string(b), "export default (a * b);")

	rep, err = r.CheckExplicit(context.Background(), true)
	assert.NoError(t, err)
	assert.EQ(t, len(rep.Need), 0)
	assert.EQ(t, len(rep.Wrong), 0)
	assert.EQ(t, rep.Orphaned, []string{"orphan.js"})
}

func TestWriteExplicitCreatesDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "/c/pass/a.js", []byte("a + b * c;"), 0644))
	c := &Corpus{FS: fs, Root: "/c", Dirs: dirs}
	r := &Runner{Corpus: c}
	rep, err := r.CheckExplicit(context.Background(), true)
	assert.NoError(t, err)
	n, err := r.WriteExplicit(rep)
	assert.NoError(t, err)
	assert.EQ(t, n, 1)
	b, err := afero.ReadFile(fs, "/c/pass-explicit/a.js")
	assert.NoError(t, err)
	assert.EQ(t, string(b), "a + (b * c);")

	report, err := r.Run(context.Background(), Pass)
	assert.NoError(t, err)
	assert.True(t, report.OK())
}

func TestWriteExplicitReadOnly(t *testing.T) {
	c := newCorpus(t, map[string]string{"pass/a.js": "a;"})
	c.FS = afero.NewReadOnlyFs(c.FS)
	r := &Runner{Corpus: c}
	rep, err := r.CheckExplicit(context.Background(), false)
	assert.NoError(t, err)
	if _, err := r.WriteExplicit(rep); err == nil {
		t.Error("expected error writing to a read-only corpus")
	}
}
