// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package conformance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/config"
	. "github.com/grailbio/jsfixture/conformance"
	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/spf13/afero"
)

var dirs = config.Dirs{Pass: "pass", Fail: "fail", Early: "early", Explicit: "pass-explicit"}

func newCorpus(t *testing.T, files map[string]string) *Corpus {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range []string{"pass", "fail", "early", "pass-explicit"} {
		assert.NoError(t, fs.MkdirAll("/corpus/"+dir, 0777))
	}
	for name, contents := range files {
		assert.NoError(t, afero.WriteFile(fs, "/corpus/"+name, []byte(contents), 0644))
	}
	return &Corpus{FS: fs, Root: "/corpus", Dirs: dirs}
}

func names(results []Result) []string {
	var s []string
	for _, r := range results {
		s = append(s, r.Fixture.String())
	}
	return s
}

func TestList(t *testing.T) {
	c := newCorpus(t, map[string]string{
		"pass/b.js":           "b;",
		"pass/a.module.js":    "a;",
		"pass/README.md":      "fixtures",
		"pass-explicit/b.js":  "b;",
		"pass-explicit/x.txt": "",
	})
	fixtures, err := c.List(Pass)
	assert.NoError(t, err)
	if diff := cmp.Diff([]Fixture{
		{Category: Pass, Name: "a.module.js", Path: "/corpus/pass/a.module.js"},
		{Category: Pass, Name: "b.js", Path: "/corpus/pass/b.js"},
	}, fixtures); diff != "" {
		t.Errorf("fixtures differ (-want +got):\n%s", diff)
	}
	assert.True(t, fixtures[0].Module())
	assert.False(t, fixtures[1].Module())
	explicit, err := c.ListExplicit()
	assert.NoError(t, err)
	assert.EQ(t, explicit, []string{"b.js"})

	c.Dirs.Early = "nonexistent"
	fixtures, err = c.List(Early)
	assert.NoError(t, err)
	assert.EQ(t, len(fixtures), 0)
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, err := ParseCategory(string(cat))
		assert.NoError(t, err)
		assert.EQ(t, got, cat)
	}
	if _, err := ParseCategory("explicit"); !errors.Is(errors.Invalid, err) {
		t.Errorf("got %v, want Invalid", err)
	}
}

func TestCheck(t *testing.T) {
	c := newCorpus(t, map[string]string{
		"pass/ok.js":                   "a = b + c;",
		"pass-explicit/ok.js":          "a = (b + c);",
		"pass/m.module.js":             "export default a * b;",
		"pass-explicit/m.module.js":    "export default (a * b);",
		"pass/mismatch.js":             "a - b - c;",
		"pass-explicit/mismatch.js":    "a - (b - c);",
		"pass/noexplicit.js":           "a;",
		"pass/early.js":                "'use strict'; with (a) b;",
		"pass-explicit/early.js":       "'use strict'; with (a) b;",
		"pass/badexplicit.js":          "a;",
		"pass-explicit/badexplicit.js": "a +",
		"fail/ok.js":                   "a +",
		"fail/accepted.js":             "a;",
		"early/ok.js":                  "'use strict'; with (a) b;",
		"early/module.module.js":       "var await;",
		"early/grammar.js":             "a +",
		"early/none.js":                "a;",
	})
	r := &Runner{Corpus: c}
	for _, tc := range []struct {
		cat  Category
		name string
		kind errors.Kind
		ok   bool
	}{
		{Pass, "ok.js", 0, true},
		{Pass, "m.module.js", 0, true},
		{Pass, "mismatch.js", errors.Mismatch, false},
		{Pass, "noexplicit.js", errors.NotExist, false},
		{Pass, "early.js", errors.Unexpected, false},
		{Pass, "badexplicit.js", errors.Mismatch, false},
		{Fail, "ok.js", 0, true},
		{Fail, "accepted.js", errors.Unexpected, false},
		{Early, "ok.js", 0, true},
		{Early, "module.module.js", 0, true},
		{Early, "grammar.js", errors.Unexpected, false},
		{Early, "none.js", errors.Unexpected, false},
	} {
		f := Fixture{Category: tc.cat, Name: tc.name, Path: c.Dir(tc.cat) + "/" + tc.name}
		err := r.Check(f)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: %v", f, err)
			}
			continue
		}
		if !errors.Is(tc.kind, err) {
			t.Errorf("%s: got %v, want kind %v", f, err, tc.kind)
		}
	}
}

func TestCheckName(t *testing.T) {
	src := "a = b;"
	good := jsfixture.CanonicalName([]byte(src), false)
	c := newCorpus(t, map[string]string{
		"fail/" + good:          src,
		"fail/wrong.js":         "a +",
		"early/x.module.js":     "var await;",
		"pass/" + good:          src,
		"pass-explicit/" + good: src,
	})
	r := &Runner{Corpus: c, VerifyNames: true}
	rep, err := r.Run(context.Background())
	assert.NoError(t, err)
	// The fail fixture is named for a conforming pass fixture, but does
	// not conform itself.
	assert.EQ(t, names(rep.Failures), []string{"fail/" + good, "fail/wrong.js", "early/x.module.js"})
	if !errors.Is(errors.Unexpected, rep.Failures[0].Err) {
		t.Errorf("got %v, want Unexpected", rep.Failures[0].Err)
	}
	for _, res := range rep.Failures[1:] {
		if !errors.Is(errors.Integrity, res.Err) {
			t.Errorf("%s: got %v, want Integrity", res.Fixture, res.Err)
		}
	}
	assert.NoError(t, CheckName(Fixture{Category: Pass, Name: good}, []byte(src)))
	err = CheckName(Fixture{Category: Pass, Name: "0000000000000000.module.js"}, []byte(src))
	if !errors.Is(errors.Integrity, err) {
		t.Errorf("got %v, want Integrity", err)
	}
}

func TestRun(t *testing.T) {
	c := newCorpus(t, map[string]string{
		"pass/a.js":          "a = b + c;",
		"pass-explicit/a.js": "a = (b + c);",
		"pass/b.js":          "a - b - c;",
		"pass-explicit/b.js": "a - (b - c);",
		"fail/a.js":          "a +",
		"fail/b.js":          "a;",
		"fail/c.js":          "(a",
		"early/a.js":         "'use strict'; with (a) b;",
		"early/b.js":         "a;",
	})
	r := &Runner{
		Corpus:      c,
		Parallelism: 3,
		KnownDivergent: config.Divergent{
			"early": {"b.js": "not an early error"},
			"fail":  {"c.js": "unterminated group"},
			"pass":  {"gone.js": "removed"},
		},
	}
	rep, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.EQ(t, rep.Total(), 7)
	assert.EQ(t, rep.Counts, map[Category]int{Pass: 2, Fail: 3, Early: 2})
	assert.EQ(t, names(rep.Failures), []string{"pass/b.js", "fail/b.js"})
	assert.EQ(t, names(rep.Divergent), []string{"early/b.js"})
	assert.EQ(t, rep.Divergent[0].Reason, "not an early error")
	assert.EQ(t, names(rep.Stale), []string{"fail/c.js"})
	assert.EQ(t, rep.Missing, []string{"pass/gone.js"})
	assert.False(t, rep.OK())

	var b bytes.Buffer
	assert.NoError(t, rep.Write(&b))
	out := b.String()
	for _, want := range []string{
		"FAIL check pass/b.js",
		"FAIL check fail/b.js: unexpected result: accepted by the grammar",
		"DIVERGENT early/b.js: not an early error",
		"STALE fail/c.js",
		"MISSING pass/gone.js",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q:\n%s", want, out)
		}
	}

	rep, err = r.Run(context.Background(), Early)
	assert.NoError(t, err)
	assert.EQ(t, rep.Categories, []Category{Early})
	assert.EQ(t, rep.Total(), 2)
	assert.EQ(t, len(rep.Failures), 0)
	assert.EQ(t, len(rep.Missing), 0)
	assert.True(t, rep.OK())
}

func TestRunCanceled(t *testing.T) {
	c := newCorpus(t, map[string]string{
		"fail/a.js": "a +",
		"fail/b.js": "b +",
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{Corpus: c, Parallelism: 1}
	if _, err := r.Run(ctx); !errors.Is(errors.Canceled, err) {
		t.Errorf("got %v, want Canceled", err)
	}
}

func TestNewRunner(t *testing.T) {
	cfg, err := config.Parse([]byte(`
fs: mem
root: /fixtures
parallelism: 2
verify_names: true
known_divergent:
  early:
    a.js: reason
`))
	assert.NoError(t, err)
	c, err := New(cfg)
	assert.NoError(t, err)
	assert.EQ(t, c.Root, "/fixtures")
	assert.EQ(t, c.Dir(Early), "/fixtures/early")
	assert.EQ(t, c.ExplicitDir(), "/fixtures/pass-explicit")
	r, err := NewRunner(c, cfg)
	assert.NoError(t, err)
	assert.EQ(t, r.Parallelism, 2)
	assert.True(t, r.VerifyNames)
	reason, ok := r.KnownDivergent.Reason("early", "a.js")
	assert.True(t, ok)
	assert.EQ(t, reason, "reason")
}

func TestWriteJSON(t *testing.T) {
	c := newCorpus(t, map[string]string{
		"fail/a.js":  "a +",
		"fail/b.js":  "a;",
		"early/a.js": "a;",
	})
	r := &Runner{
		Corpus:         c,
		KnownDivergent: config.Divergent{"early": {"a.js": "no early error", "gone.js": "removed"}},
	}
	rep, err := r.Run(context.Background(), Fail, Early)
	assert.NoError(t, err)
	var b bytes.Buffer
	assert.NoError(t, rep.WriteJSON(&b))

	type record struct {
		Fixture string
		Status  string
		Reason  string
		Error   *errors.Error
	}
	var records []record
	dec := json.NewDecoder(&b)
	for dec.More() {
		var rec record
		assert.NoError(t, dec.Decode(&rec))
		records = append(records, rec)
	}
	assert.EQ(t, len(records), 4)
	for i, want := range []struct{ fixture, status string }{
		{"fail/a.js", "ok"},
		{"fail/b.js", "fail"},
		{"early/a.js", "divergent"},
		{"early/gone.js", "missing"},
	} {
		assert.EQ(t, records[i].Fixture, want.fixture)
		assert.EQ(t, records[i].Status, want.status)
	}
	assert.EQ(t, records[0].Error, (*errors.Error)(nil))
	if !errors.Match(errors.Unexpected, records[1].Error) {
		t.Errorf("got %v, want Unexpected", records[1].Error)
	}
	assert.EQ(t, records[2].Reason, "no early error")
	if !errors.Match(rep.Divergent[0].Err, records[2].Error) {
		t.Errorf("serialized error %v does not match %v", records[2].Error, rep.Divergent[0].Err)
	}
}

// shortWriter accepts n bytes and fails every write past them.
type shortWriter struct{ n int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errors.New("short write")
	}
	w.n -= len(p)
	return len(p), nil
}

func TestReportWriteError(t *testing.T) {
	rep := &Report{
		Categories: []Category{Fail, Early},
		Counts:     map[Category]int{Fail: 2, Early: 2},
		Failures: []Result{{
			Fixture: Fixture{Category: Fail, Name: "a.js"},
			Err:     errors.E("check", "fail/a.js", errors.Unexpected, errors.New("accepted by the grammar")),
		}},
		Divergent: []Result{{Fixture: Fixture{Category: Early, Name: "a.js"}, Known: true, Reason: "no early error", Err: errors.New("x")}},
		Stale:     []Result{{Fixture: Fixture{Category: Fail, Name: "b.js"}, Known: true, Reason: "fixed"}},
		Missing:   []string{"early/gone.js"},
	}
	var b bytes.Buffer
	assert.NoError(t, rep.Write(&b))
	full := b.String()
	for _, line := range []string{"FAIL ", "DIVERGENT ", "STALE ", "MISSING "} {
		n := strings.Index(full, line)
		if n < 0 {
			t.Fatalf("report does not contain %q:\n%s", line, full)
		}
		if err := rep.Write(&shortWriter{n: n + 1}); err == nil {
			t.Errorf("write failing within %q line: expected error", line)
		}
	}
	if err := rep.Write(&shortWriter{n: len(full)}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
