// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"bytes"
	"context"

	"github.com/grailbio/base/traverse"
	"github.com/grailbio/jsfixture"
	"github.com/grailbio/jsfixture/errors"
)

// Rendering is the generated explicit rendering of a pass fixture.
type Rendering struct {
	Fixture  Fixture
	Explicit string
}

// ExplicitReport describes the state of a corpus's explicit
// renderings.
type ExplicitReport struct {
	// Need are the pass fixtures without an explicit rendering.
	Need []Rendering
	// Orphaned are the names of explicit renderings without a pass
	// fixture.
	Orphaned []string
	// Wrong are the pass fixtures whose explicit renderings differ
	// from the generated ones. It is populated only if contents are
	// checked.
	Wrong []Rendering
	// Errors are the pass fixtures that could not be rendered.
	Errors []Result
}

// OK tells whether the explicit renderings are complete and correct.
func (r *ExplicitReport) OK() bool {
	return len(r.Need) == 0 && len(r.Orphaned) == 0 && len(r.Wrong) == 0 && len(r.Errors) == 0
}

// CheckExplicit compares the pass fixtures with their explicit
// renderings. If contents is set, existing renderings are compared
// against freshly generated ones.
func (r *Runner) CheckExplicit(ctx context.Context, contents bool) (*ExplicitReport, error) {
	pass, err := r.Corpus.List(Pass)
	if err != nil {
		return nil, err
	}
	names, err := r.Corpus.ListExplicit()
	if err != nil {
		return nil, err
	}
	var (
		rep      = new(ExplicitReport)
		explicit = make(map[string]bool)
		isPass   = make(map[string]bool)
	)
	for _, name := range names {
		explicit[name] = true
	}
	for _, f := range pass {
		isPass[f.Name] = true
	}
	// Names are listed in order.
	for _, name := range names {
		if !isPass[name] {
			rep.Orphaned = append(rep.Orphaned, name)
		}
	}

	type outcome struct {
		rendering Rendering
		need      bool
		wrong     bool
		err       error
	}
	outcomes := make([]outcome, len(pass))
	err = traverse.Limit(r.parallelism()).Each(len(pass), func(i int) error {
		if err := ctx.Err(); err != nil {
			return errors.E("check-explicit", err)
		}
		f := pass[i]
		o := &outcomes[i]
		o.rendering.Fixture = f
		exists := explicit[f.Name]
		if exists && !contents {
			return nil
		}
		src, err := r.Corpus.Read(f)
		if err != nil {
			o.err = err
			return nil
		}
		o.rendering.Explicit, o.err = jsfixture.MakeExplicit(string(src), f.Module())
		if o.err != nil {
			o.err = errors.E("render", f.String(), o.err)
			return nil
		}
		if !exists {
			o.need = true
			return nil
		}
		cur, err := r.Corpus.ReadExplicit(f)
		if err != nil {
			o.err = err
			return nil
		}
		o.wrong = !bytes.Equal(cur, []byte(o.rendering.Explicit))
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, o := range outcomes {
		switch {
		case o.err != nil:
			rep.Errors = append(rep.Errors, Result{Fixture: o.rendering.Fixture, Err: o.err})
			r.Log.Error(oneLine(o.err))
		case o.need:
			rep.Need = append(rep.Need, o.rendering)
		case o.wrong:
			rep.Wrong = append(rep.Wrong, o.rendering)
		}
	}
	return rep, nil
}

// WriteExplicit writes the generated renderings of the fixtures that
// need them, or whose renderings are wrong. Orphaned renderings are
// left in place. It returns the number of files written.
func (r *Runner) WriteExplicit(rep *ExplicitReport) (int, error) {
	var n int
	for _, list := range [][]Rendering{rep.Need, rep.Wrong} {
		for _, e := range list {
			if err := r.Corpus.WriteExplicit(e.Fixture, e.Explicit); err != nil {
				return n, err
			}
			r.Log.Printf("wrote %s/%s", r.Corpus.Dirs.Explicit, e.Fixture.Name)
			n++
		}
	}
	return n, nil
}
