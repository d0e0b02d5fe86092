// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"context"
	"sync/atomic"

	"github.com/grailbio/base/status"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/jsfixture/config"
	"github.com/grailbio/jsfixture/errors"
	"github.com/grailbio/jsfixture/log"
)

// Result is the outcome of checking a single fixture.
type Result struct {
	Fixture Fixture
	// Err is nil if the fixture conforms.
	Err error
	// Known is set if the fixture is listed as known divergent, with
	// Reason as the listed reason.
	Known  bool
	Reason string
}

// A Runner checks the fixtures of a corpus.
type Runner struct {
	// Corpus is the corpus to check.
	Corpus *Corpus
	// Parallelism is the number of fixtures checked concurrently.
	Parallelism int
	// VerifyNames requires that fixtures are named by their content
	// slug.
	VerifyNames bool
	// KnownDivergent lists the fixtures that are expected not to
	// conform. They are still checked, so that they are reported
	// when they start conforming.
	KnownDivergent config.Divergent
	// Log receives a line per fixture at debug level and a line per
	// failure at error level.
	Log *log.Logger
	// Status, if not nil, is updated as fixtures are checked.
	Status *status.Group
}

// NewRunner returns a runner over corpus c, configured by cfg.
func NewRunner(c *Corpus, cfg config.Config) (*Runner, error) {
	par, err := cfg.Parallelism()
	if err != nil {
		return nil, err
	}
	verify, err := cfg.VerifyNames()
	if err != nil {
		return nil, err
	}
	divergent, err := cfg.KnownDivergent()
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	return &Runner{
		Corpus:         c,
		Parallelism:    par,
		VerifyNames:    verify,
		KnownDivergent: divergent,
		Log:            logger,
	}, nil
}

func (r *Runner) parallelism() int {
	if r.Parallelism <= 0 {
		return 1
	}
	return r.Parallelism
}

// Run checks every fixture of the given categories (or of all
// categories if none are given) and returns a report. A fixture that
// fails to conform does not stop the run; Run returns an error only if
// the corpus cannot be listed or ctx is done before every fixture is
// checked.
func (r *Runner) Run(ctx context.Context, cats ...Category) (*Report, error) {
	if len(cats) == 0 {
		cats = Categories
	}
	var (
		fixtures []Fixture
		logs     = make(map[Category]*log.Logger)
	)
	for _, cat := range cats {
		list, err := r.Corpus.List(cat)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, list...)
		logs[cat] = r.Log.Tee(nil, string(cat)+": ")
	}
	var (
		results = make([]Result, len(fixtures))
		ndone   int32
		nfail   int32
	)
	r.Status.Printf("checking %d fixtures", len(fixtures))
	err := traverse.Limit(r.parallelism()).Each(len(fixtures), func(i int) error {
		if err := ctx.Err(); err != nil {
			return errors.E("run", err)
		}
		f := fixtures[i]
		task := r.Status.Start(f.String())
		res := Result{Fixture: f, Err: r.Check(f)}
		res.Reason, res.Known = r.KnownDivergent.Reason(string(f.Category), f.Name)
		results[i] = res
		task.Done()

		flog := logs[f.Category]
		switch {
		case res.Err == nil && res.Known:
			flog.Errorf("%s: listed as divergent (%s) but conforms", f.Name, res.Reason)
		case res.Err == nil:
			flog.Debugf("%s: ok", f.Name)
		case res.Known:
			flog.Debugf("%s: known divergent: %s", f.Name, res.Reason)
		default:
			atomic.AddInt32(&nfail, 1)
			flog.Error(oneLine(res.Err))
		}
		n := atomic.AddInt32(&ndone, 1)
		r.Status.Printf("checked %d/%d fixtures, %d failures", n, len(fixtures), atomic.LoadInt32(&nfail))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newReport(cats, results, r.KnownDivergent), nil
}

func oneLine(err error) string {
	return errors.Recover(err).ErrorSeparator(": ")
}
