// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/grailbio/jsfixture/config"
	"github.com/grailbio/jsfixture/errors"
)

// Report summarizes a conformance run.
type Report struct {
	// Categories are the categories that were checked.
	Categories []Category
	// Results holds the result of every fixture, ordered by category
	// and then name.
	Results []Result
	// Counts holds the number of fixtures checked, by category.
	Counts map[Category]int
	// Failures are the fixtures that do not conform and are not
	// known divergent.
	Failures []Result
	// Divergent are the known divergent fixtures that do not conform.
	Divergent []Result
	// Stale are the known divergent fixtures that conform: they should
	// be removed from the known divergent list.
	Stale []Result
	// Missing are the known divergent entries, as "category/name",
	// that name no fixture in the corpus.
	Missing []string
}

func newReport(cats []Category, results []Result, divergent config.Divergent) *Report {
	r := &Report{Categories: cats, Results: results, Counts: make(map[Category]int)}
	seen := make(map[string]bool)
	for _, res := range results {
		r.Counts[res.Fixture.Category]++
		seen[res.Fixture.String()] = true
		switch {
		case res.Err == nil && res.Known:
			r.Stale = append(r.Stale, res)
		case res.Err == nil:
		case res.Known:
			r.Divergent = append(r.Divergent, res)
		default:
			r.Failures = append(r.Failures, res)
		}
	}
	for _, cat := range cats {
		for name := range divergent[string(cat)] {
			if f := (Fixture{Category: cat, Name: name}); !seen[f.String()] {
				r.Missing = append(r.Missing, f.String())
			}
		}
	}
	sort.Strings(r.Missing)
	return r
}

// OK tells whether every fixture conformed, apart from those known to
// diverge, and the known divergent list is accurate.
func (r *Report) OK() bool {
	return len(r.Failures) == 0 && len(r.Stale) == 0 && len(r.Missing) == 0
}

// Total returns the number of fixtures checked.
func (r *Report) Total() int {
	var n int
	for _, c := range r.Counts {
		n += c
	}
	return n
}

func (r *Report) count(results []Result, cat Category) int {
	var n int
	for _, res := range results {
		if res.Fixture.Category == cat {
			n++
		}
	}
	return n
}

// Write writes a summary of the report to w: a table of counts by
// category, followed by a line for each failure, known divergent,
// stale or missing fixture.
func (r *Report) Write(w io.Writer) error {
	var tw tabwriter.Writer
	tw.Init(w, 4, 4, 1, ' ', 0)
	fmt.Fprintln(&tw, "category\tfixtures\tfailures\tdivergent\tstale")
	for _, cat := range r.Categories {
		fmt.Fprintf(&tw, "%s\t%d\t%d\t%d\t%d\n", cat, r.Counts[cat],
			r.count(r.Failures, cat), r.count(r.Divergent, cat), r.count(r.Stale, cat))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	var lines []string
	for _, res := range r.Failures {
		lines = append(lines, "FAIL "+oneLine(res.Err))
	}
	for _, res := range r.Divergent {
		lines = append(lines, fmt.Sprintf("DIVERGENT %s: %s", res.Fixture, res.Reason))
	}
	for _, res := range r.Stale {
		lines = append(lines, fmt.Sprintf("STALE %s: listed as divergent (%s) but conforms", res.Fixture, res.Reason))
	}
	for _, name := range r.Missing {
		lines = append(lines, fmt.Sprintf("MISSING %s: listed as divergent but does not exist", name))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Status returns the outcome of a result: "ok", "fail", "divergent"
// or "stale".
func (r Result) Status() string {
	switch {
	case r.Err == nil && r.Known:
		return "stale"
	case r.Err == nil:
		return "ok"
	case r.Known:
		return "divergent"
	}
	return "fail"
}

// jsonResult is the serialized form of a Result.
type jsonResult struct {
	Fixture string        `json:"fixture"`
	Status  string        `json:"status"`
	Reason  string        `json:"reason,omitempty"`
	Error   *errors.Error `json:"error,omitempty"`
}

// WriteJSON writes the report to w as a stream of JSON objects, one
// per fixture, followed by one per missing known divergent entry.
// Errors are serialized with their kinds, so that the reports of two
// runs can be compared.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, res := range r.Results {
		j := jsonResult{
			Fixture: res.Fixture.String(),
			Status:  res.Status(),
			Reason:  res.Reason,
			Error:   errors.Recover(res.Err),
		}
		if err := enc.Encode(j); err != nil {
			return err
		}
	}
	for _, name := range r.Missing {
		if err := enc.Encode(jsonResult{Fixture: name, Status: "missing"}); err != nil {
			return err
		}
	}
	return nil
}
