// SPDX-License-Identifier: MIT
// Package: surfacecode/readout
//
// batch.go: concurrent histogram decoding and summaries.
//
// Contract:
//   • Shots are returned sorted by record.
//   • Counts below one are rejected with ErrCount.
//   • The first failure cancels outstanding work.

package readout

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Shot is one distinct record of a backend histogram and its decoding.
type Shot struct {
	Record string `json:"record"`
	Count  int    `json:"count"`
	Result
}

// DecodeCounts decodes every record of counts concurrently, at most
// WithWorkers records at a time. Shots come back sorted by record so the
// output is deterministic. The first failure cancels the remaining work and
// is returned with the offending record attached. Counts below one are
// rejected with ErrCount before any record is parsed.
//
// Complexity: O(n log n + n·T) time for n records of T tokens, O(n) space.
func (d *Decoder) DecodeCounts(ctx context.Context, counts map[string]int, t Type) ([]Shot, error) {
	records := make([]string, 0, len(counts))
	for r := range counts {
		records = append(records, r)
	}
	sort.Strings(records)
	for _, r := range records {
		if n := counts[r]; n < 1 {
			return nil, fmt.Errorf("record %q: %w: %d", r, ErrCount, n)
		}
	}

	shots := make([]Shot, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := d.Parse(rec, t)
			if err != nil {
				return fmt.Errorf("record %q: %w", rec, err)
			}
			shots[i] = Shot{Record: rec, Count: counts[rec], Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.logger.Debug("histogram decoded",
		zap.Int("records", len(records)),
		zap.Int("workers", d.workers),
		zap.Stringer("type", t))
	return shots, nil
}

// Summary aggregates decoded shots, weighting each by its count.
type Summary struct {
	Shots    int    `json:"shots"`
	Logical  [2]int `json:"logical"`
	XDefects int    `json:"x_defects"`
	ZDefects int    `json:"z_defects"`
	// Clean counts shots with no defect in either family.
	Clean int `json:"clean"`
}

// Summarize folds shots into a Summary.
func Summarize(shots []Shot) Summary {
	var s Summary
	for _, sh := range shots {
		s.Shots += sh.Count
		s.Logical[sh.Logical&1] += sh.Count
		s.XDefects += len(sh.X) * sh.Count
		s.ZDefects += len(sh.Z) * sh.Count
		if len(sh.X) == 0 && len(sh.Z) == 0 {
			s.Clean += sh.Count
		}
	}
	return s
}

// LogicalErrorRate returns the fraction of shots whose logical bit differs
// from expected, before any correction. Zero shots yield 0.
func (s Summary) LogicalErrorRate(expected int) float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Logical[1-(expected&1)]) / float64(s.Shots)
}
