// Copyright (c) 2025 horeilly
//
// This software is licensed under the MIT License.
// See the LICENSE file in the root of the repository for details.

// Package search drives the API client across the full (date, time, course)
// grid. One bad cell never sinks the batch: fetch failures are logged,
// counted and skipped.
package search

import (
	"context"
	"log"

	"github.com/horeilly/qdl-tee-times/pkg/models"
	"github.com/horeilly/qdl-tee-times/pkg/processor"
)

// Fetcher is the slice of the API client the orchestrator needs. Tests
// inject failing implementations through it.
type Fetcher interface {
	FetchAvailability(ctx context.Context, date, teeTime, courseID string, players int) (models.CourseAvailabilityResponse, error)
}

// Progress is called after every cell with a monotonically increasing done
// count. It is for observation (progress bars) only, never control flow.
type Progress func(done, total int)

// Result is the outcome of a full grid search.
type Result struct {
	Records []models.TeeTimeRecord
	Cells   int // grid cells visited
	Failed  int // cells skipped after a fetch error
}

// Run enumerates every date in the range, every whole hour in the range and
// every course, in that nested order, fetching each cell through the
// client. Per-cell errors are contained; only context cancellation aborts
// the walk. Records accumulate raw and are deduplicated and sorted exactly
// once at the end, so the result set does not depend on fetch order.
func Run(ctx context.Context, client Fetcher, params models.SearchParameters, onProgress Progress) (Result, error) {
	dates := params.DateRange()
	times := params.TimeSlots()
	total := len(dates) * len(times) * len(params.CourseIDs)

	res := Result{Cells: total}
	var records []models.TeeTimeRecord
	done := 0

	for _, date := range dates {
		log.Printf("[search] fetching tee times for %s", date)
		for _, teeTime := range times {
			for _, courseID := range params.CourseIDs {
				if err := ctx.Err(); err != nil {
					return Result{}, err
				}

				resp, err := client.FetchAvailability(ctx, date, teeTime, courseID, params.Players)
				if err != nil {
					if ctx.Err() != nil {
						return Result{}, ctx.Err()
					}
					// Unknown errors are contained the same way as client
					// errors to preserve batch progress.
					log.Printf("[search] skipping %s %s course %s: %v", date, teeTime, courseID, err)
					res.Failed++
				} else {
					records = append(records, processor.Format(resp, date)...)
				}

				done++
				if onProgress != nil {
					onProgress(done, total)
				}
			}
		}
	}

	res.Records = processor.Finalize(records)
	return res, nil
}
