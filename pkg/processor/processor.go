// Copyright (c) 2025 horeilly
//
// This software is licensed under the MIT License.
// See the LICENSE file in the root of the repository for details.

// Package processor turns availability responses into the canonical,
// deduplicated, sorted record set.
package processor

import (
	"sort"

	"github.com/horeilly/qdl-tee-times/pkg/config"
	"github.com/horeilly/qdl-tee-times/pkg/models"
)

// Format converts one course response into tee time records for the given
// search date. Pure and total: every slot yields exactly one record.
// start_nine 2 means the back nine (hole 10); every other value, including
// bad data, falls back to the front nine (hole 1) rather than failing.
func Format(resp models.CourseAvailabilityResponse, date string) []models.TeeTimeRecord {
	course := config.CourseDisplayName(resp.Name)

	records := make([]models.TeeTimeRecord, 0, len(resp.Availabilities))
	for _, slot := range resp.Availabilities {
		startHole := 1
		if slot.StartNine == 2 {
			startHole = 10
		}
		records = append(records, models.TeeTimeRecord{
			Date:      date,
			Time:      slot.Time,
			Course:    course,
			Price:     slot.Price,
			Players:   slot.Players,
			StartHole: startHole,
		})
	}
	return records
}

// Finalize removes exact duplicates (full-field equality) and sorts the
// records ascending by date, time, course. The sort is stable, so records
// tied on all three keys keep their accumulation order. Empty input yields
// an empty, non-nil slice.
func Finalize(records []models.TeeTimeRecord) []models.TeeTimeRecord {
	seen := make(map[models.TeeTimeRecord]struct{}, len(records))
	out := make([]models.TeeTimeRecord, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].Course < out[j].Course
	})
	return out
}
