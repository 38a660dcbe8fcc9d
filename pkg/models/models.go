// Copyright (c) 2025 horeilly
//
// This software is licensed under the MIT License.
// See the LICENSE file in the root of the repository for details.

package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AvailabilitySlot is one bookable tee time returned by the booking API
// for a given course/date/time query.
type AvailabilitySlot struct {
	Time      string  `json:"time"`
	Price     float64 `json:"price"`
	Players   int     `json:"players"`
	StartNine int     `json:"start_nine"`
}

// CourseAvailabilityResponse is the decoded availability response for a
// single course. Availabilities may be empty, which is a valid result.
type CourseAvailabilityResponse struct {
	Name           string             `json:"name"`
	Availabilities []AvailabilitySlot `json:"availabilities"`
}

// TeeTimeRecord is the canonical output unit. Two records are duplicates
// iff all six fields are equal, so the struct stays comparable.
type TeeTimeRecord struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Course    string  `json:"course"`
	Price     float64 `json:"price"`
	Players   int     `json:"players"`
	StartHole int     `json:"start_hole"`
}

// SearchParameters describes the full search grid. Construct once, call
// Validate before use, and do not mutate during a search.
type SearchParameters struct {
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required"`
	StartHour int       `validate:"min=0,max=23"`
	EndHour   int       `validate:"min=0,max=23"`
	Players   int       `validate:"min=1,max=4"`
	CourseIDs []string  `validate:"required,min=1"`
}

var validate = validator.New()

// now is stubbed in tests to pin the "start date not in the past" check.
var now = time.Now

// Validate checks field bounds plus the cross-field rules the struct tags
// cannot express. Failures are configuration errors and abort the run
// before any network activity.
func (p SearchParameters) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &Error{Kind: KindValidation, Err: err}
	}
	if p.EndDate.Before(p.StartDate) {
		return &Error{Kind: KindValidation, Err: fmt.Errorf("start date %s is after end date %s",
			p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout))}
	}
	if p.EndHour < p.StartHour {
		return &Error{Kind: KindValidation, Err: fmt.Errorf("start hour %d is after end hour %d", p.StartHour, p.EndHour)}
	}
	if p.StartDate.Format(dateLayout) < now().Format(dateLayout) {
		return &Error{Kind: KindValidation, Err: fmt.Errorf("start date %s is in the past", p.StartDate.Format(dateLayout))}
	}
	return nil
}

const dateLayout = "2006-01-02"

// DateRange enumerates every date between StartDate and EndDate inclusive,
// formatted YYYY-MM-DD, in ascending order.
func (p SearchParameters) DateRange() []string {
	var dates []string
	for d := p.StartDate; !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// TimeSlots enumerates every whole hour between StartHour and EndHour
// inclusive, formatted "HH:00".
func (p SearchParameters) TimeSlots() []string {
	var times []string
	for h := p.StartHour; h <= p.EndHour; h++ {
		times = append(times, fmt.Sprintf("%02d:00", h))
	}
	return times
}

// GridSize is the number of (date, time, course) cells the search visits.
func (p SearchParameters) GridSize() int {
	return len(p.DateRange()) * len(p.TimeSlots()) * len(p.CourseIDs)
}
