package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// pinNow fixes the validation clock so past-date checks are deterministic.
func pinNow(t *testing.T, s string) {
	t.Helper()
	fixed := date(t, s)
	original := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = original })
}

func validParams(t *testing.T) SearchParameters {
	return SearchParameters{
		StartDate: date(t, "2025-09-24"),
		EndDate:   date(t, "2025-09-30"),
		StartHour: 7,
		EndHour:   16,
		Players:   4,
		CourseIDs: []string{"35130-201-0000000001"},
	}
}

func TestValidate(t *testing.T) {
	pinNow(t, "2025-09-01")

	t.Run("Valid parameters", func(t *testing.T) {
		assert.NoError(t, validParams(t).Validate())
	})

	t.Run("End date before start date", func(t *testing.T) {
		p := validParams(t)
		p.EndDate = date(t, "2025-09-20")

		err := p.Validate()

		require.Error(t, err)
		var qe *Error
		require.True(t, errors.As(err, &qe))
		assert.Equal(t, KindValidation, qe.Kind)
	})

	t.Run("Start date in the past", func(t *testing.T) {
		p := validParams(t)
		p.StartDate = date(t, "2025-08-31")

		assert.ErrorContains(t, p.Validate(), "in the past")
	})

	t.Run("Start date today is allowed", func(t *testing.T) {
		p := validParams(t)
		p.StartDate = date(t, "2025-09-01")

		assert.NoError(t, p.Validate())
	})

	t.Run("Hour out of bounds", func(t *testing.T) {
		p := validParams(t)
		p.EndHour = 24

		assert.Error(t, p.Validate())
	})

	t.Run("End hour before start hour", func(t *testing.T) {
		p := validParams(t)
		p.StartHour = 12
		p.EndHour = 7

		assert.ErrorContains(t, p.Validate(), "after end hour")
	})

	t.Run("Player count out of bounds", func(t *testing.T) {
		p := validParams(t)
		p.Players = 5

		assert.Error(t, p.Validate())

		p.Players = 0
		assert.Error(t, p.Validate())
	})

	t.Run("No courses", func(t *testing.T) {
		p := validParams(t)
		p.CourseIDs = nil

		assert.Error(t, p.Validate())
	})
}

func TestGridEnumeration(t *testing.T) {
	t.Run("DateRange is inclusive on both ends", func(t *testing.T) {
		p := validParams(t)

		assert.Equal(t, []string{
			"2025-09-24", "2025-09-25", "2025-09-26", "2025-09-27",
			"2025-09-28", "2025-09-29", "2025-09-30",
		}, p.DateRange())
	})

	t.Run("Single-day range", func(t *testing.T) {
		p := validParams(t)
		p.EndDate = p.StartDate

		assert.Equal(t, []string{"2025-09-24"}, p.DateRange())
	})

	t.Run("TimeSlots are whole hours with zero padding", func(t *testing.T) {
		p := validParams(t)
		p.StartHour = 8
		p.EndHour = 11

		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, p.TimeSlots())
	})

	t.Run("GridSize multiplies out the cells", func(t *testing.T) {
		p := validParams(t)
		p.CourseIDs = []string{"a", "b", "c"}

		// 7 dates x 10 hours x 3 courses
		assert.Equal(t, 210, p.GridSize())
	})
}

func TestErrorKinds(t *testing.T) {
	t.Run("Fetch kinds are recoverable", func(t *testing.T) {
		transient := &Error{Kind: KindTransientFetch, Err: errors.New("x")}
		permanent := &Error{Kind: KindPermanentFetch, Err: errors.New("x")}
		validation := &Error{Kind: KindValidation, Err: errors.New("x")}

		assert.True(t, IsFetchError(transient))
		assert.True(t, IsFetchError(permanent))
		assert.False(t, IsFetchError(validation))
		assert.False(t, IsFetchError(errors.New("plain")))
	})

	t.Run("Cell coordinates appear in the message", func(t *testing.T) {
		err := &Error{Kind: KindTransientFetch, Date: "2025-09-24", Time: "07:00", CourseID: "south", Err: errors.New("boom")}

		msg := err.Error()
		assert.Contains(t, msg, "2025-09-24")
		assert.Contains(t, msg, "07:00")
		assert.Contains(t, msg, "south")
		assert.Contains(t, msg, "boom")
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &Error{Kind: KindOutput, Err: cause}

		assert.ErrorIs(t, err, cause)
	})
}
