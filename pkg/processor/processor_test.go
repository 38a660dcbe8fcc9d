package processor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeilly/qdl-tee-times/pkg/models"
)

func slot(t string, price float64, players, startNine int) models.AvailabilitySlot {
	return models.AvailabilitySlot{Time: t, Price: price, Players: players, StartNine: startNine}
}

func TestFormat(t *testing.T) {
	t.Run("Every slot produces exactly one record", func(t *testing.T) {
		resp := models.CourseAvailabilityResponse{
			Name: "Sul",
			Availabilities: []models.AvailabilitySlot{
				slot("07:00", 50, 2, 1),
				slot("07:10", 55, 4, 2),
				slot("07:20", 60, 1, 99),
			},
		}

		records := Format(resp, "2025-09-24")

		require.Len(t, records, 3, "one record per slot")
		for i, r := range records {
			assert.Equal(t, "2025-09-24", r.Date)
			assert.Equal(t, resp.Availabilities[i].Time, r.Time)
			assert.Equal(t, "South Course", r.Course, "Sul should map to its display name")
		}
	})

	t.Run("Starting nine maps to starting hole", func(t *testing.T) {
		resp := models.CourseAvailabilityResponse{
			Name: "Norte",
			Availabilities: []models.AvailabilitySlot{
				slot("08:00", 40, 2, 1),
				slot("08:00", 40, 2, 2),
				slot("08:00", 40, 2, 0),  // unknown value falls back to the front nine
				slot("08:00", 40, 2, -7), // so does anything else
			},
		}

		records := Format(resp, "2025-09-24")

		require.Len(t, records, 4)
		assert.Equal(t, 1, records[0].StartHole)
		assert.Equal(t, 10, records[1].StartHole)
		assert.Equal(t, 1, records[2].StartHole)
		assert.Equal(t, 1, records[3].StartHole)
	})

	t.Run("Unknown course name passes through unchanged", func(t *testing.T) {
		resp := models.CourseAvailabilityResponse{
			Name:           "Campo Novo",
			Availabilities: []models.AvailabilitySlot{slot("09:00", 70, 3, 1)},
		}

		records := Format(resp, "2025-09-24")

		require.Len(t, records, 1)
		assert.Equal(t, "Campo Novo", records[0].Course)
	})

	t.Run("Empty availabilities contribute zero records", func(t *testing.T) {
		resp := models.CourseAvailabilityResponse{Name: "Sul"}

		records := Format(resp, "2025-09-24")

		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}

func rec(date, tm, course string, price float64, players, hole int) models.TeeTimeRecord {
	return models.TeeTimeRecord{Date: date, Time: tm, Course: course, Price: price, Players: players, StartHole: hole}
}

func TestFinalize(t *testing.T) {
	t.Run("Removes exact duplicates only", func(t *testing.T) {
		a := rec("2025-09-24", "07:00", "South Course", 50, 2, 1)
		b := a // exact duplicate
		c := a
		c.Price = 51 // differs in one field, must survive

		out := Finalize([]models.TeeTimeRecord{a, b, c})

		require.Len(t, out, 2)
		assert.Contains(t, out, a)
		assert.Contains(t, out, c)
	})

	t.Run("Sorts by date, time, course", func(t *testing.T) {
		in := []models.TeeTimeRecord{
			rec("2025-09-25", "07:00", "Laranjal", 40, 2, 1),
			rec("2025-09-24", "09:00", "South Course", 50, 2, 1),
			rec("2025-09-24", "07:00", "South Course", 50, 2, 1),
			rec("2025-09-24", "07:00", "North Course", 45, 2, 1),
		}

		out := Finalize(in)

		require.Len(t, out, 4)
		for i := 1; i < len(out); i++ {
			prev := out[i-1].Date + out[i-1].Time + out[i-1].Course
			cur := out[i].Date + out[i].Time + out[i].Course
			assert.LessOrEqual(t, prev, cur, "output must be non-decreasing by (date, time, course)")
		}
	})

	t.Run("Ties on the sort keys keep accumulation order", func(t *testing.T) {
		// Same (date, time, course), different price: both survive dedupe
		// and the stable sort must not swap them.
		expensive := rec("2025-09-24", "07:00", "South Course", 80, 2, 1)
		cheap := rec("2025-09-24", "07:00", "South Course", 50, 2, 1)
		earlier := rec("2025-09-24", "06:00", "South Course", 40, 2, 1)

		out := Finalize([]models.TeeTimeRecord{expensive, cheap, earlier})

		require.Len(t, out, 3)
		assert.Equal(t, []models.TeeTimeRecord{earlier, expensive, cheap}, out)
	})

	t.Run("Idempotent", func(t *testing.T) {
		in := []models.TeeTimeRecord{
			rec("2025-09-25", "07:00", "Laranjal", 40, 2, 1),
			rec("2025-09-24", "07:00", "South Course", 50, 2, 1),
			rec("2025-09-24", "07:00", "South Course", 50, 2, 1),
		}

		once := Finalize(in)
		twice := Finalize(once)

		assert.Equal(t, once, twice)
	})

	t.Run("Order independent", func(t *testing.T) {
		in := []models.TeeTimeRecord{
			rec("2025-09-24", "07:00", "South Course", 50, 2, 1),
			rec("2025-09-24", "08:00", "South Course", 55, 2, 1),
			rec("2025-09-25", "07:00", "North Course", 45, 4, 10),
			rec("2025-09-24", "07:00", "Laranjal", 60, 1, 1),
		}
		want := Finalize(in)

		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 10; i++ {
			shuffled := make([]models.TeeTimeRecord, len(in))
			copy(shuffled, in)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

			assert.Equal(t, want, Finalize(shuffled))
		}
	})

	t.Run("Empty input yields empty non-nil output", func(t *testing.T) {
		out := Finalize(nil)

		require.NotNil(t, out)
		assert.Empty(t, out)
	})
}
