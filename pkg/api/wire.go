package api

import (
	"fmt"

	"github.com/horeilly/qdl-tee-times/pkg/models"
)

// Wire types decode with pointer fields so that a missing field is
// distinguishable from a zero value. The provider schema is small enough
// that presence checks by hand beat a reflection pass.

type wireSlot struct {
	Time      *string  `json:"time"`
	Price     *float64 `json:"price"`
	Players   *int     `json:"players"`
	StartNine *int     `json:"start_nine"`
}

type wireResponse struct {
	Name           *string    `json:"name"`
	Availabilities []wireSlot `json:"availabilities"`
}

// validate checks the decoded body against the provider schema and converts
// it to the domain response. A violation anywhere rejects the whole body;
// partially populated responses never escape the client.
func (w wireResponse) validate() (models.CourseAvailabilityResponse, error) {
	if w.Name == nil {
		return models.CourseAvailabilityResponse{}, fmt.Errorf("response missing course name")
	}
	resp := models.CourseAvailabilityResponse{
		Name:           *w.Name,
		Availabilities: make([]models.AvailabilitySlot, 0, len(w.Availabilities)),
	}
	for i, s := range w.Availabilities {
		switch {
		case s.Time == nil:
			return models.CourseAvailabilityResponse{}, fmt.Errorf("availability %d missing time", i)
		case s.Price == nil:
			return models.CourseAvailabilityResponse{}, fmt.Errorf("availability %d missing price", i)
		case *s.Price < 0:
			return models.CourseAvailabilityResponse{}, fmt.Errorf("availability %d has negative price %v", i, *s.Price)
		case s.Players == nil:
			return models.CourseAvailabilityResponse{}, fmt.Errorf("availability %d missing players", i)
		case s.StartNine == nil:
			return models.CourseAvailabilityResponse{}, fmt.Errorf("availability %d missing start_nine", i)
		}
		resp.Availabilities = append(resp.Availabilities, models.AvailabilitySlot{
			Time:      *s.Time,
			Price:     *s.Price,
			Players:   *s.Players,
			StartNine: *s.StartNine,
		})
	}
	return resp, nil
}
