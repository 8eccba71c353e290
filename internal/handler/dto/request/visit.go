package request

import (
	"encoding/json"
	"time"

	"office-booking/internal/domain/booking"
	"office-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type VisitSelectionRequest struct {
	AreaID uuid.UUID `json:"area_id" binding:"required"`
	DeskID uuid.UUID `json:"desk_id" binding:"required"`
	Dates  []string  `json:"dates" binding:"required,min=1"`
}

type CreateVisitsRequest struct {
	Status     string                  `json:"status,omitempty"`
	Metadata   json.RawMessage         `json:"metadata,omitempty"`
	Selections []VisitSelectionRequest `json:"bookings" binding:"required,min=1,dive"`
}

func (r CreateVisitsRequest) ToParams(officeID uuid.UUID) (commands.CreateVisitsParams, error) {
	selections := make([]commands.VisitSelection, len(r.Selections))
	for i, sel := range r.Selections {
		dates, err := ParseDates(sel.Dates)
		if err != nil {
			return commands.CreateVisitsParams{}, err
		}
		selections[i] = commands.VisitSelection{
			AreaID: sel.AreaID,
			DeskID: sel.DeskID,
			Dates:  dates,
		}
	}
	return commands.CreateVisitsParams{
		OfficeID:   officeID,
		Status:     booking.Status(r.Status),
		Metadata:   r.Metadata,
		Selections: selections,
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func ParseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, len(raw))
	for i, s := range raw {
		date, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		dates[i] = date
	}
	return dates, nil
}
