package response

import (
	"office-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeSlotsResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

func NewTimeSlotsResponse(date string, durationMinutes int, slots []string) *TimeSlotsResponse {
	if slots == nil {
		slots = []string{}
	}
	return &TimeSlotsResponse{
		Date:            date,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}
}

type DeskSlotResponse struct {
	AreaID uuid.UUID `json:"areaId"`
	DeskID uuid.UUID `json:"deskId"`
}

type FreeDesksResponse struct {
	Dates []string           `json:"dates"`
	Desks []DeskSlotResponse `json:"desks"`
}

func NewFreeDesksResponse(dates []string, slots []queries.DeskSlot) *FreeDesksResponse {
	desks := make([]DeskSlotResponse, len(slots))
	for i, slot := range slots {
		desks[i] = DeskSlotResponse{AreaID: slot.AreaID, DeskID: slot.DeskID}
	}
	return &FreeDesksResponse{Dates: dates, Desks: desks}
}
