package request

import (
	"office-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomReservationRequest struct {
	RoomID    uuid.UUID   `json:"room_id" binding:"required"`
	Date      string      `json:"date" binding:"required"`
	TimeSlot  string      `json:"time_slot" binding:"required"`
	Attendees []uuid.UUID `json:"attendees,omitempty"`
}

func (r CreateRoomReservationRequest) ToParams(officeID uuid.UUID) (commands.CreateRoomReservationParams, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return commands.CreateRoomReservationParams{}, err
	}
	return commands.CreateRoomReservationParams{
		OfficeID:  officeID,
		RoomID:    r.RoomID,
		Date:      date,
		TimeSlot:  r.TimeSlot,
		Attendees: r.Attendees,
	}, nil
}
