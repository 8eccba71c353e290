package response

import (
	"time"

	"office-booking/internal/usecase/commands"
	"office-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReservationResponse struct {
	ID        uuid.UUID   `json:"id"`
	OfficeID  uuid.UUID   `json:"officeId"`
	RoomID    uuid.UUID   `json:"roomId"`
	CreatorID uuid.UUID   `json:"creatorId"`
	StartDate time.Time   `json:"startDate"`
	EndDate   time.Time   `json:"endDate"`
	Status    string      `json:"status"`
	Attendees []uuid.UUID `json:"attendees,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type CreateRoomReservationResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
}

func FromRoomReservationView(rm *queries.RoomReservationView) *RoomReservationResponse {
	return &RoomReservationResponse{
		ID:        rm.ID,
		OfficeID:  rm.OfficeID,
		RoomID:    rm.RoomID,
		CreatorID: rm.CreatorID,
		StartDate: rm.StartDate,
		EndDate:   rm.EndDate,
		Status:    rm.Status,
		Attendees: rm.Attendees,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromCreateRoomReservationResult(result *commands.CreateRoomReservationResult) *CreateRoomReservationResponse {
	return &CreateRoomReservationResponse{
		ReservationID: result.ReservationID,
		Status:        string(result.Status),
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
	}
}
