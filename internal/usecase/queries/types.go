package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// VisitView represents read-optimized desk visit data
type VisitView struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	OfficeID  uuid.UUID       `json:"office_id"`
	AreaID    uuid.UUID       `json:"area_id"`
	DeskID    uuid.UUID       `json:"desk_id"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RoomReservationView represents read-optimized room reservation data
type RoomReservationView struct {
	ID        uuid.UUID   `json:"id"`
	OfficeID  uuid.UUID   `json:"office_id"`
	RoomID    uuid.UUID   `json:"room_id"`
	CreatorID uuid.UUID   `json:"creator_id"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Status    string      `json:"status"`
	Attendees []uuid.UUID `json:"attendees,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// DeskSlot identifies one free desk for the requested dates
type DeskSlot struct {
	AreaID uuid.UUID `json:"area_id"`
	DeskID uuid.UUID `json:"desk_id"`
}
