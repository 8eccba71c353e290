package response

import (
	"encoding/json"
	"time"

	"office-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type VisitResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	OfficeID  uuid.UUID       `json:"officeId"`
	AreaID    uuid.UUID       `json:"areaId"`
	DeskID    uuid.UUID       `json:"deskId"`
	Date      string          `json:"date"`
	Status    string          `json:"status"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type CreateVisitsResponse struct {
	VisitIDs []uuid.UUID `json:"visitIds"`
}

func FromVisitView(rm *queries.VisitView) *VisitResponse {
	return &VisitResponse{
		ID:        rm.ID,
		UserID:    rm.UserID,
		OfficeID:  rm.OfficeID,
		AreaID:    rm.AreaID,
		DeskID:    rm.DeskID,
		Date:      rm.Date.Format("2006-01-02"),
		Status:    rm.Status,
		Metadata:  rm.Metadata,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}
