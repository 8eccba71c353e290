package booking

// Status is shared by desk visits and room reservations. Pending and
// confirmed bookings both occupy their resource; cancelled ones do not.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsOccupying() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransition encodes the status matrix: a non-admin actor may only cancel
// a confirmed booking; every other transition needs admin privilege.
func (s Status) CanTransition(to Status, isAdmin bool) bool {
	if !to.IsValid() {
		return false
	}
	if isAdmin {
		return s != to
	}
	return s == StatusConfirmed && to == StatusCancelled
}
