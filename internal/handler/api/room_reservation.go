package api

import (
	"errors"
	"net/http"

	"office-booking/internal/domain/booking"
	reqdto "office-booking/internal/handler/dto/request"
	resdto "office-booking/internal/handler/dto/response"
	"office-booking/internal/usecase/commands"
	"office-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomReservationHandler struct {
	reservationCommands commands.RoomReservationCommands
	bookings            queries.BookingQueries
}

func NewRoomReservationHandler(reservationCommands commands.RoomReservationCommands, bookings queries.BookingQueries) *RoomReservationHandler {
	return &RoomReservationHandler{
		reservationCommands: reservationCommands,
		bookings:            bookings,
	}
}

// @Summary Create room reservation
// @Description Reserve a meeting room for a time slot on a date
// @Tags room-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param officeId path string true "Office ID"
// @Param request body reqdto.CreateRoomReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateRoomReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offices/{officeId}/room-reservations [post]
func (h *RoomReservationHandler) CreateRoomReservation(c *gin.Context) {
	officeID, ok := pathUUID(c, "officeId")
	if !ok {
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(officeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	actor := commands.Actor{UserID: identity.UserID, Roles: identity.Roles, IsAdmin: identity.IsAdmin}
	result, err := h.reservationCommands.CreateRoomReservation(c.Request.Context(), params, actor)
	if err != nil {
		respondReservationCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateRoomReservationResult(result))
}

// @Summary List room reservations
// @Description List one room's reservations for a date
// @Tags room-reservations
// @Produce json
// @Security BearerAuth
// @Param officeId path string true "Office ID"
// @Param roomId path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD, office-local)"
// @Success 200 {array} resdto.RoomReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offices/{officeId}/rooms/{roomId}/reservations [get]
func (h *RoomReservationHandler) GetRoomReservations(c *gin.Context) {
	officeID, ok := pathUUID(c, "officeId")
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	date, err := reqdto.ParseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.bookings.RoomReservations(c.Request.Context(), officeID, roomID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOfficeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Office not found",
			})
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.RoomReservationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromRoomReservationView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update reservation status
// @Description Change a reservation's status; non-admins may only cancel their own confirmed reservations
// @Tags room-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /room-reservations/{id}/status [put]
func (h *RoomReservationHandler) UpdateReservationStatus(c *gin.Context) {
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor := commands.Actor{UserID: identity.UserID, Roles: identity.Roles, IsAdmin: identity.IsAdmin}
	err := h.reservationCommands.UpdateReservationStatus(c.Request.Context(), reservationID, booking.Status(req.Status), actor)
	if err != nil {
		respondReservationCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondReservationCommandError(c *gin.Context, err error) {
	var conflict *commands.RoomConflictError

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is already reserved for an overlapping slot",
			"conflict": gin.H{
				"room":      conflict.RoomName,
				"startDate": conflict.StartDate,
				"endDate":   conflict.EndDate,
			},
		})
	case errors.Is(err, commands.ErrOfficeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Office not found",
		})
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrRoomUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Room is not available for booking",
		})
	case errors.Is(err, commands.ErrWeekendDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date falls outside office working days",
		})
	case errors.Is(err, commands.ErrPastDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date is in the past",
		})
	case errors.Is(err, commands.ErrSlotInPast):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Time slot has already started",
		})
	case errors.Is(err, commands.ErrOutsideWorkingHours):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Time slot is outside room working hours",
		})
	case errors.Is(err, commands.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
	case errors.Is(err, commands.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking status",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to modify this booking",
		})
	case errors.Is(err, commands.ErrForbiddenTransition):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Status transition not permitted",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking conflict",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
