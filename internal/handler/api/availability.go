package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "office-booking/internal/handler/dto/request"
	resdto "office-booking/internal/handler/dto/response"
	"office-booking/internal/handler/middleware"
	"office-booking/internal/usecase"
	"office-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary Office time slots
// @Description List free meeting-room slots across the whole office for a date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param officeId path string true "Office ID"
// @Param date query string true "Date (YYYY-MM-DD, office-local)"
// @Param duration query int false "Slot duration in minutes (default 30)"
// @Success 200 {object} resdto.TimeSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offices/{officeId}/time-slots [get]
func (h *AvailabilityHandler) OfficeTimeSlots(c *gin.Context) {
	officeID, ok := pathUUID(c, "officeId")
	if !ok {
		return
	}

	query, date, ok := bindTimeSlotsQuery(c)
	if !ok {
		return
	}

	slots, err := h.availability.OfficeTimeSlots(c.Request.Context(), officeID, date, query.Duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewTimeSlotsResponse(query.Date, query.Duration, slots))
}

// @Summary Room time slots
// @Description List free slots of one meeting room for a date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param officeId path string true "Office ID"
// @Param roomId path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD, office-local)"
// @Param duration query int false "Slot duration in minutes (default 30)"
// @Success 200 {object} resdto.TimeSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offices/{officeId}/rooms/{roomId}/time-slots [get]
func (h *AvailabilityHandler) RoomTimeSlots(c *gin.Context) {
	officeID, ok := pathUUID(c, "officeId")
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}

	query, date, ok := bindTimeSlotsQuery(c)
	if !ok {
		return
	}

	slots, err := h.availability.RoomTimeSlots(c.Request.Context(), officeID, roomID, date, query.Duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewTimeSlotsResponse(query.Date, query.Duration, slots))
}

// @Summary Free desks
// @Description List desks free on every one of the requested dates
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param officeId path string true "Office ID"
// @Param dates query []string true "Dates (YYYY-MM-DD, office-local)" collectionFormat(multi)
// @Success 200 {object} resdto.FreeDesksResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offices/{officeId}/free-desks [get]
func (h *AvailabilityHandler) FreeDesks(c *gin.Context) {
	officeID, ok := pathUUID(c, "officeId")
	if !ok {
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var query reqdto.FreeDesksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	dates, err := reqdto.ParseDates(query.Dates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availability.FreeDesks(c.Request.Context(), officeID, dates, identity.UserID, identity.Roles)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewFreeDesksResponse(query.Dates, slots))
}

func bindTimeSlotsQuery(c *gin.Context) (reqdto.TimeSlotsQuery, time.Time, bool) {
	var query reqdto.TimeSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return reqdto.TimeSlotsQuery{}, time.Time{}, false
	}

	date, err := reqdto.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return reqdto.TimeSlotsQuery{}, time.Time{}, false
	}
	return query, date, true
}

func respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrOfficeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Office not found",
		})
	case errors.Is(err, queries.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, queries.ErrRoomUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Room is not available for booking",
		})
	case errors.Is(err, queries.ErrWeekendDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date falls outside office working days",
		})
	case errors.Is(err, queries.ErrPastDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date is in the past",
		})
	case errors.Is(err, queries.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot duration",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func requireIdentity(c *gin.Context) (usecase.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		// Reachable only when the route is wired without RequireAuth.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return usecase.Identity{}, false
	}
	return identity, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}
