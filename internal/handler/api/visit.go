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

type VisitHandler struct {
	visitCommands commands.VisitCommands
	bookings      queries.BookingQueries
}

func NewVisitHandler(visitCommands commands.VisitCommands, bookings queries.BookingQueries) *VisitHandler {
	return &VisitHandler{
		visitCommands: visitCommands,
		bookings:      bookings,
	}
}

// @Summary Create desk visits
// @Description Book one or more desks for one or more dates as a single atomic batch
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param officeId path string true "Office ID"
// @Param request body reqdto.CreateVisitsRequest true "Visit batch"
// @Success 201 {object} resdto.CreateVisitsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offices/{officeId}/visits [post]
func (h *VisitHandler) CreateVisits(c *gin.Context) {
	officeID, ok := pathUUID(c, "officeId")
	if !ok {
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req reqdto.CreateVisitsRequest
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
	result, err := h.visitCommands.CreateVisits(c.Request.Context(), params, actor)
	if err != nil {
		respondVisitCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &resdto.CreateVisitsResponse{VisitIDs: result.VisitIDs})
}

// @Summary List own visits
// @Description List the caller's desk visits from today onward
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VisitResponse
// @Failure 401 {object} map[string]string
// @Router /visits [get]
func (h *VisitHandler) GetUserVisits(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	views, err := h.bookings.UserVisits(c.Request.Context(), identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.VisitResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromVisitView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update visit status
// @Description Change a visit's status; non-admins may only cancel their own confirmed visits
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /visits/{id}/status [put]
func (h *VisitHandler) UpdateVisitStatus(c *gin.Context) {
	visitID, ok := pathUUID(c, "id")
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
	err := h.visitCommands.UpdateVisitStatus(c.Request.Context(), visitID, booking.Status(req.Status), actor)
	if err != nil {
		respondVisitCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondVisitCommandError(c *gin.Context, err error) {
	var conflict *commands.VisitConflictError

	switch {
	case errors.As(err, &conflict):
		items := make([]gin.H, len(conflict.Items))
		for i, item := range conflict.Items {
			items[i] = gin.H{
				"area": item.AreaName,
				"desk": item.DeskName,
				"date": item.Date.Format("2006-01-02"),
			}
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Requested desks are already booked",
			"conflicts": items,
		})
	case errors.Is(err, commands.ErrOfficeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Office not found",
		})
	case errors.Is(err, commands.ErrAreaNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Area not found",
		})
	case errors.Is(err, commands.ErrDeskNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Desk not found",
		})
	case errors.Is(err, commands.ErrVisitNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Visit not found",
		})
	case errors.Is(err, commands.ErrAreaUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Area is not available for booking",
		})
	case errors.Is(err, commands.ErrDeskNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Desk is not permitted for this user",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to modify this booking",
		})
	case errors.Is(err, commands.ErrForbiddenTransition):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Status transition not permitted",
		})
	case errors.Is(err, commands.ErrWeekendDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date falls outside office working days",
		})
	case errors.Is(err, commands.ErrPastDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date is in the past",
		})
	case errors.Is(err, commands.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking status",
		})
	case errors.Is(err, commands.ErrEmptyBatch):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking request contains no visits",
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
