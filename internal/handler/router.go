package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"office-booking/internal/handler/api"
	"office-booking/internal/handler/middleware"
	"office-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	visitHandler *api.VisitHandler,
	reservationHandler *api.RoomReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, visitHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	visitHandler *api.VisitHandler,
	reservationHandler *api.RoomReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		offices := apiGroup.Group("/offices/:officeId")
		{
			addRoutes(offices, []route{
				{Method: http.MethodGet, Path: "/time-slots", Handler: availabilityHandler.OfficeTimeSlots},
				{Method: http.MethodGet, Path: "/rooms/:roomId/time-slots", Handler: availabilityHandler.RoomTimeSlots},
				{Method: http.MethodGet, Path: "/rooms/:roomId/reservations", Handler: reservationHandler.GetRoomReservations},
				{Method: http.MethodGet, Path: "/free-desks", Handler: availabilityHandler.FreeDesks},
				{Method: http.MethodPost, Path: "/visits", Handler: visitHandler.CreateVisits},
				{Method: http.MethodPost, Path: "/room-reservations", Handler: reservationHandler.CreateRoomReservation},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/visits", Handler: visitHandler.GetUserVisits},
			{Method: http.MethodPut, Path: "/visits/:id/status", Handler: visitHandler.UpdateVisitStatus},
			{Method: http.MethodPut, Path: "/room-reservations/:id/status", Handler: reservationHandler.UpdateReservationStatus},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
