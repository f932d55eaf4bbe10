package handler

import (
	"net/http"

	"salon-scheduler/internal/handler/api"
	reqdto "salon-scheduler/internal/handler/dto/request"
	"salon-scheduler/internal/handler/middleware"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Appointments *api.AppointmentHandler
	Proposals    *api.ProposalHandler
	Catalog      *api.CatalogHandler
	Staff        *api.StaffHandler
}

func NewHandlers(
	appointments *api.AppointmentHandler,
	proposals *api.ProposalHandler,
	catalog *api.CatalogHandler,
	staff *api.StaffHandler,
) Handlers {
	return Handlers{
		Appointments: appointments,
		Proposals:    proposals,
		Catalog:      catalog,
		Staff:        staff,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, m *metrics.Metrics, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, h, limiter, gatherer)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.HTTPMetrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	throttled := []gin.HandlerFunc{limiter.RateLimit()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/appointments", Handler: h.Appointments.Book, Mw: throttled},
			{Method: http.MethodGet, Path: "/appointments", Handler: h.Appointments.List},
			{Method: http.MethodGet, Path: "/appointments/:id", Handler: h.Appointments.Get},
			{Method: http.MethodPost, Path: "/appointments/:id/cancellation", Handler: h.Appointments.RequestCancellation, Mw: throttled},
			{Method: http.MethodPost, Path: "/proposals", Handler: h.Proposals.Submit, Mw: throttled},
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.Services},
			{Method: http.MethodGet, Path: "/clients", Handler: h.Catalog.Clients},
		})

		staff := apiGroup.Group("/staff")
		addRoutes(staff, []route{
			{Method: http.MethodPost, Path: "/appointments", Handler: h.Staff.BookWalkIn},
			{Method: http.MethodPut, Path: "/appointments/:id", Handler: h.Staff.Reschedule},
			{Method: http.MethodDelete, Path: "/appointments/:id", Handler: h.Staff.Cancel},
			{Method: http.MethodGet, Path: "/cancellations", Handler: h.Staff.ListCancellations},
			{Method: http.MethodPost, Path: "/cancellations/:id/approve", Handler: h.Staff.ApproveCancellation},
			{Method: http.MethodPost, Path: "/cancellations/:id/reject", Handler: h.Staff.RejectCancellation},
			{Method: http.MethodGet, Path: "/proposals", Handler: h.Staff.ListProposals},
			{Method: http.MethodPost, Path: "/proposals/:id/approve", Handler: h.Staff.ApproveProposal},
			{Method: http.MethodPost, Path: "/proposals/:id/reject", Handler: h.Staff.RejectProposal},
			{Method: http.MethodPatch, Path: "/clients/:id", Handler: h.Catalog.CorrectContact},
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
