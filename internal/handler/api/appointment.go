package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	reqdto "salon-scheduler/internal/handler/dto/request"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type AppointmentHandler struct {
	cmds    commands.AppointmentCommands
	cancels commands.CancellationCommands
	q       queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, cancels commands.CancellationCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, cancels: cancels, q: q}
}

// @Summary Book appointment
// @Description Book an unconfirmed appointment for a registered client. A repeated Idempotency-Key with the same body replays the original appointment.
// @Tags appointments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Success 200 {object} resdto.AppointmentResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}
	var req reqdto.BookAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), req.ToCommand(), key)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/appointments/"+result.Appointment.ID.String())
	c.JSON(status, resdto.FromAppointmentView(result.Appointment))
}

// @Summary List appointments
// @Description List appointments in chronological order; q filters by client name (case-insensitive substring)
// @Tags appointments
// @Produce json
// @Param q query string false "Client name filter"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 500 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var (
		views []*queries.AppointmentView
		err   error
	)
	if q, ok := c.GetQuery("q"); ok {
		views, err = h.q.Search(c.Request.Context(), strings.TrimSpace(q))
	} else {
		views, err = h.q.List(c.Request.Context())
	}
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentList(views))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Request cancellation
// @Description Ask staff to cancel an appointment. The appointment is locked until the request is decided.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RequestCancellationRequest false "Cancellation reason"
// @Success 201 {object} resdto.CancellationRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/cancellation [post]
func (h *AppointmentHandler) RequestCancellation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RequestCancellationRequest
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.cancels.Request(c.Request.Context(), id, req.Reason)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCancellationRequestView(view))
}

// idempotencyKey returns uuid.Nil when the header is absent.
func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
