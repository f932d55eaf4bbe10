package api

import (
	"net/http"

	reqdto "salon-scheduler/internal/handler/dto/request"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves the staff console: direct bookings and the two review queues.
type StaffHandler struct {
	appointments  commands.AppointmentCommands
	cancellations commands.CancellationCommands
	proposals     commands.ProposalCommands
	requests      queries.RequestQueries
}

func NewStaffHandler(
	appointments commands.AppointmentCommands,
	cancellations commands.CancellationCommands,
	proposals commands.ProposalCommands,
	requests queries.RequestQueries,
) *StaffHandler {
	return &StaffHandler{
		appointments:  appointments,
		cancellations: cancellations,
		proposals:     proposals,
		requests:      requests,
	}
}

// @Summary Book walk-in
// @Description Book a confirmed appointment. The client is matched by phone or email and created when unknown.
// @Tags staff
// @Accept json
// @Produce json
// @Param request body reqdto.WalkInBookingRequest true "Walk-in booking"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/staff/appointments [post]
func (h *StaffHandler) BookWalkIn(c *gin.Context) {
	var req reqdto.WalkInBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.appointments.BookWalkIn(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/appointments/"+result.Appointment.ID.String())
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(result.Appointment))
}

// @Summary Reschedule appointment
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleRequest true "New service and/or time"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/staff/appointments/{id} [put]
func (h *StaffHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.appointments.Reschedule(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Remove an appointment directly, dropping any pending cancellation request for it
// @Tags staff
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/staff/appointments/{id} [delete]
func (h *StaffHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.appointments.Cancel(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List pending cancellations
// @Description Oldest request first
// @Tags staff
// @Produce json
// @Success 200 {array} resdto.CancellationRequestResponse
// @Router /api/staff/cancellations [get]
func (h *StaffHandler) ListCancellations(c *gin.Context) {
	views, err := h.requests.PendingCancellations(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellationRequestList(views))
}

// @Summary Approve cancellation
// @Tags staff
// @Param id path string true "Cancellation request ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/staff/cancellations/{id}/approve [post]
func (h *StaffHandler) ApproveCancellation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cancellations.Approve(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject cancellation
// @Tags staff
// @Param id path string true "Cancellation request ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/staff/cancellations/{id}/reject [post]
func (h *StaffHandler) RejectCancellation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cancellations.Reject(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List pending proposals
// @Description In submission order
// @Tags staff
// @Produce json
// @Success 200 {array} resdto.ProposalResponse
// @Router /api/staff/proposals [get]
func (h *StaffHandler) ListProposals(c *gin.Context) {
	views, err := h.requests.PendingProposals(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposalList(views))
}

// @Summary Approve proposal
// @Description Book the proposed slot as a confirmed appointment. On failure the proposal stays queued.
// @Tags staff
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/staff/proposals/{id}/approve [post]
func (h *StaffHandler) ApproveProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.proposals.Approve(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/appointments/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Reject proposal
// @Tags staff
// @Param id path string true "Proposal ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/staff/proposals/{id}/reject [post]
func (h *StaffHandler) RejectProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.proposals.Reject(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
