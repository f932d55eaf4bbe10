package api

import (
	"net/http"

	reqdto "salon-scheduler/internal/handler/dto/request"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	cmds commands.ProposalCommands
}

func NewProposalHandler(cmds commands.ProposalCommands) *ProposalHandler {
	return &ProposalHandler{cmds: cmds}
}

// @Summary Submit proposal
// @Description Propose a preferred time for staff review. The slot is only checked when staff approve it.
// @Tags proposals
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitProposalRequest true "Proposal"
// @Success 201 {object} resdto.ProposalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/proposals [post]
func (h *ProposalHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.Submit(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProposalView(view))
}
