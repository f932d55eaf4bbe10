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

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/services [get]
func (h *CatalogHandler) Services(c *gin.Context) {
	views, err := h.q.Services(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceList(views))
}

// @Summary List clients
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Router /api/clients [get]
func (h *CatalogHandler) Clients(c *gin.Context) {
	views, err := h.q.Clients(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientList(views))
}

// @Summary Correct client contact
// @Description Fix a client's name, phone or email. Stored appointments and queued proposals pick up the change.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body reqdto.CorrectContactRequest true "Fields to change"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/staff/clients/{id} [patch]
func (h *CatalogHandler) CorrectContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CorrectContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.CorrectContact(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientView(*view))
}
