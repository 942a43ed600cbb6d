package api

import (
	"net/http"

	reqdto "producer-market/internal/handler/dto/request"
	resdto "producer-market/internal/handler/dto/response"
	"producer-market/internal/handler/httperr"
	"producer-market/internal/usecase/commands"
	"producer-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NegotiationHandler struct {
	cmds commands.NegotiationCommands
	q    queries.NegotiationQueries
}

func NewNegotiationHandler(cmds commands.NegotiationCommands, q queries.NegotiationQueries) *NegotiationHandler {
	return &NegotiationHandler{cmds: cmds, q: q}
}

// @Summary Open negotiation
// @Description Buyer opens a negotiation on an offer with a first price proposal
// @Tags negotiations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenNegotiationRequest true "Open negotiation request"
// @Success 201 {object} resdto.NegotiationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /negotiations [post]
func (h *NegotiationHandler) Open(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.OpenNegotiationRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Open(c.Request.Context(), p, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromNegotiationView(view))
}

// @Summary Post message
// @Description Append a message, counter offer or decision to a negotiation
// @Tags negotiations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Negotiation ID"
// @Param request body reqdto.PostMessageRequest true "Message"
// @Success 200 {object} resdto.NegotiationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /negotiations/{id}/messages [post]
func (h *NegotiationHandler) PostMessage(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.PostMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.PostMessage(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNegotiationView(view))
}

// @Summary Get negotiation
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Negotiation ID"
// @Success 200 {object} resdto.NegotiationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /negotiations/{id} [get]
func (h *NegotiationHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), id, p.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNegotiationView(view))
}

// @Summary Get negotiation for offer
// @Description The caller's open negotiation on the offer, else their most recent one
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param offer_id path string true "Offer ID"
// @Success 200 {object} resdto.NegotiationResponse
// @Failure 404 {object} httperr.Response
// @Router /negotiations/for-offer/{offer_id} [get]
func (h *NegotiationHandler) GetByOffer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	offerID, ok := uuidParam(c, "offer_id")
	if !ok {
		return
	}

	view, err := h.q.GetByOffer(c.Request.Context(), offerID, p.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNegotiationView(view))
}

// @Summary List my negotiations
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.NegotiationListResponse
// @Failure 400 {object} httperr.Response
// @Router /negotiations [get]
func (h *NegotiationHandler) ListMine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.q.ListMine(c.Request.Context(), p.ID, page.Cursor(), page.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNegotiationList(items, next))
}
