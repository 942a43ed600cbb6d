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

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Create offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), p, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.writeOffer(c, http.StatusCreated, view)
}

// @Summary Update offer
// @Description Partial update; only the owning producer may change an offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Changed fields"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [patch]
func (h *OfferHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.writeOffer(c, http.StatusOK, view)
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.writeOffer(c, http.StatusOK, view)
}

// @Summary List offers
// @Description Public catalogue, newest first
// @Tags offers
// @Produce json
// @Param q query string false "Search in product name and description"
// @Param category query string false "Category"
// @Param location query string false "Location"
// @Param min_price query number false "Minimum unit price"
// @Param max_price query number false "Maximum unit price"
// @Param active query bool false "Active offers only (default true)"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.OfferListResponse
// @Failure 400 {object} httperr.Response
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	var query reqdto.ListOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	views, next, err := h.q.List(c.Request.Context(), filters, query.Cursor(), query.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.writeOfferList(c, views, next)
}

// @Summary List my offers
// @Description The calling producer's offers, including inactive ones
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.OfferListResponse
// @Router /producer/my-offers [get]
func (h *OfferHandler) ListMine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, next, err := h.q.ListByProducer(c.Request.Context(), p.ID, page.Cursor(), page.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.writeOfferList(c, views, next)
}

func (h *OfferHandler) writeOffer(c *gin.Context, status int, view *queries.OfferView) {
	resp, err := resdto.FromOfferView(view)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, resp)
}

func (h *OfferHandler) writeOfferList(c *gin.Context, views []*queries.OfferView, next *queries.Cursor) {
	resp, err := resdto.FromOfferList(views, next)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
