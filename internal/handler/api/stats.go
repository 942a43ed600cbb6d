package api

import (
	"net/http"

	resdto "producer-market/internal/handler/dto/response"
	"producer-market/internal/handler/httperr"
	"producer-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Marketplace overview
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.OverviewResponse
// @Router /stats/overview [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	o, err := h.q.Overview(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverview(o))
}
