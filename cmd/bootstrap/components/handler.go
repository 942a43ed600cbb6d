package components

import (
	"producer-market/internal/handler"
	"producer-market/internal/handler/api"
	"producer-market/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewEngine,
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewNegotiationHandler,
		api.NewOrderHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewEngine() *gin.Engine {
	return gin.New()
}
