package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"producer-market/internal/domain/user"
	"producer-market/internal/handler/api"
	"producer-market/internal/handler/middleware"
	"producer-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers so the router signature stays stable as resources are added.
type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Negotiation *api.NegotiationHandler
	Offer       *api.OfferHandler
	Order       *api.OrderHandler
	Stats       *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	producerOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRole(user.RoleProducer)}
	buyerOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRole(user.RoleBuyer)}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/health", healthCheck)

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		offers := apiGroup.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Offer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offer.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Offer.Create, Mw: producerOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Offer.Update, Mw: producerOnly},
			})
		}

		addRoutes(apiGroup.Group("/producer"), []route{
			{Method: http.MethodGet, Path: "/my-offers", Handler: h.Offer.ListMine, Mw: producerOnly},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Order.Place, Mw: buyerOnly},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Order.ListMine, Mw: buyerOnly},
		})

		negotiations := apiGroup.Group("/negotiations")
		negotiations.Use(requireAuth)
		{
			addRoutes(negotiations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Negotiation.Open},
				{Method: http.MethodGet, Path: "", Handler: h.Negotiation.ListMine},
				{Method: http.MethodGet, Path: "/for-offer/:offer_id", Handler: h.Negotiation.GetByOffer},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Negotiation.Get},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Negotiation.PostMessage},
			})
		}

		addRoutes(apiGroup.Group("/stats"), []route{
			{Method: http.MethodGet, Path: "/overview", Handler: h.Stats.Overview},
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
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw[:len(r.Mw):len(r.Mw)], r.Handler)...)
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
