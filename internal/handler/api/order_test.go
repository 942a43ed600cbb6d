//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/order"
	"producer-market/internal/domain/user"
	"producer-market/internal/handler/api"
	resdto "producer-market/internal/handler/dto/response"
	"producer-market/internal/handler/middleware"
	commandsmock "producer-market/internal/mock/commands"
	queriesmock "producer-market/internal/mock/queries"
	"producer-market/internal/testutil/builder"
	"producer-market/internal/testutil/httptest"
	"producer-market/internal/usecase/commands"
	"producer-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	mockStats    *queriesmock.MockStatsQueries
	buyer        user.Principal
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockStats = queriesmock.NewMockStatsQueries(s.mockCtrl)
	h := api.NewOrderHandler(s.mockCommands, s.mockQueries)
	stats := api.NewStatsHandler(s.mockStats)
	s.buyer = builder.NewUserBuilder().AsBuyer().BuildPrincipal()

	auth := func(c *gin.Context) {
		middleware.SetPrincipal(c, s.buyer)
		c.Next()
	}

	s.router.POST("/orders", auth, h.Place)
	s.router.GET("/orders/mine", auth, h.ListMine)
	s.router.GET("/stats/overview", stats.Overview)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) orderView() *queries.OrderView {
	return &queries.OrderView{
		ID:                uuid.New(),
		BuyerID:           s.buyer.ID,
		OfferID:           uuid.New(),
		ProductName:       "Apples",
		Quantity:          decimal.NewFromInt(20),
		UnitPriceSnapshot: decimal.RequireFromString("3.5"),
		Total:             decimal.NewFromInt(70),
		Currency:          "PLN",
		Status:            "NEW",
		CreatedAt:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (s *OrderHandlerTestSuite) TestPlace() {
	offerID := uuid.New()
	body := map[string]any{"offer_id": offerID, "quantity": 20, "notes": "pickup friday"}

	s.Run("success: 201 with price snapshot", func() {
		view := s.orderView()
		s.mockCommands.EXPECT().Place(gomock.Any(), s.buyer, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ user.Principal, in commands.PlaceOrderInput) (*queries.OrderView, error) {
				s.Equal(offerID, in.OfferID)
				s.True(decimal.NewFromInt(20).Equal(in.Quantity))
				s.Require().NotNil(in.Notes)
				s.Equal("pickup friday", *in.Notes)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", body, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.True(decimal.NewFromInt(70).Equal(response.Total))
		s.True(decimal.RequireFromString("3.5").Equal(response.UnitPriceSnapshot))
		s.Equal("NEW", response.Status)
	})

	s.Run("missing quantity is a bad request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"offer_id": offerID}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	errCases := []struct {
		name   string
		err    error
		status int
	}{
		{"quantity above offer", order.ErrQuantityTooLarge, http.StatusBadRequest},
		{"producer cannot order", order.ErrBuyerRoleRequired, http.StatusForbidden},
		{"unknown offer", offer.ErrOfferNotFound, http.StatusNotFound},
		{"unexpected failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Place(gomock.Any(), s.buyer, gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", body, "")

			httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
		})
	}
}

func (s *OrderHandlerTestSuite) TestListMine() {
	s.Run("returns items with next cursor", func() {
		view := s.orderView()
		next := &queries.Cursor{After: queries.EncodeAfterCursor(view.CreatedAt, view.ID)}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.buyer.ID, nil, 1).
			Return([]*queries.OrderView{view}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/mine?limit=1", nil, "")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(view.ID, response.Items[0].ID)
		s.Require().NotNil(response.NextCursor)
		s.Equal(next.After, *response.NextCursor)
	})

	s.Run("invalid cursor is a bad request", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.buyer.ID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/mine?after=garbage", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *OrderHandlerTestSuite) TestStatsOverview() {
	s.mockStats.EXPECT().Overview(gomock.Any()).
		Return(&queries.Overview{ActiveOffers: 14, Producers: 1, Buyers: 2}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats/overview", nil, "")

	var response resdto.OverviewResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(resdto.OverviewResponse{ActiveOffers: 14, Producers: 1, Buyers: 2}, response)
}
