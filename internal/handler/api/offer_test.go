//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/user"
	"producer-market/internal/handler/api"
	resdto "producer-market/internal/handler/dto/response"
	"producer-market/internal/handler/middleware"
	commandsmock "producer-market/internal/mock/commands"
	queriesmock "producer-market/internal/mock/queries"
	"producer-market/internal/testutil/builder"
	"producer-market/internal/testutil/httptest"
	"producer-market/internal/testutil/testutil"
	"producer-market/internal/usecase/commands"
	"producer-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	producer     user.Principal
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	h := api.NewOfferHandler(s.mockCommands, s.mockQueries)
	s.producer = builder.NewUserBuilder().BuildPrincipal()

	auth := func(c *gin.Context) {
		middleware.SetPrincipal(c, s.producer)
		c.Next()
	}

	s.router.GET("/offers", h.List)
	s.router.GET("/offers/:id", h.Get)
	s.router.POST("/offers", auth, h.Create)
	s.router.PATCH("/offers/:id", auth, h.Update)
	s.router.GET("/producer/my-offers", auth, h.ListMine)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) TestCreate() {
	ob := builder.NewOfferBuilder().WithProducer(s.producer.ID)
	reqBody := ob.BuildCreateDTO()
	view := ob.BuildView()

	s.Run("success: 201 with snake_case body", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.producer, testutil.SameValue(reqBody.ToInput())).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers", reqBody, "")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Apples", response.ProductName)
		s.True(decimal.RequireFromString("3.5").Equal(response.UnitPrice))
		s.Equal("PLN", response.Currency)
		s.Contains(rec.Body.String(), `"unit_price":3.5`)
	})

	s.Run("success: trailing-zero price reaches the command unchanged in value", func() {
		scaled := builder.NewOfferBuilder().WithProducer(s.producer.ID).With(func(b *builder.OfferBuilder) {
			b.Fields.UnitPrice = decimal.RequireFromString("12.50")
		})
		body := scaled.BuildCreateDTO()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.producer, testutil.SameValue(body.ToInput())).
			DoAndReturn(func(_ context.Context, _ user.Principal, in commands.CreateOfferInput) (*queries.OfferView, error) {
				s.Equal("12.5", in.UnitPrice.String())
				return scaled.BuildView(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers", body, "")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on missing required fields", func() {
		for _, field := range []string{"product_name", "quantity", "unit_price", "location"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: domain validation surfaces as 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, offer.ErrInvalidCurrency).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "3-letter")
	})
}

func (s *OfferHandlerTestSuite) TestUpdate() {
	ob := builder.NewOfferBuilder()
	url := "/offers/" + ob.ID.String()

	s.Run("success: partial update", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.producer, ob.ID, gomock.Any()).Return(ob.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"active": false}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 403 for another producer", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.producer, ob.ID, gomock.Any()).Return(nil, offer.ErrNotOfferOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"unit_price": 4}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another producer")
	})
}

func (s *OfferHandlerTestSuite) TestGet() {
	ob := builder.NewOfferBuilder()

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), ob.ID).Return(nil, offer.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+ob.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "offer not found")
	})
}

func (s *OfferHandlerTestSuite) TestList() {
	view := builder.NewOfferBuilder().BuildView()

	s.Run("success: query parameters become filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Nil(), 10).
			DoAndReturn(func(_ any, f queries.OfferFilters, _ *queries.Cursor, _ int) ([]*queries.OfferView, *queries.Cursor, error) {
				s.Equal("apple", *f.Q)
				s.Equal("fruit", *f.Category)
				s.True(decimal.NewFromInt(2).Equal(*f.MinPrice))
				s.Nil(f.MaxPrice)
				s.Nil(f.Active)
				return []*queries.OfferView{view}, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?q=apple&category=fruit&min_price=2&limit=10", nil, "")

		var response resdto.OfferListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(view.ID, response.Items[0].ID)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 on a malformed price filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?min_price=cheap", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "decimal numbers")
	})

	s.Run("error: 400 on an inverted price range", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidPriceRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?min_price=9&max_price=1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "must not exceed")
	})
}

func (s *OfferHandlerTestSuite) TestListMine() {
	s.Run("success: scoped to the caller", func() {
		s.mockQueries.EXPECT().ListByProducer(gomock.Any(), s.producer.ID, gomock.Nil(), 0).
			Return([]*queries.OfferView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/producer/my-offers", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
	})
}
