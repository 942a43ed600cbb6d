package response

import (
	"time"

	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID                uuid.UUID       `json:"id"`
	BuyerID           uuid.UUID       `json:"buyer_id"`
	OfferID           uuid.UUID       `json:"offer_id"`
	ProductName       string          `json:"product_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPriceSnapshot decimal.Decimal `json:"unit_price_snapshot"`
	Total             decimal.Decimal `json:"total"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	Notes             *string         `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
}

type OrderListResponse struct {
	Items      []*OrderResponse `json:"items"`
	NextCursor *string          `json:"next_cursor"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOrderList(views []*queries.OrderView, next *queries.Cursor) (*OrderListResponse, error) {
	items := make([]*OrderResponse, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return &OrderListResponse{Items: items, NextCursor: nextCursor(next)}, nil
}
