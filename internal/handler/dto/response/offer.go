package response

import (
	"time"

	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OfferResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProducerID      uuid.UUID       `json:"producer_id"`
	ProductName     string          `json:"product_name"`
	ProductCategory string          `json:"product_category"`
	SKU             *string         `json:"sku"`
	Description     *string         `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitOfMeasure   string          `json:"unit_of_measure"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Currency        string          `json:"currency"`
	Location        string          `json:"location"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OfferListResponse struct {
	Items      []*OfferResponse `json:"items"`
	NextCursor *string          `json:"next_cursor"`
}

func FromOfferView(v *queries.OfferView) (*OfferResponse, error) {
	var resp OfferResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOfferList(views []*queries.OfferView, next *queries.Cursor) (*OfferListResponse, error) {
	items := make([]*OfferResponse, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return &OfferListResponse{Items: items, NextCursor: nextCursor(next)}, nil
}
