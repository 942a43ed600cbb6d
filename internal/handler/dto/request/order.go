package request

import (
	"producer-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	OfferID  uuid.UUID        `json:"offer_id" binding:"required"`
	Quantity *decimal.Decimal `json:"quantity" binding:"required"`
	Notes    *string          `json:"notes,omitempty"`
}

func (r *PlaceOrderRequest) ToInput() commands.PlaceOrderInput {
	return commands.PlaceOrderInput{OfferID: r.OfferID, Quantity: *r.Quantity, Notes: r.Notes}
}
