package request

import (
	"producer-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OpenNegotiationRequest struct {
	OfferID       uuid.UUID        `json:"offer_id" binding:"required"`
	ProposedPrice *decimal.Decimal `json:"proposed_price" binding:"required"`
	Message       *string          `json:"message,omitempty"`
}

func (r *OpenNegotiationRequest) ToInput() commands.OpenNegotiationInput {
	return commands.OpenNegotiationInput{
		OfferID:       r.OfferID,
		ProposedPrice: *r.ProposedPrice,
		Message:       r.Message,
	}
}

// PostMessageRequest needs at least one field; the domain rejects an empty message.
type PostMessageRequest struct {
	Message       *string          `json:"message,omitempty"`
	ProposedPrice *decimal.Decimal `json:"proposed_price,omitempty"`
	StatusUpdate  *string          `json:"status_update,omitempty"`
}

func (r *PostMessageRequest) ToInput() commands.PostMessageInput {
	return commands.PostMessageInput{
		ProposedPrice: r.ProposedPrice,
		Message:       r.Message,
		StatusUpdate:  r.StatusUpdate,
	}
}
