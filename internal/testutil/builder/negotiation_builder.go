//go:build unit || e2e

package builder

import (
	"time"

	reqdto "producer-market/internal/handler/dto/request"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// NegotiationBuilder produces views and requests for handler tests; domain
// tests open negotiations through negotiation.Open instead.
type NegotiationBuilder struct {
	ID            uuid.UUID
	OfferID       uuid.UUID
	BuyerID       uuid.UUID
	ProducerID    uuid.UUID
	Status        string
	ProposedPrice decimal.Decimal
	Message       *string
	CreatedAt     time.Time
}

func NewNegotiationBuilder() *NegotiationBuilder {
	msg := "Would you take 100?"
	return &NegotiationBuilder{
		ID:            uuid.New(),
		OfferID:       uuid.New(),
		BuyerID:       uuid.New(),
		ProducerID:    uuid.New(),
		Status:        "OPEN",
		ProposedPrice: decimal.NewFromInt(100),
		Message:       &msg,
		CreatedAt:     time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
	}
}

func (n *NegotiationBuilder) With(mutate func(*NegotiationBuilder)) *NegotiationBuilder {
	mutate(n)
	return n
}

func (n *NegotiationBuilder) BuildView() *queries.NegotiationView {
	price := n.ProposedPrice
	return &queries.NegotiationView{
		ID:         n.ID,
		OfferID:    n.OfferID,
		BuyerID:    n.BuyerID,
		ProducerID: n.ProducerID,
		Status:     n.Status,
		Currency:   "PLN",
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.CreatedAt,
		Messages: []queries.MessageView{{
			ID:            ulid.MustNew(ulid.Timestamp(n.CreatedAt), ulid.DefaultEntropy()).String(),
			Seq:           1,
			NegotiationID: n.ID,
			SenderID:      n.BuyerID,
			ProposedPrice: &price,
			Message:       n.Message,
			CreatedAt:     n.CreatedAt,
		}},
	}
}

func (n *NegotiationBuilder) BuildOpenDTO() reqdto.OpenNegotiationRequest {
	price := n.ProposedPrice
	return reqdto.OpenNegotiationRequest{
		OfferID:       n.OfferID,
		ProposedPrice: &price,
		Message:       n.Message,
	}
}
