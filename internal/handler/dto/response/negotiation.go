package response

import (
	"time"

	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MessageResponse struct {
	ID            string           `json:"id"`
	Seq           int              `json:"seq"`
	NegotiationID uuid.UUID        `json:"negotiation_id"`
	SenderID      uuid.UUID        `json:"sender_id"`
	ProposedPrice *decimal.Decimal `json:"proposed_price"`
	Message       *string          `json:"message"`
	StatusUpdate  *string          `json:"status_update"`
	CreatedAt     time.Time        `json:"created_at"`
}

type NegotiationResponse struct {
	ID          uuid.UUID         `json:"id"`
	OfferID     uuid.UUID         `json:"offer_id"`
	BuyerID     uuid.UUID         `json:"buyer_id"`
	ProducerID  uuid.UUID         `json:"producer_id"`
	Status      string            `json:"status"`
	AgreedPrice *decimal.Decimal  `json:"agreed_price"`
	Currency    string            `json:"currency"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Messages    []MessageResponse `json:"messages"`
}

type NegotiationSummaryResponse struct {
	ID                uuid.UUID        `json:"id"`
	OfferID           uuid.UUID        `json:"offer_id"`
	ProductName       string           `json:"product_name"`
	BuyerID           uuid.UUID        `json:"buyer_id"`
	ProducerID        uuid.UUID        `json:"producer_id"`
	Status            string           `json:"status"`
	AgreedPrice       *decimal.Decimal `json:"agreed_price"`
	LastProposedPrice *decimal.Decimal `json:"last_proposed_price"`
	Currency          string           `json:"currency"`
	MessageCount      int              `json:"message_count"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type NegotiationListResponse struct {
	Items      []*NegotiationSummaryResponse `json:"items"`
	NextCursor *string                       `json:"next_cursor"`
}

func FromNegotiationView(v *queries.NegotiationView) *NegotiationResponse {
	resp := &NegotiationResponse{
		ID:          v.ID,
		OfferID:     v.OfferID,
		BuyerID:     v.BuyerID,
		ProducerID:  v.ProducerID,
		Status:      v.Status,
		AgreedPrice: v.AgreedPrice,
		Currency:    v.Currency,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		Messages:    make([]MessageResponse, len(v.Messages)),
	}
	for i, m := range v.Messages {
		resp.Messages[i] = MessageResponse{
			ID:            m.ID,
			Seq:           m.Seq,
			NegotiationID: m.NegotiationID,
			SenderID:      m.SenderID,
			ProposedPrice: m.ProposedPrice,
			Message:       m.Message,
			StatusUpdate:  m.StatusUpdate,
			CreatedAt:     m.CreatedAt,
		}
	}
	return resp
}

func FromNegotiationList(items []*queries.NegotiationListItem, next *queries.Cursor) *NegotiationListResponse {
	resp := &NegotiationListResponse{
		Items:      make([]*NegotiationSummaryResponse, len(items)),
		NextCursor: nextCursor(next),
	}
	for i, it := range items {
		resp.Items[i] = &NegotiationSummaryResponse{
			ID:                it.ID,
			OfferID:           it.OfferID,
			ProductName:       it.ProductName,
			BuyerID:           it.BuyerID,
			ProducerID:        it.ProducerID,
			Status:            it.Status,
			AgreedPrice:       it.AgreedPrice,
			LastProposedPrice: it.LastProposedPrice,
			Currency:          it.Currency,
			MessageCount:      it.MessageCount,
			CreatedAt:         it.CreatedAt,
			UpdatedAt:         it.UpdatedAt,
		}
	}
	return resp
}

func nextCursor(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	s := c.After
	return &s
}
