package queries

//go:generate mockgen -source=$GOFILE -destination=../../mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/infra"
	"producer-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoNegotiationForOffer = errs.Mark(errs.New("no negotiation for this offer"), errs.ErrNotFound)

type NegotiationView struct {
	ID          uuid.UUID
	OfferID     uuid.UUID
	BuyerID     uuid.UUID
	ProducerID  uuid.UUID
	Status      string
	AgreedPrice *decimal.Decimal
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Messages    []MessageView
}

type MessageView struct {
	ID            string
	Seq           int
	NegotiationID uuid.UUID
	SenderID      uuid.UUID
	ProposedPrice *decimal.Decimal
	Message       *string
	StatusUpdate  *string
	CreatedAt     time.Time
}

// LastProposedPrice is the current ask, used by clients to seed a counter offer.
func (v *NegotiationView) LastProposedPrice() *decimal.Decimal {
	for i := len(v.Messages) - 1; i >= 0; i-- {
		if v.Messages[i].ProposedPrice != nil {
			return v.Messages[i].ProposedPrice
		}
	}
	return nil
}

func (v *NegotiationView) isParticipant(userID uuid.UUID) bool {
	return userID == v.BuyerID || userID == v.ProducerID
}

type NegotiationListItem struct {
	ID                uuid.UUID
	OfferID           uuid.UUID
	ProductName       string
	BuyerID           uuid.UUID
	ProducerID        uuid.UUID
	Status            string
	AgreedPrice       *decimal.Decimal
	LastProposedPrice *decimal.Decimal
	Currency          string
	MessageCount      int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FromNegotiation renders the aggregate as written by a command, so callers
// get the committed state without a second read.
func FromNegotiation(n *negotiation.Negotiation) *NegotiationView {
	view := &NegotiationView{
		ID:         n.ID(),
		OfferID:    n.OfferID(),
		BuyerID:    n.BuyerID(),
		ProducerID: n.ProducerID(),
		Status:     n.Status().String(),
		Currency:   n.Currency(),
		CreatedAt:  n.CreatedAt(),
		UpdatedAt:  n.UpdatedAt(),
	}
	if p := n.AgreedPrice(); p != nil {
		d := p.Decimal()
		view.AgreedPrice = &d
	}
	msgs := n.Messages()
	view.Messages = make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		mv := MessageView{
			ID:            m.ID().String(),
			Seq:           m.Seq(),
			NegotiationID: m.NegotiationID(),
			SenderID:      m.SenderID(),
			Message:       m.Text(),
			CreatedAt:     m.CreatedAt(),
		}
		if p := m.ProposedPrice(); p != nil {
			d := p.Decimal()
			mv.ProposedPrice = &d
		}
		if s := m.StatusUpdate(); s != nil {
			str := s.String()
			mv.StatusUpdate = &str
		}
		view.Messages = append(view.Messages, mv)
	}
	return view
}

type NegotiationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*NegotiationView, error)
	// FindForOffer returns the participant's OPEN negotiation on the offer, else the most recent one.
	FindForOffer(ctx context.Context, offerID, participantID uuid.UUID) (*NegotiationView, error)
	ListByParticipant(ctx context.Context, participantID uuid.UUID, page Page) ([]*NegotiationListItem, error)
}

type NegotiationQueries interface {
	Get(ctx context.Context, id, requesterID uuid.UUID) (*NegotiationView, error)
	GetByOffer(ctx context.Context, offerID, requesterID uuid.UUID) (*NegotiationView, error)
	ListMine(ctx context.Context, requesterID uuid.UUID, cursor *Cursor, limit int) ([]*NegotiationListItem, *Cursor, error)
}

type negotiationQueriesImpl struct {
	store NegotiationReadStore
}

func NewNegotiationQueries(store NegotiationReadStore) NegotiationQueries {
	return &negotiationQueriesImpl{store: store}
}

func (q *negotiationQueriesImpl) Get(ctx context.Context, id, requesterID uuid.UUID) (*NegotiationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, negotiation.ErrNegotiationNotFound
		}
		return nil, err
	}
	if !view.isParticipant(requesterID) {
		return nil, negotiation.ErrNotParticipant
	}
	return view, nil
}

func (q *negotiationQueriesImpl) GetByOffer(ctx context.Context, offerID, requesterID uuid.UUID) (*NegotiationView, error) {
	view, err := q.store.FindForOffer(ctx, offerID, requesterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoNegotiationForOffer
		}
		return nil, err
	}
	return view, nil
}

func (q *negotiationQueriesImpl) ListMine(ctx context.Context, requesterID uuid.UUID, cursor *Cursor, limit int) ([]*NegotiationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageFor(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByParticipant(ctx, requesterID, page)
	if err != nil {
		return nil, nil, err
	}
	items, next := trimPage(rows, limit, func(it *NegotiationListItem) (time.Time, uuid.UUID) {
		return it.CreatedAt, it.ID
	})
	return items, next, nil
}
