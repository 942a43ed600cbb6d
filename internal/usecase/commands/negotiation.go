package commands

//go:generate mockgen -source=$GOFILE -destination=../../mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"time"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/user"
	"producer-market/internal/infra"
	"producer-market/internal/pkg/clock"
	"producer-market/internal/usecase/queries"
	"producer-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// MessageIDGenerator issues ledger ids that sort by creation time.
type MessageIDGenerator interface {
	New(t time.Time) ulid.ULID
}

type OpenNegotiationInput struct {
	OfferID       uuid.UUID
	ProposedPrice decimal.Decimal
	Message       *string
}

type PostMessageInput struct {
	ProposedPrice *decimal.Decimal
	Message       *string
	// StatusUpdate is passed through unparsed so that authorization failures win over a bad value.
	StatusUpdate *string
}

type NegotiationCommands interface {
	Open(ctx context.Context, principal user.Principal, in OpenNegotiationInput) (*queries.NegotiationView, error)
	PostMessage(ctx context.Context, principal user.Principal, negotiationID uuid.UUID, in PostMessageInput) (*queries.NegotiationView, error)
}

type negotiationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ids   MessageIDGenerator
}

func NewNegotiationCommands(uow shared.UnitOfWork, clk clock.Clock, ids MessageIDGenerator) NegotiationCommands {
	return &negotiationCommandsImpl{uow: uow, clock: clk, ids: ids}
}

func (uc *negotiationCommandsImpl) Open(ctx context.Context, principal user.Principal, in OpenNegotiationInput) (*queries.NegotiationView, error) {
	if _, err := negotiation.NewPrice(in.ProposedPrice); err != nil {
		return nil, err
	}

	var view *queries.NegotiationView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindByID(ctx, in.OfferID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return offer.ErrOfferNotFound
			}
			return err
		}

		now := uc.clock.Now()
		ref := negotiation.OfferRef{
			ID:         o.ID(),
			ProducerID: o.ProducerID(),
			Currency:   o.Currency(),
			Active:     o.Active(),
		}
		n, err := negotiation.Open(uuid.New(), uc.ids.New(now), principal, ref, in.ProposedPrice, in.Message, now)
		if err != nil {
			return err
		}

		exists, err := tx.Negotiations().ExistsOpen(ctx, o.ID(), principal.ID)
		if err != nil {
			return err
		}
		if exists {
			return negotiation.ErrOpenNegotiationExists
		}

		if err := tx.Negotiations().Create(ctx, n); err != nil {
			// a concurrent open slipped past the check above
			if infra.ConstraintName(err) == infra.ConstraintOpenNegotiation {
				return negotiation.ErrOpenNegotiationExists
			}
			return err
		}
		view = queries.FromNegotiation(n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *negotiationCommandsImpl) PostMessage(ctx context.Context, principal user.Principal, negotiationID uuid.UUID, in PostMessageInput) (*queries.NegotiationView, error) {
	draft := negotiation.Draft{
		ProposedPrice: in.ProposedPrice,
		Text:          in.Message,
	}
	if in.StatusUpdate != nil {
		s := negotiation.Status(*in.StatusUpdate)
		draft.StatusUpdate = &s
	}

	var view *queries.NegotiationView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Negotiations().FindByIDForUpdate(ctx, negotiationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return negotiation.ErrNegotiationNotFound
			}
			return err
		}

		now := uc.clock.Now()
		msg, err := n.Post(principal, uc.ids.New(now), draft, now)
		if err != nil {
			return err
		}
		if err := tx.Negotiations().AppendMessage(ctx, n, msg); err != nil {
			return err
		}
		view = queries.FromNegotiation(n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
