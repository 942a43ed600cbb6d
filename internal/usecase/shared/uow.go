package shared

import (
	"context"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/order"
	"producer-market/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once and must not leak state between attempts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Negotiations() NegotiationRepository
	Offers() OfferRepository
	Orders() OrderRepository
	Users() UserRepository
}

type NegotiationRepository interface {
	// Create stores a new negotiation together with its opening message.
	Create(ctx context.Context, n *negotiation.Negotiation) error
	// FindByIDForUpdate locks the negotiation until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*negotiation.Negotiation, error)
	ExistsOpen(ctx context.Context, offerID, buyerID uuid.UUID) (bool, error)
	// AppendMessage stores msg and the negotiation's current status and agreed price.
	AppendMessage(ctx context.Context, n *negotiation.Negotiation, msg *negotiation.Message) error
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	Update(ctx context.Context, o *offer.Offer) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}
