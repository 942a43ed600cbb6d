package negotiation

import "producer-market/internal/domain/user"

type Action int

const (
	ActionRead Action = iota
	ActionPost
	ActionChangeStatus
)

// Authorize is consulted before every operation on an existing negotiation.
func Authorize(p user.Principal, n *Negotiation, action Action) error {
	if !n.IsParticipant(p.ID) {
		return ErrNotParticipant
	}
	if action == ActionRead {
		return nil
	}
	if n.status.IsTerminal() {
		return ErrNegotiationClosed
	}
	if action == ActionChangeStatus && p.ID != n.producerID {
		return ErrOnlyProducerDecides
	}
	return nil
}

// CanOpen checks who may start a negotiation on an offer.
func CanOpen(p user.Principal, offer OfferRef) error {
	if p.ID == offer.ProducerID {
		return ErrOwnOffer
	}
	if p.Role != user.RoleBuyer {
		return ErrBuyerRoleRequired
	}
	if !offer.Active {
		return ErrOfferInactive
	}
	return nil
}
