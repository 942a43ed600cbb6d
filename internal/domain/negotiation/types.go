package negotiation

import (
	"producer-market/internal/pkg/errs"
)

type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// NewStatusUpdate accepts only the terminal statuses a message may request.
func NewStatusUpdate(s string) (Status, error) {
	status := Status(s)
	if !status.IsTerminal() {
		return "", ErrInvalidStatusUpdate
	}
	return status, nil
}

var (
	ErrInvalidStatus       = errs.Mark(errs.New("invalid negotiation status"), errs.ErrInvalidArgument)
	ErrInvalidStatusUpdate = errs.Mark(errs.New("status_update must be ACCEPTED or REJECTED"), errs.ErrInvalidArgument)
	ErrNonPositivePrice    = errs.Mark(errs.New("proposed_price must be greater than zero"), errs.ErrInvalidArgument)
	ErrEmptyMessage        = errs.Mark(errs.New("message must carry a proposed_price, text or status_update"), errs.ErrInvalidArgument)
	ErrMessageTooLong      = errs.Mark(errs.New("message exceeds maximum length"), errs.ErrInvalidArgument)

	ErrNotParticipant      = errs.Mark(errs.New("only the buyer or the producer of this negotiation may access it"), errs.ErrForbidden)
	ErrOnlyProducerDecides = errs.Mark(errs.New("only the producer can accept or reject a negotiation"), errs.ErrForbidden)
	ErrOwnOffer            = errs.Mark(errs.New("producer cannot negotiate on own offer"), errs.ErrForbidden)
	ErrBuyerRoleRequired   = errs.Mark(errs.New("only buyers can open negotiations"), errs.ErrForbidden)

	ErrNegotiationClosed     = errs.Mark(errs.New("negotiation is closed"), errs.ErrConflict)
	ErrOfferInactive         = errs.Mark(errs.New("offer is not active"), errs.ErrConflict)
	ErrOpenNegotiationExists = errs.Mark(errs.New("an open negotiation already exists for this offer"), errs.ErrConflict)

	ErrNegotiationNotFound = errs.Mark(errs.New("negotiation not found"), errs.ErrNotFound)

	// open always seeds a price, so this means a corrupted ledger.
	ErrNoProposedPrice = errs.New("no proposed price in negotiation history")
)
