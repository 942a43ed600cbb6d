package negotiation

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"producer-market/internal/domain/user"
)

// Negotiation is a two-party price discussion on one offer. Messages are
// append-only and the status leaves OPEN at most once.
type Negotiation struct {
	id          uuid.UUID
	offerID     uuid.UUID
	buyerID     uuid.UUID
	producerID  uuid.UUID
	status      Status
	agreedPrice *Price
	currency    string
	messages    []*Message
	createdAt   time.Time
	updatedAt   time.Time
}

// Open starts a negotiation; the buyer's opening proposal becomes message #1.
func Open(id uuid.UUID, msgID ulid.ULID, buyer user.Principal, offer OfferRef, proposedPrice decimal.Decimal, text *string, now time.Time) (*Negotiation, error) {
	price, err := NewPrice(proposedPrice)
	if err != nil {
		return nil, err
	}
	text, err = NewText(text)
	if err != nil {
		return nil, err
	}
	if err := CanOpen(buyer, offer); err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	n := &Negotiation{
		id:         id,
		offerID:    offer.ID,
		buyerID:    buyer.ID,
		producerID: offer.ProducerID,
		status:     StatusOpen,
		currency:   offer.Currency,
		createdAt:  now,
		updatedAt:  now,
	}
	n.messages = []*Message{{
		id:            msgID,
		seq:           1,
		negotiationID: id,
		senderID:      buyer.ID,
		proposedPrice: &price,
		text:          text,
		createdAt:     now,
	}}
	return n, nil
}

func ReconstructNegotiation(id, offerID, buyerID, producerID uuid.UUID, status Status, agreedPrice *Price, currency string, messages []*Message, createdAt, updatedAt time.Time) *Negotiation {
	return &Negotiation{
		id:          id,
		offerID:     offerID,
		buyerID:     buyerID,
		producerID:  producerID,
		status:      status,
		agreedPrice: agreedPrice,
		currency:    currency,
		messages:    messages,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Post appends a message from a participant and applies its status update.
// Nothing is mutated when an error is returned.
func (n *Negotiation) Post(sender user.Principal, msgID ulid.ULID, draft Draft, now time.Time) (*Message, error) {
	if err := Authorize(sender, n, ActionPost); err != nil {
		return nil, err
	}
	if draft.StatusUpdate != nil {
		if err := Authorize(sender, n, ActionChangeStatus); err != nil {
			return nil, err
		}
		if !draft.StatusUpdate.IsTerminal() {
			return nil, ErrInvalidStatusUpdate
		}
	}

	price, err := NewOptionalPrice(draft.ProposedPrice)
	if err != nil {
		return nil, err
	}
	text, err := NewText(draft.Text)
	if err != nil {
		return nil, err
	}
	if price == nil && text == nil && draft.StatusUpdate == nil {
		return nil, ErrEmptyMessage
	}

	var agreed *Price
	if draft.StatusUpdate != nil && *draft.StatusUpdate == StatusAccepted {
		eff, err := EffectivePrice(n.messages, price)
		if err != nil {
			return nil, err
		}
		agreed = &eff
	}

	var statusUpdate *Status
	if draft.StatusUpdate != nil {
		s := *draft.StatusUpdate
		statusUpdate = &s
	}

	msg := &Message{
		id:            msgID,
		seq:           n.LastSeq() + 1,
		negotiationID: n.id,
		senderID:      sender.ID,
		proposedPrice: price,
		text:          text,
		statusUpdate:  statusUpdate,
		createdAt:     now,
	}
	n.messages = append(n.messages, msg)
	if statusUpdate != nil {
		n.status = *statusUpdate
		n.agreedPrice = agreed
	}
	n.updatedAt = now
	return msg, nil
}

// EffectivePrice is the candidate when present, else the latest proposed
// price in ledger order.
func EffectivePrice(messages []*Message, candidate *Price) (Price, error) {
	if candidate != nil {
		return *candidate, nil
	}
	var (
		latest *Price
		seq    int
	)
	for _, m := range messages {
		if m.proposedPrice != nil && m.seq >= seq {
			latest = m.proposedPrice
			seq = m.seq
		}
	}
	if latest == nil {
		return Price{}, ErrNoProposedPrice
	}
	return *latest, nil
}

func (n *Negotiation) IsParticipant(userID uuid.UUID) bool {
	return userID == n.buyerID || userID == n.producerID
}

func (n *Negotiation) LastSeq() int {
	if len(n.messages) == 0 {
		return 0
	}
	return n.messages[len(n.messages)-1].seq
}

// LastMessage is the chronologically final ledger entry.
func (n *Negotiation) LastMessage() *Message {
	if len(n.messages) == 0 {
		return nil
	}
	return n.messages[len(n.messages)-1]
}

func (n *Negotiation) ID() uuid.UUID         { return n.id }
func (n *Negotiation) OfferID() uuid.UUID    { return n.offerID }
func (n *Negotiation) BuyerID() uuid.UUID    { return n.buyerID }
func (n *Negotiation) ProducerID() uuid.UUID { return n.producerID }
func (n *Negotiation) Status() Status        { return n.status }
func (n *Negotiation) AgreedPrice() *Price   { return n.agreedPrice }
func (n *Negotiation) Currency() string      { return n.currency }
func (n *Negotiation) CreatedAt() time.Time  { return n.createdAt }
func (n *Negotiation) UpdatedAt() time.Time  { return n.updatedAt }

// Messages returns a copy of the ledger slice; entries themselves are immutable.
func (n *Negotiation) Messages() []*Message {
	out := make([]*Message, len(n.messages))
	copy(out, n.messages)
	return out
}
