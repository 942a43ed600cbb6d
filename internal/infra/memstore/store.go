// Package memstore is the in-memory storage driver. Write transactions are
// serialized and staged, so a failed transaction leaves nothing behind.
package memstore

import (
	"bytes"
	"sync"
	"time"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/order"
	"producer-market/internal/domain/user"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type offerRecord struct {
	id         uuid.UUID
	producerID uuid.UUID
	fields     offer.Fields
	createdAt  time.Time
	updatedAt  time.Time
}

func (r offerRecord) toDomain() *offer.Offer {
	return offer.ReconstructOffer(r.id, r.producerID, r.fields, r.createdAt, r.updatedAt)
}

func offerRecordOf(o *offer.Offer) offerRecord {
	return offerRecord{
		id:         o.ID(),
		producerID: o.ProducerID(),
		fields:     o.Fields(),
		createdAt:  o.CreatedAt(),
		updatedAt:  o.UpdatedAt(),
	}
}

// negotiationRecord holds the mutable header apart from the ledger. Messages
// are immutable values and can be shared between snapshots.
type negotiationRecord struct {
	id          uuid.UUID
	offerID     uuid.UUID
	buyerID     uuid.UUID
	producerID  uuid.UUID
	status      negotiation.Status
	agreedPrice *negotiation.Price
	currency    string
	messages    []*negotiation.Message
	createdAt   time.Time
	updatedAt   time.Time
}

func (r negotiationRecord) toDomain() *negotiation.Negotiation {
	msgs := make([]*negotiation.Message, len(r.messages))
	copy(msgs, r.messages)
	return negotiation.ReconstructNegotiation(r.id, r.offerID, r.buyerID, r.producerID, r.status, r.agreedPrice, r.currency, msgs, r.createdAt, r.updatedAt)
}

func negotiationRecordOf(n *negotiation.Negotiation) negotiationRecord {
	return negotiationRecord{
		id:          n.ID(),
		offerID:     n.OfferID(),
		buyerID:     n.BuyerID(),
		producerID:  n.ProducerID(),
		status:      n.Status(),
		agreedPrice: n.AgreedPrice(),
		currency:    n.Currency(),
		messages:    n.Messages(),
		createdAt:   n.CreatedAt(),
		updatedAt:   n.UpdatedAt(),
	}
}

type Store struct {
	// txMu serializes write transactions; mu guards the maps.
	txMu sync.Mutex
	mu   sync.RWMutex

	users        map[uuid.UUID]*user.User
	usersByEmail map[string]uuid.UUID
	offers       map[uuid.UUID]offerRecord
	negotiations map[uuid.UUID]negotiationRecord
	orders       map[uuid.UUID]*order.Order
}

func New() *Store {
	return &Store{
		users:        make(map[uuid.UUID]*user.User),
		usersByEmail: make(map[string]uuid.UUID),
		offers:       make(map[uuid.UUID]offerRecord),
		negotiations: make(map[uuid.UUID]negotiationRecord),
		orders:       make(map[uuid.UUID]*order.Order),
	}
}

// newerFirst orders by (created_at desc, id desc), matching the postgres list queries.
func newerFirst(aTime time.Time, aID uuid.UUID, bTime time.Time, bID uuid.UUID) int {
	if c := bTime.Compare(aTime); c != 0 {
		return c
	}
	return bytes.Compare(bID[:], aID[:])
}

// beforeKeyset reports whether a row sorts strictly after the page position.
func beforeKeyset(t time.Time, id uuid.UUID, after *queries.Keyset) bool {
	if after == nil {
		return true
	}
	return newerFirst(after.CreatedAt, after.ID, t, id) < 0
}
