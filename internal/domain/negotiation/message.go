package negotiation

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Message is one immutable entry of a negotiation ledger. Seq starts at 1.
type Message struct {
	id            ulid.ULID
	seq           int
	negotiationID uuid.UUID
	senderID      uuid.UUID
	proposedPrice *Price
	text          *string
	statusUpdate  *Status
	createdAt     time.Time
}

func ReconstructMessage(id ulid.ULID, seq int, negotiationID, senderID uuid.UUID, proposedPrice *Price, text *string, statusUpdate *Status, createdAt time.Time) *Message {
	return &Message{
		id:            id,
		seq:           seq,
		negotiationID: negotiationID,
		senderID:      senderID,
		proposedPrice: proposedPrice,
		text:          text,
		statusUpdate:  statusUpdate,
		createdAt:     createdAt,
	}
}

func (m *Message) ID() ulid.ULID            { return m.id }
func (m *Message) Seq() int                 { return m.seq }
func (m *Message) NegotiationID() uuid.UUID { return m.negotiationID }
func (m *Message) SenderID() uuid.UUID      { return m.senderID }
func (m *Message) ProposedPrice() *Price    { return m.proposedPrice }
func (m *Message) Text() *string            { return m.text }
func (m *Message) StatusUpdate() *Status    { return m.statusUpdate }
func (m *Message) CreatedAt() time.Time     { return m.createdAt }
