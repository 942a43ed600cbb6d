package negotiation

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxMessageLength = 2000

type Price struct {
	value decimal.Decimal
}

func NewPrice(d decimal.Decimal) (Price, error) {
	if !d.IsPositive() {
		return Price{}, ErrNonPositivePrice
	}
	return Price{value: d}, nil
}

func NewOptionalPrice(d *decimal.Decimal) (*Price, error) {
	if d == nil {
		return nil, nil
	}
	p, err := NewPrice(*d)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (p Price) Decimal() decimal.Decimal { return p.value }
func (p Price) String() string           { return p.value.String() }
func (p Price) Equal(o Price) bool       { return p.value.Equal(o.value) }

// NewText trims the input; blank text is treated as absent.
func NewText(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}
	return &t, nil
}

// OfferRef is what the engine needs to know about an offer.
type OfferRef struct {
	ID         uuid.UUID
	ProducerID uuid.UUID
	Currency   string
	Active     bool
}

// Draft is the caller's input for a new message.
type Draft struct {
	ProposedPrice *decimal.Decimal
	Text          *string
	StatusUpdate  *Status
}
