package order

import (
	"strings"
	"time"

	"producer-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusNew       Status = "NEW"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

const MaxNotesLength = 1000

var (
	ErrInvalidQuantity   = errs.Mark(errs.New("order quantity must be greater than zero"), errs.ErrInvalidArgument)
	ErrQuantityTooLarge  = errs.Mark(errs.New("order quantity exceeds offered quantity"), errs.ErrInvalidArgument)
	ErrNotesTooLong      = errs.Mark(errs.New("notes must be at most 1000 characters"), errs.ErrInvalidArgument)
	ErrBuyerRoleRequired = errs.Mark(errs.New("only buyers can place orders"), errs.ErrForbidden)
)

// OfferSnapshot is the part of an offer an order freezes at placement time.
type OfferSnapshot struct {
	ID        uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Currency  string
}

type Order struct {
	id                uuid.UUID
	buyerID           uuid.UUID
	offerID           uuid.UUID
	quantity          decimal.Decimal
	unitPriceSnapshot decimal.Decimal
	currency          string
	status            Status
	notes             *string
	createdAt         time.Time
}

func Place(id, buyerID uuid.UUID, offer OfferSnapshot, quantity decimal.Decimal, notes *string, now time.Time) (*Order, error) {
	if !quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	if quantity.GreaterThan(offer.Quantity) {
		return nil, ErrQuantityTooLarge
	}
	if notes != nil {
		t := strings.TrimSpace(*notes)
		switch {
		case t == "":
			notes = nil
		case len([]rune(t)) > MaxNotesLength:
			return nil, ErrNotesTooLong
		default:
			notes = &t
		}
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Order{
		id:                id,
		buyerID:           buyerID,
		offerID:           offer.ID,
		quantity:          quantity,
		unitPriceSnapshot: offer.UnitPrice,
		currency:          offer.Currency,
		status:            StatusNew,
		notes:             notes,
		createdAt:         now,
	}, nil
}

func (o *Order) Total() decimal.Decimal {
	return o.quantity.Mul(o.unitPriceSnapshot)
}

func (o *Order) ID() uuid.UUID                      { return o.id }
func (o *Order) BuyerID() uuid.UUID                 { return o.buyerID }
func (o *Order) OfferID() uuid.UUID                 { return o.offerID }
func (o *Order) Quantity() decimal.Decimal          { return o.quantity }
func (o *Order) UnitPriceSnapshot() decimal.Decimal { return o.unitPriceSnapshot }
func (o *Order) Currency() string                   { return o.currency }
func (o *Order) Status() Status                     { return o.status }
func (o *Order) Notes() *string                     { return o.notes }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
