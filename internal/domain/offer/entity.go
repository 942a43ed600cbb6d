package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fields is the editable part of an offer.
type Fields struct {
	ProductName     string
	ProductCategory string
	SKU             *string
	Description     *string
	Quantity        decimal.Decimal
	UnitOfMeasure   string
	UnitPrice       decimal.Decimal
	Currency        string
	Location        string
	Active          bool
}

type Offer struct {
	id         uuid.UUID
	producerID uuid.UUID
	fields     Fields
	createdAt  time.Time
	updatedAt  time.Time
}

func NewOffer(id, producerID uuid.UUID, f Fields, now time.Time) (*Offer, error) {
	valid, err := validate(f)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Offer{
		id:         id,
		producerID: producerID,
		fields:     valid,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructOffer(id, producerID uuid.UUID, f Fields, createdAt, updatedAt time.Time) *Offer {
	return &Offer{id: id, producerID: producerID, fields: f, createdAt: createdAt, updatedAt: updatedAt}
}

// Update replaces the editable fields; the offer is unchanged on error.
func (o *Offer) Update(f Fields, now time.Time) error {
	valid, err := validate(f)
	if err != nil {
		return err
	}
	o.fields = valid
	o.updatedAt = now
	return nil
}

func validate(f Fields) (Fields, error) {
	var err error
	if f.ProductName, err = boundedText(f.ProductName, 1, 200, ErrInvalidProductName); err != nil {
		return Fields{}, err
	}
	if f.ProductCategory, err = boundedText(f.ProductCategory, 1, 100, ErrInvalidCategory); err != nil {
		return Fields{}, err
	}
	if f.SKU, err = optionalText(f.SKU, 100, ErrInvalidSKU); err != nil {
		return Fields{}, err
	}
	if f.Description, err = optionalText(f.Description, 5000, ErrDescriptionTooLong); err != nil {
		return Fields{}, err
	}
	if f.Quantity, err = positive(f.Quantity, ErrInvalidQuantity); err != nil {
		return Fields{}, err
	}
	if f.UnitOfMeasure, err = boundedText(f.UnitOfMeasure, 1, 20, ErrInvalidUnit); err != nil {
		return Fields{}, err
	}
	if f.UnitPrice, err = positive(f.UnitPrice, ErrInvalidUnitPrice); err != nil {
		return Fields{}, err
	}
	if f.Currency, err = normalizeCurrency(f.Currency); err != nil {
		return Fields{}, err
	}
	if f.Location, err = boundedText(f.Location, 1, 200, ErrInvalidLocation); err != nil {
		return Fields{}, err
	}
	return f, nil
}

func (o *Offer) IsOwnedBy(userID uuid.UUID) bool { return o.producerID == userID }

func (o *Offer) ID() uuid.UUID              { return o.id }
func (o *Offer) ProducerID() uuid.UUID      { return o.producerID }
func (o *Offer) Fields() Fields             { return o.fields }
func (o *Offer) ProductName() string        { return o.fields.ProductName }
func (o *Offer) ProductCategory() string    { return o.fields.ProductCategory }
func (o *Offer) SKU() *string               { return o.fields.SKU }
func (o *Offer) Description() *string       { return o.fields.Description }
func (o *Offer) Quantity() decimal.Decimal  { return o.fields.Quantity }
func (o *Offer) UnitOfMeasure() string      { return o.fields.UnitOfMeasure }
func (o *Offer) UnitPrice() decimal.Decimal { return o.fields.UnitPrice }
func (o *Offer) Currency() string           { return o.fields.Currency }
func (o *Offer) Location() string           { return o.fields.Location }
func (o *Offer) Active() bool               { return o.fields.Active }
func (o *Offer) CreatedAt() time.Time       { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time       { return o.updatedAt }
