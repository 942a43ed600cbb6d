//go:build unit || e2e

package builder

import (
	"time"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/domain/offer"
	reqdto "producer-market/internal/handler/dto/request"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID         uuid.UUID
	ProducerID uuid.UUID
	Fields     offer.Fields
	CreatedAt  time.Time
}

func NewOfferBuilder() *OfferBuilder {
	desc := "Fresh, hand-picked"
	return &OfferBuilder{
		ID:         uuid.New(),
		ProducerID: uuid.New(),
		Fields: offer.Fields{
			ProductName:     "Apples",
			ProductCategory: "fruit",
			Description:     &desc,
			Quantity:        decimal.NewFromInt(500),
			UnitOfMeasure:   "kg",
			UnitPrice:       decimal.RequireFromString("3.5"),
			Currency:        offer.DefaultCurrency,
			Location:        "Lublin",
			Active:          true,
		},
		CreatedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (o *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(o)
	return o
}

func (o *OfferBuilder) WithProducer(id uuid.UUID) *OfferBuilder {
	o.ProducerID = id
	return o
}

func (o *OfferBuilder) Inactive() *OfferBuilder {
	o.Fields.Active = false
	return o
}

func (o *OfferBuilder) BuildDomain() *offer.Offer {
	return offer.ReconstructOffer(o.ID, o.ProducerID, o.Fields, o.CreatedAt, o.CreatedAt)
}

func (o *OfferBuilder) BuildRef() negotiation.OfferRef {
	return negotiation.OfferRef{
		ID:         o.ID,
		ProducerID: o.ProducerID,
		Currency:   o.Fields.Currency,
		Active:     o.Fields.Active,
	}
}

func (o *OfferBuilder) BuildView() *queries.OfferView {
	return queries.FromOffer(o.BuildDomain())
}

func (o *OfferBuilder) BuildCreateDTO() reqdto.CreateOfferRequest {
	qty := o.Fields.Quantity
	price := o.Fields.UnitPrice
	return reqdto.CreateOfferRequest{
		ProductName:     o.Fields.ProductName,
		ProductCategory: o.Fields.ProductCategory,
		SKU:             o.Fields.SKU,
		Description:     o.Fields.Description,
		Quantity:        &qty,
		UnitOfMeasure:   o.Fields.UnitOfMeasure,
		UnitPrice:       &price,
		Location:        o.Fields.Location,
	}
}
