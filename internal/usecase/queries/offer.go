package queries

//go:generate mockgen -source=$GOFILE -destination=../../mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"producer-market/internal/domain/offer"
	"producer-market/internal/infra"
	"producer-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPriceRange = errs.Mark(errs.New("min price must not exceed max price"), errs.ErrInvalidArgument)

type OfferView struct {
	ID              uuid.UUID
	ProducerID      uuid.UUID
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
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func FromOffer(o *offer.Offer) *OfferView {
	f := o.Fields()
	return &OfferView{
		ID:              o.ID(),
		ProducerID:      o.ProducerID(),
		ProductName:     f.ProductName,
		ProductCategory: f.ProductCategory,
		SKU:             f.SKU,
		Description:     f.Description,
		Quantity:        f.Quantity,
		UnitOfMeasure:   f.UnitOfMeasure,
		UnitPrice:       f.UnitPrice,
		Currency:        f.Currency,
		Location:        f.Location,
		Active:          f.Active,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// OfferFilters narrow the catalogue. Q matches product name or description
// as a substring; Category and Location match exactly, ignoring case.
type OfferFilters struct {
	Q          *string
	Category   *string
	Location   *string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Active     *bool
	ProducerID *uuid.UUID
}

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	List(ctx context.Context, filters OfferFilters, page Page) ([]*OfferView, error)
}

type OfferQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*OfferView, error)
	List(ctx context.Context, filters OfferFilters, cursor *Cursor, limit int) ([]*OfferView, *Cursor, error)
	ListByProducer(ctx context.Context, producerID uuid.UUID, cursor *Cursor, limit int) ([]*OfferView, *Cursor, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
}

func NewOfferQueries(store OfferReadStore) OfferQueries {
	return &offerQueriesImpl{store: store}
}

func (q *offerQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, offer.ErrOfferNotFound
		}
		return nil, err
	}
	return view, nil
}

// List defaults to active offers only; pass Active=false explicitly to browse the rest.
func (q *offerQueriesImpl) List(ctx context.Context, filters OfferFilters, cursor *Cursor, limit int) ([]*OfferView, *Cursor, error) {
	if filters.Active == nil {
		active := true
		filters.Active = &active
	}
	return q.list(ctx, filters, cursor, limit)
}

// ListByProducer includes inactive offers so producers can manage their whole catalogue.
func (q *offerQueriesImpl) ListByProducer(ctx context.Context, producerID uuid.UUID, cursor *Cursor, limit int) ([]*OfferView, *Cursor, error) {
	return q.list(ctx, OfferFilters{ProducerID: &producerID}, cursor, limit)
}

func (q *offerQueriesImpl) list(ctx context.Context, filters OfferFilters, cursor *Cursor, limit int) ([]*OfferView, *Cursor, error) {
	if filters.MinPrice != nil && filters.MaxPrice != nil && filters.MinPrice.GreaterThan(*filters.MaxPrice) {
		return nil, nil, ErrInvalidPriceRange
	}
	limit = ValidateLimit(limit)
	page, err := pageFor(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filters, page)
	if err != nil {
		return nil, nil, err
	}
	items, next := trimPage(rows, limit, func(o *OfferView) (time.Time, uuid.UUID) {
		return o.CreatedAt, o.ID
	})
	return items, next, nil
}
