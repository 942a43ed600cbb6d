package queries

//go:generate mockgen -source=$GOFILE -destination=../../mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderView struct {
	ID                uuid.UUID
	BuyerID           uuid.UUID
	OfferID           uuid.UUID
	ProductName       string
	Quantity          decimal.Decimal
	UnitPriceSnapshot decimal.Decimal
	Total             decimal.Decimal
	Currency          string
	Status            string
	Notes             *string
	CreatedAt         time.Time
}

type OrderReadStore interface {
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, page Page) ([]*OrderView, error)
}

type OrderQueries interface {
	ListMine(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageFor(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByBuyer(ctx, buyerID, page)
	if err != nil {
		return nil, nil, err
	}
	items, next := trimPage(rows, limit, func(o *OrderView) (time.Time, uuid.UUID) {
		return o.CreatedAt, o.ID
	})
	return items, next, nil
}
