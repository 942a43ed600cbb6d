package repository

import (
	"context"

	"producer-market/internal/domain/order"
	"producer-market/internal/infra"
	"producer-market/internal/infra/repository/converter"
	"producer-market/internal/infra/sqldb"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqldb.DBTX, arg sqldb.Orders) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqldb.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqldb.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, r.db, converter.OrderToRow(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}
