package readstore

import (
	"context"

	"producer-market/internal/infra"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/pgconv"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	ListOrdersByBuyer(ctx context.Context, db sqldb.DBTX, arg sqldb.ListOrdersByBuyerParams) ([]sqldb.ListOrdersByBuyerRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqldb.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqldb.DBTX) *OrderReadStore {
	return &OrderReadStore{queries: queries, db: db}
}

func (r *OrderReadStore) ListByBuyer(ctx context.Context, buyerID uuid.UUID, page queries.Page) ([]*queries.OrderView, error) {
	lastCreatedAt, lastID := keysetParams(page.After)
	rows, err := r.queries.ListOrdersByBuyer(ctx, r.db, sqldb.ListOrdersByBuyerParams{
		BuyerID:       buyerID,
		LastCreatedAt: lastCreatedAt,
		LastID:        lastID,
		Limit:         page.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	items := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		quantity, err := pgconv.DecimalFromNumeric(row.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode order quantity", err)
		}
		unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPriceSnapshot)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode order price", err)
		}
		items = append(items, &queries.OrderView{
			ID:                row.ID,
			BuyerID:           row.BuyerID,
			OfferID:           row.OfferID,
			ProductName:       row.ProductName,
			Quantity:          quantity,
			UnitPriceSnapshot: unitPrice,
			Total:             quantity.Mul(unitPrice),
			Currency:          row.Currency,
			Status:            row.Status,
			Notes:             pgconv.StringPtrFromPgtype(row.Notes),
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}
