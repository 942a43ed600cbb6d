package sqldb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `-- name: CreateOrder :exec
INSERT INTO orders (id, buyer_id, offer_id, quantity, unit_price_snapshot, currency, status, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg Orders) error {
	_, err := db.Exec(ctx, createOrder,
		arg.ID,
		arg.BuyerID,
		arg.OfferID,
		arg.Quantity,
		arg.UnitPriceSnapshot,
		arg.Currency,
		arg.Status,
		arg.Notes,
		arg.CreatedAt,
	)
	return err
}

const listOrdersByBuyer = `-- name: ListOrdersByBuyer :many
SELECT o.id, o.buyer_id, o.offer_id, f.product_name, o.quantity, o.unit_price_snapshot,
       o.currency, o.status, o.notes, o.created_at
FROM orders o
JOIN offers f ON f.id = o.offer_id
WHERE o.buyer_id = $1
  AND ($2::timestamptz IS NULL OR (o.created_at, o.id) < ($2, $3::uuid))
ORDER BY o.created_at DESC, o.id DESC
LIMIT $4
`

type ListOrdersByBuyerParams struct {
	BuyerID       uuid.UUID
	LastCreatedAt pgtype.Timestamptz
	LastID        pgtype.UUID
	Limit         int32
}

type ListOrdersByBuyerRow struct {
	ID                uuid.UUID
	BuyerID           uuid.UUID
	OfferID           uuid.UUID
	ProductName       string
	Quantity          pgtype.Numeric
	UnitPriceSnapshot pgtype.Numeric
	Currency          string
	Status            string
	Notes             pgtype.Text
	CreatedAt         pgtype.Timestamptz
}

func (q *Queries) ListOrdersByBuyer(ctx context.Context, db DBTX, arg ListOrdersByBuyerParams) ([]ListOrdersByBuyerRow, error) {
	rows, err := db.Query(ctx, listOrdersByBuyer,
		arg.BuyerID,
		arg.LastCreatedAt,
		arg.LastID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOrdersByBuyerRow
	for rows.Next() {
		var i ListOrdersByBuyerRow
		if err := rows.Scan(
			&i.ID,
			&i.BuyerID,
			&i.OfferID,
			&i.ProductName,
			&i.Quantity,
			&i.UnitPriceSnapshot,
			&i.Currency,
			&i.Status,
			&i.Notes,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
