package sqldb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const offerColumns = `id, producer_id, product_name, product_category, sku, description,
       quantity, unit_of_measure, unit_price, currency, location, active, created_at, updated_at`

func scanOffer(row interface{ Scan(...any) error }) (Offers, error) {
	var i Offers
	err := row.Scan(
		&i.ID,
		&i.ProducerID,
		&i.ProductName,
		&i.ProductCategory,
		&i.Sku,
		&i.Description,
		&i.Quantity,
		&i.UnitOfMeasure,
		&i.UnitPrice,
		&i.Currency,
		&i.Location,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createOffer = `-- name: CreateOffer :exec
INSERT INTO offers (
    id, producer_id, product_name, product_category, sku, description,
    quantity, unit_of_measure, unit_price, currency, location, active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

func (q *Queries) CreateOffer(ctx context.Context, db DBTX, arg Offers) error {
	_, err := db.Exec(ctx, createOffer,
		arg.ID,
		arg.ProducerID,
		arg.ProductName,
		arg.ProductCategory,
		arg.Sku,
		arg.Description,
		arg.Quantity,
		arg.UnitOfMeasure,
		arg.UnitPrice,
		arg.Currency,
		arg.Location,
		arg.Active,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateOffer = `-- name: UpdateOffer :execrows
UPDATE offers
SET product_name = $2,
    product_category = $3,
    sku = $4,
    description = $5,
    quantity = $6,
    unit_of_measure = $7,
    unit_price = $8,
    currency = $9,
    location = $10,
    active = $11,
    updated_at = $12
WHERE id = $1
`

func (q *Queries) UpdateOffer(ctx context.Context, db DBTX, arg Offers) (int64, error) {
	result, err := db.Exec(ctx, updateOffer,
		arg.ID,
		arg.ProductName,
		arg.ProductCategory,
		arg.Sku,
		arg.Description,
		arg.Quantity,
		arg.UnitOfMeasure,
		arg.UnitPrice,
		arg.Currency,
		arg.Location,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findOfferByID = `-- name: FindOfferByID :one
SELECT ` + offerColumns + `
FROM offers
WHERE id = $1
`

func (q *Queries) FindOfferByID(ctx context.Context, db DBTX, id uuid.UUID) (Offers, error) {
	return scanOffer(db.QueryRow(ctx, findOfferByID, id))
}

const findOfferByIDForUpdate = `-- name: FindOfferByIDForUpdate :one
SELECT ` + offerColumns + `
FROM offers
WHERE id = $1
FOR UPDATE
`

func (q *Queries) FindOfferByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Offers, error) {
	return scanOffer(db.QueryRow(ctx, findOfferByIDForUpdate, id))
}

// Nullable parameters disable their filter. The keyset pair is either both
// set or both null.
const listOffers = `-- name: ListOffers :many
SELECT ` + offerColumns + `
FROM offers
WHERE ($1::text IS NULL OR product_name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
  AND ($2::text IS NULL OR lower(product_category) = lower($2))
  AND ($3::text IS NULL OR lower(location) = lower($3))
  AND ($4::numeric IS NULL OR unit_price >= $4)
  AND ($5::numeric IS NULL OR unit_price <= $5)
  AND ($6::boolean IS NULL OR active = $6)
  AND ($7::uuid IS NULL OR producer_id = $7)
  AND ($8::timestamptz IS NULL OR (created_at, id) < ($8, $9::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $10
`

type ListOffersParams struct {
	Q             pgtype.Text
	Category      pgtype.Text
	Location      pgtype.Text
	MinPrice      pgtype.Numeric
	MaxPrice      pgtype.Numeric
	Active        pgtype.Bool
	ProducerID    pgtype.UUID
	LastCreatedAt pgtype.Timestamptz
	LastID        pgtype.UUID
	Limit         int32
}

func (q *Queries) ListOffers(ctx context.Context, db DBTX, arg ListOffersParams) ([]Offers, error) {
	rows, err := db.Query(ctx, listOffers,
		arg.Q,
		arg.Category,
		arg.Location,
		arg.MinPrice,
		arg.MaxPrice,
		arg.Active,
		arg.ProducerID,
		arg.LastCreatedAt,
		arg.LastID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Offers
	for rows.Next() {
		i, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
