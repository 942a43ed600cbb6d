package readstore

import (
	"context"

	"producer-market/internal/infra"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/errs"
	"producer-market/internal/pkg/pgconv"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferReadQueries interface {
	FindOfferByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Offers, error)
	ListOffers(ctx context.Context, db sqldb.DBTX, arg sqldb.ListOffersParams) ([]sqldb.Offers, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqldb.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqldb.DBTX) *OfferReadStore {
	return &OfferReadStore{queries: queries, db: db}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row, err := r.queries.FindOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	return toOfferView(row)
}

func (r *OfferReadStore) List(ctx context.Context, f queries.OfferFilters, page queries.Page) ([]*queries.OfferView, error) {
	lastCreatedAt, lastID := keysetParams(page.After)
	params := sqldb.ListOffersParams{
		Q:             pgconv.StringPtrToPgtype(f.Q),
		Category:      pgconv.StringPtrToPgtype(f.Category),
		Location:      pgconv.StringPtrToPgtype(f.Location),
		MinPrice:      pgconv.DecimalPtrToNumeric(f.MinPrice),
		MaxPrice:      pgconv.DecimalPtrToNumeric(f.MaxPrice),
		ProducerID:    pgconv.UUIDPtrToPgtype(f.ProducerID),
		LastCreatedAt: lastCreatedAt,
		LastID:        lastID,
		Limit:         page.Limit,
	}
	if f.Active != nil {
		params.Active = pgtype.Bool{Bool: *f.Active, Valid: true}
	}

	rows, err := r.queries.ListOffers(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	items := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		v, err := toOfferView(row)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func toOfferView(row sqldb.Offers) (*queries.OfferView, error) {
	quantity, err := pgconv.DecimalFromNumeric(row.Quantity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer quantity", errs.Wrap(err, row.ID.String()))
	}
	unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer price", errs.Wrap(err, row.ID.String()))
	}
	return &queries.OfferView{
		ID:              row.ID,
		ProducerID:      row.ProducerID,
		ProductName:     row.ProductName,
		ProductCategory: row.ProductCategory,
		SKU:             pgconv.StringPtrFromPgtype(row.Sku),
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		Quantity:        quantity,
		UnitOfMeasure:   row.UnitOfMeasure,
		UnitPrice:       unitPrice,
		Currency:        row.Currency,
		Location:        row.Location,
		Active:          row.Active,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
