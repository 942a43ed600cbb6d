package repository

import (
	"context"

	"producer-market/internal/domain/offer"
	"producer-market/internal/infra"
	"producer-market/internal/infra/repository/converter"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqldb.DBTX, arg sqldb.Offers) error
	UpdateOffer(ctx context.Context, db sqldb.DBTX, arg sqldb.Offers) (int64, error)
	FindOfferByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Offers, error)
	FindOfferByIDForUpdate(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Offers, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqldb.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqldb.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	if err := r.queries.CreateOffer(ctx, r.db, converter.OfferToRow(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.find(ctx, id, r.queries.FindOfferByID)
}

func (r *OfferRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.find(ctx, id, r.queries.FindOfferByIDForUpdate)
}

func (r *OfferRepository) find(ctx context.Context, id uuid.UUID, query func(context.Context, sqldb.DBTX, uuid.UUID) (sqldb.Offers, error)) (*offer.Offer, error) {
	row, err := query(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer", err)
	}
	return o, nil
}

func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	n, err := r.queries.UpdateOffer(ctx, r.db, converter.OfferToRow(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}
