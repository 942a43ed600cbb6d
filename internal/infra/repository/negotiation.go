package repository

import (
	"context"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/infra"
	"producer-market/internal/infra/repository/converter"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NegotiationWriteQueries interface {
	CreateNegotiation(ctx context.Context, db sqldb.DBTX, arg sqldb.Negotiations) error
	FindNegotiationByIDForUpdate(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Negotiations, error)
	ExistsOpenNegotiation(ctx context.Context, db sqldb.DBTX, offerID, buyerID uuid.UUID) (bool, error)
	UpdateNegotiationState(ctx context.Context, db sqldb.DBTX, arg sqldb.UpdateNegotiationStateParams) (int64, error)
	InsertNegotiationMessage(ctx context.Context, db sqldb.DBTX, arg sqldb.NegotiationMessages) error
	ListNegotiationMessages(ctx context.Context, db sqldb.DBTX, negotiationID uuid.UUID) ([]sqldb.NegotiationMessages, error)
}

type NegotiationRepository struct {
	queries NegotiationWriteQueries
	db      sqldb.DBTX
}

func NewNegotiationRepository(queries NegotiationWriteQueries, db sqldb.DBTX) *NegotiationRepository {
	return &NegotiationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NegotiationRepository) Create(ctx context.Context, n *negotiation.Negotiation) error {
	if err := r.queries.CreateNegotiation(ctx, r.db, converter.NegotiationToRow(n)); err != nil {
		return infra.WrapRepoErr("failed to create negotiation", err)
	}
	for _, m := range n.Messages() {
		if err := r.queries.InsertNegotiationMessage(ctx, r.db, converter.MessageToRow(m)); err != nil {
			return infra.WrapRepoErr("failed to insert negotiation message", err)
		}
	}
	return nil
}

// FindByIDForUpdate must run inside a transaction; the row lock is what
// serializes concurrent posts to the same negotiation.
func (r *NegotiationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*negotiation.Negotiation, error) {
	row, err := r.queries.FindNegotiationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("negotiation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock negotiation", err)
	}
	msgs, err := r.queries.ListNegotiationMessages(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load negotiation messages", err)
	}
	n, err := converter.NegotiationFromRows(row, msgs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode negotiation", err)
	}
	return n, nil
}

func (r *NegotiationRepository) ExistsOpen(ctx context.Context, offerID, buyerID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsOpenNegotiation(ctx, r.db, offerID, buyerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open negotiation", err)
	}
	return exists, nil
}

func (r *NegotiationRepository) AppendMessage(ctx context.Context, n *negotiation.Negotiation, msg *negotiation.Message) error {
	if err := r.queries.InsertNegotiationMessage(ctx, r.db, converter.MessageToRow(msg)); err != nil {
		return infra.WrapRepoErr("failed to insert negotiation message", err)
	}
	row := converter.NegotiationToRow(n)
	affected, err := r.queries.UpdateNegotiationState(ctx, r.db, sqldb.UpdateNegotiationStateParams{
		ID:          row.ID,
		Status:      row.Status,
		AgreedPrice: row.AgreedPrice,
		UpdatedAt:   row.UpdatedAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update negotiation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("negotiation not found", nil, infra.KindNotFound)
	}
	return nil
}
