package readstore

import (
	"context"

	"producer-market/internal/infra"
	"producer-market/internal/infra/repository/converter"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/pgconv"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type NegotiationReadQueries interface {
	FindNegotiationByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Negotiations, error)
	FindNegotiationForOffer(ctx context.Context, db sqldb.DBTX, offerID, participantID uuid.UUID) (sqldb.Negotiations, error)
	ListNegotiationMessages(ctx context.Context, db sqldb.DBTX, negotiationID uuid.UUID) ([]sqldb.NegotiationMessages, error)
	ListNegotiationsByParticipant(ctx context.Context, db sqldb.DBTX, arg sqldb.ListNegotiationsByParticipantParams) ([]sqldb.ListNegotiationsByParticipantRow, error)
}

type NegotiationReadStore struct {
	queries NegotiationReadQueries
	db      sqldb.DBTX
}

func NewNegotiationReadStore(queries NegotiationReadQueries, db sqldb.DBTX) *NegotiationReadStore {
	return &NegotiationReadStore{queries: queries, db: db}
}

func (r *NegotiationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.NegotiationView, error) {
	row, err := r.queries.FindNegotiationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("negotiation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find negotiation", err)
	}
	return r.withMessages(ctx, row)
}

func (r *NegotiationReadStore) FindForOffer(ctx context.Context, offerID, participantID uuid.UUID) (*queries.NegotiationView, error) {
	row, err := r.queries.FindNegotiationForOffer(ctx, r.db, offerID, participantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("negotiation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find negotiation for offer", err)
	}
	return r.withMessages(ctx, row)
}

func (r *NegotiationReadStore) withMessages(ctx context.Context, row sqldb.Negotiations) (*queries.NegotiationView, error) {
	msgs, err := r.queries.ListNegotiationMessages(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load negotiation messages", err)
	}
	n, err := converter.NegotiationFromRows(row, msgs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode negotiation", err)
	}
	return queries.FromNegotiation(n), nil
}

func (r *NegotiationReadStore) ListByParticipant(ctx context.Context, participantID uuid.UUID, page queries.Page) ([]*queries.NegotiationListItem, error) {
	lastCreatedAt, lastID := keysetParams(page.After)
	rows, err := r.queries.ListNegotiationsByParticipant(ctx, r.db, sqldb.ListNegotiationsByParticipantParams{
		ParticipantID: participantID,
		LastCreatedAt: lastCreatedAt,
		LastID:        lastID,
		Limit:         page.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list negotiations", err)
	}

	items := make([]*queries.NegotiationListItem, 0, len(rows))
	for _, row := range rows {
		agreed, err := pgconv.DecimalPtrFromNumeric(row.AgreedPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode agreed price", err)
		}
		last, err := pgconv.DecimalPtrFromNumeric(row.LastProposedPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode proposed price", err)
		}
		items = append(items, &queries.NegotiationListItem{
			ID:                row.ID,
			OfferID:           row.OfferID,
			ProductName:       row.ProductName,
			BuyerID:           row.BuyerID,
			ProducerID:        row.ProducerID,
			Status:            row.Status,
			AgreedPrice:       agreed,
			LastProposedPrice: last,
			Currency:          row.Currency,
			MessageCount:      int(row.MessageCount),
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return items, nil
}
