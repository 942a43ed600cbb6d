package readstore

import (
	"context"

	"producer-market/internal/infra"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/usecase/queries"
)

type StatsReadQueries interface {
	StatsOverview(ctx context.Context, db sqldb.DBTX) (sqldb.StatsOverviewRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      sqldb.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqldb.DBTX) *StatsReadStore {
	return &StatsReadStore{queries: queries, db: db}
}

func (r *StatsReadStore) Overview(ctx context.Context) (*queries.Overview, error) {
	row, err := r.queries.StatsOverview(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load stats", err)
	}
	return &queries.Overview{
		ActiveOffers: row.ActiveOffers,
		Producers:    row.Producers,
		Buyers:       row.Buyers,
	}, nil
}
