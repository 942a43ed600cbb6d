package queries

//go:generate mockgen -source=$GOFILE -destination=../../mock/queries/$GOFILE -package=queriesmock

import "context"

type Overview struct {
	ActiveOffers int64
	Producers    int64
	Buyers       int64
}

type StatsReadStore interface {
	Overview(ctx context.Context) (*Overview, error)
}

type StatsQueries interface {
	Overview(ctx context.Context) (*Overview, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
}

func NewStatsQueries(store StatsReadStore) StatsQueries {
	return &statsQueriesImpl{store: store}
}

func (q *statsQueriesImpl) Overview(ctx context.Context) (*Overview, error) {
	return q.store.Overview(ctx)
}
