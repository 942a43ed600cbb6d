package sqldb

import "context"

const statsOverview = `-- name: StatsOverview :one
SELECT
    (SELECT count(*) FROM offers WHERE active) AS active_offers,
    (SELECT count(*) FROM users WHERE role = 'PRODUCER') AS producers,
    (SELECT count(*) FROM users WHERE role = 'BUYER') AS buyers
`

type StatsOverviewRow struct {
	ActiveOffers int64
	Producers    int64
	Buyers       int64
}

func (q *Queries) StatsOverview(ctx context.Context, db DBTX) (StatsOverviewRow, error) {
	row := db.QueryRow(ctx, statsOverview)
	var i StatsOverviewRow
	err := row.Scan(&i.ActiveOffers, &i.Producers, &i.Buyers)
	return i, err
}
