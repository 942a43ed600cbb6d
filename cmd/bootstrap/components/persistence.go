package components

import (
	"producer-market/internal/infra/memstore"
	"producer-market/internal/infra/readstore"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/infra/uow"
	"producer-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Offer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OfferReadQueries)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		// Negotiation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NegotiationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNegotiationReadStore,
			fx.As(new(queries.NegotiationReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

// MemoryModule keeps everything in process; state is lost on restart.
var MemoryModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		memstore.NewUoW,
		fx.Annotate(
			memstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			memstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			memstore.NewNegotiationReadStore,
			fx.As(new(queries.NegotiationReadStore)),
		),
		fx.Annotate(
			memstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			memstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqldb.Queries {
	return sqldb.New()
}

func NewDBTX(pool *pgxpool.Pool) sqldb.DBTX {
	return pool
}
