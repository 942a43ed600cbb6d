//go:build unit

package seed_test

import (
	"context"
	"testing"
	"time"

	"producer-market/internal/domain/user"
	"producer-market/internal/infra/memstore"
	"producer-market/internal/pkg/clock"
	"producer-market/internal/pkg/jwt"
	"producer-market/internal/seed"
	"producer-market/internal/usecase/commands"
	"producer-market/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeder(store *memstore.Store) *seed.Seeder {
	uow := memstore.NewUoW(store)
	clk := clock.NewMockClock(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	clk.SetTick(time.Millisecond)
	users := memstore.NewUserReadStore(store)
	return seed.NewSeeder(seed.Params{
		Auth:   commands.NewAuthCommands(uow, users, jwt.NewService("seed-secret", time.Hour), clk),
		Offers: commands.NewOfferCommands(uow, clk),
		Orders: commands.NewOrderCommands(uow, clk),
		Users:  users,
		Q:      queries.NewOfferQueries(memstore.NewOfferReadStore(store)),
	})
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	res, err := newSeeder(store).Run(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 14, res.Offers)
	assert.Equal(t, 1, res.Orders)
	assert.Equal(t, user.RoleProducer, res.Producer.Role)
	assert.Equal(t, user.RoleBuyer, res.Buyer.Role)

	again, err := newSeeder(store).Run(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, res.Producer, again.Producer)
	assert.Equal(t, res.Buyer, again.Buyer)
	assert.Zero(t, again.Offers)
	assert.Zero(t, again.Orders)

	offers, _, err := queries.NewOfferQueries(memstore.NewOfferReadStore(store)).ListByProducer(ctx, res.Producer.ID, nil, queries.MaxListLimit)
	require.NoError(t, err)
	assert.Len(t, offers, 14)

	orders, _, err := queries.NewOrderQueries(memstore.NewOrderReadStore(store)).ListMine(ctx, res.Buyer.ID, nil, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Pellet sosnowy A1", orders[0].ProductName)
}
