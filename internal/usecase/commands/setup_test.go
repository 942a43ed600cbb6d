//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/user"
	"producer-market/internal/infra/memstore"
	"producer-market/internal/pkg/clock"
	"producer-market/internal/pkg/idgen"
	"producer-market/internal/testutil/builder"
	"producer-market/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

// world is a memstore seeded with one producer, one buyer and one active offer.
type world struct {
	store    *memstore.Store
	uow      shared.UnitOfWork
	clock    *clock.MockClock
	ids      *idgen.ULIDGenerator
	producer user.Principal
	buyer    user.Principal
	offer    *offer.Offer
}

func newWorld(t *testing.T) *world {
	t.Helper()
	store := memstore.New()
	clk := clock.NewMockClock(time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC))
	clk.SetTick(time.Millisecond)

	w := &world{
		store: store,
		uow:   memstore.NewUoW(store),
		clock: clk,
		ids:   idgen.NewULIDGenerator(),
	}

	producerB := builder.NewUserBuilder().AsProducer()
	buyerB := builder.NewUserBuilder().AsBuyer()
	w.producer = producerB.BuildPrincipal()
	w.buyer = buyerB.BuildPrincipal()
	w.addUser(t, producerB)
	w.addUser(t, buyerB)
	w.offer = w.addOffer(t, builder.NewOfferBuilder().WithProducer(w.producer.ID))
	return w
}

func (w *world) addUser(t *testing.T, b *builder.UserBuilder) {
	t.Helper()
	u, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, w.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	}))
}

func (w *world) addOffer(t *testing.T, b *builder.OfferBuilder) *offer.Offer {
	t.Helper()
	o := b.BuildDomain()
	require.NoError(t, w.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, o)
	}))
	return o
}
