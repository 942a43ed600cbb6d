//go:build unit

package commands_test

import (
	"context"
	"testing"

	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/order"
	"producer-market/internal/infra/memstore"
	"producer-market/internal/pkg/ptr"
	"producer-market/internal/usecase/commands"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferCommands(t *testing.T) {
	ctx := context.Background()

	newInput := func() commands.CreateOfferInput {
		return commands.CreateOfferInput{
			ProductName:     "Carrots",
			ProductCategory: "vegetables",
			Quantity:        decimal.NewFromInt(300),
			UnitOfMeasure:   "kg",
			UnitPrice:       decimal.RequireFromString("1.20"),
			Location:        "Radom",
		}
	}

	t.Run("create applies defaults", func(t *testing.T) {
		w := newWorld(t)
		cmds := commands.NewOfferCommands(w.uow, w.clock)

		view, err := cmds.Create(ctx, w.producer, newInput())
		require.NoError(t, err)
		assert.Equal(t, offer.DefaultCurrency, view.Currency)
		assert.True(t, view.Active)
		assert.Equal(t, w.producer.ID, view.ProducerID)

		got, err := queries.NewOfferQueries(memstore.NewOfferReadStore(w.store)).Get(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "Carrots", got.ProductName)
	})

	t.Run("buyers cannot create", func(t *testing.T) {
		w := newWorld(t)
		_, err := commands.NewOfferCommands(w.uow, w.clock).Create(ctx, w.buyer, newInput())
		require.ErrorIs(t, err, offer.ErrProducerRoleNeeded)
	})

	t.Run("update is partial", func(t *testing.T) {
		w := newWorld(t)
		cmds := commands.NewOfferCommands(w.uow, w.clock)

		view, err := cmds.Update(ctx, w.producer, w.offer.ID(), commands.UpdateOfferInput{
			UnitPrice: ptr.Of(decimal.RequireFromString("3.20")),
			Active:    ptr.Of(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "3.2", view.UnitPrice.String())
		assert.False(t, view.Active)
		assert.Equal(t, w.offer.ProductName(), view.ProductName)
		assert.True(t, view.UpdatedAt.After(view.CreatedAt))
	})

	t.Run("update rejections", func(t *testing.T) {
		w := newWorld(t)
		cmds := commands.NewOfferCommands(w.uow, w.clock)

		_, err := cmds.Update(ctx, w.producer, uuid.New(), commands.UpdateOfferInput{})
		require.ErrorIs(t, err, offer.ErrOfferNotFound)

		_, err = cmds.Update(ctx, w.buyer, w.offer.ID(), commands.UpdateOfferInput{Active: ptr.Of(false)})
		require.ErrorIs(t, err, offer.ErrNotOfferOwner)

		_, err = cmds.Update(ctx, w.producer, w.offer.ID(), commands.UpdateOfferInput{Quantity: ptr.Of(decimal.Zero)})
		require.ErrorIs(t, err, offer.ErrInvalidQuantity)

		got, err := queries.NewOfferQueries(memstore.NewOfferReadStore(w.store)).Get(ctx, w.offer.ID())
		require.NoError(t, err)
		assert.True(t, got.Active)
		assert.True(t, got.Quantity.Equal(w.offer.Quantity()))
	})
}

func TestOrderCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("place and list", func(t *testing.T) {
		w := newWorld(t)
		cmds := commands.NewOrderCommands(w.uow, w.clock)

		view, err := cmds.Place(ctx, w.buyer, commands.PlaceOrderInput{
			OfferID:  w.offer.ID(),
			Quantity: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
		assert.Equal(t, string(order.StatusNew), view.Status)
		assert.True(t, view.Total.Equal(w.offer.UnitPrice().Mul(decimal.NewFromInt(10))))
		assert.Equal(t, w.offer.ProductName(), view.ProductName)

		items, next, err := queries.NewOrderQueries(memstore.NewOrderReadStore(w.store)).ListMine(ctx, w.buyer.ID, nil, 10)
		require.NoError(t, err)
		assert.Nil(t, next)
		require.Len(t, items, 1)
		assert.Equal(t, view.ID, items[0].ID)
	})

	t.Run("rejections", func(t *testing.T) {
		w := newWorld(t)
		cmds := commands.NewOrderCommands(w.uow, w.clock)
		offers := commands.NewOfferCommands(w.uow, w.clock)

		_, err := cmds.Place(ctx, w.producer, commands.PlaceOrderInput{OfferID: w.offer.ID(), Quantity: decimal.NewFromInt(1)})
		require.ErrorIs(t, err, order.ErrBuyerRoleRequired)

		_, err = cmds.Place(ctx, w.buyer, commands.PlaceOrderInput{OfferID: uuid.New(), Quantity: decimal.NewFromInt(1)})
		require.ErrorIs(t, err, offer.ErrOfferNotFound)

		_, err = cmds.Place(ctx, w.buyer, commands.PlaceOrderInput{OfferID: w.offer.ID(), Quantity: w.offer.Quantity().Add(decimal.NewFromInt(1))})
		require.ErrorIs(t, err, order.ErrQuantityTooLarge)

		_, err = offers.Update(ctx, w.producer, w.offer.ID(), commands.UpdateOfferInput{Active: ptr.Of(false)})
		require.NoError(t, err)
		_, err = cmds.Place(ctx, w.buyer, commands.PlaceOrderInput{OfferID: w.offer.ID(), Quantity: decimal.NewFromInt(1)})
		require.ErrorIs(t, err, offer.ErrOfferNotActive)
	})
}
