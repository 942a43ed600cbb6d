//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"producer-market/internal/domain/order"
	"producer-market/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace(t *testing.T) {
	now := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	snapshot := order.OfferSnapshot{
		ID:        uuid.New(),
		Quantity:  decimal.NewFromInt(500),
		UnitPrice: decimal.RequireFromString("3.50"),
		Currency:  "PLN",
	}
	buyerID := uuid.New()

	t.Run("freezes the offer price", func(t *testing.T) {
		o, err := order.Place(uuid.Nil, buyerID, snapshot, decimal.NewFromInt(20), ptr.Of("  deliver Monday "), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, order.StatusNew, o.Status())
		assert.Equal(t, snapshot.ID, o.OfferID())
		assert.Equal(t, "3.5", o.UnitPriceSnapshot().String())
		assert.Equal(t, "70", o.Total().String())
		assert.Equal(t, "deliver Monday", *o.Notes())
	})

	t.Run("whole stock is allowed", func(t *testing.T) {
		_, err := order.Place(uuid.New(), buyerID, snapshot, decimal.NewFromInt(500), nil, now)
		require.NoError(t, err)
	})

	t.Run("blank notes become nil", func(t *testing.T) {
		o, err := order.Place(uuid.New(), buyerID, snapshot, decimal.NewFromInt(1), ptr.Of("   "), now)
		require.NoError(t, err)
		assert.Nil(t, o.Notes())
	})

	tests := []struct {
		name  string
		qty   string
		notes *string
		errIs error
	}{
		{name: "zero quantity", qty: "0", errIs: order.ErrInvalidQuantity},
		{name: "negative quantity", qty: "-5", errIs: order.ErrInvalidQuantity},
		{name: "more than offered", qty: "500.01", errIs: order.ErrQuantityTooLarge},
		{name: "notes too long", qty: "1", notes: ptr.Of(strings.Repeat("n", order.MaxNotesLength+1)), errIs: order.ErrNotesTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := order.Place(uuid.New(), buyerID, snapshot, decimal.RequireFromString(tt.qty), tt.notes, now)
			require.Nil(t, o)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}
