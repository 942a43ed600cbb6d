//go:build unit

package offer_test

import (
	"strings"
	"testing"
	"time"

	"producer-market/internal/domain/offer"
	"producer-market/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func validFields() offer.Fields {
	return offer.Fields{
		ProductName:     "Apples",
		ProductCategory: "fruit",
		Description:     ptr.Of("Crisp Ligol apples"),
		Quantity:        decimal.NewFromInt(500),
		UnitOfMeasure:   "kg",
		UnitPrice:       decimal.RequireFromString("3.50"),
		Currency:        "PLN",
		Location:        "Lublin",
		Active:          true,
	}
}

func TestNewOffer(t *testing.T) {
	producerID := uuid.New()

	t.Run("normalizes input", func(t *testing.T) {
		f := validFields()
		f.ProductName = "  Apples  "
		f.Currency = "eur"
		f.SKU = ptr.Of("   ")

		o, err := offer.NewOffer(uuid.Nil, producerID, f, now)
		require.NoError(t, err)

		want := validFields()
		want.Currency = "EUR"
		if diff := cmp.Diff(want, o.Fields()); diff != "" {
			t.Errorf("fields mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.True(t, o.IsOwnedBy(producerID))
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("currency defaults", func(t *testing.T) {
		f := validFields()
		f.Currency = ""
		o, err := offer.NewOffer(uuid.New(), producerID, f, now)
		require.NoError(t, err)
		assert.Equal(t, offer.DefaultCurrency, o.Currency())
	})

	tests := []struct {
		name   string
		mutate func(f *offer.Fields)
		errIs  error
	}{
		{name: "blank name", mutate: func(f *offer.Fields) { f.ProductName = " " }, errIs: offer.ErrInvalidProductName},
		{name: "long name", mutate: func(f *offer.Fields) { f.ProductName = strings.Repeat("a", 201) }, errIs: offer.ErrInvalidProductName},
		{name: "blank category", mutate: func(f *offer.Fields) { f.ProductCategory = "" }, errIs: offer.ErrInvalidCategory},
		{name: "long sku", mutate: func(f *offer.Fields) { f.SKU = ptr.Of(strings.Repeat("s", 101)) }, errIs: offer.ErrInvalidSKU},
		{name: "long description", mutate: func(f *offer.Fields) { f.Description = ptr.Of(strings.Repeat("d", 5001)) }, errIs: offer.ErrDescriptionTooLong},
		{name: "zero quantity", mutate: func(f *offer.Fields) { f.Quantity = decimal.Zero }, errIs: offer.ErrInvalidQuantity},
		{name: "blank unit", mutate: func(f *offer.Fields) { f.UnitOfMeasure = "" }, errIs: offer.ErrInvalidUnit},
		{name: "negative price", mutate: func(f *offer.Fields) { f.UnitPrice = decimal.NewFromInt(-1) }, errIs: offer.ErrInvalidUnitPrice},
		{name: "bad currency", mutate: func(f *offer.Fields) { f.Currency = "PL1" }, errIs: offer.ErrInvalidCurrency},
		{name: "long currency", mutate: func(f *offer.Fields) { f.Currency = "EURO" }, errIs: offer.ErrInvalidCurrency},
		{name: "blank location", mutate: func(f *offer.Fields) { f.Location = "  " }, errIs: offer.ErrInvalidLocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			o, err := offer.NewOffer(uuid.New(), producerID, f, now)
			require.Nil(t, o)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestOffer_Update(t *testing.T) {
	o, err := offer.NewOffer(uuid.New(), uuid.New(), validFields(), now)
	require.NoError(t, err)

	t.Run("invalid update leaves the offer untouched", func(t *testing.T) {
		f := validFields()
		f.UnitPrice = decimal.Zero
		err := o.Update(f, now.Add(time.Hour))
		require.ErrorIs(t, err, offer.ErrInvalidUnitPrice)
		assert.Equal(t, "3.5", o.UnitPrice().String())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("deactivate", func(t *testing.T) {
		f := o.Fields()
		f.Active = false
		require.NoError(t, o.Update(f, now.Add(time.Hour)))
		assert.False(t, o.Active())
		assert.Equal(t, now.Add(time.Hour), o.UpdatedAt())
		assert.Equal(t, now, o.CreatedAt())
	})
}
