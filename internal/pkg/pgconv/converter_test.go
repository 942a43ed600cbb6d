//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"producer-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumeric(t *testing.T) {
	t.Run("decimal survives the numeric conversion", func(t *testing.T) {
		for _, s := range []string{"100", "99.95", "0.0001", "123456789.12"} {
			d := decimal.RequireFromString(s)
			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		}
	})

	t.Run("null numeric becomes nil pointer", func(t *testing.T) {
		got, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.False(t, pgconv.DecimalPtrToNumeric(nil).Valid)
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(0), NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
	})
}
