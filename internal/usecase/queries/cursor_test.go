//go:build unit

package queries_test

import (
	"testing"
	"time"

	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Run("encode and decode keep microsecond precision", func(t *testing.T) {
		ts := time.Date(2025, 3, 4, 5, 6, 7, 123456000, time.UTC)
		id := uuid.New()

		gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))
		require.NoError(t, err)
		assert.True(t, ts.Equal(gotTime))
		assert.Equal(t, id, gotID)
	})

	t.Run("rejects malformed cursors", func(t *testing.T) {
		for _, c := range []string{"", "%%%", "djI6MTIz", "djE6YWJj"} {
			_, _, err := queries.DecodeAfterCursor(c)
			assert.Error(t, err, c)
		}
	})

	t.Run("limit is clamped", func(t *testing.T) {
		assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
		assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
		assert.Equal(t, 5, queries.ValidateLimit(5))
	})
}
