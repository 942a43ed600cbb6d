//go:build unit

package idgen_test

import (
	"testing"
	"time"

	"producer-market/internal/pkg/idgen"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

func TestULIDGenerator(t *testing.T) {
	t.Run("ids within the same millisecond are increasing", func(t *testing.T) {
		g := idgen.NewULIDGenerator()
		now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

		prev := g.New(now)
		for range 100 {
			next := g.New(now)
			assert.Equal(t, 1, next.Compare(prev))
			prev = next
		}
	})

	t.Run("time part follows the given instant", func(t *testing.T) {
		now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		id := idgen.NewULIDGenerator().New(now)
		assert.Equal(t, ulid.Timestamp(now), id.Time())
	})
}
