//go:build unit

package uow

import (
	"testing"
	"time"

	"producer-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	tests := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{name: "serialization failure", err: serialization, attempt: 0, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, attempt: 1, want: true},
		{name: "wrapped serialization failure", err: errs.Wrap(serialization, "append message"), attempt: 0, want: true},
		{name: "marked commit failure", err: errs.Mark(serialization, errTransactionCommit), attempt: 2, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, attempt: 0, want: false},
		{name: "domain error", err: errs.New("negotiation is closed"), attempt: 0, want: false},
		{name: "out of attempts", err: serialization, attempt: 3, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldRetry(tt.err, tt.attempt, 3))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		floor := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5)
	}
}
