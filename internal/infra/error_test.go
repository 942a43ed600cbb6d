//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		kind       RepositoryErrorKind
		constraint string
	}{
		{
			name:       "unique violation keeps the constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: ConstraintOpenNegotiation},
			kind:       KindDuplicateKey,
			constraint: ConstraintOpenNegotiation,
		},
		{
			name:       "message primary key collision",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "negotiation_messages_pkey"},
			kind:       KindDuplicateKey,
			constraint: "negotiation_messages_pkey",
		},
		{
			name:       "foreign key violation",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "negotiations_offer_id_fkey"},
			kind:       KindForeignKeyViolated,
			constraint: "negotiations_offer_id_fkey",
		},
		{
			name: "non postgres error",
			err:  errors.New("connection reset"),
			kind: KindDBFailure,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := WrapRepoErr("failed to create negotiation", tc.err)

			assert.True(t, IsKind(err, tc.kind))
			assert.Equal(t, tc.constraint, ConstraintName(err))
		})
	}
}

func TestUniqueViolation(t *testing.T) {
	err := UniqueViolation("open negotiation already exists", ConstraintOpenNegotiation)

	assert.True(t, IsKind(err, KindDuplicateKey))
	assert.Equal(t, ConstraintOpenNegotiation, ConstraintName(err))
	assert.Empty(t, ConstraintName(errors.New("plain")))
}
