package readstore

import (
	"producer-market/internal/pkg/pgconv"
	"producer-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// keysetParams turns a page position into the nullable (created_at, id) pair the list queries expect.
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}
