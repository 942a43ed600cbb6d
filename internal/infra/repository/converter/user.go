package converter

import (
	"producer-market/internal/domain/user"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqldb.CreateUserParams {
	return sqldb.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
