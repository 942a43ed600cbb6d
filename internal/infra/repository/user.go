package repository

import (
	"context"

	"producer-market/internal/domain/user"
	"producer-market/internal/infra"
	"producer-market/internal/infra/repository/converter"
	"producer-market/internal/infra/sqldb"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqldb.DBTX, arg sqldb.CreateUserParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqldb.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqldb.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
