//go:build unit || e2e

package builder

import (
	"time"

	"producer-market/internal/domain/user"
	reqdto "producer-market/internal/handler/dto/request"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	DefaultPassword     = "Passw0rd!"
	DefaultPasswordHash = "hashed_password"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "producer@example.com",
		Password:     DefaultPassword,
		PasswordHash: DefaultPasswordHash,
		Role:         string(user.RoleProducer),
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsBuyer() *UserBuilder {
	u.Role = string(user.RoleBuyer)
	u.Email = "buyer@example.com"
	return u
}

func (u *UserBuilder) AsProducer() *UserBuilder {
	u.Role = string(user.RoleProducer)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.ID, email, u.PasswordHash, role, u.CreatedAt)
}

func (u *UserBuilder) BuildPrincipal() user.Principal {
	return user.Principal{ID: u.ID, Role: user.Role(u.Role)}
}

func (u *UserBuilder) BuildInfra() sqldb.Users {
	return sqldb.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{Email: u.Email, Password: u.Password, Role: u.Role}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: u.Password}
}
