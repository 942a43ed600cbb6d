package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. A producer lists offers, a buyer orders and negotiates.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(id uuid.UUID, email Email, passwordHash string, role Role, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) IsProducer() bool     { return u.role == RoleProducer }
func (u *User) IsBuyer() bool        { return u.role == RoleBuyer }

// Principal is the authenticated caller of an operation, as asserted by the access token.
type Principal struct {
	ID   uuid.UUID
	Role Role
}
