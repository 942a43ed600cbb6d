//go:build unit

package user_test

import (
	"strings"
	"testing"

	"producer-market/internal/domain/user"
	"producer-market/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		email, err := user.NewEmail("producer@example.com")
		require.NoError(t, err)
		expected := user.ReconstructUser(b.ID, email, "hashed_password", user.RoleProducer, b.CreatedAt)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, actual.IsProducer())
		assert.False(t, actual.IsBuyer())
	})

	t.Run("email is normalized", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("  Mixed.Case@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "mixed.case@example.com", actual.Email().Value())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid address", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "malformed", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing @", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "PRODUCER", mutate: func(b *builder.UserBuilder) { b.WithRole("PRODUCER") }},
			{name: "BUYER", mutate: func(b *builder.UserBuilder) { b.AsBuyer() }},
			{name: "lowercase is rejected", mutate: func(b *builder.UserBuilder) { b.WithRole("buyer") }, errIs: user.ErrInvalidRole},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("ADMIN") }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "ok", email: "a@b.co", password: "12345678"},
		{name: "7 chars", email: "a@b.co", password: "1234567", errIs: user.ErrPasswordTooWeak},
		{name: "72 bytes", email: "a@b.co", password: strings.Repeat("x", 72)},
		{name: "73 bytes", email: "a@b.co", password: strings.Repeat("x", 73), errIs: user.ErrPasswordTooLong},
		{name: "bad email wins", email: "nope", password: "1", errIs: user.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewCredentials(tt.email, tt.password)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
