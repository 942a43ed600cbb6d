//go:build unit

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRejectMemoryDriver(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("STORAGE_DRIVER", "memory")

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "seed", args: []string{"seed", "--catalog=5"}, want: "seed need STORAGE_DRIVER=postgres"},
		{name: "migrate up", args: []string{"migrate", "up"}, want: "migrations need STORAGE_DRIVER=postgres"},
		{name: "migrate version", args: []string{"migrate", "version"}, want: "migrations need STORAGE_DRIVER=postgres"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tc.args)

			err := root.ExecuteContext(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
