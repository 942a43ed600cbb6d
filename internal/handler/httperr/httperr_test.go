//go:build unit

package httperr

import (
	"errors"
	"net/http"
	"testing"

	"producer-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", errs.Mark(errs.New("bad"), errs.ErrInvalidArgument), http.StatusBadRequest},
		{"unauthenticated", errs.Mark(errs.New("who"), errs.ErrUnauthenticated), http.StatusUnauthorized},
		{"forbidden", errs.Mark(errs.New("no"), errs.ErrForbidden), http.StatusForbidden},
		{"not found", errs.Mark(errs.New("gone"), errs.ErrNotFound), http.StatusNotFound},
		{"conflict", errs.Mark(errs.New("busy"), errs.ErrConflict), http.StatusConflict},
		{"wrapped keeps category", errs.Wrap(errs.Mark(errs.New("gone"), errs.ErrNotFound), "loading"), http.StatusNotFound},
		{"uncategorized", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
