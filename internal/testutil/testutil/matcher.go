//go:build unit || e2e

package testutil

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

// SameValue matches arguments equal to want under go-cmp, which uses the
// types' Equal methods. decimal.Decimal values survive a JSON round trip
// with a different scale ("3.50" becomes "3.5"), so gomock.Eq would miss them.
func SameValue(want any) gomock.Matcher {
	return sameValue{want: want}
}

type sameValue struct {
	want any
}

func (m sameValue) Matches(x any) bool {
	return cmp.Equal(m.want, x)
}

func (m sameValue) String() string {
	return fmt.Sprintf("equals %+v (go-cmp)", m.want)
}
