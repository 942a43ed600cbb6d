package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// TrimmedString returns nil for nil or whitespace-only input.
func TrimmedString(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
