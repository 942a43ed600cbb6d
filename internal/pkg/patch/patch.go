package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps nullable fields nullable: a nil patch keeps the current value.
func CoalescePtr[T any](ptr *T, current *T) *T {
	if ptr != nil {
		v := *ptr
		return &v
	}
	return current
}
