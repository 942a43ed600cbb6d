package errs

// Error categories shared by every usecase. Domain errors carry exactly one of
// these as a mark; the HTTP layer maps them to status codes.
var (
	ErrInvalidArgument = New("invalid argument")
	ErrUnauthenticated = New("unauthenticated")
	ErrForbidden       = New("forbidden")
	ErrNotFound        = New("not found")
	ErrConflict        = New("conflict")
)

// Category returns the category sentinel err is marked with, or nil.
func Category(err error) error {
	for _, c := range []error{ErrInvalidArgument, ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrConflict} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
