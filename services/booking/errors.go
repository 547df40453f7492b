package booking

import (
	"errors"
	"fmt"
)

// Sentinel errors handlers map onto HTTP status codes.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("not allowed to perform this action on the booking")
	ErrNotCompletable  = errors.New("booking cannot be completed before its service window ends")
)

// InvalidTransitionError reports a status change the lifecycle does not
// permit.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid booking transition from %q to %q", e.From, e.To)
}
