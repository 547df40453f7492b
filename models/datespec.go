package models

import (
	"fmt"
	"time"
)

// ServiceLengthOptions are the quick-booking durations and their offsets from
// the booking date.
var ServiceLengthOptions = map[string]time.Duration{
	"30 minutes": 30 * time.Minute,
	"1 hour":     time.Hour,
	"Half-day":   4 * time.Hour,
	"Full-day":   8 * time.Hour,
}

// DateSpec is the normalized view over the two historical booking date
// shapes: a custom range (From/To) or a single date plus a duration.
type DateSpec struct {
	Method        string
	From          time.Time
	To            time.Time
	Date          time.Time
	ServiceLength string
}

// DateSpec normalizes the booking's date fields into a tagged variant. It
// tolerates documents written before the bookingMethod field existed by
// inferring the shape from which fields are populated.
func (b *Booking) DateSpec() (DateSpec, error) {
	method := b.Method
	if method == "" {
		switch {
		case b.FromDate != nil && b.ToDate != nil:
			method = MethodCustom
		case b.Date != nil && b.ServiceLength != "":
			method = MethodQuick
		default:
			return DateSpec{}, fmt.Errorf("booking %s has no recognizable date shape", b.ID)
		}
	}

	switch method {
	case MethodCustom:
		if b.FromDate == nil || b.ToDate == nil {
			return DateSpec{}, fmt.Errorf("booking %s: custom method requires fromDate and toDate", b.ID)
		}
		if b.ToDate.Before(*b.FromDate) {
			return DateSpec{}, fmt.Errorf("booking %s: toDate precedes fromDate", b.ID)
		}
		return DateSpec{Method: MethodCustom, From: *b.FromDate, To: *b.ToDate}, nil
	case MethodQuick:
		if b.Date == nil {
			return DateSpec{}, fmt.Errorf("booking %s: quick method requires a date", b.ID)
		}
		if _, ok := ServiceLengthOptions[b.ServiceLength]; !ok {
			return DateSpec{}, fmt.Errorf("booking %s: unknown service length %q", b.ID, b.ServiceLength)
		}
		return DateSpec{Method: MethodQuick, Date: *b.Date, ServiceLength: b.ServiceLength}, nil
	default:
		return DateSpec{}, fmt.Errorf("booking %s: unknown booking method %q", b.ID, method)
	}
}

// WindowEnd returns the end of the service window: toDate for ranges, the
// date plus the duration offset for quick bookings.
func (d DateSpec) WindowEnd() time.Time {
	if d.Method == MethodQuick {
		return d.Date.Add(ServiceLengthOptions[d.ServiceLength])
	}
	return d.To
}

// Completable reports whether the booking's service window has elapsed while
// the booking is still Accepted.
func (b *Booking) Completable(now time.Time) bool {
	if b.Status != BookingAccepted {
		return false
	}
	spec, err := b.DateSpec()
	if err != nil {
		return false
	}
	return !now.Before(spec.WindowEnd())
}
