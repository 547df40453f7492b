package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestDateSpecCustomRange(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	b := Booking{ID: "b1", Method: MethodCustom, FromDate: datePtr(from), ToDate: datePtr(to)}

	spec, err := b.DateSpec()
	require.NoError(t, err)
	assert.Equal(t, MethodCustom, spec.Method)
	assert.Equal(t, to, spec.WindowEnd())
}

func TestDateSpecQuickDurations(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	cases := map[string]time.Duration{
		"30 minutes": 30 * time.Minute,
		"1 hour":     time.Hour,
		"Half-day":   4 * time.Hour,
		"Full-day":   8 * time.Hour,
	}
	for length, offset := range cases {
		b := Booking{ID: "b1", Method: MethodQuick, Date: datePtr(start), ServiceLength: length}
		spec, err := b.DateSpec()
		require.NoError(t, err, length)
		assert.Equal(t, start.Add(offset), spec.WindowEnd(), length)
	}
}

func TestDateSpecInfersMethodFromFields(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)

	legacyRange := Booking{ID: "b1", FromDate: datePtr(from), ToDate: datePtr(to)}
	spec, err := legacyRange.DateSpec()
	require.NoError(t, err)
	assert.Equal(t, MethodCustom, spec.Method)

	legacyQuick := Booking{ID: "b2", Date: datePtr(from), ServiceLength: "1 hour"}
	spec, err = legacyQuick.DateSpec()
	require.NoError(t, err)
	assert.Equal(t, MethodQuick, spec.Method)
}

func TestDateSpecRejectsBadShapes(t *testing.T) {
	from := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	cases := []Booking{
		{ID: "none"},
		{ID: "inverted", Method: MethodCustom, FromDate: datePtr(from), ToDate: datePtr(to)},
		{ID: "half", Method: MethodCustom, FromDate: datePtr(from)},
		{ID: "nodate", Method: MethodQuick, ServiceLength: "1 hour"},
		{ID: "badlen", Method: MethodQuick, Date: datePtr(from), ServiceLength: "2 hours"},
		{ID: "badmethod", Method: "weekly", Date: datePtr(from)},
	}
	for _, b := range cases {
		_, err := b.DateSpec()
		assert.Error(t, err, b.ID)
	}
}

func TestCompletable(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	b := Booking{ID: "b1", Status: BookingAccepted, Method: MethodCustom, FromDate: datePtr(from), ToDate: datePtr(to)}

	assert.False(t, b.Completable(to.Add(-time.Hour)))
	assert.True(t, b.Completable(to), "window end itself counts as elapsed")
	assert.True(t, b.Completable(to.Add(time.Hour)))

	b.Status = BookingPending
	assert.False(t, b.Completable(to.Add(time.Hour)))

	b.Status = BookingCompleted
	assert.False(t, b.Completable(to.Add(time.Hour)))
}
