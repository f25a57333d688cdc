package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/booking-service/pkg/types"
)

func makeBooking(date time.Time, start types.TimeString, amount int64) *Booking {
	return &Booking{
		ID:              1,
		ProviderID:      10,
		UserID:          20,
		BookingDate:     date,
		StartTime:       start,
		DurationMinutes: 60,
		Amount:          amount,
		Status:          StatusConfirmed,
	}
}

func TestEvaluateCancellation_Boundary(t *testing.T) {
	bookingDate := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
	booking := makeBooking(bookingDate, "14:00", 7380)
	// Момент начала брони: 2026-01-25 14:00:00
	instant := time.Date(2026, 1, 25, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		now          time.Time
		wantEligible bool
	}{
		{name: "exactly 180 minutes before", now: instant.Add(-180 * time.Minute), wantEligible: true},
		{name: "181 minutes before", now: instant.Add(-181 * time.Minute), wantEligible: true},
		{name: "179 minutes before", now: instant.Add(-179 * time.Minute), wantEligible: false},
		{name: "at booking instant", now: instant, wantEligible: false},
		{name: "booking already passed", now: instant.Add(2 * time.Hour), wantEligible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := EvaluateCancellation(booking, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEligible, decision.Eligible)

			if tt.wantEligible {
				assert.Equal(t, int64(7380), decision.RefundAmount)
				assert.Equal(t, int64(0), decision.CancellationFee)
			} else {
				assert.Equal(t, int64(0), decision.RefundAmount)
				assert.Equal(t, int64(7380), decision.CancellationFee)
			}
		})
	}
}

func TestEvaluateCancellation_CorruptStartTime(t *testing.T) {
	booking := makeBooking(time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC), "25:99", 1000)

	_, err := EvaluateCancellation(booking, time.Now())
	require.Error(t, err)
}

func TestBooking_CanTransitionTo(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.CanTransitionTo(StatusConfirmed))
	assert.False(t, b.CanTransitionTo(StatusCompleted))
	assert.False(t, b.CanTransitionTo(StatusCancelled))

	b.Status = StatusConfirmed
	assert.True(t, b.CanTransitionTo(StatusCompleted))
	assert.False(t, b.CanTransitionTo(StatusPending))

	b.Status = StatusCancelled
	assert.False(t, b.CanTransitionTo(StatusConfirmed))
	assert.False(t, b.CanTransitionTo(StatusCompleted))

	b.Status = StatusCompleted
	assert.False(t, b.CanTransitionTo(StatusConfirmed))
}

func TestBooking_OccupiedRange(t *testing.T) {
	// EndTime сохранён - используется как есть
	b := &Booking{StartTime: "10:00", EndTime: "11:30", DurationMinutes: 90}
	r, err := b.OccupiedRange()
	require.NoError(t, err)
	assert.Equal(t, 600, r.Start)
	assert.Equal(t, 690, r.End)

	// EndTime отсутствует - вычисляется из длительности
	b = &Booking{StartTime: "10:00", DurationMinutes: 90}
	r, err = b.OccupiedRange()
	require.NoError(t, err)
	assert.Equal(t, 690, r.End)

	// Длительность не указана - дефолтные 60 минут
	b = &Booking{StartTime: "10:00"}
	r, err = b.OccupiedRange()
	require.NoError(t, err)
	assert.Equal(t, 660, r.End)
}
