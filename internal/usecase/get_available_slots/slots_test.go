package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/pkg/types"
)

var testDate = time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

func declaredSlot(id int64, timeSlot string) *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:          id,
		ProviderID:  7,
		Date:        testDate,
		TimeSlot:    timeSlot,
		IsAvailable: true,
	}
}

func activeBooking(id int64, start string, durationMinutes int) *domain.Booking {
	startTime := types.TimeString(start)
	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		panic(err)
	}
	return &domain.Booking{
		ID:              id,
		ProviderID:      7,
		BookingDate:     testDate,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		EndTime:         endTime,
		Status:          domain.StatusPending,
	}
}

func starts(t *testing.T, schedules []*daySchedule, duration int) []string {
	t.Helper()
	require.Len(t, schedules, 1)

	result := make([]string, 0)
	for _, m := range schedules[0].availableStarts(duration) {
		ts, err := types.NewTimeStringFromMinutes(m)
		require.NoError(t, err)
		result = append(result, ts.String())
	}
	return result
}

func TestAvailableStarts_SingleBlock(t *testing.T) {
	tests := []struct {
		name     string
		slots    []*domain.AvailabilitySlot
		bookings []*domain.Booking
		duration int
		want     []string
	}{
		{
			name:     "free declared slots are returned",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")},
			duration: 60,
			want:     []string{"10:00", "11:00"},
		},
		{
			name:     "booked slot is excluded",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")},
			bookings: []*domain.Booking{activeBooking(1, "10:00", 60)},
			duration: 60,
			want:     []string{"11:00"},
		},
		{
			name:     "range form of declared slot is honored",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00-11:00")},
			duration: 60,
			want:     []string{"10:00"},
		},
		{
			name:     "touching booking does not conflict",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")},
			bookings: []*domain.Booking{activeBooking(1, "09:00", 60)},
			duration: 60,
			want:     []string{"10:00", "11:00"},
		},
		{
			name:     "partial overlap conflicts",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")},
			bookings: []*domain.Booking{activeBooking(1, "09:30", 60)},
			duration: 60,
			want:     []string{"11:00"},
		},
		{
			name:     "short service still occupies its block via overlap",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00")},
			bookings: []*domain.Booking{activeBooking(1, "10:00", 30)},
			duration: 30,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedules, err := buildSchedules(tt.slots, tt.bookings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, starts(t, schedules, tt.duration))
		})
	}
}

func TestAvailableStarts_Contiguity(t *testing.T) {
	tests := []struct {
		name     string
		slots    []*domain.AvailabilitySlot
		bookings []*domain.Booking
		duration int
		want     []string
	}{
		{
			name:     "90 minutes needs two declared blocks",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")},
			duration: 90,
			want:     []string{"10:00"},
		},
		{
			name:     "gap in declared blocks breaks contiguity",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "12:00")},
			duration: 90,
			want:     []string{},
		},
		{
			name: "booking in successor block breaks contiguity",
			slots: []*domain.AvailabilitySlot{
				declaredSlot(1, "10:00"), declaredSlot(2, "11:00"), declaredSlot(3, "12:00"), declaredSlot(4, "13:00"),
			},
			bookings: []*domain.Booking{activeBooking(1, "11:00", 60)},
			duration: 90,
			want:     []string{"12:00"},
		},
		{
			name: "120 minutes needs exactly two blocks",
			slots: []*domain.AvailabilitySlot{
				declaredSlot(1, "10:00"), declaredSlot(2, "11:00"), declaredSlot(3, "12:00"),
			},
			duration: 120,
			want:     []string{"10:00", "11:00"},
		},
		{
			name:     "duration past midnight never fits",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "23:00")},
			duration: 90,
			want:     []string{},
		},
		{
			name:     "last block of the day fits exactly",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "23:00")},
			duration: 60,
			want:     []string{"23:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedules, err := buildSchedules(tt.slots, tt.bookings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, starts(t, schedules, tt.duration))
		})
	}
}

func TestBuildSchedules_CorruptData(t *testing.T) {
	t.Run("corrupt availability slot", func(t *testing.T) {
		_, err := buildSchedules([]*domain.AvailabilitySlot{declaredSlot(1, "25:99")}, nil)
		assert.ErrorIs(t, err, ErrCorruptTimeSlot)
	})

	t.Run("corrupt booking start time", func(t *testing.T) {
		booking := activeBooking(1, "10:00", 60)
		booking.StartTime = types.TimeString("garbage")
		booking.EndTime = types.TimeString("")

		_, err := buildSchedules([]*domain.AvailabilitySlot{declaredSlot(1, "10:00")}, []*domain.Booking{booking})
		assert.ErrorIs(t, err, ErrCorruptTimeSlot)
	})
}

func TestBuildSchedules_GroupsByDate(t *testing.T) {
	otherDate := testDate.AddDate(0, 0, 1)
	slots := []*domain.AvailabilitySlot{
		declaredSlot(1, "10:00"),
		{ID: 2, ProviderID: 7, Date: otherDate, TimeSlot: "14:00", IsAvailable: true},
	}
	booking := activeBooking(1, "10:00", 60)

	schedules, err := buildSchedules(slots, []*domain.Booking{booking})
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	// Бронирование затрагивает только свою дату
	assert.Empty(t, schedules[0].availableStarts(60))
	assert.Equal(t, []int{14 * 60}, schedules[1].availableStarts(60))
}
