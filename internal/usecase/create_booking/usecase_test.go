package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/pkg/types"
)

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		// Успешный Create возвращает ту же модель с заполненным ID
		if args.Error(1) == nil {
			return booking, nil
		}
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetActiveByProvider(ctx context.Context, providerID int64, date *time.Time, fromDate time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, providerID, date, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockAvailabilityRepo struct{ mock.Mock }

func (m *MockAvailabilityRepo) GetAvailable(ctx context.Context, providerID int64, date *time.Time, fromDate time.Time) ([]*domain.AvailabilitySlot, error) {
	args := m.Called(ctx, providerID, date, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AvailabilitySlot), args.Error(1)
}

type MockProviderRepo struct{ mock.Mock }

func (m *MockProviderRepo) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var (
	testDate = time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
)

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

func validRequest() *Request {
	return &Request{
		ProviderID:      7,
		UserID:          100,
		CustomerName:    "Tanaka Yuki",
		ServiceName:     "Cut & Color",
		Date:            testDate,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 90,
		Price:           6000,
	}
}

func newTestUseCase(br *MockBookingRepo, ar *MockAvailabilityRepo, pr *MockProviderRepo) *UseCase {
	uc := NewUseCase(br, ar, pr, fakeTxManager{}, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	br := new(MockBookingRepo)
	ar := new(MockAvailabilityRepo)
	pr := new(MockProviderRepo)

	ledgerAccount := "acct_123"
	pr.On("GetByID", mock.Anything, int64(7)).Return(&domain.Provider{ID: 7, LedgerAccountID: &ledgerAccount}, nil)
	ar.On("GetAvailable", mock.Anything, int64(7), &testDate, testDate).
		Return([]*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")}, nil)
	br.On("GetActiveByProvider", mock.Anything, int64(7), &testDate, testDate).
		Return([]*domain.Booking{}, nil)
	br.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ProviderID == 7 &&
			b.Status == domain.StatusPending &&
			b.StartTime.String() == "10:00" &&
			b.EndTime.String() == "11:30" &&
			b.Amount == 7380 && // 6000 + сервисный сбор 23%
			b.LedgerAccountID != nil && *b.LedgerAccountID == "acct_123"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Booking).ID = 42
	}).Return(nil, nil)

	resp, err := newTestUseCase(br, ar, pr).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "11:30", resp.EndTime.String())
	assert.Equal(t, "pending", resp.Status)
	br.AssertExpectations(t)
}

func TestExecute_SlotConflicts(t *testing.T) {
	tests := []struct {
		name     string
		slots    []*domain.AvailabilitySlot
		bookings []*domain.Booking
	}{
		{
			name:     "slot not declared",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "12:00")},
			bookings: []*domain.Booking{},
		},
		{
			name:     "successor block not declared",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00")},
			bookings: []*domain.Booking{},
		},
		{
			name:     "slot occupied by active booking",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")},
			bookings: []*domain.Booking{activeBooking(1, "10:00", 60)},
		},
		{
			name:     "successor block occupied",
			slots:    []*domain.AvailabilitySlot{declaredSlot(1, "10:00"), declaredSlot(2, "11:00")},
			bookings: []*domain.Booking{activeBooking(1, "11:00", 60)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := new(MockBookingRepo)
			ar := new(MockAvailabilityRepo)
			pr := new(MockProviderRepo)

			pr.On("GetByID", mock.Anything, int64(7)).Return(&domain.Provider{ID: 7}, nil)
			ar.On("GetAvailable", mock.Anything, int64(7), &testDate, testDate).Return(tt.slots, nil)
			br.On("GetActiveByProvider", mock.Anything, int64(7), &testDate, testDate).Return(tt.bookings, nil)

			resp, err := newTestUseCase(br, ar, pr).Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrSlotNotAvailable)
			assert.Nil(t, resp)
			br.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_DateInPast(t *testing.T) {
	req := validRequest()
	req.Date = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	resp, err := newTestUseCase(new(MockBookingRepo), new(MockAvailabilityRepo), new(MockProviderRepo)).
		Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Nil(t, resp)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepo), new(MockAvailabilityRepo), new(MockProviderRepo))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing provider", func(r *Request) { r.ProviderID = 0 }},
		{"missing user", func(r *Request) { r.UserID = 0 }},
		{"missing customer name", func(r *Request) { r.CustomerName = "" }},
		{"missing service name", func(r *Request) { r.ServiceName = "" }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"bad start time", func(r *Request) { r.StartTime = "25:00" }},
		{"negative duration", func(r *Request) { r.DurationMinutes = -60 }},
		{"duration too long", func(r *Request) { r.DurationMinutes = domain.MaxDurationMinutes + 1 }},
		{"negative price", func(r *Request) { r.Price = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestExecute_BookingPastMidnight(t *testing.T) {
	req := validRequest()
	req.StartTime = types.TimeString("23:30")
	req.DurationMinutes = 90

	resp, err := newTestUseCase(new(MockBookingRepo), new(MockAvailabilityRepo), new(MockProviderRepo)).
		Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}
