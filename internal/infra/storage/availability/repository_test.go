package availability

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/booking-service/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Upsert(t *testing.T) {
	date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	t.Run("declares new slot", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO availability_slots .+ ON CONFLICT \(provider_id, date, time_slot\) DO UPDATE`).
			WithArgs(int64(10), date, "10:00", true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(7), now, now))

		slot, err := repo.Upsert(context.Background(), &domain.AvailabilitySlot{
			ProviderID:  10,
			Date:        date,
			TimeSlot:    "10:00",
			IsAvailable: true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), slot.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	// Повторная запись того же (provider_id, date, time_slot) проходит
	// через ON CONFLICT DO UPDATE: возвращается существующая строка, без ошибки.
	t.Run("re-declaring an existing slot updates it in place", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO availability_slots .+ ON CONFLICT \(provider_id, date, time_slot\) DO UPDATE`).
			WithArgs(int64(10), date, "10:00", false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(7), now.Add(-time.Hour), now))

		slot, err := repo.Upsert(context.Background(), &domain.AvailabilitySlot{
			ProviderID:  10,
			Date:        date,
			TimeSlot:    "10:00",
			IsAvailable: false,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), slot.ID)
		assert.False(t, slot.IsAvailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("execute error wraps sentinel", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`INSERT INTO availability_slots`).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Upsert(context.Background(), &domain.AvailabilitySlot{
			ProviderID:  10,
			Date:        date,
			TimeSlot:    "10:00",
			IsAvailable: true,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}
