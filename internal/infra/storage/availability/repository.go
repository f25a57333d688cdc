package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/pkg/dbmetrics"
	"github.com/salonbook/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий календаря доступности провайдеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет слот доступности.
// Уникальный ключ (provider_id, date, time_slot): повторная запись
// только переключает is_available, строки никогда не удаляются.
func (r *Repository) Upsert(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns(
			"provider_id",
			"date",
			"time_slot",
			"is_available",
		).
		Values(
			slot.ProviderID,
			slot.Date,
			slot.TimeSlot,
			slot.IsAvailable,
		).
		Suffix("ON CONFLICT (provider_id, date, time_slot) DO UPDATE SET is_available = EXCLUDED.is_available, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetAvailable получает объявленные доступные слоты провайдера.
// Если date указан - только на эту дату, иначе на все даты начиная с fromDate.
// Результат упорядочен по (date, time_slot).
func (r *Repository) GetAvailable(ctx context.Context, providerID int64, date *time.Time, fromDate time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"provider_id",
		"date",
		"time_slot",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("availability_slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"is_available": true})

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *date})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": fromDate})
	}

	selectBuilder = selectBuilder.OrderBy("date ASC, time_slot ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailable - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailable - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.ProviderID,
			&slot.Date,
			&slot.TimeSlot,
			&slot.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAvailable - scan row: %w", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAvailable - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
