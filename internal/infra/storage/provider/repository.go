package provider

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/pkg/dbmetrics"
	"github.com/salonbook/booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий реестра провайдеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория провайдеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает провайдера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"ledger_account_id",
		"created_at",
		"updated_at",
	).
		From("providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var p domain.Provider
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.LedgerAccountID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %w", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// ListWithLedgerAccounts получает всех провайдеров с привязанным
// аккаунтом леджера. Используется батчем списания комиссии за перевод.
func (r *Repository) ListWithLedgerAccounts(ctx context.Context) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"ledger_account_id",
		"created_at",
		"updated_at",
	).
		From("providers").
		Where(squirrel.NotEq{"ledger_account_id": nil}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithLedgerAccounts - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithLedgerAccounts - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		var p domain.Provider
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&p.LedgerAccountID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithLedgerAccounts - scan row: %w", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time

		providers = append(providers, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithLedgerAccounts - rows error: %w", ErrScanRow, err)
	}

	return providers, nil
}

// SetLedgerAccount сохраняет ссылку на connected account провайдера
func (r *Repository) SetLedgerAccount(ctx context.Context, id int64, accountRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("ledger_account_id", accountRef).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetLedgerAccount - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetLedgerAccount - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetLedgerAccount - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProviderNotFound
	}

	return nil
}
