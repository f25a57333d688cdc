package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/salonbook/booking-service/pkg/metrics"
)

// DBExecutor общий интерфейс выполнения запросов.
// Реализуется *sql.DB, *sql.Tx и обёртками этого пакета.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст.
// Репозитории получают её через GetExecutor.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть,
// иначе переданный fallback executor.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}

// DB обёртка над *sql.DB, собирающая метрики времени выполнения запросов
type DB struct {
	db        *sql.DB
	metrics   *metrics.Metrics
	operation func(query string) string
}

// Wrap оборачивает *sql.DB сбором метрик.
// operationFn извлекает имя операции из SQL для лейбла метрики.
func Wrap(db *sql.DB, m *metrics.Metrics, operationFn func(query string) string) *DB {
	return &DB{db: db, metrics: m, operation: operationFn}
}

// WrapWithDefault оборачивает *sql.DB сбором метрик с дефолтным именованием операций
// и запускает фоновый сбор метрик connection pool до закрытия stopCh.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, defaultOperation)
	go wrapped.collectPoolStats(dbName, stopCh)
	return wrapped
}

// ExecContext выполняет запрос с замером времени
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	op := d.operation(query)
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(op, start, err)
	return res, err
}

// QueryContext выполняет запрос с замером времени
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	op := d.operation(query)
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(op, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с замером времени.
// Ошибка видна только на Scan, поэтому здесь фиксируется только длительность.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	op := d.operation(query)
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(op, start, nil)
	return row
}

// BeginTx начинает транзакцию. Запросы внутри транзакции метриками не оборачиваются.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return d.db.BeginTx(ctx, opts)
}

func (d *DB) observe(op string, start time.Time, err error) {
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		d.metrics.DBQueryErrors.WithLabelValues(op).Inc()
	}
}

func (d *DB) collectPoolStats(dbName string, stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsIdle.WithLabelValues(dbName).Set(float64(stats.Idle))
			d.metrics.DBConnectionsInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
		}
	}
}

// defaultOperation определяет имя операции по первому слову SQL
func defaultOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
