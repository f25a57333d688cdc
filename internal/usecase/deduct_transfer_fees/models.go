package deduct_transfer_fees

import "time"

// Статусы обработки поставщика в батче
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Request модель запроса на списание комиссий за перевод
type Request struct {
	Period *time.Time // Расчётный месяц (опционально, по умолчанию текущий)
}

// ProviderResult результат обработки одного поставщика
type ProviderResult struct {
	ProviderID int64
	AccountRef string
	Status     string // success / skipped / failed
	Balance    int64  // Доступный баланс на момент проверки (если известен)
	ChargeID   string // ID списания при успехе
	Error      *string
}

// Response модель ответа батча списания комиссий
type Response struct {
	Period  string // "2026-08"
	Total   int
	Success int
	Skipped int
	Failed  int
	Results []ProviderResult
}
