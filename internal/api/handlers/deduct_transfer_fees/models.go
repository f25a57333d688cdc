package deduct_transfer_fees

import (
	"fmt"
	"time"

	deductTransferFees "github.com/salonbook/booking-service/internal/usecase/deduct_transfer_fees"
)

// периоды передаются как "2026-08"
const periodFormat = "2006-01"

// DeductTransferFeesRequest тело запроса на запуск батча
// Period опционален, по умолчанию текущий месяц
type DeductTransferFeesRequest struct {
	Period *string `json:"period,omitempty"` // "2026-08"
}

// ToUseCaseRequest формирует запрос к use case
func (r *DeductTransferFeesRequest) ToUseCaseRequest() (*deductTransferFees.Request, error) {
	req := &deductTransferFees.Request{}

	if r.Period != nil && *r.Period != "" {
		period, err := time.Parse(periodFormat, *r.Period)
		if err != nil {
			return nil, fmt.Errorf("invalid period value: %w", err)
		}
		req.Period = &period
	}

	return req, nil
}
