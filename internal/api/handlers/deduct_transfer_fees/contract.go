package deduct_transfer_fees

import (
	"context"

	deductTransferFees "github.com/salonbook/booking-service/internal/usecase/deduct_transfer_fees"
)

type DeductTransferFeesUseCase interface {
	Execute(ctx context.Context, req *deductTransferFees.Request) (*deductTransferFees.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
