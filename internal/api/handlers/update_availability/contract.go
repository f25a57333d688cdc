package update_availability

import (
	"context"

	"github.com/salonbook/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	UpsertSlot(ctx context.Context, req *models.UpsertSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
