package onboard_provider

import (
	"context"

	onboardProvider "github.com/salonbook/booking-service/internal/usecase/onboard_provider"
)

type OnboardProviderUseCase interface {
	Execute(ctx context.Context, req *onboardProvider.Request) (*onboardProvider.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
