package onboard_provider

import (
	onboardProvider "github.com/salonbook/booking-service/internal/usecase/onboard_provider"
)

// OnboardProviderRequest тело запроса на подключение к леджеру
type OnboardProviderRequest struct {
	Email string `json:"email"`
}

// OnboardProviderResponse HTTP ответ с созданным аккаунтом
type OnboardProviderResponse struct {
	ProviderID int64  `json:"providerId"`
	AccountRef string `json:"accountRef"`
}

// ToUseCaseRequest формирует запрос к use case
func (r *OnboardProviderRequest) ToUseCaseRequest(providerID int64) *onboardProvider.Request {
	return &onboardProvider.Request{
		ProviderID: providerID,
		Email:      r.Email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *onboardProvider.Response) *OnboardProviderResponse {
	return &OnboardProviderResponse{
		ProviderID: resp.ProviderID,
		AccountRef: resp.AccountRef,
	}
}
