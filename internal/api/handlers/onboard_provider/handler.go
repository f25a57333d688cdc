package onboard_provider

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonbook/booking-service/internal/api/handlers"
	"github.com/salonbook/booking-service/internal/api/middleware"
	onboardProvider "github.com/salonbook/booking-service/internal/usecase/onboard_provider"
)

const (
	msgInvalidProviderID  = "некорректный ID поставщика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgProviderNotFound   = "поставщик не найден"
	msgAlreadyOnboarded   = "леджер-аккаунт уже подключен"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase OnboardProviderUseCase
	logger  Logger
}

func NewHandler(useCase OnboardProviderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/{providerId}/ledger-account
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/ledger-account - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Аккаунт подключает только сам поставщик
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers/{id}/ledger-account - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if userID != providerID {
		h.logger.Warn("POST /providers/{id}/ledger-account - Access denied: provider_id=%d, user_id=%d",
			providerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req OnboardProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/ledger-account - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(providerID))
	if err != nil {
		switch {
		case errors.Is(err, onboardProvider.ErrProviderNotFound):
			h.logger.Warn("POST /providers/{id}/ledger-account - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, onboardProvider.ErrAlreadyOnboarded):
			h.logger.Warn("POST /providers/{id}/ledger-account - Already onboarded: provider_id=%d", providerID)
			handlers.RespondConflict(w, msgAlreadyOnboarded)

		case errors.Is(err, onboardProvider.ErrInvalidInput):
			h.logger.Warn("POST /providers/{id}/ledger-account - Invalid data: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /providers/{id}/ledger-account - Failed to onboard provider: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/ledger-account - Provider onboarded successfully: provider_id=%d, account=%s",
		providerID, result.AccountRef)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
