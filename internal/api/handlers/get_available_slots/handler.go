package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/salonbook/booking-service/internal/api/handlers"
	"github.com/salonbook/booking-service/internal/domain"
	getAvailableSlots "github.com/salonbook/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidProviderID = "некорректный ID поставщика"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "некорректная длительность услуги"
	msgProviderNotFound  = "поставщик не найден"
	msgCorruptData       = "расписание поставщика повреждено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Дата (опционально): без неё отдаются все даты с сегодняшнего дня
	var date *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	// Длительность (опционально): без неё используется длительность по умолчанию
	duration := 0
	if durationStr := r.URL.Query().Get("durationMinutes"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid duration %q: %v", durationStr, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProviderID:      providerID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/available-slots - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getAvailableSlots.ErrCorruptTimeSlot):
			h.logger.Error("GET /providers/{id}/available-slots - Corrupt schedule: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCorruptData)

		default:
			h.logger.Error("GET /providers/{id}/available-slots - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/available-slots - %d slots returned: provider_id=%d",
		len(result.Slots), providerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
