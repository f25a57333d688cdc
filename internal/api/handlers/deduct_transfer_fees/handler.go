package deduct_transfer_fees

import (
	"errors"
	"io"
	"net/http"

	"github.com/salonbook/booking-service/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPeriod      = "некорректный период, ожидается YYYY-MM"
)

type Handler struct {
	useCase DeductTransferFeesUseCase
	logger  Logger
}

func NewHandler(useCase DeductTransferFeesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /internal/ledger/deduct-transfer-fees
// Тело опционально: {"period": "2026-08"}, по умолчанию текущий месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeductTransferFeesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /internal/ledger/deduct-transfer-fees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /internal/ledger/deduct-transfer-fees - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("POST /internal/ledger/deduct-transfer-fees - Batch failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /internal/ledger/deduct-transfer-fees - Batch finished: period=%s, total=%d, success=%d, skipped=%d, failed=%d",
		result.Period, result.Total, result.Success, result.Skipped, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
