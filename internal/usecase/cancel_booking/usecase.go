package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonbook/booking-service/internal/domain"
	bookingRepo "github.com/salonbook/booking-service/internal/infra/storage/booking"
)

const (
	msgCancelledWithRefund    = "Бронирование отменено, средства возвращены полностью"
	msgCancelledWithFee       = "Бронирование отменено, удержан штраф за позднюю отмену"
	msgCancelledRefundPending = "Бронирование отменено, возврат не прошел и требует ручной обработки"
)

// UseCase use case для отмены бронирования с применением политики
// возврата: уведомление за 180 и более минут до начала - полный возврат,
// позже - полная сумма удерживается как штраф.
type UseCase struct {
	bookingRepo  BookingRepository
	ledgerClient LedgerClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ledgerClient LedgerClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ledgerClient: ledgerClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования.
// Отказ леджера в возврате НЕ откатывает отмену: бронирование переходит
// в cancelled с refunded_amount = 0, а ошибка возврата отдаётся в ответе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Отменить бронирование может владелец или его поставщик
	if booking.UserID != req.UserID && booking.ProviderID != req.UserID {
		uc.logger.Warn("CancelBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Повторная отмена - отдельная доменная ошибка
	if booking.IsCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", req.BookingID)
		return nil, ErrAlreadyCancelled
	}

	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled, status=%s", req.BookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	// 5. Применяем правило 180 минут
	now := uc.timeProvider.Now()
	decision, err := domain.EvaluateCancellation(booking, now)
	if err != nil {
		uc.logger.Error("CancelBooking: corrupt start time for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrCorruptTimeSlot, req.BookingID, err)
	}

	uc.logger.Info("CancelBooking: booking id=%d, canRefund=%t, refund=%d, fee=%d",
		req.BookingID, decision.Eligible, decision.RefundAmount, decision.CancellationFee)

	// 6. Возврат через леджер, если положен и есть платёж
	refundedAmount := int64(0)
	var refundError *string

	if decision.Eligible && booking.PaymentIntentID != nil {
		accountRef := ""
		if booking.LedgerAccountID != nil {
			accountRef = *booking.LedgerAccountID
		}

		refund, err := uc.ledgerClient.Refund(ctx, *booking.PaymentIntentID, accountRef)
		if err != nil {
			// Graceful degradation: отмена фиксируется, возврат уходит
			// в ручную обработку
			uc.logger.Error("CancelBooking: refund failed for booking id=%d: %v", req.BookingID, err)
			errMsg := err.Error()
			refundError = &errMsg
		} else {
			refundedAmount = refund.Amount
			uc.logger.Info("CancelBooking: refund %s issued for booking id=%d, amount=%d",
				refund.RefundID, req.BookingID, refund.Amount)
		}
	} else if decision.Eligible {
		// Возврат положен, но платежа в леджере нет - возвращать нечего,
		// считаем полную сумму возвращённой
		refundedAmount = decision.RefundAmount
	}

	// 7. Фиксируем отмену
	if err := uc.bookingRepo.Cancel(ctx, req.BookingID, refundedAmount, req.Reason, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Конкурентная отмена успела раньше
			uc.logger.Warn("CancelBooking: booking id=%d already cancelled concurrently", req.BookingID)
			return nil, ErrAlreadyCancelled
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d, refunded=%d",
		req.BookingID, refundedAmount)

	return &Response{
		BookingID:       req.BookingID,
		Status:          string(domain.StatusCancelled),
		CanRefund:       decision.Eligible,
		RefundAmount:    decision.RefundAmount,
		CancellationFee: decision.CancellationFee,
		RefundedAmount:  refundedAmount,
		RefundError:     refundError,
		Message:         cancellationMessage(decision, refundError),
	}, nil
}

func cancellationMessage(decision domain.RefundDecision, refundError *string) string {
	if !decision.Eligible {
		return msgCancelledWithFee
	}
	if refundError != nil {
		return msgCancelledRefundPending
	}
	return msgCancelledWithRefund
}
