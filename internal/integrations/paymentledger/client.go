package paymentledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/balance"
	"github.com/stripe/stripe-go/v76/charge"
	"github.com/stripe/stripe-go/v76/refund"
)

const defaultCurrency = string(stripe.CurrencyJPY)

// Client клиент платёжного леджера поверх Stripe Connect.
// Все суммы в минимальных единицах валюты (для JPY - иены).
type Client struct {
	timeout         time.Duration
	payoutAnchorDay int64
	log             Logger
}

// NewClient создает новый экземпляр клиента леджера.
// apiKey устанавливается глобально для stripe SDK.
func NewClient(apiKey string, timeout time.Duration, payoutAnchorDay int64, log Logger) *Client {
	stripe.Key = apiKey

	return &Client{
		timeout:         timeout,
		payoutAnchorDay: payoutAnchorDay,
		log:             log,
	}
}

// CreateAccount создает connected account поставщика (express, JP)
// с ежемесячной выплатой в заданный день месяца
func (c *Client) CreateAccount(ctx context.Context, email string) (*AccountResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String("JP"),
		Email:   stripe.String(email),
		Settings: &stripe.AccountSettingsParams{
			Payouts: &stripe.AccountSettingsPayoutsParams{
				Schedule: &stripe.AccountSettingsPayoutsScheduleParams{
					Interval:      stripe.String("monthly"),
					MonthlyAnchor: stripe.Int64(c.payoutAnchorDay),
				},
			},
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	acct, err := account.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAccount - account.New: %v", ErrAccountCreateFailed, err)
	}

	c.log.Info("Created ledger account %s for email=%s", acct.ID, email)

	return &AccountResult{AccountID: acct.ID}, nil
}

// Refund выполняет полный возврат средств по платежу.
// Идемпотентность обеспечивается uuid-ключом на каждый вызов.
func (c *Client) Refund(ctx context.Context, paymentIntentID, accountRef string) (*RefundResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	if accountRef != "" {
		params.SetStripeAccount(accountRef)
	}

	r, err := refund.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: Refund - refund.New: %v", ErrRefundFailed, err)
	}

	c.log.Info("Refund %s created for payment=%s, amount=%d", r.ID, paymentIntentID, r.Amount)

	return &RefundResult{
		RefundID: r.ID,
		Amount:   r.Amount,
		Currency: string(r.Currency),
		Status:   string(r.Status),
	}, nil
}

// AvailableBalance возвращает доступный баланс connected аккаунта в JPY
func (c *Client) AvailableBalance(ctx context.Context, accountRef string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.BalanceParams{}
	params.Context = ctx
	params.SetStripeAccount(accountRef)

	b, err := balance.Get(params)
	if err != nil {
		return 0, fmt.Errorf("%w: AvailableBalance - balance.Get: %v", ErrBalanceUnavailable, err)
	}

	return availableJPY(b), nil
}

// availableJPY находит доступный JPY-баланс в ответе леджера.
// Аккаунт без JPY-баланса считается пустым.
func availableJPY(b *stripe.Balance) int64 {
	for _, a := range b.Available {
		if string(a.Currency) == defaultCurrency {
			return a.Amount
		}
	}
	return 0
}

// DeductTransferFee списывает комиссию за перевод с connected аккаунта
// в пользу платформы (account debit). period используется в описании
// списания в формате YYYY-MM.
func (c *Client) DeductTransferFee(ctx context.Context, accountRef string, amount int64, period time.Time) (*ChargeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(defaultCurrency),
		Description: stripe.String(fmt.Sprintf("振込手数料 (%s)", period.Format("2006-01"))),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	if err := params.SetSource(accountRef); err != nil {
		return nil, fmt.Errorf("%w: DeductTransferFee - SetSource: %v", ErrInternal, err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: DeductTransferFee - charge.New: %v", ErrChargeFailed, err)
	}

	c.log.Info("Transfer fee charge %s created for account=%s, amount=%d", ch.ID, accountRef, amount)

	return &ChargeResult{
		ChargeID: ch.ID,
		Amount:   ch.Amount,
		Currency: string(ch.Currency),
	}, nil
}
