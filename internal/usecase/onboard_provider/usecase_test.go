package onboard_provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salonbook/booking-service/internal/domain"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
	"github.com/salonbook/booking-service/internal/integrations/paymentledger"
)

type MockProviderRepo struct{ mock.Mock }

func (m *MockProviderRepo) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepo) SetLedgerAccount(ctx context.Context, id int64, accountRef string) error {
	return m.Called(ctx, id, accountRef).Error(0)
}

type MockLedgerClient struct{ mock.Mock }

func (m *MockLedgerClient) CreateAccount(ctx context.Context, email string) (*paymentledger.AccountResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentledger.AccountResult), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestExecute_Onboarding(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and links account", func(t *testing.T) {
		repo := new(MockProviderRepo)
		ledger := new(MockLedgerClient)
		uc := NewUseCase(repo, ledger, noopLogger{})

		repo.On("GetByID", ctx, int64(7)).Return(&domain.Provider{ID: 7}, nil)
		ledger.On("CreateAccount", ctx, "salon@example.jp").
			Return(&paymentledger.AccountResult{AccountID: "acct_123"}, nil)
		repo.On("SetLedgerAccount", ctx, int64(7), "acct_123").Return(nil)

		resp, err := uc.Execute(ctx, &Request{ProviderID: 7, Email: "salon@example.jp"})

		assert.NoError(t, err)
		assert.Equal(t, "acct_123", resp.AccountRef)
		repo.AssertExpectations(t)
		ledger.AssertExpectations(t)
	})

	t.Run("already onboarded", func(t *testing.T) {
		repo := new(MockProviderRepo)
		ledger := new(MockLedgerClient)
		uc := NewUseCase(repo, ledger, noopLogger{})

		existing := "acct_old"
		repo.On("GetByID", ctx, int64(7)).
			Return(&domain.Provider{ID: 7, LedgerAccountID: &existing}, nil)

		_, err := uc.Execute(ctx, &Request{ProviderID: 7, Email: "salon@example.jp"})

		assert.ErrorIs(t, err, ErrAlreadyOnboarded)
		ledger.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("provider not found", func(t *testing.T) {
		repo := new(MockProviderRepo)
		uc := NewUseCase(repo, new(MockLedgerClient), noopLogger{})

		repo.On("GetByID", ctx, int64(404)).Return(nil, providerRepo.ErrProviderNotFound)

		_, err := uc.Execute(ctx, &Request{ProviderID: 404, Email: "salon@example.jp"})

		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("link failure surfaces as internal error", func(t *testing.T) {
		repo := new(MockProviderRepo)
		ledger := new(MockLedgerClient)
		uc := NewUseCase(repo, ledger, noopLogger{})

		repo.On("GetByID", ctx, int64(7)).Return(&domain.Provider{ID: 7}, nil)
		ledger.On("CreateAccount", ctx, "salon@example.jp").
			Return(&paymentledger.AccountResult{AccountID: "acct_123"}, nil)
		repo.On("SetLedgerAccount", ctx, int64(7), "acct_123").
			Return(errors.New("connection reset"))

		_, err := uc.Execute(ctx, &Request{ProviderID: 7, Email: "salon@example.jp"})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewUseCase(new(MockProviderRepo), new(MockLedgerClient), noopLogger{})

		_, err := uc.Execute(ctx, &Request{ProviderID: 0, Email: "salon@example.jp"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{ProviderID: 7, Email: "not-an-email"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
