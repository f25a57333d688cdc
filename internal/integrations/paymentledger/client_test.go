package paymentledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"
)

func TestAvailableJPY(t *testing.T) {
	t.Run("finds JPY amount among currencies", func(t *testing.T) {
		b := &stripe.Balance{
			Available: []*stripe.Amount{
				{Currency: stripe.CurrencyUSD, Amount: 1200},
				{Currency: stripe.CurrencyJPY, Amount: 250},
			},
		}

		assert.Equal(t, int64(250), availableJPY(b))
	})

	t.Run("no JPY balance means empty account", func(t *testing.T) {
		b := &stripe.Balance{
			Available: []*stripe.Amount{
				{Currency: stripe.CurrencyUSD, Amount: 1200},
			},
		}

		assert.Equal(t, int64(0), availableJPY(b))
	})

	t.Run("negative balance passes through", func(t *testing.T) {
		b := &stripe.Balance{
			Available: []*stripe.Amount{
				{Currency: stripe.CurrencyJPY, Amount: -100},
			},
		}

		assert.Equal(t, int64(-100), availableJPY(b))
	})
}
