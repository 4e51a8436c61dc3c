package service

import (
	"testing"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit(t *testing.T) {
	routing := domain.SplitRouting{
		Threshold:       decimal.NewFromInt(10000),
		BankAccount:     "0110123456",
		MpesaNumber:     "254700000001",
		PlatformAccount: "platform",
	}

	cases := []struct {
		name            string
		amount          int64
		wantPool        int64
		wantDestination domain.DestinationType
		wantErr         error
	}{
		{name: "small contribution goes to mpesa", amount: 500, wantPool: 400, wantDestination: domain.DestinationMpesa},
		{name: "pool equal to threshold goes to mpesa", amount: 10100, wantPool: 10000,
			wantDestination: domain.DestinationMpesa},
		{name: "pool just above threshold goes to bank", amount: 10101, wantPool: 10001,
			wantDestination: domain.DestinationBank},
		{name: "amount equal to fee", amount: 100, wantErr: domain.ErrAmountBelowFee},
		{name: "amount below fee", amount: 50, wantErr: domain.ErrAmountBelowFee},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.NewFromInt(tc.amount)
			legs, err := ComputeSplit(amount, routing)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, legs, 2)

			fee, pool := legs[0], legs[1]
			assert.Equal(t, domain.SplitServiceFee, fee.Type)
			assert.Equal(t, domain.DestinationPlatform, fee.DestinationType)
			assert.True(t, fee.Amount.Equal(ServiceFee))

			assert.Equal(t, domain.SplitPoolContribution, pool.Type)
			assert.True(t, pool.Amount.Equal(decimal.NewFromInt(tc.wantPool)))
			assert.Equal(t, tc.wantDestination, pool.DestinationType)
			assert.True(t, fee.Amount.Add(pool.Amount).Equal(amount))
		})
	}
}

// Сумма частей совпадает с платежом для любой суммы, включая дробные.
func TestComputeSplit_SumPreserved(t *testing.T) {
	routing := domain.SplitRouting{Threshold: decimal.NewFromInt(10000)}
	for _, raw := range []string{"100.01", "101", "999.99", "10100", "10100.01", "250000"} {
		amount := decimal.RequireFromString(raw)
		legs, err := ComputeSplit(amount, routing)
		require.NoError(t, err, raw)
		assert.True(t, legs[0].Amount.Add(legs[1].Amount).Equal(amount), raw)
	}
}
