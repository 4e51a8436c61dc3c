package service

import (
	"github.com/fsdevblog/chama/internal/domain"
	"github.com/shopspring/decimal"
)

// ServiceFee фиксированная комиссия платформы с каждого взноса в группу.
var ServiceFee = decimal.NewFromInt(100) //nolint:mnd,gochecknoglobals

// SplitLeg одна часть разделенного платежа.
type SplitLeg struct {
	Type            domain.SplitType
	Amount          decimal.Decimal
	DestinationType domain.DestinationType
	Destination     string
}

// ComputeSplit делит amount на комиссию и взнос в пул. Сумма частей всегда равна amount.
// Пул уходит на банковский счет, если он строго больше routing.Threshold, иначе на M-Pesa номер.
// Если amount не превышает комиссию, возвращается domain.ErrAmountBelowFee.
func ComputeSplit(amount decimal.Decimal, routing domain.SplitRouting) ([]SplitLeg, error) {
	if !amount.GreaterThan(ServiceFee) {
		return nil, domain.ErrAmountBelowFee
	}
	pool := amount.Sub(ServiceFee)

	poolLeg := SplitLeg{
		Type:            domain.SplitPoolContribution,
		Amount:          pool,
		DestinationType: domain.DestinationMpesa,
		Destination:     routing.MpesaNumber,
	}
	if pool.GreaterThan(routing.Threshold) {
		poolLeg.DestinationType = domain.DestinationBank
		poolLeg.Destination = routing.BankAccount
	}

	return []SplitLeg{
		{
			Type:            domain.SplitServiceFee,
			Amount:          ServiceFee,
			DestinationType: domain.DestinationPlatform,
			Destination:     routing.PlatformAccount,
		},
		poolLeg,
	}, nil
}
