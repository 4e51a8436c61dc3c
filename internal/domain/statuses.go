package domain

type BatchStatusType string

const (
	BatchStatusRecruiting BatchStatusType = "recruiting"
	BatchStatusActive     BatchStatusType = "active"
	BatchStatusCompleted  BatchStatusType = "completed"
)

type SavingsDirectionType string

const (
	SavingsDeposit    SavingsDirectionType = "deposit"
	SavingsWithdrawal SavingsDirectionType = "withdrawal"
)

type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "pending"
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusFailed    TransactionStatusType = "failed"
)

// IsTerminal сообщает, что транзакция вышла из pending. См. также IsFinalResult.
func (t TransactionStatusType) IsTerminal() bool {
	return t == TransactionStatusCompleted || t == TransactionStatusFailed
}

type SplitType string

const (
	SplitServiceFee       SplitType = "service_fee"
	SplitPoolContribution SplitType = "pool_contribution"
)

type DestinationType string

const (
	DestinationPlatform DestinationType = "platform"
	DestinationBank     DestinationType = "bank"
	DestinationMpesa    DestinationType = "mpesa"
)

type PayoutStatusType string

const (
	PayoutStatusScheduled PayoutStatusType = "scheduled"
	PayoutStatusPaid      PayoutStatusType = "paid"
)

// SavingsAccountReference - account reference STK пуша, который зачисляется в личные сбережения.
const SavingsAccountReference = "SAVINGS"
