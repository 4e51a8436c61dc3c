package api

import (
	"time"

	"github.com/fsdevblog/chama/internal/domain"
)

type UserResponse struct {
	ID           int64     `json:"id"`
	Phone        string    `json:"phone"`
	FullName     string    `json:"fullName"`
	ReferralCode string    `json:"referralCode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Phone:        u.Phone,
		FullName:     u.FullName,
		ReferralCode: u.ReferralCode,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type BatchResponse struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	OwnerID            int64                  `json:"ownerId"`
	ContributionAmount float64                `json:"contributionAmount"`
	PayoutAmount       float64                `json:"payoutAmount"`
	MaxMembers         int                    `json:"maxMembers"`
	CurrentMembers     int                    `json:"currentMembers"`
	CycleDays          int                    `json:"cycleDays"`
	Status             domain.BatchStatusType `json:"status"`
	StartedAt          *time.Time             `json:"startedAt,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
}

func newBatchResponse(b *domain.Batch) BatchResponse {
	return BatchResponse{
		ID:                 b.ID,
		Name:               b.Name,
		OwnerID:            b.OwnerID,
		ContributionAmount: b.ContributionAmount.InexactFloat64(),
		PayoutAmount:       b.PayoutAmount().InexactFloat64(),
		MaxMembers:         b.MaxMembers,
		CurrentMembers:     b.CurrentMembers,
		CycleDays:          b.CycleDays,
		Status:             b.Status,
		StartedAt:          b.StartedAt,
		CreatedAt:          b.CreatedAt,
	}
}

func newBatchesResponse(batches []domain.Batch) []BatchResponse {
	response := make([]BatchResponse, len(batches))
	for i := range batches {
		response[i] = newBatchResponse(&batches[i])
	}
	return response
}

type MemberResponse struct {
	UserID   int64     `json:"userId"`
	Position int       `json:"position"`
	JoinedAt time.Time `json:"joinedAt"`
}

type PayoutResponse struct {
	UserID   int64                   `json:"userId"`
	Position int                     `json:"position"`
	DueDate  time.Time               `json:"dueDate"`
	Amount   float64                 `json:"amount"`
	Status   domain.PayoutStatusType `json:"status"`
}

type TransactionResponse struct {
	CheckoutRequestID string                       `json:"checkoutRequestId"`
	MerchantRequestID string                       `json:"merchantRequestId"`
	BatchID           *int64                       `json:"batchId,omitempty"`
	Amount            float64                      `json:"amount"`
	Phone             string                       `json:"phone"`
	AccountReference  string                       `json:"accountReference"`
	Status            domain.TransactionStatusType `json:"status"`
	ResultCode        *int                         `json:"resultCode,omitempty"`
	ResultDesc        string                       `json:"resultDesc,omitempty"`
	MpesaReceipt      string                       `json:"mpesaReceipt,omitempty"`
	TransactionDate   *time.Time                   `json:"transactionDate,omitempty"`
	CreatedAt         time.Time                    `json:"createdAt"`
}

func newTransactionResponse(tx *domain.MpesaTransaction) TransactionResponse {
	return TransactionResponse{
		CheckoutRequestID: tx.CheckoutRequestID,
		MerchantRequestID: tx.MerchantRequestID,
		BatchID:           tx.BatchID,
		Amount:            tx.Amount.InexactFloat64(),
		Phone:             tx.Phone,
		AccountReference:  tx.AccountReference,
		Status:            tx.Status,
		ResultCode:        tx.ResultCode,
		ResultDesc:        tx.ResultDesc,
		MpesaReceipt:      tx.MpesaReceipt,
		TransactionDate:   tx.TransactionDate,
		CreatedAt:         tx.CreatedAt,
	}
}

type SplitResponse struct {
	Type            domain.SplitType             `json:"type"`
	Amount          float64                      `json:"amount"`
	DestinationType domain.DestinationType       `json:"destinationType"`
	Destination     string                       `json:"destination"`
	Status          domain.TransactionStatusType `json:"status"`
}

type SavingsTransactionResponse struct {
	Direction domain.SavingsDirectionType `json:"direction"`
	Amount    float64                     `json:"amount"`
	Reference string                      `json:"reference"`
	CreatedAt string                      `json:"createdAt"`
}

func newSavingsTransactionResponse(t *domain.SavingsTransaction) SavingsTransactionResponse {
	return SavingsTransactionResponse{
		Direction: t.Direction,
		Amount:    t.Amount.InexactFloat64(),
		Reference: t.Reference,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}
