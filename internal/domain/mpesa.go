package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ResultCodeSuccess код успешного платежа в ответах и колбеках M-Pesa.
	ResultCodeSuccess = 0
	// ResultCodeStatusTimeout выставляется транзакции, статус которой не удалось получить за отведенное
	// количество проверок.
	ResultCodeStatusTimeout = -1

	StatusTimeoutDesc = "status resolution timed out"
)

var msisdnRe = regexp.MustCompile(`^254\d{9}$`)

// IsValidMSISDN проверяет номер телефона в формате 2547XXXXXXXX.
func IsValidMSISDN(phone string) bool {
	return msisdnRe.MatchString(phone)
}

// IsFinalResult сообщает, что статус с таким кодом результата больше не изменится. Провал по таймауту проверок
// статуса не окончательный: его еще может перекрыть ответ провайдера.
func IsFinalResult(status TransactionStatusType, resultCode *int) bool {
	if !status.IsTerminal() {
		return false
	}
	return !isStatusTimeout(status, resultCode)
}

func isStatusTimeout(status TransactionStatusType, resultCode *int) bool {
	return status == TransactionStatusFailed && resultCode != nil && *resultCode == ResultCodeStatusTimeout
}

// IsStatusTimedOut платеж провален reconciler'ом, провайдер так и не ответил.
func (t MpesaTransaction) IsStatusTimedOut() bool {
	return isStatusTimeout(t.Status, t.ResultCode)
}

func (t MpesaTransaction) IsFinal() bool {
	return IsFinalResult(t.Status, t.ResultCode)
}

// StatusFromResultCode единственное правило перехода: 0 - completed, все остальное - failed.
func StatusFromResultCode(code int) TransactionStatusType {
	if code == ResultCodeSuccess {
		return TransactionStatusCompleted
	}
	return TransactionStatusFailed
}

type STKPushRequest struct {
	Amount           decimal.Decimal
	Phone            string
	AccountReference string
	Description      string
}

type STKPushResponse struct {
	MerchantRequestID   string
	CheckoutRequestID   string
	ResponseCode        string
	ResponseDescription string
	CustomerMessage     string
}

// Accepted ответ провайдера означает, что пуш отправлен на телефон.
func (r *STKPushResponse) Accepted() bool {
	return r.ResponseCode == "0"
}

// STKQueryResult ответ на запрос статуса. Pending означает, что провайдер еще обрабатывает платеж
// и ResultCode не заполнен.
type STKQueryResult struct {
	Pending    bool
	ResultCode int
	ResultDesc string
}

// PaymentResult итог платежа, полученный из колбека, запроса статуса или реконсилятора.
type PaymentResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Amount            decimal.Decimal
	MpesaReceipt      string
	TransactionDate   *time.Time
	Phone             string
}
