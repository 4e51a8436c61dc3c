package client

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidCallback = errors.New("invalid stk callback")

// Имена полей CallbackMetadata.Item.
const (
	itemAmount          = "Amount"
	itemReceipt         = "MpesaReceiptNumber"
	itemTransactionDate = "TransactionDate"
	itemPhone           = "PhoneNumber"
)

type callbackEnvelope struct {
	Body struct {
		STKCallback *stkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type stkCallback struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        *int   `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  *struct {
		Item []callbackItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

// callbackItem значение бывает числом или строкой, поэтому хранится как есть.
type callbackItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

func (i callbackItem) text() string {
	raw := bytes.TrimSpace(i.Value)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// ParseCallback разбирает тело колбека STK пуша. CallbackMetadata присутствует только у успешных платежей.
func ParseCallback(body []byte) (*domain.PaymentResult, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Wrap(ErrInvalidCallback, err.Error())
	}
	cb := env.Body.STKCallback
	if cb == nil || cb.CheckoutRequestID == "" || cb.ResultCode == nil {
		return nil, errors.Wrap(ErrInvalidCallback, "missing stkCallback fields")
	}

	result := &domain.PaymentResult{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        *cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
	}
	if cb.CallbackMetadata == nil {
		return result, nil
	}

	for _, item := range cb.CallbackMetadata.Item {
		value := item.text()
		switch item.Name {
		case itemAmount:
			amount, err := decimal.NewFromString(value)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidCallback, "amount `%s`", value)
			}
			result.Amount = amount
		case itemReceipt:
			result.MpesaReceipt = value
		case itemTransactionDate:
			date, err := time.ParseInLocation(timestampLayout, value, nairobi)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidCallback, "transaction date `%s`", value)
			}
			result.TransactionDate = &date
		case itemPhone:
			if _, err := strconv.ParseUint(value, 10, 64); err == nil {
				result.Phone = value
			}
		}
	}
	return result, nil
}
