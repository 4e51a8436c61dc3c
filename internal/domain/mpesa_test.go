package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinalResult(t *testing.T) {
	timeout := ResultCodeStatusTimeout
	cancelled := 1032
	success := ResultCodeSuccess

	tests := []struct {
		name   string
		status TransactionStatusType
		code   *int
		want   bool
	}{
		{name: "pending", status: TransactionStatusPending, want: false},
		{name: "completed", status: TransactionStatusCompleted, code: &success, want: true},
		{name: "failed by provider", status: TransactionStatusFailed, code: &cancelled, want: true},
		{name: "failed without code", status: TransactionStatusFailed, want: true},
		{name: "status timeout", status: TransactionStatusFailed, code: &timeout, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFinalResult(tt.status, tt.code))
			tx := MpesaTransaction{Status: tt.status, ResultCode: tt.code}
			assert.Equal(t, tt.want, tx.IsFinal())
		})
	}

	assert.True(t, MpesaTransaction{Status: TransactionStatusFailed, ResultCode: &timeout}.IsStatusTimedOut())
	assert.False(t, MpesaTransaction{Status: TransactionStatusFailed, ResultCode: &cancelled}.IsStatusTimedOut())
}
