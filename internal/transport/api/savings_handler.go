package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fsdevblog/chama/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const maxHistoryLimit = 200

type SavingsHandler struct {
	svs SavingsServicer
}

func NewSavingsHandler(svs SavingsServicer) *SavingsHandler {
	return &SavingsHandler{svs: svs}
}

type SavingsBalanceResponse struct {
	Balance   float64 `json:"balance"`
	Deposited float64 `json:"deposited"`
	Withdrawn float64 `json:"withdrawn"`
}

// Balance GET RouteGroup + SavingsBalanceRoute.
func (h *SavingsHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.Balance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SavingsBalanceResponse{
		Balance:   balance.Balance.InexactFloat64(),
		Deposited: balance.Deposited.InexactFloat64(),
		Withdrawn: balance.Withdrawn.InexactFloat64(),
	})
}

type SavingsMoveParams struct {
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `binding:"omitempty,max_bytes=64" json:"reference"`
}

// Deposit POST RouteGroup + SavingsDepositRoute.
func (h *SavingsHandler) Deposit(c *gin.Context) {
	var params SavingsMoveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposit, err := h.svs.Deposit(reqCtx, getUserIDFromContext(c), params.Amount, params.Reference)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSavingsTransactionResponse(deposit))
}

// Withdraw POST RouteGroup + SavingsWithdrawRoute. При недостатке средств 422.
func (h *SavingsHandler) Withdraw(c *gin.Context) {
	var params SavingsMoveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.svs.Withdraw(reqCtx, getUserIDFromContext(c), params.Amount, params.Reference)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSavingsTransactionResponse(withdrawal))
}

// History GET RouteGroup + SavingsHistoryRoute?limit=N.
func (h *SavingsHandler) History(c *gin.Context) {
	limit := service.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 || parsed > maxHistoryLimit {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid limit"})
			return
		}
		limit = uint(parsed)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.History(reqCtx, getUserIDFromContext(c), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]SavingsTransactionResponse, len(transactions))
	for i := range transactions {
		response[i] = newSavingsTransactionResponse(&transactions[i])
	}
	c.JSON(http.StatusOK, response)
}
