package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/chama/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// stkPushTimeout запрос к M-Pesa дольше обычного запроса к БД.
const stkPushTimeout = 30 * time.Second

type PaymentsHandler struct {
	svs PaymentServicer
}

func NewPaymentsHandler(svs PaymentServicer) *PaymentsHandler {
	return &PaymentsHandler{svs: svs}
}

type STKPushParams struct {
	Amount           decimal.Decimal `json:"amount"`
	Phone            string          `binding:"required,ke_msisdn"            json:"phone"`
	AccountReference string          `binding:"required,min=1,max_bytes=12"   json:"accountReference"`
	Description      string          `binding:"required,min=1,max_bytes=13"   json:"description"`
	BatchID          *int64          `binding:"omitempty,min=1"               json:"batchId"`
}

// STKPush POST RouteGroup + STKPushRoute. Отправляет STK пуш на телефон плательщика.
func (h *PaymentsHandler) STKPush(c *gin.Context) {
	var params STKPushParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, stkPushTimeout)
	defer cancel()

	tx, err := h.svs.InitiateSTKPush(ctx, service.InitiateSTKPushArgs{
		UserID:           getUserIDFromContext(c),
		BatchID:          params.BatchID,
		Amount:           params.Amount,
		Phone:            params.Phone,
		AccountReference: params.AccountReference,
		Description:      params.Description,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTransactionResponse(tx))
}

// Status GET RouteGroup + PaymentStatusRoute. Для pending платежа статус уточняется у M-Pesa.
func (h *PaymentsHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, stkPushTimeout)
	defer cancel()

	tx, err := h.svs.GetStatus(ctx, getUserIDFromContext(c), c.Param("checkoutID"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(tx))
}

// Splits GET RouteGroup + PaymentSplitsRoute.
func (h *PaymentsHandler) Splits(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	splits, err := h.svs.Splits(ctx, getUserIDFromContext(c), c.Param("checkoutID"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]SplitResponse, len(splits))
	for i, sp := range splits {
		response[i] = SplitResponse{
			Type:            sp.SplitType,
			Amount:          sp.Amount.InexactFloat64(),
			DestinationType: sp.DestinationType,
			Destination:     sp.Destination,
			Status:          sp.Status,
		}
	}
	c.JSON(http.StatusOK, response)
}
