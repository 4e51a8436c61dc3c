package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/logger"
	"github.com/fsdevblog/chama/internal/transport/mpesa/client"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const callbackTokenParam = "token"

// maxCallbackBody колбек M-Pesa занимает около килобайта.
const maxCallbackBody = 64 << 10

type CallbackHandler struct {
	svs   PaymentServicer
	token string
	l     *logrus.Entry
}

// NewCallbackHandler token - секрет из query параметра callback url. Пустой token отключает проверку.
func NewCallbackHandler(svs PaymentServicer, token string, l *logrus.Logger) *CallbackHandler {
	return &CallbackHandler{
		svs:   svs,
		token: token,
		l:     logger.Component(l, "api", "mpesa_callback"),
	}
}

// ack ответ, после которого M-Pesa не повторяет колбек.
func ack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

// Handle POST RouteGroup + CallbackRoute. Провайдер получает подтверждение даже если колбек не удалось применить:
// недоставленный результат подберет сверка статусов.
func (h *CallbackHandler) Handle(c *gin.Context) {
	if h.token != "" &&
		subtle.ConstantTimeCompare([]byte(c.Query(callbackTokenParam)), []byte(h.token)) != 1 {
		h.l.WithField("clientIP", c.ClientIP()).Warn("callback with invalid token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCallbackBody)
	body, err := c.GetRawData()
	if err != nil {
		h.l.WithError(err).Warn("read callback body")
		ack(c)
		return
	}

	result, err := client.ParseCallback(body)
	if err != nil {
		h.l.WithError(err).Warn("parse callback")
		ack(c)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	l := h.l.WithFields(logrus.Fields{
		"CheckoutRequestID": result.CheckoutRequestID,
		"ResultCode":        result.ResultCode,
	})
	tx, err := h.svs.HandleCallback(ctx, *result)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		l.Warn("callback for unknown checkout")
	case err != nil:
		l.WithError(err).Error("apply callback")
	default:
		l.WithField("Status", tx.Status).Info("callback applied")
	}
	ack(c)
}
