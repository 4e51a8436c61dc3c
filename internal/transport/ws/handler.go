package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second

	findTimeout = 3 * time.Second
	// DefaultMaxStreamDuration больше, чем сверка статусов тратит на один платеж.
	DefaultMaxStreamDuration = 5 * time.Minute
)

// Handler отдает статус платежа по websocket: сначала текущее состояние, затем переход в терминальный статус,
// после чего соединение закрывается.
type Handler struct {
	hub         *Hub
	finder      PaymentFinder
	upgrader    websocket.Upgrader
	maxDuration time.Duration
	l           *logrus.Entry
}

// NewHandler allowedOrigin пустой - принимаются соединения с любого origin.
func NewHandler(hub *Hub, finder PaymentFinder, allowedOrigin string, l *logrus.Logger) *Handler {
	return &Handler{
		hub:    hub,
		finder: finder,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		maxDuration: DefaultMaxStreamDuration,
		l:           logger.Component(l, "ws", "payment_stream"),
	}
}

func (h *Handler) SetMaxDuration(d time.Duration) *Handler {
	if d > 0 {
		h.maxDuration = d
	}
	return h
}

// Stream GET /ws/payments/:checkoutID.
func (h *Handler) Stream(c *gin.Context) {
	checkoutID := c.Param("checkoutID")

	// подписка до чтения состояния, иначе переход между чтением и подпиской потеряется.
	sub := h.hub.subscribe(checkoutID)

	ctx, cancel := context.WithTimeout(c, findTimeout)
	tx, err := h.finder.Find(ctx, checkoutID)
	cancel()
	if err != nil {
		h.hub.unsubscribe(checkoutID, sub)
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.unsubscribe(checkoutID, sub)
		h.l.WithError(err).Warn("ws upgrade")
		return
	}

	go h.serve(conn, checkoutID, sub, tx)
}

func (h *Handler) serve(conn *websocket.Conn, checkoutID string, sub *subscriber, tx *domain.MpesaTransaction) {
	l := h.l.WithField("CheckoutRequestID", checkoutID)
	defer func() {
		h.hub.unsubscribe(checkoutID, sub)
		_ = conn.Close()
	}()

	closed := h.readPump(conn)

	if err := h.write(conn, newEvent(tx)); err != nil {
		l.WithError(err).Debug("ws write snapshot")
		return
	}
	if tx.IsFinal() {
		h.close(conn)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	deadline := time.NewTimer(h.maxDuration)
	defer deadline.Stop()

	for {
		select {
		case event := <-sub.events:
			if err := h.write(conn, event); err != nil {
				l.WithError(err).Debug("ws write event")
				return
			}
			if domain.IsFinalResult(event.Status, event.ResultCode) {
				h.close(conn)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-deadline.C:
			h.close(conn)
			return
		case <-closed:
			return
		}
	}
}

// readPump читает входящие сообщения, чтобы обрабатывались pong и close. Канал закрывается при разрыве.
func (h *Handler) readPump(conn *websocket.Conn) <-chan struct{} {
	closed := make(chan struct{})
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return closed
}

func (h *Handler) write(conn *websocket.Conn, event Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(event) //nolint:wrapcheck
}

func (h *Handler) close(conn *websocket.Conn) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "payment finished"))
}
