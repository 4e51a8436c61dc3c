// Package ws рассылает изменения статуса платежа подписанным websocket клиентам.
package ws

import (
	"sync"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/logger"
	"github.com/fsdevblog/chama/internal/metrics"
	"github.com/sirupsen/logrus"
)

// subscriberBuffer у платежа не бывает больше одного перехода, буфер с запасом.
const subscriberBuffer = 4

type Event struct {
	CheckoutRequestID string                       `json:"checkoutRequestId"`
	Status            domain.TransactionStatusType `json:"status"`
	ResultCode        *int                         `json:"resultCode,omitempty"`
	ResultDesc        string                       `json:"resultDesc,omitempty"`
	MpesaReceipt      string                       `json:"mpesaReceipt,omitempty"`
}

func newEvent(tx *domain.MpesaTransaction) Event {
	return Event{
		CheckoutRequestID: tx.CheckoutRequestID,
		Status:            tx.Status,
		ResultCode:        tx.ResultCode,
		ResultDesc:        tx.ResultDesc,
		MpesaReceipt:      tx.MpesaReceipt,
	}
}

type subscriber struct {
	events chan Event
}

// Hub хранит подписчиков по CheckoutRequestID. Реализует service.PaymentNotifier.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}
	l    *logrus.Entry
}

func NewHub(l *logrus.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[*subscriber]struct{}),
		l:    logger.Component(l, "ws", "hub"),
	}
}

// Publish не блокируется: медленный подписчик теряет событие, а не задерживает обработку платежа.
func (h *Hub) Publish(tx domain.MpesaTransaction) {
	event := newEvent(&tx)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[tx.CheckoutRequestID] {
		select {
		case sub.events <- event:
		default:
			h.l.WithField("CheckoutRequestID", tx.CheckoutRequestID).Warn("subscriber buffer full, event dropped")
		}
	}
}

func (h *Hub) subscribe(checkoutID string) *subscriber {
	sub := &subscriber{events: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[checkoutID] == nil {
		h.subs[checkoutID] = make(map[*subscriber]struct{})
	}
	h.subs[checkoutID][sub] = struct{}{}
	metrics.WSSubscribers.Inc()
	return sub
}

func (h *Hub) unsubscribe(checkoutID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[checkoutID]
	if !ok {
		return
	}
	if _, exists := set[sub]; !exists {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, checkoutID)
	}
	metrics.WSSubscribers.Dec()
}

// Subscribers кол-во активных подписчиков платежа.
func (h *Hub) Subscribers(checkoutID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[checkoutID])
}
