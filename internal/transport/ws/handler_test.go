package ws

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/transport/ws/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockFinder *mocks.MockPaymentFinder
	hub        *Hub
	server     *httptest.Server
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockFinder = mocks.NewMockPaymentFinder(s.ctrl)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.hub = NewHub(l)

	r := gin.New()
	r.GET("/ws/payments/:checkoutID", NewHandler(s.hub, s.mockFinder, "", l).Stream)
	s.server = httptest.NewServer(r)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *HandlerTestSuite) dial(checkoutID string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws/payments/" + checkoutID
	return websocket.DefaultDialer.Dial(url, nil) //nolint:bodyclose
}

func (s *HandlerTestSuite) readEvent(conn *websocket.Conn) Event {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var event Event
	s.Require().NoError(conn.ReadJSON(&event))
	return event
}

func (s *HandlerTestSuite) TestStream_PendingThenCompleted() {
	s.mockFinder.EXPECT().Find(gomock.Any(), "ws_CO_1").
		Return(&domain.MpesaTransaction{CheckoutRequestID: "ws_CO_1", Status: domain.TransactionStatusPending}, nil)

	conn, _, err := s.dial("ws_CO_1")
	s.Require().NoError(err)
	defer conn.Close()

	snapshot := s.readEvent(conn)
	s.Equal(domain.TransactionStatusPending, snapshot.Status)
	s.Equal(1, s.hub.Subscribers("ws_CO_1"))

	code := 0
	s.hub.Publish(domain.MpesaTransaction{
		CheckoutRequestID: "ws_CO_1",
		Status:            domain.TransactionStatusCompleted,
		ResultCode:        &code,
		MpesaReceipt:      "NLJ7RT61SV",
	})
	// событие другого платежа не приходит.
	s.hub.Publish(domain.MpesaTransaction{CheckoutRequestID: "ws_CO_2", Status: domain.TransactionStatusFailed})

	event := s.readEvent(conn)
	s.Equal(domain.TransactionStatusCompleted, event.Status)
	s.Equal("NLJ7RT61SV", event.MpesaReceipt)

	_, _, err = conn.ReadMessage()
	s.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	s.Eventually(func() bool { return s.hub.Subscribers("ws_CO_1") == 0 }, time.Second, 10*time.Millisecond)
}

func (s *HandlerTestSuite) TestStream_TerminalSnapshotCloses() {
	s.mockFinder.EXPECT().Find(gomock.Any(), "ws_CO_3").
		Return(&domain.MpesaTransaction{
			CheckoutRequestID: "ws_CO_3",
			Status:            domain.TransactionStatusFailed,
			ResultDesc:        domain.StatusTimeoutDesc,
		}, nil)

	conn, _, err := s.dial("ws_CO_3")
	s.Require().NoError(err)
	defer conn.Close()

	event := s.readEvent(conn)
	s.Equal(domain.TransactionStatusFailed, event.Status)
	s.Equal(domain.StatusTimeoutDesc, event.ResultDesc)

	_, _, err = conn.ReadMessage()
	s.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

// Таймаут проверок статуса не окончательный: поток ждет ответа провайдера.
func (s *HandlerTestSuite) TestStream_StatusTimeoutStaysOpen() {
	timeout := domain.ResultCodeStatusTimeout
	s.mockFinder.EXPECT().Find(gomock.Any(), "ws_CO_4").
		Return(&domain.MpesaTransaction{
			CheckoutRequestID: "ws_CO_4",
			Status:            domain.TransactionStatusFailed,
			ResultCode:        &timeout,
			ResultDesc:        domain.StatusTimeoutDesc,
		}, nil)

	conn, _, err := s.dial("ws_CO_4")
	s.Require().NoError(err)
	defer conn.Close()

	snapshot := s.readEvent(conn)
	s.Equal(domain.TransactionStatusFailed, snapshot.Status)
	s.Eventually(func() bool { return s.hub.Subscribers("ws_CO_4") == 1 }, time.Second, 10*time.Millisecond)

	code := 0
	s.hub.Publish(domain.MpesaTransaction{
		CheckoutRequestID: "ws_CO_4",
		Status:            domain.TransactionStatusCompleted,
		ResultCode:        &code,
	})

	event := s.readEvent(conn)
	s.Equal(domain.TransactionStatusCompleted, event.Status)

	_, _, err = conn.ReadMessage()
	s.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func (s *HandlerTestSuite) TestStream_NotFound() {
	s.mockFinder.EXPECT().Find(gomock.Any(), "ws_CO_missing").Return(nil, domain.ErrRecordNotFound)

	_, resp, err := s.dial("ws_CO_missing")
	s.Require().ErrorIs(err, websocket.ErrBadHandshake)
	s.Require().NotNil(resp)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal(0, s.hub.Subscribers("ws_CO_missing"))
}

func (s *HandlerTestSuite) TestPublish_DoesNotBlock() {
	sub := s.hub.subscribe("ws_CO_9")
	defer s.hub.unsubscribe("ws_CO_9", sub)

	for range subscriberBuffer + 3 {
		s.hub.Publish(domain.MpesaTransaction{CheckoutRequestID: "ws_CO_9", Status: domain.TransactionStatusPending})
	}
	s.Len(sub.events, subscriberBuffer)
}
