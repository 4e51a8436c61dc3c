package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testShortCode = "174379"
	testPassKey   = "bfb279f9aa9bdbcf158e97dd71a467cd2e0c893059b10f78e6b72ada1ed2c919"
	testToken     = "c9SQxWWhmdVRlyh0zh8gZDTkubVF"
)

type ClientTestSuite struct {
	suite.Suite
	server      *httptest.Server
	tokenCalls  atomic.Int32
	client      *Client
	fixedNow    time.Time
	lastPushReq stkPushRequest
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.tokenCalls.Store(0)
	s.fixedNow = time.Date(2025, 3, 1, 6, 30, 15, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.tokenCalls.Add(1)
		s.writeJSON(w, http.StatusOK, tokenResponse{AccessToken: testToken, ExpiresIn: "3599"})
	})
	mux.HandleFunc(RouteSTKPush, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			s.writeJSON(w, http.StatusUnauthorized, errorResponse{ErrorCode: "404.001.03", ErrorMessage: "Invalid Access Token"})
			return
		}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&s.lastPushReq)) //nolint:testifylint
		if s.lastPushReq.PhoneNumber == "254700000429" {
			w.Header().Set("Retry-After", "5")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		s.writeJSON(w, http.StatusOK, stkPushResponse{
			MerchantRequestID:   "29115-34620561-1",
			CheckoutRequestID:   "ws_CO_191220191020363925",
			ResponseCode:        "0",
			ResponseDescription: "Success. Request accepted for processing",
			CustomerMessage:     "Success. Request accepted for processing",
		})
	})
	mux.HandleFunc(RouteSTKQuery, func(w http.ResponseWriter, r *http.Request) {
		var req stkQueryRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req)) //nolint:testifylint
		switch req.CheckoutRequestID {
		case "processing":
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{
				RequestID:    "1",
				ErrorCode:    errorCodeProcessing,
				ErrorMessage: "The transaction is being processed",
			})
		case "cancelled":
			s.writeJSON(w, http.StatusOK, stkQueryResponse{
				ResponseCode:      "0",
				CheckoutRequestID: req.CheckoutRequestID,
				ResultCode:        "1032",
				ResultDesc:        "Request cancelled by user",
			})
		case "paid":
			s.writeJSON(w, http.StatusOK, stkQueryResponse{
				ResponseCode:      "0",
				CheckoutRequestID: req.CheckoutRequestID,
				ResultCode:        "0",
				ResultDesc:        "The service request is processed successfully.",
			})
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	})
	s.server = httptest.NewServer(mux)

	s.client = New(Config{
		BaseURL:        s.server.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      testShortCode,
		PassKey:        testPassKey,
		CallbackURL:    "https://example.com/api/payments/callback",
	})
	s.client.now = func() time.Time { return s.fixedNow }
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.NoError(json.NewEncoder(w).Encode(v))
}

func (s *ClientTestSuite) TestPasswordAndTimestamp() {
	// 06:30:15 UTC это 09:30:15 в Найроби.
	s.Equal("20250301093015", Timestamp(s.fixedNow))
	s.Equal(
		"MTc0Mzc5YmZiMjc5ZjlhYTliZGJjZjE1OGU5N2RkNzFhNDY3Y2QyZTBjODkzMDU5YjEwZjc4ZTZiNzJhZGExZWQyYzkxOTIwMjUwMzAxMDkzMDE1",
		Password(testShortCode, testPassKey, "20250301093015"),
	)
}

func (s *ClientTestSuite) TestSTKPush() {
	resp, err := s.client.STKPush(s.T().Context(), domain.STKPushRequest{
		Amount:           decimal.NewFromInt(1500),
		Phone:            "254712345678",
		AccountReference: "BATCH10",
		Description:      "contribution",
	})
	s.Require().NoError(err)
	s.True(resp.Accepted())
	s.Equal("ws_CO_191220191020363925", resp.CheckoutRequestID)

	s.Equal(testShortCode, s.lastPushReq.BusinessShortCode)
	s.Equal(testShortCode, s.lastPushReq.PartyB)
	s.Equal("254712345678", s.lastPushReq.PartyA)
	s.Equal(int64(1500), s.lastPushReq.Amount)
	s.Equal(transactionTypePayBill, s.lastPushReq.TransactionType)
	s.Equal("20250301093015", s.lastPushReq.Timestamp)
	s.Equal(Password(testShortCode, testPassKey, "20250301093015"), s.lastPushReq.Password)
}

func (s *ClientTestSuite) TestTokenCached() {
	for range 3 {
		_, err := s.client.STKQuery(s.T().Context(), "paid")
		s.Require().NoError(err)
	}
	s.Equal(int32(1), s.tokenCalls.Load())

	// после истечения срока (за вычетом запаса) токен запрашивается заново.
	s.fixedNow = s.fixedNow.Add(3599*time.Second - tokenExpiryMargin)
	_, err := s.client.STKQuery(s.T().Context(), "paid")
	s.Require().NoError(err)
	s.Equal(int32(2), s.tokenCalls.Load())
}

func (s *ClientTestSuite) TestSTKQuery() {
	cases := []struct {
		name        string
		checkoutID  string
		wantPending bool
		wantCode    int
		wantErr     bool
	}{
		{name: "still processing", checkoutID: "processing", wantPending: true},
		{name: "cancelled", checkoutID: "cancelled", wantCode: 1032},
		{name: "paid", checkoutID: "paid", wantCode: 0},
		{name: "gateway error", checkoutID: "broken", wantErr: true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			result, err := s.client.STKQuery(s.T().Context(), tc.checkoutID)
			if tc.wantErr {
				var statusErr *StatusCodeError
				s.Require().ErrorAs(err, &statusErr)
				s.Equal(http.StatusBadGateway, statusErr.Code)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantPending, result.Pending)
			if !tc.wantPending {
				s.Equal(tc.wantCode, result.ResultCode)
			}
		})
	}
}

func (s *ClientTestSuite) TestErrors() {
	s.Run("too many requests", func() {
		_, err := s.client.STKPush(s.T().Context(), domain.STKPushRequest{
			Amount: decimal.NewFromInt(10), Phone: "254700000429",
		})
		var tooMany *TooManyRequestError
		s.Require().True(errors.As(err, &tooMany))
		s.Equal(5*time.Second, tooMany.RetryAfter)
	})

	s.Run("bad credentials", func() {
		client := New(Config{BaseURL: s.server.URL, ConsumerKey: "key", ConsumerSecret: "wrong"})
		_, err := client.STKQuery(s.T().Context(), "paid")
		var statusErr *StatusCodeError
		s.Require().ErrorAs(err, &statusErr)
		s.Equal(http.StatusUnauthorized, statusErr.Code)
	})
}
