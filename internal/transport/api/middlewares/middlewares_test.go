package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/chama/internal/service/tokens"
	"github.com/fsdevblog/chama/internal/transport/api/middlewares/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type MiddlewaresTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCounter *mocks.MockWindowCounter
	jwtSecret   []byte
	logger      *logrus.Logger
}

func TestMiddlewaresSuite(t *testing.T) {
	suite.Run(t, new(MiddlewaresTestSuite))
}

func (s *MiddlewaresTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockCounter = mocks.NewMockWindowCounter(s.ctrl)
	s.jwtSecret = []byte("middleware secret")
	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
}

func (s *MiddlewaresTestSuite) serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (s *MiddlewaresTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body struct {
		Error string `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func (s *MiddlewaresTestSuite) TestErrors() {
	r := gin.New()
	r.Use(Errors())
	r.GET("/public", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusConflict, errors.New("batch is full")).SetType(gin.ErrorTypePublic)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("pg: connection refused")).
			SetType(gin.ErrorTypePrivate)
	})
	r.GET("/gateway", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusBadGateway, errors.New("status code 503")).SetType(gin.ErrorTypePrivate)
	})

	w := s.serve(r, httptest.NewRequest(http.MethodGet, "/public", nil))
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("batch is full", s.errorBody(w))

	w = s.serve(r, httptest.NewRequest(http.MethodGet, "/private", nil))
	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("internal server error", s.errorBody(w))

	w = s.serve(r, httptest.NewRequest(http.MethodGet, "/gateway", nil))
	s.Equal(http.StatusBadGateway, w.Code)
	s.Equal("payment provider unavailable", s.errorBody(w))
}

func (s *MiddlewaresTestSuite) TestAuth() {
	r := gin.New()
	r.GET("/private", AuthRequired(s.jwtSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetInt64(CurrentUserIDKey)})
	})
	r.GET("/guest", NonAuthRequired(s.jwtSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, err := tokens.GenerateUserJWT(42, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	foreign, err := tokens.GenerateUserJWT(42, time.Hour, []byte("another secret"))
	s.Require().NoError(err)

	cases := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "no token", path: "/private", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", path: "/private", header: token, wantStatus: http.StatusUnauthorized},
		{name: "foreign signature", path: "/private", header: bearerPrefix + foreign, wantStatus: http.StatusUnauthorized},
		{name: "valid token", path: "/private", header: bearerPrefix + token, wantStatus: http.StatusOK},
		{name: "guest without token", path: "/guest", wantStatus: http.StatusOK},
		{name: "guest with token", path: "/guest", header: bearerPrefix + token, wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := s.serve(r, req)
			s.Equal(tc.wantStatus, w.Code)
			if tc.name == "valid token" {
				s.JSONEq(`{"id":42}`, w.Body.String())
			}
		})
	}
}

func (s *MiddlewaresTestSuite) TestLogger_RequestID() {
	r := gin.New()
	r.Use(Logger(s.logger))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := s.serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	s.NotEmpty(w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = s.serve(r, req)
	s.Equal("req-1", w.Header().Get(RequestIDHeader))
}

func (s *MiddlewaresTestSuite) rateLimitedRouter(counter WindowCounter) *gin.Engine {
	r := gin.New()
	r.POST("/pay", func(c *gin.Context) {
		c.Set(CurrentUserIDKey, int64(7))
		c.Next()
	}, RateLimit(counter, 2, time.Minute, s.logger), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})
	return r
}

func (s *MiddlewaresTestSuite) TestRateLimit() {
	r := s.rateLimitedRouter(s.mockCounter)

	gomock.InOrder(
		s.mockCounter.EXPECT().Incr(gomock.Any(), "rl:/pay:u7", time.Minute).Return(int64(1), nil),
		s.mockCounter.EXPECT().Incr(gomock.Any(), "rl:/pay:u7", time.Minute).Return(int64(2), nil),
		s.mockCounter.EXPECT().Incr(gomock.Any(), "rl:/pay:u7", time.Minute).Return(int64(3), nil),
	)

	s.Equal(http.StatusAccepted, s.serve(r, httptest.NewRequest(http.MethodPost, "/pay", nil)).Code)
	s.Equal(http.StatusAccepted, s.serve(r, httptest.NewRequest(http.MethodPost, "/pay", nil)).Code)

	w := s.serve(r, httptest.NewRequest(http.MethodPost, "/pay", nil))
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal("60", w.Header().Get("Retry-After"))
}

func (s *MiddlewaresTestSuite) TestRateLimit_FailOpen() {
	r := s.rateLimitedRouter(s.mockCounter)
	s.mockCounter.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("dial tcp: connection refused"))

	s.Equal(http.StatusAccepted, s.serve(r, httptest.NewRequest(http.MethodPost, "/pay", nil)).Code)

	// без счетчика ограничение выключено.
	r = s.rateLimitedRouter(nil)
	s.Equal(http.StatusAccepted, s.serve(r, httptest.NewRequest(http.MethodPost, "/pay", nil)).Code)
}
