// Package client реализует вызовы Daraja API: OAuth токен, STK пуш и запрос статуса STK пуша.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	RouteOAuth    = "/oauth/v1/generate?grant_type=client_credentials"
	RouteSTKPush  = "/mpesa/stkpush/v1/processrequest"
	RouteSTKQuery = "/mpesa/stkpushquery/v1/query"

	transactionTypePayBill = "CustomerPayBillOnline"
	timestampLayout        = "20060102150405"

	// errorCodeProcessing Daraja отвечает на запрос статуса, пока пользователь не завершил платеж.
	errorCodeProcessing = "500.001.1001"
)

// tokenExpiryMargin токен обновляется заранее, чтобы не отправить запрос с уже протухшим токеном.
const tokenExpiryMargin = 60 * time.Second

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

var nairobi = loadNairobi() //nolint:gochecknoglobals

func loadNairobi() *time.Location {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		return time.FixedZone("EAT", 3*60*60) //nolint:mnd
	}
	return loc
}

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	PassKey        string
	CallbackURL    string
}

// Client клиент Daraja. Безопасен для конкурентного использования, OAuth токен переиспользуется до истечения.
type Client struct {
	cfg        Config
	httpClient *http.Client
	now        func() time.Time

	mu             sync.Mutex
	token          string
	tokenExpiresAt time.Time
}

func New(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		now:        time.Now,
	}
}

// Password пароль запроса: base64(shortcode + passkey + timestamp).
func Password(shortCode, passKey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passKey + timestamp))
}

// Timestamp время в формате YYYYMMDDHHmmss по Найроби.
func Timestamp(t time.Time) string {
	return t.In(nairobi).Format(timestampLayout)
}

// STKPush отправляет запрос на оплату на телефон req.Phone. Ответ с ResponseCode отличным от "0" ошибкой
// не считается, решение принимает вызывающий код.
func (c *Client) STKPush(ctx context.Context, req domain.STKPushRequest) (*domain.STKPushResponse, error) {
	timestamp := Timestamp(c.now())
	body := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          Password(c.cfg.ShortCode, c.cfg.PassKey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   transactionTypePayBill,
		Amount:            req.Amount.Round(0).IntPart(),
		PartyA:            req.Phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	}

	var resp stkPushResponse
	if err := c.doAuthorized(ctx, RouteSTKPush, body, &resp); err != nil {
		return nil, errors.Wrap(err, "stk push")
	}
	return &domain.STKPushResponse{
		MerchantRequestID:   resp.MerchantRequestID,
		CheckoutRequestID:   resp.CheckoutRequestID,
		ResponseCode:        resp.ResponseCode,
		ResponseDescription: resp.ResponseDescription,
		CustomerMessage:     resp.CustomerMessage,
	}, nil
}

// STKQuery запрашивает статус STK пуша. Пока платеж в обработке, возвращается результат с Pending == true.
func (c *Client) STKQuery(ctx context.Context, checkoutRequestID string) (*domain.STKQueryResult, error) {
	timestamp := Timestamp(c.now())
	body := stkQueryRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          Password(c.cfg.ShortCode, c.cfg.PassKey, timestamp),
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	}

	var resp stkQueryResponse
	if err := c.doAuthorized(ctx, RouteSTKQuery, body, &resp); err != nil {
		var providerErr *ProviderError
		if errors.As(err, &providerErr) && providerErr.Code == errorCodeProcessing {
			return &domain.STKQueryResult{Pending: true, ResultDesc: providerErr.Message}, nil
		}
		return nil, errors.Wrapf(err, "stk query `%s`", checkoutRequestID)
	}

	if resp.ResultCode == "" {
		return &domain.STKQueryResult{Pending: true, ResultDesc: resp.ResponseDescription}, nil
	}
	code, convErr := strconv.Atoi(resp.ResultCode)
	if convErr != nil {
		return nil, errors.Wrapf(convErr, "stk query `%s`: parse result code", checkoutRequestID)
	}
	return &domain.STKQueryResult{ResultCode: code, ResultDesc: resp.ResultDesc}, nil
}

// accessToken возвращает закешированный токен или получает новый.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiresAt) {
		return c.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+RouteOAuth, nil)
	if err != nil {
		return "", errors.Wrap(err, "create token request")
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	var resp tokenResponse
	if doErr := c.do(req, &resp); doErr != nil {
		return "", errors.Wrap(doErr, "get access token")
	}

	expiresIn, convErr := strconv.Atoi(resp.ExpiresIn)
	if convErr != nil {
		return "", errors.Wrapf(convErr, "parse expires_in `%s`", resp.ExpiresIn)
	}
	c.token = resp.AccessToken
	c.tokenExpiresAt = c.now().Add(time.Duration(expiresIn)*time.Second - tokenExpiryMargin)
	return c.token, nil
}

func (c *Client) doAuthorized(ctx context.Context, route string, body any, dst any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+route, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dst)
}

// do выполняет запрос и разбирает ответ в dst. Ответы с ошибкой превращаются в TooManyRequestError,
// ProviderError (если тело в формате ошибки Daraja) или StatusCodeError.
//
//nolint:nonamedreturns
func (c *Client) do(req *http.Request, dst any) (err error) {
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return &TransportError{Err: doErr}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close body")
		}
	}()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return &TransportError{Err: readErr}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.ErrorCode != "" {
			return &ProviderError{
				StatusCode: resp.StatusCode,
				RequestID:  errResp.RequestID,
				Code:       errResp.ErrorCode,
				Message:    errResp.ErrorMessage,
			}
		}
		return NewStatusCodeError(resp.StatusCode)
	}

	if jsonErr := json.Unmarshal(body, dst); jsonErr != nil {
		return errors.Wrap(jsonErr, "parse response")
	}
	return nil
}

func parseRetryAfter(value string) time.Duration {
	retryAfter, err := decimal.NewFromString(value)
	if err != nil ||
		retryAfter.LessThan(decimal.NewFromInt(minRetryAfter)) ||
		retryAfter.GreaterThan(decimal.NewFromInt(maxRetryAfter)) {
		// в случае ошибки или неверных данных ставим 60 секунд
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}
