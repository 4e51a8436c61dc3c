package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/transport/api/middlewares"
	"github.com/fsdevblog/chama/internal/transport/mpesa/client"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в middlewares.AuthRequired.
// В случае, если значения в контексте нет или ошибка утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// publicErrors ошибки сервисного слоя, текст которых отдается клиенту.
var publicErrors = []struct {
	err    error
	status int
}{
	{domain.ErrRecordNotFound, http.StatusNotFound},
	{domain.ErrDuplicateKey, http.StatusConflict},
	{domain.ErrBatchFull, http.StatusConflict},
	{domain.ErrBatchNotRecruiting, http.StatusConflict},
	{domain.ErrAlreadyMember, http.StatusConflict},
	{domain.ErrNotBatchMember, http.StatusForbidden},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrAmountBelowFee, http.StatusUnprocessableEntity},
	{domain.ErrInvalidPhone, http.StatusUnprocessableEntity},
	{domain.ErrInvalidReferral, http.StatusUnprocessableEntity},
	{domain.ErrNotEnoughBalance, http.StatusUnprocessableEntity},
}

// abortWithServiceError переводит ошибку сервиса в http статус.
func abortWithServiceError(c *gin.Context, err error) {
	for _, pe := range publicErrors {
		if errors.Is(err, pe.err) {
			_ = c.AbortWithError(pe.status, pe.err).SetType(gin.ErrorTypePublic)
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			return
		}
	}

	var rejected *domain.ProviderRejectedError
	if errors.As(err, &rejected) {
		_ = c.AbortWithError(http.StatusBadGateway, rejected).SetType(gin.ErrorTypePublic)
		return
	}

	if isProviderFailure(err) {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}

	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

func isProviderFailure(err error) bool {
	var (
		statusErr    *client.StatusCodeError
		providerErr  *client.ProviderError
		tooManyErr   *client.TooManyRequestError
		transportErr *client.TransportError
	)
	return errors.As(err, &statusErr) ||
		errors.As(err, &providerErr) ||
		errors.As(err, &tooManyErr) ||
		errors.As(err, &transportErr)
}

// abortWithBindError 422 для ошибок валидации, 400 для некорректного тела.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": validationMessage(valErrs)})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "validation failed"
	}
	first := errs[0]
	return "field " + first.Field() + " failed on " + first.Tag()
}

// paramID разбирает числовой параметр пути. При ошибке отвечает 404.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusNotFound, domain.ErrRecordNotFound).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}
