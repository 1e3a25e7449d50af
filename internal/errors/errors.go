package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"
)

// ErrorCategory classifies an error for handling and logging.
type ErrorCategory string

const (
	CategoryValidation  ErrorCategory = "validation"
	CategoryOracle      ErrorCategory = "oracle"
	CategoryTimeout     ErrorCategory = "timeout"
	CategoryRateLimit   ErrorCategory = "rate_limit"
	CategoryInternal    ErrorCategory = "internal"
	CategoryPayloadSize ErrorCategory = "payload_size"
)

// AppError wraps an errbuilder error with the HTTP mapping and category the
// handlers need.
type AppError struct {
	*errbuilder.ErrBuilder
	Category   ErrorCategory `json:"category"`
	HTTPStatus int           `json:"http_status"`
	Timestamp  time.Time     `json:"timestamp"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Category, e.ErrBuilder.Msg)
}

func (e *AppError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

func newAppError(builder *errbuilder.ErrBuilder, category ErrorCategory, status int) *AppError {
	return &AppError{
		ErrBuilder: builder,
		Category:   category,
		HTTPStatus: status,
		Timestamp:  time.Now(),
	}
}

// NewValidationError reports malformed client input: no photos, bad JSON,
// unparsable image data.
func NewValidationError(message string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(message)
	return newAppError(builder, CategoryValidation, http.StatusBadRequest)
}

// NewPayloadTooLargeError reports an upload beyond the configured byte cap.
func NewPayloadTooLargeError(limit int64) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("payload exceeds %d byte limit", limit))
	return newAppError(builder, CategoryPayloadSize, http.StatusRequestEntityTooLarge)
}

// NewOracleError reports a failed vision or feedback provider call. These are
// recovered per photo and never abort a request, but the category still
// drives retry decisions inside the adapter.
func NewOracleError(provider string, cause error) *AppError {
	errMap := errbuilder.ErrorMap{}
	errMap.Set("provider", errors.New(provider))

	builder := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(fmt.Sprintf("%s oracle call failed", provider)).
		WithDetails(errbuilder.NewErrDetails(errMap))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return newAppError(builder, CategoryOracle, http.StatusBadGateway)
}

// NewTimeoutError reports an oracle call that exceeded its deadline.
func NewTimeoutError(message string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeDeadlineExceeded).
		WithMsg(message)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return newAppError(builder, CategoryTimeout, http.StatusGatewayTimeout)
}

// NewRateLimitError reports a client exceeding the per-IP request budget.
func NewRateLimitError() *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeResourceExhausted).
		WithMsg("rate limit exceeded")
	return newAppError(builder, CategoryRateLimit, http.StatusTooManyRequests)
}

// NewInternalError reports an unexpected server-side failure.
func NewInternalError(message string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(message)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return newAppError(builder, CategoryInternal, http.StatusInternalServerError)
}

// ToAppError converts any error into an AppError, inferring timeout and
// cancellation cases from the standard context errors.
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewTimeoutError("request deadline exceeded", err)
	}
	return NewInternalError("an unexpected error occurred", err)
}

// IsRetryable reports whether the oracle adapter should retry after this
// error. Validation problems never retry; transient transport failures do.
func IsRetryable(err error) bool {
	switch ToAppError(err).Category {
	case CategoryOracle, CategoryTimeout:
		return true
	default:
		return false
	}
}

// ErrorHandler is a Gin middleware that converts accumulated handler errors
// into one structured JSON response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		appErr := ToAppError(c.Errors.Last().Err)
		LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, gin.H{
			"error":    appErr.ErrBuilder.Msg,
			"category": appErr.Category,
		})
	}
}

// RecoveryHandler converts panics into structured 500 responses.
func RecoveryHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		appErr := NewInternalError(fmt.Sprintf("panic recovered: %v", recovered), fmt.Errorf("%v", recovered))
		LogError(c, appErr)
		c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{
			"error":    appErr.ErrBuilder.Msg,
			"category": appErr.Category,
		})
	})
}

// LogError logs an error with request context at a level matching its
// category: client mistakes warn, oracle weather is informational, anything
// internal is an error.
func LogError(c *gin.Context, err *AppError) {
	entry := slog.With(
		"error_category", err.Category,
		"http_status", err.HTTPStatus,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"ip", c.ClientIP(),
		"request_id", c.GetString("request_id"),
	)

	switch err.Category {
	case CategoryValidation, CategoryPayloadSize, CategoryRateLimit:
		entry.Warn(err.ErrBuilder.Msg)
	case CategoryOracle, CategoryTimeout:
		entry.Info(err.ErrBuilder.Msg, "cause", err.Unwrap())
	default:
		entry.Error(err.ErrBuilder.Msg, "cause", err.Unwrap())
	}
}
