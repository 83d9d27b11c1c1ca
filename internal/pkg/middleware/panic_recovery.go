package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	nrpkg "github.com/piresc/nebengdinas/internal/pkg/newrelic"
)

// PanicRecoveryWithZapMiddleware turns a handler panic into a 500 response,
// logs the stack and records it on the New Relic transaction.
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
					err = nil
				}
			}()
			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	req := c.Request()
	stack := string(debug.Stack())
	requestID := RequestID(c)

	userID := "anonymous"
	if uid := c.Get(ContextKeyUserID); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	txn := nrpkg.FromEchoContext(c)
	if txn == nil {
		if t, ok := c.Get("nr_txn").(*newrelic.Transaction); ok {
			txn = t
		}
	}
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("panic: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":   fmt.Sprintf("%T", r),
				"http.method":  req.Method,
				"http.path":    req.URL.Path,
				"request_id":   requestID,
				"user_id":      userID,
			},
		})
	}

	zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stack),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", req.UserAgent()),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}
	body := map[string]interface{}{
		"success": false,
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred while processing your request",
	}
	if requestID != "" {
		body["request_id"] = requestID
	}
	if err := c.JSON(http.StatusInternalServerError, body); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
