package http

import (
	"go-taskflow/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapLogger writes HTTP events to the application logger. Bodies are only logged at debug level.
type ZapLogger struct{}

var _ HTTPLogger = ZapLogger{}

func (ZapLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debugw("HTTP request", "method", method, "url", url, "body", body)
}

func (ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Infow("HTTP response", "method", method, "url", url, "status", httpStatus, "latency_ms", latency)
	log.Debugw("HTTP response body", "url", url, "body", responseBody)
}

func (ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Errorw("HTTP request failed", "method", method, "url", url, "status", httpStatus, "latency_ms", latency, "error", err, "body", responseBody)
}

func (ZapLogger) LogRequestRetry(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error, retryCount, maxRetries int) {
	log.Warnw("HTTP request retry", "method", method, "url", url, "status", httpStatus, "latency_ms", latency, "error", err, "retry", retryCount, "max_retries", maxRetries)
}
