package transmission

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// RPCError is a failure reported by the daemon itself: the HTTP exchange
// succeeded but the response envelope carried a result other than "success".
// Message and Code are passed through exactly as the daemon sent them.
type RPCError struct {
	Message string
	Code    int64
}

func (e *RPCError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("transmission: %s (code %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("transmission: %s", e.Message)
}

// ErrorCode represents a specific transport error type for client-side handling
type ErrorCode string

const (
	// ErrorCodeNone indicates no error
	ErrorCodeNone ErrorCode = ""

	// ErrorCodeAuthFailure indicates invalid username/password - requires user intervention
	ErrorCodeAuthFailure ErrorCode = "AUTH_FAILURE"

	// ErrorCodeTimeout indicates connection or request timeout - temporary, can retry
	ErrorCodeTimeout ErrorCode = "TIMEOUT"

	// ErrorCodeDNS indicates DNS resolution failure - check hostname configuration
	ErrorCodeDNS ErrorCode = "DNS_ERROR"

	// ErrorCodeHTTPSRequired indicates HTTP was used but HTTPS is required
	ErrorCodeHTTPSRequired ErrorCode = "HTTPS_REQUIRED"

	// ErrorCodeSSLError indicates SSL/TLS certificate or connection error
	ErrorCodeSSLError ErrorCode = "SSL_ERROR"

	// ErrorCodeSessionConflict indicates the daemon kept rejecting the session
	// token even after renegotiating it
	ErrorCodeSessionConflict ErrorCode = "SESSION_CONFLICT"

	// ErrorCodeTagMismatch indicates the daemon answered with a tag that does
	// not belong to the request
	ErrorCodeTagMismatch ErrorCode = "TAG_MISMATCH"

	// ErrorCodeConnectionRefused indicates the server actively refused the connection
	ErrorCodeConnectionRefused ErrorCode = "CONNECTION_REFUSED"

	// ErrorCodeNetworkUnreachable indicates network routing issues
	ErrorCodeNetworkUnreachable ErrorCode = "NETWORK_UNREACHABLE"

	// ErrorCodeBadGateway indicates a proxy/gateway error (502)
	ErrorCodeBadGateway ErrorCode = "BAD_GATEWAY"

	// ErrorCodeServiceUnavailable indicates the service is temporarily unavailable (503)
	ErrorCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// ErrorCodeUnknown indicates an unclassified error
	ErrorCodeUnknown ErrorCode = "UNKNOWN"
)

// TransportError represents a structured transport-level error with
// classification. Daemon-reported failures use RPCError instead.
type TransportError struct {
	Code    ErrorCode
	Message string
	Err     error
	// Permanent indicates whether this error requires user intervention (true)
	// or can be resolved by retrying (false)
	Permanent bool
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsPermanent returns true if the error requires user intervention
func (e *TransportError) IsPermanent() bool {
	return e.Permanent
}

// NewTransportError creates a new TransportError
func NewTransportError(code ErrorCode, message string, err error, permanent bool) *TransportError {
	return &TransportError{
		Code:      code,
		Message:   message,
		Err:       err,
		Permanent: permanent,
	}
}

// ClassifyError analyzes an error and returns a structured TransportError
func ClassifyError(err error) *TransportError {
	if err == nil {
		return nil
	}

	// Already a TransportError
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr
	}

	errStr := err.Error()

	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NewTransportError(
			ErrorCodeDNS,
			fmt.Sprintf("Failed to resolve hostname: %s", dnsErr.Name),
			err,
			true,
		)
	}

	// Network operation errors (connection refused, timeout, etc.)
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return classifyOpError(opErr, err)
	}

	// URL errors
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Check if it wraps another error we can classify
		if urlErr.Err != nil {
			if classified := ClassifyError(urlErr.Err); classified != nil {
				return classified
			}
		}

		// Timeout
		if urlErr.Timeout() {
			return NewTransportError(
				ErrorCodeTimeout,
				"Request timed out",
				err,
				false,
			)
		}
	}

	// TLS/SSL errors
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return NewTransportError(
			ErrorCodeSSLError,
			"SSL certificate verification failed",
			err,
			true,
		)
	}

	// Check for common error patterns in the error string
	return classifyByMessage(errStr, err)
}

// classifyOpError classifies net.OpError errors
func classifyOpError(opErr *net.OpError, originalErr error) *TransportError {
	// Connection refused
	if opErr.Op == "dial" {
		if strings.Contains(opErr.Error(), "connection refused") {
			return NewTransportError(
				ErrorCodeConnectionRefused,
				"Connection refused - daemon may be down or port is incorrect",
				originalErr,
				false,
			)
		}

		if strings.Contains(opErr.Error(), "no route to host") ||
			strings.Contains(opErr.Error(), "network is unreachable") {
			return NewTransportError(
				ErrorCodeNetworkUnreachable,
				"Network unreachable - check network connectivity",
				originalErr,
				false,
			)
		}
	}

	// Timeout
	if opErr.Timeout() {
		return NewTransportError(
			ErrorCodeTimeout,
			"Connection timed out",
			originalErr,
			false,
		)
	}

	// Default network error
	return NewTransportError(
		ErrorCodeUnknown,
		"Network operation failed",
		originalErr,
		false,
	)
}

// classifyByMessage classifies errors based on error message patterns
func classifyByMessage(errStr string, err error) *TransportError {
	lowerErr := strings.ToLower(errStr)

	// Timeout patterns
	if strings.Contains(lowerErr, "timeout") ||
		strings.Contains(lowerErr, "deadline exceeded") ||
		strings.Contains(lowerErr, "context canceled") {
		return NewTransportError(
			ErrorCodeTimeout,
			"Request timed out",
			err,
			false,
		)
	}

	// SSL/TLS patterns
	if strings.Contains(lowerErr, "certificate") ||
		strings.Contains(lowerErr, "x509") ||
		strings.Contains(lowerErr, "tls") ||
		strings.Contains(lowerErr, "ssl") {
		return NewTransportError(
			ErrorCodeSSLError,
			"SSL/TLS connection failed - check certificate configuration",
			err,
			true,
		)
	}

	// HTTP/HTTPS mismatch
	if strings.Contains(lowerErr, "malformed http response") ||
		strings.Contains(lowerErr, "first record does not look like a tls handshake") {
		return NewTransportError(
			ErrorCodeHTTPSRequired,
			"Protocol mismatch - try using HTTPS instead of HTTP",
			err,
			true,
		)
	}

	// Connection refused
	if strings.Contains(lowerErr, "connection refused") {
		return NewTransportError(
			ErrorCodeConnectionRefused,
			"Connection refused - daemon may be down",
			err,
			false,
		)
	}

	// DNS patterns
	if strings.Contains(lowerErr, "no such host") ||
		strings.Contains(lowerErr, "lookup") ||
		strings.Contains(lowerErr, "dns") {
		return NewTransportError(
			ErrorCodeDNS,
			"DNS resolution failed - check hostname",
			err,
			true,
		)
	}

	// Authentication patterns
	if strings.Contains(lowerErr, "unauthorized") ||
		strings.Contains(lowerErr, "authentication failed") ||
		strings.Contains(lowerErr, "invalid username") ||
		strings.Contains(lowerErr, "invalid password") ||
		strings.Contains(lowerErr, "invalid credentials") {
		return NewTransportError(
			ErrorCodeAuthFailure,
			"Invalid username or password",
			err,
			true,
		)
	}

	// Default unknown error
	return NewTransportError(
		ErrorCodeUnknown,
		"Unknown error occurred",
		err,
		false,
	)
}

// IsRetryableError returns true if the error is temporary and can be retried.
// Daemon-reported RPC errors are never retryable: the daemon already gave a
// definitive answer for that request.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return false
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return !transportErr.Permanent
	}

	// Classify and check
	classified := ClassifyError(err)
	return !classified.Permanent
}

// IsPermanentError returns true if the error requires user intervention
func IsPermanentError(err error) bool {
	if err == nil {
		return false
	}

	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return true
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Permanent
	}

	// Classify and check
	classified := ClassifyError(err)
	return classified.Permanent
}

// classifyHTTPStatus classifies an HTTP status code into a TransportError
func classifyHTTPStatus(statusCode int, body string) *TransportError {
	switch statusCode {
	case 401, 403:
		return NewTransportError(
			ErrorCodeAuthFailure,
			fmt.Sprintf("Authentication failed with status %d", statusCode),
			nil,
			true,
		)
	case 409:
		return NewTransportError(
			ErrorCodeSessionConflict,
			"Session token rejected by daemon",
			nil,
			false,
		)
	case 502:
		return NewTransportError(
			ErrorCodeBadGateway,
			fmt.Sprintf("Bad Gateway (502): %s", body),
			nil,
			false,
		)
	case 503:
		return NewTransportError(
			ErrorCodeServiceUnavailable,
			fmt.Sprintf("Service Unavailable (503): %s", body),
			nil,
			false,
		)
	case 504:
		return NewTransportError(
			ErrorCodeTimeout,
			fmt.Sprintf("Gateway Timeout (504): %s", body),
			nil,
			false,
		)
	default:
		return NewTransportError(
			ErrorCodeUnknown,
			fmt.Sprintf("Request failed with status %d: %s", statusCode, body),
			nil,
			false,
		)
	}
}

// GetErrorCode extracts the transport error code from an error
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ErrorCodeNone
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Code
	}

	// Classify and return code
	classified := ClassifyError(err)
	return classified.Code
}
