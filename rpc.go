package transmission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jfxdev/go-transmission/request"
)

// sessionHeader carries the anti-CSRF session token in both directions.
const sessionHeader = "X-Transmission-Session-Id"

// maxConflictRetries caps how many times a call is replayed after the daemon
// rejects its session token. One replay is enough: the replay already carries
// the token the daemon just issued.
const maxConflictRetries = 1

const resultSuccess = "success"

// rpcRequest is the outbound envelope shared by every method.
type rpcRequest struct {
	Method    string `json:"method"`
	Arguments any    `json:"arguments,omitempty"`
	Tag       int64  `json:"tag,omitempty"`
}

// rpcResponse is the inbound envelope. Result is the only discriminator:
// "success" means Arguments holds the payload, anything else is a daemon
// failure whose details live in Error and ErrorCode.
type rpcResponse struct {
	Result    string          `json:"result"`
	Arguments json.RawMessage `json:"arguments"`
	Error     string          `json:"error"`
	ErrorCode int64           `json:"errorCode"`
	Tag       int64           `json:"tag"`
}

// Call performs one logical RPC against the daemon: it wraps args in the
// wire envelope, posts it, renegotiates the session token when the daemon
// answers 409, re-cases the response keys and decodes the payload into
// result. A nil result discards the payload.
//
// Failures reported by the daemon come back as *RPCError; everything that
// went wrong before a valid envelope arrived comes back as *TransportError.
func (c *Client) Call(ctx context.Context, method string, args, result any) error {
	tag := c.nextTag()

	payload, err := json.Marshal(rpcRequest{Method: method, Arguments: args, Tag: tag})
	if err != nil {
		return fmt.Errorf("failed to encode %q request: %w", method, err)
	}

	attempt := 0
	for {
		resp, err := c.post(ctx, payload)
		if err != nil {
			return ClassifyError(err)
		}

		// Read the response body first so the connection can be reused.
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return ClassifyError(fmt.Errorf("failed to read %q response: %w", method, err))
		}

		// The daemon may rotate the session token on any response,
		// including failures.
		token := resp.Header.Get(sessionHeader)
		if token != "" {
			c.setSessionID(token)
		}

		if resp.StatusCode == http.StatusConflict {
			if token != "" && attempt < maxConflictRetries {
				attempt++
				logger.Debugf("session token expired, replaying %q with a fresh token", method)
				continue
			}
			return NewTransportError(ErrorCodeSessionConflict,
				fmt.Sprintf("daemon kept rejecting the session token for %q", method), nil, false)
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return classifyHTTPStatus(resp.StatusCode, string(body))
		}

		return decodeEnvelope(method, body, tag, result)
	}
}

// post sends one wire envelope. Every attempt gets a fresh body reader since
// the previous attempt consumed its buffer.
func (c *Client) post(ctx context.Context, payload []byte) (*http.Response, error) {
	opts := []request.Option{
		request.WithContext(ctx),
		request.WithClient(c.client),
		request.WithBody(bytes.NewReader(payload)),
		request.WithHeader("Content-Type", "application/json"),
	}

	if c.username != "" || c.password != "" {
		opts = append(opts, request.WithBasicAuth(c.username, c.password))
	}
	if token := c.SessionID(); token != "" {
		opts = append(opts, request.WithHeader(sessionHeader, token))
	}

	logger.Tracef("POST %s: %s", c.url, payload)
	return request.Do(http.MethodPost, c.url, opts...)
}

// decodeEnvelope validates the response envelope and unmarshals its payload.
func decodeEnvelope(method string, body []byte, tag int64, result any) error {
	var env rpcResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return NewTransportError(ErrorCodeUnknown,
			fmt.Sprintf("undecodable %q response envelope", method), err, false)
	}

	// A response carrying someone else's tag cannot be trusted. A zero tag
	// means the daemon omitted the echo, which is tolerated.
	if env.Tag != 0 && env.Tag != tag {
		return NewTransportError(ErrorCodeTagMismatch,
			fmt.Sprintf("daemon answered tag %d to request tag %d", env.Tag, tag), nil, false)
	}

	if env.Result != resultSuccess {
		msg := env.Error
		if msg == "" {
			msg = env.Result
		}
		return &RPCError{Message: msg, Code: env.ErrorCode}
	}

	if result == nil {
		return nil
	}

	recased, err := camelizeRaw(env.Arguments)
	if err != nil {
		return fmt.Errorf("failed to re-case %q response keys: %w", method, err)
	}
	if len(recased) == 0 || bytes.Equal(recased, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(recased, result); err != nil {
		return fmt.Errorf("failed to decode %q response: %w", method, err)
	}
	return nil
}
