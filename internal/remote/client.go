// Package remote invokes the spreadsheet processing function over HTTP.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Rorical/SheetRelay/internal/config"
	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/logging"
)

const (
	clientInfo = "sheetrelay-go/1"

	// Messages mirror the ones of the upstream functions client.
	msgFetchFailed = "failed to send a request to the function"
	msgRelayError  = "relay error invoking the function"
)

// Client calls <url>/functions/v1/<function>.
type Client struct {
	httpClient *nethttp.Client
	endpoint   string
	anonKey    string
	log        *logging.Logger
}

// NewClient builds a client from resolved settings.
func NewClient(s config.Settings, log *logging.Logger) (*Client, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("remote function is not configured: url, key and function name are required")
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = s.Retries // 0 by default: a processing call is never replayed implicitly
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = logging.RetryLogger{L: log}
	// Keep the last response instead of an opaque "giving up" error so the
	// function's own error body reaches the user.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = s.Timeout

	return &Client{
		httpClient: retryClient.StandardClient(),
		endpoint:   strings.TrimSuffix(s.SupabaseURL, "/") + "/functions/v1/" + s.Function,
		anonKey:    s.AnonKey,
		log:        log,
	}, nil
}

// Endpoint returns the full function URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Invoke sends req and returns the decoded success body. Every failure is a
// *core.TransferError.
func (c *Client) Invoke(ctx context.Context, req core.InvokeRequest) (core.InvokeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return core.InvokeResponse{}, &core.TransferError{Kind: core.KindUnknown, Message: err.Error(), Err: err}
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return core.InvokeResponse{}, &core.TransferError{Kind: core.KindUnknown, Message: err.Error(), Err: err}
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.anonKey)
	httpReq.Header.Set("apikey", c.anonKey)
	httpReq.Header.Set("X-Client-Info", clientInfo)
	httpReq.Header.Set("X-Request-Id", requestID)

	c.log.Debug().Str("request_id", requestID).Str("endpoint", c.endpoint).Int("payload_bytes", len(body)).Msg("invoking function")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return core.InvokeResponse{}, core.NewTransportError(fmt.Sprintf("%s: %v", msgFetchFailed, err), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.InvokeResponse{}, core.NewTransportError(fmt.Sprintf("%s: %v", msgFetchFailed, err), err)
	}

	c.log.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).Int("response_bytes", len(raw)).Msg("function answered")

	if resp.Header.Get("x-relay-error") == "true" {
		return core.InvokeResponse{}, core.NewTransportError(msgRelayError, nil)
	}

	var out core.InvokeResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("function returned a non-2xx status code (%d)", resp.StatusCode)
		if decodeErr == nil {
			if text := firstText(out.Error, out.Message); text != "" {
				msg = text
			}
		}
		return core.InvokeResponse{}, core.NewTransportError(msg, nil)
	}

	if decodeErr != nil {
		// A non-JSON success body has no payload to offer.
		return core.InvokeResponse{}, core.NewMalformedError()
	}
	if out.Error != "" {
		return core.InvokeResponse{}, core.NewTransportError(out.Error, nil)
	}
	if out.FileBase64 == "" {
		return core.InvokeResponse{}, core.NewMalformedError()
	}
	return out, nil
}

func firstText(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
