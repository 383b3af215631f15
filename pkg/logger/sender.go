package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPSender transmits one record per call as a JSON POST. It never
// returns an error to the logging path; everything it learns about the
// attempt is folded into the Outcome.
type HTTPSender struct {
	client  *http.Client
	headers map[string]string
	retryer *retryer
}

func NewHTTPSender(config Config) *HTTPSender {
	headers := map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   "loghawk-go/1.0.0",
	}
	// Credential headers are omitted entirely when the pair is absent.
	if config.HasCredentials() {
		headers["app-id"] = config.AppID
		headers["x-secret-key"] = config.SecretKey
	}

	sender := &HTTPSender{
		client:  &http.Client{Timeout: config.HTTPTimeout},
		headers: headers,
	}
	if config.Retry.Enabled {
		sender.retryer = newRetryer(config.Retry)
	}
	return sender
}

// Send performs the transmission and classifies the result: success iff
// the transport did not fail and the status code is below 400.
func (h *HTTPSender) Send(ctx context.Context, endpoint string, record LogRecord) Outcome {
	data, err := json.Marshal(record)
	if err != nil {
		return Outcome{TransportErr: ErrNetworkError("failed to marshal log record", err)}
	}

	if h.retryer == nil {
		return h.attempt(ctx, endpoint, data)
	}

	var out Outcome
	h.retryer.Do(ctx, func() error {
		out = h.attempt(ctx, endpoint, data)
		return out.failureCause()
	})
	return out
}

func (h *HTTPSender) attempt(ctx context.Context, endpoint string, data []byte) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return Outcome{TransportErr: ErrNetworkError("failed to create request", err)}
	}

	for key, value := range h.headers {
		req.Header.Set(key, value)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Outcome{TransportErr: ErrNetworkError("failed to send request", err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	return Outcome{
		Success:    resp.StatusCode < 400,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}

func (h *HTTPSender) Close() error {
	h.client.CloseIdleConnections()
	return nil
}

// failureCause reduces a failed outcome to an error for the retryer.
// Successful outcomes yield nil.
func (o Outcome) failureCause() error {
	if o.Success {
		return nil
	}
	if o.TransportErr != nil {
		return o.TransportErr
	}
	return ErrServerError(
		fmt.Sprintf("server returned status %d", o.StatusCode),
		fmt.Errorf("response body: %s", o.Body),
	)
}
