package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quiz-backend/internal/apperror"
)

// maxResponseBytes caps how much of the webhook's reply is buffered.
const maxResponseBytes = 1 << 20

// Relay forwards a JSON payload to an external endpoint and returns the
// endpoint's JSON reply.
type Relay interface {
	Forward(ctx context.Context, payload []byte) (json.RawMessage, error)
}

// HTTPRelay posts payloads to a fixed webhook URL.
type HTTPRelay struct {
	url        string
	httpClient *http.Client
}

func NewHTTPRelay(url string, timeout time.Duration) *HTTPRelay {
	return &HTTPRelay{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward sends payload verbatim. The reply is returned whatever its status
// code, as long as it is JSON.
func (r *HTTPRelay) Forward(ctx context.Context, payload []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.NewInternalError("build webhook request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewExternalError("send webhook request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperror.NewExternalError("read webhook response", err)
	}

	if !json.Valid(body) {
		return nil, apperror.NewExternalError(
			fmt.Sprintf("webhook replied with non-JSON body (status %d)", resp.StatusCode), nil)
	}
	return json.RawMessage(body), nil
}
