package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type inferRequest struct {
	Text string `json:"text"`
}

type inferResponse struct {
	Probability float64 `json:"probability"`
}

// Remote calls the model inference sidecar over HTTP.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote creates a Remote pointing at the sidecar's infer endpoint.
func NewRemote(endpoint string, timeout time.Duration) *Remote {
	return &Remote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Infer posts the text to the sidecar and returns its raw probability.
// Callers are expected to Clamp the result before using it.
func (r *Remote) Infer(ctx context.Context, text string) (float64, error) {
	payload, err := json.Marshal(inferRequest{Text: text})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("classifier request failed: %w", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var parsed inferResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("classifier returned malformed response: %w", err)
	}
	return parsed.Probability, nil
}
