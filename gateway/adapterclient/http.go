package adapterclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultInvokeTimeout = 10 * time.Second

type invokeRequest struct {
	Tool   string         `json:"tool"`
	Target string         `json:"target"`
	Params map[string]any `json:"params,omitempty"`
}

// HTTPClient calls remote vendor adapters over HTTP. Each invocation is
// bounded by a fixed timeout on top of whatever deadline the caller's
// context carries.
type HTTPClient struct {
	httpClient *http.Client
	timeout    time.Duration
}

func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultInvokeTimeout
	}
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

func (c *HTTPClient) Invoke(ctx context.Context, endpoint, tool, target string, params map[string]any) (int, map[string]any, error) {
	payload, err := json.Marshal(invokeRequest{Tool: tool, Target: target, Params: params})
	if err != nil {
		return 0, nil, fmt.Errorf("marshal adapter request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("build adapter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, classifyTransport(endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read adapter response: %w", err)
	}

	body := decodeBody(raw)
	log.Debug().Str("endpoint", endpoint).Str("tool", tool).Int("status", resp.StatusCode).Msg("adapter responded")
	return resp.StatusCode, body, nil
}

func classifyTransport(endpoint string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, endpoint, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, endpoint, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrUnreachable, endpoint, err)
}

func decodeBody(raw []byte) map[string]any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{}
	}
	var body map[string]any
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return map[string]any{"raw": strings.TrimSpace(string(trimmed))}
	}
	return body
}
