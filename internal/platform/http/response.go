package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxBodyBytes caps provider bodies; a full daily adjusted series is a few MB.
const maxBodyBytes = 16 << 20

// Response is a provider reply kept in both raw and decoded form.
// JSON is nil when the body is not valid JSON, so callers can still echo Body for diagnostics.
type Response struct {
	StatusCode int
	Body       []byte
	JSON       any
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// GetJSON issues a GET and returns the body whatever the status.
// Only transport failures are errors; status and body interpretation is left to the provider.
func GetJSON(ctx context.Context, client *http.Client, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	out := &Response{StatusCode: res.StatusCode, Body: body}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		out.JSON = decoded
	}
	return out, nil
}
