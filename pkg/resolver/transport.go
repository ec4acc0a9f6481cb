package resolver

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultTimeout = 30 * time.Second

// Response is a raw API response.
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPTransport is a Transport on top of net/http.
type HTTPTransport struct {
	client *http.Client
}

func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Get(ctx context.Context, addr string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", addr)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response body (status: %d)", resp.StatusCode)
	}

	log.WithFields(log.Fields{
		"status": resp.StatusCode,
		"size":   len(body),
	}).Debugf("GET %s", addr)

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
