package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/idilsaglam/itemdash/internal/model"
)

// ErrDecode marks an items payload that could not be turned into a list.
var ErrDecode = errors.New("decode items payload")

// Endpoints are the two backend URLs the dashboard talks to.
type Endpoints struct {
	Health string
	Items  string
}

// Client issues single-attempt GETs against the backend. No retries.
type Client struct {
	ep   Endpoints
	http *http.Client
}

// New returns a Client. A zero timeout leaves requests unbounded.
func New(ep Endpoints, timeout time.Duration) *Client {
	return &Client{
		ep: ep,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConns:        10,
			},
		},
	}
}

// Health returns the health endpoint's body verbatim. The status code is
// not inspected: whatever text the backend answers with is the status.
func (c *Client) Health(ctx context.Context) (string, error) {
	b, err := c.get(ctx, c.ep.Health)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Items fetches and decodes the item listing.
func (c *Client) Items(ctx context.Context) ([]model.Item, error) {
	b, err := c.get(ctx, c.ep.Items)
	if err != nil {
		return nil, err
	}
	return DecodeItems(b)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	return b, nil
}

// DecodeItems pulls the "items" array out of a listing payload.
//
// Entries are taken as they come. A body that is valid JSON but not an
// object has no items field, so it yields an empty list. An "items" value
// with no length (missing, null, object, number, bool) or an empty string
// is an empty list too. Invalid JSON, a null body, or a non-empty string
// "items" (it has a length but no rows) is an ErrDecode.
func DecodeItems(b []byte) ([]model.Item, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after payload", ErrDecode)
	}

	var raw any
	switch p := payload.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null payload", ErrDecode)
	case map[string]any:
		raw = p["items"]
	default:
		return []model.Item{}, nil
	}

	switch entries := raw.(type) {
	case []any:
		items := make([]model.Item, 0, len(entries))
		for _, e := range entries {
			obj, _ := e.(map[string]any)
			items = append(items, model.ItemFromMap(obj))
		}
		return items, nil
	case string:
		if entries == "" {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("%w: items is a string, not an array", ErrDecode)
	default:
		return []model.Item{}, nil
	}
}
