package faceit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	defaultBase = "https://open.faceit.com/data/v4"
	defaultGame = "cs2"
)

type Client struct {
	apiKey   string
	game     string
	http     *http.Client
	baseURL  string
	throttle *Throttle
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		game:     defaultGame,
		http:     &http.Client{Timeout: 10 * time.Second},
		baseURL:  defaultBase,
		throttle: DefaultThrottle(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// doJSON: construye URL, agrega Authorization y traduce 404 / no-2xx. Sin reintentos:
// un 429 vuelve como *APIError y el pipeline decide el fallback.
func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, out any) error {
	u := strings.TrimRight(c.baseURL, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("faceit request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("faceit http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("faceit decode %s: %w", path, err)
	}
	return nil
}
