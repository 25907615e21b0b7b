package faceit

import "net/http"

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

func WithGame(game string) Option {
	return func(c *Client) {
		if game != "" {
			c.game = game
		}
	}
}

// WithThrottle reemplaza el throttle por defecto (100ms historial / 50ms detalle).
func WithThrottle(t *Throttle) Option {
	return func(c *Client) { c.throttle = t }
}
