package httpclient

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samvad-hq/reqclient/pkg/serializer"
	"golang.org/x/time/rate"
)

// Option configures a Client at construction.
type Option func(*Client)

// WithDefaultHeaders sets headers attached to every request. The map is copied.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) { c.headers = copyHeaders(headers) }
}

// WithSerializer replaces the body serializer. When s also deserializes it
// becomes the deserializer too. Nil is ignored.
func WithSerializer(s serializer.Serializer) Option {
	return func(c *Client) { c.SetSerializer(s) }
}

// WithDeserializer replaces the content deserializer. Nil is ignored.
func WithDeserializer(d serializer.Deserializer) Option {
	return func(c *Client) { c.SetDeserializer(d) }
}

// WithTimeout bounds each exchange. Zero leaves the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.rest.SetTimeout(timeout)
		}
	}
}

// WithTransport swaps the underlying RoundTripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.rest.SetTransport(rt)
		}
	}
}

// WithLogger routes client logs to log. Loggers that also implement resty's
// Errorf/Warnf/Debugf surface receive transport logs as well.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = ensureLogger(log)
		if rl, ok := c.log.(resty.Logger); ok {
			c.rest.SetLogger(rl)
		}
	}
}

// WithHeaderMerge selects how default headers combine with per-call headers.
func WithHeaderMerge(policy HeaderMerge) Option {
	return func(c *Client) { c.headerMerge = policy }
}

// WithStatusCheck captures non-2xx responses as a status-stage TransportError.
func WithStatusCheck(enabled bool) Option {
	return func(c *Client) { c.statusCheck = enabled }
}

// WithRateLimit caps outgoing requests. Requests over the limit are not sent
// and surface as a send-stage TransportError.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.rest.SetRateLimiter(rate.NewLimiter(limit, burst))
	}
}
