package httpclient

import (
	"fmt"
	"time"

	"github.com/samvad-hq/reqclient/pkg/config"
	"github.com/samvad-hq/reqclient/pkg/serializer"
	"golang.org/x/time/rate"
)

// NewFromConfig builds a client from a loaded profile. Codec names resolve
// through serializer.DefaultRegistry. opts are applied after the profile.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client config is nil")
	}

	reg := serializer.DefaultRegistry()

	serName := cfg.Serializer
	if serName == "" {
		serName = serializer.NameJSON
	}
	ser, err := reg.LookupSerializer(serName)
	if err != nil {
		return nil, fmt.Errorf("resolve serializer: %w", err)
	}

	deserName := cfg.Deserializer
	if deserName == "" {
		deserName = serName
	}
	deser, err := reg.Lookup(deserName)
	if err != nil {
		return nil, fmt.Errorf("resolve deserializer: %w", err)
	}

	merge, err := ParseHeaderMerge(cfg.HeaderMerge)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 && cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	base := []Option{
		WithDefaultHeaders(cfg.Headers),
		WithSerializer(ser),
		WithDeserializer(deser),
		WithHeaderMerge(merge),
		WithStatusCheck(cfg.StatusCheck),
		WithTimeout(timeout),
	}
	if cfg.RateLimitPerSecond > 0 {
		base = append(base, WithRateLimit(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst))
	}

	return New(cfg.BaseURL, append(base, opts...)...), nil
}
