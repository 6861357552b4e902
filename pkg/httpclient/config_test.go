package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samvad-hq/reqclient/pkg/config"
	"github.com/samvad-hq/reqclient/pkg/serializer"
)

func TestNewFromConfig(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		_, _ = io.WriteString(w, "name: Warsaw\n")
	}))
	defer srv.Close()

	cfg := &config.Config{
		BaseURL:        srv.URL,
		Headers:        map[string]string{"x-api-key": "secret"},
		Serializer:     "yaml",
		TimeoutSeconds: 2,
		HeaderMerge:    "override",
	}

	c, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if c.BaseURL() != srv.URL || c.headerMerge != HeaderMergeOverride {
		t.Fatalf("profile not applied: %q %v", c.BaseURL(), c.headerMerge)
	}
	if _, ok := c.Serializer().(serializer.YAML); !ok {
		t.Fatalf("expected yaml serializer, got %T", c.Serializer())
	}

	resp, err := GetAs[cityDTO](context.Background(), c, "cities/waw")
	if err != nil {
		t.Fatalf("GetAs: %v", err)
	}
	if gotKey != "secret" {
		t.Fatalf("default header from config not sent, got %q", gotKey)
	}
	if resp.Value.Name != "Warsaw" {
		t.Fatalf("unexpected value %+v", resp.Value)
	}
}

func TestNewFromConfigSeparateDeserializer(t *testing.T) {
	c, err := NewFromConfig(&config.Config{Serializer: "json", Deserializer: "html"})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if _, ok := c.Serializer().(serializer.JSON); !ok {
		t.Fatalf("expected json serializer, got %T", c.Serializer())
	}
	if _, ok := c.Deserializer().(serializer.HTML); !ok {
		t.Fatalf("expected html deserializer, got %T", c.Deserializer())
	}
}

func TestNewFromConfigErrors(t *testing.T) {
	cases := map[string]*config.Config{
		"nil":                nil,
		"unknown serializer": {Serializer: "xml"},
		"html serializer":    {Serializer: "html"},
		"unknown decoder":    {Deserializer: "csv"},
		"bad merge":          {HeaderMerge: "append"},
	}
	for name, cfg := range cases {
		if _, err := NewFromConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestNewFromConfigRateLimit(t *testing.T) {
	rt := &recordingTransport{}
	c, err := NewFromConfig(&config.Config{
		BaseURL:            "https://example.test",
		RateLimitPerSecond: 0.001,
		RateLimitBurst:     1,
	}, WithTransport(rt))
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}

	first, err := c.Get(context.Background(), "items")
	if err != nil || first.Err != nil {
		t.Fatalf("first request should pass: err=%v captured=%v", err, first.Err)
	}
	second, err := c.Get(context.Background(), "items")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if second.Err == nil {
		t.Fatalf("expected the second request to be rate limited")
	}
	if len(rt.seen) != 1 {
		t.Fatalf("expected one request on the wire, got %d", len(rt.seen))
	}
}

func TestParseHeaderMerge(t *testing.T) {
	cases := map[string]HeaderMerge{
		"":         HeaderMergeSkip,
		"Skip":     HeaderMergeSkip,
		"override": HeaderMergeOverride,
		" reject ": HeaderMergeReject,
	}
	for in, want := range cases {
		got, err := ParseHeaderMerge(in)
		if err != nil || got != want {
			t.Fatalf("ParseHeaderMerge(%q) = %v, %v", in, got, err)
		}
	}
	if HeaderMergeReject.String() != "reject" || HeaderMergeSkip.String() != "skip" {
		t.Fatalf("unexpected policy names")
	}
}

func TestParseMethod(t *testing.T) {
	cases := map[string]Method{
		"get": MethodGet, "POST": MethodPost, "put": MethodPut, "Delete": MethodDelete,
		"patch": MethodPatch, "HEAD": MethodHead, "options": MethodOptions, "trace": MethodTrace,
		"BREW": MethodGet,
	}
	for in, want := range cases {
		if got := ParseMethod(in); got != want {
			t.Fatalf("ParseMethod(%q) = %v, want %v", in, got, want)
		}
	}
	if MethodTrace.String() != http.MethodTrace || Method(-1).String() != http.MethodGet {
		t.Fatalf("unexpected wire names")
	}
}
