package httpclient

import (
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/samvad-hq/reqclient/pkg/serializer"
)

const (
	contentTypeForm     = "application/x-www-form-urlencoded"
	contentTypeFallback = "text/plain; charset=utf-8"
)

// Request is the outgoing request a Response was produced from.
type Request struct {
	URI    string
	Method Method
	Body   any

	// Headers holds the merged header set in canonical form, without Content-Type.
	Headers map[string]string

	// ContentType is the declared type, or the effective one when a body was sent.
	ContentType string
}

// CallOption configures a single send operation.
type CallOption func(*callOptions)

type callOptions struct {
	body    any
	hasBody bool
	headers map[string]string
}

// WithBody attaches a body value. A nil interface means no body; a typed nil
// reaches the serializer and fails the call with ErrInvalidArgument.
func WithBody(v any) CallOption {
	return func(o *callOptions) {
		o.body = v
		o.hasBody = v != nil
	}
}

// WithHeaders adds per-call headers.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		for k, v := range headers {
			o.setHeader(k, v)
		}
	}
}

// WithHeader adds a single per-call header.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) { o.setHeader(key, value) }
}

func (o *callOptions) setHeader(k, v string) {
	if o.headers == nil {
		o.headers = make(map[string]string)
	}
	o.headers[k] = v
}

func newCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// payload is the encoded body ready for the transport.
type payload struct {
	text string
	form map[string]string
}

// joinURI appends resource to base with a single separator. An absolute
// resource URL, or an empty base, uses resource as is.
func joinURI(base, resource string) string {
	switch {
	case base == "":
		return resource
	case resource == "":
		return base
	case isAbsoluteURL(resource):
		return resource
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(resource, "/")
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

func validateURI(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse uri: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("uri %q is not absolute", raw)
	}
	return nil
}

func isFormContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	return strings.EqualFold(mediaType, contentTypeForm)
}

// encodeBody serializes req.Body according to the declared content type.
// Form-url-encoded bodies are flattened to fields using the serializer's own
// codec; every other declared type gets the serializer's string output.
func encodeBody(s serializer.Serializer, req *Request) (*payload, error) {
	if s == nil {
		return nil, fmt.Errorf("serializer is nil: %w", ErrInvalidArgument)
	}

	if isFormContentType(req.ContentType) {
		fields, err := serializer.FormFields(s, req.Body)
		if err != nil {
			return nil, argumentError("encode form body", err)
		}
		return &payload{form: fields}, nil
	}

	text, err := s.Serialize(req.Body)
	if err != nil {
		return nil, argumentError("serialize body", err)
	}
	if req.ContentType == "" {
		req.ContentType = serializer.ContentTypeOf(s)
	}
	if req.ContentType == "" {
		req.ContentType = contentTypeFallback
	}
	return &payload{text: text}, nil
}
