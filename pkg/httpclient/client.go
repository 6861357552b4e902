package httpclient

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/samvad-hq/reqclient/pkg/serializer"
)

// Client sends requests relative to a base URL with a default header set and a
// pluggable body codec. Configuration may be changed between calls but is not
// synchronized; callers that share a Client across goroutines must not mutate it
// concurrently with requests.
type Client struct {
	baseURL      string
	headers      map[string]string
	serializer   serializer.Serializer
	deserializer serializer.Deserializer
	headerMerge  HeaderMerge
	statusCheck  bool
	log          Logger
	rest         *resty.Client
}

// New creates a client for baseURL, which may be empty when every resource is
// an absolute URL. Without options the client has no default headers and uses
// the JSON codec.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      baseURL,
		headers:      make(map[string]string),
		serializer:   serializer.JSON{},
		deserializer: serializer.JSON{},
		log:          noopLogger{},
		rest:         newRestyBaseClient(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func newRestyBaseClient() *resty.Client {
	c := resty.New()
	c.SetAllowGetMethodPayload(true)
	return c
}

// BaseURL returns the prefix resources are joined to.
func (c *Client) BaseURL() string { return c.baseURL }

// SetBaseURL changes the prefix for subsequent requests.
func (c *Client) SetBaseURL(baseURL string) { c.baseURL = baseURL }

// Headers returns a copy of the default headers.
func (c *Client) Headers() map[string]string { return copyHeaders(c.headers) }

// SetHeaders replaces the default headers with a copy of headers.
func (c *Client) SetHeaders(headers map[string]string) { c.headers = copyHeaders(headers) }

// SetHeader adds or replaces one default header.
func (c *Client) SetHeader(key, value string) { c.headers[key] = value }

// DelHeader removes a default header.
func (c *Client) DelHeader(key string) { delete(c.headers, key) }

// Serializer returns the codec used for request bodies.
func (c *Client) Serializer() serializer.Serializer { return c.serializer }

// Deserializer returns the codec typed responses are decoded with.
func (c *Client) Deserializer() serializer.Deserializer { return c.deserializer }

// SetSerializer replaces the serializer, and the deserializer too when s
// implements both. Nil is ignored.
func (c *Client) SetSerializer(s serializer.Serializer) {
	if s == nil {
		return
	}
	c.serializer = s
	if d, ok := s.(serializer.Deserializer); ok {
		c.deserializer = d
	}
}

// SetDeserializer replaces the deserializer. Nil is ignored.
func (c *Client) SetDeserializer(d serializer.Deserializer) {
	if d != nil {
		c.deserializer = d
	}
}

// Request performs one exchange. The returned error is non-nil only when the
// body cannot be serialized; every failure after that point (bad URI, header
// collision under HeaderMergeReject, send, body read, status check) is
// captured in Response.Err.
func (c *Client) Request(ctx context.Context, resource string, method Method, opts ...CallOption) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	call := newCallOptions(opts)

	headers, contentType, mergeErr := mergeHeaders(call.headers, c.headers, c.headerMerge)
	req := &Request{
		URI:         joinURI(c.baseURL, resource),
		Method:      method,
		Body:        call.body,
		Headers:     headers,
		ContentType: contentType,
	}

	var body *payload
	if call.hasBody {
		var err error
		if body, err = encodeBody(c.serializer, req); err != nil {
			return nil, err
		}
	}

	resp := &Response{Request: req}
	if err := validateURI(req.URI); err != nil {
		return c.capture(resp, StageBuildRequest, err), nil
	}
	if mergeErr != nil {
		return c.capture(resp, StageBuildRequest, mergeErr), nil
	}

	c.log.DebugObj("http request", "request", map[string]any{
		"method": req.Method.String(),
		"uri":    req.URI,
	})

	return c.send(ctx, req, body, resp), nil
}

func (c *Client) send(ctx context.Context, req *Request, body *payload, resp *Response) *Response {
	r := c.rest.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)

	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}

	if body != nil {
		if body.form != nil {
			r.SetHeader(headerContentType, contentTypeForm)
			r.SetFormData(body.form)
		} else {
			r.SetHeader(headerContentType, req.ContentType)
			r.SetBody(body.text)
		}
	}

	raw, err := r.Execute(req.Method.String(), req.URI)
	if raw != nil {
		if rc := raw.RawBody(); rc != nil {
			defer rc.Close()
		}
	}
	if err != nil {
		return c.capture(resp, StageSend, err)
	}

	resp.Status = newStatus(raw.StatusCode())

	rc := raw.RawBody()
	if rc == nil {
		return c.checkStatus(resp)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		return c.capture(resp, StageReadBody, err)
	}
	resp.Content = string(data)
	resp.ContentBytes = data

	return c.checkStatus(resp)
}

func (c *Client) checkStatus(resp *Response) *Response {
	if c.statusCheck && !resp.Status.IsSuccess() {
		return c.capture(resp, StageStatus, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}

	c.log.DebugObj("http response", "response", map[string]any{
		"method": resp.Request.Method.String(),
		"uri":    resp.Request.URI,
		"status": resp.Status.Code,
		"bytes":  len(resp.ContentBytes),
	})
	return resp
}

func (c *Client) capture(resp *Response, stage Stage, cause error) *Response {
	resp.Err = &TransportError{
		Stage:  stage,
		Method: resp.Request.Method.String(),
		URI:    resp.Request.URI,
		Cause:  cause,
	}
	c.log.WarnObj("http request failed", "request_error", map[string]any{
		"method": resp.Request.Method.String(),
		"uri":    resp.Request.URI,
		"stage":  string(stage),
		"error":  cause.Error(),
	})
	return resp
}

// Get performs an HTTP GET request for resource.
func (c *Client) Get(ctx context.Context, resource string, opts ...CallOption) (*Response, error) {
	return c.Request(ctx, resource, MethodGet, opts...)
}

// Post performs an HTTP POST request for resource.
func (c *Client) Post(ctx context.Context, resource string, opts ...CallOption) (*Response, error) {
	return c.Request(ctx, resource, MethodPost, opts...)
}

// Put performs an HTTP PUT request for resource.
func (c *Client) Put(ctx context.Context, resource string, opts ...CallOption) (*Response, error) {
	return c.Request(ctx, resource, MethodPut, opts...)
}

// Delete performs an HTTP DELETE request for resource.
func (c *Client) Delete(ctx context.Context, resource string, opts ...CallOption) (*Response, error) {
	return c.Request(ctx, resource, MethodDelete, opts...)
}

// Patch performs an HTTP PATCH request for resource.
func (c *Client) Patch(ctx context.Context, resource string, opts ...CallOption) (*Response, error) {
	return c.Request(ctx, resource, MethodPatch, opts...)
}
