package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/samvad-hq/reqclient/pkg/serializer"
)

// Status is the numeric code and its standard text.
type Status struct {
	Code int
	Text string
}

func newStatus(code int) Status {
	return Status{Code: code, Text: http.StatusText(code)}
}

func (s Status) String() string {
	return fmt.Sprintf("%d %s", s.Code, s.Text)
}

// IsSuccess reports a 2xx code.
func (s Status) IsSuccess() bool { return s.Code >= 200 && s.Code < 300 }

// Response is the outcome of one exchange. Transport failures are reported in
// Err rather than returned, so Content and Status are zero when Err is set
// before a response arrived.
type Response struct {
	Content      string
	ContentBytes []byte
	Status       Status
	Err          error
	Request      *Request
}

// TypedResponse carries the Response fields plus the decoded Content.
type TypedResponse[T any] struct {
	Response
	Value T
}

func newTypedResponse[T any](r *Response, value T) *TypedResponse[T] {
	return &TypedResponse[T]{
		Response: Response{
			Content:      r.Content,
			ContentBytes: r.ContentBytes,
			Status:       r.Status,
			Err:          r.Err,
			Request:      r.Request,
		},
		Value: value,
	}
}

// RequestAs sends the request and decodes Content into T with the client's
// deserializer. A captured transport error skips decoding and returns a zero
// Value with Err set. On a *DecodeError the returned response still carries
// the raw fields.
func RequestAs[T any](ctx context.Context, c *Client, resource string, method Method, opts ...CallOption) (*TypedResponse[T], error) {
	resp, err := c.Request(ctx, resource, method, opts...)
	if err != nil {
		return nil, err
	}

	var zero T
	if resp.Err != nil {
		return newTypedResponse(resp, zero), nil
	}

	value, err := serializer.Decode[T](c.deserializer, resp.Content)
	if err != nil {
		return newTypedResponse(resp, zero), &DecodeError{Target: typeName[T](), Cause: err}
	}
	return newTypedResponse(resp, value), nil
}

func GetAs[T any](ctx context.Context, c *Client, resource string, opts ...CallOption) (*TypedResponse[T], error) {
	return RequestAs[T](ctx, c, resource, MethodGet, opts...)
}

func PostAs[T any](ctx context.Context, c *Client, resource string, opts ...CallOption) (*TypedResponse[T], error) {
	return RequestAs[T](ctx, c, resource, MethodPost, opts...)
}

func PutAs[T any](ctx context.Context, c *Client, resource string, opts ...CallOption) (*TypedResponse[T], error) {
	return RequestAs[T](ctx, c, resource, MethodPut, opts...)
}

func DeleteAs[T any](ctx context.Context, c *Client, resource string, opts ...CallOption) (*TypedResponse[T], error) {
	return RequestAs[T](ctx, c, resource, MethodDelete, opts...)
}

func PatchAs[T any](ctx context.Context, c *Client, resource string, opts ...CallOption) (*TypedResponse[T], error) {
	return RequestAs[T](ctx, c, resource, MethodPatch, opts...)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
