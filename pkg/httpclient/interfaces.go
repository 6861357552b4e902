package httpclient

import "context"

// Requester is the send surface of Client so callers can inject fakes.
type Requester interface {
	Request(ctx context.Context, resource string, method Method, opts ...CallOption) (*Response, error)
	Get(ctx context.Context, resource string, opts ...CallOption) (*Response, error)
	Post(ctx context.Context, resource string, opts ...CallOption) (*Response, error)
	Put(ctx context.Context, resource string, opts ...CallOption) (*Response, error)
	Delete(ctx context.Context, resource string, opts ...CallOption) (*Response, error)
	Patch(ctx context.Context, resource string, opts ...CallOption) (*Response, error)
}

var _ Requester = (*Client)(nil)
