package httpclient

import "context"

// Call is an in-flight request started by RequestAsync or a verb variant.
type Call struct {
	done chan struct{}
	resp *Response
	err  error
}

// RequestAsync starts Request on its own goroutine.
func (c *Client) RequestAsync(ctx context.Context, resource string, method Method, opts ...CallOption) *Call {
	call := &Call{done: make(chan struct{})}
	go func() {
		defer close(call.done)
		call.resp, call.err = c.Request(ctx, resource, method, opts...)
	}()
	return call
}

// Done is closed once the call has completed.
func (c *Call) Done() <-chan struct{} { return c.done }

// Wait blocks until completion and returns exactly what Request returned.
func (c *Call) Wait() (*Response, error) {
	<-c.done
	return c.resp, c.err
}

// GetAsync starts Get on its own goroutine.
func (c *Client) GetAsync(ctx context.Context, resource string, opts ...CallOption) *Call {
	return c.RequestAsync(ctx, resource, MethodGet, opts...)
}

// PostAsync starts Post on its own goroutine.
func (c *Client) PostAsync(ctx context.Context, resource string, opts ...CallOption) *Call {
	return c.RequestAsync(ctx, resource, MethodPost, opts...)
}

// PutAsync starts Put on its own goroutine.
func (c *Client) PutAsync(ctx context.Context, resource string, opts ...CallOption) *Call {
	return c.RequestAsync(ctx, resource, MethodPut, opts...)
}

// DeleteAsync starts Delete on its own goroutine.
func (c *Client) DeleteAsync(ctx context.Context, resource string, opts ...CallOption) *Call {
	return c.RequestAsync(ctx, resource, MethodDelete, opts...)
}

// PatchAsync starts Patch on its own goroutine.
func (c *Client) PatchAsync(ctx context.Context, resource string, opts ...CallOption) *Call {
	return c.RequestAsync(ctx, resource, MethodPatch, opts...)
}
