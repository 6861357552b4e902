package httpclient

import (
	"errors"
	"fmt"

	"github.com/samvad-hq/reqclient/pkg/serializer"
)

var (
	// ErrInvalidArgument marks serialization and decode input failures.
	ErrInvalidArgument = serializer.ErrInvalidArgument
	// ErrDuplicateHeader is the build-request cause under HeaderMergeReject.
	ErrDuplicateHeader = errors.New("duplicate header")
	// ErrUnexpectedStatus is the status-stage cause when status checks are enabled.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Stage names the step of an exchange that failed.
type Stage string

const (
	StageBuildRequest Stage = "build-request"
	StageSend         Stage = "send"
	StageReadBody     Stage = "read-body"
	StageStatus       Stage = "status"
)

// TransportError is captured in Response.Err; it is never returned from a call.
type TransportError struct {
	Stage  Stage
	Method string
	URI    string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", e.Stage, e.Method, e.URI, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// DecodeError is returned by the typed request helpers when Content cannot be
// converted to the requested type.
type DecodeError struct {
	Target string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response into %s: %v", e.Target, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

func argumentError(context string, err error) error {
	if errors.Is(err, ErrInvalidArgument) {
		return fmt.Errorf("%s: %w", context, err)
	}
	return fmt.Errorf("%s: %w: %w", context, ErrInvalidArgument, err)
}
