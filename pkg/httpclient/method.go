package httpclient

import (
	"net/http"
	"strings"
)

// Method is an HTTP request method.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
	MethodPatch
	MethodHead
	MethodOptions
	MethodTrace
)

// String returns the wire name. Unknown values map to GET.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	case MethodPut:
		return http.MethodPut
	case MethodDelete:
		return http.MethodDelete
	case MethodPatch:
		return http.MethodPatch
	case MethodHead:
		return http.MethodHead
	case MethodOptions:
		return http.MethodOptions
	case MethodTrace:
		return http.MethodTrace
	default:
		return http.MethodGet
	}
}

// ParseMethod maps a wire name (any case) to a Method. Unknown names map to GET.
func ParseMethod(name string) Method {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case http.MethodPost:
		return MethodPost
	case http.MethodPut:
		return MethodPut
	case http.MethodDelete:
		return MethodDelete
	case http.MethodPatch:
		return MethodPatch
	case http.MethodHead:
		return MethodHead
	case http.MethodOptions:
		return MethodOptions
	case http.MethodTrace:
		return MethodTrace
	default:
		return MethodGet
	}
}
