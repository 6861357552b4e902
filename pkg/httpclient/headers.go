package httpclient

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const headerContentType = "Content-Type"

// HeaderMerge decides what happens when a default header collides with a
// per-call header of the same (canonical) name.
type HeaderMerge int

const (
	// HeaderMergeSkip keeps the per-call value and drops the default.
	HeaderMergeSkip HeaderMerge = iota
	// HeaderMergeOverride replaces the per-call value with the default.
	HeaderMergeOverride
	// HeaderMergeReject fails the request at the build stage.
	HeaderMergeReject
)

func (h HeaderMerge) String() string {
	switch h {
	case HeaderMergeOverride:
		return "override"
	case HeaderMergeReject:
		return "reject"
	default:
		return "skip"
	}
}

// ParseHeaderMerge maps a config name to a policy. Empty means skip.
func ParseHeaderMerge(name string) (HeaderMerge, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "skip":
		return HeaderMergeSkip, nil
	case "override":
		return HeaderMergeOverride, nil
	case "reject":
		return HeaderMergeReject, nil
	default:
		return HeaderMergeSkip, fmt.Errorf("unknown header merge policy %q", name)
	}
}

// mergeHeaders applies perCall first, then defaults under policy. Keys are
// canonicalized. Content-Type is pulled out of the result and returned
// separately. On a reject collision the merged set is still returned with err.
func mergeHeaders(perCall, defaults map[string]string, policy HeaderMerge) (map[string]string, string, error) {
	merged := make(map[string]string, len(perCall)+len(defaults))
	for k, v := range perCall {
		merged[http.CanonicalHeaderKey(k)] = v
	}

	var dups []string
	for k, v := range defaults {
		key := http.CanonicalHeaderKey(k)
		if _, exists := merged[key]; exists {
			switch policy {
			case HeaderMergeOverride:
				merged[key] = v
			case HeaderMergeReject:
				dups = append(dups, key)
			}
			continue
		}
		merged[key] = v
	}

	contentType := strings.TrimSpace(merged[headerContentType])
	delete(merged, headerContentType)

	if len(dups) > 0 {
		sort.Strings(dups)
		return merged, contentType, fmt.Errorf("%w: %s", ErrDuplicateHeader, strings.Join(dups, ", "))
	}
	return merged, contentType, nil
}

func copyHeaders(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
