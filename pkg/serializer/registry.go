package serializer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

const (
	// Registered codec names.
	NameJSON      = "json"
	NameYAML      = "yaml"
	NameProtoJSON = "protojson"
	NameHTML      = "html"
)

// Registry maps codec names to implementations. Every entry deserializes;
// entries that also serialize can be resolved with LookupSerializer.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Deserializer
}

// NewRegistry returns a registry with optional pre-registered codecs.
func NewRegistry(codecs map[string]Deserializer) *Registry {
	r := &Registry{codecs: make(map[string]Deserializer)}
	for name, c := range codecs {
		r.Register(name, c)
	}
	return r
}

// DefaultRegistry wires up the built-in codecs.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]Deserializer{
		NameJSON:      JSON{},
		NameYAML:      YAML{},
		NameProtoJSON: ProtoJSON{},
		NameHTML:      HTML{},
	})
}

// Register associates a codec with a name. Empty names and nil codecs are ignored.
func (r *Registry) Register(name string, codec Deserializer) {
	if name = normalizeName(name); name == "" || codec == nil {
		return
	}

	r.mu.Lock()
	r.codecs[name] = codec
	r.mu.Unlock()
}

// Lookup returns the deserializer registered under name.
func (r *Registry) Lookup(name string) (Deserializer, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, fmt.Errorf("codec name is empty")
	}

	r.mu.RLock()
	codec := r.codecs[key]
	r.mu.RUnlock()

	if codec == nil {
		return nil, fmt.Errorf("no codec registered for %q", name)
	}
	return codec, nil
}

// LookupSerializer returns the codec under name if it can also serialize.
func (r *Registry) LookupSerializer(name string) (Serializer, error) {
	codec, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	s, ok := codec.(Serializer)
	if !ok {
		return nil, fmt.Errorf("codec %q cannot serialize", name)
	}
	return s, nil
}

// Names lists registered codec names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
