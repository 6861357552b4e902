package serializer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Package serializer provides the body encoding capabilities used by httpclient.

var (
	// ErrInvalidArgument is returned for nil values or blank content.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedTarget is returned when a codec cannot handle the given type.
	ErrUnsupportedTarget = errors.New("unsupported target type")
)

// Serializer turns a body value into its wire string.
type Serializer interface {
	Serialize(v any) (string, error)
}

// Deserializer decodes wire content into out, which must be a non-nil pointer.
type Deserializer interface {
	Deserialize(content string, out any) error
}

// Codec is satisfied by types that can do both.
type Codec interface {
	Serializer
	Deserializer
}

// ContentTyper is optionally implemented by serializers that know their media type.
type ContentTyper interface {
	ContentType() string
}

// Decode deserializes content into a new T.
func Decode[T any](d Deserializer, content string) (T, error) {
	var out T
	if d == nil {
		return out, fmt.Errorf("deserializer is nil: %w", ErrInvalidArgument)
	}
	if err := d.Deserialize(content, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ContentTypeOf returns the media type advertised by s, or "" if it has none.
func ContentTypeOf(s Serializer) string {
	if ct, ok := s.(ContentTyper); ok {
		return ct.ContentType()
	}
	return ""
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func checkBody(v any) error {
	if isNil(v) {
		return fmt.Errorf("body is nil: %w", ErrInvalidArgument)
	}
	return nil
}

func checkContent(content string, out any) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is empty: %w", ErrInvalidArgument)
	}
	if isNil(out) || reflect.ValueOf(out).Kind() != reflect.Pointer {
		return fmt.Errorf("decode target must be a non-nil pointer: %w", ErrInvalidArgument)
	}
	return nil
}
