package serializer

import (
	"fmt"
	"reflect"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ProtoJSON encodes protobuf messages using the canonical JSON mapping.
// Non-message values are rejected with ErrUnsupportedTarget.
type ProtoJSON struct {
	UseProtoNames  bool
	DiscardUnknown bool
}

var _ Codec = ProtoJSON{}

// Serialize marshals a proto.Message to JSON.
func (p ProtoJSON) Serialize(v any) (string, error) {
	if err := checkBody(v); err != nil {
		return "", err
	}
	msg, ok := v.(proto.Message)
	if !ok {
		return "", fmt.Errorf("protojson serialize %T: %w", v, ErrUnsupportedTarget)
	}
	raw, err := protojson.MarshalOptions{UseProtoNames: p.UseProtoNames}.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("protojson marshal: %w", err)
	}
	return string(raw), nil
}

// Deserialize accepts either a message pointer or a pointer to a message pointer,
// allocating the message in the latter case.
func (p ProtoJSON) Deserialize(content string, out any) error {
	if err := checkContent(content, out); err != nil {
		return err
	}

	msg, ok := out.(proto.Message)
	if !ok {
		rv := reflect.ValueOf(out).Elem()
		if rv.Kind() != reflect.Pointer {
			return fmt.Errorf("protojson deserialize %T: %w", out, ErrUnsupportedTarget)
		}
		if _, isMsg := reflect.Zero(rv.Type()).Interface().(proto.Message); !isMsg {
			return fmt.Errorf("protojson deserialize %T: %w", out, ErrUnsupportedTarget)
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		msg = rv.Interface().(proto.Message)
	}

	opts := protojson.UnmarshalOptions{DiscardUnknown: p.DiscardUnknown}
	if err := opts.Unmarshal([]byte(content), msg); err != nil {
		return fmt.Errorf("protojson unmarshal: %w", err)
	}
	return nil
}

func (ProtoJSON) ContentType() string { return "application/json" }
