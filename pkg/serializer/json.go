package serializer

import (
	"encoding/json"
	"fmt"
)

// JSON is the default codec.
type JSON struct{}

var _ Codec = JSON{}

// Serialize marshals v to a JSON string.
func (JSON) Serialize(v any) (string, error) {
	if err := checkBody(v); err != nil {
		return "", err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(raw), nil
}

// Deserialize unmarshals JSON content into out.
func (JSON) Deserialize(content string, out any) error {
	if err := checkContent(content, out); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}

func (JSON) ContentType() string { return "application/json" }
