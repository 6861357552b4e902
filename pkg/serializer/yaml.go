package serializer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML encodes bodies as YAML documents.
type YAML struct{}

var _ Codec = YAML{}

// Serialize marshals v to a YAML string.
func (YAML) Serialize(v any) (string, error) {
	if err := checkBody(v); err != nil {
		return "", err
	}
	raw, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}
	return string(raw), nil
}

// Deserialize unmarshals YAML content into out.
func (YAML) Deserialize(content string, out any) error {
	if err := checkContent(content, out); err != nil {
		return err
	}
	if err := yaml.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

func (YAML) ContentType() string { return "application/yaml" }
