package serializer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormFields serializes body with s and decodes the result back into a flat
// string map suitable for form-url-encoding. The result is decoded with s itself
// when it is also a Deserializer, otherwise as JSON. Nested objects and arrays
// are rejected.
func FormFields(s Serializer, body any) (map[string]string, error) {
	if s == nil {
		return nil, fmt.Errorf("form fields need a serializer: %w", ErrInvalidArgument)
	}

	raw, err := s.Serialize(body)
	if err != nil {
		return nil, err
	}

	d, ok := s.(Deserializer)
	if !ok {
		d = JSON{}
	}

	generic, err := decodeFields(d, raw)
	if err != nil {
		return nil, fmt.Errorf("flatten form body: %w", err)
	}

	fields := make(map[string]string, len(generic))
	for key, val := range generic {
		str, ok := scalarString(val)
		if !ok {
			return nil, fmt.Errorf("form field %q is not a scalar (%T): %w", key, val, ErrInvalidArgument)
		}
		fields[key] = str
	}
	return fields, nil
}

// decodeFields keeps JSON numbers as json.Number so integers beyond float64
// precision reach the wire unchanged.
func decodeFields(d Deserializer, raw string) (map[string]any, error) {
	var generic map[string]any
	if _, ok := d.(JSON); !ok {
		if err := d.Deserialize(raw, &generic); err != nil {
			return nil, err
		}
		return generic, nil
	}

	if err := checkContent(raw, &generic); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return generic, nil
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case json.Number:
		return val.String(), true
	default:
		return "", false
	}
}
