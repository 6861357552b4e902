package serializer

import (
	"errors"
	"testing"
)

func TestFormFieldsFlattensScalars(t *testing.T) {
	body := struct {
		Amount int     `json:"amount" yaml:"amount"`
		Rate   float64 `json:"rate" yaml:"rate"`
		Note   string  `json:"note" yaml:"note"`
		Paid   bool    `json:"paid" yaml:"paid"`
	}{Amount: 5, Rate: 1.25, Note: "lunch", Paid: true}

	want := map[string]string{"amount": "5", "rate": "1.25", "note": "lunch", "paid": "true"}

	for name, c := range map[string]Codec{"json": JSON{}, "yaml": YAML{}} {
		fields, err := FormFields(c, body)
		if err != nil {
			t.Fatalf("%s: FormFields: %v", name, err)
		}
		if len(fields) != len(want) {
			t.Fatalf("%s: expected %d fields, got %v", name, len(want), fields)
		}
		for k, v := range want {
			if fields[k] != v {
				t.Fatalf("%s: field %s = %q, want %q", name, k, fields[k], v)
			}
		}
	}
}

func TestFormFieldsRejectsNested(t *testing.T) {
	body := map[string]any{"outer": map[string]any{"inner": 1}}
	if _, err := FormFields(JSON{}, body); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nested body, got %v", err)
	}
}

func TestFormFieldsRejectsNilBody(t *testing.T) {
	if _, err := FormFields(JSON{}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil body, got %v", err)
	}
}

func TestFormFieldsKeepsLargeIntegers(t *testing.T) {
	body := map[string]any{"id": int64(12345678901234567), "big": uint64(18446744073709551615)}

	for name, c := range map[string]Codec{"json": JSON{}, "yaml": YAML{}} {
		fields, err := FormFields(c, body)
		if err != nil {
			t.Fatalf("%s: FormFields: %v", name, err)
		}
		if fields["id"] != "12345678901234567" || fields["big"] != "18446744073709551615" {
			t.Fatalf("%s: integers changed: %v", name, fields)
		}
	}
}

// textOnly serializes to JSON but has no decoder of its own.
type textOnly struct{}

func (textOnly) Serialize(v any) (string, error) { return JSON{}.Serialize(v) }

func TestFormFieldsDecodesAsJSONWithoutDeserializer(t *testing.T) {
	fields, err := FormFields(textOnly{}, map[string]any{"amount": 5})
	if err != nil {
		t.Fatalf("FormFields: %v", err)
	}
	if fields["amount"] != "5" {
		t.Fatalf("unexpected fields %v", fields)
	}
}
