package serializer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML parses response content into a goquery document. It only deserializes.
type HTML struct{}

var _ Deserializer = HTML{}

// Deserialize parses content into out, which must be **goquery.Document or *goquery.Document.
func (HTML) Deserialize(content string, out any) error {
	if err := checkContent(content, out); err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	switch target := out.(type) {
	case **goquery.Document:
		*target = doc
	case *goquery.Document:
		*target = *doc
	default:
		return fmt.Errorf("html deserialize %T: %w", out, ErrUnsupportedTarget)
	}
	return nil
}
