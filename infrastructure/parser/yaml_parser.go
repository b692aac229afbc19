// Package parser decodes configuration documents.
package parser

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser decodes YAML documents into Go values.
type YAMLParser struct {
	strict bool
}

// NewYAMLParser creates a parser. A strict parser rejects keys that do not
// map to a field of the target.
func NewYAMLParser(strict bool) *YAMLParser {
	return &YAMLParser{strict: strict}
}

// Parse decodes data into out, leaving fields the document does not mention
// untouched. An empty document is not an error.
func (p *YAMLParser) Parse(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(p.strict)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
