package config

import (
	"errors"
	"fmt"
	"strings"

	schemaData "github.com/gopak/clipsearch/schema"
	"github.com/xeipuuv/gojsonschema"
)

var schemaJSON = schemaData.Bytes

// ValidateAgainstSchema checks the merged config against the embedded
// config schema. Violations are joined into a single error.
func ValidateAgainstSchema(cfg Config) error {
	if len(schemaJSON) == 0 {
		return errors.New("schema not embedded")
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.Field()+": "+e.Description())
	}
	return errors.New("schema validation failed: " + strings.Join(msgs, "; "))
}
