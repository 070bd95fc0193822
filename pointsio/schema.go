package pointsio

import (
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// pointsSchema describes the expected shape of a points document. Coordinate
// bounds match the 32-bit grid and numbers are unsigned 32-bit values.
const pointsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Points",
  "type": "object",
  "required": ["points"],
  "properties": {
    "points": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["x", "y", "number", "direction"],
        "properties": {
          "x": { "type": "integer", "minimum": -2147483648, "maximum": 2147483647 },
          "y": { "type": "integer", "minimum": -2147483648, "maximum": 2147483647 },
          "number": { "type": "integer", "minimum": 0, "maximum": 4294967295 },
          "direction": { "type": "string", "enum": ["North", "East", "South", "West"] }
        }
      }
    }
  }
}`

// validatePoints checks a raw points document against pointsSchema. The
// returned error collects every violation the validator found.
func validatePoints(doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(pointsSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	descriptions := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		descriptions = append(descriptions, desc.String())
	}
	return errors.New(strings.Join(descriptions, "; "))
}
