// Package pointsio loads points files: JSON documents carrying a single
// points array. Documents are checked against a JSON Schema before decoding,
// so malformed files are rejected with a description of what is wrong rather
// than a bare decode error.
package pointsio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rodneylab/neighbours/points"
)

// ErrInvalidFile reports a points file that could not be read, whether
// missing or not valid UTF-8.
var ErrInvalidFile = errors.New("Error reading input file")

// ErrParse reports a points document that could not be parsed, whether
// malformed JSON or JSON with an unexpected structure.
var ErrParse = errors.New("Error parsing JSON")

// pointList is the top level structure of a points file.
type pointList struct {
	Points []points.Point `json:"points"`
}

// ReadPointsFile reads and parses the points file at path. Read failures and
// files holding invalid UTF-8 are reported as ErrInvalidFile; documents that
// fail to parse or validate are reported as ErrParse.
func ReadPointsFile(path string) ([]points.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, invalidFileError(path)
	}
	if !utf8.Valid(data) {
		return nil, invalidFileError(path)
	}
	return parsePoints(data)
}

// ReadPoints parses a points document from r.
func ReadPoints(r io.Reader) ([]points.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return parsePoints(data)
}

func parsePoints(data []byte) ([]points.Point, error) {
	if err := validatePoints(data); err != nil {
		return nil, parseError(err)
	}

	var list pointList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, parseError(err)
	}
	return list.Points, nil
}

func invalidFileError(path string) error {
	return fmt.Errorf("%w: `%s`. Check it exists and contains valid UTF-8.", ErrInvalidFile, path)
}

func parseError(err error) error {
	return fmt.Errorf("%w. Check the input JSON is valid and has expected structure: %v", ErrParse, err)
}
