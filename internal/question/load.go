package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// errMultipleDocuments is returned when a quiz file holds more than one
// YAML document or JSON value.
var errMultipleDocuments = errors.New("multiple documents are not supported")

// SpecFormat returns the structured format implied by the file extension.
func SpecFormat(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// IsSpecPath reports whether path names a structured quiz file.
func IsSpecPath(path string) bool {
	_, ok := SpecFormat(path)
	return ok
}

// OpenQuiz loads a structured quiz file and builds ready-to-take questions,
// shuffling each question's options.
func OpenQuiz(path string, shuffler Shuffler) ([]Question, error) {
	spec, err := LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return FromSpec(spec, shuffler), nil
}

// LoadSpec reads, decodes, and validates a structured quiz file.
func LoadSpec(path string) (Spec, error) {
	format, ok := SpecFormat(path)
	if !ok {
		return Spec{}, fmt.Errorf("quiz file %s: expected .yml, .yaml or .json", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read quiz file: %w", err)
	}
	spec, err := DecodeSpec(data, format)
	if err != nil {
		return Spec{}, err
	}
	return NormalizeSpec(spec)
}

// DecodeSpec strictly decodes exactly one quiz document in format.
func DecodeSpec(data []byte, format string) (Spec, error) {
	var spec Spec
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return Spec{}, fmt.Errorf("parse json: %w", err)
		}
		var rest json.RawMessage
		if err := onlyDocument(decoder.Decode(&rest)); err != nil {
			return Spec{}, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&spec); err != nil {
			return Spec{}, fmt.Errorf("parse yaml: %w", err)
		}
		var rest yaml.Node
		if err := onlyDocument(decoder.Decode(&rest)); err != nil {
			return Spec{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Spec{}, fmt.Errorf("unsupported format %q (expected yaml|json)", format)
	}
	return spec, nil
}

// onlyDocument maps the result of decoding past the first document.
func onlyDocument(err error) error {
	switch {
	case err == io.EOF:
		return nil
	case err == nil:
		return errMultipleDocuments
	}
	return err
}
