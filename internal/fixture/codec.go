package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an interchange encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml (case-insensitive).
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json|yaml)", value)
	}
}

// FormatFromPath picks YAML for .yml/.yaml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads, parses, and validates a fixture file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	set, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return set, nil
}

// Decode parses an interchange document and builds a validated Set.
func Decode(data []byte, format Format) (*Set, error) {
	var (
		cases []TestCase
		err   error
	)
	switch format {
	case FormatJSON:
		cases, err = parseJSONCases(data)
	case FormatYAML:
		cases, err = parseYAMLCases(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return New(cases)
}

// Encode writes the set in the requested interchange format.
func Encode(w io.Writer, set *Set, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(set.cases, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(set.cases); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// MarshalJSON encodes the set as the JSON interchange array.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.cases)
}

func parseJSONCases(data []byte) ([]TestCase, error) {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := validateDocument(document); err != nil {
		return nil, err
	}

	var cases []TestCase
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cases); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return cases, nil
}

func parseYAMLCases(data []byte) ([]TestCase, error) {
	var cases []TestCase
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cases); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cases, nil
}
