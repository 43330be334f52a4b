package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "gaia-fixtures.schema.json"

var (
	schemaOnce     sync.Once
	schemaJSON     []byte
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// JSONSchema returns the JSON Schema for the interchange document: an array
// of TestCase objects.
func JSONSchema() ([]byte, error) {
	loadSchema()
	return schemaJSON, schemaErr
}

func loadSchema() {
	schemaOnce.Do(func() {
		reflector := &invopop.Reflector{DoNotReference: true}
		item := reflector.Reflect(&TestCase{})
		item.Version = ""
		item.ID = ""
		document := &invopop.Schema{
			Version:     invopop.Version,
			Title:       "GAIA fixture set",
			Description: "Ordered list of question/answer evaluation fixtures.",
			Type:        "array",
			Items:       item,
		}
		schemaJSON, schemaErr = json.MarshalIndent(document, "", "  ")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("encode schema: %w", schemaErr)
			return
		}
		schemaCompiled, schemaErr = jsonschema.CompileString(schemaURL, string(schemaJSON))
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
}

// validateDocument checks a decoded JSON document against the schema and
// converts violations into a *ValidationError.
func validateDocument(document any) error {
	loadSchema()
	if schemaErr != nil {
		return schemaErr
	}
	err := schemaCompiled.Validate(document)
	if err == nil {
		return nil
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("validate schema: %w", err)
	}
	collector := &issueCollector{}
	collectSchemaIssues(collector, validationErr)
	return collector.result()
}

func collectSchemaIssues(collector *issueCollector, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		collector.add(instancePath(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaIssues(collector, cause)
	}
}

// instancePath turns a JSON pointer like /2/expectedResponse/sources/0 into
// cases[2].expectedResponse.sources[0].
func instancePath(pointer string) string {
	var b strings.Builder
	b.WriteString("cases")
	trimmed := strings.TrimPrefix(pointer, "/")
	if trimmed == "" {
		return b.String()
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if isIndex(segment) {
			fmt.Fprintf(&b, "[%s]", segment)
			continue
		}
		b.WriteString(".")
		b.WriteString(segment)
	}
	return b.String()
}

func isIndex(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
