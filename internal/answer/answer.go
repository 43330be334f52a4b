package answer

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Answer is the structured response a question-answering system returns for
// a GAIA question. Gold responses in the fixture set share this shape.
type Answer struct {
	Answer    string   `json:"answer"`
	Reasoning *string  `json:"reasoning,omitempty"`
	Sources   []string `json:"sources,omitempty"`
}

// HasReasoning reports whether a non-empty reasoning is present.
func (a Answer) HasReasoning() bool {
	return a.Reasoning != nil && *a.Reasoning != ""
}

// ErrNotObject indicates the payload is valid JSON but not an object.
var ErrNotObject = errors.New("answer payload must be a JSON object")

// Issue captures a shape problem in an answer payload.
type Issue struct {
	Field   string
	Message string
}

func (issue Issue) String() string {
	return issue.Message
}

// ShapeError reports every shape problem found in a payload.
type ShapeError struct {
	Issues []Issue
}

func (err *ShapeError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("answer shape invalid: %s", strings.Join(parts, "; "))
}

const schemaURL = "gaia-answer.schema.json"

const schemaSource = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "GAIA answer",
  "type": "object",
  "required": ["answer"],
  "properties": {
    "answer": {"type": "string", "pattern": "\\S"},
    "reasoning": {"type": ["string", "null"]},
    "sources": {"type": "array", "items": {"type": "string"}}
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, schemaSource)

// Check validates a raw JSON payload against the answer schema: answer is
// required and must be a non-empty string, reasoning may be absent, null or a
// string, sources may be absent or an array of strings. A nil slice means the
// payload is well formed.
func Check(data []byte) ([]Issue, error) {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse answer json: %w", err)
	}
	err := schema.Validate(document)
	if err == nil {
		return nil, nil
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("validate answer: %w", err)
	}

	var issues []Issue
	for _, leaf := range leaves(validationErr) {
		if leaf.InstanceLocation == "" && strings.HasSuffix(leaf.KeywordLocation, "/type") {
			return nil, ErrNotObject
		}
		issue := issueFor(leaf.InstanceLocation)
		if !slices.Contains(issues, issue) {
			issues = append(issues, issue)
		}
	}
	slices.SortFunc(issues, func(a, b Issue) int {
		return compareFields(a.Field, b.Field)
	})
	return issues, nil
}

// Parse checks the payload and decodes it. Shape problems are returned as a
// *ShapeError.
func Parse(data []byte) (Answer, error) {
	issues, err := Check(data)
	if err != nil {
		return Answer{}, err
	}
	if len(issues) > 0 {
		return Answer{}, &ShapeError{Issues: issues}
	}
	var parsed Answer
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Answer{}, fmt.Errorf("decode answer: %w", err)
	}
	return parsed, nil
}

func leaves(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var out []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		out = append(out, leaves(cause)...)
	}
	return out
}

// issueFor maps a failing instance location to the message wording used by
// the GAIA answer harness. The only root-level failure left here is the
// missing answer property.
func issueFor(location string) Issue {
	switch location {
	case "":
		return Issue{Field: "answer", Message: "Missing required field: 'answer'"}
	case "/answer":
		return Issue{Field: "answer", Message: "Field 'answer' must be a non-empty string"}
	case "/reasoning":
		return Issue{Field: "reasoning", Message: "Field 'reasoning' must be a string or null"}
	case "/sources":
		return Issue{Field: "sources", Message: "Field 'sources' must be an array"}
	}
	if index, ok := strings.CutPrefix(location, "/sources/"); ok {
		return Issue{Field: "sources[" + index + "]", Message: "Source at index " + index + " must be a string"}
	}
	return Issue{Field: strings.TrimPrefix(location, "/"), Message: "is invalid"}
}

var fieldRank = map[string]int{"answer": 0, "reasoning": 1, "sources": 2}

func compareFields(a, b string) int {
	aName, aIndex := splitField(a)
	bName, bIndex := splitField(b)
	if aName != bName {
		return fieldRank[aName] - fieldRank[bName]
	}
	return aIndex - bIndex
}

func splitField(field string) (string, int) {
	name, rest, ok := strings.Cut(field, "[")
	if !ok {
		return field, -1
	}
	index, err := strconv.Atoi(strings.TrimSuffix(rest, "]"))
	if err != nil {
		return name, -1
	}
	return name, index
}
