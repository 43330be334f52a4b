package fixture

import "gaia/internal/answer"

// TestCase is one evaluation fixture: a question posed to a system under test
// and the gold response it is compared against.
type TestCase struct {
	ID               int              `json:"id" yaml:"id" jsonschema:"minimum=1"`
	Question         string           `json:"question" yaml:"question" jsonschema:"minLength=1"`
	Description      string           `json:"description" yaml:"description" jsonschema:"minLength=1"`
	ExpectedResponse ExpectedResponse `json:"expectedResponse" yaml:"expectedResponse"`
}

// ExpectedResponse is the gold answer for a TestCase.
type ExpectedResponse struct {
	Answer    string   `json:"answer" yaml:"answer" jsonschema:"minLength=1"`
	Reasoning string   `json:"reasoning" yaml:"reasoning" jsonschema:"minLength=1"`
	Sources   []string `json:"sources" yaml:"sources" jsonschema:"minItems=1"`
}

// AsAnswer converts the gold response into the answer contract shared with
// system-under-test payloads.
func (r ExpectedResponse) AsAnswer() answer.Answer {
	reasoning := r.Reasoning
	return answer.Answer{
		Answer:    r.Answer,
		Reasoning: &reasoning,
		Sources:   append([]string(nil), r.Sources...),
	}
}

// clone returns a deep copy so callers never share the Sources backing array.
func (tc TestCase) clone() TestCase {
	tc.ExpectedResponse.Sources = append([]string(nil), tc.ExpectedResponse.Sources...)
	return tc
}
