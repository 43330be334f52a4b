package fixture

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Issue captures a validation problem in a fixture set.
type Issue struct {
	Field   string
	Message string
}

// String renders the issue as "field: message".
func (issue Issue) String() string {
	if issue.Field == "" {
		return issue.Message
	}
	return fmt.Sprintf("%s: %s", issue.Field, issue.Message)
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("fixture validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks every case and returns a *ValidationError listing all
// problems found, or nil.
func Validate(cases []TestCase) error {
	collector := &issueCollector{}
	if len(cases) == 0 {
		collector.add("cases", "must include at least one entry")
	}

	seenIDs := map[int]int{}
	for i, tc := range cases {
		prefix := fmt.Sprintf("cases[%d]", i)
		if tc.ID <= 0 {
			collector.add(prefix+".id", fmt.Sprintf("must be positive, got %d", tc.ID))
		} else if first, exists := seenIDs[tc.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %d (first used by cases[%d])", tc.ID, first))
		} else {
			seenIDs[tc.ID] = i
		}

		requireText(collector, prefix+".question", tc.Question)
		requireText(collector, prefix+".description", tc.Description)

		response := tc.ExpectedResponse
		requireText(collector, prefix+".expectedResponse.answer", response.Answer)
		requireText(collector, prefix+".expectedResponse.reasoning", response.Reasoning)
		if len(response.Sources) == 0 {
			collector.add(prefix+".expectedResponse.sources", "must include at least one entry")
		}
		for sourceIndex, source := range response.Sources {
			field := fmt.Sprintf("%s.expectedResponse.sources[%d]", prefix, sourceIndex)
			if err := checkSourceURL(source); err != nil {
				collector.add(field, err.Error())
			}
		}
	}
	return collector.result()
}

// Lint returns non-fatal findings. Duplicate sources within one case are
// disallowed by convention but do not block construction.
func Lint(cases []TestCase) []Issue {
	var issues []Issue
	for i, tc := range cases {
		seen := map[string]int{}
		for sourceIndex, source := range tc.ExpectedResponse.Sources {
			key := strings.TrimSpace(source)
			if first, ok := seen[key]; ok {
				issues = append(issues, Issue{
					Field:   fmt.Sprintf("cases[%d].expectedResponse.sources[%d]", i, sourceIndex),
					Message: fmt.Sprintf("duplicates sources[%d] %q", first, source),
				})
				continue
			}
			seen[key] = sourceIndex
		}
	}
	return issues
}

func requireText(collector *issueCollector, field, value string) {
	if strings.TrimSpace(value) == "" {
		collector.add(field, "is required")
	}
}

func checkSourceURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("is required")
	}
	if raw != strings.TrimSpace(raw) {
		return errors.New("has surrounding whitespace")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %v", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("must be an absolute url, got %q", raw)
	}
	return nil
}
