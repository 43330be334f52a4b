package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more config issues.
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
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
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

// Validate checks a normalized config.
func Validate(cfg Config) error {
	collector := &issueCollector{}
	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		collector.add("log.level", fmt.Sprintf("unsupported level %q (expected debug|info|warn|error)", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "", "json", "console":
	default:
		collector.add("log.format", fmt.Sprintf("unsupported format %q (expected json|console)", cfg.Log.Format))
	}
	return collector.result()
}
