// Package validators implements the declarative field-validation chain that
// runs before any mutation. A chain is an ordered list of per-field rules;
// every rule is evaluated (no short-circuit) and each failing rule
// contributes its message to the result in declaration order, so error
// bodies are deterministic and testable.
package validators

import "strings"

// Rule is a single per-field validation rule: a predicate paired with the
// human-readable message reported when the predicate fails.
type Rule struct {
	// Field names the payload field this rule applies to.
	Field string

	// Message is the message contributed to the result when Check fails.
	Message string

	// Check reports whether the field value satisfies the rule.
	Check func(value string) bool

	// IsFormat marks shape rules (e.g. email syntax) that are only
	// evaluated when no presence rule for the same field has already
	// failed. This guarantees an absent field produces exactly one
	// message, never a presence message plus a format message.
	IsFormat bool
}

// Chain is an ordered list of rules evaluated against a payload.
type Chain struct {
	Rules []Rule
}

// Validate evaluates every rule of the chain against the given field values
// and returns nil when all rules pass, or a [*ValidationError] carrying the
// ordered list of messages of all failing rules.
//
// Fields absent from the map are treated as blank values, so presence rules
// cover "missing", "null" and "whitespace-only" uniformly.
func (c Chain) Validate(fields map[string]string) error {
	var messages []string
	failedPresence := make(map[string]bool)

	for _, rule := range c.Rules {
		if rule.IsFormat && failedPresence[rule.Field] {
			continue
		}

		if rule.Check(fields[rule.Field]) {
			continue
		}

		messages = append(messages, rule.Message)
		if !rule.IsFormat {
			failedPresence[rule.Field] = true
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

// NotBlank reports whether value contains at least one non-whitespace
// character. It is the predicate behind every presence rule.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}
