package screening

import "fmt"

// InvalidRuleConfigurationError reports a rule set that is structurally
// well-formed JSON but semantically unusable: negative weights, thresholds
// out of range, unknown enum values, or contradictory counts.
type InvalidRuleConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidRuleConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid rule configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid rule configuration: %s: %s", e.Field, e.Reason)
}

func invalidRule(field, format string, args ...any) *InvalidRuleConfigurationError {
	return &InvalidRuleConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
