package services

import (
	"regexp"
	"strconv"
	"strings"

	"support/internal/core/domain/model/kernel"
)

// referencePatterns is the ordered pattern table for order references.
// Patterns are tried in declaration order and the first numeric capture
// wins: the contextual forms (containing "order" or "id") come first so an
// incidental digit elsewhere in the sentence is not misattributed, and a
// bare "#digits" is the most permissive explicit form.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`order\s*#?(\d+)`),
	regexp.MustCompile(`#(\d+)`),
	regexp.MustCompile(`order\s+(\d+)`),
	regexp.MustCompile(`id\s*#?(\d+)`),
}

// ReferenceExtractor pulls a numeric order reference out of free text via
// ordered pattern matching. It is a pure, stateless domain service.
//
// Example usage:
//
//	extractor := NewReferenceExtractor()
//	id, ok := extractor.Extract("Where is my order #123?")
//	if ok {
//	    fmt.Println(id.Value()) // 123
//	}
type ReferenceExtractor struct{}

// NewReferenceExtractor creates a new ReferenceExtractor instance.
func NewReferenceExtractor() ReferenceExtractor {
	return ReferenceExtractor{}
}

// Extract returns the first order reference found in the text, evaluating
// the pattern table in priority order, case-insensitively. The second
// return value is false when no pattern captures a usable reference; there
// is no sentinel value.
func (ReferenceExtractor) Extract(text string) (kernel.OrderID, bool) {
	lowered := strings.ToLower(text)

	for _, pattern := range referencePatterns {
		match := pattern.FindStringSubmatch(lowered)
		if match == nil {
			continue
		}

		value, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}

		id, err := kernel.NewOrderID(value)
		if err != nil {
			// Captured digits that are not a valid reference (e.g. "#0");
			// keep trying the remaining patterns.
			continue
		}
		return id, true
	}

	return kernel.OrderID{}, false
}
