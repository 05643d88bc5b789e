package services

import (
	"regexp"
	"strings"
)

// Intent is the routing decision for one customer message.
type Intent string

const (
	// IntentOrderRelated routes the message to the logistics resolver.
	IntentOrderRelated Intent = "order_related"

	// IntentGeneral routes the message to the generative responder.
	IntentGeneral Intent = "general"
)

// orderKeywords is the fixed keyword table that marks a message as
// order-related. Product-category keywords are appended at construction.
var orderKeywords = []string{
	"order", "delivery", "shipping", "track", "status",
	"where", "when", "delivered", "shipped", "transit",
	"package", "parcel", "tracking",
}

// digitSequence matches any digit run, optionally preceded by "#".
var digitSequence = regexp.MustCompile(`#?\d+`)

// IntentClassifier decides whether a message is order-related or general.
// It is a pure, total function over its keyword table: a message containing
// any keyword, or any digit sequence, classifies as order-related;
// everything else is general. There is no unclassifiable case.
type IntentClassifier struct {
	keywords []string
}

// NewIntentClassifier creates a classifier whose keyword set is the fixed
// order-keyword table plus the matcher's product-category keywords.
func NewIntentClassifier(matcher ProductMatcher) IntentClassifier {
	keywords := make([]string, 0, len(orderKeywords))
	keywords = append(keywords, orderKeywords...)
	keywords = append(keywords, matcher.Keywords()...)

	return IntentClassifier{keywords: keywords}
}

// Classify returns the routing intent for the text.
func (c IntentClassifier) Classify(text string) Intent {
	lowered := strings.ToLower(text)

	for _, keyword := range c.keywords {
		if strings.Contains(lowered, keyword) {
			return IntentOrderRelated
		}
	}

	if digitSequence.MatchString(lowered) {
		return IntentOrderRelated
	}

	return IntentGeneral
}
