package services

import "strings"

// Category pairs a lowercase trigger keyword with the canonical product
// label used for store lookups.
type Category struct {
	Keyword string `yaml:"keyword"`
	Label   string `yaml:"label"`
}

// DefaultVocabulary is the built-in product-category table. Order matters:
// when several categories match, consumers that need a single category take
// the first in declaration order.
func DefaultVocabulary() []Category {
	return []Category{
		{Keyword: "earbuds", Label: "Earbuds"},
		{Keyword: "headphones", Label: "Headphones"},
		{Keyword: "case", Label: "Case"},
		{Keyword: "cable", Label: "Cable"},
		{Keyword: "speaker", Label: "Speaker"},
	}
}

// ProductMatcher detects product-category keywords in free text by
// case-insensitive substring containment against a fixed vocabulary.
//
// Example usage:
//
//	matcher := NewProductMatcher(DefaultVocabulary())
//	matches := matcher.Match("my earbuds and the charging cable")
//	// matches: [{earbuds Earbuds} {cable Cable}]
type ProductMatcher struct {
	vocabulary []Category
}

// NewProductMatcher creates a matcher over the given vocabulary.
// Passing nil or an empty slice falls back to DefaultVocabulary.
func NewProductMatcher(vocabulary []Category) ProductMatcher {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary()
	}
	return ProductMatcher{vocabulary: vocabulary}
}

// Match returns every category whose keyword occurs in the text, in
// vocabulary declaration order. An empty result means no category matched.
func (m ProductMatcher) Match(text string) []Category {
	lowered := strings.ToLower(text)

	var matches []Category
	for _, category := range m.vocabulary {
		if strings.Contains(lowered, category.Keyword) {
			matches = append(matches, category)
		}
	}
	return matches
}

// Keywords returns the trigger keywords in declaration order.
// The intent classifier folds these into its keyword set.
func (m ProductMatcher) Keywords() []string {
	keywords := make([]string, len(m.vocabulary))
	for i, category := range m.vocabulary {
		keywords[i] = category.Keyword
	}
	return keywords
}
