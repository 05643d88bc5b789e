package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"support/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMatcher_Match(t *testing.T) {
	matcher := services.NewProductMatcher(nil)

	t.Run("single_match", func(t *testing.T) {
		matches := matcher.Match("When will my earbuds arrive?")
		require.Len(t, matches, 1)
		assert.Equal(t, "Earbuds", matches[0].Label)
	})

	t.Run("multiple_matches_in_declaration_order", func(t *testing.T) {
		matches := matcher.Match("the speaker cable and a case")
		require.Len(t, matches, 3)
		assert.Equal(t, "Case", matches[0].Label)
		assert.Equal(t, "Cable", matches[1].Label)
		assert.Equal(t, "Speaker", matches[2].Label)
	})

	t.Run("case_insensitive", func(t *testing.T) {
		matches := matcher.Match("MY HEADPHONES")
		require.Len(t, matches, 1)
		assert.Equal(t, "Headphones", matches[0].Label)
	})

	t.Run("no_match", func(t *testing.T) {
		assert.Empty(t, matcher.Match("what's your return policy?"))
	})

	t.Run("substring_containment", func(t *testing.T) {
		// "suitcase" contains "case"; containment matching is deliberate.
		matches := matcher.Match("my suitcase")
		require.Len(t, matches, 1)
		assert.Equal(t, "Case", matches[0].Label)
	})
}

func TestProductMatcher_Keywords(t *testing.T) {
	matcher := services.NewProductMatcher(nil)
	assert.Equal(t,
		[]string{"earbuds", "headphones", "case", "cable", "speaker"},
		matcher.Keywords())
}

func TestLoadVocabulary(t *testing.T) {
	t.Run("valid_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vocabulary.yaml")
		content := "categories:\n  - keyword: monitor\n    label: Monitor\n  - keyword: webcam\n    label: Webcam\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		vocabulary, err := services.LoadVocabulary(path)
		require.NoError(t, err)
		require.Len(t, vocabulary, 2)

		matcher := services.NewProductMatcher(vocabulary)
		matches := matcher.Match("my monitor flickers")
		require.Len(t, matches, 1)
		assert.Equal(t, "Monitor", matches[0].Label)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := services.LoadVocabulary(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("empty_categories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vocabulary.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories: []\n"), 0o600))

		_, err := services.LoadVocabulary(path)
		require.Error(t, err)
	})

	t.Run("entry_missing_label", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vocabulary.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories:\n  - keyword: monitor\n"), 0o600))

		_, err := services.LoadVocabulary(path)
		require.Error(t, err)
	})
}
