package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// vocabularyFile is the on-disk shape of a product vocabulary override.
type vocabularyFile struct {
	Categories []Category `yaml:"categories"`
}

// LoadVocabulary reads a YAML product-category table from path. Entries are
// matched in file order, so operators control category priority by
// ordering. Returns an error when the file is unreadable, malformed, or
// contains an entry without a keyword or label.
//
// File format:
//
//	categories:
//	  - keyword: earbuds
//	    label: Earbuds
//	  - keyword: cable
//	    label: Cable
func LoadVocabulary(path string) ([]Category, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file: %w", err)
	}

	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("vocabulary file %s declares no categories", path)
	}
	for i, category := range file.Categories {
		if category.Keyword == "" || category.Label == "" {
			return nil, fmt.Errorf("vocabulary entry %d is missing a keyword or label", i)
		}
	}

	return file.Categories, nil
}
