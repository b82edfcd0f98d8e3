package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smart-quick-add/internal/model"
)

// File is the on-disk shape of a category file:
//
//	categories:
//	  - id: work
//	    name: Work
//	    keywords: [work, office]
type File struct {
	Categories []model.CategoryDefinition `yaml:"categories"`
}

// LoadFile reads categories from a YAML file.
func LoadFile(path string) ([]model.CategoryDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse category file %s: %w", path, err)
	}

	if err := validate(f.Categories); err != nil {
		return nil, err
	}
	return f.Categories, nil
}

// NewFromConfig loads path into a Catalog, or the Defaults when path is empty.
func NewFromConfig(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(Defaults)
	}

	defs, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(defs)
}
