package migrations

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const schemaFile = "mongo/schema.yaml"

// Index sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Schema is the fixed set of collections and indexes for a database.
type Schema struct {
	Database    string             `yaml:"database"`
	Collections []CollectionSchema `yaml:"collections"`
}

// CollectionSchema lists the indexes declared on one collection.
type CollectionSchema struct {
	Name    string      `yaml:"name"`
	Indexes []IndexSpec `yaml:"indexes"`
}

// IndexSpec is a single-field secondary index.
type IndexSpec struct {
	Field  string `yaml:"field"`
	Order  string `yaml:"order"`
	Unique bool   `yaml:"unique"`
	Sparse bool   `yaml:"sparse"`
}

// Direction returns the key value for the index: 1 or -1.
func (s IndexSpec) Direction() int {
	if s.Order == OrderDesc {
		return -1
	}
	return 1
}

// Name returns the index name the server assigns by default.
func (s IndexSpec) Name() string {
	return fmt.Sprintf("%s_%d", s.Field, s.Direction())
}

// CollectionNames returns the collection names in declaration order.
func (s *Schema) CollectionNames() []string {
	names := make([]string, 0, len(s.Collections))
	for _, c := range s.Collections {
		names = append(names, c.Name)
	}
	return names
}

// IndexCount returns the total number of declared indexes.
func (s *Schema) IndexCount() int {
	n := 0
	for _, c := range s.Collections {
		n += len(c.Indexes)
	}
	return n
}

// LoadSchema parses and validates the embedded schema definition.
func LoadSchema() (*Schema, error) {
	data, err := fs.ReadFile(MongoFS, schemaFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}
	return ParseSchema(data)
}

// ParseSchema parses a YAML schema document.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("validate schema: %w", err)
	}
	return &s, nil
}

func (s *Schema) validate() error {
	if s.Database == "" {
		return fmt.Errorf("database name is empty")
	}
	if len(s.Collections) == 0 {
		return fmt.Errorf("no collections declared")
	}

	seen := make(map[string]bool, len(s.Collections))
	for _, c := range s.Collections {
		if c.Name == "" {
			return fmt.Errorf("collection with empty name")
		}
		if seen[c.Name] {
			return fmt.Errorf("collection %s declared twice", c.Name)
		}
		seen[c.Name] = true

		fields := make(map[string]bool, len(c.Indexes))
		for _, idx := range c.Indexes {
			if idx.Field == "" {
				return fmt.Errorf("collection %s: index with empty field", c.Name)
			}
			if idx.Order != OrderAsc && idx.Order != OrderDesc {
				return fmt.Errorf("collection %s: index %s: invalid order %q", c.Name, idx.Field, idx.Order)
			}
			if idx.Sparse && !idx.Unique {
				return fmt.Errorf("collection %s: index %s: sparse without unique", c.Name, idx.Field)
			}
			if fields[idx.Field] {
				return fmt.Errorf("collection %s: field %s indexed twice", c.Name, idx.Field)
			}
			fields[idx.Field] = true
		}
	}
	return nil
}
