// Package categories resolves category hints produced by the extraction
// pipeline to concrete categories, creating them on demand. The pipeline never
// leaves a transaction uncategorized.
package categories

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// Store is the minimal persistence surface the resolver needs. Implementations
// must be safe for concurrent use.
type Store interface {
	List() ([]models.Category, error)
	Create(category models.Category) error
}

// MemoryStore keeps categories in memory. Used in tests and as the default
// when no categories file is configured.
type MemoryStore struct {
	mu         sync.Mutex
	categories []models.Category
}

// NewMemoryStore creates a MemoryStore seeded with the given categories.
func NewMemoryStore(seed ...models.Category) *MemoryStore {
	return &MemoryStore{categories: append([]models.Category{}, seed...)}
}

// List returns a copy of the stored categories.
func (s *MemoryStore) List() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// Create appends a category.
func (s *MemoryStore) Create(category models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, category)
	return nil
}

// categoriesFile is the on-disk YAML shape: a top-level "categories" key
// holding the list.
type categoriesFile struct {
	Categories []models.Category `yaml:"categories"`
}

// YAMLStore persists categories to a single YAML file. Every Create rewrites
// the whole file; category counts are small enough that this is fine.
type YAMLStore struct {
	mu   sync.Mutex
	path string
}

// NewYAMLStore creates a YAMLStore backed by the given file path. The file is
// created on first Create; a missing file reads as empty.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// List loads all categories from the file.
func (s *YAMLStore) List() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Create appends a category and rewrites the file.
func (s *YAMLStore) Create(category models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return err
	}
	existing = append(existing, category)

	data, err := yaml.Marshal(categoriesFile{Categories: existing})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating categories directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	return nil
}

func (s *YAMLStore) load() ([]models.Category, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Category{}, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var file categoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return file.Categories, nil
}
