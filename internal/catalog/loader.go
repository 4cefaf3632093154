package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/genrerec/internal/domain"
)

// ErrUnsupportedFormat indicates a catalog file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// File is the on-disk catalog layout (YAML or JSON).
type File struct {
	Name  string        `yaml:"name"  json:"name"`
	Items []domain.Item `yaml:"items" json:"items"`
}

// LoadFile reads a catalog from a .yaml, .yml or .json file. The catalog
// name defaults to the file base name without extension.
func LoadFile(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var f File
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse json %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return domain.NewCatalog(f.Name, f.Items), nil
}

// LoadDir loads every catalog file in dir, in file name order. Files with
// other extensions are ignored.
func LoadDir(dir string) ([]*domain.Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	catalogs := make([]*domain.Catalog, 0, len(names))
	for _, name := range names {
		c, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}

	return catalogs, nil
}
