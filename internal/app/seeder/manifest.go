package seeder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// Entry describes one article to seed. File is resolved relative to the
// directory containing the manifest.
type Entry struct {
	File   string   `yaml:"file"`
	Title  string   `yaml:"title"`
	Author string   `yaml:"author"`
	Lang   string   `yaml:"lang"`
	Tags   []string `yaml:"tags"`
}

// Manifest lists the articles that make up the shared library.
type Manifest struct {
	Articles []Entry `yaml:"articles"`

	dir string
}

// Dir returns the directory containing the manifest file.
func (m *Manifest) Dir() string { return m.dir }

// Languages returns the distinct languages the manifest uses, in first-use
// order. Meant for warming segmentation models before the run.
func (m *Manifest) Languages() []domain.Language {
	seen := make(map[domain.Language]bool, 3)
	var langs []domain.Language
	for _, e := range m.Articles {
		lang := domain.Language(e.Lang)
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	return langs
}

// ParseManifest reads a manifest file and checks it structurally. Per-entry
// language and length limits are enforced later, when the entry is built
// into a create input.
func ParseManifest(path string) (*Manifest, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	var m Manifest
	if err := cleanenv.ReadConfig(path, &m); err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	if len(m.Articles) == 0 {
		return nil, fmt.Errorf("manifest: %s lists no articles", path)
	}
	for i, e := range m.Articles {
		if e.File == "" {
			return nil, fmt.Errorf("manifest: entry %d: file is required", i)
		}
		if e.Title == "" {
			return nil, fmt.Errorf("manifest: entry %d (%s): title is required", i, e.File)
		}
	}

	m.dir = filepath.Dir(path)
	return &m, nil
}
