// Package seed holds the demo catalog that can be written into an empty
// installation.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/humanbelnik/cinevault/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

type demoFile struct {
	Movies []demoEntry `yaml:"movies"`
}

type demoEntry struct {
	Title        string          `yaml:"title"`
	Category     string          `yaml:"category"`
	Thumbnail    string          `yaml:"thumbnail"`
	TelegramCode string          `yaml:"telegramCode"`
	Year         *int            `yaml:"year"`
	Rating       *float64        `yaml:"rating"`
	Quality      string          `yaml:"quality"`
	Description  string          `yaml:"description"`
	ContentType  string          `yaml:"contentType"`
	IsFeatured   bool            `yaml:"isFeatured"`
	IsTop10      bool            `yaml:"isTop10"`
	Priority     *int            `yaml:"priority"`
	Episodes     []model.Episode `yaml:"episodes"`
}

// Catalog serves a fixed list of demo entries.
type Catalog struct {
	raw []byte
}

// New returns the catalog baked into the binary.
func New() *Catalog {
	return &Catalog{raw: demoYAML}
}

// FromYAML is used to seed from a custom document.
func FromYAML(raw []byte) *Catalog {
	return &Catalog{raw: raw}
}

// Movies parses the document. Fields an entry omits take the upload form
// defaults. Every entry is validated, so a broken document fails as a whole.
func (c *Catalog) Movies() ([]model.Movie, error) {
	var f demoFile
	if err := yaml.Unmarshal(c.raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse demo catalog: %w", err)
	}

	movies := make([]model.Movie, 0, len(f.Movies))
	for i, e := range f.Movies {
		m, err := e.toDomain()
		if err != nil {
			return nil, fmt.Errorf("demo entry %d (%q): %w", i, e.Title, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func (e demoEntry) toDomain() (model.Movie, error) {
	m := model.DefaultMovie()
	m.Title = e.Title
	m.Thumbnail = e.Thumbnail
	m.TelegramCode = e.TelegramCode
	m.Description = e.Description
	m.IsFeatured = e.IsFeatured
	m.IsTop10 = e.IsTop10
	m.Episodes = e.Episodes

	if e.Category != "" {
		m.Category = e.Category
	}
	if e.Quality != "" {
		m.Quality = e.Quality
	}
	if e.Year != nil {
		m.Year = *e.Year
	}
	if e.Rating != nil {
		m.Rating = *e.Rating
	}
	if e.Priority != nil {
		m.Priority = *e.Priority
	}

	ct, err := model.ParseContentType(e.ContentType)
	if err != nil {
		return model.Movie{}, err
	}
	m.ContentType = ct

	if err := m.Validate(); err != nil {
		return model.Movie{}, err
	}
	return m.Normalize(), nil
}
