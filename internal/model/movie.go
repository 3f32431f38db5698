package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

const (
	DefaultCategory = "Exclusive"
	DefaultQuality  = "4K HDR"
	DefaultYear     = 2024
	DefaultRating   = 9.0
	DefaultPriority = 5

	HighestPriority = 1
	LowestPriority  = 10
)

var Categories = []string{
	"Exclusive",
	"Trending",
	"Action",
	"Comedy",
	"Drama",
	"Horror",
	"Sci-Fi",
	"Romance",
	"Thriller",
	"Documentary",
}

var Qualities = []string{
	"4K HDR",
	"4K",
	"Dolby Vision",
	"1080p",
	"720p",
	"WEB-DL",
	"HDCam",
}

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrThumbnailRequired   = errors.New("thumbnail is required")
	ErrUnknownContentType  = errors.New("unknown content type")
	ErrPriorityOutOfBounds = errors.New("priority out of bounds")
	ErrUnknownFeature      = errors.New("unknown feature flag")
)

type Movie struct {
	ID           uuid.UUID
	Title        string
	Category     string
	Thumbnail    string
	TelegramCode string
	Year         int
	Rating       float64
	Quality      string
	Description  string
	ContentType  ContentType
	IsFeatured   bool
	IsTop10      bool
	Priority     int
	Episodes     []Episode

	CreatedAt time.Time
}

// DefaultMovie is the state of an empty upload form.
func DefaultMovie() Movie {
	return Movie{
		Category:    DefaultCategory,
		Year:        DefaultYear,
		Rating:      DefaultRating,
		Quality:     DefaultQuality,
		ContentType: ContentTypeMovie,
		Priority:    DefaultPriority,
	}
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(m.Thumbnail) == "" {
		return ErrThumbnailRequired
	}
	if _, err := ParseContentType(string(m.ContentType)); err != nil {
		return err
	}
	return ValidatePriority(m.Priority)
}

// Normalize drops episodes from anything that is not a series with at
// least one episode, and keeps the series list ordered.
func (m Movie) Normalize() Movie {
	if m.ContentType == "" {
		m.ContentType = ContentTypeMovie
	}
	if m.ContentType != ContentTypeSeries || len(m.Episodes) == 0 {
		m.Episodes = nil
		return m
	}
	m.Episodes = SortEpisodes(m.Episodes)
	return m
}

func (m Movie) IsSeries() bool {
	return m.ContentType == ContentTypeSeries
}

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentTypeMovie, ContentTypeSeries:
		return ContentType(s), nil
	case "":
		return ContentTypeMovie, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContentType, s)
}

func ValidatePriority(p int) error {
	if p < HighestPriority || p > LowestPriority {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPriorityOutOfBounds, p, HighestPriority, LowestPriority)
	}
	return nil
}

type FeatureFlag string

const (
	FeatureFeatured FeatureFlag = "featured"
	FeatureTop10    FeatureFlag = "top10"
)

func ParseFeatureFlag(s string) (FeatureFlag, error) {
	switch FeatureFlag(s) {
	case FeatureFeatured, FeatureTop10:
		return FeatureFlag(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeature, s)
}
