package http_movie

import (
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinevault/internal/model"
)

// MovieRequestDTO is the upload form. Omitted numeric fields take the
// form defaults.
type MovieRequestDTO struct {
	Title        string          `json:"title" example:"Jawan"`
	Category     string          `json:"category" example:"Action"`
	Thumbnail    string          `json:"thumbnail" example:"https://example.com/thumb.jpg"`
	TelegramCode string          `json:"telegramCode" example:"jawan_2023"`
	Year         *int            `json:"year" example:"2023"`
	Rating       *float64        `json:"rating" example:"8.4"`
	Quality      string          `json:"quality" example:"4K HDR"`
	Description  string          `json:"description" example:"An action thriller"`
	ContentType  string          `json:"contentType" example:"movie" enums:"movie,series"`
	IsFeatured   bool            `json:"isFeatured"`
	IsTop10      bool            `json:"isTop10"`
	Priority     *int            `json:"priority" example:"5"`
	Episodes     []model.Episode `json:"episodes"`
}

func (r *MovieRequestDTO) ConvertToMovie(id uuid.UUID) model.Movie {
	m := model.DefaultMovie()
	m.ID = id
	m.Title = r.Title
	m.Thumbnail = r.Thumbnail
	m.TelegramCode = r.TelegramCode
	m.Description = r.Description
	m.ContentType = model.ContentType(r.ContentType)
	m.IsFeatured = r.IsFeatured
	m.IsTop10 = r.IsTop10
	m.Episodes = r.Episodes

	if r.Category != "" {
		m.Category = r.Category
	}
	if r.Quality != "" {
		m.Quality = r.Quality
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	if r.Priority != nil {
		m.Priority = *r.Priority
	}
	return m
}

type MovieResponseDTO struct {
	ID           uuid.UUID       `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title        string          `json:"title" example:"Jawan"`
	Category     string          `json:"category" example:"Action"`
	Thumbnail    string          `json:"thumbnail" example:"https://example.com/thumb.jpg"`
	TelegramCode string          `json:"telegramCode" example:"jawan_2023"`
	Year         int             `json:"year" example:"2023"`
	Rating       float64         `json:"rating" example:"8.4"`
	Quality      string          `json:"quality" example:"4K HDR"`
	Description  string          `json:"description"`
	ContentType  string          `json:"contentType" example:"movie"`
	IsFeatured   bool            `json:"isFeatured"`
	IsTop10      bool            `json:"isTop10"`
	Priority     int             `json:"priority" example:"5"`
	Episodes     []model.Episode `json:"episodes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type MoviesListResponseDTO struct {
	Movies []MovieResponseDTO `json:"movies"`
	Total  int                `json:"total"`
}

func ConvertFromMovie(m model.Movie) MovieResponseDTO {
	return MovieResponseDTO{
		ID:           m.ID,
		Title:        m.Title,
		Category:     m.Category,
		Thumbnail:    m.Thumbnail,
		TelegramCode: m.TelegramCode,
		Year:         m.Year,
		Rating:       m.Rating,
		Quality:      m.Quality,
		Description:  m.Description,
		ContentType:  string(m.ContentType),
		IsFeatured:   m.IsFeatured,
		IsTop10:      m.IsTop10,
		Priority:     m.Priority,
		Episodes:     m.Episodes,
		CreatedAt:    m.CreatedAt,
	}
}

func ConvertFromMovieList(mm []*model.Movie) []MovieResponseDTO {
	movies := make([]MovieResponseDTO, len(mm))
	for i, m := range mm {
		movies[i] = ConvertFromMovie(*m)
	}
	return movies
}

type PriorityRequestDTO struct {
	Priority int `json:"priority" binding:"required" example:"1"`
}

type FeatureResponseDTO struct {
	Flag  string `json:"flag" example:"featured"`
	Value bool   `json:"value"`
}

// EpisodeRequestDTO is the "new episode" row. Season is free text, a
// non-numeric value means season 1.
type EpisodeRequestDTO struct {
	Season       string `json:"season" example:"1"`
	Title        string `json:"title" example:"Pilot"`
	Duration     string `json:"duration" example:"45m"`
	TelegramCode string `json:"telegramCode" example:"show_s1e1"`
}

func (r EpisodeRequestDTO) ConvertToDraft() model.EpisodeDraft {
	return model.EpisodeDraft{
		Season:       r.Season,
		Title:        r.Title,
		Duration:     r.Duration,
		TelegramCode: r.TelegramCode,
	}
}

type EpisodesResponseDTO struct {
	Episodes []model.Episode `json:"episodes"`
}

type SeedResponseDTO struct {
	Count int `json:"count" example:"6"`
}

// ThumbnailResponseDTO carries a stable link to the stored image. The
// link never expires, storage signing happens when it is opened.
type ThumbnailResponseDTO struct {
	URL string `json:"url" example:"https://admin.example.com/api/v1/thumbnails/thumbnails/2024-05-01/poster.jpg"`
	Key string `json:"key" example:"thumbnails/2024-05-01/poster.jpg"`
}

type PriorityRangeDTO struct {
	Highest int `json:"highest" example:"1"`
	Lowest  int `json:"lowest" example:"10"`
	Default int `json:"default" example:"5"`
}

// OptionsResponseDTO feeds the upload form selects.
type OptionsResponseDTO struct {
	Categories   []string         `json:"categories"`
	Qualities    []string         `json:"qualities"`
	ContentTypes []string         `json:"contentTypes"`
	FeatureFlags []string         `json:"featureFlags"`
	Priority     PriorityRangeDTO `json:"priority"`
	Defaults     MovieRequestDTO  `json:"defaults"`
}

func NewOptionsResponse() OptionsResponseDTO {
	d := model.DefaultMovie()
	return OptionsResponseDTO{
		Categories:   append([]string(nil), model.Categories...),
		Qualities:    append([]string(nil), model.Qualities...),
		ContentTypes: []string{string(model.ContentTypeMovie), string(model.ContentTypeSeries)},
		FeatureFlags: []string{string(model.FeatureFeatured), string(model.FeatureTop10)},
		Priority: PriorityRangeDTO{
			Highest: model.HighestPriority,
			Lowest:  model.LowestPriority,
			Default: model.DefaultPriority,
		},
		Defaults: MovieRequestDTO{
			Category:    d.Category,
			Year:        &d.Year,
			Rating:      &d.Rating,
			Quality:     d.Quality,
			ContentType: string(d.ContentType),
			Priority:    &d.Priority,
		},
	}
}
