package infra_postgres_movie

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinevault/internal/model"
)

// Episodes is stored as a JSONB array. An empty list is stored as NULL.
type Episodes []model.Episode

func (e Episodes) Value() (driver.Value, error) {
	if len(e) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]model.Episode(e))
	if err != nil {
		return nil, fmt.Errorf("failed to encode episodes: %w", err)
	}
	return b, nil
}

func (e *Episodes) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*e = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported episodes type %T", src)
	}

	var out []model.Episode
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode episodes: %w", err)
	}
	*e = out
	return nil
}

type MovieDB struct {
	ID           uuid.UUID `db:"id"`
	Title        string    `db:"title"`
	Category     string    `db:"category"`
	Thumbnail    string    `db:"thumbnail"`
	TelegramCode string    `db:"telegram_code"`
	Year         int       `db:"year"`
	Rating       float64   `db:"rating"`
	Quality      string    `db:"quality"`
	Description  string    `db:"description"`
	ContentType  string    `db:"content_type"`
	IsFeatured   bool      `db:"is_featured"`
	IsTop10      bool      `db:"is_top10"`
	Priority     int       `db:"priority"`
	Episodes     Episodes  `db:"episodes"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m *MovieDB) ToDomain() model.Movie {
	var episodes []model.Episode
	if len(m.Episodes) > 0 {
		episodes = []model.Episode(m.Episodes)
	}
	return model.Movie{
		ID:           m.ID,
		Title:        m.Title,
		Category:     m.Category,
		Thumbnail:    m.Thumbnail,
		TelegramCode: m.TelegramCode,
		Year:         m.Year,
		Rating:       m.Rating,
		Quality:      m.Quality,
		Description:  m.Description,
		ContentType:  model.ContentType(m.ContentType),
		IsFeatured:   m.IsFeatured,
		IsTop10:      m.IsTop10,
		Priority:     m.Priority,
		Episodes:     episodes,
		CreatedAt:    m.CreatedAt,
	}
}

func FromDomain(m model.Movie) MovieDB {
	return MovieDB{
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
		Episodes:     Episodes(m.Episodes),
		CreatedAt:    m.CreatedAt,
	}
}
