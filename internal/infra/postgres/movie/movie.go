package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinevault/internal/model"
	usecase_movie "github.com/humanbelnik/cinevault/internal/usecase/movie"
	"github.com/jmoiron/sqlx"
)

const movieColumns = `id, title, category, thumbnail, telegram_code, year, rating, quality,
	description, content_type, is_featured, is_top10, priority, episodes, created_at`

const insertQuery = `
	INSERT INTO movies (id, title, category, thumbnail, telegram_code, year, rating, quality,
		description, content_type, is_featured, is_top10, priority, episodes, created_at)
	VALUES (:id, :title, :category, :thumbnail, :telegram_code, :year, :rating, :quality,
		:description, :content_type, :is_featured, :is_top10, :priority, :episodes, :created_at)
`

var toggleQueries = map[model.FeatureFlag]string{
	model.FeatureFeatured: `UPDATE movies SET is_featured = NOT is_featured WHERE id = $1 RETURNING is_featured`,
	model.FeatureTop10:    `UPDATE movies SET is_top10 = NOT is_top10 WHERE id = $1 RETURNING is_top10`,
}

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, m model.Movie) error {
	_, err := r.db.NamedExecContext(ctx, insertQuery, FromDomain(m))
	if err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}
	return nil
}

// StoreBatch inserts all entries in one transaction.
func (r *Repository) StoreBatch(ctx context.Context, mm []model.Movie) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range mm {
		if _, err := tx.NamedExecContext(ctx, insertQuery, FromDomain(m)); err != nil {
			return fmt.Errorf("failed to store movie %q: %w", m.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) ([]*model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY created_at DESC`

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	movies := make([]*model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		domainMovie := movieDB.ToDomain()
		movies[i] = &domainMovie
	}
	return movies, nil
}

func (r *Repository) LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movieDB MovieDB
	if err := r.db.GetContext(ctx, &movieDB, query, ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, usecase_movie.ErrResourceNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}
	return movieDB.ToDomain(), nil
}

func (r *Repository) Update(ctx context.Context, m model.Movie) error {
	query := `
		UPDATE movies
		SET title = :title, category = :category, thumbnail = :thumbnail,
			telegram_code = :telegram_code, year = :year, rating = :rating,
			quality = :quality, description = :description, content_type = :content_type,
			is_featured = :is_featured, is_top10 = :is_top10, priority = :priority,
			episodes = :episodes, created_at = :created_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, FromDomain(m))
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	return expectAffected(result)
}

func (r *Repository) UpdatePriority(ctx context.Context, ID uuid.UUID, priority int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE movies SET priority = $2 WHERE id = $1`, ID, priority)
	if err != nil {
		return fmt.Errorf("failed to update priority: %w", err)
	}
	return expectAffected(result)
}

func (r *Repository) UpdateEpisodes(ctx context.Context, ID uuid.UUID, episodes []model.Episode) error {
	result, err := r.db.ExecContext(ctx, `UPDATE movies SET episodes = $2 WHERE id = $1`, ID, Episodes(episodes))
	if err != nil {
		return fmt.Errorf("failed to update episodes: %w", err)
	}
	return expectAffected(result)
}

// ToggleFeature flips the flag in place and returns the stored value.
func (r *Repository) ToggleFeature(ctx context.Context, ID uuid.UUID, flag model.FeatureFlag) (bool, error) {
	query, ok := toggleQueries[flag]
	if !ok {
		return false, fmt.Errorf("%w: %s", model.ErrUnknownFeature, flag)
	}

	var value bool
	if err := r.db.GetContext(ctx, &value, query, ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, usecase_movie.ErrResourceNotFound
		}
		return false, fmt.Errorf("failed to toggle %s: %w", flag, err)
	}
	return value, nil
}

func (r *Repository) DeleteByID(ctx context.Context, ID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, ID)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return expectAffected(result)
}

func expectAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_movie.ErrResourceNotFound
	}
	return nil
}
