package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinevault/internal/model"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrResourceNotFound = errors.New("no such resource")
	ErrNotSeries        = errors.New("content is not a series")
	ErrInternal         = errors.New("internal error")

	// ErrSigningUnsupported is returned by thumbnail storages that cannot
	// hand out links. Their images are served directly.
	ErrSigningUnsupported = errors.New("storage cannot sign links")
)

//go:generate mockery --name=Repository --output=./mocks/movie/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, m model.Movie) error
	StoreBatch(ctx context.Context, mm []model.Movie) error
	Load(ctx context.Context) ([]*model.Movie, error)
	LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error)
	Update(ctx context.Context, m model.Movie) error
	UpdatePriority(ctx context.Context, ID uuid.UUID, priority int) error
	UpdateEpisodes(ctx context.Context, ID uuid.UUID, episodes []model.Episode) error
	ToggleFeature(ctx context.Context, ID uuid.UUID, flag model.FeatureFlag) (bool, error)
	DeleteByID(ctx context.Context, ID uuid.UUID) error
}

//go:generate mockery --name=ThumbnailRepository --output=./mocks/movie/thumbnail --filename=thumbnail.go
type ThumbnailRepository interface {
	Save(ctx context.Context, obj *model.Thumbnail, readyKey *string) (string, error)
	Load(ctx context.Context, readyKey string) (*model.Thumbnail, error)
	GeneratePresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

//go:generate mockery --name=DemoCatalog --output=./mocks/movie/demo --filename=demo.go
type DemoCatalog interface {
	Movies() ([]model.Movie, error)
}

//go:generate mockery --name=Notifier --output=./mocks/movie/notifier --filename=notifier.go
type Notifier interface {
	Publish(e model.Event)
}

type Usecase struct {
	repository Repository
	thumbnails ThumbnailRepository
	demo       DemoCatalog
	notifier   Notifier

	linkTTL time.Duration
	now     func() time.Time
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithLinkTTL(ttl time.Duration) Option {
	return func(u *Usecase) {
		if ttl > 0 {
			u.linkTTL = ttl
		}
	}
}

func New(
	repository Repository,
	thumbnails ThumbnailRepository,
	demo DemoCatalog,
	notifier Notifier,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repository: repository,
		thumbnails: thumbnails,
		demo:       demo,
		notifier:   notifier,
		linkTTL:    time.Hour,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// List returns the whole catalog, newest first.
func (u *Usecase) List(ctx context.Context) ([]*model.Movie, error) {
	mm, err := u.repository.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return mm, nil
}

func (u *Usecase) Get(ctx context.Context, id uuid.UUID) (model.Movie, error) {
	m, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		return model.Movie{}, u.wrap(err)
	}
	return m, nil
}

func (u *Usecase) Publish(ctx context.Context, m model.Movie) (model.Movie, error) {
	if err := m.Validate(); err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	m = m.Normalize()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = u.now().UTC()

	if err := u.repository.Store(ctx, m); err != nil {
		return model.Movie{}, errors.Join(ErrInternal, err)
	}

	u.catalogUpdated("published", m.ID)
	return m, nil
}

// Update overwrites every field of an existing entry. The creation stamp
// is refreshed, so an edited entry moves to the top of the list.
func (u *Usecase) Update(ctx context.Context, m model.Movie) (model.Movie, error) {
	if m.ID == uuid.Nil {
		return model.Movie{}, fmt.Errorf("%w: empty id", ErrInvalidInput)
	}
	if err := m.Validate(); err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	m = m.Normalize()
	m.CreatedAt = u.now().UTC()

	if err := u.repository.Update(ctx, m); err != nil {
		return model.Movie{}, u.wrap(err)
	}

	u.catalogUpdated("updated", m.ID)
	return m, nil
}

func (u *Usecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repository.DeleteByID(ctx, id); err != nil {
		return u.wrap(err)
	}

	u.catalogUpdated("deleted", id)
	return nil
}

// SeedDemo writes the demo catalog in one batch. Either every entry is
// stored or none is.
func (u *Usecase) SeedDemo(ctx context.Context) (int, error) {
	demo, err := u.demo.Movies()
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	if len(demo) == 0 {
		return 0, nil
	}

	stamp := u.now().UTC()
	batch := make([]model.Movie, 0, len(demo))
	for _, m := range demo {
		m = m.Normalize()
		m.ID = uuid.New()
		m.CreatedAt = stamp
		batch = append(batch, m)
	}

	if err := u.repository.StoreBatch(ctx, batch); err != nil {
		return 0, errors.Join(ErrInternal, err)
	}

	u.publish(model.Event{
		Type: model.EventCatalogUpdated,
		Payload: map[string]any{
			"action": "seeded",
			"count":  len(batch),
		},
	})
	return len(batch), nil
}

func (u *Usecase) SetPriority(ctx context.Context, id uuid.UUID, priority int) error {
	if err := model.ValidatePriority(priority); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := u.repository.UpdatePriority(ctx, id, priority); err != nil {
		return u.wrap(err)
	}

	u.catalogUpdated("priority", id)
	return nil
}

// ToggleFeature flips the flag and returns its new value.
func (u *Usecase) ToggleFeature(ctx context.Context, id uuid.UUID, flag model.FeatureFlag) (bool, error) {
	if _, err := model.ParseFeatureFlag(string(flag)); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	v, err := u.repository.ToggleFeature(ctx, id, flag)
	if err != nil {
		return false, u.wrap(err)
	}

	u.catalogUpdated("feature", id)
	return v, nil
}

func (u *Usecase) AddEpisode(ctx context.Context, id uuid.UUID, draft model.EpisodeDraft) ([]model.Episode, error) {
	m, err := u.series(ctx, id)
	if err != nil {
		return nil, err
	}

	episodes, added := model.AddEpisode(m.Episodes, draft, u.now())
	if !added {
		return nil, fmt.Errorf("%w: episode title and code are required", ErrInvalidInput)
	}

	if err := u.repository.UpdateEpisodes(ctx, id, episodes); err != nil {
		return nil, u.wrap(err)
	}

	u.catalogUpdated("episodes", id)
	return episodes, nil
}

func (u *Usecase) RemoveEpisode(ctx context.Context, id uuid.UUID, episodeID string) ([]model.Episode, error) {
	m, err := u.series(ctx, id)
	if err != nil {
		return nil, err
	}

	episodes := model.RemoveEpisode(m.Episodes, episodeID)
	if len(episodes) == len(m.Episodes) {
		return nil, ErrResourceNotFound
	}

	if err := u.repository.UpdateEpisodes(ctx, id, episodes); err != nil {
		return nil, u.wrap(err)
	}

	u.catalogUpdated("episodes", id)
	return episodes, nil
}

// UploadThumbnail stores the image and returns its storage key. Entries
// keep a link built from the key; OpenThumbnail resolves it on every read,
// so the stored value never expires.
func (u *Usecase) UploadThumbnail(ctx context.Context, filename string, contentType string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s is not an image", ErrInvalidInput, contentType)
	}

	obj := &model.Thumbnail{
		Filename:    uuid.New().String() + strings.ToLower(filepath.Ext(filename)),
		ContentType: contentType,
		Content:     content,
		Parent:      u.now().UTC().Format("2006-01-02"),
	}

	key, err := u.thumbnails.Save(ctx, obj, nil)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return key, nil
}

// OpenThumbnail returns a freshly signed link to the stored image, or the
// image itself when the storage cannot sign links.
func (u *Usecase) OpenThumbnail(ctx context.Context, key string) (string, *model.Thumbnail, error) {
	if !validThumbnailKey(key) {
		return "", nil, fmt.Errorf("%w: bad thumbnail key %q", ErrInvalidInput, key)
	}

	link, err := u.thumbnails.GeneratePresignedURL(ctx, key, u.linkTTL)
	if err == nil {
		return link, nil, nil
	}
	if !errors.Is(err, ErrSigningUnsupported) {
		return "", nil, errors.Join(ErrInternal, err)
	}

	obj, err := u.thumbnails.Load(ctx, key)
	if err != nil {
		return "", nil, u.wrap(err)
	}
	return "", obj, nil
}

func validThumbnailKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || path.Clean(key) != key {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

func (u *Usecase) series(ctx context.Context, id uuid.UUID) (model.Movie, error) {
	m, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		return model.Movie{}, u.wrap(err)
	}
	if !m.IsSeries() {
		return model.Movie{}, ErrNotSeries
	}
	return m, nil
}

func (u *Usecase) wrap(err error) error {
	if errors.Is(err, ErrResourceNotFound) {
		return ErrResourceNotFound
	}
	return errors.Join(ErrInternal, err)
}

func (u *Usecase) catalogUpdated(action string, id uuid.UUID) {
	u.publish(model.Event{
		Type: model.EventCatalogUpdated,
		Payload: map[string]any{
			"action":   action,
			"movie_id": id.String(),
		},
	})
}

func (u *Usecase) publish(e model.Event) {
	if u.notifier != nil {
		u.notifier.Publish(e)
	}
}
