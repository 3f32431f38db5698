package s3mock

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/humanbelnik/cinevault/internal/model"
	usecase_movie "github.com/humanbelnik/cinevault/internal/usecase/movie"
)

// S3Storage keeps thumbnails in memory. It cannot sign links, so the
// thumbnail endpoint serves the stored bytes itself.
type S3Storage struct {
	mu      sync.RWMutex
	prefix  string
	objects map[string]model.Thumbnail
}

func New(prefix string) *S3Storage {
	return &S3Storage{
		prefix:  prefix,
		objects: make(map[string]model.Thumbnail),
	}
}

func (s *S3Storage) Save(ctx context.Context, obj *model.Thumbnail, readyKey *string) (string, error) {
	key := path.Join(s.prefix, obj.GetParent(), obj.GetFilename())
	if readyKey != nil {
		key = *readyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = *obj
	return key, nil
}

func (s *S3Storage) Load(ctx context.Context, readyKey string) (*model.Thumbnail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[readyKey]
	if !ok {
		return nil, fmt.Errorf("[s3mock] load %q: %w", readyKey, usecase_movie.ErrResourceNotFound)
	}
	return &obj, nil
}

func (s *S3Storage) Delete(ctx context.Context, readyKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, readyKey)
	return nil
}

func (s *S3Storage) GeneratePresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "", usecase_movie.ErrSigningUnsupported
}
