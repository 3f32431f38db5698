package usecase_settings

import (
	"context"
	"errors"
	"strings"

	"github.com/humanbelnik/cinevault/internal/model"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=Repository --output=./mocks/settings/repository --filename=repository.go
type Repository interface {
	Load(ctx context.Context, docID string) (model.Settings, error)
	Store(ctx context.Context, docID string, s model.Settings) error
}

//go:generate mockery --name=Notifier --output=./mocks/settings/notifier --filename=notifier.go
type Notifier interface {
	Publish(e model.Event)
}

// Usecase owns the single app settings document.
type Usecase struct {
	repository  Repository
	notifier    Notifier
	botUsername string
}

func New(
	repository Repository,
	notifier Notifier,
	botUsername string,
) *Usecase {
	return &Usecase{
		repository:  repository,
		notifier:    notifier,
		botUsername: botUsername,
	}
}

// Get never fails on a missing document: defaults are returned instead.
func (u *Usecase) Get(ctx context.Context) (model.Settings, error) {
	s, err := u.repository.Load(ctx, model.SettingsDocumentID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.DefaultSettings(u.botUsername), nil
		}
		return model.Settings{}, errors.Join(ErrInternal, err)
	}
	return s.WithDefaults(u.botUsername), nil
}

// Save replaces the whole document. The result is what Get will return.
func (u *Usecase) Save(ctx context.Context, s model.Settings) (model.Settings, error) {
	s.BotUsername = strings.TrimPrefix(strings.TrimSpace(s.BotUsername), "@")
	s.ChannelLink = strings.TrimSpace(s.ChannelLink)

	if err := u.repository.Store(ctx, model.SettingsDocumentID, s); err != nil {
		return model.Settings{}, errors.Join(ErrInternal, err)
	}

	if u.notifier != nil {
		u.notifier.Publish(model.Event{Type: model.EventSettingsUpdated})
	}
	return s.WithDefaults(u.botUsername), nil
}
