package usecase_settings

import (
	"context"
	"errors"
	"testing"

	"github.com/humanbelnik/cinevault/internal/model"
	notifier_mocks "github.com/humanbelnik/cinevault/internal/usecase/settings/mocks/settings/notifier"
	repo_mocks "github.com/humanbelnik/cinevault/internal/usecase/settings/mocks/settings/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

const botUsername = "CineVaultBot"

type UsecaseSettingsUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	notifier   *notifier_mocks.Notifier
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	notifier := notifier_mocks.NewNotifier(t)

	return &resources{
		usecase:    New(repository, notifier, botUsername),
		repository: repository,
		notifier:   notifier,
		ctx:        context.Background(),
	}
}

func (s *UsecaseSettingsUnitSuite) TestGet(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expected      model.Settings
		expectedError error
	}{
		{
			name: "Should return defaults when document is missing",
			setupMocks: func(r *resources) {
				r.repository.On("Load", r.ctx, model.SettingsDocumentID).Return(model.Settings{}, ErrResourceNotFound).Once()
			},
			expected: model.DefaultSettings(botUsername),
		},
		{
			name: "Should fill empty text fields",
			setupMocks: func(r *resources) {
				r.repository.On("Load", r.ctx, model.SettingsDocumentID).Return(model.Settings{
					ChannelLink:    "https://t.me/cinevault",
					StoriesEnabled: false,
					NoticeEnabled:  true,
				}, nil).Once()
			},
			expected: model.Settings{
				BotUsername:   botUsername,
				ChannelLink:   "https://t.me/cinevault",
				NoticeEnabled: true,
				NoticeText:    model.DefaultNoticeText,
			},
		},
		{
			name: "Should report internal error",
			setupMocks: func(r *resources) {
				r.repository.On("Load", r.ctx, model.SettingsDocumentID).Return(model.Settings{}, errors.New("db down")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Get(r.ctx)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func (s *UsecaseSettingsUnitSuite) TestSave(t provider.T) {
	t.Parallel()

	t.Run("Should store whole document", func(t provider.T) {
		r := initResources(t)
		in := model.Settings{
			BotUsername:    " @NewBot ",
			ChannelLink:    "https://t.me/new ",
			StoriesEnabled: true,
			NoticeText:     "hello",
		}
		stored := model.Settings{
			BotUsername:    "NewBot",
			ChannelLink:    "https://t.me/new",
			StoriesEnabled: true,
			NoticeText:     "hello",
		}
		r.repository.On("Store", r.ctx, model.SettingsDocumentID, stored).Return(nil).Once()
		r.notifier.On("Publish", model.Event{Type: model.EventSettingsUpdated}).Return().Once()

		got, err := r.usecase.Save(r.ctx, in)
		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("Should reply with the defaults Get would show", func(t provider.T) {
		r := initResources(t)
		in := model.Settings{ChannelLink: "https://t.me/new", NoticeEnabled: true}
		r.repository.On("Store", r.ctx, model.SettingsDocumentID, in).Return(nil).Once()
		r.notifier.On("Publish", model.Event{Type: model.EventSettingsUpdated}).Return().Once()

		got, err := r.usecase.Save(r.ctx, in)
		assert.NoError(t, err)

		r.repository.On("Load", r.ctx, model.SettingsDocumentID).Return(in, nil).Once()
		loaded, err := r.usecase.Get(r.ctx)
		assert.NoError(t, err)

		assert.Equal(t, loaded, got)
		assert.Equal(t, model.DefaultNoticeText, got.NoticeText)
		assert.NotEmpty(t, got.BotUsername)
	})

	t.Run("Should report internal error", func(t provider.T) {
		r := initResources(t)
		r.repository.On("Store", r.ctx, model.SettingsDocumentID, model.Settings{}).Return(errors.New("db down")).Once()

		_, err := r.usecase.Save(r.ctx, model.Settings{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSettingsUnitSuite))
}
