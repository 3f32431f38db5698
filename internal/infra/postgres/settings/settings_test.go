package infra_postgres_settings

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/humanbelnik/cinevault/internal/model"
	usecase_settings "github.com/humanbelnik/cinevault/internal/usecase/settings"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type SettingsInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	return &resources{
		mock:   mock,
		driver: New(sqlx.NewDb(db, "sqlmock")),
		ctx:    context.Background(),
	}
}

var columns = []string{
	"id", "bot_username", "channel_link", "stories_enabled", "notice_enabled", "notice_text", "banner_auto_play",
}

func (s *SettingsInfraUnitSuite) TestLoad(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expected      model.Settings
		expectedError error
		errorContains string
	}{
		{
			name: "Should load stored document",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT (.+) FROM settings").
					WithArgs(model.SettingsDocumentID).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(model.SettingsDocumentID, "MyBot", "https://t.me/chan", false, true, "hello", true))
			},
			expected: model.Settings{
				BotUsername:    "MyBot",
				ChannelLink:    "https://t.me/chan",
				StoriesEnabled: false,
				NoticeEnabled:  true,
				NoticeText:     "hello",
				BannerAutoPlay: true,
			},
		},
		{
			name: "Should map missing document to not found",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT (.+) FROM settings").
					WithArgs(model.SettingsDocumentID).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: usecase_settings.ErrResourceNotFound,
		},
		{
			name: "Should wrap query failure",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT (.+) FROM settings").
					WithArgs(model.SettingsDocumentID).
					WillReturnError(errors.New("query error"))
			},
			errorContains: "failed to load settings",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.driver.Load(r.ctx, model.SettingsDocumentID)
			switch {
			case tc.expectedError != nil:
				assert.ErrorIs(t, err, tc.expectedError)
			case tc.errorContains != "":
				assert.ErrorContains(t, err, tc.errorContains)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *SettingsInfraUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	settings := model.DefaultSettings("MyBot")

	t.Run("Should upsert document", func(t provider.T) {
		r := initResources(t)
		r.mock.ExpectExec("INSERT INTO settings (.+) ON CONFLICT").
			WithArgs(model.SettingsDocumentID, "MyBot", "", true, true, model.DefaultNoticeText, true).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.driver.Store(r.ctx, model.SettingsDocumentID, settings))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should wrap exec failure", func(t provider.T) {
		r := initResources(t)
		r.mock.ExpectExec("INSERT INTO settings").WillReturnError(errors.New("insert error"))

		err := r.driver.Store(r.ctx, model.SettingsDocumentID, settings)
		assert.ErrorContains(t, err, "failed to store settings")
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SettingsInfraUnitSuite))
}
