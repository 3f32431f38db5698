//go:build integration
// +build integration

package integrationtest

import (
	"context"
	"testing"

	infra_pg_init "github.com/humanbelnik/cinevault/internal/infra/postgres/init"
	infra_postgres_settings "github.com/humanbelnik/cinevault/internal/infra/postgres/settings"
	"github.com/humanbelnik/cinevault/internal/model"
	usecase_settings "github.com/humanbelnik/cinevault/internal/usecase/settings"
	mocks_notifier "github.com/humanbelnik/cinevault/internal/usecase/settings/mocks/settings/notifier"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseSettingsIntegrationSuite struct {
	suite.Suite
	uc *usecase_settings.Usecase
}

func (s *UsecaseSettingsIntegrationSuite) BeforeAll(t provider.T) {
	pgConn := infra_pg_init.MustEstablishConn(getConfig().Postgres)

	notifier := mocks_notifier.NewNotifier(t)
	notifier.On("Publish", mock.Anything).Maybe()

	s.uc = usecase_settings.New(infra_postgres_settings.New(pgConn), notifier, "CineVaultBot")
}

func (s *UsecaseSettingsIntegrationSuite) TestIntegrationSaveAndGet(t provider.T) {
	ctx := context.Background()

	saved, err := s.uc.Save(ctx, model.Settings{
		BotUsername:    "@IntegrationBot",
		ChannelLink:    "https://t.me/integration",
		StoriesEnabled: true,
		NoticeText:     "Maintenance tonight",
	})
	require.NoError(t, err)
	assert.Equal(t, "IntegrationBot", saved.BotUsername)

	loaded, err := s.uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/integration", loaded.ChannelLink)
	assert.False(t, loaded.NoticeEnabled)
	assert.Equal(t, "Maintenance tonight", loaded.NoticeText)
}

func TestIntegrationSettingsSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSettingsIntegrationSuite))
}
