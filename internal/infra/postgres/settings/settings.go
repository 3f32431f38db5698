package infra_postgres_settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanbelnik/cinevault/internal/model"
	usecase_settings "github.com/humanbelnik/cinevault/internal/usecase/settings"
	"github.com/jmoiron/sqlx"
)

type settingsDTO struct {
	ID             string `db:"id"`
	BotUsername    string `db:"bot_username"`
	ChannelLink    string `db:"channel_link"`
	StoriesEnabled bool   `db:"stories_enabled"`
	NoticeEnabled  bool   `db:"notice_enabled"`
	NoticeText     string `db:"notice_text"`
	BannerAutoPlay bool   `db:"banner_auto_play"`
}

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

func (d *Driver) Load(ctx context.Context, docID string) (model.Settings, error) {
	query := `
		SELECT id, bot_username, channel_link, stories_enabled, notice_enabled, notice_text, banner_auto_play
		FROM settings
		WHERE id = $1
	`

	var dto settingsDTO
	if err := d.db.GetContext(ctx, &dto, query, docID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Settings{}, usecase_settings.ErrResourceNotFound
		}
		return model.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	return model.Settings{
		BotUsername:    dto.BotUsername,
		ChannelLink:    dto.ChannelLink,
		StoriesEnabled: dto.StoriesEnabled,
		NoticeEnabled:  dto.NoticeEnabled,
		NoticeText:     dto.NoticeText,
		BannerAutoPlay: dto.BannerAutoPlay,
	}, nil
}

// Store replaces the document, creating it on first save.
func (d *Driver) Store(ctx context.Context, docID string, s model.Settings) error {
	query := `
		INSERT INTO settings (id, bot_username, channel_link, stories_enabled, notice_enabled, notice_text, banner_auto_play, updated_at)
		VALUES (:id, :bot_username, :channel_link, :stories_enabled, :notice_enabled, :notice_text, :banner_auto_play, NOW())
		ON CONFLICT (id) DO UPDATE SET
			bot_username = EXCLUDED.bot_username,
			channel_link = EXCLUDED.channel_link,
			stories_enabled = EXCLUDED.stories_enabled,
			notice_enabled = EXCLUDED.notice_enabled,
			notice_text = EXCLUDED.notice_text,
			banner_auto_play = EXCLUDED.banner_auto_play,
			updated_at = NOW()
	`

	_, err := d.db.NamedExecContext(ctx, query, settingsDTO{
		ID:             docID,
		BotUsername:    s.BotUsername,
		ChannelLink:    s.ChannelLink,
		StoriesEnabled: s.StoriesEnabled,
		NoticeEnabled:  s.NoticeEnabled,
		NoticeText:     s.NoticeText,
		BannerAutoPlay: s.BannerAutoPlay,
	})
	if err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}
