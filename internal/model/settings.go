package model

const (
	SettingsDocumentID = "config"

	DefaultNoticeText = "🎬 নতুন মুভি এবং সিরিজ প্রতিদিন আপডেট! 🔥"
)

type Settings struct {
	BotUsername    string
	ChannelLink    string
	StoriesEnabled bool
	NoticeEnabled  bool
	NoticeText     string
	BannerAutoPlay bool
}

func DefaultSettings(botUsername string) Settings {
	return Settings{
		BotUsername:    botUsername,
		StoriesEnabled: true,
		NoticeEnabled:  true,
		NoticeText:     DefaultNoticeText,
		BannerAutoPlay: true,
	}
}

// WithDefaults fills text fields a stored document left empty.
func (s Settings) WithDefaults(botUsername string) Settings {
	if s.BotUsername == "" {
		s.BotUsername = botUsername
	}
	if s.NoticeText == "" {
		s.NoticeText = DefaultNoticeText
	}
	return s
}
