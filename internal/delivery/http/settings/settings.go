package http_settings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinevault/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/cinevault/internal/model"
)

//go:generate mockery --name=Usecase --output=./mocks --filename=usecase.go
type Usecase interface {
	Get(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, s model.Settings) (model.Settings, error)
}

type SettingsDTO struct {
	BotUsername    string `json:"botUsername" example:"CineVaultBot"`
	ChannelLink    string `json:"channelLink" example:"https://t.me/cinevault"`
	StoriesEnabled bool   `json:"storiesEnabled"`
	NoticeEnabled  bool   `json:"noticeEnabled"`
	NoticeText     string `json:"noticeText"`
	BannerAutoPlay bool   `json:"bannerAutoPlay"`
}

func (d SettingsDTO) ConvertToSettings() model.Settings {
	return model.Settings{
		BotUsername:    d.BotUsername,
		ChannelLink:    d.ChannelLink,
		StoriesEnabled: d.StoriesEnabled,
		NoticeEnabled:  d.NoticeEnabled,
		NoticeText:     d.NoticeText,
		BannerAutoPlay: d.BannerAutoPlay,
	}
}

func ConvertFromSettings(s model.Settings) SettingsDTO {
	return SettingsDTO{
		BotUsername:    s.BotUsername,
		ChannelLink:    s.ChannelLink,
		StoriesEnabled: s.StoriesEnabled,
		NoticeEnabled:  s.NoticeEnabled,
		NoticeText:     s.NoticeText,
		BannerAutoPlay: s.BannerAutoPlay,
	}
}

type Controller struct {
	uc         Usecase
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc Usecase,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:         uc,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	settings.GET("", c.getSettings)
	settings.PUT("", c.middleware.AuthRequired(), c.saveSettings)
}

// @Summary App settings
// @Description Returns the stored settings, or defaults when nothing was saved yet
// @Tags Settings operations
// @Produce json
// @Success 200 {object} SettingsDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /settings [get]
func (c *Controller) getSettings(ctx *gin.Context) {
	s, err := c.uc.Get(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load settings", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusInternalServerError, "Error loading settings", nil)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromSettings(s))
}

// @Summary Save app settings
// @Description Replaces the whole settings document
// @Tags Settings operations
// @Accept json
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Param request body SettingsDTO true "Settings"
// @Success 200 {object} SettingsDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 500 {object} http_common.ErrorResponse "Error saving settings"
// @Router /settings [put]
func (c *Controller) saveSettings(ctx *gin.Context) {
	var req SettingsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	s, err := c.uc.Save(ctx.Request.Context(), req.ConvertToSettings())
	if err != nil {
		c.logger.Error("failed to save settings", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusInternalServerError, "Error saving settings", nil)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromSettings(s))
}
