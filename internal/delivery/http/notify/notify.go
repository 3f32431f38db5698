package http_notify

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/cinevault/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth"
	ws_notify "github.com/humanbelnik/cinevault/internal/delivery/ws/notify"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Controller struct {
	hub        *ws_notify.Hub
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(hub *ws_notify.Hub,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		hub:        hub,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/admin", c.middleware.AuthRequired(), c.adminWS)
}

// @Summary Admin notifications
// @Description Websocket stream of CATALOG_UPDATED, SETTINGS_UPDATED, SESSION_STARTED and SESSION_ENDED events
// @Tags Notifications
// @Param token query string true "Session token"
// @Success 101
// @Failure 401 {object} http_common.ErrorResponse "No session"
// @Router /ws/admin [get]
func (c *Controller) adminWS(ctx *gin.Context) {
	session, ok := http_auth_middleware.SessionFrom(ctx)
	if !ok {
		http_common.Abort(ctx, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		return
	}

	client := ws_notify.NewClient(c.hub, conn, session)
	c.hub.RegisterClient(client)

	go c.hub.StartClientReading(client)
	go c.hub.StartClientWriting(client)
}
