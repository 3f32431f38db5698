package http_auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/cinevault/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/cinevault/internal/model"
	session_auth "github.com/humanbelnik/cinevault/internal/service/auth/session"
)

//go:generate mockery --name=Service --output=./mocks --filename=service.go
type Service interface {
	SignIn(ctx context.Context, email string, password string) (model.Session, error)
	SignOut(ctx context.Context, token string) error
}

type Controller struct {
	service    Service
	middleware *http_auth_middleware.Middleware
	logger     *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	service Service,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		service:    service,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/login", c.login)
	auth.POST("/logout", c.middleware.AuthRequired(), c.logout)
	auth.GET("/session", c.middleware.AuthRequired(), c.session)
}

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required" example:"admin@cinevault.app"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type SessionResponseDTO struct {
	Token     string    `json:"token,omitempty" example:"0b6c7d3e-5a43-4d8f-9e1c-1f0c2a9b7e11"`
	AdminID   uuid.UUID `json:"admin_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string    `json:"email" example:"admin@cinevault.app"`
	CreatedAt time.Time `json:"created_at"`
}

func toSessionResponse(s model.Session, withToken bool) SessionResponseDTO {
	resp := SessionResponseDTO{
		AdminID:   s.AdminID,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
	if withToken {
		resp.Token = s.Token
	}
	return resp
}

// @Summary Admin sign in
// @Description Checks credentials and opens a session. The token is returned in the body and in the X-admin-token header
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body LoginRequestDTO true "Admin credentials"
// @Success 200 {object} SessionResponseDTO
// @Header 200 {string} X-admin-token "Session token"
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 401 {object} http_common.ErrorResponse "Invalid admin credentials"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	session, err := c.service.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session_auth.ErrInvalidCredentials) {
			c.logger.Warn("rejected sign in", slog.String("email", req.Email))
			http_common.Abort(ctx, http.StatusUnauthorized, "Invalid admin credentials", nil)
			return
		}
		c.logger.Error("sign in failed", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusInternalServerError, "Internal error", nil)
		return
	}

	ctx.Header(http_auth_middleware.Header, session.Token)
	ctx.JSON(http.StatusOK, toSessionResponse(session, true))
}

// @Summary Admin sign out
// @Tags Auth operations
// @Param X-admin-token header string true "Session token"
// @Success 204
// @Failure 401 {object} http_common.ErrorResponse "No session"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	if err := c.service.SignOut(ctx.Request.Context(), http_auth_middleware.Token(ctx)); err != nil {
		c.logger.Error("sign out failed", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusInternalServerError, "Internal error", nil)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Current admin session
// @Tags Auth operations
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Success 200 {object} SessionResponseDTO
// @Failure 401 {object} http_common.ErrorResponse "No session"
// @Router /auth/session [get]
func (c *Controller) session(ctx *gin.Context) {
	session, ok := http_auth_middleware.SessionFrom(ctx)
	if !ok {
		http_common.Abort(ctx, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	ctx.JSON(http.StatusOK, toSessionResponse(session, false))
}
