package http_auth_middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinevault/internal/delivery/http/common"
	"github.com/humanbelnik/cinevault/internal/model"
	session_auth "github.com/humanbelnik/cinevault/internal/service/auth/session"
)

const (
	Header     = "X-admin-token"
	QueryParam = "token"

	sessionKey = "admin_session"
)

//go:generate mockery --name=SessionResolver --output=./mocks --filename=resolver.go
type SessionResolver interface {
	Session(ctx context.Context, token string) (model.Session, error)
}

type Middleware struct {
	resolver SessionResolver
	logger   *slog.Logger
}

func New(
	resolver SessionResolver,
) *Middleware {
	return &Middleware{
		resolver: resolver,
		logger:   slog.Default(),
	}
}

// Token looks in the admin header, then a bearer Authorization header,
// then the query string. Browsers cannot set headers on websocket
// upgrades, hence the query.
func Token(ctx *gin.Context) string {
	if t := ctx.GetHeader(Header); t != "" {
		return t
	}
	if h := ctx.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ctx.Query(QueryParam)
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := Token(ctx)
		if t == "" {
			m.logger.Warn("no admin token")
			http_common.Abort(ctx, http.StatusUnauthorized, "Unauthorized",
				fmt.Errorf("no %s header", Header))
			return
		}

		session, err := m.resolver.Session(ctx.Request.Context(), t)
		if err != nil {
			if errors.Is(err, session_auth.ErrNoSession) {
				m.logger.Warn("invalid token")
				http_common.Abort(ctx, http.StatusUnauthorized, "Unauthorized",
					errors.New("invalid token"))
				return
			}
			m.logger.Error("internal error", slog.String("error", err.Error()))
			http_common.Abort(ctx, http.StatusInternalServerError, "Internal error", nil)
			return
		}

		ctx.Set(sessionKey, session)
		ctx.Next()
	}
}

// SessionFrom returns the session AuthRequired attached to ctx.
func SessionFrom(ctx *gin.Context) (model.Session, bool) {
	v, ok := ctx.Get(sessionKey)
	if !ok {
		return model.Session{}, false
	}
	s, ok := v.(model.Session)
	return s, ok
}
