package http_notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_auth_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth"
	resolver_mocks "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth/mocks"
	ws_notify "github.com/humanbelnik/cinevault/internal/delivery/ws/notify"
	"github.com/humanbelnik/cinevault/internal/model"
	session_auth "github.com/humanbelnik/cinevault/internal/service/auth/session"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type NotifyControllerUnitSuite struct {
	suite.Suite
}

func newRouter(t provider.T) (*gin.Engine, *ws_notify.Hub, *resolver_mocks.SessionResolver) {
	gin.SetMode(gin.TestMode)

	hub := ws_notify.New()
	resolver := resolver_mocks.NewSessionResolver(t)

	router := gin.New()
	New(hub, http_auth_middleware.New(resolver)).RegisterRoutes(router.Group("/api/v1"))
	return router, hub, resolver
}

func (s *NotifyControllerUnitSuite) TestRejectsAnonymous(t provider.T) {
	t.Parallel()

	router, _, resolver := newRouter(t)
	resolver.On("Session", mock.Anything, "stale").Return(model.Session{}, session_auth.ErrNoSession).Once()

	for _, path := range []string{"/api/v1/ws/admin", "/api/v1/ws/admin?token=stale"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func (s *NotifyControllerUnitSuite) TestStreamsEvents(t provider.T) {
	t.Parallel()

	router, hub, resolver := newRouter(t)
	resolver.On("Session", mock.Anything, "tok").
		Return(model.Session{Token: "tok", Email: "admin@example.com"}, nil).Once()

	server := httptest.NewServer(router)
	defer server.Close()
	defer hub.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws/admin?token=tok"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientsCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(model.Event{
		Type:    model.EventSessionEnded,
		Payload: map[string]any{"token": "tok", "email": "admin@example.com"},
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ws_notify.Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, model.EventSessionEnded, msg.Type)
	assert.NotContains(t, string(raw), `"tok"`)

	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.ClientsCount())
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(NotifyControllerUnitSuite))
}
