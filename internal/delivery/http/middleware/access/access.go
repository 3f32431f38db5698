package http_access_middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinevault/internal/delivery/http/common"
)

const ModeReadOnly = "RO"

var ErrReadOnlyInstance = errors.New("write operations not allowed on read-only instance")

// ReadOnlyBadGatewayMiddleware lets only reads through on a read-only
// instance. The websocket upgrade is a GET and stays available.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		http_common.Abort(c, http.StatusBadGateway, "Bad Gateway", ErrReadOnlyInstance)
	}
}
