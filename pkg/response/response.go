package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/online-school-api/pkg/errors"
)

// MessageBody is the informational payload used by update/delete routes and
// by every error response. The single "message" field matches the legacy API.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON sends a success payload as-is. Rows and lists go over the wire bare,
// without an envelope, for compatibility with the existing front-end.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Message sends a 200 informational message. Zero-row updates and deletes use
// this too: "nothing happened" is not an error on this API.
func Message(c *gin.Context, text string) {
	JSON(c, http.StatusOK, MessageBody{Message: text})
}

// Error converts err to its HTTP status and message body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, MessageBody{Message: appErr.Message})
}
