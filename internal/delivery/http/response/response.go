package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "RequestID"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Success sends body with "success": true merged in.
func Success(c *gin.Context, code int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(code, body)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Success:   false,
		Error:     message,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id assigned by the request id middleware, if any.
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get(RequestIDKey)
	idStr, _ := reqID.(string)
	return idStr
}
