package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope used for upload results and every error.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func write(c *gin.Context, code int, body Response) {
	body.RequestID = c.GetString("RequestID")
	c.JSON(code, body)
}

// Success writes a successful envelope carrying data.
func Success(c *gin.Context, code int, message string, data any) {
	write(c, code, Response{Success: true, Message: message, Data: data})
}

// Error writes a failed envelope. detail is usually the message itself.
func Error(c *gin.Context, code int, message string, detail any) {
	write(c, code, Response{Message: message, Error: detail})
}

// Attachment sends a downloadable file.
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
