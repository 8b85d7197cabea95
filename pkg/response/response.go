package response

import (
	"context"
	"fmt"
	"net/http"

	"estimate-srv/pkg/discord"
	pkgErrors "estimate-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	reportInternal(c, err, discordClient)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// PanicError handles recovered panics at the transport boundary.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	reportInternal(c, fmt.Errorf("panic: %v", recovered), discordClient)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func reportInternal(c *gin.Context, err error, discordClient discord.IDiscord) {
	if discordClient == nil {
		return
	}
	// Gin recycles contexts once the handler returns, so the request must be
	// read before the goroutine starts.
	description := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	go func() {
		_ = discordClient.SendError(context.Background(), "Internal error", description, err)
	}()
}
