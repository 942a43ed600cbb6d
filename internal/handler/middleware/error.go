package middleware

import (
	"log/slog"
	"net/http"

	"producer-market/internal/handler/httperr"
	"producer-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers attached with c.Error but never
// answered. Public errors carry their response in Meta; anything else is
// mapped through its error category.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last().Err
		status := httperr.StatusFor(last)
		resp := httperr.Response{Status: status}
		if status == http.StatusInternalServerError {
			slog.Error("unhandled request error",
				"path", c.FullPath(),
				"error", last.Error(),
				"stack", errs.ExtractStackLines(last, 8),
			)
			resp.Error.Message = "Internal server error"
		} else {
			resp.Error.Message = last.Error()
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
