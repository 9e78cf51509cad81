package middleware

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
)

func statusColor(status int) *color.Color {
	switch {
	case status >= 500:
		return color.New(color.FgRed, color.Bold)
	case status >= 400:
		return color.New(color.FgYellow)
	case status >= 300:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}

// Logger logs one line per request with a status-colored code.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		statusStr := statusColor(status).Sprintf("%d", status)

		fmt.Printf("%s | %s %-7s %s (%s)\n",
			start.Format("15:04:05"),
			statusStr,
			c.Request.Method,
			c.Request.URL.Path,
			latency,
		)
	}
}
