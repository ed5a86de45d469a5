package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// VisitorIP derives the caller's address from the strongest available
// signal: proxy-forwarded header first, then the connection address. Falls
// back to "Unknown" so submissions always carry a value.
func VisitorIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		// The first entry is the original client; the rest are proxies.
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}

	if remote := c.Request.RemoteAddr; remote != "" {
		if host, _, err := net.SplitHostPort(remote); err == nil && host != "" {
			return host
		}
		return remote
	}

	return "Unknown"
}
