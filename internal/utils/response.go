package utils

import "github.com/gin-gonic/gin"

// Error writes an error response body in the shape {"detail": <message>}.
func Error(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// Truncate shortens a message to at most n characters, for status fields
// that embed an upstream error.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
