package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ErrorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// NotFoundText 纯文本 404，例如 "Project not found"
func NotFoundText(c *gin.Context, message string) {
	c.String(http.StatusNotFound, message)
}
