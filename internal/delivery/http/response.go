package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.WithField("status", statusCode).Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}
