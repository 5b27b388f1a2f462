package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrModeratorRoleRequired = errors.New("requires moderator role")
	ErrInvalidNotificationID = errors.New("invalid notification ID format")
	ErrInvalidRecipientRole  = errors.New("recipient role must be user or provider")
)

func errorResponse(err error) gin.H {
	return gin.H{"status": "error", "message": err.Error()}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"status": "success", "data": data}
}

func messageResponse(message string) gin.H {
	return gin.H{"status": "success", "message": message}
}
