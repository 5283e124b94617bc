package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInsufficientPermission = errors.New("requires a role with permission for this action")
	ErrNotificationNotOwned   = errors.New("notification does not belong to the authenticated user")
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
