package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/minhnq/campushub-BE/internal/token"
	"github.com/rs/zerolog/log"
)

const unreadCountCacheTTL = 30 * time.Second

func unreadCountCacheKey(userID string) string {
	return fmt.Sprintf("notifications:unread_count:%s", userID)
}

type listNotificationsRequest struct {
	Page     int32 `form:"page,default=1" binding:"min=1"`
	PageSize int32 `form:"page_size,default=20" binding:"min=1,max=100"`
}

// @Summary		List notifications
// @Description	Lists the authenticated user's notifications, newest first
// @Tags			notifications
// @Produce		json
// @Param			page		query		int	false	"Page number"		default(1)
// @Param			page_size	query		int	false	"Items per page"	default(20)
// @Success		200			{array}		db.Notification
// @Failure		401			{object}	object
// @Security		accessToken
// @Router			/notifications [get]
func (server *Server) listNotifications(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	var req listNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	notifications, err := server.dbStore.ListNotificationsByRecipient(c, db.ListNotificationsByRecipientParams{
		RecipientID: authPayload.Subject,
		Limit:       req.PageSize,
		Offset:      (req.Page - 1) * req.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// @Summary		Count unread notifications
// @Description	Returns the authenticated user's unread badge count
// @Tags			notifications
// @Produce		json
// @Success		200	{object}	map[string]int64
// @Security		accessToken
// @Router			/notifications/unread-count [get]
func (server *Server) countUnreadNotifications(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)
	cacheKey := unreadCountCacheKey(authPayload.Subject)

	if server.redisClient != nil {
		cached, err := server.redisClient.Get(c, cacheKey).Int64()
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"unread_count": cached})
			return
		}
	}

	count, err := server.dbStore.CountUnreadNotifications(c, authPayload.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if server.redisClient != nil {
		if err := server.redisClient.Set(c, cacheKey, count, unreadCountCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("failed to cache unread count")
		}
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// @Summary		Mark a notification as read
// @Tags			notifications
// @Produce		json
// @Param			id	path		int	true	"Notification ID"
// @Success		200	{object}	map[string]string
// @Failure		403	{object}	object
// @Failure		404	{object}	object
// @Security		accessToken
// @Router			/notifications/{id}/read [patch]
func (server *Server) markNotificationRead(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid notification ID")))
		return
	}

	n, err := server.dbStore.GetNotificationByID(c, notificationID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("notification %d not found", notificationID)))
			return
		}

		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if n.RecipientID != authPayload.Subject {
		c.JSON(http.StatusForbidden, errorResponse(ErrNotificationNotOwned))
		return
	}

	err = server.dbStore.MarkNotificationRead(c, db.MarkNotificationReadParams{
		ID:          notificationID,
		RecipientID: authPayload.Subject,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.invalidateUnreadCount(c, authPayload.Subject)

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

// @Summary		Mark all notifications as read
// @Tags			notifications
// @Produce		json
// @Success		200	{object}	map[string]string
// @Security		accessToken
// @Router			/notifications/read-all [patch]
func (server *Server) markAllNotificationsRead(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	if err := server.dbStore.MarkAllNotificationsRead(c, authPayload.Subject); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.invalidateUnreadCount(c, authPayload.Subject)

	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

func (server *Server) invalidateUnreadCount(c *gin.Context, userID string) {
	if server.redisClient == nil {
		return
	}
	if err := server.redisClient.Del(c, unreadCountCacheKey(userID)).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate unread count cache")
	}
}
