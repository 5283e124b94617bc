package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/minhnq/campushub-BE/internal/notification"
	"github.com/minhnq/campushub-BE/internal/token"
)

// @Summary		Get notification settings
// @Description	Returns the authenticated user's per-category notification preferences. Users without saved settings get the fail-open defaults.
// @Tags			notifications
// @Produce		json
// @Success		200	{object}	notification.Preferences
// @Security		accessToken
// @Router			/users/me/notification-settings [get]
func (server *Server) getNotificationSettings(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	row, err := server.dbStore.GetNotificationSetting(c, authPayload.Subject)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			c.JSON(http.StatusOK, notification.DefaultPreferences())
			return
		}

		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, notification.Preferences{
		Announcement: row.Announcement,
		Task:         row.Task,
		Submission:   row.Submission,
		ExcuseLetter: row.ExcuseLetter,
		Grade:        row.Grade,
		Enrollment:   row.Enrollment,
		System:       row.System,
		EmailEnabled: row.EmailEnabled,
	})
}

type updateNotificationSettingsRequest struct {
	Announcement *bool `json:"announcement" binding:"required"`
	Task         *bool `json:"task" binding:"required"`
	Submission   *bool `json:"submission" binding:"required"`
	ExcuseLetter *bool `json:"excuse_letter" binding:"required"`
	Grade        *bool `json:"grade" binding:"required"`
	Enrollment   *bool `json:"enrollment" binding:"required"`
	System       *bool `json:"system" binding:"required"`
	EmailEnabled *bool `json:"email_enabled" binding:"required"`
}

// @Summary		Update notification settings
// @Description	Replaces the authenticated user's notification preference matrix
// @Tags			notifications
// @Accept			json
// @Produce		json
// @Param			request	body		updateNotificationSettingsRequest	true	"Preference matrix"
// @Success		200		{object}	db.NotificationSetting
// @Security		accessToken
// @Router			/users/me/notification-settings [put]
func (server *Server) updateNotificationSettings(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	var req updateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	setting, err := server.dbStore.UpsertNotificationSetting(c, db.UpsertNotificationSettingParams{
		UserID:       authPayload.Subject,
		Announcement: *req.Announcement,
		Task:         *req.Task,
		Submission:   *req.Submission,
		ExcuseLetter: *req.ExcuseLetter,
		Grade:        *req.Grade,
		Enrollment:   *req.Enrollment,
		System:       *req.System,
		EmailEnabled: *req.EmailEnabled,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, setting)
}
