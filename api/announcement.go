package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/minhnq/campushub-BE/internal/notification"
	"github.com/minhnq/campushub-BE/internal/util"
)

type createAnnouncementRequest struct {
	Title     string   `json:"title" binding:"required"`
	Body      string   `json:"body" binding:"required"`
	ClassName string   `json:"class_name" binding:"required"`
	MemberIDs []string `json:"member_ids" binding:"required,min=1"`
	IsUrgent  bool     `json:"is_urgent"`
}

type createAnnouncementResponse struct {
	AnnouncementID string                    `json:"announcement_id"`
	Created        int                       `json:"created"`
	Suppressed     int                       `json:"suppressed"`
	Failed         int                       `json:"failed"`
	Fanout         notification.FanoutResult `json:"fanout"`
}

// @Summary		Post a class announcement
// @Description	Fans an announcement out to the resolved class roster. The caller resolves the roster; this endpoint only dispatches.
// @Tags			announcements
// @Accept			json
// @Produce		json
// @Param			request	body		createAnnouncementRequest	true	"Announcement with resolved roster"
// @Success		200		{object}	createAnnouncementResponse
// @Failure		400		{object}	object
// @Failure		403		{object}	object
// @Security		accessToken
// @Router			/announcements [post]
func (server *Server) createAnnouncement(c *gin.Context) {
	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	announcementID := util.GenerateRandomSlug(req.Title)

	result := server.dispatcher.Dispatch(c, notification.Event{
		Category:    notification.CategoryAnnouncement,
		Title:       req.Title,
		Body:        req.Body,
		RelatedID:   announcementID,
		RelatedType: "announcement",
		ScopeTag:    slug.Make(req.ClassName),
		Urgent:      req.IsUrgent,
		OccurredAt:  time.Now(),
		Recipients:  notification.RosterRecipients(req.ClassName, req.MemberIDs),
	})

	c.JSON(http.StatusOK, createAnnouncementResponse{
		AnnouncementID: announcementID,
		Created:        result.Created(),
		Suppressed:     result.Suppressed(),
		Failed:         result.Failed(),
		Fanout:         result,
	})
}
