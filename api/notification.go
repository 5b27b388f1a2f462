package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/event"
	"github.com/minhanle/servio-BE/internal/notification"
	"github.com/minhanle/servio-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

type listNotificationsRequest struct {
	Page  int32  `form:"page,default=1"`
	Limit int32  `form:"limit,default=20"`
	Type  string `form:"type"`
}

//	@Summary		List notifications
//	@Description	List the authenticated recipient's notifications, newest first
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			page	query		int		false	"Page number (default 1)"
//	@Param			limit	query		int		false	"Page size (default 20, max 100)"
//	@Param			type	query		string	false	"Filter by title substring, e.g. booking"
//	@Success		200		{object}	notification.ListResult
//	@Failure		400		"Invalid pagination parameters"
//	@Failure		500		"Internal server error"
//	@Router			/notifications [get]
func (server *Server) listNotifications(c *gin.Context) {
	var req listNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.notificationService.List(c, server.recipientScope(c), notification.ListParams{
		Page:       req.Page,
		Limit:      req.Limit,
		TypeFilter: req.Type,
	})
	if err != nil {
		if errors.Is(err, notification.ErrValidation) {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}

		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

//	@Summary		Get unread notification count
//	@Description	Count the authenticated recipient's unread notifications
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Success		200	{object}	object	"unreadCount"
//	@Failure		500	"Internal server error"
//	@Router			/notifications/unread-count [get]
func (server *Server) getUnreadCount(c *gin.Context) {
	count, err := server.notificationService.UnreadCount(c, server.recipientScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"unreadCount": count}))
}

//	@Summary		Mark one notification as read
//	@Description	Idempotent: marking an already-read or unknown notification succeeds
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Notification ID"
//	@Success		200	{object}	object
//	@Failure		400	"Invalid notification ID format"
//	@Failure		500	"Internal server error"
//	@Router			/notifications/{id}/mark-read [put]
func (server *Server) markNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(ErrInvalidNotificationID))
		return
	}

	if err = server.notificationService.MarkRead(c, server.recipientScope(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse("notification marked as read"))
}

//	@Summary		Mark all notifications as read
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Success		200	{object}	object
//	@Failure		500	"Internal server error"
//	@Router			/notifications/mark-all-read [put]
func (server *Server) markAllNotificationsRead(c *gin.Context) {
	if err := server.notificationService.MarkAllRead(c, server.recipientScope(c)); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse("all notifications marked as read"))
}

type notificationHistoryRequest struct {
	Page       int32  `form:"page,default=1"`
	Limit      int32  `form:"limit,default=20"`
	Type       string `form:"type"`
	DateFrom   string `form:"dateFrom"`
	DateTo     string `form:"dateTo"`
	ReadStatus string `form:"readStatus"`
}

//	@Summary		List notification history with statistics
//	@Description	Filtered listing plus aggregate counts per coarse notification category
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			limit		query		int		false	"Page size (default 20, max 100)"
//	@Param			type		query		string	false	"Filter by title substring"
//	@Param			dateFrom	query		string	false	"Start of the date range (YYYY-MM-DD or RFC 3339)"
//	@Param			dateTo		query		string	false	"End of the date range (YYYY-MM-DD or RFC 3339)"
//	@Param			readStatus	query		string	false	"read or unread"
//	@Success		200			{object}	notification.HistoryResult
//	@Failure		400			"Invalid filter parameters"
//	@Failure		500			"Internal server error"
//	@Router			/notifications/history [get]
func (server *Server) getNotificationHistory(c *gin.Context) {
	var req notificationHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	dateFrom, err := parseDate(req.DateFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	dateTo, err := parseDate(req.DateTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	readStatus, err := parseReadStatus(req.ReadStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.notificationService.History(c, server.recipientScope(c), notification.HistoryParams{
		Page:       req.Page,
		Limit:      req.Limit,
		TypeFilter: req.Type,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		ReadStatus: readStatus,
	})
	if err != nil {
		if errors.Is(err, notification.ErrValidation) {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}

		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

//	@Summary		Poll recent notifications
//	@Description	Incremental feed: returns notifications created strictly after the since cursor
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			since	query		int		false	"Cursor as epoch milliseconds (default 0)"
//	@Success		200		{object}	object	"items, count and the echoed since value"
//	@Failure		400		"Invalid since value"
//	@Router			/notifications/recent [get]
func (server *Server) getRecentNotifications(c *gin.Context) {
	sinceParam := c.DefaultQuery("since", "0")
	sinceMs, err := strconv.ParseInt(sinceParam, 10, 64)
	if err != nil || sinceMs < 0 {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid since value %q, expected epoch milliseconds", sinceParam)))
		return
	}

	result, err := server.notificationService.RecentSince(c, server.recipientScope(c), time.UnixMilli(sinceMs))
	if err != nil {
		// This endpoint is polled every few seconds by every connected
		// client. A transient store failure answers with an empty batch
		// instead of feeding an error storm; the client keeps its cursor
		// and picks the items up on the next poll.
		log.Error().Err(err).Msg("failed to poll recent notifications")
		result = notification.RecentResult{Items: []db.Notification{}}
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"items": result.Items,
		"count": result.Count,
		"since": sinceMs,
	}))
}

//	@Summary		Stream notifications via Server-Sent Events
//	@Description	Establishes an SSE connection that receives the recipient's realtime notification events
//	@Tags			notifications
//	@Produce		text/event-stream
//	@Security		accessToken
//	@Success		200	{string}	string	"Event stream with format: 'event: {eventType}\ndata: {jsonData}'"
//	@Router			/notifications/stream [get]
func (server *Server) streamNotifications(c *gin.Context) {
	scope := server.recipientScope(c)
	topic := event.RecipientTopic(scope.RecipientID, string(scope.Role))

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	clientChan := make(chan event.Event, 8)
	server.eventSender.Register(topic, clientChan)
	defer server.eventSender.Unregister(topic, clientChan)

	for {
		select {
		case ev := <-clientChan:
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

type createAnnouncementRequest struct {
	RecipientID   string `json:"recipient_id" binding:"required"`
	RecipientRole string `json:"recipient_role" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

//	@Summary		Send a platform announcement
//	@Description	Enqueues an asynchronous notification dispatch to the given recipient scope
//	@Tags			moderator
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createAnnouncementRequest	true	"Announcement"
//	@Success		202		{object}	object
//	@Failure		400		"Invalid request body"
//	@Failure		403		"Requires moderator role"
//	@Failure		500		"Internal server error"
//	@Router			/mod/notifications [post]
func (server *Server) createAnnouncement(c *gin.Context) {
	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	role := db.UserRole(req.RecipientRole)
	if role != db.UserRoleUser && role != db.UserRoleProvider {
		c.JSON(http.StatusBadRequest, errorResponse(ErrInvalidRecipientRole))
		return
	}

	err := server.taskDistributor.DistributeTaskDispatchNotification(c, &worker.PayloadDispatchNotification{
		RecipientID:   req.RecipientID,
		RecipientRole: role,
		Title:         req.Title,
		Message:       req.Message,
	}, asynq.MaxRetry(10), asynq.Queue(worker.QueueDefault))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusAccepted, messageResponse("notification dispatch enqueued"))
}
