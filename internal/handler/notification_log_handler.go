package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medremind/reminder-engine/internal/domain"
)

type NotificationLogHandler struct {
	logRepo domain.NotificationLogRepository
}

func NewNotificationLogHandler(logRepo domain.NotificationLogRepository) *NotificationLogHandler {
	return &NotificationLogHandler{
		logRepo: logRepo,
	}
}

// HandleGetLog returns the day's notification log for one user. Days with no
// planned reminders have no log and answer 404.
func (h *NotificationLogHandler) HandleGetLog(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")
	dateKey := c.Param("date")

	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid date format, expected 2006-01-02")
		return
	}

	log, err := h.logRepo.GetLog(ctx, userID, dateKey)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserIDRequired):
			respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
		case errors.Is(err, domain.ErrNotificationLogNotFound):
			respondNotFound(c, "no notification log for this day")
		default:
			slog.ErrorContext(ctx, "failed to read notification log",
				slog.String("user_id", userID),
				slog.String("date", dateKey),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, log)
}
