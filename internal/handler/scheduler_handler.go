package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medremind/reminder-engine/internal/service/scheduler"
)

type SchedulerHandler struct {
	schedulerService *scheduler.Service
}

func NewSchedulerHandler(schedulerService *scheduler.Service) *SchedulerHandler {
	return &SchedulerHandler{
		schedulerService: schedulerService,
	}
}

type schedulerRunRequest struct {
	UserID string `json:"user_id"`
}

type cancelDayRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
}

type cancelDayResponse struct {
	UserID         string `json:"userId"`
	Date           string `json:"date"`
	CancelledCount int    `json:"cancelledCount"`
}

// HandleSchedulerRun plans and arms the reminders of one user for a day.
// The optional day query parameter (2006-01-02 or RFC3339) substitutes a
// virtual day for load tests and replays.
func (h *SchedulerHandler) HandleSchedulerRun(c *gin.Context) {
	ctx := c.Request.Context()

	var req schedulerRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.UserID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}

	var day time.Time
	if dayStr := c.Query("day"); dayStr != "" {
		parsed, err := parseDay(dayStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid day format, expected 2006-01-02 or RFC3339")
			return
		}
		day = parsed
		slog.InfoContext(ctx, "using virtual day",
			slog.Time("virtual_day", day),
		)
	}

	result, err := h.schedulerService.Run(ctx, req.UserID, day)
	if err != nil {
		slog.ErrorContext(ctx, "scheduler run failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleCancelDay drops a user's pending reminder timers for one day without
// touching the notification log.
func (h *SchedulerHandler) HandleCancelDay(c *gin.Context) {
	ctx := c.Request.Context()

	var req cancelDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.UserID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid date format, expected 2006-01-02")
		return
	}

	cancelled := h.schedulerService.CancelDay(ctx, req.UserID, req.Date)

	c.JSON(http.StatusOK, cancelDayResponse{
		UserID:         req.UserID,
		Date:           req.Date,
		CancelledCount: cancelled,
	})
}

func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
