package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medremind/reminder-engine/internal/domain"
	"github.com/medremind/reminder-engine/internal/service/adherence"
)

const defaultStatsWindowDays = 30

type AdherenceHandler struct {
	adherenceService *adherence.Service
}

func NewAdherenceHandler(adherenceService *adherence.Service) *AdherenceHandler {
	return &AdherenceHandler{
		adherenceService: adherenceService,
	}
}

type streakResponse struct {
	UserID     string `json:"userId"`
	StreakDays int    `json:"streakDays"`
}

func (h *AdherenceHandler) HandleStreak(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	streak, err := h.adherenceService.Streak(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserIDRequired) {
			respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
			return
		}
		slog.ErrorContext(ctx, "streak query failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, streakResponse{
		UserID:     userID,
		StreakDays: streak,
	})
}

func (h *AdherenceHandler) HandleStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	windowDays := defaultStatsWindowDays
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 {
			respondError(c, http.StatusBadRequest, "validation_error", "days must be a positive integer")
			return
		}
		windowDays = parsed
	}

	snapshot, err := h.adherenceService.Stats(ctx, userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrUserIDRequired) {
			respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
			return
		}
		slog.ErrorContext(ctx, "stats query failed",
			slog.String("user_id", userID),
			slog.Int("window_days", windowDays),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
