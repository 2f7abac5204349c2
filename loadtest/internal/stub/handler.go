package stub

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medremind/reminder-engine/internal/domain"
)

// Handler is the load-test webhook sink. It receives the engine's outgoing
// notifications, keeps them queryable for assertions, and can seed synthetic
// regimens straight into the engine's store.
type Handler struct {
	storage *SinkStorage
	medRepo domain.MedicationRepository
}

func NewHandler(storage *SinkStorage, medRepo domain.MedicationRepository) *Handler {
	return &Handler{
		storage: storage,
		medRepo: medRepo,
	}
}

// HandleNotify is the webhook target configured via NOTIFIER_WEBHOOK_URL.
func (h *Handler) HandleNotify(c *gin.Context) {
	var n ReceivedNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.Add(n)

	slog.Debug("notification received",
		slog.String("user_id", n.UserID),
		slog.String("type", n.Kind),
		slog.String("title", n.Title),
	)

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func (h *Handler) HandleNotifications(c *gin.Context) {
	var notifications []ReceivedNotification
	if userID := c.Query("user_id"); userID != "" {
		notifications = h.storage.ForUser(userID)
	} else {
		notifications = h.storage.All()
	}

	c.JSON(http.StatusOK, NotificationsResponse{
		Notifications: notifications,
		Count:         len(notifications),
	})
}

func (h *Handler) HandleReset(c *gin.Context) {
	h.storage.Reset()

	slog.Info("sink reset")

	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

// HandleSeed loads synthetic regimens into the engine's medication store.
func (h *Handler) HandleSeed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	allDays := []domain.Weekday{
		domain.Sunday, domain.Monday, domain.Tuesday, domain.Wednesday,
		domain.Thursday, domain.Friday, domain.Saturday,
	}

	seeded := 0
	for _, user := range req.Users {
		clocks := user.DoseClocks
		if len(clocks) == 0 {
			clocks = []string{"09:00"}
		}

		for i := 0; i < user.MedicationCount; i++ {
			dosageTimes := make([]domain.DosageTime, 0, len(clocks))
			for _, clock := range clocks {
				dosageTimes = append(dosageTimes, domain.DosageTime{
					Clock:        clock,
					RemindBefore: user.RemindBefore,
					RemindAfter:  user.RemindAfter,
				})
			}

			med := &domain.Medication{
				ID:          fmt.Sprintf("%s-med-%03d", user.UserID, i),
				UserID:      user.UserID,
				Name:        fmt.Sprintf("Synthetic Medication %03d", i),
				DosageTimes: dosageTimes,
				ActiveDays:  allDays,
				CreatedAt:   time.Now().UTC(),
			}

			if err := h.medRepo.Save(ctx, med); err != nil {
				slog.Error("failed to seed medication",
					slog.String("user_id", user.UserID),
					slog.String("medication_id", med.ID),
					slog.String("error", err.Error()),
				)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			seeded++
		}
	}

	slog.Info("seeded regimens",
		slog.Int("user_count", len(req.Users)),
		slog.Int("medication_count", seeded),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":           "seed complete",
		"user_count":       len(req.Users),
		"medication_count": seeded,
	})
}
