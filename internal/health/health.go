package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Status represents the health status of the service or a dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the health check result for a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthStatus represents the overall health status of the service. The
// pending reminder count is informational; a large number after a restart
// means the day has not been re-planned yet.
type HealthStatus struct {
	Status           Status                 `json:"status"`
	Version          string                 `json:"version,omitempty"`
	PendingReminders int                    `json:"pending_reminders"`
	Checks           map[string]CheckResult `json:"checks,omitempty"`
}

// TimerArena is the slice of the dispatcher the checker needs.
type TimerArena interface {
	Pending() int
}

// Checker performs health checks on service dependencies.
type Checker struct {
	redisClient *redis.Client
	timers      TimerArena
	version     string
}

func NewChecker(redisClient *redis.Client, timers TimerArena, version string) *Checker {
	return &Checker{
		redisClient: redisClient,
		timers:      timers,
		version:     version,
	}
}

// Check pings the store and snapshots the timer arena. Redis is the only hard
// dependency; the service is unready without it because both planning and
// log reads go through it.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.timers != nil {
		status.PendingReminders = c.timers.Pending()
	}

	if c.redisClient != nil {
		start := time.Now()
		if err := c.redisClient.Ping(checkCtx).Err(); err != nil {
			status.Status = StatusUnhealthy
			status.Checks["redis"] = CheckResult{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
		} else {
			status.Checks["redis"] = CheckResult{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
		}
	}

	return status
}

// LiveHandler returns a Gin handler for liveness probes.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler returns a Gin handler for readiness probes.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}
