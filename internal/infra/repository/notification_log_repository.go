package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medremind/reminder-engine/internal/domain"
)

const (
	logEventsKeyPrefix = "remind:log:events:" // remind:log:events:<userID>:<dateKey> -> list of events
	logMetaKeyPrefix   = "remind:log:meta:"   // remind:log:meta:<userID>:<dateKey> -> day name
	dedupKeyPrefix     = "remind:dedup:"      // remind:dedup:<userID>:<dateKey> -> set of event keys

	// Dedup sets only need to outlive re-runs of the same day, including a
	// cross-midnight re-run. The log itself is kept indefinitely.
	dedupTTL = 48 * time.Hour
)

type notificationLogRepository struct {
	client *redis.Client
}

func NewNotificationLogRepository(client *redis.Client) domain.NotificationLogRepository {
	return &notificationLogRepository{
		client: client,
	}
}

func (r *notificationLogRepository) UpsertAppend(ctx context.Context, userID, dateKey, dayName string, event domain.ReminderEvent) (bool, error) {
	if userID == "" {
		return false, domain.ErrUserIDRequired
	}

	dedupKey := dedupKeyPrefix + userID + ":" + dateKey

	added, err := r.client.SAdd(ctx, dedupKey, event.Key(userID, dateKey)).Result()
	if err != nil {
		return false, err
	}
	if added == 0 {
		return true, nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return false, ErrInvalidLogData
	}

	pipe := r.client.TxPipeline()
	pipe.Expire(ctx, dedupKey, dedupTTL)
	pipe.RPush(ctx, logEventsKeyPrefix+userID+":"+dateKey, data)
	pipe.Set(ctx, logMetaKeyPrefix+userID+":"+dateKey, dayName, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		// Release the dedup slot so a retry is not mistaken for a duplicate.
		r.client.SRem(ctx, dedupKey, event.Key(userID, dateKey))
		return false, err
	}

	return false, nil
}

func (r *notificationLogRepository) GetLog(ctx context.Context, userID, dateKey string) (*domain.NotificationLog, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	items, err := r.client.LRange(ctx, logEventsKeyPrefix+userID+":"+dateKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotificationLogNotFound
	}

	events := make([]domain.ReminderEvent, 0, len(items))
	for _, item := range items {
		var event domain.ReminderEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			return nil, ErrInvalidLogData
		}
		events = append(events, event)
	}

	dayName, err := r.client.Get(ctx, logMetaKeyPrefix+userID+":"+dateKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return nil, err
		}
		if date, perr := domain.ParseDateKey(dateKey); perr == nil {
			dayName = domain.WeekdayOf(date).DayName()
		}
	}

	return &domain.NotificationLog{
		UserID:        userID,
		Date:          dateKey,
		DayName:       dayName,
		Notifications: events,
	}, nil
}
