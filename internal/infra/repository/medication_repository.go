package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medremind/reminder-engine/internal/domain"
)

const (
	medicationKeyPrefix   = "remind:med:"       // remind:med:<userID>:<medID>
	medicationIndexPrefix = "remind:med:index:" // remind:med:index:<userID> -> set of medIDs
	usersKey              = "remind:users"      // set of userIDs with at least one medication
)

type dosageTimeRecord struct {
	Time         string `json:"time"`
	RemindBefore string `json:"remindBefore,omitempty"`
	RemindAfter  string `json:"remindAfter,omitempty"`
}

type adherenceEntryRecord struct {
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

type medicationRecord struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"userId"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	DosageTimes      []dosageTimeRecord     `json:"dosageTimes"`
	ActiveDays       []string               `json:"activeDays"`
	AdherenceHistory []adherenceEntryRecord `json:"adherenceHistory,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
}

type medicationRepository struct {
	client *redis.Client
}

func NewMedicationRepository(client *redis.Client) domain.MedicationRepository {
	return &medicationRepository{
		client: client,
	}
}

func (r *medicationRepository) Save(ctx context.Context, med *domain.Medication) error {
	if med == nil {
		return ErrInvalidMedicationData
	}
	if err := med.Validate(); err != nil {
		return err
	}

	record := toMedicationRecord(med)

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidMedicationData
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, medicationKeyPrefix+med.UserID+":"+med.ID, data, 0)
	pipe.SAdd(ctx, medicationIndexPrefix+med.UserID, med.ID)
	pipe.SAdd(ctx, usersKey, med.UserID)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *medicationRepository) FindByUser(ctx context.Context, userID string) ([]domain.Medication, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	ids, err := r.client.SMembers(ctx, medicationIndexPrefix+userID).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	meds := make([]domain.Medication, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, medicationKeyPrefix+userID+":"+id).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Stale index entry, the medication itself is gone.
				continue
			}
			return nil, err
		}

		var record medicationRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, ErrInvalidMedicationData
		}

		med, err := fromMedicationRecord(&record)
		if err != nil {
			return nil, err
		}
		meds = append(meds, *med)
	}

	return meds, nil
}

func (r *medicationRepository) FindActiveForUserAndWeekday(ctx context.Context, userID string, day domain.Weekday) ([]domain.Medication, error) {
	meds, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := make([]domain.Medication, 0, len(meds))
	for _, med := range meds {
		if med.ActiveOn(day) {
			active = append(active, med)
		}
	}

	return active, nil
}

func (r *medicationRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, usersKey).Result()
	if err != nil {
		return nil, err
	}

	sort.Strings(ids)
	return ids, nil
}

func toMedicationRecord(med *domain.Medication) *medicationRecord {
	dosageTimes := make([]dosageTimeRecord, 0, len(med.DosageTimes))
	for _, dt := range med.DosageTimes {
		dosageTimes = append(dosageTimes, dosageTimeRecord{
			Time:         dt.Clock,
			RemindBefore: dt.RemindBefore,
			RemindAfter:  dt.RemindAfter,
		})
	}

	activeDays := make([]string, 0, len(med.ActiveDays))
	for _, day := range med.ActiveDays {
		activeDays = append(activeDays, day.String())
	}

	history := make([]adherenceEntryRecord, 0, len(med.AdherenceHistory))
	for _, rec := range med.AdherenceHistory {
		history = append(history, adherenceEntryRecord{
			Date:   rec.Date,
			Status: string(rec.Status),
		})
	}

	return &medicationRecord{
		ID:               med.ID,
		UserID:           med.UserID,
		Name:             med.Name,
		Description:      med.Description,
		DosageTimes:      dosageTimes,
		ActiveDays:       activeDays,
		AdherenceHistory: history,
		CreatedAt:        med.CreatedAt,
	}
}

func fromMedicationRecord(record *medicationRecord) (*domain.Medication, error) {
	dosageTimes := make([]domain.DosageTime, 0, len(record.DosageTimes))
	for _, dt := range record.DosageTimes {
		dosageTimes = append(dosageTimes, domain.DosageTime{
			Clock:        dt.Time,
			RemindBefore: dt.RemindBefore,
			RemindAfter:  dt.RemindAfter,
		})
	}

	activeDays := make([]domain.Weekday, 0, len(record.ActiveDays))
	for _, name := range record.ActiveDays {
		day, err := domain.ParseWeekday(name)
		if err != nil {
			return nil, ErrInvalidMedicationData
		}
		activeDays = append(activeDays, day)
	}

	history := make([]domain.AdherenceRecord, 0, len(record.AdherenceHistory))
	for _, rec := range record.AdherenceHistory {
		history = append(history, domain.AdherenceRecord{
			Date:   rec.Date,
			Status: domain.AdherenceStatus(rec.Status),
		})
	}

	return &domain.Medication{
		ID:               record.ID,
		UserID:           record.UserID,
		Name:             record.Name,
		Description:      record.Description,
		DosageTimes:      dosageTimes,
		ActiveDays:       activeDays,
		AdherenceHistory: history,
		CreatedAt:        record.CreatedAt,
	}, nil
}
