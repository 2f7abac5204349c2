package domain

import "context"

//go:generate mockgen -source=medication_repository.go -destination=medication_repository_mock.go -package=domain

// MedicationRepository is the read surface over the regimen store. The write
// side belongs to the medication-edit flows; Save exists so deployments can
// seed regimens and so integration tests can build fixtures.
type MedicationRepository interface {
	FindActiveForUserAndWeekday(ctx context.Context, userID string, day Weekday) ([]Medication, error)
	FindByUser(ctx context.Context, userID string) ([]Medication, error)
	Save(ctx context.Context, med *Medication) error
	ListUserIDs(ctx context.Context) ([]string, error)
}
