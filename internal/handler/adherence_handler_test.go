package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/medremind/reminder-engine/internal/domain"
	"github.com/medremind/reminder-engine/internal/service/adherence"
)

func newAdherenceRouter(medRepo domain.MedicationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAdherenceHandler(adherence.NewService(medRepo, nil))
	router.GET("/api/v1/users/:user_id/streak", h.HandleStreak)
	router.GET("/api/v1/users/:user_id/adherence/stats", h.HandleStats)
	return router
}

func medsWithHistory(records []domain.AdherenceRecord) []domain.Medication {
	return []domain.Medication{
		{
			ID:               "med-001",
			UserID:           "user-001",
			Name:             "Amoxicillin",
			AdherenceHistory: records,
		},
	}
}

func TestHandleStreakSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	medRepo := domain.NewMockMedicationRepository(ctrl)

	now := time.Now().UTC()
	medRepo.EXPECT().
		FindByUser(gomock.Any(), "user-001").
		Return(medsWithHistory([]domain.AdherenceRecord{
			{Date: now, Status: domain.StatusTaken},
			{Date: now.Add(-24 * time.Hour), Status: domain.StatusTaken},
		}), nil)

	router := newAdherenceRouter(medRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-001/streak", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp streakResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.UserID != "user-001" {
		t.Errorf("expected userId user-001, got %s", resp.UserID)
	}
	if resp.StreakDays != 2 {
		t.Errorf("expected 2 streak days, got %d", resp.StreakDays)
	}
}

func TestHandleStreakServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	medRepo := domain.NewMockMedicationRepository(ctrl)

	medRepo.EXPECT().
		FindByUser(gomock.Any(), "user-001").
		Return(nil, errors.New("connection refused"))

	router := newAdherenceRouter(medRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-001/streak", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestHandleStatsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	medRepo := domain.NewMockMedicationRepository(ctrl)

	doseAt := time.Now().UTC().Add(-time.Minute)
	medRepo.EXPECT().
		FindByUser(gomock.Any(), "user-001").
		Return(medsWithHistory([]domain.AdherenceRecord{
			{Date: doseAt, Status: domain.StatusTaken},
			{Date: doseAt, Status: domain.StatusTaken},
		}), nil)

	router := newAdherenceRouter(medRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-001/adherence/stats?days=7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var snapshot domain.AdherenceSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if snapshot.TotalDays != 1 {
		t.Errorf("expected 1 total day, got %d", snapshot.TotalDays)
	}
	if snapshot.TakenDoses != 2 || snapshot.TotalDoses != 2 {
		t.Errorf("unexpected dose counts: %+v", snapshot)
	}
	if snapshot.PerfectDays != 1 {
		t.Errorf("expected 1 perfect day, got %d", snapshot.PerfectDays)
	}
	if snapshot.AverageAdherencePercent != 100 {
		t.Errorf("expected 100 percent average, got %d", snapshot.AverageAdherencePercent)
	}
}

func TestHandleStatsInvalidDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	medRepo := domain.NewMockMedicationRepository(ctrl)

	router := newAdherenceRouter(medRepo)

	tests := []struct {
		name string
		days string
	}{
		{name: "not a number", days: "week"},
		{name: "zero", days: "0"},
		{name: "negative", days: "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-001/adherence/stats?days="+tt.days, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}
