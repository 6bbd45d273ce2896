package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parklot/models"
	"parklot/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubService returns canned results so handler behavior can be tested
// without a store.
type stubService struct {
	availability *reservation.AvailabilityResult
	record       *models.Reservation
	err          error
}

func (s *stubService) Availability(context.Context, string) (*reservation.AvailabilityResult, error) {
	return s.availability, s.err
}

func (s *stubService) Create(context.Context, models.CreateReservationInput) (*models.Reservation, error) {
	return s.record, s.err
}

func (s *stubService) Cancel(context.Context, string) (*models.Reservation, error) {
	return s.record, s.err
}

func (s *stubService) AdminList(context.Context, string, string, string) ([]models.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Reservation{*s.record}, nil
}

func (s *stubService) AdminBlock(context.Context, models.BlockSlotInput) (*models.Reservation, error) {
	return s.record, s.err
}

func testRouter(svc reservation.ReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jst := time.FixedZone("JST", 9*60*60)
	logger := zap.NewNop()

	r := gin.New()
	public := NewReservationHandler(svc, jst, logger, nil, 0)
	r.GET("/api/availability", public.Availability)
	r.POST("/api/create", public.Create)
	r.POST("/api/cancel", public.Cancel)
	admin := NewAdminHandler(svc, public, logger)
	r.GET("/api/admin/list", admin.List)
	r.POST("/api/admin/block", admin.Block)
	return r
}

func testRecord() *models.Reservation {
	return &models.Reservation{
		ID:        "rsv-1",
		SlotID:    1,
		StartAt:   time.Date(2026, 4, 1, 1, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2026, 4, 1, 1, 30, 0, 0, time.UTC),
		Status:    models.StatusConfirmed,
		Name:      "山田",
		CreatedBy: models.CreatedByUser,
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var envelope models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Failed to decode envelope: %v (body: %s)", err, w.Body.String())
	}
	return envelope
}

func TestCreateHandler_SuccessEnvelope(t *testing.T) {
	router := testRouter(&stubService{record: testRecord()})

	body := `{"slotId":1,"startAt":"2026-04-01T10:00:00+09:00","endAt":"2026-04-01T10:30:00+09:00","name":"山田","contact":"090"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/create", strings.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if !envelope.OK || envelope.Error != nil {
		t.Fatalf("Expected ok envelope, got: %+v", envelope)
	}
	data := envelope.Data.(map[string]interface{})
	if data["id"] != "rsv-1" {
		t.Errorf("Expected id rsv-1, got %v", data["id"])
	}
}

func TestHandlers_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{reservation.CodeValidationError, http.StatusBadRequest},
		{reservation.CodeUnauthorized, http.StatusUnauthorized},
		{reservation.CodeNotFound, http.StatusNotFound},
		{reservation.CodeConflict, http.StatusConflict},
		{reservation.CodeAlreadyCanceled, http.StatusConflict},
		{reservation.CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			router := testRouter(&stubService{err: reservation.NewError(tc.code, "boom")})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/cancel", strings.NewReader(`{"id":"rsv-1"}`))
			router.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d for %s, got %d", tc.status, tc.code, w.Code)
			}
			envelope := decodeEnvelope(t, w)
			if envelope.OK || envelope.Error == nil {
				t.Fatalf("Expected failure envelope, got: %+v", envelope)
			}
			if envelope.Error.Code != tc.code {
				t.Errorf("Expected code %s, got %s", tc.code, envelope.Error.Code)
			}
		})
	}
}

func TestAvailabilityHandler_RendersViews(t *testing.T) {
	router := testRouter(&stubService{availability: &reservation.AvailabilityResult{
		Date:    "2026-04-01",
		Slots:   []models.Slot{{SlotID: 1, Name: "枠1"}},
		Records: []models.Reservation{*testRecord()},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-04-01", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var envelope struct {
		OK   bool                        `json:"ok"`
		Data models.AvailabilityResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if envelope.Data.Date != "2026-04-01" || len(envelope.Data.Slots) != 1 {
		t.Errorf("Unexpected payload: %+v", envelope.Data)
	}
	if len(envelope.Data.Reservations) != 1 || envelope.Data.Reservations[0].StartAt != "2026-04-01T10:00:00+09:00" {
		t.Errorf("Expected JST-rendered reservation, got: %+v", envelope.Data.Reservations)
	}
}

func TestCancelHandler_RequiresID(t *testing.T) {
	router := testRouter(&stubService{record: testRecord()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cancel", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.Error == nil || envelope.Error.Code != reservation.CodeValidationError {
		t.Errorf("Expected VALIDATION_ERROR, got: %+v", envelope.Error)
	}
}
