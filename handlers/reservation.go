package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"parklot/models"
	"parklot/services/reservation"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// statusForCode maps the stable error codes to HTTP statuses. The body's
// code field is the contract; the status is transport courtesy.
func statusForCode(code string) int {
	switch code {
	case reservation.CodeValidationError:
		return http.StatusBadRequest
	case reservation.CodeUnauthorized:
		return http.StatusUnauthorized
	case reservation.CodeNotFound:
		return http.StatusNotFound
	case reservation.CodeConflict, reservation.CodeAlreadyCanceled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders any service failure as the failure envelope.
func respondError(c *gin.Context, err error) {
	if resErr, ok := reservation.AsError(err); ok {
		c.JSON(statusForCode(resErr.Code), models.FailResponse(resErr.Code, resErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError,
		models.FailResponse(reservation.CodeInternal, "Internal error"))
}

// ReservationHandler serves the public reservation endpoints.
type ReservationHandler struct {
	Svc      reservation.ReservationService
	Location *time.Location
	Logger   *zap.Logger
	cache    *availabilityCache
}

// NewReservationHandler wires the public endpoints. cacheClient may be nil
// (or cacheTTL zero) to disable availability caching.
func NewReservationHandler(svc reservation.ReservationService, loc *time.Location, logger *zap.Logger, cacheClient *redis.Client, cacheTTL time.Duration) *ReservationHandler {
	return &ReservationHandler{
		Svc:      svc,
		Location: loc,
		Logger:   logger,
		cache: &availabilityCache{
			Client: cacheClient,
			TTL:    cacheTTL,
			Loc:    loc,
			Logger: logger,
		},
	}
}

// Availability returns the slot registry plus every record intersecting the
// requested calendar day.
func (h *ReservationHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().In(h.Location).Format("2006-01-02")
	}

	if body := h.cache.Get(c.Request.Context(), date); body != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	result, err := h.Svc.Availability(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := models.OKResponse(models.AvailabilityResponse{
		Date:         result.Date,
		Slots:        result.Slots,
		Reservations: models.ReservationViews(result.Records, h.Location),
	})
	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		h.Logger.Error("failed to marshal availability response", zap.Error(marshalErr))
		respondError(c, marshalErr)
		return
	}
	h.cache.Set(c.Request.Context(), date, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Create admits a new user reservation.
func (h *ReservationHandler) Create(c *gin.Context) {
	var input models.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest,
			models.FailResponse(reservation.CodeValidationError, "Invalid request body"))
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("reservation created",
		zap.String("id", rec.ID),
		zap.Int("slotId", rec.SlotID))
	h.cache.Invalidate(c.Request.Context(), rec.StartAt, rec.EndAt)
	c.JSON(http.StatusOK, models.OKResponse(gin.H{"id": rec.ID}))
}

// Cancel moves a reservation to CANCELED by id.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	var input models.CancelReservationInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		c.JSON(http.StatusBadRequest,
			models.FailResponse(reservation.CodeValidationError, "id is required"))
		return
	}

	rec, err := h.Svc.Cancel(c.Request.Context(), input.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("reservation canceled", zap.String("id", rec.ID))
	h.cache.Invalidate(c.Request.Context(), rec.StartAt, rec.EndAt)
	c.JSON(http.StatusOK, models.OKResponse(gin.H{"id": rec.ID, "status": models.StatusCanceled}))
}
