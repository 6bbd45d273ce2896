package handlers

import (
	"net/http"
	"time"

	"parklot/models"
	"parklot/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin endpoints. Authorization happens inside the
// service, before any validation, so bad keys leak nothing about payloads.
type AdminHandler struct {
	Svc      reservation.ReservationService
	Location *time.Location
	Logger   *zap.Logger
	cache    *availabilityCache
}

// NewAdminHandler wires the admin endpoints, sharing the public handler's
// availability cache so blocks invalidate it too.
func NewAdminHandler(svc reservation.ReservationService, public *ReservationHandler, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Svc:      svc,
		Location: public.Location,
		Logger:   logger,
		cache:    public.cache,
	}
}

// List returns every record (any status) in the inclusive day range, for
// audit purposes.
func (h *AdminHandler) List(c *gin.Context) {
	dateFrom := c.Query("dateFrom")
	dateTo := c.Query("dateTo")
	adminKey := c.Query("adminKey")

	records, err := h.Svc.AdminList(c.Request.Context(), dateFrom, dateTo, adminKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OKResponse(models.AdminListResponse{
		Items: models.ReservationViews(records, h.Location),
	}))
}

// Block creates an admin unavailability interval on a slot.
func (h *AdminHandler) Block(c *gin.Context) {
	var input models.BlockSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest,
			models.FailResponse(reservation.CodeValidationError, "Invalid request body"))
		return
	}

	rec, err := h.Svc.AdminBlock(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("slot blocked",
		zap.String("id", rec.ID),
		zap.Int("slotId", rec.SlotID))
	h.cache.Invalidate(c.Request.Context(), rec.StartAt, rec.EndAt)
	c.JSON(http.StatusOK, models.OKResponse(gin.H{"id": rec.ID, "status": models.StatusBlocked}))
}
