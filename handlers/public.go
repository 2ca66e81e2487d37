package handlers

import (
	"errors"
	"net/http"

	"tutorhq/services/scheduling"
	"tutorhq/services/site"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetPublicSiteHandler serves a published mini-site by slug.
func (h *HandlerBundle) GetPublicSiteHandler(c *gin.Context) {
	slug := c.Param("slug")
	s, err := h.SiteSvc.GetPublic(slug)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
			return
		}
		getLogger(c).Error("Failed to fetch public site", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch site"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ListSlotsHandler returns bookable slots for one date on a tutor's
// public booking page.
func (h *HandlerBundle) ListSlotsHandler(c *gin.Context) {
	slug := c.Param("slug")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (YYYY-MM-DD)"})
		return
	}

	slots, err := h.SchedulingSvc.ListSlotsForDate(slug, date)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateBookingHandler is the public booking intake. Slot conflicts are
// decided by storage, not by the slot list the client saw.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	slug := c.Param("slug")
	var req scheduling.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.TutorSlug = slug

	booking, err := h.SchedulingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// writeSchedulingError maps scheduling errors onto HTTP statuses.
func (h *HandlerBundle) writeSchedulingError(c *gin.Context, err error) {
	var (
		notFound    *scheduling.NotFoundError
		validation  *scheduling.ValidationError
		unavailable *scheduling.SlotUnavailableError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "tutor not found"})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "slot no longer available"})
	default:
		getLogger(c).Error("Scheduling request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}
