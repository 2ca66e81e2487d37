package handlers

import (
	"errors"
	"net/http"

	"tutorhq/models"
	"tutorhq/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListRulesHandler returns the tutor's weekly availability rules.
func (h *HandlerBundle) ListRulesHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	rules, err := h.SchedulingSvc.ListRules(tutorID)
	if err != nil {
		getLogger(c).Error("Failed to list availability rules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// AddRuleHandler creates a weekly availability rule.
func (h *HandlerBundle) AddRuleHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var rule models.AvailabilityRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.SchedulingSvc.AddRule(tutorID, rule)
	if err != nil {
		var ve *scheduling.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		getLogger(c).Error("Failed to add availability rule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add availability"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteRuleHandler removes one availability rule. Existing bookings are
// not affected.
func (h *HandlerBundle) DeleteRuleHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	ruleID := c.Param("id")

	if err := h.SchedulingSvc.DeleteRule(tutorID, ruleID); err != nil {
		var notFound *scheduling.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
			return
		}
		getLogger(c).Error("Failed to delete availability rule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}

// ListBookingsHandler returns the tutor's bookings for the dashboard.
func (h *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	bookings, err := h.SchedulingSvc.ListBookings(tutorID)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler flips a confirmed booking to cancelled, freeing
// its interval.
func (h *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	bookingID := c.Param("id")

	if err := h.SchedulingSvc.CancelBooking(tutorID, bookingID); err != nil {
		var notFound *scheduling.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		getLogger(c).Error("Failed to cancel booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
