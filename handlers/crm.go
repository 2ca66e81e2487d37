package handlers

import (
	"errors"
	"net/http"
	"time"

	"tutorhq/services/crm"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateLeadHandler adds a manually entered lead.
func (h *HandlerBundle) CreateLeadHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req crm.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	lead, err := h.CRMSvc.CreateLead(tutorID, req)
	if err != nil {
		getLogger(c).Error("Failed to create lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create lead"})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListLeadsHandler returns the tutor's pipeline.
func (h *HandlerBundle) ListLeadsHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	leads, err := h.CRMSvc.ListLeads(tutorID)
	if err != nil {
		getLogger(c).Error("Failed to list leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// GetLeadHandler returns one lead.
func (h *HandlerBundle) GetLeadHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	lead, err := h.CRMSvc.GetLead(tutorID, c.Param("id"))
	if err != nil {
		if errors.Is(err, crm.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch lead"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateLeadHandler applies a partial update, including stage moves.
func (h *HandlerBundle) UpdateLeadHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req crm.LeadUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	lead, err := h.CRMSvc.UpdateLead(tutorID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, crm.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLeadHandler removes a lead.
func (h *HandlerBundle) DeleteLeadHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	if err := h.CRMSvc.DeleteLead(tutorID, c.Param("id")); err != nil {
		if errors.Is(err, crm.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}

// ScheduleFollowUpHandler sets a follow-up date and queues the reminder.
func (h *HandlerBundle) ScheduleFollowUpHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req struct {
		At time.Time `json:"at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	lead, err := h.CRMSvc.ScheduleFollowUp(tutorID, c.Param("id"), req.At)
	if err != nil {
		if errors.Is(err, crm.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		getLogger(c).Error("Failed to schedule follow-up", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lead)
}
