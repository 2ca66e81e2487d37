package handlers

import (
	"errors"
	"net/http"

	"tutorhq/services/site"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SaveSiteHandler creates or updates the tutor's mini-site.
func (h *HandlerBundle) SaveSiteHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req site.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.SiteSvc.Save(tutorID, req)
	if err != nil {
		getLogger(c).Error("Failed to save site", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save site"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetSiteHandler returns the tutor's own site, published or not.
func (h *HandlerBundle) GetSiteHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	s, err := h.SiteSvc.Get(tutorID)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch site"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// PublishSiteHandler toggles public visibility.
func (h *HandlerBundle) PublishSiteHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req struct {
		Published *bool `json:"published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.SiteSvc.SetPublished(tutorID, *req.Published); err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update publish state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"published": *req.Published})
}
