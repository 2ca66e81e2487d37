package handlers

import (
	"errors"
	"net/http"

	"tutorhq/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateGrowthPlanHandler runs the model and replaces the stored plan.
func (h *HandlerBundle) GenerateGrowthPlanHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	plan, err := h.ContentSvc.GenerateGrowthPlan(c.Request.Context(), tutorID)
	if err != nil {
		h.writeContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetGrowthPlanHandler returns the stored plan.
func (h *HandlerBundle) GetGrowthPlanHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	plan, err := h.ContentSvc.GetGrowthPlan(tutorID)
	if err != nil {
		h.writeContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GenerateAssetHandler runs the model for one asset type.
func (h *HandlerBundle) GenerateAssetHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	assetType := c.Param("type")

	asset, err := h.ContentSvc.GenerateAsset(c.Request.Context(), tutorID, assetType)
	if err != nil {
		h.writeContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// GetAssetHandler returns one stored asset.
func (h *HandlerBundle) GetAssetHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	asset, err := h.ContentSvc.GetAsset(tutorID, c.Param("type"))
	if err != nil {
		h.writeContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// ListAssetsHandler returns everything generated so far.
func (h *HandlerBundle) ListAssetsHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	assets, err := h.ContentSvc.ListAssets(tutorID)
	if err != nil {
		getLogger(c).Error("Failed to list assets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list assets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

func (h *HandlerBundle) writeContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, content.ErrOnboardingIncomplete):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrUnknownAssetType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrContentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("Content request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "content generation failed, please try again"})
	}
}
