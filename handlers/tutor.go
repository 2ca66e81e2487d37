package handlers

import (
	"errors"
	"net/http"

	"tutorhq/models"
	"tutorhq/services/tutor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterTutorHandler creates a tutor account and returns an auth token.
func (h *HandlerBundle) RegisterTutorHandler(c *gin.Context) {
	logger := getLogger(c)
	var req tutor.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.TutorSvc.Register(req)
	if err != nil {
		if errors.Is(err, tutor.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register tutor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateTutorHandler verifies credentials and returns a fresh token.
func (h *HandlerBundle) AuthenticateTutorHandler(c *gin.Context) {
	logger := getLogger(c)
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.TutorSvc.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, tutor.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to authenticate tutor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeTutorAuthTokenHandler signs the tutor out everywhere.
func (h *HandlerBundle) RevokeTutorAuthTokenHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	if err := h.TutorSvc.RevokeAuthToken(tutorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetTutorProfileHandler returns the authenticated tutor's account.
func (h *HandlerBundle) GetTutorProfileHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	rec, err := h.TutorSvc.GetByID(tutorID)
	if err != nil {
		if errors.Is(err, tutor.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateTutorProfileHandler applies a partial profile update.
func (h *HandlerBundle) UpdateTutorProfileHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req tutor.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rec, err := h.TutorSvc.UpdateProfile(tutorID, req)
	if err != nil {
		if errors.Is(err, tutor.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteTutorHandler removes the account.
func (h *HandlerBundle) DeleteTutorHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	if err := h.TutorSvc.DeleteAccount(tutorID); err != nil {
		if errors.Is(err, tutor.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// SaveOnboardingHandler upserts the onboarding answers.
func (h *HandlerBundle) SaveOnboardingHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var ob models.Onboarding
	if err := c.ShouldBindJSON(&ob); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.TutorSvc.SaveOnboarding(tutorID, ob)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetOnboardingHandler returns the stored onboarding answers.
func (h *HandlerBundle) GetOnboardingHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	ob, err := h.TutorSvc.GetOnboarding(tutorID)
	if err != nil {
		if errors.Is(err, tutor.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "onboarding not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ob)
}
