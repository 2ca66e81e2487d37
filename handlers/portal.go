package handlers

import (
	"errors"
	"net/http"

	"tutorhq/services/portal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// portalToken reads the student's credential from the X-Portal-Token header.
func portalToken(c *gin.Context) string {
	return c.GetHeader("X-Portal-Token")
}

// PortalMeHandler resolves the portal token to its student.
func (h *HandlerBundle) PortalMeHandler(c *gin.Context) {
	student, err := h.PortalSvc.ResolveToken(portalToken(c))
	if err != nil {
		h.writePortalError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// PortalListFilesHandler returns the student's shared files.
func (h *HandlerBundle) PortalListFilesHandler(c *gin.Context) {
	files, err := h.PortalSvc.ListFiles(portalToken(c))
	if err != nil {
		h.writePortalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// PortalUploadFileHandler stores a file uploaded by the student.
func (h *HandlerBundle) PortalUploadFileHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	rec, err := h.PortalSvc.UploadFileAsStudent(c.Request.Context(), portalToken(c),
		file, fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.writePortalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// PortalFileURLHandler resolves a download URL for one shared file.
func (h *HandlerBundle) PortalFileURLHandler(c *gin.Context) {
	url, err := h.PortalSvc.FileDownloadURL(portalToken(c), c.Param("fileId"))
	if err != nil {
		h.writePortalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// PortalListHomeworkHandler returns the student's assignments.
func (h *HandlerBundle) PortalListHomeworkHandler(c *gin.Context) {
	hw, err := h.PortalSvc.ListHomework(portalToken(c))
	if err != nil {
		h.writePortalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"homework": hw})
}

// PortalSubmitHomeworkHandler uploads the student's answer.
func (h *HandlerBundle) PortalSubmitHomeworkHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	sub, err := h.PortalSvc.SubmitHomework(c.Request.Context(), portalToken(c),
		c.Param("homeworkId"), file, fileHeader.Filename)
	if err != nil {
		h.writePortalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *HandlerBundle) writePortalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portal.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid portal token"})
	case errors.Is(err, portal.ErrFileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
	case errors.Is(err, portal.ErrHomeworkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
	default:
		getLogger(c).Error("Portal request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}
