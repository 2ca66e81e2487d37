package handlers

import (
	"errors"
	"net/http"

	"tutorhq/services/portal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddStudentHandler creates a roster entry and returns its portal token.
func (h *HandlerBundle) AddStudentHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req portal.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	student, err := h.PortalSvc.AddStudent(tutorID, req)
	if err != nil {
		getLogger(c).Error("Failed to add student", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add student"})
		return
	}
	c.JSON(http.StatusCreated, student)
}

// ListStudentsHandler returns the tutor's roster.
func (h *HandlerBundle) ListStudentsHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	students, err := h.PortalSvc.ListStudents(tutorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list students"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// RemoveStudentHandler deletes the roster entry and its files, homework
// and submissions.
func (h *HandlerBundle) RemoveStudentHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	if err := h.PortalSvc.RemoveStudent(tutorID, c.Param("id")); err != nil {
		if errors.Is(err, portal.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove student"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student removed"})
}

// UploadStudentFileHandler stores a file the tutor shares with a student.
func (h *HandlerBundle) UploadStudentFileHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	studentID := c.Param("id")

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

	rec, err := h.PortalSvc.UploadFileForStudent(c.Request.Context(), tutorID, studentID,
		file, fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, portal.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		getLogger(c).Error("Failed to upload student file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// DeleteStudentFileHandler removes a shared file.
func (h *HandlerBundle) DeleteStudentFileHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	if err := h.PortalSvc.DeleteFile(c.Request.Context(), tutorID, c.Param("fileId")); err != nil {
		if errors.Is(err, portal.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// AssignHomeworkHandler creates an assignment for one student.
func (h *HandlerBundle) AssignHomeworkHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	var req portal.HomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	hw, err := h.PortalSvc.AssignHomework(tutorID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, portal.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, hw)
}

// DeleteHomeworkHandler removes an assignment.
func (h *HandlerBundle) DeleteHomeworkHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	if err := h.PortalSvc.DeleteHomework(tutorID, c.Param("homeworkId")); err != nil {
		if errors.Is(err, portal.ErrHomeworkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete homework"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "homework deleted"})
}

// ListSubmissionsHandler returns submissions for an assignment.
func (h *HandlerBundle) ListSubmissionsHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	subs, err := h.PortalSvc.ListSubmissions(tutorID, c.Param("homeworkId"))
	if err != nil {
		if errors.Is(err, portal.ErrHomeworkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}
