package portal

import (
	"context"
	"io"
	"time"

	studentRepo "tutorhq/database/repository/student"
	"tutorhq/models"
	"tutorhq/services/storage"
)

// PortalService covers both sides of the student portal: roster and
// homework management for the tutor, and token-gated access for students.
type PortalService interface {
	// Tutor side.
	AddStudent(tutorID string, req StudentRequest) (*models.Student, error)
	ListStudents(tutorID string) ([]models.Student, error)
	RemoveStudent(tutorID, studentID string) error
	UploadFileForStudent(ctx context.Context, tutorID, studentID string, file io.Reader, filename string, size int64, mimeType string) (*models.StudentFile, error)
	DeleteFile(ctx context.Context, tutorID, fileID string) error
	AssignHomework(tutorID, studentID string, req HomeworkRequest) (*models.Homework, error)
	DeleteHomework(tutorID, homeworkID string) error
	ListSubmissions(tutorID, homeworkID string) ([]models.HomeworkSubmission, error)

	// Student side, keyed by access token.
	ResolveToken(token string) (*models.Student, error)
	ListFiles(token string) ([]models.StudentFile, error)
	UploadFileAsStudent(ctx context.Context, token string, file io.Reader, filename string, size int64, mimeType string) (*models.StudentFile, error)
	ListHomework(token string) ([]models.Homework, error)
	SubmitHomework(ctx context.Context, token, homeworkID string, file io.Reader, filename string) (*models.HomeworkSubmission, error)
	FileDownloadURL(token, fileID string) (string, error)
}

// DefaultPortalService is the production implementation.
type DefaultPortalService struct {
	Repo    studentRepo.StudentRepository
	Storage storage.StorageService
}

// StudentRequest carries a roster entry.
type StudentRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// HomeworkRequest carries a new assignment.
type HomeworkRequest struct {
	Title        string     `json:"title" binding:"required"`
	Instructions string     `json:"instructions"`
	DueDate      *time.Time `json:"dueDate"`
}
