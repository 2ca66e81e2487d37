package studentRepo

import "tutorhq/models"

// StudentRepository defines data access for the student roster, the shared
// file records, and homework with its submissions.
type StudentRepository interface {
	Create(student *models.Student) error
	GetByID(id, tutorID string) (*models.Student, error)
	// GetByAccessToken resolves a portal token to its student. The token is
	// the student's only credential.
	GetByAccessToken(token string) (*models.Student, error)
	ListByTutor(tutorID string) ([]models.Student, error)
	Delete(id, tutorID string) error

	AddFile(file *models.StudentFile) error
	ListFiles(studentID string) ([]models.StudentFile, error)
	GetFile(id string) (*models.StudentFile, error)
	DeleteFile(id, tutorID string) error

	AddHomework(hw *models.Homework) error
	ListHomework(studentID string) ([]models.Homework, error)
	GetHomework(id string) (*models.Homework, error)
	DeleteHomework(id, tutorID string) error

	AddSubmission(sub *models.HomeworkSubmission) error
	ListSubmissions(homeworkID string) ([]models.HomeworkSubmission, error)
}
