package portal

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	studentRepo "tutorhq/database/repository/student"
	"tutorhq/models"

	"github.com/google/uuid"
)

// Errors surfaced to handlers.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrInvalidToken     = errors.New("invalid portal token")
	ErrHomeworkNotFound = errors.New("homework not found")
	ErrFileNotFound     = errors.New("file not found")
)

// newAccessToken returns a 32-hex-char portal credential.
func newAccessToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// AddStudent creates a roster entry with a fresh portal token.
func (s *DefaultPortalService) AddStudent(tutorID string, req StudentRequest) (*models.Student, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("student name is required")
	}
	token, err := newAccessToken()
	if err != nil {
		return nil, err
	}
	student := &models.Student{
		ID:          uuid.New().String(),
		TutorID:     tutorID,
		Name:        req.Name,
		Email:       req.Email,
		AccessToken: token,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(student); err != nil {
		return nil, fmt.Errorf("failed to add student: %w", err)
	}
	return student, nil
}

// ListStudents returns the tutor's roster.
func (s *DefaultPortalService) ListStudents(tutorID string) ([]models.Student, error) {
	students, err := s.Repo.ListByTutor(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// RemoveStudent deletes the roster entry and everything hanging off it.
func (s *DefaultPortalService) RemoveStudent(tutorID, studentID string) error {
	if err := s.Repo.Delete(studentID, tutorID); err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("failed to remove student: %w", err)
	}
	return nil
}

// ResolveToken returns the student owning a portal token.
func (s *DefaultPortalService) ResolveToken(token string) (*models.Student, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	student, err := s.Repo.GetByAccessToken(token)
	if err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve portal token: %w", err)
	}
	return student, nil
}
