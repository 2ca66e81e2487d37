package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	studentRepo "tutorhq/database/repository/student"
	"tutorhq/models"

	"github.com/google/uuid"
)

// AssignHomework creates an assignment for one student.
func (s *DefaultPortalService) AssignHomework(tutorID, studentID string, req HomeworkRequest) (*models.Homework, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("homework title is required")
	}
	student, err := s.Repo.GetByID(studentID, tutorID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	hw := &models.Homework{
		ID:           uuid.New().String(),
		TutorID:      tutorID,
		StudentID:    student.ID,
		Title:        req.Title,
		Instructions: req.Instructions,
		DueDate:      req.DueDate,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.AddHomework(hw); err != nil {
		return nil, fmt.Errorf("failed to assign homework: %w", err)
	}
	return hw, nil
}

// DeleteHomework removes an assignment.
func (s *DefaultPortalService) DeleteHomework(tutorID, homeworkID string) error {
	if err := s.Repo.DeleteHomework(homeworkID, tutorID); err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return ErrHomeworkNotFound
		}
		return fmt.Errorf("failed to delete homework: %w", err)
	}
	return nil
}

// ListHomework returns the student's assignments.
func (s *DefaultPortalService) ListHomework(token string) ([]models.Homework, error) {
	student, err := s.ResolveToken(token)
	if err != nil {
		return nil, err
	}
	hw, err := s.Repo.ListHomework(student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list homework: %w", err)
	}
	return hw, nil
}

// SubmitHomework uploads the student's answer and records the submission.
func (s *DefaultPortalService) SubmitHomework(ctx context.Context, token, homeworkID string, file io.Reader, filename string) (*models.HomeworkSubmission, error) {
	student, err := s.ResolveToken(token)
	if err != nil {
		return nil, err
	}
	hw, err := s.Repo.GetHomework(homeworkID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return nil, ErrHomeworkNotFound
		}
		return nil, fmt.Errorf("failed to load homework: %w", err)
	}
	if hw.StudentID != student.ID {
		return nil, ErrHomeworkNotFound
	}

	folder := fmt.Sprintf("submissions/%s", homeworkID)
	storageID, _, err := s.Storage.UploadFile(ctx, file, folder, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	sub := &models.HomeworkSubmission{
		ID:          uuid.New().String(),
		HomeworkID:  homeworkID,
		StudentID:   student.ID,
		StorageID:   storageID,
		Filename:    filename,
		SubmittedAt: time.Now(),
	}
	if err := s.Repo.AddSubmission(sub); err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}
	return sub, nil
}

// ListSubmissions returns submissions for an assignment the tutor owns.
func (s *DefaultPortalService) ListSubmissions(tutorID, homeworkID string) ([]models.HomeworkSubmission, error) {
	hw, err := s.Repo.GetHomework(homeworkID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return nil, ErrHomeworkNotFound
		}
		return nil, fmt.Errorf("failed to load homework: %w", err)
	}
	if hw.TutorID != tutorID {
		return nil, ErrHomeworkNotFound
	}
	subs, err := s.Repo.ListSubmissions(homeworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}
