package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	studentRepo "tutorhq/database/repository/student"
	"tutorhq/models"
	"tutorhq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// storeFile uploads the stream and records it against the student.
func (s *DefaultPortalService) storeFile(ctx context.Context, tutorID, studentID, uploadedBy string, file io.Reader, filename string, size int64, mimeType string) (*models.StudentFile, error) {
	folder := fmt.Sprintf("students/%s", studentID)
	storageID, _, err := s.Storage.UploadFile(ctx, file, folder, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	rec := &models.StudentFile{
		ID:         uuid.New().String(),
		TutorID:    tutorID,
		StudentID:  studentID,
		StorageID:  storageID,
		Filename:   filename,
		FileSize:   size,
		MimeType:   mimeType,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.AddFile(rec); err != nil {
		// Orphaned upload; remove it so storage stays consistent.
		if delErr := s.Storage.DeleteFile(ctx, storageID); delErr != nil {
			utils.GetLogger().Warn("storeFile: failed to clean up orphaned upload",
				zap.String("storageID", storageID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to record file: %w", err)
	}
	return rec, nil
}

// UploadFileForStudent stores a file shared by the tutor.
func (s *DefaultPortalService) UploadFileForStudent(ctx context.Context, tutorID, studentID string, file io.Reader, filename string, size int64, mimeType string) (*models.StudentFile, error) {
	student, err := s.Repo.GetByID(studentID, tutorID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	return s.storeFile(ctx, tutorID, student.ID, models.UploadedByTutor, file, filename, size, mimeType)
}

// UploadFileAsStudent stores a file shared by the student through the portal.
func (s *DefaultPortalService) UploadFileAsStudent(ctx context.Context, token string, file io.Reader, filename string, size int64, mimeType string) (*models.StudentFile, error) {
	student, err := s.ResolveToken(token)
	if err != nil {
		return nil, err
	}
	return s.storeFile(ctx, student.TutorID, student.ID, models.UploadedByStudent, file, filename, size, mimeType)
}

// ListFiles returns everything shared with or by the student.
func (s *DefaultPortalService) ListFiles(token string) ([]models.StudentFile, error) {
	student, err := s.ResolveToken(token)
	if err != nil {
		return nil, err
	}
	files, err := s.Repo.ListFiles(student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// DeleteFile removes the record and the stored object.
func (s *DefaultPortalService) DeleteFile(ctx context.Context, tutorID, fileID string) error {
	rec, err := s.Repo.GetFile(fileID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to load file: %w", err)
	}
	if rec.TutorID != tutorID {
		return ErrFileNotFound
	}
	if err := s.Repo.DeleteFile(fileID, tutorID); err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	if err := s.Storage.DeleteFile(ctx, rec.StorageID); err != nil {
		utils.GetLogger().Warn("DeleteFile: stored object not removed",
			zap.String("storageID", rec.StorageID), zap.Error(err))
	}
	return nil
}

// FileDownloadURL resolves a delivery URL for a file the student can see.
func (s *DefaultPortalService) FileDownloadURL(token, fileID string) (string, error) {
	student, err := s.ResolveToken(token)
	if err != nil {
		return "", err
	}
	rec, err := s.Repo.GetFile(fileID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrNotFound) {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("failed to load file: %w", err)
	}
	if rec.StudentID != student.ID {
		return "", ErrFileNotFound
	}
	return s.Storage.GetDownloadURL(rec.StorageID)
}
