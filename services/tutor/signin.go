package tutor

import (
	"errors"
	"fmt"

	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies the password and issues a fresh token. Any
// previously issued token is invalidated by the new hash.
func (s *DefaultTutorService) Authenticate(email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch tutor", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(rec)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: rec.ID, Token: token, Name: rec.Name, Email: rec.Email}, nil
}

// RevokeAuthToken signs the tutor out everywhere by clearing the stored
// token hash and its cache entry.
func (s *DefaultTutorService) RevokeAuthToken(tutorID string) error {
	if err := s.Repo.SetTokenHash(tutorID, ""); err != nil {
		if errors.Is(err, tutorRepo.ErrNotFound) {
			return ErrTutorNotFound
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.DropCachedAuthToken(tutorID)
	return nil
}
