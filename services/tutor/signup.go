package tutor

import (
	"errors"
	"fmt"
	"time"

	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
	"tutorhq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// Register creates a tutor account, hashes the password, and signs the
// tutor in immediately.
func (s *DefaultTutorService) Register(req RegistrationRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, tutorRepo.ErrNotFound) {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	now := time.Now()
	rec := &models.Tutor{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Timezone:     tz,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("Register: failed to create tutor", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueToken(rec)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: rec.ID, Token: token, Name: rec.Name, Email: rec.Email}, nil
}

// issueToken mints a JWT, stores its hash on the account and in the auth
// cache, and returns the raw token.
func (s *DefaultTutorService) issueToken(rec *models.Tutor) (string, error) {
	token, err := utils.GenerateToken(rec.ID, rec.Email, authTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(rec.ID, hash); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}
	if err := utils.CacheAuthToken(rec.ID, hash, authTokenTTL); err != nil {
		// Cache miss falls back to the account record on the next request.
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}
	return token, nil
}
