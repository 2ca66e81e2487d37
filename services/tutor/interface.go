package tutor

import (
	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/models"
)

// TutorService manages tutor accounts, authentication and onboarding.
type TutorService interface {
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(tutorID string) error

	GetByID(tutorID string) (*models.Tutor, error)
	UpdateProfile(tutorID string, req ProfileUpdateRequest) (*models.Tutor, error)
	DeleteAccount(tutorID string) error

	SaveOnboarding(tutorID string, ob models.Onboarding) (*models.Onboarding, error)
	GetOnboarding(tutorID string) (*models.Onboarding, error)
}

// DefaultTutorService is the production implementation.
type DefaultTutorService struct {
	Repo tutorRepo.TutorRepository
}

// RegistrationRequest carries the signup form.
type RegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Timezone string `json:"timezone"`
}

// ProfileUpdateRequest carries a partial profile update. Empty fields are
// left untouched.
type ProfileUpdateRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Timezone  string `json:"timezone"`
}

// AuthResponse contains the tutor's ID, token, and display details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
