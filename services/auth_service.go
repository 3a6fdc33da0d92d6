package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"taskhub/auth"
	"taskhub/models"
	"taskhub/repositories"
)

// The AuthService interface covers login and self-service registration.
type AuthService interface {
	Login(input *LoginInput) (string, error)
	Register(input *RegisterInput) (*models.User, error)
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"omitempty,oneof=admin user"`
	PhoneNumber string `json:"phone_number"`
}

type authService struct {
	users    repositories.UserRepository
	tokenTTL time.Duration
}

var _ AuthService = (*authService)(nil)

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repositories.UserRepository, tokenTTL time.Duration) AuthService {
	return &authService{users: users, tokenTTL: tokenTTL}
}

// Login verifies the credentials and issues a signed token. Every failure
// mode (unknown user, wrong password, deactivated account) produces the same
// generic AuthError so the response never reveals which check failed.
func (s *authService) Login(input *LoginInput) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	user, err := s.users.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &AuthError{Message: "Authentication failed."}
		}
		return "", err
	}

	if !auth.VerifyPassword(input.Password, user.HashedPassword) {
		return "", &AuthError{Message: "Authentication failed."}
	}

	// Deactivated accounts cannot obtain new tokens.
	if !user.IsActive {
		return "", &AuthError{Message: "Authentication failed."}
	}

	return auth.GenerateToken(user, s.tokenTTL)
}

// Register creates a new account. The role defaults to "user" and must be a
// known role when supplied.
func (s *authService) Register(input *RegisterInput) (*models.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(input.Username); err == nil {
		return nil, &ConflictError{Message: "Username already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := models.Role(input.Role)
	if input.Role == "" {
		role = models.RoleUser
	}

	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       input.Username,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: digest,
		Role:           role,
		IsActive:       true,
		PhoneNumber:    input.PhoneNumber,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
