package services

import (
	"errors"

	"gorm.io/gorm"

	"taskhub/auth"
	"taskhub/models"
	"taskhub/repositories"
)

// The UserService interface covers self-service profile operations. Every
// method operates on the caller's own account only.
type UserService interface {
	GetSelf(caller auth.Identity) (*models.User, error)
	ChangePassword(caller auth.Identity, input *PasswordChangeInput) error
	ChangePhoneNumber(caller auth.Identity, phoneNumber string) error
}

type PasswordChangeInput struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type userService struct {
	users repositories.UserRepository
}

var _ UserService = (*userService)(nil)

// NewUserService creates a new UserService instance.
func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetSelf(caller auth.Identity) (*models.User, error) {
	user, err := s.users.FindByID(caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword re-verifies the current password before storing the new
// digest. On mismatch the stored digest is left untouched.
func (s *userService) ChangePassword(caller auth.Identity, input *PasswordChangeInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	user, err := s.GetSelf(caller)
	if err != nil {
		return err
	}

	if !auth.VerifyPassword(input.Password, user.HashedPassword) {
		return &AuthError{Message: "Incorrect password."}
	}

	digest, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.HashedPassword = digest
	return s.users.Update(user)
}

// ChangePhoneNumber overwrites the stored number unconditionally. No format
// validation happens here, matching the existing contract.
func (s *userService) ChangePhoneNumber(caller auth.Identity, phoneNumber string) error {
	user, err := s.GetSelf(caller)
	if err != nil {
		return err
	}
	user.PhoneNumber = phoneNumber
	return s.users.Update(user)
}
