package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eric-317/StudySync/internal/model"
	"github.com/Eric-317/StudySync/internal/repository"
)

// UserService wraps account registration, login and profile updates.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates an account. An email that is already registered yields
// ErrEmailTaken; the id is assigned by the store.
func (s *UserService) Register(ctx context.Context, email, password, birthDate string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	user := model.User{Email: email, Password: password, BirthDate: birthDate}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		// The unique index closes the check-then-insert window.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies the email/password pair. The comparison is plain
// equality over the stored value.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword swaps the password after verifying the old one. A wrong
// old password or unknown account returns false, not an error.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (bool, error) {
	return s.userRepo.UpdatePassword(ctx, userID, oldPassword, newPassword)
}

// UpdateBirthDate sets a new birth date; false when the account is gone.
func (s *UserService) UpdateBirthDate(ctx context.Context, userID uint, birthDate string) (bool, error) {
	return s.userRepo.UpdateBirthDate(ctx, userID, birthDate)
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
