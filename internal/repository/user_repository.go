package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Eric-317/StudySync/internal/model"
)

// UserRepository handles account rows.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the account and fills in the generated id. A duplicate
// email surfaces as ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", translate(err))
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user by email: %w", translate(err))
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, translate(err))
	}
	return &user, nil
}

// ListAll returns every account. Used by the daily digest fan-out.
func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdatePassword sets a new password only when the stored one equals
// oldPassword. A mismatch or a missing account returns false, never an
// error; the caller cannot distinguish the two, matching the desktop
// client's contract.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, oldPassword, newPassword string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND password = ?", id, oldPassword).
		Update("password", newPassword)
	if res.Error != nil {
		return false, fmt.Errorf("update password: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// UpdateBirthDate overwrites the birth date; false when no row matched.
func (r *UserRepository) UpdateBirthDate(ctx context.Context, id uint, birthDate string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("birth_date", birthDate)
	if res.Error != nil {
		return false, fmt.Errorf("update birth date: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
