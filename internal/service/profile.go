package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/foodfolio/backend/internal/models"
	"github.com/foodfolio/backend/internal/types"
)

// ProfileService handles reads and partial updates of user profiles.
type ProfileService struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db:       db,
		validate: validator.New(),
	}
}

// GetProfile retrieves a user by id
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies only the fields set in req and leaves the rest
// unchanged. An email change goes through the same syntax and uniqueness
// checks as signup.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, req *types.UpdateProfileRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		if *req.FirstName == "" {
			return nil, ErrFirstNameMissing
		}
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.PictureURL != nil {
		updates["picture_url"] = *req.PictureURL
	}
	if req.Email != nil {
		if err := s.validate.Var(*req.Email, "required,email"); err != nil {
			return nil, ErrInvalidEmail
		}
		var existing models.User
		err := s.db.WithContext(ctx).Where("email = ? AND id <> ?", *req.Email, userID).First(&existing).Error
		if err == nil {
			return nil, ErrDuplicateEmail
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check for existing email: %w", err)
		}
		updates["email"] = *req.Email
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateEmail
			}
			return nil, fmt.Errorf("failed to update profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}

	return s.GetProfile(ctx, userID)
}
