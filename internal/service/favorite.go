package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodfolio/backend/internal/models"
)

// ToggleResult reports which way a toggle flipped.
type ToggleResult int

const (
	FavoriteAdded ToggleResult = iota
	FavoriteRemoved
)

func (r ToggleResult) String() string {
	if r == FavoriteAdded {
		return "added"
	}
	return "removed"
}

// FavoriteService owns the user/recipe favorites relation.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Toggle flips the favorite state for (userID, recipeID). The composite
// primary key makes the guarded insert the atomic point: it either takes the
// row or conflicts, so two concurrent toggles for the same pair cannot both
// insert. The delete is keyed the same way and its row count decides whether
// this call actually removed anything; when another toggle got there first
// the loop starts over, so every call performs exactly one effective
// insert or delete.
func (s *FavoriteService) Toggle(ctx context.Context, userID uint, recipeID int) (ToggleResult, error) {
	for {
		fav := models.Favorite{UserID: userID, RecipeID: recipeID}
		res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
		if res.Error != nil {
			return 0, fmt.Errorf("failed to toggle favorite: %w", res.Error)
		}
		if res.RowsAffected == 1 {
			return FavoriteAdded, nil
		}

		del := s.db.WithContext(ctx).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Delete(&models.Favorite{})
		if del.Error != nil {
			return 0, fmt.Errorf("failed to toggle favorite: %w", del.Error)
		}
		if del.RowsAffected >= 1 {
			return FavoriteRemoved, nil
		}
	}
}

// Add marks a recipe as favorited. Adding an existing favorite is a no-op.
func (s *FavoriteService) Add(ctx context.Context, userID uint, recipeID int) error {
	fav := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the favorite for exactly (userID, recipeID). Removing an
// absent favorite is a no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID uint, recipeID int) error {
	if err := s.db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{}).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the user has favorited the recipe.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID uint, recipeID int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// List returns the user's favorites, most recent first.
func (s *FavoriteService) List(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}
