package service

import (
	"context"
	"io"

	"github.com/foodfolio/backend/internal/models"
	"github.com/foodfolio/backend/internal/types"
)

// IAuthService defines the interface for account and session operations
type IAuthService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	RevokeToken(ctx context.Context, claims *types.TokenClaims) error
	CurrentUser(ctx context.Context, claims *types.TokenClaims) (*models.User, error)
	IsOwner(claims *types.TokenClaims, userID uint) bool
}

// IProfileService defines the interface for profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, req *types.UpdateProfileRequest) (*models.User, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	Toggle(ctx context.Context, userID uint, recipeID int) (ToggleResult, error)
	Add(ctx context.Context, userID uint, recipeID int) error
	Remove(ctx context.Context, userID uint, recipeID int) error
	IsFavorite(ctx context.Context, userID uint, recipeID int) (bool, error)
	List(ctx context.Context, userID uint) ([]models.Favorite, error)
}

// IImageService defines the interface for profile picture storage
type IImageService interface {
	UploadProfilePicture(ctx context.Context, userID uint, body io.Reader, size int64, contentType string) (string, error)
}

var (
	_ IAuthService     = (*AuthService)(nil)
	_ IProfileService  = (*ProfileService)(nil)
	_ IFavoriteService = (*FavoriteService)(nil)
	_ IImageService    = (*ImageService)(nil)
	_ RecipeAPI        = (*SpoonacularService)(nil)
)
