package models

import (
	"time"
)

// Favorite marks an external recipe as liked by a user. The recipe id comes
// from the recipe API and is not validated locally. The composite primary key
// is what makes the toggle operation race-safe: concurrent inserts for the
// same pair serialize on the constraint.
type Favorite struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	RecipeID  int       `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
