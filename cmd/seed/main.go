package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodfolio/backend/internal/models"
)

// Seeds a handful of demo accounts and favorites for local development.
func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "postgres://postgres@localhost:5432/food-folio?sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Favorite{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	password := "demopassword"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	demoUsers := []struct {
		firstName string
		lastName  string
		email     string
		favorites []int
	}{
		{"John", "Doe", "john.doe@example.com", []int{715538, 716429}},
		{"Jane", "Smith", "jane.smith@example.com", []int{644387}},
		{"Bob", "Wilson", "bob.wilson@example.com", nil},
	}

	for _, u := range demoUsers {
		user := models.User{
			FirstName:    u.firstName,
			LastName:     u.lastName,
			Email:        u.email,
			PasswordHash: string(hashedPassword),
		}
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
		if result.Error != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, result.Error)
		}
		if result.RowsAffected == 0 {
			log.Printf("User %s already exists, skipping", u.email)
			continue
		}

		for _, recipeID := range u.favorites {
			fav := models.Favorite{UserID: user.ID, RecipeID: recipeID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
				log.Fatalf("Failed to create favorite for %s: %v", u.email, err)
			}
		}

		fmt.Printf("Created %s %s <%s> (password: %s)\n", u.firstName, u.lastName, u.email, password)
	}
}
