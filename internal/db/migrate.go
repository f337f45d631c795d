package db

import (
	"helpcenter-backend/internal/audit"
	"helpcenter-backend/internal/user"

	"github.com/rs/zerolog/log"
)

// Migrate runs database migrations
func Migrate() {
	err := AppDb.AutoMigrate(
		&user.User{},
		&audit.Entry{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("Database schema migrated successfully")
}

// SeedData seeds the database with initial data (for development only)
func SeedData() {
	// Create the head admin if it doesn't exist
	userRepo := user.NewRepository(AppDb)

	adminUser := &user.User{
		Name:     "JohnDoe",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     user.RoleHeadAdmin,
		IsActive: true,
	}

	_, err := userRepo.FindByEmail(adminUser.Email)
	if err != nil {
		userService := user.NewService(userRepo)
		// Admin doesn't exist, create it
		if err := userService.Register(adminUser); err != nil {
			log.Error().Err(err).Msg("Error creating seed admin")
		} else {
			log.Info().Str("email", adminUser.Email).Msg("Created seed admin")
		}
	} else {
		log.Info().Str("email", adminUser.Email).Msg("Seed admin already exists")
	}
}
