package database

import (
	"backend/internal/model"
	"backend/internal/repository"
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates the schema for every model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Material{},
		&model.Supplier{},
		&model.Supply{},
		&model.Spend{},
		&model.Equipment{},
		&model.Report{},
	)
}

// SeedAdmin creates the bootstrap administrator when the user store is
// empty, so a fresh install can be logged into.
func SeedAdmin(ctx context.Context, users repository.UserRepository, login, password string) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{Login: login, PasswordHash: string(hash), Role: model.RoleAdmin}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.WithField("login", login).Info("bootstrap administrator created")
	return nil
}
