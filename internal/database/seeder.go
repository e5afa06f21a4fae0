package database

import (
	"errors"

	"hr-portal-backend/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the default admin account if it does not exist yet. The
// admin starts with a zero leave balance since it never applies for leave.
func SeedAdmin(db *gorm.DB) error {
	email := "admin@test.com"

	var existing model.Employee
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logrus.Info("admin already exists, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.Employee{
		Name:         "Admin",
		Email:        email,
		Password:     string(hashed),
		Role:         model.RoleAdmin,
		LeaveBalance: 0,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.Info("admin created successfully")
	return nil
}
