package config

import (
	"log"
	"time"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser seeds the super admin account on first boot.
func EnsureAdminUser(userRepo repository.UserRepository, adminEmail, adminPass string) error {
	user, err := userRepo.GetUserByEmail(adminEmail)
	if err == nil && user != nil {
		log.Println("Admin user already exists")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:               primitive.NewObjectID(),
		FullName:         "Admin User",
		Email:            adminEmail,
		Password:         string(hashedPassword),
		Role:             models.RoleSuperAdmin,
		Company:          "WCIB",
		Status:           models.UserStatusActive,
		KYCStatus:        models.KYCVerified,
		RegistrationDate: time.Now().Format(time.RFC3339),
		CreatedBy:        "system",
	}

	if err := userRepo.SaveUser(admin); err != nil {
		return err
	}

	log.Println("Default admin user created")
	return nil
}
