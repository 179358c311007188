package service

import (
	"errors"
	"time"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService interface {
	Register(user *models.User, password string) error
	Authenticate(email, password string) (*models.User, error)
	GetUser(id string) (*models.User, error)
	GetAllUsers(page, limit int64) ([]*models.User, int64, error)
	SetUserStatus(id string, status models.UserStatus) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(user *models.User, password string) error {
	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.ID = primitive.NewObjectID()
	user.Password = string(hashed)
	user.Status = models.UserStatusPending
	user.KYCStatus = models.KYCNotStarted
	user.Balance = 0.0
	user.RegistrationDate = time.Now().Format(time.RFC3339)
	if user.CreatedBy == "" {
		user.CreatedBy = "self-registration"
	}
	return s.userRepo.SaveUser(user)
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = time.Now().Format(time.RFC3339)
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(objID)
}

func (s *userService) GetAllUsers(page, limit int64) ([]*models.User, int64, error) {
	return s.userRepo.GetAllUsers(page, limit)
}

func (s *userService) SetUserStatus(id string, status models.UserStatus) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	user.Status = status
	return s.userRepo.UpdateUser(user)
}
