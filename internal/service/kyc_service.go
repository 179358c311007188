package service

import (
	"errors"
	"time"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrKYCAlreadyPending = errors.New("a KYC submission is already under review")

type KYCService interface {
	Submit(user *models.User, documents []string) (*models.KYCSubmission, error)
	Review(submissionID string, approve bool, reviewer, comment string) (*models.KYCSubmission, error)
	GetPending() ([]*models.KYCSubmission, error)
	GetAll() ([]*models.KYCSubmission, error)
}

type kycService struct {
	kycRepo  repository.KYCRepository
	userRepo repository.UserRepository
}

func NewKYCService(kycRepo repository.KYCRepository, userRepo repository.UserRepository) KYCService {
	return &kycService{kycRepo: kycRepo, userRepo: userRepo}
}

func (s *kycService) Submit(user *models.User, documents []string) (*models.KYCSubmission, error) {
	latest, err := s.kycRepo.GetLatestByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.Status == models.KYCReviewPending {
		return nil, ErrKYCAlreadyPending
	}

	sub := &models.KYCSubmission{
		UserID:    user.ID,
		UserName:  user.FullName,
		UserEmail: user.Email,
		Status:    models.KYCReviewPending,
		Documents: documents,
	}
	if err := s.kycRepo.SaveSubmission(sub); err != nil {
		return nil, err
	}

	user.KYCStatus = models.KYCPending
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *kycService) Review(submissionID string, approve bool, reviewer, comment string) (*models.KYCSubmission, error) {
	objID, err := primitive.ObjectIDFromHex(submissionID)
	if err != nil {
		return nil, err
	}
	sub, err := s.kycRepo.GetSubmissionByID(objID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}

	now := time.Now()
	sub.ReviewedAt = &now
	sub.ReviewedBy = reviewer
	sub.Comment = comment
	if approve {
		sub.Status = models.KYCReviewApproved
	} else {
		sub.Status = models.KYCReviewRejected
	}
	if err := s.kycRepo.UpdateSubmission(sub); err != nil {
		return nil, err
	}

	// Mirror the review outcome onto the user record.
	user, err := s.userRepo.GetUserByID(sub.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if approve {
			user.KYCStatus = models.KYCVerified
			user.KYCVerifiedAt = now.Format(time.RFC3339)
			user.Status = models.UserStatusActive
		} else {
			user.KYCStatus = models.KYCRejected
		}
		if err := s.userRepo.UpdateUser(user); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

func (s *kycService) GetPending() ([]*models.KYCSubmission, error) {
	return s.kycRepo.GetSubmissionsByStatus(models.KYCReviewPending)
}

func (s *kycService) GetAll() ([]*models.KYCSubmission, error) {
	return s.kycRepo.GetAllSubmissions()
}
