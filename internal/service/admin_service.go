package service

import (
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"
)

type AdminService interface {
	PlatformStats() (*models.PlatformStats, error)
}

type adminService struct {
	userRepo       repository.UserRepository
	ipoRepo        repository.IPORepository
	investmentRepo repository.InvestmentRepository
	txRepo         repository.TransactionRepository
	kycRepo        repository.KYCRepository
	commissions    CommissionService
}

func NewAdminService(
	userRepo repository.UserRepository,
	ipoRepo repository.IPORepository,
	investmentRepo repository.InvestmentRepository,
	txRepo repository.TransactionRepository,
	kycRepo repository.KYCRepository,
	commissions CommissionService,
) AdminService {
	return &adminService{
		userRepo:       userRepo,
		ipoRepo:        ipoRepo,
		investmentRepo: investmentRepo,
		txRepo:         txRepo,
		kycRepo:        kycRepo,
		commissions:    commissions,
	}
}

func (s *adminService) PlatformStats() (*models.PlatformStats, error) {
	totalUsers, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.userRepo.CountUsersByStatus(models.UserStatusActive)
	if err != nil {
		return nil, err
	}
	totalIPOs, err := s.ipoRepo.CountIPOs()
	if err != nil {
		return nil, err
	}
	liveIPOs, err := s.ipoRepo.CountIPOsByStatus(models.IPOStatusOpen)
	if err != nil {
		return nil, err
	}
	totalSubscriptions, err := s.investmentRepo.CountInvestments()
	if err != nil {
		return nil, err
	}
	subscribed, err := s.txRepo.SumCompletedByType(models.TransactionTypeSubscription)
	if err != nil {
		return nil, err
	}
	if subscribed < 0 {
		subscribed = -subscribed
	}
	pendingKYCs, err := s.kycRepo.CountByStatus(models.KYCReviewPending)
	if err != nil {
		return nil, err
	}
	totalTransactions, err := s.txRepo.CountTransactions()
	if err != nil {
		return nil, err
	}

	var revenue float64
	calc, err := s.commissions.Calculate(models.TransactionTypeSubscription, subscribed)
	if err != nil {
		return nil, err
	}
	if calc != nil {
		revenue = calc.CommissionAmount
	}

	return &models.PlatformStats{
		TotalUsers:              int(totalUsers),
		ActiveUsers:             int(activeUsers),
		TotalIPOs:               int(totalIPOs),
		LiveIPOs:                int(liveIPOs),
		TotalSubscriptions:      int(totalSubscriptions),
		TotalSubscriptionAmount: subscribed,
		PendingKYCs:             int(pendingKYCs),
		TotalTransactions:       int(totalTransactions),
		PlatformRevenue:         revenue,
	}, nil
}
