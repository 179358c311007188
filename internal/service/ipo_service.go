package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/wcib/ipoportal/internal/market"
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrIPONotFound          = errors.New("IPO not found")
	ErrIPONotOpen           = errors.New("IPO is not open for subscription")
	ErrInvalidShares        = errors.New("shares must be greater than zero")
	ErrBelowMinInvestment   = errors.New("amount is below the minimum investment")
	ErrInsufficientShares   = errors.New("not enough shares remaining in the offering")
	ErrInsufficientBalance  = errors.New("insufficient wallet balance")
	ErrKYCNotVerified       = errors.New("identity verification required before subscribing")
	ErrMarketClosed         = errors.New("market closed")
)

// IPOCache is a read-through cache over offering listings.
type IPOCache interface {
	GetIPOs() ([]*models.IPO, bool)
	SetIPOs(ipos []*models.IPO)
	Invalidate()
}

type IPOService interface {
	CreateIPO(ipo *models.IPO) error
	UpdateIPO(id string, ipo *models.IPO) error
	GetIPO(id string) (*models.IPO, error)
	GetAllIPOs() ([]*models.IPO, error)
	GetIPOsByStatus(status models.IPOStatus) ([]*models.IPO, error)
	Subscribe(user *models.User, ipoID string, shares int64, adminOverride bool) (*models.SubscriptionResult, error)
}

type ipoService struct {
	ipoRepo        repository.IPORepository
	investmentRepo repository.InvestmentRepository
	txRepo         repository.TransactionRepository
	userRepo       repository.UserRepository
	marketService  MarketService
	commissions    CommissionService
	cache          IPOCache
	clock          market.Clock
}

func NewIPOService(
	ipoRepo repository.IPORepository,
	investmentRepo repository.InvestmentRepository,
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	marketService MarketService,
	commissions CommissionService,
	cache IPOCache,
	clock market.Clock,
) IPOService {
	return &ipoService{
		ipoRepo:        ipoRepo,
		investmentRepo: investmentRepo,
		txRepo:         txRepo,
		userRepo:       userRepo,
		marketService:  marketService,
		commissions:    commissions,
		cache:          cache,
		clock:          clock,
	}
}

func (s *ipoService) CreateIPO(ipo *models.IPO) error {
	if err := s.ipoRepo.SaveIPO(ipo); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate()
	}
	return nil
}

func (s *ipoService) UpdateIPO(id string, ipo *models.IPO) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	ipo.ID = objID
	if err := s.ipoRepo.UpdateIPO(ipo); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate()
	}
	return nil
}

func (s *ipoService) GetIPO(id string) (*models.IPO, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.ipoRepo.GetIPOByID(objID)
}

func (s *ipoService) GetAllIPOs() ([]*models.IPO, error) {
	if s.cache != nil {
		if ipos, ok := s.cache.GetIPOs(); ok {
			return ipos, nil
		}
	}
	ipos, err := s.ipoRepo.GetAllIPOs()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetIPOs(ipos)
	}
	return ipos, nil
}

// GetIPOsByStatus bypasses the listing cache; filtered views are rare
// enough that caching each status separately is not worth it.
func (s *ipoService) GetIPOsByStatus(status models.IPOStatus) ([]*models.IPO, error) {
	return s.ipoRepo.GetIPOsByStatus(status)
}

// Subscribe places a subscription order. It is the gated operation: the
// access decision engine must report the market effectively open for the
// caller before anything else is checked.
func (s *ipoService) Subscribe(user *models.User, ipoID string, shares int64, adminOverride bool) (*models.SubscriptionResult, error) {
	if !s.marketService.CanSubscribe(user.Role, adminOverride) {
		status := s.marketService.GetMarketStatus()
		return nil, fmt.Errorf("%w: IPO subscription only available during market hours (9 AM - 3 PM) or when override is active. Current status: %s",
			ErrMarketClosed, status.Message)
	}

	if user.KYCStatus != models.KYCVerified {
		return nil, ErrKYCNotVerified
	}
	if shares <= 0 {
		return nil, ErrInvalidShares
	}

	ipo, err := s.GetIPO(ipoID)
	if err != nil {
		return nil, err
	}
	if ipo == nil {
		return nil, ErrIPONotFound
	}
	if ipo.Status != models.IPOStatusOpen {
		return nil, ErrIPONotOpen
	}

	amount := float64(shares) * ipo.OfferingPrice
	if amount < ipo.MinInvestment {
		return nil, ErrBelowMinInvestment
	}
	if ipo.SharesSubscribed+shares > ipo.TotalShares {
		return nil, ErrInsufficientShares
	}

	var commission float64
	calc, err := s.commissions.Calculate(models.TransactionTypeSubscription, amount)
	if err != nil {
		return nil, err
	}
	if calc != nil {
		commission = calc.CommissionAmount
	}

	if user.Balance < amount+commission {
		return nil, ErrInsufficientBalance
	}

	status := s.marketService.GetMarketStatus()
	usingOverride := status.IsOverrideActive && !status.IsOpen
	if usingOverride {
		log.Printf("user %s subscribed during override period", user.ID.Hex())
	}

	user.Balance -= amount + commission
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	if err := s.ipoRepo.IncrementSubscribedShares(ipo.ID, shares); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	tx := &models.Transaction{
		UserID:      user.ID,
		Amount:      -(amount + commission),
		Type:        models.TransactionTypeSubscription,
		Status:      models.TransactionStatusPending,
		Description: "IPO Subscription - " + ipo.Symbol,
		Timestamp:   now,
		IPOSymbol:   ipo.Symbol,
		Shares:      shares,
	}
	if err := s.txRepo.SaveTransaction(tx); err != nil {
		return nil, err
	}

	investment := &models.Investment{
		UserID:           user.ID,
		IPOID:            ipo.ID,
		IPOSymbol:        ipo.Symbol,
		CompanyName:      ipo.CompanyName,
		Sector:           ipo.Sector,
		Shares:           shares,
		AveragePrice:     ipo.OfferingPrice,
		CurrentPrice:     ipo.OfferingPrice,
		TotalInvestment:  amount,
		CurrentValue:     amount,
		SubscriptionDate: now.Format("2006-01-02"),
		Status:           models.InvestmentPendingAllotment,
	}
	if err := s.investmentRepo.SaveInvestment(investment); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate()
	}

	message := "Subscription received. Will be processed after market close at 3:00 PM"
	if usingOverride {
		message = "Subscription received (Override Active). Will be processed immediately."
	}
	return &models.SubscriptionResult{
		Success:       true,
		Message:       message,
		Timestamp:     now,
		Shares:        shares,
		Amount:        amount,
		Commission:    commission,
		UsingOverride: usingOverride,
		TransactionID: tx.ID.Hex(),
	}, nil
}
