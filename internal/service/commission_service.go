package service

import (
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommissionService interface {
	CreateRule(rule *models.CommissionRule) error
	GetRule(id string) (*models.CommissionRule, error)
	GetAllRules() ([]*models.CommissionRule, error)
	UpdateRule(id string, rule *models.CommissionRule) error
	DeleteRule(id string) error
	Calculate(txType models.TransactionType, amount float64) (*models.CommissionCalculation, error)
	Summary(periodStart, periodEnd string) (*models.CommissionSummary, error)
}

type commissionService struct {
	commissionRepo repository.CommissionRepository
	txRepo         repository.TransactionRepository
}

func NewCommissionService(commissionRepo repository.CommissionRepository, txRepo repository.TransactionRepository) CommissionService {
	return &commissionService{commissionRepo: commissionRepo, txRepo: txRepo}
}

func (s *commissionService) CreateRule(rule *models.CommissionRule) error {
	return s.commissionRepo.SaveRule(rule)
}

func (s *commissionService) GetRule(id string) (*models.CommissionRule, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.commissionRepo.GetRuleByID(objID)
}

func (s *commissionService) GetAllRules() ([]*models.CommissionRule, error) {
	return s.commissionRepo.GetAllRules()
}

func (s *commissionService) UpdateRule(id string, rule *models.CommissionRule) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.commissionRepo.UpdateRule(objID, rule)
}

func (s *commissionService) DeleteRule(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.commissionRepo.DeleteRule(objID)
}

// Calculate applies the first active rule covering the transaction type.
// A rule whose min/max range excludes the amount does not apply; with no
// applicable rule the result is nil.
func (s *commissionService) Calculate(txType models.TransactionType, amount float64) (*models.CommissionCalculation, error) {
	rules, err := s.commissionRepo.GetActiveRules()
	if err != nil {
		return nil, err
	}

	var rule *models.CommissionRule
	for _, candidate := range rules {
		if !appliesTo(candidate, txType) {
			continue
		}
		rule = candidate
		break
	}
	if rule == nil {
		return nil, nil
	}

	if rule.MinAmount > 0 && amount < rule.MinAmount {
		return nil, nil
	}
	if rule.MaxAmount > 0 && amount > rule.MaxAmount {
		return nil, nil
	}

	var commission float64
	switch rule.Type {
	case models.CommissionPercentage:
		commission = amount * rule.Value / 100
	case models.CommissionFixed:
		commission = rule.Value
	}

	return &models.CommissionCalculation{
		TransactionType:  txType,
		Amount:           amount,
		CommissionAmount: commission,
		NetAmount:        amount - commission,
		RuleApplied:      rule,
	}, nil
}

func appliesTo(rule *models.CommissionRule, txType models.TransactionType) bool {
	for _, t := range rule.ApplicableTo {
		if t == txType {
			return true
		}
	}
	return false
}

func (s *commissionService) Summary(periodStart, periodEnd string) (*models.CommissionSummary, error) {
	total, err := s.txRepo.SumCompletedByType(models.TransactionTypeSubscription)
	if err != nil {
		return nil, err
	}
	count, err := s.txRepo.CountTransactions()
	if err != nil {
		return nil, err
	}

	// Subscription amounts are stored as debits.
	if total < 0 {
		total = -total
	}

	calc, err := s.Calculate(models.TransactionTypeSubscription, total)
	if err != nil {
		return nil, err
	}
	var commission float64
	if calc != nil {
		commission = calc.CommissionAmount
	}

	return &models.CommissionSummary{
		TotalCommission: commission,
		CommissionByType: map[string]float64{
			string(models.TransactionTypeSubscription): commission,
		},
		TransactionsCount: int(count),
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
	}, nil
}
