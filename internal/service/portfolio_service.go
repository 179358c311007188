package service

import (
	"sort"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PortfolioService interface {
	GetInvestments(userID string) ([]*models.Investment, error)
	GetSummary(userID string) (*models.PortfolioSummary, error)
	GetSectorAllocation(userID string) ([]models.SectorAllocation, error)
}

type portfolioService struct {
	investmentRepo repository.InvestmentRepository
	txRepo         repository.TransactionRepository
}

func NewPortfolioService(investmentRepo repository.InvestmentRepository, txRepo repository.TransactionRepository) PortfolioService {
	return &portfolioService{investmentRepo: investmentRepo, txRepo: txRepo}
}

func (s *portfolioService) GetInvestments(userID string) ([]*models.Investment, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	return s.investmentRepo.GetInvestmentsByUserID(objID)
}

func (s *portfolioService) GetSummary(userID string) (*models.PortfolioSummary, error) {
	investments, err := s.GetInvestments(userID)
	if err != nil {
		return nil, err
	}
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	dividends, err := s.sumDividends(objID)
	if err != nil {
		return nil, err
	}
	return Summarize(investments, dividends), nil
}

func (s *portfolioService) sumDividends(userID primitive.ObjectID) (float64, error) {
	txs, err := s.txRepo.GetTransactionsByUserID(userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeDividend && tx.Status == models.TransactionStatusCompleted {
			total += tx.Amount
		}
	}
	return total, nil
}

// Summarize aggregates a user's holdings into portfolio totals.
func Summarize(investments []*models.Investment, totalDividends float64) *models.PortfolioSummary {
	summary := &models.PortfolioSummary{
		TotalDividends:      totalDividends,
		NumberOfInvestments: len(investments),
	}

	for _, inv := range investments {
		summary.TotalInvestment += inv.TotalInvestment
		summary.CurrentValue += inv.CurrentValue
		switch inv.Status {
		case models.InvestmentListed, models.InvestmentAllotted:
			summary.AllottedInvestments++
		case models.InvestmentPendingAllotment:
			summary.PendingInvestments++
		}

		if summary.BestPerformer == nil || inv.ProfitLossPercentage > summary.BestPerformer.ProfitLossPercentage {
			summary.BestPerformer = inv
		}
		if summary.WorstPerformer == nil || inv.ProfitLossPercentage < summary.WorstPerformer.ProfitLossPercentage {
			summary.WorstPerformer = inv
		}
	}

	summary.TotalProfitLoss = summary.CurrentValue - summary.TotalInvestment
	if summary.TotalInvestment > 0 {
		summary.TotalProfitLossPercentage = summary.TotalProfitLoss / summary.TotalInvestment * 100
	}
	return summary
}

func (s *portfolioService) GetSectorAllocation(userID string) ([]models.SectorAllocation, error) {
	investments, err := s.GetInvestments(userID)
	if err != nil {
		return nil, err
	}
	return AllocateBySector(investments), nil
}

// AllocateBySector groups current value by sector, largest first.
func AllocateBySector(investments []*models.Investment) []models.SectorAllocation {
	type bucket struct {
		amount float64
		count  int
	}
	sectors := make(map[string]*bucket)
	var totalValue float64

	for _, inv := range investments {
		b, ok := sectors[inv.Sector]
		if !ok {
			b = &bucket{}
			sectors[inv.Sector] = b
		}
		b.amount += inv.CurrentValue
		b.count++
		totalValue += inv.CurrentValue
	}

	allocations := make([]models.SectorAllocation, 0, len(sectors))
	for sector, b := range sectors {
		alloc := models.SectorAllocation{
			Sector:          sector,
			Amount:          b.amount,
			InvestmentCount: b.count,
		}
		if totalValue > 0 {
			alloc.Percentage = b.amount / totalValue * 100
		}
		allocations = append(allocations, alloc)
	}

	sort.Slice(allocations, func(i, j int) bool {
		return allocations[i].Amount > allocations[j].Amount
	})
	return allocations
}
