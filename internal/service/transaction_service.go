package service

import (
	"errors"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidAmount = errors.New("amount must be greater than zero")

type TransactionService interface {
	Deposit(user *models.User, amount float64, description string) (*models.Transaction, error)
	GetUserTransactions(userID string, filters models.TransactionFilters) ([]*models.Transaction, error)
	GetAllTransactions(page, limit int64) ([]*models.Transaction, error)
	GetStats(userID string) (*models.TransactionStats, error)
}

type transactionService struct {
	txRepo   repository.TransactionRepository
	userRepo repository.UserRepository
}

func NewTransactionService(txRepo repository.TransactionRepository, userRepo repository.UserRepository) TransactionService {
	return &transactionService{txRepo: txRepo, userRepo: userRepo}
}

func (s *transactionService) Deposit(user *models.User, amount float64, description string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user.Balance += amount
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:      user.ID,
		Amount:      amount,
		Type:        models.TransactionTypeDeposit,
		Status:      models.TransactionStatusCompleted,
		Description: description,
	}
	if err := s.txRepo.SaveTransaction(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) GetUserTransactions(userID string, filters models.TransactionFilters) ([]*models.Transaction, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.GetTransactionsByUserID(objID)
	if err != nil {
		return nil, err
	}
	return FilterTransactions(txs, filters), nil
}

// FilterTransactions drops transactions outside the given constraints.
// Amount bounds compare against the absolute value, so debits match too.
func FilterTransactions(txs []*models.Transaction, filters models.TransactionFilters) []*models.Transaction {
	filtered := make([]*models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filters.StartDate != nil && tx.Timestamp.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && tx.Timestamp.After(*filters.EndDate) {
			continue
		}
		if filters.Type != "" && tx.Type != filters.Type {
			continue
		}
		if filters.Status != "" && tx.Status != filters.Status {
			continue
		}
		abs := tx.Amount
		if abs < 0 {
			abs = -abs
		}
		if filters.MinAmount > 0 && abs < filters.MinAmount {
			continue
		}
		if filters.MaxAmount > 0 && abs > filters.MaxAmount {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

func (s *transactionService) GetAllTransactions(page, limit int64) ([]*models.Transaction, error) {
	return s.txRepo.GetAllTransactions(page, limit)
}

func (s *transactionService) GetStats(userID string) (*models.TransactionStats, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.GetTransactionsByUserID(objID)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(txs)
	return &stats, nil
}

// ComputeStats totals completed deposits, subscriptions and dividends.
func ComputeStats(txs []*models.Transaction) models.TransactionStats {
	stats := models.TransactionStats{TransactionCount: len(txs)}
	for _, tx := range txs {
		if tx.Status == models.TransactionStatusPending {
			stats.PendingTransactions++
		}
		if tx.Status != models.TransactionStatusCompleted {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeDeposit:
			stats.TotalDeposits += tx.Amount
		case models.TransactionTypeSubscription:
			amount := tx.Amount
			if amount < 0 {
				amount = -amount
			}
			stats.TotalInvested += amount
		case models.TransactionTypeDividend:
			stats.TotalDividends += tx.Amount
		}
	}
	return stats
}
