package service

import (
	"testing"
	"time"

	"github.com/wcib/ipoportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeposit(t *testing.T) {
	userRepo := newFakeUserRepo()
	txRepo := &fakeTransactionRepo{}
	svc := NewTransactionService(txRepo, userRepo)

	user := &models.User{ID: primitive.NewObjectID(), Balance: 100}
	require.NoError(t, userRepo.SaveUser(user))

	tx, err := svc.Deposit(user, 500, "Wire transfer")
	require.NoError(t, err)
	assert.Equal(t, 600.0, user.Balance)
	assert.Equal(t, models.TransactionTypeDeposit, tx.Type)
	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
	assert.Equal(t, 500.0, tx.Amount)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewTransactionService(&fakeTransactionRepo{}, userRepo)

	user := &models.User{ID: primitive.NewObjectID(), Balance: 100}
	require.NoError(t, userRepo.SaveUser(user))

	_, err := svc.Deposit(user, 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = svc.Deposit(user, -10, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 100.0, user.Balance)
}

func TestFilterTransactions(t *testing.T) {
	jan := func(day int) time.Time {
		return time.Date(2025, time.January, day, 12, 0, 0, 0, time.UTC)
	}
	txs := []*models.Transaction{
		{Amount: 1000, Type: models.TransactionTypeDeposit, Status: models.TransactionStatusCompleted, Timestamp: jan(5)},
		{Amount: -2500, Type: models.TransactionTypeSubscription, Status: models.TransactionStatusPending, Timestamp: jan(10)},
		{Amount: 50, Type: models.TransactionTypeDividend, Status: models.TransactionStatusCompleted, Timestamp: jan(15)},
	}

	t.Run("no filters keeps everything", func(t *testing.T) {
		assert.Len(t, FilterTransactions(txs, models.TransactionFilters{}), 3)
	})

	t.Run("by type", func(t *testing.T) {
		filtered := FilterTransactions(txs, models.TransactionFilters{Type: models.TransactionTypeDeposit})
		require.Len(t, filtered, 1)
		assert.Equal(t, 1000.0, filtered[0].Amount)
	})

	t.Run("by status", func(t *testing.T) {
		filtered := FilterTransactions(txs, models.TransactionFilters{Status: models.TransactionStatusPending})
		assert.Len(t, filtered, 1)
	})

	t.Run("by date window", func(t *testing.T) {
		start, end := jan(8), jan(12)
		filtered := FilterTransactions(txs, models.TransactionFilters{StartDate: &start, EndDate: &end})
		require.Len(t, filtered, 1)
		assert.Equal(t, models.TransactionTypeSubscription, filtered[0].Type)
	})

	t.Run("amount bounds use absolute value", func(t *testing.T) {
		filtered := FilterTransactions(txs, models.TransactionFilters{MinAmount: 2000})
		require.Len(t, filtered, 1)
		assert.Equal(t, -2500.0, filtered[0].Amount)
	})
}

func TestComputeStats(t *testing.T) {
	txs := []*models.Transaction{
		{Amount: 1000, Type: models.TransactionTypeDeposit, Status: models.TransactionStatusCompleted},
		{Amount: 500, Type: models.TransactionTypeDeposit, Status: models.TransactionStatusCompleted},
		{Amount: -2500, Type: models.TransactionTypeSubscription, Status: models.TransactionStatusCompleted},
		{Amount: -800, Type: models.TransactionTypeSubscription, Status: models.TransactionStatusPending},
		{Amount: 75, Type: models.TransactionTypeDividend, Status: models.TransactionStatusCompleted},
		{Amount: -100, Type: models.TransactionTypeWithdrawal, Status: models.TransactionStatusFailed},
	}

	stats := ComputeStats(txs)
	assert.Equal(t, 1500.0, stats.TotalDeposits)
	assert.Equal(t, 2500.0, stats.TotalInvested, "pending subscriptions are excluded; debits are normalized")
	assert.Equal(t, 75.0, stats.TotalDividends)
	assert.Equal(t, 6, stats.TransactionCount)
	assert.Equal(t, 1, stats.PendingTransactions)
}
