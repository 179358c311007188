package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionType string

const (
	TransactionTypeDeposit      TransactionType = "deposit"
	TransactionTypeWithdrawal   TransactionType = "withdrawal"
	TransactionTypeSubscription TransactionType = "ipo_subscription"
	TransactionTypeDividend     TransactionType = "dividend"
	TransactionTypeRefund       TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

type Transaction struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Amount      float64            `json:"amount" bson:"amount"`
	Type        TransactionType    `json:"type" bson:"type"`
	Status      TransactionStatus  `json:"status" bson:"status"`
	Description string             `json:"description" bson:"description"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
	IPOSymbol   string             `json:"ipo_symbol,omitempty" bson:"ipo_symbol,omitempty"`
	Shares      int64              `json:"shares,omitempty" bson:"shares,omitempty"`
	ReferenceID string             `json:"reference_id,omitempty" bson:"reference_id,omitempty"`
}

type TransactionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      TransactionType
	Status    TransactionStatus
	MinAmount float64
	MaxAmount float64
}

type TransactionStats struct {
	TotalDeposits       float64 `json:"total_deposits"`
	TotalInvested       float64 `json:"total_invested"`
	TotalDividends      float64 `json:"total_dividends"`
	TransactionCount    int     `json:"transaction_count"`
	PendingTransactions int     `json:"pending_transactions"`
}
