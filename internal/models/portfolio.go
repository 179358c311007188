package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InvestmentStatus string

const (
	InvestmentAllotted         InvestmentStatus = "allotted"
	InvestmentPendingAllotment InvestmentStatus = "pending_allotment"
	InvestmentListed           InvestmentStatus = "listed"
	InvestmentRefunded         InvestmentStatus = "refunded"
)

type Investment struct {
	ID                   primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID               primitive.ObjectID `json:"user_id" bson:"user_id"`
	IPOID                primitive.ObjectID `json:"ipo_id" bson:"ipo_id"`
	IPOSymbol            string             `json:"ipo_symbol" bson:"ipo_symbol"`
	CompanyName          string             `json:"company_name" bson:"company_name"`
	Sector               string             `json:"sector" bson:"sector"`
	Shares               int64              `json:"shares" bson:"shares"`
	AveragePrice         float64            `json:"average_price" bson:"average_price"`
	CurrentPrice         float64            `json:"current_price" bson:"current_price"`
	TotalInvestment      float64            `json:"total_investment" bson:"total_investment"`
	CurrentValue         float64            `json:"current_value" bson:"current_value"`
	ProfitLoss           float64            `json:"profit_loss" bson:"profit_loss"`
	ProfitLossPercentage float64            `json:"profit_loss_percentage" bson:"profit_loss_percentage"`
	SubscriptionDate     string             `json:"subscription_date" bson:"subscription_date"`
	Status               InvestmentStatus   `json:"status" bson:"status"`
	AllotmentDate        string             `json:"allotment_date,omitempty" bson:"allotment_date,omitempty"`
	ListingDate          string             `json:"listing_date,omitempty" bson:"listing_date,omitempty"`
}

type PortfolioSummary struct {
	TotalInvestment           float64     `json:"total_investment"`
	CurrentValue              float64     `json:"current_value"`
	TotalProfitLoss           float64     `json:"total_profit_loss"`
	TotalProfitLossPercentage float64     `json:"total_profit_loss_percentage"`
	TotalDividends            float64     `json:"total_dividends"`
	NumberOfInvestments       int         `json:"number_of_investments"`
	AllottedInvestments       int         `json:"allotted_investments"`
	PendingInvestments        int         `json:"pending_investments"`
	BestPerformer             *Investment `json:"best_performer"`
	WorstPerformer            *Investment `json:"worst_performer"`
}

type SectorAllocation struct {
	Sector          string  `json:"sector"`
	Amount          float64 `json:"amount"`
	Percentage      float64 `json:"percentage"`
	InvestmentCount int     `json:"investment_count"`
}
