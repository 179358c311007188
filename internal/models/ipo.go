package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IPOStatus string

const (
	IPOStatusOpen     IPOStatus = "open"
	IPOStatusUpcoming IPOStatus = "upcoming"
	IPOStatusClosed   IPOStatus = "closed"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type IPO struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CompanyName       string             `json:"company_name" bson:"company_name"`
	Symbol            string             `json:"symbol" bson:"symbol"`
	Sector            string             `json:"sector" bson:"sector"`
	OfferingPrice     float64            `json:"offering_price" bson:"offering_price"`
	MinInvestment     float64            `json:"min_investment" bson:"min_investment"`
	TotalShares       int64              `json:"total_shares" bson:"total_shares"`
	SharesSubscribed  int64              `json:"shares_subscribed" bson:"shares_subscribed"`
	SubscriptionStart string             `json:"subscription_start" bson:"subscription_start"`
	SubscriptionEnd   string             `json:"subscription_end" bson:"subscription_end"`
	Status            IPOStatus          `json:"status" bson:"status"`
	RiskLevel         RiskLevel          `json:"risk_level" bson:"risk_level"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	CreatedBy         string             `json:"created_by,omitempty" bson:"created_by,omitempty"`
}

// SubscriptionPercentage reports how much of the offering is taken, capped at 100.
func (i *IPO) SubscriptionPercentage() float64 {
	if i.TotalShares == 0 {
		return 0
	}
	pct := float64(i.SharesSubscribed) / float64(i.TotalShares) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

type SubscriptionResult struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	Shares        int64     `json:"shares"`
	Amount        float64   `json:"amount"`
	Commission    float64   `json:"commission"`
	UsingOverride bool      `json:"using_override"`
	TransactionID string    `json:"transaction_id"`
}
