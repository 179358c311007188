package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommissionType string

const (
	CommissionPercentage CommissionType = "percentage"
	CommissionFixed      CommissionType = "fixed"
)

type CommissionRuleStatus string

const (
	CommissionRuleActive   CommissionRuleStatus = "active"
	CommissionRuleInactive CommissionRuleStatus = "inactive"
)

type CommissionRule struct {
	ID            primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          string               `json:"name" bson:"name"`
	Type          CommissionType       `json:"type" bson:"type"`
	Value         float64              `json:"value" bson:"value"`
	MinAmount     float64              `json:"min_amount,omitempty" bson:"min_amount,omitempty"`
	MaxAmount     float64              `json:"max_amount,omitempty" bson:"max_amount,omitempty"`
	ApplicableTo  []TransactionType    `json:"applicable_to" bson:"applicable_to"`
	Status        CommissionRuleStatus `json:"status" bson:"status"`
	EffectiveFrom string               `json:"effective_from" bson:"effective_from"`
	CreatedBy     string               `json:"created_by" bson:"created_by"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
}

type CommissionCalculation struct {
	TransactionType  TransactionType `json:"transaction_type"`
	Amount           float64         `json:"amount"`
	CommissionAmount float64         `json:"commission_amount"`
	NetAmount        float64         `json:"net_amount"`
	RuleApplied      *CommissionRule `json:"rule_applied"`
}

type CommissionSummary struct {
	TotalCommission   float64            `json:"total_commission"`
	CommissionByType  map[string]float64 `json:"commission_by_type"`
	TransactionsCount int                `json:"transactions_count"`
	PeriodStart       string             `json:"period_start"`
	PeriodEnd         string             `json:"period_end"`
}
