package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityLog struct {
	ID          primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID     `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Action      string                 `json:"action" bson:"action"`
	Description string                 `json:"description" bson:"description"`
	IPAddress   string                 `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	Timestamp   time.Time              `json:"timestamp" bson:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

type PlatformStats struct {
	TotalUsers              int     `json:"total_users"`
	ActiveUsers             int     `json:"active_users"`
	TotalIPOs               int     `json:"total_ipos"`
	LiveIPOs                int     `json:"live_ipos"`
	TotalSubscriptions      int     `json:"total_subscriptions"`
	TotalSubscriptionAmount float64 `json:"total_subscription_amount"`
	PendingKYCs             int     `json:"pending_kycs"`
	TotalTransactions       int     `json:"total_transactions"`
	PlatformRevenue         float64 `json:"platform_revenue"`
}
