package models

import (
	"time"
)

// MarketOverride is the single administrative grant that forces subscription
// access open outside market hours. At most one record exists at a time.
type MarketOverride struct {
	ID              string     `json:"id" bson:"_id"`
	Enabled         bool       `json:"enabled" bson:"enabled"`
	ActiveUntil     *time.Time `json:"active_until" bson:"active_until,omitempty"`
	ActivatedBy     string     `json:"activated_by" bson:"activated_by"`
	ActivatedByName string     `json:"activated_by_name" bson:"activated_by_name"`
	ActivatedAt     time.Time  `json:"activated_at" bson:"activated_at"`
	Reason          string     `json:"reason" bson:"reason"`
}

type OverrideAction string

const (
	OverrideActivated   OverrideAction = "ACTIVATED"
	OverrideDeactivated OverrideAction = "DEACTIVATED"
	OverrideCleared     OverrideAction = "CLEARED"
)

type OverrideAuditEntry struct {
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
	Action    OverrideAction `json:"action" bson:"action"`
	UserID    string         `json:"user_id" bson:"user_id"`
	UserName  string         `json:"user_name" bson:"user_name"`
	Reason    string         `json:"reason" bson:"reason"`
	IPAddress string         `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	UserAgent string         `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
}

// RequestMeta carries best-effort caller metadata into the audit log.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type OverrideStatus struct {
	IsOverrideActive bool       `json:"is_override_active"`
	OverrideEndsAt   *time.Time `json:"override_ends_at"`
	ActivatedBy      string     `json:"activated_by"`
	TimeRemaining    int        `json:"time_remaining"`
	CanBypass        bool       `json:"can_bypass"`
}
