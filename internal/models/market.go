package models

type MarketEvent string

const (
	MarketEventOpen  MarketEvent = "open"
	MarketEventClose MarketEvent = "close"
)

// MarketStatus is the schedule evaluator's view of the market, computed
// fresh from the current time and never stored.
type MarketStatus struct {
	IsOpen        bool        `json:"is_open"`
	NextEvent     MarketEvent `json:"next_event"`
	TimeRemaining int         `json:"time_remaining"`
	Message       string      `json:"message"`
}

type EffectiveStatus string

const (
	EffectiveOpen   EffectiveStatus = "open"
	EffectiveClosed EffectiveStatus = "closed"
)

// CombinedMarketStatus is the access decision engine's answer: schedule and
// override folded into a single effective open/closed state.
type CombinedMarketStatus struct {
	IsOpen           bool            `json:"is_open"`
	IsOverrideActive bool            `json:"is_override_active"`
	EffectiveStatus  EffectiveStatus `json:"effective_status"`
	Message          string          `json:"message"`
}
