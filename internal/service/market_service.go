package service

import (
	"fmt"

	"github.com/wcib/ipoportal/internal/market"
	"github.com/wcib/ipoportal/internal/models"
)

// MarketService is the access decision engine: it folds the trading schedule
// and the administrative override into one effective open/closed answer.
type MarketService interface {
	GetMarketStatus() models.CombinedMarketStatus
	Schedule() models.MarketStatus
	CanSubscribe(role models.UserRole, adminOverride bool) bool
	CurrentTime() string
}

type marketService struct {
	overrides OverrideService
	clock     market.Clock
}

func NewMarketService(overrides OverrideService, clock market.Clock) MarketService {
	return &marketService{overrides: overrides, clock: clock}
}

func (s *marketService) GetMarketStatus() models.CombinedMarketStatus {
	now := s.clock.Now()
	marketOpen := market.IsOpen(now)
	overrideActive := s.overrides.IsActive()

	effective := models.EffectiveClosed
	if overrideActive || marketOpen {
		effective = models.EffectiveOpen
	}

	// Message precedence: override countdown beats the schedule's own message.
	var message string
	switch {
	case overrideActive:
		status := s.overrides.Status("")
		message = fmt.Sprintf("Market override active (ends in %d minutes)", status.TimeRemaining)
	case marketOpen:
		message = "Market is open"
	default:
		message = market.Evaluate(now).Message
	}

	return models.CombinedMarketStatus{
		IsOpen:           marketOpen,
		IsOverrideActive: overrideActive,
		EffectiveStatus:  effective,
		Message:          message,
	}
}

func (s *marketService) Schedule() models.MarketStatus {
	return market.Evaluate(s.clock.Now())
}

// CanSubscribe grants access during trading hours, during any active
// override, or when an admin caller asserts a bypass context the override
// store confirms.
func (s *marketService) CanSubscribe(role models.UserRole, adminOverride bool) bool {
	now := s.clock.Now()
	if market.IsOpen(now) || s.overrides.IsActive() {
		return true
	}
	return adminOverride && s.overrides.Status(role).CanBypass
}

func (s *marketService) CurrentTime() string {
	return market.FormatTime(s.clock.Now())
}
