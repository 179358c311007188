package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wcib/ipoportal/internal/market"
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"
)

// ErrActiveUntilPast rejects activations whose expiry is not strictly in the
// future; such a record would evaluate as inactive from the moment it is
// written.
var ErrActiveUntilPast = errors.New("active_until must be in the future")

type OverrideService interface {
	Activate(activeUntil time.Time, reason, userID, userName string, meta models.RequestMeta) (*models.MarketOverride, error)
	Deactivate(userID, userName string, meta models.RequestMeta) error
	Clear(userID, userName string, meta models.RequestMeta) error
	IsActive() bool
	Current() *models.MarketOverride
	Status(callerRole models.UserRole) models.OverrideStatus
	AuditLog(limit int) ([]*models.OverrideAuditEntry, error)
	Initialize() error
}

type overrideService struct {
	repo  repository.OverrideRepository
	clock market.Clock
}

func NewOverrideService(repo repository.OverrideRepository, clock market.Clock) OverrideService {
	return &overrideService{repo: repo, clock: clock}
}

func (s *overrideService) Activate(activeUntil time.Time, reason, userID, userName string, meta models.RequestMeta) (*models.MarketOverride, error) {
	now := s.clock.Now()
	if !activeUntil.After(now) {
		return nil, ErrActiveUntilPast
	}

	override := &models.MarketOverride{
		ID:              uuid.New().String(),
		Enabled:         true,
		ActiveUntil:     &activeUntil,
		ActivatedBy:     userID,
		ActivatedByName: userName,
		ActivatedAt:     now,
		Reason:          reason,
	}

	// Only one override may exist; a new activation replaces any prior record.
	if err := s.repo.PutOverride(override); err != nil {
		return nil, err
	}
	s.appendAudit(models.OverrideActivated, userID, userName, reason, meta)
	return override, nil
}

func (s *overrideService) Deactivate(userID, userName string, meta models.RequestMeta) error {
	override := s.Current()
	if override == nil {
		// Nothing to deactivate; a safe no-op.
		return nil
	}

	override.Enabled = false
	if err := s.repo.PutOverride(override); err != nil {
		return err
	}
	s.appendAudit(models.OverrideDeactivated, userID, userName, "Manual deactivation", meta)
	return nil
}

func (s *overrideService) Clear(userID, userName string, meta models.RequestMeta) error {
	if err := s.repo.RemoveOverride(); err != nil {
		return err
	}
	s.appendAudit(models.OverrideCleared, userID, userName, "All overrides cleared", meta)
	return nil
}

// Current loads the persisted record. Load failures degrade to "no override"
// so the access decision can always be answered.
func (s *overrideService) Current() *models.MarketOverride {
	override, err := s.repo.GetOverride()
	if err != nil {
		log.Printf("override store read failed, treating as no override: %v", err)
		return nil
	}
	return override
}

// IsActive applies lazy expiry: the record is never transitioned, every read
// recomputes validity against the current time.
func (s *overrideService) IsActive() bool {
	override := s.Current()
	if override == nil || !override.Enabled {
		return false
	}
	if override.ActiveUntil != nil {
		return s.clock.Now().Before(*override.ActiveUntil)
	}
	return override.Enabled
}

func (s *overrideService) Status(callerRole models.UserRole) models.OverrideStatus {
	override := s.Current()
	isActive := s.isActiveRecord(override)

	timeRemaining := 0
	if isActive && override.ActiveUntil != nil {
		remaining := override.ActiveUntil.Sub(s.clock.Now())
		if remaining > 0 {
			timeRemaining = int(remaining / time.Minute)
		}
	}

	status := models.OverrideStatus{
		IsOverrideActive: isActive,
		TimeRemaining:    timeRemaining,
		// Any active override reports bypass capability for every caller,
		// matching the original portal. See the note in DESIGN.md.
		CanBypass: callerRole == models.RoleSuperAdmin || isActive,
	}
	if override != nil {
		status.OverrideEndsAt = override.ActiveUntil
		status.ActivatedBy = override.ActivatedBy
	}
	return status
}

func (s *overrideService) isActiveRecord(override *models.MarketOverride) bool {
	if override == nil || !override.Enabled {
		return false
	}
	if override.ActiveUntil != nil {
		return s.clock.Now().Before(*override.ActiveUntil)
	}
	return true
}

func (s *overrideService) AuditLog(limit int) ([]*models.OverrideAuditEntry, error) {
	return s.repo.ListAudit(limit)
}

// Initialize reloads the persisted record on startup. A record that already
// expired is garbage: it is cleared eagerly, attributed to the system actor.
func (s *overrideService) Initialize() error {
	override, err := s.repo.GetOverride()
	if err != nil {
		// Malformed or unreachable store: fail open to "no override".
		log.Printf("failed to initialize override store: %v", err)
		return nil
	}
	if override == nil {
		return nil
	}
	if override.ActiveUntil != nil && !s.clock.Now().Before(*override.ActiveUntil) {
		return s.Clear("system", "System", models.RequestMeta{})
	}
	return nil
}

func (s *overrideService) appendAudit(action models.OverrideAction, userID, userName, reason string, meta models.RequestMeta) {
	entry := &models.OverrideAuditEntry{
		Timestamp: s.clock.Now(),
		Action:    action,
		UserID:    userID,
		UserName:  userName,
		Reason:    reason,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
	if err := s.repo.AppendAudit(entry); err != nil {
		log.Printf("failed to append override audit entry: %v", err)
	}
}
