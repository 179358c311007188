package service

import (
	"testing"
	"time"

	"github.com/wcib/ipoportal/internal/market"
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Saturday 2025-01-11 11:00 EAT, well outside trading hours.
var weekendNow = time.Date(2025, time.January, 11, 11, 0, 0, 0, market.EATZone)

func newMarketFixture(now time.Time) (MarketService, OverrideService) {
	overrides := NewOverrideService(repository.NewMemoryOverrideRepository(), market.FixedClock{Time: now})
	return NewMarketService(overrides, market.FixedClock{Time: now}), overrides
}

func TestMarketStatusDuringTradingHours(t *testing.T) {
	svc, _ := newMarketFixture(testNow.Add(time.Hour))

	status := svc.GetMarketStatus()
	assert.True(t, status.IsOpen)
	assert.False(t, status.IsOverrideActive)
	assert.Equal(t, models.EffectiveOpen, status.EffectiveStatus)
	assert.Equal(t, "Market is open", status.Message)
}

func TestMarketStatusAfterClose(t *testing.T) {
	closedAt := time.Date(2025, time.January, 6, 18, 0, 0, 0, market.EATZone)
	svc, _ := newMarketFixture(closedAt)

	status := svc.GetMarketStatus()
	assert.False(t, status.IsOpen)
	assert.Equal(t, models.EffectiveClosed, status.EffectiveStatus)
	assert.Equal(t, "Market opens tomorrow at 9:00 AM", status.Message)
}

func TestOverrideForcesWeekendOpen(t *testing.T) {
	svc, overrides := newMarketFixture(weekendNow)

	_, err := overrides.Activate(weekendNow.Add(2*time.Hour), "weekend offering", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	status := svc.GetMarketStatus()
	assert.False(t, status.IsOpen, "the schedule itself still reports closed")
	assert.True(t, status.IsOverrideActive)
	assert.Equal(t, models.EffectiveOpen, status.EffectiveStatus)
	assert.Equal(t, "Market override active (ends in 120 minutes)", status.Message)
}

func TestOverrideMessageTakesPrecedenceWhileOpen(t *testing.T) {
	openAt := testNow.Add(time.Hour)
	svc, overrides := newMarketFixture(openAt)

	_, err := overrides.Activate(openAt.Add(time.Hour), "window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	status := svc.GetMarketStatus()
	assert.True(t, status.IsOpen)
	assert.True(t, status.IsOverrideActive)
	assert.Equal(t, "Market override active (ends in 60 minutes)", status.Message)
}

func TestExpiredOverrideLeavesMarketClosed(t *testing.T) {
	repo := repository.NewMemoryOverrideRepository()
	earlier := NewOverrideService(repo, market.FixedClock{Time: weekendNow.Add(-2 * time.Hour)})
	_, err := earlier.Activate(weekendNow.Add(-time.Hour), "expired window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	overrides := NewOverrideService(repo, market.FixedClock{Time: weekendNow})
	svc := NewMarketService(overrides, market.FixedClock{Time: weekendNow})

	status := svc.GetMarketStatus()
	assert.False(t, status.IsOverrideActive)
	assert.Equal(t, models.EffectiveClosed, status.EffectiveStatus)
	assert.Equal(t, "Market closed for weekend. Opens Monday at 9:00 AM", status.Message)
}

func TestCanSubscribe(t *testing.T) {
	t.Run("open market admits everyone", func(t *testing.T) {
		svc, _ := newMarketFixture(testNow.Add(time.Hour))
		assert.True(t, svc.CanSubscribe(models.RoleClient, false))
	})

	t.Run("closed market rejects clients", func(t *testing.T) {
		svc, _ := newMarketFixture(weekendNow)
		assert.False(t, svc.CanSubscribe(models.RoleClient, false))
		assert.False(t, svc.CanSubscribe(models.RoleClient, true))
	})

	t.Run("active override admits everyone", func(t *testing.T) {
		svc, overrides := newMarketFixture(weekendNow)
		_, err := overrides.Activate(weekendNow.Add(time.Hour), "window", "admin-1", "Amina", models.RequestMeta{})
		require.NoError(t, err)
		assert.True(t, svc.CanSubscribe(models.RoleClient, false))
	})

	t.Run("super admin bypass requires the override flag", func(t *testing.T) {
		svc, _ := newMarketFixture(weekendNow)
		assert.False(t, svc.CanSubscribe(models.RoleSuperAdmin, false))
		assert.True(t, svc.CanSubscribe(models.RoleSuperAdmin, true))
	})
}

func TestSchedulePassthrough(t *testing.T) {
	svc, _ := newMarketFixture(time.Date(2025, time.January, 6, 8, 30, 0, 0, market.EATZone))

	schedule := svc.Schedule()
	assert.False(t, schedule.IsOpen)
	assert.Equal(t, 30, schedule.TimeRemaining)
	assert.Equal(t, "Market opens at 9:00 AM", schedule.Message)
}

func TestCurrentTime(t *testing.T) {
	svc, _ := newMarketFixture(time.Date(2025, time.January, 6, 14, 5, 0, 0, market.EATZone))
	assert.Equal(t, "14:05:00", svc.CurrentTime())
}
