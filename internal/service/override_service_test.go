package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/wcib/ipoportal/internal/market"
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-01-06 09:00 EAT is a Monday at market open.
var testNow = time.Date(2025, time.January, 6, 9, 0, 0, 0, market.EATZone)

func newOverrideFixture(now time.Time) (OverrideService, *repository.MemoryOverrideRepository) {
	repo := repository.NewMemoryOverrideRepository()
	return NewOverrideService(repo, market.FixedClock{Time: now}), repo
}

func TestActivateOverride(t *testing.T) {
	svc, _ := newOverrideFixture(testNow)

	until := testNow.Add(2 * time.Hour)
	override, err := svc.Activate(until, "Extended trading window", "admin-1", "Amina", models.RequestMeta{IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	require.NotNil(t, override)

	assert.True(t, override.Enabled)
	assert.NotEmpty(t, override.ID)
	assert.Equal(t, "admin-1", override.ActivatedBy)
	assert.Equal(t, "Amina", override.ActivatedByName)
	assert.True(t, svc.IsActive())
}

func TestActivateRejectsPastExpiry(t *testing.T) {
	svc, _ := newOverrideFixture(testNow)

	_, err := svc.Activate(testNow.Add(-time.Minute), "too late", "admin-1", "Amina", models.RequestMeta{})
	assert.ErrorIs(t, err, ErrActiveUntilPast)

	// The boundary is strict: an expiry equal to now is also rejected.
	_, err = svc.Activate(testNow, "boundary", "admin-1", "Amina", models.RequestMeta{})
	assert.ErrorIs(t, err, ErrActiveUntilPast)

	assert.False(t, svc.IsActive())
}

func TestActivateReplacesPriorOverride(t *testing.T) {
	svc, repo := newOverrideFixture(testNow)

	first, err := svc.Activate(testNow.Add(time.Hour), "first", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)
	second, err := svc.Activate(testNow.Add(3*time.Hour), "second", "admin-2", "Brian", models.RequestMeta{})
	require.NoError(t, err)

	stored, err := repo.GetOverride()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, second.ID, stored.ID)
	assert.NotEqual(t, first.ID, stored.ID)
}

func TestLazyExpiry(t *testing.T) {
	repo := repository.NewMemoryOverrideRepository()

	active := NewOverrideService(repo, market.FixedClock{Time: testNow})
	_, err := active.Activate(testNow.Add(30*time.Minute), "short window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)
	assert.True(t, active.IsActive())

	// Same record read after the expiry instant reports inactive without any
	// state transition being written.
	later := NewOverrideService(repo, market.FixedClock{Time: testNow.Add(31 * time.Minute)})
	assert.False(t, later.IsActive())

	stored, err := repo.GetOverride()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Enabled, "expiry must not rewrite the record")
}

func TestExpiryBoundaryIsExclusive(t *testing.T) {
	repo := repository.NewMemoryOverrideRepository()

	active := NewOverrideService(repo, market.FixedClock{Time: testNow})
	_, err := active.Activate(testNow.Add(30*time.Minute), "short window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	atExpiry := NewOverrideService(repo, market.FixedClock{Time: testNow.Add(30 * time.Minute)})
	assert.False(t, atExpiry.IsActive(), "override ends exactly at active_until")
}

func TestDeactivateKeepsRecord(t *testing.T) {
	svc, repo := newOverrideFixture(testNow)

	_, err := svc.Activate(testNow.Add(time.Hour), "window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate("admin-2", "Brian", models.RequestMeta{}))

	assert.False(t, svc.IsActive())
	stored, err := repo.GetOverride()
	require.NoError(t, err)
	require.NotNil(t, stored, "deactivation disables but does not remove")
	assert.False(t, stored.Enabled)
}

func TestDeactivateWithoutRecordIsNoOp(t *testing.T) {
	svc, repo := newOverrideFixture(testNow)

	require.NoError(t, svc.Deactivate("admin-1", "Amina", models.RequestMeta{}))

	entries, err := repo.ListAudit(10)
	require.NoError(t, err)
	assert.Empty(t, entries, "a no-op deactivation leaves no audit trace")
}

func TestClearRemovesRecord(t *testing.T) {
	svc, repo := newOverrideFixture(testNow)

	_, err := svc.Activate(testNow.Add(time.Hour), "window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)
	require.NoError(t, svc.Clear("admin-1", "Amina", models.RequestMeta{}))

	stored, err := repo.GetOverride()
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.False(t, svc.IsActive())
}

func TestAuditOrderNewestFirst(t *testing.T) {
	svc, _ := newOverrideFixture(testNow)

	_, err := svc.Activate(testNow.Add(time.Hour), "window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)
	require.NoError(t, svc.Clear("admin-1", "Amina", models.RequestMeta{}))

	entries, err := svc.AuditLog(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.OverrideCleared, entries[0].Action)
	assert.Equal(t, models.OverrideActivated, entries[1].Action)
}

func TestAuditLogCap(t *testing.T) {
	svc, repo := newOverrideFixture(testNow)

	for i := 0; i < repository.AuditLogCap+20; i++ {
		_, err := svc.Activate(testNow.Add(time.Hour), fmt.Sprintf("window %d", i), "admin-1", "Amina", models.RequestMeta{})
		require.NoError(t, err)
	}

	entries, err := repo.ListAudit(repository.AuditLogCap + 20)
	require.NoError(t, err)
	assert.Len(t, entries, repository.AuditLogCap)
	// The newest activation survives; the earliest were evicted.
	assert.Equal(t, fmt.Sprintf("window %d", repository.AuditLogCap+19), entries[0].Reason)
}

func TestStatusReportsRemainingMinutes(t *testing.T) {
	svc, _ := newOverrideFixture(testNow)

	_, err := svc.Activate(testNow.Add(90*time.Minute+30*time.Second), "window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	status := svc.Status(models.RoleClient)
	assert.True(t, status.IsOverrideActive)
	assert.Equal(t, 90, status.TimeRemaining, "remaining time truncates to whole minutes")
	assert.Equal(t, "admin-1", status.ActivatedBy)
	require.NotNil(t, status.OverrideEndsAt)
}

func TestStatusBypass(t *testing.T) {
	svc, _ := newOverrideFixture(testNow)

	// No override: only the super admin role can bypass.
	assert.True(t, svc.Status(models.RoleSuperAdmin).CanBypass)
	assert.False(t, svc.Status(models.RoleClient).CanBypass)
	assert.False(t, svc.Status(models.RoleITAdmin).CanBypass)

	// Any active override reports bypass for every role.
	_, err := svc.Activate(testNow.Add(time.Hour), "window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)
	assert.True(t, svc.Status(models.RoleClient).CanBypass)
	assert.True(t, svc.Status(models.RoleViewer).CanBypass)
}

func TestInitializeClearsExpiredRecord(t *testing.T) {
	repo := repository.NewMemoryOverrideRepository()

	earlier := NewOverrideService(repo, market.FixedClock{Time: testNow.Add(-2 * time.Hour)})
	_, err := earlier.Activate(testNow.Add(-time.Hour), "stale window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	restarted := NewOverrideService(repo, market.FixedClock{Time: testNow})
	require.NoError(t, restarted.Initialize())

	stored, err := repo.GetOverride()
	require.NoError(t, err)
	assert.Nil(t, stored)

	entries, err := repo.ListAudit(10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, models.OverrideCleared, entries[0].Action)
	assert.Equal(t, "system", entries[0].UserID)
	assert.Equal(t, "System", entries[0].UserName)
}

func TestInitializeKeepsLiveRecord(t *testing.T) {
	repo := repository.NewMemoryOverrideRepository()

	svc := NewOverrideService(repo, market.FixedClock{Time: testNow})
	_, err := svc.Activate(testNow.Add(time.Hour), "live window", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	require.NoError(t, svc.Initialize())
	assert.True(t, svc.IsActive())
}
