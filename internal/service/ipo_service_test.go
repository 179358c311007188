package service

import (
	"testing"
	"time"

	"github.com/wcib/ipoportal/internal/market"
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ipoFixture struct {
	svc       IPOService
	overrides OverrideService
	userRepo  *fakeUserRepo
	ipoRepo   *fakeIPORepo
	txRepo    *fakeTransactionRepo
	invRepo   *fakeInvestmentRepo
	cache     *fakeIPOCache
	user      *models.User
	ipo       *models.IPO
}

func newIPOFixture(t *testing.T, now time.Time) *ipoFixture {
	t.Helper()

	clock := market.FixedClock{Time: now}
	overrides := NewOverrideService(repository.NewMemoryOverrideRepository(), clock)
	marketSvc := NewMarketService(overrides, clock)

	userRepo := newFakeUserRepo()
	ipoRepo := newFakeIPORepo()
	txRepo := &fakeTransactionRepo{}
	invRepo := &fakeInvestmentRepo{}
	commissionRepo := &fakeCommissionRepo{}
	cache := &fakeIPOCache{}

	require.NoError(t, commissionRepo.SaveRule(&models.CommissionRule{
		Name:         "Subscription fee",
		Type:         models.CommissionPercentage,
		Value:        1,
		ApplicableTo: []models.TransactionType{models.TransactionTypeSubscription},
		Status:       models.CommissionRuleActive,
	}))

	user := &models.User{
		ID:        primitive.NewObjectID(),
		FullName:  "Joy Wanjiru",
		Email:     "joy@example.com",
		Role:      models.RoleClient,
		Status:    models.UserStatusActive,
		KYCStatus: models.KYCVerified,
		Balance:   100000,
	}
	require.NoError(t, userRepo.SaveUser(user))

	ipo := &models.IPO{
		CompanyName:   "Savanna Foods Ltd",
		Symbol:        "SVF",
		Sector:        "Consumer Goods",
		OfferingPrice: 12.5,
		MinInvestment: 100,
		TotalShares:   10000,
		Status:        models.IPOStatusOpen,
	}
	require.NoError(t, ipoRepo.SaveIPO(ipo))

	commissions := NewCommissionService(commissionRepo, txRepo)
	svc := NewIPOService(ipoRepo, invRepo, txRepo, userRepo, marketSvc, commissions, cache, clock)
	return &ipoFixture{
		svc:       svc,
		overrides: overrides,
		userRepo:  userRepo,
		ipoRepo:   ipoRepo,
		txRepo:    txRepo,
		invRepo:   invRepo,
		cache:     cache,
		user:      user,
		ipo:       ipo,
	}
}

func TestSubscribeDuringMarketHours(t *testing.T) {
	f := newIPOFixture(t, testNow.Add(time.Hour))

	result, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 100, false)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.False(t, result.UsingOverride)
	assert.Equal(t, "Subscription received. Will be processed after market close at 3:00 PM", result.Message)
	assert.Equal(t, int64(100), result.Shares)
	assert.Equal(t, 1250.0, result.Amount)
	assert.Equal(t, 12.5, result.Commission)

	// Wallet debited for amount plus commission.
	assert.Equal(t, 100000-1262.5, f.user.Balance)
	assert.Equal(t, int64(100), f.ipo.SharesSubscribed)

	require.Len(t, f.txRepo.txs, 1)
	tx := f.txRepo.txs[0]
	assert.Equal(t, models.TransactionTypeSubscription, tx.Type)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.Equal(t, -1262.5, tx.Amount)

	require.Len(t, f.invRepo.investments, 1)
	assert.Equal(t, models.InvestmentPendingAllotment, f.invRepo.investments[0].Status)
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestSubscribeRejectedWhenMarketClosed(t *testing.T) {
	f := newIPOFixture(t, weekendNow)

	result, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 100, false)
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrMarketClosed)
	assert.Contains(t, err.Error(), "9 AM - 3 PM")
	assert.Contains(t, err.Error(), "Market closed for weekend. Opens Monday at 9:00 AM")

	// Nothing was written.
	assert.Equal(t, 100000.0, f.user.Balance)
	assert.Empty(t, f.txRepo.txs)
	assert.Empty(t, f.invRepo.investments)
}

func TestSubscribeUnderOverride(t *testing.T) {
	f := newIPOFixture(t, weekendNow)

	_, err := f.overrides.Activate(weekendNow.Add(time.Hour), "weekend offering", "admin-1", "Amina", models.RequestMeta{})
	require.NoError(t, err)

	result, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 100, false)
	require.NoError(t, err)
	assert.True(t, result.UsingOverride)
	assert.Equal(t, "Subscription received (Override Active). Will be processed immediately.", result.Message)
}

func TestSubscribeOverrideFlagAloneIsNotEnough(t *testing.T) {
	f := newIPOFixture(t, weekendNow)

	// A client asserting admin_override without any override active stays gated.
	_, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 100, true)
	require.ErrorIs(t, err, ErrMarketClosed)
}

func TestSubscribeValidationOrder(t *testing.T) {
	openNow := testNow.Add(time.Hour)

	t.Run("kyc checked before shares", func(t *testing.T) {
		f := newIPOFixture(t, openNow)
		f.user.KYCStatus = models.KYCPending
		_, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 0, false)
		assert.ErrorIs(t, err, ErrKYCNotVerified)
	})

	t.Run("zero shares", func(t *testing.T) {
		f := newIPOFixture(t, openNow)
		_, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 0, false)
		assert.ErrorIs(t, err, ErrInvalidShares)
	})

	t.Run("unknown ipo", func(t *testing.T) {
		f := newIPOFixture(t, openNow)
		_, err := f.svc.Subscribe(f.user, primitive.NewObjectID().Hex(), 100, false)
		assert.ErrorIs(t, err, ErrIPONotFound)
	})

	t.Run("closed offering", func(t *testing.T) {
		f := newIPOFixture(t, openNow)
		f.ipo.Status = models.IPOStatusClosed
		_, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 100, false)
		assert.ErrorIs(t, err, ErrIPONotOpen)
	})

	t.Run("below minimum investment", func(t *testing.T) {
		f := newIPOFixture(t, openNow)
		_, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 1, false)
		assert.ErrorIs(t, err, ErrBelowMinInvestment)
	})

	t.Run("oversubscription", func(t *testing.T) {
		f := newIPOFixture(t, openNow)
		f.ipo.SharesSubscribed = f.ipo.TotalShares - 50
		_, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 100, false)
		assert.ErrorIs(t, err, ErrInsufficientShares)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		f := newIPOFixture(t, openNow)
		f.user.Balance = 1250 // covers the amount but not the commission
		_, err := f.svc.Subscribe(f.user, f.ipo.ID.Hex(), 100, false)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})
}

func TestGetAllIPOsUsesCache(t *testing.T) {
	f := newIPOFixture(t, testNow)

	// First read misses and populates.
	ipos, err := f.svc.GetAllIPOs()
	require.NoError(t, err)
	require.Len(t, ipos, 1)
	assert.True(t, f.cache.populated)

	// A direct repository write is invisible until the cache is invalidated.
	require.NoError(t, f.ipoRepo.SaveIPO(&models.IPO{
		CompanyName: "Rift Telecom",
		Symbol:      "RFT",
		Status:      models.IPOStatusUpcoming,
	}))
	ipos, err = f.svc.GetAllIPOs()
	require.NoError(t, err)
	assert.Len(t, ipos, 1)

	f.cache.Invalidate()
	ipos, err = f.svc.GetAllIPOs()
	require.NoError(t, err)
	assert.Len(t, ipos, 2)
}

func TestGetIPOsByStatusSkipsCache(t *testing.T) {
	f := newIPOFixture(t, testNow)

	require.NoError(t, f.ipoRepo.SaveIPO(&models.IPO{
		CompanyName: "Rift Telecom",
		Symbol:      "RFT",
		Status:      models.IPOStatusUpcoming,
	}))

	open, err := f.svc.GetIPOsByStatus(models.IPOStatusOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "SVF", open[0].Symbol)
	assert.False(t, f.cache.populated)
}

func TestCreateIPOInvalidatesCache(t *testing.T) {
	f := newIPOFixture(t, testNow)

	_, err := f.svc.GetAllIPOs()
	require.NoError(t, err)
	require.NoError(t, f.svc.CreateIPO(&models.IPO{CompanyName: "Rift Telecom", Symbol: "RFT"}))
	assert.False(t, f.cache.populated)
}
