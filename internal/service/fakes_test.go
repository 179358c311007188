package service

import (
	"errors"

	"github.com/wcib/ipoportal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) SaveUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("user not found")
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id primitive.ObjectID) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAllUsers(page, limit int64) ([]*models.User, int64, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) CountUsers() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountUsersByStatus(status models.UserStatus) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeIPORepo struct {
	ipos map[primitive.ObjectID]*models.IPO
}

func newFakeIPORepo() *fakeIPORepo {
	return &fakeIPORepo{ipos: make(map[primitive.ObjectID]*models.IPO)}
}

func (r *fakeIPORepo) SaveIPO(ipo *models.IPO) error {
	if ipo.ID.IsZero() {
		ipo.ID = primitive.NewObjectID()
	}
	r.ipos[ipo.ID] = ipo
	return nil
}

func (r *fakeIPORepo) UpdateIPO(ipo *models.IPO) error {
	r.ipos[ipo.ID] = ipo
	return nil
}

func (r *fakeIPORepo) GetIPOByID(id primitive.ObjectID) (*models.IPO, error) {
	return r.ipos[id], nil
}

func (r *fakeIPORepo) GetAllIPOs() ([]*models.IPO, error) {
	ipos := make([]*models.IPO, 0, len(r.ipos))
	for _, ipo := range r.ipos {
		ipos = append(ipos, ipo)
	}
	return ipos, nil
}

func (r *fakeIPORepo) GetIPOsByStatus(status models.IPOStatus) ([]*models.IPO, error) {
	var ipos []*models.IPO
	for _, ipo := range r.ipos {
		if ipo.Status == status {
			ipos = append(ipos, ipo)
		}
	}
	return ipos, nil
}

func (r *fakeIPORepo) IncrementSubscribedShares(id primitive.ObjectID, shares int64) error {
	ipo, ok := r.ipos[id]
	if !ok {
		return errors.New("IPO not found")
	}
	ipo.SharesSubscribed += shares
	return nil
}

func (r *fakeIPORepo) CountIPOs() (int64, error) {
	return int64(len(r.ipos)), nil
}

func (r *fakeIPORepo) CountIPOsByStatus(status models.IPOStatus) (int64, error) {
	var count int64
	for _, ipo := range r.ipos {
		if ipo.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeTransactionRepo struct {
	txs []*models.Transaction
}

func (r *fakeTransactionRepo) SaveTransaction(tx *models.Transaction) error {
	if tx.ID.IsZero() {
		tx.ID = primitive.NewObjectID()
	}
	r.txs = append(r.txs, tx)
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(id primitive.ObjectID) (*models.Transaction, error) {
	for _, tx := range r.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) GetTransactionsByUserID(userID primitive.ObjectID) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	for _, tx := range r.txs {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (r *fakeTransactionRepo) GetAllTransactions(page, limit int64) ([]*models.Transaction, error) {
	return r.txs, nil
}

func (r *fakeTransactionRepo) CountTransactions() (int64, error) {
	return int64(len(r.txs)), nil
}

func (r *fakeTransactionRepo) SumCompletedByType(txType models.TransactionType) (float64, error) {
	var total float64
	for _, tx := range r.txs {
		if tx.Type == txType && tx.Status == models.TransactionStatusCompleted {
			total += tx.Amount
		}
	}
	return total, nil
}

type fakeInvestmentRepo struct {
	investments []*models.Investment
}

func (r *fakeInvestmentRepo) SaveInvestment(inv *models.Investment) error {
	if inv.ID.IsZero() {
		inv.ID = primitive.NewObjectID()
	}
	r.investments = append(r.investments, inv)
	return nil
}

func (r *fakeInvestmentRepo) UpdateInvestment(inv *models.Investment) error {
	for i, existing := range r.investments {
		if existing.ID == inv.ID {
			r.investments[i] = inv
			return nil
		}
	}
	return errors.New("investment not found")
}

func (r *fakeInvestmentRepo) GetInvestmentsByUserID(userID primitive.ObjectID) ([]*models.Investment, error) {
	var investments []*models.Investment
	for _, inv := range r.investments {
		if inv.UserID == userID {
			investments = append(investments, inv)
		}
	}
	return investments, nil
}

func (r *fakeInvestmentRepo) CountInvestments() (int64, error) {
	return int64(len(r.investments)), nil
}

type fakeCommissionRepo struct {
	rules []*models.CommissionRule
}

func (r *fakeCommissionRepo) SaveRule(rule *models.CommissionRule) error {
	if rule.ID.IsZero() {
		rule.ID = primitive.NewObjectID()
	}
	r.rules = append(r.rules, rule)
	return nil
}

func (r *fakeCommissionRepo) GetRuleByID(id primitive.ObjectID) (*models.CommissionRule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, nil
}

func (r *fakeCommissionRepo) GetAllRules() ([]*models.CommissionRule, error) {
	return r.rules, nil
}

func (r *fakeCommissionRepo) GetActiveRules() ([]*models.CommissionRule, error) {
	var active []*models.CommissionRule
	for _, rule := range r.rules {
		if rule.Status == models.CommissionRuleActive {
			active = append(active, rule)
		}
	}
	return active, nil
}

func (r *fakeCommissionRepo) UpdateRule(id primitive.ObjectID, rule *models.CommissionRule) error {
	for i, existing := range r.rules {
		if existing.ID == id {
			rule.ID = id
			r.rules[i] = rule
			return nil
		}
	}
	return errors.New("rule not found")
}

func (r *fakeCommissionRepo) DeleteRule(id primitive.ObjectID) error {
	for i, existing := range r.rules {
		if existing.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return errors.New("rule not found")
}

type fakeKYCRepo struct {
	submissions []*models.KYCSubmission
}

func (r *fakeKYCRepo) SaveSubmission(sub *models.KYCSubmission) error {
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	r.submissions = append(r.submissions, sub)
	return nil
}

func (r *fakeKYCRepo) UpdateSubmission(sub *models.KYCSubmission) error {
	for i, existing := range r.submissions {
		if existing.ID == sub.ID {
			r.submissions[i] = sub
			return nil
		}
	}
	return errors.New("submission not found")
}

func (r *fakeKYCRepo) GetSubmissionByID(id primitive.ObjectID) (*models.KYCSubmission, error) {
	for _, sub := range r.submissions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *fakeKYCRepo) GetSubmissionsByStatus(status models.KYCReviewStatus) ([]*models.KYCSubmission, error) {
	var subs []*models.KYCSubmission
	for _, sub := range r.submissions {
		if sub.Status == status {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (r *fakeKYCRepo) GetAllSubmissions() ([]*models.KYCSubmission, error) {
	return r.submissions, nil
}

func (r *fakeKYCRepo) GetLatestByUserID(userID primitive.ObjectID) (*models.KYCSubmission, error) {
	for i := len(r.submissions) - 1; i >= 0; i-- {
		if r.submissions[i].UserID == userID {
			return r.submissions[i], nil
		}
	}
	return nil, nil
}

func (r *fakeKYCRepo) CountByStatus(status models.KYCReviewStatus) (int64, error) {
	var count int64
	for _, sub := range r.submissions {
		if sub.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeIPOCache struct {
	ipos        []*models.IPO
	populated   bool
	invalidated int
}

func (c *fakeIPOCache) GetIPOs() ([]*models.IPO, bool) {
	return c.ipos, c.populated
}

func (c *fakeIPOCache) SetIPOs(ipos []*models.IPO) {
	c.ipos = ipos
	c.populated = true
}

func (c *fakeIPOCache) Invalidate() {
	c.ipos = nil
	c.populated = false
	c.invalidated++
}
