// Package reconciler holds the ledger state transitions. Every operation takes
// the current domain.State and returns the next one; the input is never
// mutated. Operations that cannot apply (no session, unknown id, a status that
// does not accept the action) return the state unchanged.
package reconciler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
)

const (
	AdminID       = "AD01"
	adminName     = "QUẢN TRỊ VIÊN"
	adminIDNumber = "SYSTEM_ADMIN"
	adminCredit   = 500_000_000
)

type Policy struct {
	StartingCredit  int64
	InitialBudget   int64
	DisburseRatio   decimal.Decimal
	ProfitRate      decimal.Decimal
	MaxRankProgress int
	MinRunwayDays   int
	CleanupGrace    time.Duration
	ContractPrefix  string
}

func DefaultPolicy() Policy {
	return Policy{
		StartingCredit:  2_000_000,
		InitialBudget:   30_000_000,
		DisburseRatio:   decimal.NewFromInt(1),
		ProfitRate:      decimal.NewFromFloat(0.05),
		MaxRankProgress: 10,
		MinRunwayDays:   10,
		ContractPrefix:  "NDV",
	}
}

// Credentials recognises the single administrator login.
type Credentials interface {
	Verify(phone, password string) bool
	Phone() string
}

type Reconciler struct {
	policy Policy
	admin  Credentials
	now    func() time.Time
	newID  func() string
}

func New(policy Policy, admin Credentials) *Reconciler {
	return &Reconciler{
		policy: policy,
		admin:  admin,
		now:    time.Now,
		newID:  randomID,
	}
}

func (r *Reconciler) Policy() Policy {
	return r.policy
}

// InitialState is the ledger of a fresh installation.
func (r *Reconciler) InitialState() domain.State {
	return domain.State{
		Users:  []domain.User{},
		Loans:  []domain.LoanRecord{},
		Budget: r.policy.InitialBudget,
	}
}

func randomID() string {
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}

// scale applies a policy ratio to an amount, rounded to whole units.
func scale(amount int64, ratio decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(ratio).Round(0).IntPart()
}

// putUser writes u into the registered collection and mirrors it into the
// session when that user is logged in.
func putUser(st *domain.State, u domain.User) {
	if i, ok := st.FindUser(u.ID); ok {
		st.Users[i] = u
	}
	if st.Session != nil && st.Session.ID == u.ID {
		s := u
		s.LoggedIn = st.Session.LoggedIn
		st.Session = &s
	}
}

// sessionUser returns the freshest copy of the session user: the registered
// record when there is one, otherwise the session itself (the admin).
func sessionUser(st domain.State) (domain.User, bool) {
	if st.Session == nil {
		return domain.User{}, false
	}
	if i, ok := st.FindUser(st.Session.ID); ok {
		u := st.Users[i]
		u.LoggedIn = true
		return u, true
	}
	return *st.Session, true
}

func refund(u domain.User, amount int64) domain.User {
	u.Balance = min(u.TotalLimit, u.Balance+amount)
	return u
}
