package reconciler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
)

func TestRequestRankUpgrade(t *testing.T) {
	r := NewTest(t)
	st, _ := registered(t, r)

	next := r.RequestRankUpgrade(st, domain.RankGold, "receipt")

	assert.Equal(t, domain.RankGold, next.Users[0].PendingUpgradeRank)
	assert.Equal(t, "receipt", next.Users[0].RankUpgradeBill)
	assert.Equal(t, domain.RankGold, next.Session.PendingUpgradeRank)
	assert.Equal(t, "receipt", next.Session.RankUpgradeBill)
	assert.Equal(t, domain.RankStandard, next.Users[0].Rank, "rank changes only on approval")
	assert.Equal(t, int64(2_000_000), next.Users[0].TotalLimit)

	assert.Equal(t, r.Logout(st), r.RequestRankUpgrade(r.Logout(st), domain.RankGold, "receipt"))
	assert.Equal(t, st, r.RequestRankUpgrade(st, domain.RankStandard, "receipt"))
}

func TestAdminUserAction_Approve(t *testing.T) {
	tests := []struct {
		name            string
		rank            domain.Rank
		borrowed        int64
		expectedLimit   int64
		expectedBalance int64
		expectedProfit  int64
	}{
		{name: "Bronze without debt", rank: domain.RankBronze, expectedLimit: 3_000_000, expectedBalance: 3_000_000, expectedProfit: 150_000},
		{name: "Silver with debt", rank: domain.RankSilver, borrowed: 500_000, expectedLimit: 4_000_000, expectedBalance: 3_500_000, expectedProfit: 200_000},
		{name: "Gold with debt", rank: domain.RankGold, borrowed: 2_000_000, expectedLimit: 5_000_000, expectedBalance: 3_000_000, expectedProfit: 250_000},
		{name: "Diamond", rank: domain.RankDiamond, borrowed: 1_200_000, expectedLimit: 10_000_000, expectedBalance: 8_800_000, expectedProfit: 500_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTest(t)
			st, user := registered(t, r)
			if tt.borrowed > 0 {
				st, _ = r.ApplyLoan(st, tt.borrowed, "")
			}
			st = r.RequestRankUpgrade(st, tt.rank, "receipt")

			st = r.AdminUserAction(st, user.ID, domain.UserActionApproveRank)

			got := st.Users[0]
			assert.Equal(t, tt.rank, got.Rank)
			assert.Equal(t, tt.expectedLimit, got.TotalLimit)
			assert.Equal(t, tt.expectedBalance, got.Balance)
			assert.Equal(t, tt.borrowed, got.Debt(), "outstanding debt is preserved")
			assert.Equal(t, tt.expectedProfit, st.RankProfit)
			assert.Empty(t, got.PendingUpgradeRank)
			assert.Empty(t, got.RankUpgradeBill)
			assert.Equal(t, got.Balance, st.Session.Balance, "logged in user is refreshed")
			assert.Equal(t, tt.rank, st.Session.Rank)
			assertBalancesWithinLimit(t, st)
		})
	}
}

func TestAdminUserAction_Reject(t *testing.T) {
	r := NewTest(t)
	st, user := registered(t, r)
	st = r.RequestRankUpgrade(st, domain.RankSilver, "receipt")

	st = r.AdminUserAction(st, user.ID, domain.UserActionRejectRank)

	assert.Equal(t, domain.RankStandard, st.Users[0].Rank)
	assert.Equal(t, int64(2_000_000), st.Users[0].TotalLimit)
	assert.Empty(t, st.Users[0].PendingUpgradeRank)
	assert.Empty(t, st.Users[0].RankUpgradeBill)
	assert.Empty(t, st.Session.PendingUpgradeRank)
	assert.Equal(t, int64(0), st.RankProfit)
}

func TestAdminUserAction_NoOp(t *testing.T) {
	r := NewTest(t)
	st, user := registered(t, r)
	pending := r.RequestRankUpgrade(st, domain.RankSilver, "receipt")

	tests := []struct {
		name   string
		state  domain.State
		userID string
		action domain.UserAction
	}{
		{name: "No pending upgrade", state: st, userID: user.ID, action: domain.UserActionApproveRank},
		{name: "Unknown user", state: pending, userID: "0000", action: domain.UserActionApproveRank},
		{name: "Unknown action", state: pending, userID: user.ID, action: domain.UserAction("BAN")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.state, r.AdminUserAction(tt.state, tt.userID, tt.action))
		})
	}
}

func TestDeleteUser(t *testing.T) {
	r := NewTest(t, "1111", "2222")
	st, first := registered(t, r)
	st, _ = r.ApplyLoan(st, 100_000, "")
	st, _ = r.ApplyLoan(st, 200_000, "")
	st, second := r.Register(st, domain.Applicant{Phone: "0922222222"})
	st, kept := r.ApplyLoan(st, 300_000, "")

	next := r.DeleteUser(st, first.ID)

	require.Len(t, next.Users, 1)
	assert.Equal(t, second.ID, next.Users[0].ID)
	assert.Equal(t, []domain.LoanRecord{kept}, next.Loans)
	assert.Empty(t, next.LoansOf(first.ID))
	assert.Equal(t, second.ID, next.Session.ID)

	self := r.DeleteUser(st, second.ID)
	assert.Nil(t, self.Session, "deleting the session user logs it out")

	assert.Equal(t, st, r.DeleteUser(st, "0000"))
}

func TestAutoCleanup(t *testing.T) {
	old := fixedNow.AddDate(0, -4, 0)
	recent := fixedNow.AddDate(0, 0, -10)

	users := []domain.User{
		{ID: "1001"}, // every loan settled long ago
		{ID: "1002"}, // settled recently
		{ID: "1003"}, // one still outstanding
		{ID: "1004"}, // only rejections
		{ID: "1005"}, // no loans at all
		{ID: "1006", IsAdmin: true},
	}
	loans := []domain.LoanRecord{
		{ID: "a", UserID: "1001", Status: domain.LoanSettled, Date: old},
		{ID: "b", UserID: "1001", Status: domain.LoanRejected, Date: old},
		{ID: "c", UserID: "1002", Status: domain.LoanSettled, Date: recent},
		{ID: "d", UserID: "1003", Status: domain.LoanSettled, Date: old},
		{ID: "e", UserID: "1003", Status: domain.LoanOutstanding, Date: old},
		{ID: "f", UserID: "1004", Status: domain.LoanRejected, Date: old},
		{ID: "g", UserID: "1006", Status: domain.LoanSettled, Date: old},
	}

	tests := []struct {
		name          string
		grace         time.Duration
		expectedCount int
		expectedUsers []string
	}{
		{
			name:          "Any settled loan qualifies",
			expectedCount: 2,
			expectedUsers: []string{"1003", "1004", "1005", "1006"},
		},
		{
			name:          "Sixty day window",
			grace:         60 * 24 * time.Hour,
			expectedCount: 1,
			expectedUsers: []string{"1002", "1003", "1004", "1005", "1006"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTest(t)
			r.policy.CleanupGrace = tt.grace
			st := domain.State{
				Session: &domain.User{ID: "1001", LoggedIn: true},
				Users:   append([]domain.User(nil), users...),
				Loans:   append([]domain.LoanRecord(nil), loans...),
			}

			next, removed := r.AutoCleanup(st)

			assert.Equal(t, tt.expectedCount, removed)
			ids := make([]string, 0, len(next.Users))
			for _, u := range next.Users {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.expectedUsers, ids)
			for _, l := range next.Loans {
				_, ok := next.FindUser(l.UserID)
				assert.True(t, ok, "orphan loan %s", l.ID)
			}
			assert.Nil(t, next.Session)
		})
	}
}

func TestAutoCleanup_NothingToDo(t *testing.T) {
	r := NewTest(t)
	st, _ := registered(t, r)
	st, _ = r.ApplyLoan(st, 100_000, "")

	next, removed := r.AutoCleanup(st)

	assert.Equal(t, 0, removed)
	assert.Equal(t, st, next)
}

func TestBalanceInvariantAcrossOperations(t *testing.T) {
	r := NewTest(t, "1111", "2222")
	st, first := registered(t, r)
	steps := []func(domain.State) domain.State{
		func(s domain.State) domain.State { s, _ = r.ApplyLoan(s, 1_000_000, ""); return s },
		func(s domain.State) domain.State { s, _ = r.ApplyLoan(s, 1_000_000, ""); return s },
		func(s domain.State) domain.State {
			return r.AdminLoanAction(s, "NDV-1111-001", domain.LoanActionApprove, "")
		},
		func(s domain.State) domain.State {
			return r.AdminLoanAction(s, "NDV-1111-001", domain.LoanActionDisburse, "")
		},
		func(s domain.State) domain.State { return r.SubmitSettlement(s, "NDV-1111-001", "bill") },
		func(s domain.State) domain.State {
			return r.RequestRankUpgrade(s, domain.RankDiamond, "receipt")
		},
		func(s domain.State) domain.State {
			return r.AdminUserAction(s, first.ID, domain.UserActionApproveRank)
		},
		func(s domain.State) domain.State {
			return r.AdminLoanAction(s, "NDV-1111-001", domain.LoanActionSettle, "")
		},
		func(s domain.State) domain.State {
			return r.AdminLoanAction(s, "NDV-1111-002", domain.LoanActionReject, "")
		},
		func(s domain.State) domain.State {
			s, _ = r.Register(s, domain.Applicant{Phone: "0933333333"})
			return s
		},
	}
	for i, step := range steps {
		st = step(st)
		assertBalancesWithinLimit(t, st)
		require.False(t, t.Failed(), "invariant broken after step %d", i)
	}
	i, ok := st.FindUser(first.ID)
	require.True(t, ok)
	assert.Equal(t, int64(10_000_000), st.Users[i].Balance)

	st, removed := r.AutoCleanup(st)
	assert.Equal(t, 1, removed)
	assertBalancesWithinLimit(t, st)
}
