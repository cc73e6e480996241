package ledgerservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/reconciler"
)

type stubCredentials struct{}

func (stubCredentials) Verify(phone, password string) bool {
	return phone == "0877203996" && password == "119011"
}

func (stubCredentials) Phone() string { return "0877203996" }

type LedgerServiceSuite struct {
	suite.Suite
	ctx       context.Context
	persister *MockPersister
	service   *Service
	saved     []domain.State
}

func (s *LedgerServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.saved = nil
	s.persister = NewMockPersister(ctrl)
	s.persister.EXPECT().Schedule(gomock.Any()).Do(func(st domain.State) {
		s.saved = append(s.saved, st)
	}).AnyTimes()

	rec := reconciler.New(reconciler.DefaultPolicy(), stubCredentials{})
	s.service = New(rec, rec.InitialState(), s.persister)
}

func (s *LedgerServiceSuite) register(phone string) domain.User {
	user, err := s.service.Register(s.ctx, domain.Applicant{Phone: phone, FullName: "Nguyễn Văn A"})
	s.Require().NoError(err)
	return user
}

func (s *LedgerServiceSuite) lastSaved() domain.State {
	s.Require().NotEmpty(s.saved, "nothing was persisted")
	return s.saved[len(s.saved)-1]
}

func (s *LedgerServiceSuite) TestRegisterPersists() {
	user := s.register("0901234567")

	s.Equal(int64(2_000_000), user.Balance)
	st := s.lastSaved()
	s.Require().Len(st.Users, 1)
	s.Equal(user.ID, st.Session.ID)
}

func (s *LedgerServiceSuite) TestLogin() {
	user := s.register("0901234567")

	got, err := s.service.Login(s.ctx, "0901234567", "anything")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)

	admin, err := s.service.Login(s.ctx, "0877203996", "119011")
	s.Require().NoError(err)
	s.True(admin.IsAdmin)
	s.Equal(reconciler.AdminID, admin.ID)

	_, err = s.service.Login(s.ctx, "0999999999", "x")
	s.ErrorIs(err, domain.ErrInvalidCredentials)
}

func (s *LedgerServiceSuite) TestLogout() {
	user := s.register("0901234567")
	other := s.register("0902222222")

	s.Require().NoError(s.service.Logout(s.ctx, user.ID))
	s.Equal(other.ID, s.service.Snapshot().Session.ID, "only the session user is logged out")

	s.Require().NoError(s.service.Logout(s.ctx, other.ID))
	s.Nil(s.service.Snapshot().Session)
}

func (s *LedgerServiceSuite) TestProfile() {
	user := s.register("0901234567")

	got, err := s.service.Profile(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Phone, got.Phone)

	admin, err := s.service.Profile(s.ctx, reconciler.AdminID)
	s.Require().NoError(err)
	s.True(admin.IsAdmin)

	_, err = s.service.Profile(s.ctx, "0000")
	s.ErrorIs(err, domain.ErrUserNotFound)
}

func (s *LedgerServiceSuite) TestApplyLoanActsAsCaller() {
	first := s.register("0901111111")
	second := s.register("0902222222")

	loan, err := s.service.ApplyLoan(s.ctx, first.ID, 500_000, "sig")
	s.Require().NoError(err)

	s.Equal(first.ID, loan.UserID)
	s.Equal(domain.LoanPendingApproval, loan.Status)
	st := s.service.Snapshot()
	i, _ := st.FindUser(first.ID)
	s.Equal(int64(1_500_000), st.Users[i].Balance)
	j, _ := st.FindUser(second.ID)
	s.Equal(int64(2_000_000), st.Users[j].Balance)

	loans, err := s.service.Loans(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Len(loans, 1)
	loans, err = s.service.Loans(s.ctx, second.ID)
	s.Require().NoError(err)
	s.Empty(loans)
}

func (s *LedgerServiceSuite) TestApplyLoanErrors() {
	user := s.register("0901111111")
	saved := len(s.saved)

	_, err := s.service.ApplyLoan(s.ctx, user.ID, 0, "")
	s.ErrorIs(err, domain.ErrInvalidAmount)
	_, err = s.service.ApplyLoan(s.ctx, "0000", 100, "")
	s.ErrorIs(err, domain.ErrUserNotFound)
	_, err = s.service.ApplyLoan(s.ctx, reconciler.AdminID, 100, "")
	s.ErrorIs(err, domain.ErrUserNotFound)
	_, err = s.service.ApplyLoan(s.ctx, user.ID, user.Balance+1, "")
	s.ErrorIs(err, domain.ErrInvalidAmount, "amount above the available balance")
	s.Len(s.saved, saved, "rejected requests are not persisted")

	loans, err := s.service.Loans(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Empty(loans)

	_, err = s.service.ApplyLoan(s.ctx, user.ID, user.Balance, "")
	s.NoError(err, "the whole balance can be requested")
}

func (s *LedgerServiceSuite) TestLoanLifecycle() {
	user := s.register("0901111111")
	loan, err := s.service.ApplyLoan(s.ctx, user.ID, 1_000_000, "sig")
	s.Require().NoError(err)

	_, err = s.service.SubmitSettlement(s.ctx, user.ID, loan.ID, "bill")
	s.ErrorIs(err, domain.ErrNotApplied, "only outstanding loans can be settled")

	got, err := s.service.LoanAction(s.ctx, loan.ID, domain.LoanActionApprove, "")
	s.Require().NoError(err)
	s.Equal(domain.LoanApproved, got.Status)

	got, err = s.service.LoanAction(s.ctx, loan.ID, domain.LoanActionDisburse, "")
	s.Require().NoError(err)
	s.Equal(domain.LoanOutstanding, got.Status)
	s.Equal(int64(29_000_000), s.service.Overview(s.ctx).Budget)

	got, err = s.service.SubmitSettlement(s.ctx, user.ID, loan.ID, "bill")
	s.Require().NoError(err)
	s.Equal(domain.LoanAwaitingSettlement, got.Status)
	s.Equal("bill", got.BillImage)

	got, err = s.service.LoanAction(s.ctx, loan.ID, domain.LoanActionSettle, "")
	s.Require().NoError(err)
	s.Equal(domain.LoanSettled, got.Status)

	overview := s.service.Overview(s.ctx)
	s.Equal(int64(30_000_000), overview.Budget)
	s.Equal(int64(0), overview.OutstandingAmount)
	profile, err := s.service.Profile(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(int64(2_000_000), profile.Balance)
	s.Equal(1, profile.RankProgress)

	_, err = s.service.LoanAction(s.ctx, loan.ID, domain.LoanActionSettle, "")
	s.ErrorIs(err, domain.ErrNotApplied)
	_, err = s.service.LoanAction(s.ctx, "NDV-0000-001", domain.LoanActionApprove, "")
	s.ErrorIs(err, domain.ErrLoanNotFound)
}

func (s *LedgerServiceSuite) TestSubmitSettlementOwnership() {
	owner := s.register("0901111111")
	stranger := s.register("0902222222")
	loan, err := s.service.ApplyLoan(s.ctx, owner.ID, 100_000, "")
	s.Require().NoError(err)

	_, err = s.service.SubmitSettlement(s.ctx, stranger.ID, loan.ID, "bill")

	s.ErrorIs(err, domain.ErrLoanNotFound)
}

func (s *LedgerServiceSuite) TestRankUpgrade() {
	user := s.register("0901111111")

	_, err := s.service.RequestRankUpgrade(s.ctx, user.ID, domain.RankStandard, "bill")
	s.ErrorIs(err, domain.ErrUnknownRank)

	_, err = s.service.UserAction(s.ctx, user.ID, domain.UserActionApproveRank)
	s.ErrorIs(err, domain.ErrNotApplied, "nothing pending yet")

	pending, err := s.service.RequestRankUpgrade(s.ctx, user.ID, domain.RankGold, "bill")
	s.Require().NoError(err)
	s.Equal(domain.RankGold, pending.PendingUpgradeRank)
	s.Equal(1, s.service.Overview(s.ctx).Notifications)

	got, err := s.service.UserAction(s.ctx, user.ID, domain.UserActionApproveRank)
	s.Require().NoError(err)
	s.Equal(domain.RankGold, got.Rank)
	s.Equal(int64(5_000_000), got.TotalLimit)
	s.Equal(int64(250_000), s.service.Overview(s.ctx).RankProfit)

	_, err = s.service.UserAction(s.ctx, "0000", domain.UserActionApproveRank)
	s.ErrorIs(err, domain.ErrUserNotFound)
}

func (s *LedgerServiceSuite) TestDeleteAndCleanup() {
	keep := s.register("0901111111")
	done := s.register("0902222222")
	loan, err := s.service.ApplyLoan(s.ctx, done.ID, 100_000, "")
	s.Require().NoError(err)
	for _, action := range []domain.LoanAction{domain.LoanActionApprove, domain.LoanActionDisburse} {
		_, err = s.service.LoanAction(s.ctx, loan.ID, action, "")
		s.Require().NoError(err)
	}
	_, err = s.service.SubmitSettlement(s.ctx, done.ID, loan.ID, "bill")
	s.Require().NoError(err)
	_, err = s.service.LoanAction(s.ctx, loan.ID, domain.LoanActionSettle, "")
	s.Require().NoError(err)

	removed, err := s.service.Cleanup(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, removed)
	s.Len(s.service.Users(s.ctx), 1)
	s.Empty(s.service.AllLoans(s.ctx))

	s.Require().NoError(s.service.DeleteUser(s.ctx, keep.ID))
	s.Empty(s.service.Users(s.ctx))
	s.ErrorIs(s.service.DeleteUser(s.ctx, keep.ID), domain.ErrUserNotFound)
}

func (s *LedgerServiceSuite) TestBudgetTools() {
	overview, err := s.service.SetBudget(s.ctx, 50_000_000)
	s.Require().NoError(err)
	s.Equal(int64(50_000_000), overview.Budget)

	_, err = s.service.SetBudget(s.ctx, -1)
	s.ErrorIs(err, domain.ErrInvalidAmount)

	overview, err = s.service.ResetRankProfit(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), overview.RankProfit)
	s.Equal(int64(50_000_000), s.lastSaved().Budget)
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func TestSnapshotIsIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := NewMockPersister(ctrl)
	persister.EXPECT().Schedule(gomock.Any()).AnyTimes()
	rec := reconciler.New(reconciler.DefaultPolicy(), stubCredentials{})
	service := New(rec, rec.InitialState(), persister)

	_, err := service.Register(context.Background(), domain.Applicant{Phone: "0901234567"})
	require.NoError(t, err)

	snap := service.Snapshot()
	snap.Users[0].Balance = 0

	assert.Equal(t, int64(2_000_000), service.Snapshot().Users[0].Balance)
}
