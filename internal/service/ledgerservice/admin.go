package ledgerservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/reconciler"
)

func (s *Service) Overview(ctx context.Context) domain.Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return reconciler.Overview(s.state)
}

func (s *Service) Users(ctx context.Context) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone().Users
}

func (s *Service) AllLoans(ctx context.Context) []domain.LoanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone().Loans
}

func (s *Service) LoanAction(ctx context.Context, loanID string, action domain.LoanAction, reason string) (domain.LoanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.state.FindLoan(loanID)
	if !ok {
		return domain.LoanRecord{}, domain.ErrLoanNotFound
	}
	before := s.state.Loans[i].Status

	next := s.rec.AdminLoanAction(s.state, loanID, action, reason)
	i, _ = next.FindLoan(loanID)
	if next.Loans[i].Status == before {
		return domain.LoanRecord{}, domain.ErrNotApplied
	}
	s.commit(next)
	zap.L().Info("loan action applied",
		zap.String("loanID", loanID),
		zap.String("action", string(action)),
		zap.String("from", string(before)),
		zap.String("to", string(next.Loans[i].Status)),
	)
	return next.Loans[i], nil
}

func (s *Service) UserAction(ctx context.Context, userID string, action domain.UserAction) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.state.FindUser(userID)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	if s.state.Users[i].PendingUpgradeRank == "" {
		return domain.User{}, domain.ErrNotApplied
	}

	next := s.rec.AdminUserAction(s.state, userID, action)
	s.commit(next)
	i, _ = next.FindUser(userID)
	zap.L().Info("user action applied", zap.String("userID", userID), zap.String("action", string(action)))
	return next.Users[i], nil
}

func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.FindUser(userID); !ok {
		return domain.ErrUserNotFound
	}
	s.commit(s.rec.DeleteUser(s.state, userID))
	zap.L().Info("user deleted", zap.String("userID", userID))
	return nil
}

// Cleanup removes every user that qualifies for automatic cleanup and
// reports how many were removed.
func (s *Service) Cleanup(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := s.rec.AutoCleanup(s.state)
	if removed > 0 {
		s.commit(next)
	}
	zap.L().Info("cleanup finished", zap.Int("removed", removed))
	return removed, nil
}

func (s *Service) SetBudget(ctx context.Context, amount int64) (domain.Overview, error) {
	if amount < 0 {
		return domain.Overview{}, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(s.rec.SetBudget(s.state, amount))
	return reconciler.Overview(s.state), nil
}

func (s *Service) ResetRankProfit(ctx context.Context) (domain.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(s.rec.ResetRankProfit(s.state))
	return reconciler.Overview(s.state), nil
}
