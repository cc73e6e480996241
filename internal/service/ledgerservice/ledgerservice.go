// Package ledgerservice owns the live ledger state. Requests are applied one
// at a time; every change is handed to the persister.
package ledgerservice

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/reconciler"
)

type Persister interface {
	Schedule(st domain.State)
}

type Service struct {
	rec       *reconciler.Reconciler
	persister Persister

	mu    sync.Mutex
	state domain.State
}

func New(rec *reconciler.Reconciler, initial domain.State, persister Persister) *Service {
	return &Service{
		rec:       rec,
		persister: persister,
		state:     initial,
	}
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// commit must be called with mu held.
func (s *Service) commit(next domain.State) {
	s.state = next
	s.persister.Schedule(next.Clone())
}

// actAs makes userID the session user. It fails for unknown ids and for the
// administrator, who has no account in the ledger.
func (s *Service) actAs(userID string) (domain.State, domain.User, error) {
	if _, ok := s.state.FindUser(userID); !ok {
		return s.state, domain.User{}, domain.ErrUserNotFound
	}
	st := s.rec.Resume(s.state, userID)
	i, _ := st.FindUser(userID)
	return st, st.Users[i], nil
}

func (s *Service) Register(ctx context.Context, in domain.Applicant) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, user := s.rec.Register(s.state, in)
	s.commit(next)
	zap.L().Info("user registered", zap.String("userID", user.ID), zap.String("phone", user.Phone))
	return user, nil
}

func (s *Service) Login(ctx context.Context, phone, password string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, user, err := s.rec.Authenticate(s.state, phone, password)
	if err != nil {
		zap.L().Info("login rejected", zap.String("phone", phone))
		return domain.User{}, err
	}
	s.commit(next)
	zap.L().Info("user logged in", zap.String("userID", user.ID), zap.Bool("admin", user.IsAdmin))
	return user, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Session == nil || s.state.Session.ID != userID {
		return nil
	}
	s.commit(s.rec.Logout(s.state))
	return nil
}

func (s *Service) Profile(ctx context.Context, userID string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID == reconciler.AdminID {
		st := s.rec.Resume(s.state, userID)
		if st.Session == nil || !st.Session.IsAdmin {
			return domain.User{}, domain.ErrUserNotFound
		}
		return *st.Session, nil
	}
	_, user, err := s.actAs(userID)
	return user, err
}

func (s *Service) Loans(ctx context.Context, userID string) ([]domain.LoanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.FindUser(userID); !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.state.LoansOf(userID), nil
}

func (s *Service) ApplyLoan(ctx context.Context, userID string, amount int64, signature string) (domain.LoanRecord, error) {
	if amount <= 0 {
		return domain.LoanRecord{}, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, user, err := s.actAs(userID)
	if err != nil {
		return domain.LoanRecord{}, err
	}
	if amount > user.Balance {
		return domain.LoanRecord{}, domain.ErrInvalidAmount
	}
	next, loan := s.rec.ApplyLoan(st, amount, signature)
	s.commit(next)
	zap.L().Info("loan applied", zap.String("loanID", loan.ID), zap.Int64("amount", amount))
	return loan, nil
}

func (s *Service) SubmitSettlement(ctx context.Context, userID, loanID, bill string) (domain.LoanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, _, err := s.actAs(userID)
	if err != nil {
		return domain.LoanRecord{}, err
	}
	i, ok := st.FindLoan(loanID)
	if !ok || st.Loans[i].UserID != userID {
		return domain.LoanRecord{}, domain.ErrLoanNotFound
	}
	if st.Loans[i].Status != domain.LoanOutstanding {
		return domain.LoanRecord{}, domain.ErrNotApplied
	}
	next := s.rec.SubmitSettlement(st, loanID, bill)
	s.commit(next)
	i, _ = next.FindLoan(loanID)
	return next.Loans[i], nil
}

func (s *Service) RequestRankUpgrade(ctx context.Context, userID string, rank domain.Rank, bill string) (domain.User, error) {
	if _, ok := rank.Limit(); !ok {
		return domain.User{}, domain.ErrUnknownRank
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, _, err := s.actAs(userID)
	if err != nil {
		return domain.User{}, err
	}
	next := s.rec.RequestRankUpgrade(st, rank, bill)
	s.commit(next)
	i, _ := next.FindUser(userID)
	zap.L().Info("rank upgrade requested", zap.String("userID", userID), zap.String("rank", string(rank)))
	return next.Users[i], nil
}
