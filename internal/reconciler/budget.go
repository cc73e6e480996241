package reconciler

import "github.com/GlebRadaev/ndvmoney/internal/domain"

func (r *Reconciler) SetBudget(st domain.State, amount int64) domain.State {
	next := st.Clone()
	next.Budget = amount
	return next
}

func (r *Reconciler) ResetRankProfit(st domain.State) domain.State {
	next := st.Clone()
	next.RankProfit = 0
	return next
}

// Notifications counts the items waiting for an administrator: loans to
// approve, settlement proofs to review and rank upgrades to decide.
func Notifications(st domain.State) int {
	n := 0
	for _, l := range st.Loans {
		if l.Status == domain.LoanPendingApproval || l.Status == domain.LoanAwaitingSettlement {
			n++
		}
	}
	for _, u := range st.Users {
		if u.PendingUpgradeRank != "" {
			n++
		}
	}
	return n
}

func Overview(st domain.State) domain.Overview {
	var outstanding int64
	for _, l := range st.Loans {
		if l.Status == domain.LoanOutstanding || l.Status == domain.LoanAwaitingSettlement {
			outstanding += l.Amount
		}
	}
	return domain.Overview{
		Budget:            st.Budget,
		RankProfit:        st.RankProfit,
		Users:             len(st.Users),
		Loans:             len(st.Loans),
		Notifications:     Notifications(st),
		OutstandingAmount: outstanding,
	}
}
