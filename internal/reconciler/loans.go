package reconciler

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
)

// ApplyLoan files a new loan for the session user and debits the amount
// from its available credit. The record goes to the head of the collection.
func (r *Reconciler) ApplyLoan(st domain.State, amount int64, signature string) (domain.State, domain.LoanRecord) {
	user, ok := sessionUser(st)
	if !ok || amount <= 0 {
		return st, domain.LoanRecord{}
	}
	now := r.now()
	loan := domain.LoanRecord{
		ID:        r.contractID(st, user.ID),
		UserID:    user.ID,
		UserName:  user.FullName,
		Amount:    amount,
		Date:      r.DueDate(now),
		CreatedAt: now,
		Status:    domain.LoanPendingApproval,
		Signature: signature,
	}

	next := st.Clone()
	next.Loans = append([]domain.LoanRecord{loan}, next.Loans...)
	user.Balance -= amount
	putUser(&next, user)
	return next, loan
}

// DueDate is the first day of the next month, or of the month after when
// fewer than MinRunwayDays remain until then.
func (r *Reconciler) DueDate(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	if int(due.Sub(today).Hours()/24) < r.policy.MinRunwayDays {
		due = due.AddDate(0, 1, 0)
	}
	return due
}

func (r *Reconciler) contractID(st domain.State, userID string) string {
	seq := len(st.LoansOf(userID)) + 1
	for {
		id := fmt.Sprintf("%s-%s-%03d", r.policy.ContractPrefix, userID, seq)
		if _, taken := st.FindLoan(id); !taken {
			return id
		}
		seq++
	}
}

// SubmitSettlement attaches the repayment proof to an outstanding loan and
// puts it in the settlement review queue. No money moves here.
func (r *Reconciler) SubmitSettlement(st domain.State, loanID, bill string) domain.State {
	i, ok := st.FindLoan(loanID)
	if !ok || st.Loans[i].Status != domain.LoanOutstanding {
		return st
	}
	next := st.Clone()
	next.Loans[i].Status = domain.LoanAwaitingSettlement
	next.Loans[i].BillImage = bill
	return next
}

// AdminLoanAction moves a loan through its lifecycle:
//
//	PENDING_APPROVAL    --APPROVE-->  APPROVED
//	APPROVED            --DISBURSE--> OUTSTANDING
//	AWAITING_SETTLEMENT --SETTLE-->   SETTLED
//	AWAITING_SETTLEMENT --REJECT-->   OUTSTANDING (the proof is rejected, not the loan)
//	PENDING_APPROVAL    --REJECT-->   REJECTED
//	APPROVED            --REJECT-->   REJECTED
//
// Any other pair leaves the state untouched.
func (r *Reconciler) AdminLoanAction(st domain.State, loanID string, action domain.LoanAction, reason string) domain.State {
	i, ok := st.FindLoan(loanID)
	if !ok {
		return st
	}
	loan := st.Loans[i]
	next := st.Clone()

	switch action {
	case domain.LoanActionApprove:
		if loan.Status != domain.LoanPendingApproval {
			return st
		}
		loan.Status = domain.LoanApproved

	case domain.LoanActionDisburse:
		if loan.Status != domain.LoanApproved {
			return st
		}
		loan.Status = domain.LoanOutstanding
		next.Budget -= scale(loan.Amount, r.policy.DisburseRatio)

	case domain.LoanActionSettle:
		if loan.Status != domain.LoanAwaitingSettlement {
			return st
		}
		loan.Status = domain.LoanSettled
		next.Budget += scale(loan.Amount, r.policy.DisburseRatio)
		if j, found := next.FindUser(loan.UserID); found {
			user := refund(next.Users[j], loan.Amount)
			user.RankProgress = min(r.policy.MaxRankProgress, user.RankProgress+1)
			putUser(&next, user)
		}

	case domain.LoanActionReject:
		switch loan.Status {
		case domain.LoanAwaitingSettlement:
			loan.Status = domain.LoanOutstanding
		case domain.LoanPendingApproval, domain.LoanApproved:
			loan.Status = domain.LoanRejected
			if j, found := next.FindUser(loan.UserID); found {
				putUser(&next, refund(next.Users[j], loan.Amount))
			}
		default:
			return st
		}
		loan.RejectionReason = reason

	default:
		return st
	}

	next.Loans[i] = loan
	return next
}
