package domain

import "fmt"

type Rank string

const (
	RankStandard Rank = "standard"
	RankBronze   Rank = "bronze"
	RankSilver   Rank = "silver"
	RankGold     Rank = "gold"
	RankDiamond  Rank = "diamond"
)

// Limit returns the credit ceiling granted by an upgrade to r.
// Standard is the entry tier and has no upgrade limit.
func (r Rank) Limit() (int64, bool) {
	switch r {
	case RankBronze:
		return 3_000_000, true
	case RankSilver:
		return 4_000_000, true
	case RankGold:
		return 5_000_000, true
	case RankDiamond:
		return 10_000_000, true
	case RankStandard:
		return 0, false
	default:
		return 0, false
	}
}

func ParseRank(s string) (Rank, error) {
	switch r := Rank(s); r {
	case RankStandard, RankBronze, RankSilver, RankGold, RankDiamond:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRank, s)
	}
}

type LoanStatus string

const (
	// LoanPendingApproval заявка создана и ждёт решения администратора.
	LoanPendingApproval LoanStatus = "PENDING_APPROVAL"
	// LoanApproved заявка одобрена, деньги ещё не выданы.
	LoanApproved LoanStatus = "APPROVED"
	// LoanOutstanding деньги выданы, долг не погашен.
	LoanOutstanding LoanStatus = "OUTSTANDING"
	// LoanAwaitingSettlement заёмщик загрузил подтверждение оплаты.
	LoanAwaitingSettlement LoanStatus = "AWAITING_SETTLEMENT"
	// LoanSettled долг погашен.
	LoanSettled LoanStatus = "SETTLED"
	// LoanRejected заявка отклонена.
	LoanRejected LoanStatus = "REJECTED"
)

func (s LoanStatus) Terminal() bool {
	switch s {
	case LoanSettled, LoanRejected:
		return true
	case LoanPendingApproval, LoanApproved, LoanOutstanding, LoanAwaitingSettlement:
		return false
	default:
		return false
	}
}

type LoanAction string

const (
	LoanActionApprove  LoanAction = "APPROVE"
	LoanActionDisburse LoanAction = "DISBURSE"
	LoanActionSettle   LoanAction = "SETTLE"
	LoanActionReject   LoanAction = "REJECT"
)

func ParseLoanAction(s string) (LoanAction, error) {
	switch a := LoanAction(s); a {
	case LoanActionApprove, LoanActionDisburse, LoanActionSettle, LoanActionReject:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

type UserAction string

const (
	UserActionApproveRank UserAction = "APPROVE_RANK"
	UserActionRejectRank  UserAction = "REJECT_RANK"
)

func ParseUserAction(s string) (UserAction, error) {
	switch a := UserAction(s); a {
	case UserActionApproveRank, UserActionRejectRank:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}
