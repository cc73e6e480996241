package reconciler

import (
	"strconv"
	"time"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
)

const (
	joinDateLayout = "15:04:05 02/01/2006"
	idAttempts     = 100
)

// Register appends a new standard-rank user seeded with the starting credit
// and makes it the session user.
func (r *Reconciler) Register(st domain.State, in domain.Applicant) (domain.State, domain.User) {
	next := st.Clone()
	user := domain.User{
		ID:           r.uniqueID(st),
		Phone:        in.Phone,
		FullName:     in.FullName,
		IDNumber:     in.IDNumber,
		Address:      in.Address,
		Balance:      r.policy.StartingCredit,
		TotalLimit:   r.policy.StartingCredit,
		Rank:         domain.RankStandard,
		RankProgress: 0,
		LoggedIn:     true,
		JoinDate:     r.now().Format(joinDateLayout),
		IDFront:      in.IDFront,
		IDBack:       in.IDBack,
		RefZalo:      in.RefZalo,
		Relationship: in.Relationship,
	}
	next.Users = append(next.Users, user)
	session := user
	next.Session = &session
	return next, user
}

func (r *Reconciler) uniqueID(st domain.State) string {
	for i := 0; i < idAttempts; i++ {
		id := r.newID()
		if _, taken := st.FindUser(id); !taken && id != AdminID {
			return id
		}
	}
	// the four-digit space is nearly exhausted, continue past it
	highest := 9999
	for _, u := range st.Users {
		if n, err := strconv.Atoi(u.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

// Authenticate checks the administrator pair first, then looks the phone up
// among registered users. Registered users are matched by phone only.
func (r *Reconciler) Authenticate(st domain.State, phone, password string) (domain.State, domain.User, error) {
	if r.admin != nil && r.admin.Verify(phone, password) {
		admin := r.adminUser()
		next := st.Clone()
		next.Session = &admin
		return next, admin, nil
	}

	i, ok := st.FindUserByPhone(phone)
	if !ok {
		return st, domain.User{}, domain.ErrInvalidCredentials
	}
	next := st.Clone()
	user := next.Users[i]
	user.LoggedIn = true
	next.Session = &user
	return next, user, nil
}

func (r *Reconciler) adminUser() domain.User {
	return domain.User{
		ID:           AdminID,
		Phone:        r.admin.Phone(),
		FullName:     adminName,
		IDNumber:     adminIDNumber,
		Balance:      adminCredit,
		TotalLimit:   adminCredit,
		Rank:         domain.RankDiamond,
		RankProgress: r.policy.MaxRankProgress,
		LoggedIn:     true,
		IsAdmin:      true,
	}
}

func (r *Reconciler) Logout(st domain.State) domain.State {
	next := st.Clone()
	next.Session = nil
	return next
}

// Resume makes a registered user the session user, as a login would.
func (r *Reconciler) Resume(st domain.State, userID string) domain.State {
	if st.Session != nil && st.Session.ID == userID {
		return st
	}
	if userID == AdminID && r.admin != nil {
		next := st.Clone()
		admin := r.adminUser()
		next.Session = &admin
		return next
	}
	i, ok := st.FindUser(userID)
	if !ok {
		return st
	}
	next := st.Clone()
	user := next.Users[i]
	user.LoggedIn = true
	next.Session = &user
	return next
}

// RequestRankUpgrade records the wanted rank and the fee receipt. The rank
// itself changes only when an administrator approves.
func (r *Reconciler) RequestRankUpgrade(st domain.State, rank domain.Rank, bill string) domain.State {
	user, ok := sessionUser(st)
	if !ok {
		return st
	}
	if _, upgradable := rank.Limit(); !upgradable {
		return st
	}
	next := st.Clone()
	user.PendingUpgradeRank = rank
	user.RankUpgradeBill = bill
	putUser(&next, user)
	return next
}

func (r *Reconciler) AdminUserAction(st domain.State, userID string, action domain.UserAction) domain.State {
	i, ok := st.FindUser(userID)
	if !ok || st.Users[i].PendingUpgradeRank == "" {
		return st
	}
	next := st.Clone()
	user := next.Users[i]

	switch action {
	case domain.UserActionApproveRank:
		limit, upgradable := user.PendingUpgradeRank.Limit()
		if !upgradable {
			return st
		}
		user.Balance = limit - user.Debt()
		user.TotalLimit = limit
		user.Rank = user.PendingUpgradeRank
		next.RankProfit += scale(limit, r.policy.ProfitRate)
	case domain.UserActionRejectRank:
	default:
		return st
	}

	user.PendingUpgradeRank = ""
	user.RankUpgradeBill = ""
	putUser(&next, user)
	return next
}

// DeleteUser removes the user together with every loan it owns.
func (r *Reconciler) DeleteUser(st domain.State, userID string) domain.State {
	if _, ok := st.FindUser(userID); !ok {
		return st
	}
	next := removeUsers(st, map[string]struct{}{userID: {}})
	if next.Session != nil && next.Session.ID == userID {
		next.Session = nil
	}
	return next
}

// AutoCleanup removes non-admin users whose loans are all closed and who have
// settled at least one of them. With a cleanup grace configured the latest
// settled due date must also be older than the grace window.
func (r *Reconciler) AutoCleanup(st domain.State) (domain.State, int) {
	now := r.now()
	doomed := make(map[string]struct{})
	for _, u := range st.Users {
		if u.IsAdmin {
			continue
		}
		if r.cleanupEligible(st.LoansOf(u.ID), now) {
			doomed[u.ID] = struct{}{}
		}
	}
	if len(doomed) == 0 {
		return st, 0
	}
	next := removeUsers(st, doomed)
	if next.Session != nil {
		if _, gone := doomed[next.Session.ID]; gone {
			next.Session = nil
		}
	}
	return next, len(doomed)
}

func (r *Reconciler) cleanupEligible(loans []domain.LoanRecord, now time.Time) bool {
	if len(loans) == 0 {
		return false
	}
	var lastSettled time.Time
	settled := 0
	for _, l := range loans {
		if !l.Status.Terminal() {
			return false
		}
		if l.Status == domain.LoanSettled {
			settled++
			if l.Date.After(lastSettled) {
				lastSettled = l.Date
			}
		}
	}
	if settled == 0 {
		return false
	}
	if r.policy.CleanupGrace > 0 {
		return now.Sub(lastSettled) > r.policy.CleanupGrace
	}
	return true
}

func removeUsers(st domain.State, ids map[string]struct{}) domain.State {
	next := st.Clone()
	users := make([]domain.User, 0, len(next.Users))
	for _, u := range next.Users {
		if _, gone := ids[u.ID]; !gone {
			users = append(users, u)
		}
	}
	loans := make([]domain.LoanRecord, 0, len(next.Loans))
	for _, l := range next.Loans {
		if _, gone := ids[l.UserID]; !gone {
			loans = append(loans, l)
		}
	}
	next.Users = users
	next.Loans = loans
	return next
}
