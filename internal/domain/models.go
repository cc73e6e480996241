package domain

import "time"

type User struct {
	ID                 string `json:"id"`
	Phone              string `json:"phone"`
	FullName           string `json:"fullName"`
	IDNumber           string `json:"idNumber"`
	Address            string `json:"address,omitempty"`
	Balance            int64  `json:"balance"`
	TotalLimit         int64  `json:"totalLimit"`
	Rank               Rank   `json:"rank"`
	RankProgress       int    `json:"rankProgress"`
	LoggedIn           bool   `json:"isLoggedIn"`
	IsAdmin            bool   `json:"isAdmin"`
	PendingUpgradeRank Rank   `json:"pendingUpgradeRank,omitempty"`
	RankUpgradeBill    string `json:"rankUpgradeBill,omitempty"`
	JoinDate           string `json:"joinDate,omitempty"`
	IDFront            string `json:"idFront,omitempty"`
	IDBack             string `json:"idBack,omitempty"`
	RefZalo            string `json:"refZalo,omitempty"`
	Relationship       string `json:"relationship,omitempty"`
}

// Debt is the part of the credit line currently in use.
func (u User) Debt() int64 {
	return u.TotalLimit - u.Balance
}

type LoanRecord struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	Amount          int64      `json:"amount"`
	Date            time.Time  `json:"date"`
	CreatedAt       time.Time  `json:"createdAt"`
	Status          LoanStatus `json:"status"`
	Signature       string     `json:"signature,omitempty"`
	BillImage       string     `json:"billImage,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

// Applicant carries the registration form. Every field is optional.
type Applicant struct {
	Phone        string
	FullName     string
	IDNumber     string
	Address      string
	IDFront      string
	IDBack       string
	RefZalo      string
	Relationship string
}

// State is the whole ledger: the session user, every registered user,
// every loan record (newest first) and the two system counters.
type State struct {
	Session    *User
	Users      []User
	Loans      []LoanRecord
	Budget     int64
	RankProfit int64
}

func (s State) Clone() State {
	c := State{
		Budget:     s.Budget,
		RankProfit: s.RankProfit,
	}
	if s.Session != nil {
		u := *s.Session
		c.Session = &u
	}
	if s.Users != nil {
		c.Users = make([]User, len(s.Users))
		copy(c.Users, s.Users)
	}
	if s.Loans != nil {
		c.Loans = make([]LoanRecord, len(s.Loans))
		copy(c.Loans, s.Loans)
	}
	return c
}

func (s State) FindUser(userID string) (int, bool) {
	for i := range s.Users {
		if s.Users[i].ID == userID {
			return i, true
		}
	}
	return -1, false
}

func (s State) FindUserByPhone(phone string) (int, bool) {
	for i := range s.Users {
		if s.Users[i].Phone == phone {
			return i, true
		}
	}
	return -1, false
}

func (s State) FindLoan(loanID string) (int, bool) {
	for i := range s.Loans {
		if s.Loans[i].ID == loanID {
			return i, true
		}
	}
	return -1, false
}

func (s State) LoansOf(userID string) []LoanRecord {
	loans := make([]LoanRecord, 0)
	for _, l := range s.Loans {
		if l.UserID == userID {
			loans = append(loans, l)
		}
	}
	return loans
}

// Overview is the admin dashboard aggregate.
type Overview struct {
	Budget            int64 `json:"budget"`
	RankProfit        int64 `json:"rankProfit"`
	Users             int   `json:"users"`
	Loans             int   `json:"loans"`
	Notifications     int   `json:"notifications"`
	OutstandingAmount int64 `json:"outstandingAmount"`
}
