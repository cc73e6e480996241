package persist

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
)

const (
	KeySession    = "vnv_user"
	KeyLoans      = "vnv_loans"
	KeyUsers      = "vnv_registered_users"
	KeyBudget     = "vnv_budget"
	KeyRankProfit = "vnv_rank_profit"
)

var Keys = []string{KeySession, KeyLoans, KeyUsers, KeyBudget, KeyRankProfit}

// Encode serialises the state into its key-value entries. Loan records are
// pruned to at most keepPerUser per user; a non-positive value keeps all.
func Encode(st domain.State, keepPerUser int) (map[string]string, error) {
	entries := make(map[string]string, len(Keys))

	entries[KeySession] = ""
	if st.Session != nil {
		b, err := json.Marshal(st.Session)
		if err != nil {
			return nil, fmt.Errorf("encode session: %w", err)
		}
		entries[KeySession] = string(b)
	}

	loans := st.Loans
	if keepPerUser > 0 {
		loans = Prune(loans, keepPerUser)
	}
	if loans == nil {
		loans = []domain.LoanRecord{}
	}
	b, err := json.Marshal(loans)
	if err != nil {
		return nil, fmt.Errorf("encode loans: %w", err)
	}
	entries[KeyLoans] = string(b)

	users := st.Users
	if users == nil {
		users = []domain.User{}
	}
	b, err = json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("encode users: %w", err)
	}
	entries[KeyUsers] = string(b)

	entries[KeyBudget] = strconv.FormatInt(st.Budget, 10)
	entries[KeyRankProfit] = strconv.FormatInt(st.RankProfit, 10)
	return entries, nil
}

// Decode rebuilds a state from stored entries. Missing or unreadable entries
// keep the value from defaults.
func Decode(entries map[string]string, defaults domain.State) domain.State {
	st := defaults.Clone()

	if raw, ok := entries[KeyUsers]; ok && raw != "" {
		var users []domain.User
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			zap.L().Warn("stored users unreadable, starting fresh", zap.Error(err))
		} else {
			st.Users = users
		}
	}

	if raw, ok := entries[KeyLoans]; ok && raw != "" {
		var loans []domain.LoanRecord
		if err := json.Unmarshal([]byte(raw), &loans); err != nil {
			zap.L().Warn("stored loans unreadable, starting fresh", zap.Error(err))
		} else {
			st.Loans = loans
		}
	}

	if raw, ok := entries[KeyBudget]; ok && raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err != nil {
			zap.L().Warn("stored budget unreadable", zap.String("value", raw), zap.Error(err))
		} else {
			st.Budget = v
		}
	}

	if raw, ok := entries[KeyRankProfit]; ok && raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err != nil {
			zap.L().Warn("stored rank profit unreadable", zap.String("value", raw), zap.Error(err))
		} else {
			st.RankProfit = v
		}
	}

	if raw, ok := entries[KeySession]; ok && raw != "" && raw != "null" {
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			zap.L().Warn("stored session unreadable", zap.Error(err))
		} else if user.ID != "" {
			st.Session = &user
		}
	}

	return st
}

// Prune keeps at most keep records per user, preferring records that are
// still in progress over settled or rejected ones. Surviving records keep
// their original order.
func Prune(loans []domain.LoanRecord, keep int) []domain.LoanRecord {
	active := make(map[string]int)
	for _, l := range loans {
		if !l.Status.Terminal() {
			active[l.UserID]++
		}
	}

	keptActive := make(map[string]int)
	keptTerminal := make(map[string]int)
	pruned := make([]domain.LoanRecord, 0, len(loans))
	for _, l := range loans {
		if !l.Status.Terminal() {
			if keptActive[l.UserID] < keep {
				keptActive[l.UserID]++
				pruned = append(pruned, l)
			}
			continue
		}
		room := keep - min(active[l.UserID], keep)
		if keptTerminal[l.UserID] < room {
			keptTerminal[l.UserID]++
			pruned = append(pruned, l)
		}
	}
	return pruned
}
