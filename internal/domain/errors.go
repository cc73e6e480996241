package domain

import "errors"

// ErrInvalidCredentials carries the message shown on the login screen.
var ErrInvalidCredentials = errors.New("Thông tin đăng nhập không chính xác. Vui lòng kiểm tra lại.")

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrLoanNotFound  = errors.New("loan not found")
	ErrNoSession     = errors.New("no active session")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrUnknownRank   = errors.New("unknown rank")
	ErrUnknownAction = errors.New("unknown action")
	ErrNotApplied    = errors.New("action not applicable in current state")
)
