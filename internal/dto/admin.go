package dto

type LoanActionRequestDTO struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

type UserActionRequestDTO struct {
	Action string `json:"action"`
}

type BudgetRequestDTO struct {
	Amount int64 `json:"amount"`
}

type CleanupResponseDTO struct {
	Removed int `json:"removed"`
}
