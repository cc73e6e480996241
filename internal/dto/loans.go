package dto

type ApplyLoanRequestDTO struct {
	Amount    int64  `json:"amount"`
	Signature string `json:"signature"`
}

type SettlementRequestDTO struct {
	BillImage string `json:"billImage"`
}

type RankUpgradeRequestDTO struct {
	Rank      string `json:"rank"`
	BillImage string `json:"billImage"`
}

type AdviceRequestDTO struct {
	Amount int64  `json:"amount"`
	Term   int    `json:"term"`
	Income *int64 `json:"income,omitempty"`
}

type AdviceResponseDTO struct {
	Advice string `json:"advice"`
}
