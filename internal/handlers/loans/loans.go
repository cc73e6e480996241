package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/dto"
	"github.com/GlebRadaev/ndvmoney/pkg/auth"
	"github.com/GlebRadaev/ndvmoney/pkg/imaging"
	"github.com/GlebRadaev/ndvmoney/pkg/utils"
)

type Service interface {
	Profile(ctx context.Context, userID string) (domain.User, error)
	Loans(ctx context.Context, userID string) ([]domain.LoanRecord, error)
	ApplyLoan(ctx context.Context, userID string, amount int64, signature string) (domain.LoanRecord, error)
	SubmitSettlement(ctx context.Context, userID, loanID, bill string) (domain.LoanRecord, error)
	RequestRankUpgrade(ctx context.Context, userID string, rank domain.Rank, bill string) (domain.User, error)
}

type Advisor interface {
	Advise(ctx context.Context, amount int64, termMonths int, income *int64) string
}

type LoanHandler struct {
	loanService Service
	advisor     Advisor
}

func New(loanService Service, advisor Advisor) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		advisor:     advisor,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusUnauthorized, "User not found")
	case errors.Is(err, domain.ErrLoanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrUnknownRank):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotApplied):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}

// GetProfile godoc
//
//	@Summary		Current user
//	@Tags			Loans
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.User
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/profile [get]
func (h *LoanHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.loanService.Profile(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GetLoans godoc
//
//	@Summary		Loans of the current user
//	@Description	Newest first. Responds 204 when the user has no loans.
//	@Tags			Loans
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.LoanRecord
//	@Success		204	"No loans"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/loans [get]
func (h *LoanHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	loans, err := h.loanService.Loans(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if len(loans) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, loans)
}

// ApplyLoan godoc
//
//	@Summary		Apply for a loan
//	@Description	Creates a PENDING_APPROVAL record and debits the available balance.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ApplyLoanRequestDTO	true	"Loan request"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.LoanRecord
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Invalid amount"
//	@Router			/api/user/loans [post]
func (h *LoanHandler) ApplyLoan(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.ApplyLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	loan, err := h.loanService.ApplyLoan(r.Context(), userID, req.Amount, req.Signature)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, loan)
}

// SubmitSettlement godoc
//
//	@Summary		Submit a repayment proof
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Contract id"
//	@Param			request	body	dto.SettlementRequestDTO	true	"Bill image"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.LoanRecord
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Loan not found"
//	@Failure		409	{object}	utils.Response	"Loan is not outstanding"
//	@Router			/api/user/loans/{id}/settlement [post]
func (h *LoanHandler) SubmitSettlement(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	loanID := chi.URLParam(r, "id")

	var req dto.SettlementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	bill := imaging.Compress(req.BillImage, imaging.MaxWidth, imaging.MaxHeight)
	loan, err := h.loanService.SubmitSettlement(r.Context(), userID, loanID, bill)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, loan)
}

// UpgradeRank godoc
//
//	@Summary		Request a rank upgrade
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.RankUpgradeRequestDTO	true	"Wanted rank and fee receipt"
//	@Security		BearerAuth
//	@Success		202	{object}	domain.User
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		422	{object}	utils.Response	"Unknown rank"
//	@Router			/api/user/rank/upgrade [post]
func (h *LoanHandler) UpgradeRank(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.RankUpgradeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rank, err := domain.ParseRank(req.Rank)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	bill := imaging.Compress(req.BillImage, imaging.MaxWidth, imaging.MaxHeight)
	user, err := h.loanService.RequestRankUpgrade(r.Context(), userID, rank, bill)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, user)
}

// Advice godoc
//
//	@Summary		Financial advice for a planned loan
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AdviceRequestDTO	true	"Amount, term in months and optional income"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdviceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		422	{object}	utils.Response	"Invalid amount"
//	@Router			/api/user/advice [post]
func (h *LoanHandler) Advice(w http.ResponseWriter, r *http.Request) {
	var req dto.AdviceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 || req.Term <= 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, domain.ErrInvalidAmount.Error())
		return
	}
	text := h.advisor.Advise(r.Context(), req.Amount, req.Term, req.Income)
	utils.RespondWithJSON(w, http.StatusOK, dto.AdviceResponseDTO{Advice: text})
}
