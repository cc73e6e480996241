package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/dto"
	"github.com/GlebRadaev/ndvmoney/pkg/utils"
)

type Service interface {
	Overview(ctx context.Context) domain.Overview
	Users(ctx context.Context) []domain.User
	AllLoans(ctx context.Context) []domain.LoanRecord
	LoanAction(ctx context.Context, loanID string, action domain.LoanAction, reason string) (domain.LoanRecord, error)
	UserAction(ctx context.Context, userID string, action domain.UserAction) (domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	Cleanup(ctx context.Context) (int, error)
	SetBudget(ctx context.Context, amount int64) (domain.Overview, error)
	ResetRankProfit(ctx context.Context) (domain.Overview, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrLoanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrUnknownAction):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotApplied):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetOverview godoc
//
//	@Summary		Dashboard counters
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Overview
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/overview [get]
func (h *AdminHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.adminService.Overview(r.Context()))
}

// GetUsers godoc
//
//	@Summary		All registered users
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.User
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := h.adminService.Users(r.Context())
	if users == nil {
		users = []domain.User{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GetLoans godoc
//
//	@Summary		All loan records, newest first
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.LoanRecord
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/loans [get]
func (h *AdminHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	loans := h.adminService.AllLoans(r.Context())
	if loans == nil {
		loans = []domain.LoanRecord{}
	}
	utils.RespondWithJSON(w, http.StatusOK, loans)
}

// LoanAction godoc
//
//	@Summary		Move a loan through its lifecycle
//	@Description	APPROVE, DISBURSE, SETTLE or REJECT. Responds 409 when the action does not apply to the current status.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Contract id"
//	@Param			request	body	dto.LoanActionRequestDTO	true	"Action and optional reason"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.LoanRecord
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Loan not found"
//	@Failure		409	{object}	utils.Response	"Action not applicable"
//	@Failure		422	{object}	utils.Response	"Unknown action"
//	@Router			/api/admin/loans/{id}/action [post]
func (h *AdminHandler) LoanAction(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")

	var req dto.LoanActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	action, err := domain.ParseLoanAction(req.Action)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	loan, err := h.adminService.LoanAction(r.Context(), loanID, action, req.Reason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, loan)
}

// UserAction godoc
//
//	@Summary		Decide a pending rank upgrade
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"User id"
//	@Param			request	body	dto.UserActionRequestDTO	true	"APPROVE_RANK or REJECT_RANK"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.User
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"No pending upgrade"
//	@Failure		422	{object}	utils.Response	"Unknown action"
//	@Router			/api/admin/users/{id}/action [post]
func (h *AdminHandler) UserAction(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req dto.UserActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	action, err := domain.ParseUserAction(req.Action)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	user, err := h.adminService.UserAction(r.Context(), userID, action)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// DeleteUser godoc
//
//	@Summary		Remove a user and all of their loans
//	@Tags			Admin
//	@Param			id	path	string	true	"User id"
//	@Security		BearerAuth
//	@Success		204	"Deleted"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.adminService.DeleteUser(r.Context(), userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cleanup godoc
//
//	@Summary		Remove users whose loans are all closed
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CleanupResponseDTO
//	@Router			/api/admin/users/cleanup [post]
func (h *AdminHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	removed, err := h.adminService.Cleanup(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CleanupResponseDTO{Removed: removed})
}

// SetBudget godoc
//
//	@Summary		Overwrite the system budget
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BudgetRequestDTO	true	"New budget"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Overview
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		422	{object}	utils.Response	"Invalid amount"
//	@Router			/api/admin/budget [put]
func (h *AdminHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.BudgetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	overview, err := h.adminService.SetBudget(r.Context(), req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, overview)
}

// ResetRankProfit godoc
//
//	@Summary		Zero the rank fee counter
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Overview
//	@Router			/api/admin/rank-profit/reset [post]
func (h *AdminHandler) ResetRankProfit(w http.ResponseWriter, r *http.Request) {
	overview, err := h.adminService.ResetRankProfit(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, overview)
}
