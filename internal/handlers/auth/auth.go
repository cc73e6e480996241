package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/dto"
	pkgauth "github.com/GlebRadaev/ndvmoney/pkg/auth"
	"github.com/GlebRadaev/ndvmoney/pkg/imaging"
	"github.com/GlebRadaev/ndvmoney/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, in domain.Applicant) (domain.User, error)
	Authenticate(ctx context.Context, phone, password string) (domain.User, error)
	Logout(ctx context.Context, userID string) error
	GenerateToken(user domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new borrower
//	@Description	Create a borrower account seeded with the starting credit and log it in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), domain.Applicant{
		Phone:        req.Phone,
		FullName:     req.FullName,
		IDNumber:     req.IDNumber,
		Address:      req.Address,
		IDFront:      imaging.Compress(req.IDFront, imaging.MaxWidth, imaging.MaxHeight),
		IDBack:       imaging.Compress(req.IDBack, imaging.MaxWidth, imaging.MaxHeight),
		RefZalo:      req.RefZalo,
		Relationship: req.Relationship,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: "User successfully registered",
		User:    user,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in by phone and get a JWT token. The administrator also needs the password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: "User successfully authenticated",
		User:    user,
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.authService.Logout(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User logged out"})
}
