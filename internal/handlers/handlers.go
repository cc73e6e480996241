package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/ndvmoney/docs"
	adminhandlers "github.com/GlebRadaev/ndvmoney/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/ndvmoney/internal/handlers/auth"
	loanshandlers "github.com/GlebRadaev/ndvmoney/internal/handlers/loans"
	"github.com/GlebRadaev/ndvmoney/internal/service"
	"github.com/GlebRadaev/ndvmoney/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetLoans(w http.ResponseWriter, r *http.Request)
	ApplyLoan(w http.ResponseWriter, r *http.Request)
	SubmitSettlement(w http.ResponseWriter, r *http.Request)
	UpgradeRank(w http.ResponseWriter, r *http.Request)
	Advice(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetLoans(w http.ResponseWriter, r *http.Request)
	LoanAction(w http.ResponseWriter, r *http.Request)
	UserAction(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	Cleanup(w http.ResponseWriter, r *http.Request)
	SetBudget(w http.ResponseWriter, r *http.Request)
	ResetRankProfit(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	LoanHandler  LoanHandler
	AdminHandler AdminHandler
	JWTService   auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService),
		LoanHandler:  loanshandlers.New(s.LoanService, s.Advisor),
		AdminHandler: adminhandlers.New(s.AdminService),
		JWTService:   s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))
			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/profile", h.LoanHandler.GetProfile)
			r.Route("/loans", func(r chi.Router) {
				r.Get("/", h.LoanHandler.GetLoans)
				r.Post("/", h.LoanHandler.ApplyLoan)
				r.Post("/{id}/settlement", h.LoanHandler.SubmitSettlement)
			})
			r.Post("/rank/upgrade", h.LoanHandler.UpgradeRank)
			r.Post("/advice", h.LoanHandler.Advice)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.JWTService), auth.AdminOnly)
		r.Get("/overview", h.AdminHandler.GetOverview)
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetUsers)
			r.Post("/cleanup", h.AdminHandler.Cleanup)
			r.Post("/{id}/action", h.AdminHandler.UserAction)
			r.Delete("/{id}", h.AdminHandler.DeleteUser)
		})
		r.Route("/loans", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetLoans)
			r.Post("/{id}/action", h.AdminHandler.LoanAction)
		})
		r.Put("/budget", h.AdminHandler.SetBudget)
		r.Post("/rank-profit/reset", h.AdminHandler.ResetRankProfit)
	})

	return r
}
