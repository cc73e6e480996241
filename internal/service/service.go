package service

import (
	"github.com/GlebRadaev/ndvmoney/internal/config"
	"github.com/GlebRadaev/ndvmoney/internal/handlers/admin"
	"github.com/GlebRadaev/ndvmoney/internal/handlers/auth"
	"github.com/GlebRadaev/ndvmoney/internal/handlers/loans"
	pkgauth "github.com/GlebRadaev/ndvmoney/pkg/auth"

	authservice "github.com/GlebRadaev/ndvmoney/internal/service/authservice"
	ledgerservice "github.com/GlebRadaev/ndvmoney/internal/service/ledgerservice"
)

type Services struct {
	AuthService  auth.Service
	LoanService  loans.Service
	AdminService admin.Service
	Advisor      loans.Advisor
	JWTService   pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, ledger *ledgerservice.Service, advisor loans.Advisor) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(ledger, jwtService, cfg.TokenTTL)

	return &Services{
		AuthService:  authService,
		LoanService:  ledger,
		AdminService: ledger,
		Advisor:      advisor,
		JWTService:   jwtService,
	}
}
