package authservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/pkg/auth"
)

type Ledger interface {
	Register(ctx context.Context, in domain.Applicant) (domain.User, error)
	Login(ctx context.Context, phone, password string) (domain.User, error)
	Logout(ctx context.Context, userID string) error
}

type Service struct {
	ledger     Ledger
	jwtService auth.JWTServiceInterface
	tokenTTL   time.Duration
}

func New(ledger Ledger, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		ledger:     ledger,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, in domain.Applicant) (domain.User, error) {
	user, err := s.ledger.Register(ctx, in)
	if err != nil {
		zap.L().Error("can't register user: ", zap.Error(err))
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, phone, password string) (domain.User, error) {
	user, err := s.ledger.Login(ctx, phone, password)
	if err != nil {
		zap.L().Info("invalid credentials", zap.String("phone", phone))
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.ledger.Logout(ctx, userID)
}

func (s *Service) GenerateToken(user domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.IsAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
