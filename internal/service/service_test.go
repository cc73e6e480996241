package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ndvmoney/internal/config"
	"github.com/GlebRadaev/ndvmoney/internal/handlers/loans"
	"github.com/GlebRadaev/ndvmoney/internal/reconciler"
	"github.com/GlebRadaev/ndvmoney/internal/service/ledgerservice"
	pkgauth "github.com/GlebRadaev/ndvmoney/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin, err := pkgauth.NewAdminCredentials("0877203996", "119011", &pkgauth.HashService{})
	assert.NoError(t, err)
	rec := reconciler.New(reconciler.DefaultPolicy(), admin)
	ledger := ledgerservice.New(rec, rec.InitialState(), ledgerservice.NewMockPersister(ctrl))
	cfg := &config.Config{JWTSecret: "secret", TokenTTL: time.Hour}

	services := New(cfg, ledger, loans.NewMockAdvisor(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.LoanService)
	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.Advisor)
	assert.NotNil(t, services.JWTService)
}
