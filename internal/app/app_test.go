package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ndvmoney/internal/config"
	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/persist"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestInitStorage_SQLite() {
	s.app.cfg = &config.Config{SQLitePath: ":memory:"}

	err := s.app.initStorage(context.Background())

	s.Require().NoError(err)
	s.Require().NotNil(s.app.repo)
	s.Len(s.app.closers, 1)

	_, ok, err := s.app.repo.KV.Get(context.Background(), "vnv_budget")
	s.NoError(err)
	s.False(ok)
	s.NoError(s.app.closers[0]())
}

func (s *ApplicationSuite) TestInitStorage_BadDSN() {
	s.app.cfg = &config.Config{Database: "postgres://%zz"}

	err := s.app.initStorage(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't build pgx pool")
}

func (s *ApplicationSuite) TestBuildPolicy() {
	cfg := &config.Config{
		StartingCredit: 1_000_000,
		InitialBudget:  5_000_000,
		DisburseRatio:  "0.9",
		CleanupGrace:   48 * time.Hour,
	}

	policy, err := buildPolicy(cfg)

	s.Require().NoError(err)
	s.Equal(int64(1_000_000), policy.StartingCredit)
	s.Equal(int64(5_000_000), policy.InitialBudget)
	s.True(decimal.RequireFromString("0.9").Equal(policy.DisburseRatio))
	s.Equal(48*time.Hour, policy.CleanupGrace)
	s.Equal("NDV", policy.ContractPrefix)
}

func (s *ApplicationSuite) TestBuildPolicy_BadRatio() {
	for _, ratio := range []string{"abc", "0", "-1"} {
		_, err := buildPolicy(&config.Config{DisburseRatio: ratio})
		s.Error(err, ratio)
	}
}

func (s *ApplicationSuite) TestPersisterFlushesAfterServingStops() {
	ctrl := gomock.NewController(s.T())
	store := persist.NewMockStore(ctrl)
	s.app.persister = persist.New(store, time.Hour, persist.DefaultKeepPerUser)

	written := make(chan map[string]string, 1)
	store.EXPECT().SetMany(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries map[string]string) error {
			written <- entries
			return nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.serving.Add(1)
	s.app.startPersister(ctx)
	cancel()

	// запрос ещё обрабатывается после начала остановки
	time.Sleep(20 * time.Millisecond)
	s.Empty(written)
	s.app.persister.Schedule(domain.State{Budget: 9})
	s.app.serving.Done()
	s.app.wg.Wait()

	select {
	case entries := <-written:
		s.Equal("9", entries[persist.KeyBudget])
	case <-time.After(time.Second):
		s.Fail("last snapshot was not flushed")
	}
}
