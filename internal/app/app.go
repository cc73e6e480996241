package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ndvmoney/internal/advice"
	"github.com/GlebRadaev/ndvmoney/internal/config"
	"github.com/GlebRadaev/ndvmoney/internal/handlers"
	"github.com/GlebRadaev/ndvmoney/internal/persist"
	"github.com/GlebRadaev/ndvmoney/internal/pg"
	"github.com/GlebRadaev/ndvmoney/internal/reconciler"
	"github.com/GlebRadaev/ndvmoney/internal/repo"
	sqlitekvrepo "github.com/GlebRadaev/ndvmoney/internal/repo/sqlitekv-repo"
	"github.com/GlebRadaev/ndvmoney/internal/service"
	"github.com/GlebRadaev/ndvmoney/internal/service/ledgerservice"
	"github.com/GlebRadaev/ndvmoney/internal/sweeper"
	"github.com/GlebRadaev/ndvmoney/pkg/auth"
	"github.com/GlebRadaev/ndvmoney/pkg/clients"
	"github.com/GlebRadaev/ndvmoney/pkg/logger"
)

const flushTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	persister *persist.Persister
	sweeper   *sweeper.Service
	closers   []func() error

	errCh chan error
	wg    sync.WaitGroup
	ready bool

	// serving is done once nothing can change the ledger any more
	serving sync.WaitGroup
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.initStorage(ctx); err != nil {
		return err
	}

	policy, err := buildPolicy(cfg)
	if err != nil {
		return fmt.Errorf("can't build ledger policy: %w", err)
	}
	admin, err := auth.NewAdminCredentials(cfg.AdminPhone, cfg.AdminPassword, &auth.HashService{})
	if err != nil {
		return fmt.Errorf("can't set up admin login: %w", err)
	}
	rec := reconciler.New(policy, admin)
	logPolicy(rec.Policy())

	a.persister = persist.New(a.repo.KV, cfg.PersistDelay, persist.DefaultKeepPerUser)
	initial, err := a.persister.Load(ctx, rec.InitialState())
	if err != nil {
		// хранилище недоступно, стартуем с пустым реестром
		zap.L().Warn("starting with an empty ledger", zap.Error(err))
	}

	ledger := ledgerservice.New(rec, initial, a.persister)
	advisor := advice.New(cfg, clients.NewHTTPClient())
	a.srv = service.New(cfg, ledger, advisor)
	a.api = handlers.New(a.srv)

	a.sweeper, err = sweeper.New(cfg.CleanupSchedule, ledger)
	if err != nil {
		return fmt.Errorf("can't start cleanup sweep: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweeper(ctx)
	a.startPersister(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// initStorage picks postgres when a DSN is configured, a local sqlite file otherwise.
func (a *Application) initStorage(ctx context.Context) error {
	if a.cfg.Database != "" {
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
		txManager := pg.NewTXManager(pool)
		a.repo = repo.New(pg.New(pool), txManager)
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		zap.L().Info("using postgres storage")
		return nil
	}

	db, err := sqlitekvrepo.Connect(ctx, a.cfg.SQLitePath)
	if err != nil {
		zap.L().Error("open sqlite failed: ", zap.Error(err))
		return fmt.Errorf("can't open sqlite: %w", err)
	}
	if err := pg.Migrate(db.DB, pg.DialectSQLite); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.repo = repo.NewSQLite(db)
	a.closers = append(a.closers, db.Close)
	zap.L().Info("using sqlite storage", zap.String("path", a.cfg.SQLitePath))
	return nil
}

func buildPolicy(cfg *config.Config) (reconciler.Policy, error) {
	policy := reconciler.DefaultPolicy()
	policy.StartingCredit = cfg.StartingCredit
	policy.InitialBudget = cfg.InitialBudget
	policy.CleanupGrace = cfg.CleanupGrace

	ratio, err := decimal.NewFromString(cfg.DisburseRatio)
	if err != nil {
		return reconciler.Policy{}, fmt.Errorf("invalid disburse ratio %q: %w", cfg.DisburseRatio, err)
	}
	if !ratio.IsPositive() {
		return reconciler.Policy{}, fmt.Errorf("disburse ratio must be positive, got %s", ratio)
	}
	policy.DisburseRatio = ratio
	return policy, nil
}

func logPolicy(policy reconciler.Policy) {
	zap.L().Info("ledger policy",
		zap.Int64("startingCredit", policy.StartingCredit),
		zap.Int64("initialBudget", policy.InitialBudget),
		zap.String("disburseRatio", policy.DisburseRatio.String()),
		zap.String("profitRate", policy.ProfitRate.String()),
		zap.Duration("cleanupGrace", policy.CleanupGrace),
	)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	a.serving.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.serving.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	a.serving.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.serving.Done()
		a.sweeper.Start(ctx)
	}()
}

// startPersister writes the last pending snapshot once ctx is done and the
// http server and sweeper have stopped.
func (a *Application) startPersister(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.serving.Wait()

		fCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := a.persister.Flush(fCtx); err != nil {
			zap.L().Error("final ledger flush failed", zap.Error(err))
		}
		a.persister.Close()

		for _, closeFn := range a.closers {
			if err := closeFn(); err != nil {
				zap.L().Error("storage close failed", zap.Error(err))
			}
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
