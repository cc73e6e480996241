package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address    string `env:"RUN_ADDRESS"  envDefault:"localhost:8080"`
	Database   string `env:"DATABASE_URI" envDefault:""`
	SQLitePath string `env:"SQLITE_PATH"  envDefault:"ndvmoney.db"`
	LogLvl     string `env:"LOG_LVL"      envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT"   envDefault:"console"`

	JWTSecret     string        `env:"JWT_SECRET"     envDefault:"supersecretkey"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"      envDefault:"24h"`
	AdminPhone    string        `env:"ADMIN_PHONE"    envDefault:"0877203996"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"119011"`

	PersistDelay   time.Duration `env:"PERSIST_DELAY"   envDefault:"1s"`
	StartingCredit int64         `env:"STARTING_CREDIT" envDefault:"2000000"`
	InitialBudget  int64         `env:"INITIAL_BUDGET"  envDefault:"30000000"`
	DisburseRatio  string        `env:"DISBURSE_RATIO"  envDefault:"1"`

	// пустое расписание отключает очистку
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE" envDefault:"@daily"`
	CleanupGrace    time.Duration `env:"CLEANUP_GRACE"    envDefault:"0s"`

	AdviceAddress string `env:"ADVICE_ADDRESS" envDefault:"generativelanguage.googleapis.com"`
	AdviceAPIKey  string `env:"ADVICE_API_KEY" envDefault:""`
	AdviceModel   string `env:"ADVICE_MODEL"   envDefault:"gemini-3-flash-preview"`
}

func New() *Config {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN")
	flag.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "sqlite file used when no DSN is set")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if !strings.HasPrefix(cfg.AdviceAddress, "http://") && !strings.HasPrefix(cfg.AdviceAddress, "https://") {
		cfg.AdviceAddress = "https://" + cfg.AdviceAddress
	}

	return cfg
}
