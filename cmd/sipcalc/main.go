package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/investease/sip-planner/internal/calculation"
	"github.com/investease/sip-planner/internal/config"
	"github.com/investease/sip-planner/internal/domain"
	"github.com/investease/sip-planner/internal/history"
	"github.com/investease/sip-planner/internal/wizard"
)

var (
	// Logger
	logger *zap.Logger

	// newLogger builds the process logger (replaced in tests)
	newLogger = buildLogger
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath  string
	catalogPath string
	historyDB   string
	noHistory   bool
	verbose     bool

	cfg *domain.Configuration
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "sipcalc",
		Short: "SIP projection and investment plan recommendation",
		Long: `sipcalc projects a Systematic Investment Plan: a fixed monthly contribution
compounding monthly at a constant annual rate, paid at the start of each month.

It also walks an investor profile through a risk-based portfolio recommendation
and compares the catalog of investment plans side by side.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(opts.configPath)
			if err != nil {
				return err
			}
			if opts.historyDB != "" {
				cfg.Storage.HistoryDBPath = opts.historyDB
			}
			opts.cfg = cfg

			logger, err = newLogger(cfg.Logging.Level, opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file (built-in defaults when empty)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "YAML file replacing the built-in risk profiles and plans")
	flags.StringVar(&opts.historyDB, "history-db", "", "SQLite history database (overrides configuration)")
	flags.BoolVar(&opts.noHistory, "no-history", false, "Do not record calculations")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging, including the yearly series")

	root.AddCommand(
		newCalcCmd(opts),
		newCompareCmd(opts),
		newRecommendCmd(opts),
		newHistoryCmd(opts),
		newExampleConfigCmd(opts),
	)
	return root
}

// loadConfiguration reads path, or starts from the built-in example when path is
// empty, then applies SIP_* environment overrides.
func loadConfiguration(path string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	var cfg *domain.Configuration
	if path == "" {
		cfg = parser.CreateExampleConfiguration()
	} else {
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := parser.ApplyEnvironment(cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	return cfg, nil
}

func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = lvl
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// app holds the collaborators opened for one command
type app struct {
	cfg      *domain.Configuration
	engine   *calculation.CalculationEngine
	history  history.Store
	recorder *history.AsyncRecorder
	sessions wizard.Store
	redis    *wizard.RedisStore
}

// openApp wires the engine to its collaborators. History and Redis failures
// degrade to running without them.
func openApp(ctx context.Context, opts *globalOptions) (*app, error) {
	engine := calculation.NewCalculationEngine()
	if opts.catalogPath != "" {
		catalog, err := calculation.LoadCatalogFile(opts.catalogPath)
		if err != nil {
			return nil, err
		}
		engine = calculation.NewCalculationEngineWithCatalog(catalog)
	}
	engine.SetLogger(logger.Sugar())
	engine.Debug = opts.verbose

	a := &app{
		cfg:      opts.cfg,
		engine:   engine,
		sessions: wizard.NewMemoryStore(),
	}

	if !opts.noHistory {
		store, err := history.NewSQLiteStore(opts.cfg.Storage.HistoryDBPath)
		if err != nil {
			logger.Warn("History disabled", zap.String("path", opts.cfg.Storage.HistoryDBPath), zap.Error(err))
		} else {
			a.history = store
			a.recorder = history.NewAsyncRecorder(store, logger.Named("history"))
			engine.SetRecorder(a.recorder)
		}
	}

	if addr := opts.cfg.Storage.RedisAddr; addr != "" {
		rs := wizard.NewRedisStore(addr, opts.cfg.Storage.SessionTTL)
		if err := rs.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, keeping sessions in memory", zap.String("addr", addr), zap.Error(err))
			_ = rs.Close()
		} else {
			a.sessions = rs
			a.redis = rs
		}
	}
	return a, nil
}

// Close drains pending history writes before closing the stores
func (a *app) Close() {
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			logger.Warn("Closing history store", zap.Error(err))
		}
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
