package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wilhasse/govec/config"
	"github.com/wilhasse/govec/mem"
	"github.com/wilhasse/govec/metrics"
	"github.com/wilhasse/govec/vec"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vecdemo",
	Short: "Exercise the govec container",
	Long: `vecdemo runs the example programs and the randomized self test for the
govec vector container.

Configuration is read from --config (YAML) and GOVEC_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		config.LoadFromEnv(cfg)
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logger, err = buildLogger(cfg.Logging)
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

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.AddCommand(demoCmd, selftestCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// runtimeEnv is the allocator stack shared by the vectors of one command.
type runtimeEnv struct {
	tracker  *mem.Tracker
	registry *prometheus.Registry
}

func newRuntimeEnv(c *config.Config) *runtimeEnv {
	var base mem.Allocator = mem.DefaultAllocator
	if c.Vector.MemoryLimit > 0 {
		base = mem.NewBudget(c.Vector.MemoryLimit)
	}
	env := &runtimeEnv{}
	if c.Metrics.Enabled {
		env.registry = prometheus.NewRegistry()
		env.tracker = metrics.NewCollector(env.registry, c.Metrics.Namespace).Track(base)
	} else {
		env.tracker = mem.NewTracker(base)
	}
	return env
}

func (e *runtimeEnv) vectorOptions(c *config.Config) []vec.Option {
	return []vec.Option{
		vec.WithCapacity(c.Vector.InitialCapacity),
		vec.WithAllocator(e.tracker),
		vec.WithLogger(logger),
	}
}

// report logs allocator totals and, when enabled, the gathered metrics.
func (e *runtimeEnv) report() {
	st := e.tracker.Stats()
	logger.Info("allocator summary",
		zap.Int64("in_use", st.InUse),
		zap.Int64("peak", st.Peak),
		zap.Int64("reservations", st.Reservations),
		zap.Int64("releases", st.Releases),
		zap.Int64("refusals", st.Refusals))
	if e.registry == nil {
		return
	}
	families, err := e.registry.Gather()
	if err != nil {
		logger.Warn("failed to gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			if h := m.GetHistogram(); h != nil {
				value = float64(h.GetSampleCount())
			}
			logger.Info("metric", zap.String("name", mf.GetName()), zap.Float64("value", value))
		}
	}
}
