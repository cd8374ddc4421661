// Command rosterctl drives the roster bridges, the copy-on-write containers
// and the catalogue search client from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rostercore/internal/core"
)

var exitFunc = os.Exit

type app struct {
	out io.Writer

	verbose     bool
	showMetrics bool
	storage     core.StorageConfig
	searchURL   string

	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *core.PrometheusMetricsRecorder
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		exitFunc(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, storage: core.StorageConfigFromEnv()}
	root := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Team and player roster toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.showMetrics {
				a.dumpMetrics()
			}
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.showMetrics, "metrics", false, "print operation counters after the command")
	flags.StringVar((*string)(&a.storage.Driver), "storage", string(a.storage.Driver), "storage driver: memory|sqlite|postgres")
	flags.StringVar(&a.storage.SQLiteDSN, "sqlite-dsn", a.storage.SQLiteDSN, "sqlite DSN (default private in-memory database)")
	flags.StringVar(&a.storage.PostgresDSN, "postgres-dsn", a.storage.PostgresDSN, "postgres DSN")

	root.AddCommand(
		a.demoCmd(),
		a.seedCmd(),
		a.listCmd(),
		a.queueCmd(),
		a.searchCmd(),
	)
	return root
}

func (a *app) init() error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.registry = prometheus.NewRegistry()
	a.metrics, err = core.NewPrometheusMetricsRecorder(a.registry)
	return err
}

func (a *app) openService(ctx context.Context) (*core.Service, error) {
	store, err := core.OpenStore(ctx, a.storage)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.storage.Driver, err)
	}
	a.logger.Debug("store opened", zap.String("driver", string(a.storage.Driver)))
	return core.NewService(store,
		core.WithLogger(core.NewZapLogger(a.logger)),
		core.WithMetrics(a.metrics),
	), nil
}

func (a *app) dumpMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		fmt.Fprintf(a.out, "gather metrics: %v\n", err)
		return
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
}
