package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ygrebnov/tracing"
	"github.com/ygrebnov/tracing/internal/config"
	"github.com/ygrebnov/tracing/internal/telemetry"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "tracerdemo",
		Short: "Emit spans through the process-wide tracer registry",
		Long: `tracerdemo looks up one tracer per configured scope from the default
registry, emits spans from all scopes concurrently to stdout, then shuts the
registry down and shows that later lookups are inert.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yaml)")
	cmd.Flags().String(config.FlagServiceName, "tracerdemo", "service.name resource attribute")
	cmd.Flags().StringSlice(config.FlagScopes, nil, "instrumentation scope as name[@version], repeatable")
	cmd.Flags().Int(config.FlagSpans, 3, "spans to emit per scope")
	cmd.Flags().Bool(config.FlagPretty, false, "pretty-print exported spans")
	cmd.Flags().String(config.FlagLogLevel, "info", "log level (debug, info, warn, error)")
	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func run(cmd *cobra.Command, cfg config.DemoConfig) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sdk, err := telemetry.NewTracerProvider(cfg.ServiceName, cmd.OutOrStdout(), cfg.PrettyPrint)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(sdk)

	if !tracing.InitDefault(tracing.WithTracerProvider(sdk), tracing.WithLogger(logger)) {
		logger.Warn("default tracer registry was already initialized")
	}
	registry := tracing.Default()

	scopes := make([]config.Scope, 0, len(cfg.Scopes))
	for _, s := range cfg.Scopes {
		scopes = append(scopes, config.ParseScope(s))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var wg sync.WaitGroup
	for _, s := range scopes {
		wg.Add(1)
		go func(s config.Scope) {
			defer wg.Done()
			emit(ctx, registry.Tracer(s.Name, s.Options()...), s.Name, cfg.SpansPerScope)
		}(s)
	}
	wg.Wait()

	if err := registry.Shutdown(); err != nil {
		logger.Error("tracer registry shutdown", zap.Error(err))
	}
	if len(scopes) > 0 {
		late := registry.Tracer(scopes[0].Name, scopes[0].Options()...)
		logger.Info("lookup after shutdown", zap.String("scope", late.Key().String()), zap.Bool("enabled", late.Enabled()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sdk.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}
	return nil
}

func emit(ctx context.Context, tr trace.Tracer, scope string, n int) {
	for i := 0; i < n; i++ {
		_, span := tr.Start(ctx, fmt.Sprintf("%s/span-%d", scope, i),
			trace.WithAttributes(attribute.Int("demo.index", i)))
		span.End()
	}
}
