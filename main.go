package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/config"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := newLogger("")
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("devfolio command failed")
		return 1
	}
	return 0
}

// newLogger builds the console logger. PSLOG_* environment variables still
// override level.
func newLogger(level string) pslog.Logger {
	opts := pslog.Options{Mode: pslog.ModeConsole}
	switch strings.ToLower(level) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	case "info":
		opts.MinLevel = pslog.InfoLevel
	}
	return pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(opts),
	)
}

type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "devfolio",
		Short:         "Portfolio site with a markdown technical blog",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "portfolio.yml", "path to config file")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newPostsCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newCycleCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Log.Level != "" {
		logger := newLogger(cfg.Log.Level)
		log.SetOutput(pslog.LogLogger(logger).Writer())
		cmd.SetContext(pslog.ContextWithLogger(cmd.Context(), logger))
	}
	return nil
}
