package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/config"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/logging"
)

// app carries what every command shares once flags are parsed.
type app struct {
	out, errOut io.Writer
	cfg         config.Config
	log         zerolog.Logger
	runID       string

	flags      config.Config
	configPath string
	logLevel   string
	logFormat  string
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		cfg:    config.Defaults(),
		log:    logging.New(errOut, logging.LevelFromEnv(config.DefaultLogLevel), config.DefaultLogFormat),
	}
}

// rootCmd builds the command tree. The root itself runs build.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "evosota",
		Short:         "Build Evo-SOTA leaderboard data from the benchmark spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (.yaml, .yml, .json or .toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults EVOSOTA_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: console|json")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return a.setup() }

	build := a.buildCmd()
	// Running the bare binary keeps the historical contract of the data
	// script: read VLA_SOTA.csv here, write the JSON files here.
	root.Flags().AddFlagSet(build.Flags())
	root.RunE = build.RunE

	root.AddCommand(build, a.dexCmd(), a.serveCmd())
	return root
}

// setup merges the config file under the flags and builds the logger.
func (a *app) setup() error {
	cfg := config.Config{}
	if a.configPath != "" {
		c, err := config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", a.configPath, err)
		}
		if cfg, err = c.ResolvePaths(filepath.Dir(a.configPath)); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logging.LevelFromEnv(config.DefaultLogLevel)
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	flags, err := a.flags.ResolvePaths("")
	if err != nil {
		return err
	}
	a.cfg = mergeFlags(flags, cfg).WithDefaults()

	a.runID = uuid.NewString()
	a.log = logging.New(a.errOut, a.cfg.LogLevel, a.cfg.LogFormat).With().Str("run_id", a.runID).Logger()
	if a.configPath != "" {
		a.log.Debug().Str("config", a.configPath).Msg("config loaded")
	}
	return nil
}

// mergeFlags overlays values set explicitly on the command line (held in
// flags) on top of file values.
func mergeFlags(flags, file config.Config) config.Config {
	out := file
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&out.Input, flags.Input)
	pick(&out.OutputDir, flags.OutputDir)
	pick(&out.MetricsFile, flags.MetricsFile)
	pick(&out.Dex.Workbook, flags.Dex.Workbook)
	pick(&out.Dex.Output, flags.Dex.Output)
	pick(&out.Dex.Colors, flags.Dex.Colors)
	pick(&out.Dex.Public, flags.Dex.Public)
	pick(&out.Serve.Addr, flags.Serve.Addr)
	pick(&out.Serve.Dir, flags.Serve.Dir)
	if flags.Serve.CORSEnabled {
		out.Serve.CORSEnabled = true
	}
	if len(flags.Serve.CORSOrigins) > 0 {
		out.Serve.CORSOrigins = flags.Serve.CORSOrigins
	}
	return out
}
