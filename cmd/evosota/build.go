package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/leaderboard"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/metrics"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/output"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/report"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

func (a *app) buildCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert VLA_SOTA.csv into libero.json, metaworld.json, calvin.json and data.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(quiet)
		},
	}
	cmd.Flags().StringVar(&a.flags.Input, "input", "", "Source CSV (default VLA_SOTA.csv)")
	cmd.Flags().StringVar(&a.flags.OutputDir, "out-dir", "", "Directory for the JSON files (default .)")
	cmd.Flags().StringVar(&a.flags.MetricsFile, "metrics-file", "", "Write build metrics in Prometheus text format to this file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the console report")
	return cmd
}

func (a *app) runBuild(quiet bool) error {
	start := time.Now()
	t, err := sheet.ReadFile(a.cfg.Input)
	if err != nil {
		return err
	}
	a.log.Debug().Str("input", a.cfg.Input).Int("rows", len(t.Rows)).Msg("sheet read")

	res := leaderboard.Build(t, a.log)
	files, err := output.Write(a.cfg.OutputDir, res)
	if err != nil {
		return err
	}
	a.log.Info().
		Int("rows", res.Stats.Rows).
		Int("skipped", res.Stats.Skipped).
		Int("citations", res.Stats.Citations).
		Int("models", res.Stats.Models).
		Str("out_dir", a.cfg.OutputDir).
		Msg("leaderboards written")

	if !quiet {
		if err := report.Render(a.out, res, files); err != nil {
			return err
		}
		tops := []struct {
			name string
			s    types.BenchmarkSummary
		}{
			{"Libero", res.Summary.Libero},
			{"Meta-World", res.Summary.MetaWorld},
			{"Calvin ABC-D", res.Summary.Calvin},
		}
		for _, tp := range tops {
			if err := report.Top(a.out, tp.name, tp.s); err != nil {
				return err
			}
		}
	}

	if a.cfg.MetricsFile != "" {
		m := metrics.NewBuild()
		m.Observe(res, files, time.Since(start))
		if err := m.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics %s: %w", a.cfg.MetricsFile, err)
		}
		a.log.Debug().Str("path", a.cfg.MetricsFile).Msg("metrics written")
	}
	return nil
}
