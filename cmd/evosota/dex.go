package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/config"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/dex"
)

func (a *app) dexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dex",
		Short: "Build the dexterous manipulation leaderboard from its Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := dex.Run(dex.Paths{
				Workbook: a.cfg.Dex.Workbook,
				Output:   a.cfg.Dex.Output,
				Colors:   a.cfg.Dex.Colors,
				Public:   a.cfg.Dex.Public,
			}, time.Now().UTC(), a.log)
			return err
		},
	}
	cmd.Flags().StringVar(&a.flags.Dex.Workbook, "workbook", "", "Source workbook (default "+config.DefaultDexWorkbook+")")
	cmd.Flags().StringVar(&a.flags.Dex.Output, "output", "", "Leaderboard JSON (default "+config.DefaultDexOutput+")")
	cmd.Flags().StringVar(&a.flags.Dex.Colors, "colors", "", "Persisted benchmark colour map (default "+config.DefaultDexColors+")")
	cmd.Flags().StringVar(&a.flags.Dex.Public, "public", "", "Public benchmark index (default "+config.DefaultDexPublic+")")
	return cmd
}
