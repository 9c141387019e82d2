package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/catalog"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/config"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/httpapi"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/leaderboard"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCmd() *cobra.Command {
	var (
		origins   string
		fromInput bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated leaderboards as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v := os.Getenv("EVOSOTA_ADDR"); v != "" && !cmd.Flags().Changed("addr") {
				a.cfg.Serve.Addr = v
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.runServe(ctx, splitCSV(origins), fromInput)
		},
	}
	cmd.Flags().StringVar(&a.flags.Serve.Addr, "addr", "", "HTTP listen address (default "+config.DefaultAddr+", env EVOSOTA_ADDR)")
	cmd.Flags().StringVar(&a.flags.Serve.Dir, "dir", "", "Directory holding the generated JSON files (default --out-dir)")
	cmd.Flags().BoolVar(&a.flags.Serve.CORSEnabled, "cors-enabled", false, "Enable CORS")
	cmd.Flags().BoolVar(&fromInput, "from-input", false, "Build from --input in memory instead of reading generated files")
	cmd.Flags().StringVar(&a.flags.Input, "input", "", "Source CSV for --from-input (default VLA_SOTA.csv)")
	cmd.Flags().StringVar(&origins, "cors-origins", "", "Comma-separated allowed origins (default *)")
	return cmd
}

func (a *app) runServe(ctx context.Context, origins []string, fromInput bool) error {
	if len(origins) > 0 {
		a.cfg.Serve.CORSOrigins = origins
	}
	cat, err := a.loadCatalog(fromInput)
	if err != nil {
		return err
	}
	httpapi.SetLogger(a.log)
	httpapi.SetCatalogLoaded(cat.LoadedAt)
	httpapi.SetCORSOptions(a.cfg.Serve.CORSEnabled, a.cfg.Serve.CORSOrigins, nil, nil)

	srv := &http.Server{Addr: a.cfg.Serve.Addr, Handler: httpapi.NewMux(cat), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Str("dir", a.cfg.Serve.Dir).Bool("dex", cat.Dex != nil).Msg("evosota listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		a.log.Warn().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

// loadCatalog reads the generated files, or with fromInput builds the sheet
// in memory. The dex leaderboard is always read from its output file.
func (a *app) loadCatalog(fromInput bool) (*catalog.Catalog, error) {
	if !fromInput {
		return catalog.Load(a.cfg.Serve.Dir, a.cfg.Dex.Output)
	}
	t, err := sheet.ReadFile(a.cfg.Input)
	if err != nil {
		return nil, err
	}
	cat := catalog.FromResult(leaderboard.Build(t, a.log))
	dex, err := catalog.LoadDex(a.cfg.Dex.Output)
	if err != nil {
		return nil, err
	}
	cat.Dex = dex
	a.log.Info().Str("input", a.cfg.Input).Msg("serving in-memory build")
	return cat, nil
}
