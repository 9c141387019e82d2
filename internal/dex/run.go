package dex

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/common/fsutil"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/output"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// Paths are the files one run reads and writes.
type Paths struct {
	Workbook string
	Output   string
	Colors   string
	Public   string
}

// Run builds the leaderboard from the workbook and writes the leaderboard,
// the colour map and the public index.
func Run(p Paths, now time.Time, log zerolog.Logger) (*types.DexLeaderboard, error) {
	wb, err := OpenWorkbook(p.Workbook)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	log.Debug().Str("workbook", p.Workbook).Str("sheet", wb.SheetName()).Msg("workbook opened")

	colors := LoadColors(p.Colors, log)
	before := len(colors)
	colors.Assign(BenchmarkIDs())
	if err := colors.Save(p.Colors); err != nil {
		return nil, fmt.Errorf("save colours %s: %w", p.Colors, err)
	}
	if n := len(colors) - before; n > 0 {
		log.Info().Int("assigned", n).Str("path", p.Colors).Msg("new benchmark colours")
	}

	lb, err := Build(wb, colors, now)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Workbook, err)
	}
	if err := writeJSON(p.Output, lb); err != nil {
		return nil, err
	}
	if err := writeJSON(p.Public, Index(lb)); err != nil {
		return nil, err
	}
	log.Info().Int("methods", len(lb.Methods)).Str("path", p.Output).Msgf("wrote %d methods to %s", len(lb.Methods), p.Output)
	return lb, nil
}

func writeJSON(path string, v any) error {
	data, err := output.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
