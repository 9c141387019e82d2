package leaderboard

import (
	"strconv"
	"strings"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/cells"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// SourceOriginal tags results taken from the model's own paper.
const SourceOriginal = "original"

// Block is one benchmark's scores on a row together with its protocol flag
// and free-text note.
type Block[S any] struct {
	Scores   S
	Standard bool
	Note     string
}

// Row is a parsed sheet row.
type Row struct {
	Line     int
	Info     types.ModelInfo
	Original bool
	// Source is SourceOriginal or the raw citation text.
	Source string

	Libero    Block[types.LiberoScores]
	MetaWorld Block[types.MetaWorldScores]
	// Calvin scores per setting share one flag and note.
	Calvin         [len(CalvinSettings)]types.CalvinScores
	CalvinStandard bool
	CalvinNote     string
}

// ParseRow extracts a Row. ok is false when the row has no model name.
func ParseRow(r sheet.Row) (row Row, ok bool) {
	name := strings.TrimSpace(r.At(colName).String())
	if name == "" {
		return Row{}, false
	}
	paper := r.At(colPaper)
	open := r.At(colOpenSource)
	row = Row{
		Line: r.Line,
		Info: types.ModelInfo{
			Name:          name,
			PaperURL:      cells.PaperURL(paper),
			PubDate:       cells.Date(r.At(colDate)),
			IsOpenSource:  cells.IsOpenSource(open),
			OpenSourceURL: cells.OpenSourceURL(open),
		},
		Original: !cells.IsCitation(paper),
		Source:   SourceOriginal,
	}
	if !row.Original {
		row.Source = cells.Text(paper)
	}

	row.Libero = Block[types.LiberoScores]{
		Scores:   liberoScores(r),
		Standard: cells.IsStandardEval(r.Get(colLiberoStandard)),
		Note:     cells.Text(r.Get(colLiberoNote)),
	}
	row.MetaWorld = Block[types.MetaWorldScores]{
		Scores:   metaWorldScores(r),
		Standard: cells.IsStandardEval(r.Get(colMetaWorldStandard)),
		Note:     cells.Text(r.Get(colMetaWorldNote)),
	}
	for i, s := range CalvinSettings {
		row.Calvin[i] = calvinScores(r, s)
	}
	row.CalvinStandard = cells.IsStandardEval(r.Get(colCalvinStandard))
	row.CalvinNote = cells.Text(r.Get(colCalvinNote))
	return row, true
}

// liberoScores reads the Libero block. A missing average is derived from
// spatial/object/goal/long when at least three of them are present; Libero-90
// is a separate suite and never averaged in.
func liberoScores(r sheet.Row) types.LiberoScores {
	s := types.LiberoScores{
		Spatial:  cells.Value(r.Get(colLiberoSpatial)),
		Object:   cells.Value(r.Get(colLiberoObject)),
		Goal:     cells.Value(r.Get(colLiberoGoal)),
		Long:     cells.Value(r.Get(colLiberoLong)),
		Libero90: cells.Value(r.Get(colLibero90)),
		Average:  cells.Value(r.Get(colLiberoAverage)),
	}
	if s.Average == nil {
		s.Average = meanOf(3, s.Spatial, s.Object, s.Goal, s.Long)
	}
	return s
}

// metaWorldScores reads the Meta-World block; a missing average needs at
// least two difficulty levels.
func metaWorldScores(r sheet.Row) types.MetaWorldScores {
	s := types.MetaWorldScores{
		Easy:     cells.Value(r.Get(colMWEasy)),
		Medium:   cells.Value(r.Get(colMWMedium)),
		Hard:     cells.Value(r.Get(colMWHard)),
		VeryHard: cells.Value(r.Get(colMWVeryHard)),
		Average:  cells.Value(r.Get(colMWAverage)),
	}
	if s.Average == nil {
		s.Average = meanOf(2, s.Easy, s.Medium, s.Hard, s.VeryHard)
	}
	return s
}

func calvinScores(r sheet.Row, s CalvinSetting) types.CalvinScores {
	return types.CalvinScores{
		Inst1:  cells.Value(r.Get(calvinInstColumn(s, 1))),
		Inst2:  cells.Value(r.Get(calvinInstColumn(s, 2))),
		Inst3:  cells.Value(r.Get(calvinInstColumn(s, 3))),
		Inst4:  cells.Value(r.Get(calvinInstColumn(s, 4))),
		Inst5:  cells.Value(r.Get(calvinInstColumn(s, 5))),
		AvgLen: cells.Value(r.Get(calvinAvgLenColumn(s))),
	}
}

// meanOf averages the non-nil values, rounded to two decimals, when at least
// need of them are present.
func meanOf(need int, vals ...*float64) *float64 {
	var sum float64
	n := 0
	for _, v := range vals {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n < need || n == 0 {
		return nil
	}
	avg := round2(sum / float64(n))
	return &avg
}

// round2 rounds half-to-even on the exact binary value.
func round2(f float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	return r
}

func anySet(vals ...*float64) bool {
	for _, v := range vals {
		if v != nil {
			return true
		}
	}
	return false
}

func hasLibero(s types.LiberoScores) bool {
	return anySet(s.Spatial, s.Object, s.Goal, s.Long, s.Libero90, s.Average)
}

func hasMetaWorld(s types.MetaWorldScores) bool {
	return anySet(s.Easy, s.Medium, s.Hard, s.VeryHard, s.Average)
}

func hasCalvin(s types.CalvinScores) bool {
	return anySet(s.Inst1, s.Inst2, s.Inst3, s.Inst4, s.Inst5, s.AvgLen)
}
