package leaderboard

import (
	"github.com/rs/zerolog"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// Stats describes one Build.
type Stats struct {
	Rows      int
	Skipped   int
	Citations int
	Models    int
}

// Result is everything written for one sheet.
type Result struct {
	Libero    types.Categories[*types.LiberoEntry]
	MetaWorld types.Categories[*types.MetaWorldEntry]
	Calvin    types.CalvinBoards
	Summary   types.Summary
	Stats     Stats
}

// CalvinBoard returns the boards of one split.
func (r *Result) CalvinBoard(s CalvinSetting) types.Categories[*types.CalvinEntry] {
	return CalvinBoard(r.Calvin, s)
}

// CalvinBoard picks split s out of b.
func CalvinBoard(b types.CalvinBoards, s CalvinSetting) types.Categories[*types.CalvinEntry] {
	switch s {
	case CalvinABCDD:
		return b.ABCDD
	case CalvinDD:
		return b.DD
	default:
		return b.ABCD
	}
}

// Build runs the whole transform over t. Rows are never rejected: rows
// without a model name are skipped and unreadable cells become nulls.
func Build(t *sheet.Table, log zerolog.Logger) *Result {
	reg := NewRegistry()
	var st Stats
	for _, sr := range t.Rows {
		st.Rows++
		row, ok := ParseRow(sr)
		if !ok {
			st.Skipped++
			log.Debug().Int("line", sr.Line).Msg("skip row without model name")
			continue
		}
		if !row.Original {
			st.Citations++
			log.Debug().Int("line", row.Line).Str("model", row.Info.Name).Str("source", row.Source).Msg("cited row")
		}
		reg.Apply(row)
	}
	st.Models = reg.Len()

	res := &Result{
		Libero:    Rank(reg.LiberoEntries()),
		MetaWorld: Rank(reg.MetaWorldEntries()),
		Calvin: types.CalvinBoards{
			ABCDD: Rank(reg.CalvinEntries(CalvinABCDD)),
			ABCD:  Rank(reg.CalvinEntries(CalvinABCD)),
			DD:    Rank(reg.CalvinEntries(CalvinDD)),
		},
		Stats: st,
	}
	res.Summary = Summarize(res.Libero, res.MetaWorld, res.Calvin)
	log.Info().
		Int("rows", st.Rows).
		Int("skipped", st.Skipped).
		Int("citations", st.Citations).
		Int("models", st.Models).
		Msg("sheet reconciled")
	return res
}
