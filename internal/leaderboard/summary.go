package leaderboard

import "github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"

const (
	metricSuccessRate = "Average Success Rate (%)"
	metricAvgLen      = "Average Length (Avg. Len.)"
	calvinSummaryDesc = "ABC-D Setting (Default)"
	topN              = 5
)

type namedEntry interface {
	Entry
	ModelName() string
}

// Summarize builds data.json. Calvin is summarised by its default ABC-D
// split, with per-split totals alongside.
func Summarize(libero types.Categories[*types.LiberoEntry], metaWorld types.Categories[*types.MetaWorldEntry], calvin types.CalvinBoards) types.Summary {
	cs := summarize(calvin.ABCD, metricAvgLen)
	cs.Description = calvinSummaryDesc
	cs.Settings = &types.CalvinSettingCounts{
		ABCDD: calvin.ABCDD.Len(),
		ABCD:  calvin.ABCD.Len(),
		DD:    calvin.DD.Len(),
	}
	return types.Summary{
		Libero:    summarize(libero, metricSuccessRate),
		MetaWorld: summarize(metaWorld, metricSuccessRate),
		Calvin:    cs,
	}
}

func summarize[E namedEntry](c types.Categories[E], metric string) types.BenchmarkSummary {
	return types.BenchmarkSummary{
		TotalModels:             c.Len(),
		StandardOpenSourceCount: len(c.StandardOpenSource),
		StandardClosedCount:     len(c.StandardClosed),
		NonStandardCount:        len(c.NonStandard),
		PrimaryMetric:           metric,
		Top5:                    top(c.StandardOpenSource, topN),
	}
}

// top returns the first n entries of an already ranked view, so position
// i carries rank i+1.
func top[E namedEntry](ranked []E, n int) []types.TopEntry {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]types.TopEntry, 0, n)
	for i, e := range ranked[:n] {
		out = append(out, types.TopEntry{Name: e.ModelName(), Score: e.Score(), Rank: i + 1})
	}
	return out
}
