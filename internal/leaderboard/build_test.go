package leaderboard

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

func buildFixture(t *testing.T) *Result {
	t.Helper()
	tbl, err := sheet.ReadFile("testdata/vla_sota.csv")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return Build(tbl, zerolog.Nop())
}

func TestBuild_Stats(t *testing.T) {
	res := buildFixture(t)
	want := Stats{Rows: 12, Skipped: 1, Citations: 3, Models: 8}
	if diff := cmp.Diff(want, res.Stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Libero(t *testing.T) {
	res := buildFixture(t)
	if got := names(res.Libero.StandardOpenSource); !equalStrings(got, []string{"OpenVLA-OFT", "pi0", "OpenVLA", "TinyVLA"}) {
		t.Fatalf("standard_opensource=%v", got)
	}
	if len(res.Libero.StandardClosed) != 0 {
		t.Fatalf("standard_closed=%v", names(res.Libero.StandardClosed))
	}
	if got := names(res.Libero.NonStandard); !equalStrings(got, []string{"Octo"}) {
		t.Fatalf("non_standard=%v", got)
	}

	oft := res.Libero.StandardOpenSource[0]
	want := &types.LiberoEntry{
		ModelInfo: types.ModelInfo{
			Name:          "OpenVLA-OFT",
			PaperURL:      sp("https://arxiv.org/abs/2502.19645"),
			PubDate:       sp("2025-02"),
			IsOpenSource:  true,
			OpenSourceURL: sp("https://github.com/moojink/openvla-oft"),
		},
		LiberoScores: types.LiberoScores{
			Spatial: fp(97.6), Object: fp(98.4), Goal: fp(97.9), Long: fp(94.5),
			Average: fp(97.1),
		},
		Source:     SourceOriginal,
		IsStandard: true,
		Rank:       1,
	}
	if diff := cmp.Diff(want, oft); diff != "" {
		t.Fatalf("OpenVLA-OFT mismatch (-want +got):\n%s", diff)
	}

	// The cited OpenVLA row must not have replaced the model's own result.
	ov := res.Libero.StandardOpenSource[2]
	if *ov.Average != 76.5 || ov.Source != SourceOriginal || ov.Note != "" {
		t.Fatalf("OpenVLA entry=%+v", ov)
	}

	tiny := res.Libero.StandardOpenSource[3]
	if tiny.Average != nil || *tiny.Spatial != 79 || *tiny.Object != 70 || tiny.Goal != nil || tiny.Long != nil {
		t.Fatalf("TinyVLA scores=%+v", tiny.LiberoScores)
	}
	if *tiny.PaperURL != "https://arxiv.org/abs/2409.12514" || tiny.Rank != 4 {
		t.Fatalf("TinyVLA info=%+v rank=%d", tiny.ModelInfo, tiny.Rank)
	}

	octo := res.Libero.NonStandard[0]
	if octo.Note != "fine-tuned 50 demos" || octo.Rank != 1 {
		t.Fatalf("Octo entry=%+v", octo)
	}
}

func TestBuild_MetaWorld(t *testing.T) {
	res := buildFixture(t)
	if res.MetaWorld.Len() != 2 || len(res.MetaWorld.NonStandard) != 2 {
		t.Fatalf("metaworld=%+v", res.MetaWorld)
	}
	octo, ov := res.MetaWorld.NonStandard[0], res.MetaWorld.NonStandard[1]
	if octo.Name != "Octo" || *octo.Average != 52.75 || octo.Hard != nil || octo.VeryHard != nil {
		t.Fatalf("Octo=%+v", octo)
	}
	if ov.Name != "OpenVLA" || *ov.Average != 45 || ov.Source != "from OpenVLA-OFT" || ov.Note != "cited" || ov.Rank != 2 {
		t.Fatalf("OpenVLA=%+v", ov)
	}
	// Model info on a cited result still comes from the model's own row.
	if !ov.IsOpenSource || *ov.PaperURL != "https://arxiv.org/abs/2406.09246" {
		t.Fatalf("OpenVLA info=%+v", ov.ModelInfo)
	}
}

func TestBuild_Calvin(t *testing.T) {
	res := buildFixture(t)

	abcdd := res.CalvinBoard(CalvinABCDD)
	if got := names(abcdd.StandardOpenSource); !equalStrings(got, []string{"RoboFlamingo"}) {
		t.Fatalf("abcd_d=%v", got)
	}

	abcd := res.CalvinBoard(CalvinABCD)
	if got := names(abcd.StandardOpenSource); !equalStrings(got, []string{"Seer", "RoboFlamingo"}) {
		t.Fatalf("abc_d standard_opensource=%v", got)
	}
	if got := names(abcd.StandardClosed); !equalStrings(got, []string{"GR-2"}) {
		t.Fatalf("abc_d standard_closed=%v", got)
	}
	seer := abcd.StandardOpenSource[0]
	if *seer.AvgLen != 4.28 || seer.Source != SourceOriginal || !seer.IsStandard || seer.Note != "" {
		t.Fatalf("Seer=%+v", seer)
	}
	if *seer.PaperURL != "https://arxiv.org/abs/2412.15109" || *seer.OpenSourceURL != "https://github.com/OpenRobotLab/Seer" {
		t.Fatalf("Seer info=%+v", seer.ModelInfo)
	}
	rf := abcd.StandardOpenSource[1]
	if *rf.PaperURL != "https://arxiv.org/abs/2311.01378" || *rf.PubDate != "2023-11" {
		t.Fatalf("RoboFlamingo info=%+v", rf.ModelInfo)
	}

	dd := res.CalvinBoard(CalvinDD)
	if dd.Len() != 1 || dd.StandardOpenSource[0].Name != "Seer" || *dd.StandardOpenSource[0].AvgLen != 3.64 {
		t.Fatalf("d_d=%+v", dd)
	}
}

func TestBuild_Summary(t *testing.T) {
	res := buildFixture(t)
	want := types.Summary{
		Libero: types.BenchmarkSummary{
			TotalModels:             5,
			StandardOpenSourceCount: 4,
			NonStandardCount:        1,
			PrimaryMetric:           metricSuccessRate,
			Top5: []types.TopEntry{
				{Name: "OpenVLA-OFT", Score: fp(97.1), Rank: 1},
				{Name: "pi0", Score: fp(94.2), Rank: 2},
				{Name: "OpenVLA", Score: fp(76.5), Rank: 3},
				{Name: "TinyVLA", Rank: 4},
			},
		},
		MetaWorld: types.BenchmarkSummary{
			TotalModels:      2,
			NonStandardCount: 2,
			PrimaryMetric:    metricSuccessRate,
			Top5:             []types.TopEntry{},
		},
		Calvin: types.BenchmarkSummary{
			TotalModels:             3,
			StandardOpenSourceCount: 2,
			StandardClosedCount:     1,
			PrimaryMetric:           metricAvgLen,
			Description:             calvinSummaryDesc,
			Top5: []types.TopEntry{
				{Name: "Seer", Score: fp(4.28), Rank: 1},
				{Name: "RoboFlamingo", Score: fp(2.48), Rank: 2},
			},
			Settings: &types.CalvinSettingCounts{ABCDD: 1, ABCD: 3, DD: 1},
		},
	}
	if diff := cmp.Diff(want, res.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptySheet(t *testing.T) {
	tbl, err := sheet.Read(strings.NewReader("title\nVLA Name,Paper\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	res := Build(tbl, zerolog.Nop())
	if res.Libero.StandardOpenSource == nil || res.Calvin.DD.NonStandard == nil {
		t.Fatalf("empty views must be non-nil")
	}
	if res.Summary.Libero.Top5 == nil || res.Summary.Calvin.Settings == nil {
		t.Fatalf("summary=%+v", res.Summary)
	}
}

func TestCalvinBoard_PicksSplit(t *testing.T) {
	of := func(n int) types.Categories[*types.CalvinEntry] {
		c := types.Categories[*types.CalvinEntry]{NonStandard: make([]*types.CalvinEntry, n)}
		for i := range c.NonStandard {
			c.NonStandard[i] = &types.CalvinEntry{}
		}
		return c
	}
	b := types.CalvinBoards{ABCDD: of(1), ABCD: of(2), DD: of(3)}
	cases := map[CalvinSetting]int{CalvinABCDD: 1, CalvinABCD: 2, CalvinDD: 3}
	for s, want := range cases {
		if got := CalvinBoard(b, s).Len(); got != want {
			t.Fatalf("%v: len=%d want %d", s, got, want)
		}
	}
}
