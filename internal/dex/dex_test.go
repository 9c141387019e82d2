package dex

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// fakeSheet serves cells from maps.
type fakeSheet struct {
	values map[string]string
	links  map[string]string
}

func (f fakeSheet) Value(addr string) (*string, error) { return normalize(f.values[addr]), nil }
func (f fakeSheet) Link(addr string) (string, error)   { return f.links[addr], nil }

func TestNormalize(t *testing.T) {
	cases := map[string]*string{
		"":                  nil,
		"-":                 nil,
		"  - ":              nil,
		" \n ":              nil,
		"Diffusion\nPolicy": strp("Diffusion Policy"),
		" 0.85 ":            strp("0.85"),
	}
	for in, want := range cases {
		assert.Equal(t, want, normalize(in), "normalize(%q)", in)
	}
}

func strp(s string) *string { return &s }

func TestParseScore(t *testing.T) {
	cases := []struct {
		in   *string
		want *float64
	}{
		{nil, nil},
		{strp("85.2%"), fp(85.2)},
		{strp("0.72±0.05"), fp(0.72)},
		{strp(".5"), fp(0.5)},
		{strp("-3"), fp(-3)},
		{strp("n/a"), nil},
		{strp("approx 12"), fp(12)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseScore(tc.in))
	}
}

func fp(f float64) *float64 { return &f }

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"DP3":                "dp3",
		"Diffusion Policy":   "diffusion-policy",
		"  --UniDexGrasp++ ": "unidexgrasp",
		"RL (PPO) v2":        "rl-ppo-v2",
		"中文":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), in)
	}
}

func TestLabelFromURL(t *testing.T) {
	cases := map[string]string{
		"": "Link",
		"https://arxiv.org/abs/2403.03954":                "Paper",
		"https://github.com/YanjieZe/3D-Diffusion-Policy": "Code",
		"https://drive.google.com/drive/folders/x":        "Assets",
		"https://3d-diffusion-policy.github.io":           "Code",
		"https://example.org/project":                     "Website",
	}
	for in, want := range cases {
		assert.Equal(t, want, labelFromURL(in), in)
	}
}

func TestTimeScore(t *testing.T) {
	assert.Equal(t, 202403, timeScore("2024.03"))
	assert.Equal(t, 202410, timeScore("2024.10 (v2)"))
	assert.Equal(t, 0, timeScore("24.3"))
	assert.Equal(t, 0, timeScore(""))
}

func TestSeedAndStream(t *testing.T) {
	assert.Equal(t, uint32(2166136261), seedFromString(""))
	assert.Equal(t, uint32(3826002220), seedFromString("a"))
	assert.Equal(t, uint32(1610399396), seedFromString("日本"))
	assert.Equal(t, uint32(962575227), seedFromString(colorSeed))

	rng := mulberry32(seedFromString(colorSeed))
	var hues []int
	for i := 0; i < 8; i++ {
		hues = append(hues, int(rng()*360))
	}
	assert.Equal(t, []int{329, 307, 265, 346, 18, 300, 58, 41}, hues)
}

func TestColorsAssign(t *testing.T) {
	c := Colors{}
	c.Assign(BenchmarkIDs())
	assert.Equal(t, Colors{
		"adroit":     "hsl(329, 70%, 55%)",
		"dexart":     "hsl(307, 70%, 55%)",
		"bidexhands": "hsl(265, 70%, 55%)",
	}, c)
}

func TestColorsAssign_KeepsAndAvoidsExisting(t *testing.T) {
	c := Colors{"adroit": "hsl(307, 70%, 55%)"}
	c.Assign(BenchmarkIDs())
	assert.Equal(t, "hsl(307, 70%, 55%)", c["adroit"])
	assert.Equal(t, "hsl(329, 70%, 55%)", c["dexart"])
	// 307 is taken, so the next draw is used.
	assert.Equal(t, "hsl(265, 70%, 55%)", c["bidexhands"])
}

func TestLoadColors(t *testing.T) {
	dir := t.TempDir()
	log := zerolog.Nop()

	assert.Empty(t, LoadColors(filepath.Join(dir, "none.json"), log))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	assert.Empty(t, LoadColors(bad, log))

	good := filepath.Join(dir, "good.json")
	require.NoError(t, Colors{"adroit": "hsl(1, 70%, 55%)"}.Save(good))
	assert.Equal(t, Colors{"adroit": "hsl(1, 70%, 55%)"}, LoadColors(good, log))
}

func sampleSheet() fakeSheet {
	return fakeSheet{
		values: map[string]string{
			"A4": "DP3", "B4": "3D Diffusion Policy", "C4": "2024.03",
			"F4": "0.62", "G4": "0.9", "K4": "100 demos", "L4": "paper", "M4": "-",
			"R4": "0.71",
			"A5": "Diffusion Policy", "B5": "Visuomotor Policy Learning", "C5": "2023.3",
			"F5": "0.74", "AP5": "55.0%",
			"A6": "",
			"A7": "UniDexGrasp++", "B7": "Geometry-aware curriculum", "C7": "2023.10",
			"F7": "n/a", "R7": "0.71",
			"A200": "Last", "C200": "unknown",
			"A201": "Beyond",
		},
		links: map[string]string{
			"F2":  "https://arxiv.org/abs/1709.10087",
			"J2":  "https://github.com/aravindr93/mjrl",
			"AH2": "https://drive.google.com/drive/folders/bidex",
			"D4":  "https://arxiv.org/abs/2403.03954",
			"E4":  "https://3d-diffusion-policy.github.io",
			"D5":  "https://diffusion-policy.cs.columbia.edu",
		},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 14, 8, 30, 0, 123456789, time.FixedZone("CST", 8*3600))
	colors := Colors{}
	colors.Assign(BenchmarkIDs())

	lb, err := Build(sampleSheet(), colors, now)
	require.NoError(t, err)

	assert.Equal(t, "2026-10-14T00:30:00.123Z", lb.GeneratedAt)

	require.Len(t, lb.Benchmarks, 3)
	adroit := lb.Benchmarks[0]
	assert.Equal(t, "adroit", adroit.ID)
	assert.Equal(t, meanColumn, adroit.MeanColumnID)
	assert.Equal(t, "hsl(329, 70%, 55%)", adroit.Color)
	assert.Equal(t, []types.Link{
		{Label: "Paper", URL: "https://arxiv.org/abs/1709.10087"},
		{Label: "Code", URL: "https://github.com/aravindr93/mjrl"},
	}, adroit.Links)
	assert.Equal(t, []types.Link{}, lb.Benchmarks[1].Links)
	assert.Equal(t, []types.Link{{Label: "Assets", URL: "https://drive.google.com/drive/folders/bidex"}}, lb.Benchmarks[2].Links)
	require.Len(t, lb.Benchmarks[2].Columns, 24)
	assert.Equal(t, "LiftUderarm", lb.Benchmarks[2].Columns[9].Label)

	require.Len(t, lb.Methods, 4)
	dp3 := lb.Methods[0]
	assert.Equal(t, "dp3", dp3.ID)
	assert.Equal(t, &types.Link{Label: "Paper", URL: "https://arxiv.org/abs/2403.03954"}, dp3.Paper)
	assert.Equal(t, &types.Link{Label: "Code", URL: "https://3d-diffusion-policy.github.io"}, dp3.Project)
	assert.True(t, dp3.IsOpenSource)
	ad := dp3.Benchmarks["adroit"]
	assert.Equal(t, strp("0.62"), ad.Values["meanSucc"])
	assert.Nil(t, ad.Values["door"])
	assert.Equal(t, strp("100 demos"), ad.Setting)
	assert.Nil(t, ad.Proof)
	assert.Len(t, dp3.Benchmarks, 3)

	dp := lb.Methods[1]
	assert.Equal(t, "diffusion-policy", dp.ID)
	assert.Nil(t, dp.Project)
	assert.False(t, dp.IsOpenSource)
	assert.Equal(t, "Website", dp.Paper.Label)

	assert.Equal(t, "unidexgrasp", lb.Methods[2].ID)
	assert.Equal(t, "Last", lb.Methods[3].ShortName)
	assert.Equal(t, "", lb.Methods[3].Title)

	// Ranks: adroit 0.74 > 0.62, UniDexGrasp++ has no readable score.
	assert.Equal(t, map[string]int{"adroit": 1, "bidexhands": 1}, dp.Ranks)
	assert.Equal(t, map[string]int{"adroit": 2, "dexart": 1}, dp3.Ranks)
	assert.Equal(t, map[string]int{"dexart": 2}, lb.Methods[2].Ranks)
	assert.Equal(t, map[string]int{}, lb.Methods[3].Ranks)

	assert.Equal(t, []types.DexUpdate{
		{Date: "2024.03", Text: "DP3: 3D Diffusion Policy"},
		{Date: "2023.10", Text: "UniDexGrasp++: Geometry-aware curriculum"},
		{Date: "2023.3", Text: "Diffusion Policy: Visuomotor Policy Learning"},
		{Date: "unknown", Text: "Last: "},
	}, lb.Updates)
}

func TestRecentUpdates_Caps(t *testing.T) {
	var ms []types.DexMethod
	for i, tm := range []string{"2023.1", "2024.5", "2022.12", "2024.11", "2021.2", "2024.2", "2020.1"} {
		ms = append(ms, types.DexMethod{ShortName: string(rune('a' + i)), Time: tm})
	}
	got := recentUpdates(ms, maxUpdates)
	require.Len(t, got, 5)
	var dates []string
	for _, u := range got {
		dates = append(dates, u.Date)
	}
	assert.Equal(t, []string{"2024.11", "2024.5", "2024.2", "2023.1", "2022.12"}, dates)
}

func TestIndex(t *testing.T) {
	lb, err := Build(fakeSheet{}, Colors{}, time.Unix(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []types.DexBenchmarkRef{
		{ID: "adroit", Name: "Adroit", Href: "/dex/benchmarks/adroit"},
		{ID: "dexart", Name: "DexArt", Href: "/dex/benchmarks/dexart"},
		{ID: "bidexhands", Name: "Bi-DexHands", Href: "/dex/benchmarks/bidexhands"},
	}, Index(lb))
	assert.Empty(t, lb.Methods)
	assert.NotNil(t, lb.Methods)
	assert.Empty(t, lb.Updates)
}

// writeWorkbook saves a one-sheet xlsx with the given values and links.
func writeWorkbook(t *testing.T, path string, values map[string]any, links map[string]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for addr, v := range values {
		require.NoError(t, f.SetCellValue(sheet, addr, v))
	}
	for addr, target := range links {
		require.NoError(t, f.SetCellHyperLink(sheet, addr, target, "External"))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestRun_Workbook(t *testing.T) {
	dir := t.TempDir()
	p := Paths{
		Workbook: filepath.Join(dir, "raw", "board.xlsx"),
		Output:   filepath.Join(dir, "data", "dex", "leaderboard.json"),
		Colors:   filepath.Join(dir, "data", "dex", "benchmark-colors.json"),
		Public:   filepath.Join(dir, "public", "dex", "data", "benchmarks.json"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(p.Workbook), 0o755))
	writeWorkbook(t, p.Workbook, map[string]any{
		"F2": "Adroit", "A4": "DP3", "B4": "3D Diffusion\nPolicy", "C4": "2024.03",
		"F4": 0.62, "G4": 72, "R4": "-",
		"E4": "Project page",
		"A5": "BiDexHD", "C5": "2024.10", "AP5": 0.55,
	}, map[string]string{
		"F2": "https://arxiv.org/abs/1709.10087",
		"E4": "https://github.com/YanjieZe/3D-Diffusion-Policy",
	})

	lb, err := Run(p, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, lb.Methods, 2)
	dp3 := lb.Methods[0]
	assert.Equal(t, "3D Diffusion Policy", dp3.Title)
	assert.Equal(t, strp("0.62"), dp3.Benchmarks["adroit"].Values["meanSucc"])
	assert.Equal(t, strp("72"), dp3.Benchmarks["adroit"].Values["pen"])
	assert.Nil(t, dp3.Benchmarks["dexart"].Values["meanSucc"])
	assert.True(t, dp3.IsOpenSource)
	assert.Nil(t, dp3.Paper)
	assert.Equal(t, map[string]int{"bidexhands": 1}, lb.Methods[1].Ranks)

	raw, err := os.ReadFile(p.Output)
	require.NoError(t, err)
	var decoded types.DexLeaderboard
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2026-01-02T03:04:05.000Z", decoded.GeneratedAt)
	assert.Equal(t, "Paper", decoded.Benchmarks[0].Links[0].Label)

	raw, err = os.ReadFile(p.Public)
	require.NoError(t, err)
	var index []types.DexBenchmarkRef
	require.NoError(t, json.Unmarshal(raw, &index))
	assert.Len(t, index, 3)

	colors := LoadColors(p.Colors, zerolog.Nop())
	assert.Equal(t, "hsl(329, 70%, 55%)", colors["adroit"])

	// A second run keeps the persisted colours.
	require.NoError(t, Colors{"adroit": "hsl(1, 70%, 55%)"}.Save(p.Colors))
	lb, err = Run(p, time.Now(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "hsl(1, 70%, 55%)", lb.Benchmarks[0].Color)
}

func TestRun_MissingWorkbook(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(Paths{Workbook: filepath.Join(dir, "missing.xlsx")}, time.Now(), zerolog.Nop())
	require.Error(t, err)
	assert.True(t, IsWorkbookNotFound(err))
	assert.Contains(t, err.Error(), "missing Excel file")
}
