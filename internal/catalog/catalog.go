// Package catalog holds the generated leaderboard files in memory for the
// preview server.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/common/fsutil"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/leaderboard"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/output"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// Benchmark ids as used in URLs.
const (
	Libero    = "libero"
	MetaWorld = "metaworld"
	Calvin    = "calvin"
)

// DefaultCalvinSetting is served when a Calvin request names no setting.
const DefaultCalvinSetting = leaderboard.CalvinABCD

// Catalog is an immutable snapshot of one output directory.
type Catalog struct {
	Libero    types.Categories[*types.LiberoEntry]
	MetaWorld types.Categories[*types.MetaWorldEntry]
	Calvin    types.CalvinBoards
	Summary   types.Summary
	// Dex is nil when no dex leaderboard was found.
	Dex *types.DexLeaderboard

	LoadedAt time.Time
}

// Load reads the four leaderboard files from dir, and the dex leaderboard
// from dexPath when that file exists.
func Load(dir, dexPath string) (*Catalog, error) {
	c := &Catalog{}
	files := []struct {
		name string
		v    any
	}{
		{output.LiberoFile, &c.Libero},
		{output.MetaWorldFile, &c.MetaWorld},
		{output.CalvinFile, &c.Calvin},
		{output.SummaryFile, &c.Summary},
	}
	for _, f := range files {
		if err := readJSON(filepath.Join(dir, f.name), f.v); err != nil {
			return nil, err
		}
	}
	dex, err := LoadDex(dexPath)
	if err != nil {
		return nil, err
	}
	c.Dex = dex
	c.LoadedAt = time.Now()
	return c, nil
}

// LoadDex reads the dex leaderboard at path. A missing file is not an error
// and yields nil.
func LoadDex(path string) (*types.DexLeaderboard, error) {
	if path == "" || !fsutil.PathExists(path) {
		return nil, nil
	}
	var dex types.DexLeaderboard
	if err := readJSON(path, &dex); err != nil {
		return nil, err
	}
	return &dex, nil
}

// FromResult wraps an in-memory build, for serving a sheet without
// writing its files first.
func FromResult(res *leaderboard.Result) *Catalog {
	return &Catalog{
		Libero:    res.Libero,
		MetaWorld: res.MetaWorld,
		Calvin:    res.Calvin,
		Summary:   res.Summary,
		LoadedAt:  time.Now(),
	}
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Ready reports whether the snapshot is loaded.
func (c *Catalog) Ready() bool { return c != nil && !c.LoadedAt.IsZero() }

// Benchmarks lists the leaderboards in the snapshot.
func (c *Catalog) Benchmarks() []types.BenchmarkRef {
	settings := make([]string, 0, len(leaderboard.CalvinSettings))
	for _, s := range leaderboard.CalvinSettings {
		settings = append(settings, s.Key())
	}
	return []types.BenchmarkRef{
		{ID: Libero, Href: "/api/leaderboards/" + Libero},
		{ID: MetaWorld, Href: "/api/leaderboards/" + MetaWorld},
		{ID: Calvin, Href: "/api/leaderboards/" + Calvin, Settings: settings},
	}
}

// GetSummary returns data.json.
func (c *Catalog) GetSummary() types.Summary { return c.Summary }

// GetDex returns the dex leaderboard if one was loaded.
func (c *Catalog) GetDex() (*types.DexLeaderboard, bool) { return c.Dex, c.Dex != nil }

// Leaderboard returns a whole benchmark file.
func (c *Catalog) Leaderboard(benchmark string) (any, error) {
	switch benchmark {
	case Libero:
		return c.Libero, nil
	case MetaWorld:
		return c.MetaWorld, nil
	case Calvin:
		return c.Calvin, nil
	}
	return nil, notFoundError{kind: "benchmark", name: benchmark}
}

// View returns one category of a benchmark. setting selects the Calvin split,
// defaulting to ABC-D, and is ignored elsewhere.
func (c *Catalog) View(benchmark, category, setting string) (any, error) {
	cat, ok := leaderboard.ParseCategory(category)
	if !ok {
		return nil, notFoundError{kind: "category", name: category}
	}
	switch benchmark {
	case Libero:
		return leaderboard.View(c.Libero, cat), nil
	case MetaWorld:
		return leaderboard.View(c.MetaWorld, cat), nil
	case Calvin:
		s := DefaultCalvinSetting
		if setting != "" {
			if s, ok = leaderboard.ParseCalvinSetting(setting); !ok {
				return nil, notFoundError{kind: "setting", name: setting}
			}
		}
		return leaderboard.View(leaderboard.CalvinBoard(c.Calvin, s), cat), nil
	}
	return nil, notFoundError{kind: "benchmark", name: benchmark}
}
