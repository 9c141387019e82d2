// Package dex builds the dexterous-manipulation leaderboard from its Excel
// workbook.
//
// The workbook layout is fixed: row 2 holds benchmark header links, method
// rows start at row 4, and each benchmark owns a block of columns listed in
// catalogue. Cell text is passed through as-is; only the mean column is
// parsed, for ranking.
package dex

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

const (
	firstMethodRow = 4
	lastMethodRow  = 200
	maxUpdates     = 5
	// TimeFormat renders generatedAt as UTC with milliseconds.
	TimeFormat = "2006-01-02T15:04:05.000Z"
)

// Build reads every method from s and assembles the leaderboard. colors
// supplies benchmark colours; ids missing from it are left blank.
func Build(s Sheet, colors Colors, now time.Time) (*types.DexLeaderboard, error) {
	lb := &types.DexLeaderboard{
		GeneratedAt: now.UTC().Format(TimeFormat),
		Benchmarks:  make([]types.DexBenchmark, 0, len(catalogue)),
		Methods:     []types.DexMethod{},
	}
	for _, b := range catalogue {
		links, err := benchmarkLinks(s, b)
		if err != nil {
			return nil, err
		}
		lb.Benchmarks = append(lb.Benchmarks, types.DexBenchmark{
			ID:           b.id,
			Name:         b.name,
			Description:  b.description,
			MeanColumnID: meanColumn,
			Columns:      b.publicColumns(),
			Color:        colors[b.id],
			Links:        links,
		})
	}

	for row := firstMethodRow; row <= lastMethodRow; row++ {
		m, ok, err := readMethod(s, row)
		if err != nil {
			return nil, err
		}
		if ok {
			lb.Methods = append(lb.Methods, m)
		}
	}
	rankMethods(lb.Methods)
	lb.Updates = recentUpdates(lb.Methods, maxUpdates)
	return lb, nil
}

func benchmarkLinks(s Sheet, b benchmark) ([]types.Link, error) {
	out := []types.Link{}
	for _, addr := range b.linkCells {
		url, err := s.Link(addr)
		if err != nil {
			return nil, err
		}
		if l := link(url); l != nil {
			out = append(out, *l)
		}
	}
	return out, nil
}

func cellName(col string, row int) string { return col + strconv.Itoa(row) }

// readMethod reads one method row. ok is false when column A is empty.
func readMethod(s Sheet, row int) (m types.DexMethod, ok bool, err error) {
	short, err := s.Value(cellName("A", row))
	if err != nil || short == nil {
		return m, false, err
	}
	text := func(col string) (string, error) {
		v, err := s.Value(cellName(col, row))
		if err != nil || v == nil {
			return "", err
		}
		return *v, nil
	}
	m = types.DexMethod{
		ID:         slugify(*short),
		ShortName:  *short,
		Ranks:      map[string]int{},
		Benchmarks: make(map[string]types.DexValues, len(catalogue)),
	}
	if m.Title, err = text("B"); err != nil {
		return m, false, err
	}
	if m.Time, err = text("C"); err != nil {
		return m, false, err
	}
	paper, err := s.Link(cellName("D", row))
	if err != nil {
		return m, false, err
	}
	project, err := s.Link(cellName("E", row))
	if err != nil {
		return m, false, err
	}
	m.Paper = link(paper)
	m.Project = link(project)
	m.IsOpenSource = project != ""

	for _, b := range catalogue {
		vals := make(map[string]*string, len(b.columns))
		for _, c := range b.columns {
			v, err := s.Value(cellName(c.col, row))
			if err != nil {
				return m, false, err
			}
			vals[c.ID] = v
		}
		m.Benchmarks[b.id] = types.DexValues{
			Values:  vals,
			Setting: vals["setting"],
			Source:  vals["source"],
			Proof:   vals["proof"],
		}
	}
	return m, true, nil
}

// rankMethods numbers, per benchmark, the methods with a readable mean
// score from best to worst. Ties keep sheet order.
func rankMethods(methods []types.DexMethod) {
	type scored struct {
		i     int
		score float64
	}
	for _, b := range catalogue {
		var list []scored
		for i, m := range methods {
			if s := parseScore(m.Benchmarks[b.id].Values[meanColumn]); s != nil {
				list = append(list, scored{i: i, score: *s})
			}
		}
		sort.SliceStable(list, func(a, c int) bool { return list[a].score > list[c].score })
		for pos, it := range list {
			methods[it.i].Ranks[b.id] = pos + 1
		}
	}
}

// recentUpdates lists the n newest methods by time.
func recentUpdates(methods []types.DexMethod, n int) []types.DexUpdate {
	sorted := append([]types.DexMethod(nil), methods...)
	sort.SliceStable(sorted, func(i, j int) bool { return timeScore(sorted[i].Time) > timeScore(sorted[j].Time) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]types.DexUpdate, 0, len(sorted))
	for _, m := range sorted {
		out = append(out, types.DexUpdate{Date: m.Time, Text: fmt.Sprintf("%s: %s", m.ShortName, m.Title)})
	}
	return out
}

// Index is the public benchmark list served to the site's navigation.
func Index(lb *types.DexLeaderboard) []types.DexBenchmarkRef {
	out := make([]types.DexBenchmarkRef, 0, len(lb.Benchmarks))
	for _, b := range lb.Benchmarks {
		out = append(out, types.DexBenchmarkRef{ID: b.ID, Name: b.Name, Href: "/dex/benchmarks/" + b.ID})
	}
	return out
}
