// Package report prints the end-of-build summary to the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/leaderboard"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/output"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

var (
	accent = lipgloss.Color("#7C3AED")
	muted  = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#A3A3A3"}
)

// legend explains the three views in publication order.
var legend = map[leaderboard.Category]string{
	leaderboard.StandardOpenSource: "standard protocol, code released (shown by default)",
	leaderboard.StandardClosed:     "standard protocol, code not released (optional)",
	leaderboard.NonStandard:        "custom protocol (appendix)",
}

var fileDesc = map[string]string{
	output.LiberoFile:    "Libero leaderboard, three views",
	output.MetaWorldFile: "Meta-World leaderboard, three views",
	output.CalvinFile:    "Calvin leaderboards, three settings by three views",
	output.SummaryFile:   "home page summary",
}

type styles struct {
	title, section, label, value, hint lipgloss.Style
	box                                lipgloss.Style
}

// newStyles binds styles to w so colour is only emitted on terminals.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(accent),
		section: r.NewStyle().Bold(true),
		label:   r.NewStyle().Width(22).PaddingLeft(2),
		value:   r.NewStyle().Bold(true),
		hint:    r.NewStyle().Foreground(muted),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
	}
}

// Render writes the build report for res and the files written.
func Render(w io.Writer, res *leaderboard.Result, files []output.File) error {
	st := newStyles(w)
	var b strings.Builder

	b.WriteString(st.title.Render("Leaderboards built") + "\n")
	fmt.Fprintf(&b, "%s %s\n\n", st.label.UnsetPaddingLeft().Render("Total models:"), st.value.Render(fmt.Sprint(res.Stats.Models)))

	writeCounts(&b, st, "Libero", res.Libero.StandardOpenSource, res.Libero.StandardClosed, res.Libero.NonStandard)
	writeCounts(&b, st, "Meta-World", res.MetaWorld.StandardOpenSource, res.MetaWorld.StandardClosed, res.MetaWorld.NonStandard)
	abcd := res.CalvinBoard(leaderboard.CalvinABCD)
	writeCounts(&b, st, "Calvin (ABC-D)", abcd.StandardOpenSource, abcd.StandardClosed, abcd.NonStandard)

	b.WriteString(st.section.Render("Calvin per setting") + "\n")
	for _, s := range leaderboard.CalvinSettings {
		name := s.Prefix()
		if s == leaderboard.CalvinABCD {
			name += " (main)"
		}
		fmt.Fprintf(&b, "%s%s models\n", st.label.Render(name), st.value.Render(fmt.Sprint(res.CalvinBoard(s).Len())))
	}
	b.WriteString("\n")

	if len(files) > 0 {
		b.WriteString(st.section.Render("Files") + "\n")
		for _, f := range files {
			fmt.Fprintf(&b, "%s%-9s %s\n", st.label.Render(f.Name), humanize.Bytes(uint64(f.Size)), st.hint.Render(fileDesc[f.Name]))
		}
		b.WriteString("\n")
	}

	var lg strings.Builder
	lg.WriteString(st.section.Render("Categories"))
	for _, c := range leaderboard.Categories {
		fmt.Fprintf(&lg, "\n%s %s", st.value.Render(string(c)), st.hint.Render(legend[c]))
	}
	b.WriteString(st.box.Render(lg.String()) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCounts[E any](b *strings.Builder, st styles, name string, open, closed, custom []E) {
	b.WriteString(st.section.Render(name) + "\n")
	rows := []struct {
		c leaderboard.Category
		n int
	}{
		{leaderboard.StandardOpenSource, len(open)},
		{leaderboard.StandardClosed, len(closed)},
		{leaderboard.NonStandard, len(custom)},
	}
	for _, r := range rows {
		fmt.Fprintf(b, "%s%s models\n", st.label.Render(string(r.c)), st.value.Render(fmt.Sprint(r.n)))
	}
	b.WriteString("\n")
}

// Top writes the head of one benchmark's default view.
func Top(w io.Writer, name string, s types.BenchmarkSummary) error {
	st := newStyles(w)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", st.section.Render(name), st.hint.Render(s.PrimaryMetric))
	if len(s.Top5) == 0 {
		b.WriteString("  " + st.hint.Render("no standard open-source entries") + "\n")
	}
	for _, e := range s.Top5 {
		score := "-"
		if e.Score != nil {
			score = humanize.FtoaWithDigits(*e.Score, 2)
		}
		fmt.Fprintf(&b, "  %d. %-30s %s\n", e.Rank, e.Name, st.value.Render(score))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
