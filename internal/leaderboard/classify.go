package leaderboard

import (
	"sort"

	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// Entry is the view of a leaderboard row needed to classify and rank it.
type Entry interface {
	Score() *float64
	Standard() bool
	OpenSource() bool
	SetRank(int)
}

// Category names one of the three published views.
type Category string

const (
	StandardOpenSource Category = "standard_opensource"
	StandardClosed     Category = "standard_closed"
	NonStandard        Category = "non_standard"
)

// Categories lists the views in publication order.
var Categories = []Category{StandardOpenSource, StandardClosed, NonStandard}

// ParseCategory validates a category name.
func ParseCategory(v string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == v {
			return c, true
		}
	}
	return "", false
}

// CategoryOf places e in exactly one view. Protocol comes first: a
// non-standard evaluation is an appendix entry whether or not code is out.
func CategoryOf(e Entry) Category {
	switch {
	case !e.Standard():
		return NonStandard
	case e.OpenSource():
		return StandardOpenSource
	default:
		return StandardClosed
	}
}

// Classify splits entries into the three views, keeping input order.
// Every view is non-nil so it encodes as [].
func Classify[E Entry](entries []E) types.Categories[E] {
	c := types.Categories[E]{
		StandardOpenSource: []E{},
		StandardClosed:     []E{},
		NonStandard:        []E{},
	}
	for _, e := range entries {
		switch CategoryOf(e) {
		case NonStandard:
			c.NonStandard = append(c.NonStandard, e)
		case StandardOpenSource:
			c.StandardOpenSource = append(c.StandardOpenSource, e)
		default:
			c.StandardClosed = append(c.StandardClosed, e)
		}
	}
	return c
}

// SortAndRank orders entries by score, highest first, and numbers them from
// 1. Missing scores count as 0; ties keep their input order.
func SortAndRank[E Entry](entries []E) []E {
	sort.SliceStable(entries, func(i, j int) bool {
		return scoreOrZero(entries[i]) > scoreOrZero(entries[j])
	})
	for i, e := range entries {
		e.SetRank(i + 1)
	}
	return entries
}

// Rank classifies entries and ranks each view independently.
func Rank[E Entry](entries []E) types.Categories[E] {
	c := Classify(entries)
	SortAndRank(c.StandardOpenSource)
	SortAndRank(c.StandardClosed)
	SortAndRank(c.NonStandard)
	return c
}

// View returns the entries of one category.
func View[E any](c types.Categories[E], cat Category) []E {
	switch cat {
	case StandardOpenSource:
		return c.StandardOpenSource
	case StandardClosed:
		return c.StandardClosed
	case NonStandard:
		return c.NonStandard
	}
	return nil
}

func scoreOrZero(e Entry) float64 {
	if s := e.Score(); s != nil {
		return *s
	}
	return 0
}
