package leaderboard

import (
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/cells"
	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// Stored is a stored benchmark block with its provenance.
type Stored[S any] struct {
	Scores S
	Source string
}

// Track is the evaluation-protocol flag and note attached to a benchmark.
// Standard is nil until a row sets it.
type Track struct {
	Standard *bool
	Note     string
	// original is set when an original row wrote the flag.
	original bool
}

func (t *Track) set(standard bool, note string, original bool) {
	t.Standard = &standard
	t.Note = note
	t.original = original
}

// IsStandard reports the flag, false while unset.
func (t Track) IsStandard() bool { return t.Standard != nil && *t.Standard }

// Model is the canonical record of one model name.
type Model struct {
	types.ModelInfo

	Libero         *Stored[types.LiberoScores]
	LiberoTrack    Track
	MetaWorld      *Stored[types.MetaWorldScores]
	MetaWorldTrack Track
	Calvin         [len(CalvinSettings)]*Stored[types.CalvinScores]
	CalvinTrack    Track
}

// Registry accumulates Models keyed by name, in first-seen order.
type Registry struct {
	models map[string]*Model
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Model)}
}

// Len is the number of distinct models.
func (r *Registry) Len() int { return len(r.order) }

// Get returns the record for name.
func (r *Registry) Get(name string) (*Model, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Models returns the records in first-seen order.
func (r *Registry) Models() []*Model {
	out := make([]*Model, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.models[name])
	}
	return out
}

// Apply merges row into the registry.
//
// The first row of a name creates the record from that row's model info,
// cited or not. After that only original rows touch model info: links and
// date when non-empty, the open-source flag always. A benchmark block with
// at least one score is stored when the slot is empty or the row is
// original.
func (r *Registry) Apply(row Row) *Model {
	m, ok := r.models[row.Info.Name]
	if !ok {
		m = &Model{ModelInfo: row.Info}
		r.models[row.Info.Name] = m
		r.order = append(r.order, row.Info.Name)
	}

	if row.Original {
		if cells.NonEmpty(row.Info.PaperURL) {
			m.PaperURL = row.Info.PaperURL
		}
		if cells.NonEmpty(row.Info.PubDate) {
			m.PubDate = row.Info.PubDate
		}
		m.IsOpenSource = row.Info.IsOpenSource
		if cells.NonEmpty(row.Info.OpenSourceURL) {
			m.OpenSourceURL = row.Info.OpenSourceURL
		}
	}

	if hasLibero(row.Libero.Scores) && (m.Libero == nil || row.Original) {
		m.Libero = &Stored[types.LiberoScores]{Scores: row.Libero.Scores, Source: row.Source}
		m.LiberoTrack.set(row.Libero.Standard, row.Libero.Note, row.Original)
	}
	if hasMetaWorld(row.MetaWorld.Scores) && (m.MetaWorld == nil || row.Original) {
		m.MetaWorld = &Stored[types.MetaWorldScores]{Scores: row.MetaWorld.Scores, Source: row.Source}
		m.MetaWorldTrack.set(row.MetaWorld.Standard, row.MetaWorld.Note, row.Original)
	}

	// The Calvin flag is shared by all splits. An original row replaces a
	// flag written by a cited one; between rows of the same kind ABCD-D wins
	// and the other splits only fill an unset flag.
	for i, s := range CalvinSettings {
		scores := row.Calvin[i]
		if !hasCalvin(scores) || (m.Calvin[i] != nil && !row.Original) {
			continue
		}
		m.Calvin[i] = &Stored[types.CalvinScores]{Scores: scores, Source: row.Source}
		t := &m.CalvinTrack
		if t.Standard == nil ||
			(row.Original && !t.original) ||
			(s == CalvinABCDD && row.Original == t.original) {
			t.set(row.CalvinStandard, row.CalvinNote, row.Original)
		}
	}
	return m
}
