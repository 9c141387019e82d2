package leaderboard

import "github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"

// LiberoEntries lists models with a Libero block, in model order.
func (r *Registry) LiberoEntries() []*types.LiberoEntry {
	out := []*types.LiberoEntry{}
	for _, m := range r.Models() {
		if m.Libero == nil {
			continue
		}
		out = append(out, &types.LiberoEntry{
			ModelInfo:    m.ModelInfo,
			LiberoScores: m.Libero.Scores,
			Source:       m.Libero.Source,
			IsStandard:   m.LiberoTrack.IsStandard(),
			Note:         m.LiberoTrack.Note,
		})
	}
	return out
}

// MetaWorldEntries lists models with a Meta-World block, in model order.
func (r *Registry) MetaWorldEntries() []*types.MetaWorldEntry {
	out := []*types.MetaWorldEntry{}
	for _, m := range r.Models() {
		if m.MetaWorld == nil {
			continue
		}
		out = append(out, &types.MetaWorldEntry{
			ModelInfo:       m.ModelInfo,
			MetaWorldScores: m.MetaWorld.Scores,
			Source:          m.MetaWorld.Source,
			IsStandard:      m.MetaWorldTrack.IsStandard(),
			Note:            m.MetaWorldTrack.Note,
		})
	}
	return out
}

// CalvinEntries lists models with results on setting s, in model order. All
// three settings report the model's shared Calvin flag and note.
func (r *Registry) CalvinEntries(s CalvinSetting) []*types.CalvinEntry {
	out := []*types.CalvinEntry{}
	for _, m := range r.Models() {
		res := m.Calvin[s]
		if res == nil {
			continue
		}
		out = append(out, &types.CalvinEntry{
			ModelInfo:    m.ModelInfo,
			IsStandard:   m.CalvinTrack.IsStandard(),
			Note:         m.CalvinTrack.Note,
			CalvinScores: res.Scores,
			Source:       res.Source,
		})
	}
	return out
}
