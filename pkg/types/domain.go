package types

// ModelInfo is the model-level part every leaderboard entry starts with.
type ModelInfo struct {
	// Model name, the unique key across the sheet.
	// example: OpenVLA-OFT
	Name string `json:"name" example:"OpenVLA-OFT"`
	// Paper link, null when the sheet only cites another paper.
	// example: https://arxiv.org/abs/2502.19645
	PaperURL *string `json:"paper_url" example:"https://arxiv.org/abs/2502.19645"`
	// Publication month as YYYY-MM when recognised.
	// example: 2025-02
	PubDate *string `json:"pub_date" example:"2025-02"`
	// Set when the open-source column holds the 1 marker.
	IsOpenSource bool `json:"is_opensource" example:"true"`
	// Repository link when the open-source column holds one.
	OpenSourceURL *string `json:"opensource_url" example:"https://github.com/moojink/openvla-oft"`
}

// LiberoScores are success rates (%) on the Libero suites.
type LiberoScores struct {
	Spatial  *float64 `json:"spatial" example:"97.6"`
	Object   *float64 `json:"object" example:"98.4"`
	Goal     *float64 `json:"goal" example:"97.9"`
	Long     *float64 `json:"long" example:"94.5"`
	Libero90 *float64 `json:"libero_90"`
	Average  *float64 `json:"average" example:"97.1"`
}

// MetaWorldScores are success rates (%) per Meta-World difficulty level.
type MetaWorldScores struct {
	Easy     *float64 `json:"easy"`
	Medium   *float64 `json:"medium"`
	Hard     *float64 `json:"hard"`
	VeryHard *float64 `json:"very_hard"`
	Average  *float64 `json:"average"`
}

// CalvinScores are LH-MTLC chain success rates and the average chain length.
type CalvinScores struct {
	Inst1  *float64 `json:"inst1"`
	Inst2  *float64 `json:"inst2"`
	Inst3  *float64 `json:"inst3"`
	Inst4  *float64 `json:"inst4"`
	Inst5  *float64 `json:"inst5"`
	AvgLen *float64 `json:"avg_len" example:"4.1"`
}

// LiberoEntry is one row of libero.json.
type LiberoEntry struct {
	ModelInfo
	LiberoScores
	// "original" or the citation text of the row the scores came from.
	// example: original
	Source     string `json:"source" example:"original"`
	IsStandard bool   `json:"is_standard" example:"true"`
	Note       string `json:"note"`
	Rank       int    `json:"rank" example:"1"`
}

// MetaWorldEntry is one row of metaworld.json.
type MetaWorldEntry struct {
	ModelInfo
	MetaWorldScores
	Source     string `json:"source" example:"original"`
	IsStandard bool   `json:"is_standard"`
	Note       string `json:"note"`
	Rank       int    `json:"rank"`
}

// CalvinEntry is one row of a Calvin setting in calvin.json.
type CalvinEntry struct {
	ModelInfo
	IsStandard bool   `json:"is_standard"`
	Note       string `json:"note"`
	CalvinScores
	Source string `json:"source" example:"original"`
	Rank   int    `json:"rank"`
}

func (e *LiberoEntry) Score() *float64   { return e.Average }
func (e *LiberoEntry) Standard() bool    { return e.IsStandard }
func (e *LiberoEntry) OpenSource() bool  { return e.IsOpenSource }
func (e *LiberoEntry) SetRank(r int)     { e.Rank = r }
func (e *LiberoEntry) ModelName() string { return e.Name }

func (e *MetaWorldEntry) Score() *float64   { return e.Average }
func (e *MetaWorldEntry) Standard() bool    { return e.IsStandard }
func (e *MetaWorldEntry) OpenSource() bool  { return e.IsOpenSource }
func (e *MetaWorldEntry) SetRank(r int)     { e.Rank = r }
func (e *MetaWorldEntry) ModelName() string { return e.Name }

func (e *CalvinEntry) Score() *float64   { return e.AvgLen }
func (e *CalvinEntry) Standard() bool    { return e.IsStandard }
func (e *CalvinEntry) OpenSource() bool  { return e.IsOpenSource }
func (e *CalvinEntry) SetRank(r int)     { e.Rank = r }
func (e *CalvinEntry) ModelName() string { return e.Name }

// Categories splits one leaderboard into its three published views.
type Categories[E any] struct {
	// Standard evaluation protocol and released code (shown by default).
	StandardOpenSource []E `json:"standard_opensource"`
	// Standard evaluation protocol, code not released.
	StandardClosed []E `json:"standard_closed"`
	// Custom evaluation protocol (appendix).
	NonStandard []E `json:"non_standard"`
}

// Len is the number of entries across all three views.
func (c Categories[E]) Len() int {
	return len(c.StandardOpenSource) + len(c.StandardClosed) + len(c.NonStandard)
}

// CalvinBoards holds one leaderboard per Calvin train/test split.
type CalvinBoards struct {
	ABCDD Categories[*CalvinEntry] `json:"abcd_d"`
	ABCD  Categories[*CalvinEntry] `json:"abc_d"`
	DD    Categories[*CalvinEntry] `json:"d_d"`
}
