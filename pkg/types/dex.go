package types

// Link is a labelled external URL.
type Link struct {
	Label string `json:"label" example:"Paper"`
	URL   string `json:"url" example:"https://arxiv.org/abs/2406.02523"`
}

// DexColumn describes one column of a dexterous benchmark table.
type DexColumn struct {
	ID    string `json:"id" example:"meanSucc"`
	Label string `json:"label" example:"Mean Succ"`
	// score or meta
	Kind string `json:"kind" example:"score"`
}

// DexBenchmark is a benchmark definition in the dexterous leaderboard.
type DexBenchmark struct {
	ID           string      `json:"id" example:"adroit"`
	Name         string      `json:"name" example:"Adroit"`
	Description  string      `json:"description"`
	MeanColumnID string      `json:"meanColumnId" example:"meanSucc"`
	Columns      []DexColumn `json:"columns"`
	// example: hsl(212, 70%, 55%)
	Color string `json:"color,omitempty" example:"hsl(212, 70%, 55%)"`
	Links []Link `json:"links"`
}

// DexValues are the raw cells of one method under one benchmark.
type DexValues struct {
	Values  map[string]*string `json:"values"`
	Setting *string            `json:"setting"`
	Source  *string            `json:"source"`
	Proof   *string            `json:"proof"`
}

// DexMethod is one method row of the dexterous leaderboard.
type DexMethod struct {
	ID           string               `json:"id" example:"dp3"`
	ShortName    string               `json:"shortName" example:"DP3"`
	Title        string               `json:"title"`
	Time         string               `json:"time" example:"2024.03"`
	Paper        *Link                `json:"paper,omitempty"`
	Project      *Link                `json:"project,omitempty"`
	IsOpenSource bool                 `json:"isOpenSource"`
	Ranks        map[string]int       `json:"ranks"`
	Benchmarks   map[string]DexValues `json:"benchmarks"`
}

// DexUpdate is a "recent additions" line.
type DexUpdate struct {
	Date string `json:"date" example:"2024.03"`
	Text string `json:"text" example:"DP3: 3D Diffusion Policy"`
}

// DexLeaderboard is the dexterous leaderboard file.
type DexLeaderboard struct {
	// RFC 3339 UTC timestamp with millisecond precision.
	GeneratedAt string         `json:"generatedAt" example:"2025-01-01T00:00:00.000Z"`
	Benchmarks  []DexBenchmark `json:"benchmarks"`
	Methods     []DexMethod    `json:"methods"`
	Updates     []DexUpdate    `json:"updates"`
}

// DexBenchmarkRef is one entry of the public benchmark index.
type DexBenchmarkRef struct {
	ID   string `json:"id" example:"adroit"`
	Name string `json:"name" example:"Adroit"`
	Href string `json:"href" example:"/dex/benchmarks/adroit"`
}
