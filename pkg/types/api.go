package types

// TopEntry is a compact leaderboard row for the home page.
type TopEntry struct {
	// example: OpenVLA-OFT
	Name  string   `json:"name" example:"OpenVLA-OFT"`
	Score *float64 `json:"score" example:"97.1"`
	Rank  int      `json:"rank" example:"1"`
}

// CalvinSettingCounts are entry totals per Calvin split.
type CalvinSettingCounts struct {
	ABCDD int `json:"abcd_d"`
	ABCD  int `json:"abc_d"`
	DD    int `json:"d_d"`
}

// BenchmarkSummary describes one benchmark on the home page.
type BenchmarkSummary struct {
	TotalModels             int    `json:"total_models" example:"42"`
	StandardOpenSourceCount int    `json:"standard_opensource_count" example:"20"`
	StandardClosedCount     int    `json:"standard_closed_count" example:"12"`
	NonStandardCount        int    `json:"non_standard_count" example:"10"`
	// example: Average Success Rate (%)
	PrimaryMetric string `json:"primary_metric" example:"Average Success Rate (%)"`
	// Set for benchmarks whose summary covers one setting only.
	Description string               `json:"description,omitempty"`
	Top5        []TopEntry           `json:"top_5"`
	Settings    *CalvinSettingCounts `json:"settings,omitempty"`
}

// Summary is data.json.
type Summary struct {
	Libero    BenchmarkSummary `json:"libero"`
	MetaWorld BenchmarkSummary `json:"metaworld"`
	Calvin    BenchmarkSummary `json:"calvin"`
}

// BenchmarksResponse lists the leaderboards the preview server exposes.
type BenchmarksResponse struct {
	Benchmarks []BenchmarkRef `json:"benchmarks"`
}

// BenchmarkRef names a leaderboard and where to fetch it.
type BenchmarkRef struct {
	// example: libero
	ID string `json:"id" example:"libero"`
	// example: /api/leaderboards/libero
	Href string `json:"href" example:"/api/leaderboards/libero"`
	// Calvin splits; empty for single-setting benchmarks.
	Settings []string `json:"settings,omitempty"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: unknown benchmark: robotwin
	Error string `json:"error" example:"unknown benchmark: robotwin"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
