package config

// Defaults mirror the layout the site build expects when the tool runs from
// the data directory with no arguments.
const (
	DefaultInput       = "VLA_SOTA.csv"
	DefaultOutputDir   = "."
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	DefaultDexWorkbook = "assets/dex/raw/Dexterous Manipulation SOTA Leaderboard.xlsx"
	DefaultDexOutput   = "data/dex/leaderboard.json"
	DefaultDexColors   = "data/dex/benchmark-colors.json"
	DefaultDexPublic   = "public/dex/data/benchmarks.json"
	DefaultAddr        = ":8080"
)

// Defaults returns a Config with every field set to its default.
func Defaults() Config {
	return Config{}.WithDefaults()
}

// WithDefaults fills unspecified fields and returns the result.
func (c Config) WithDefaults() Config {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.Dex.Workbook == "" {
		c.Dex.Workbook = DefaultDexWorkbook
	}
	if c.Dex.Output == "" {
		c.Dex.Output = DefaultDexOutput
	}
	if c.Dex.Colors == "" {
		c.Dex.Colors = DefaultDexColors
	}
	if c.Dex.Public == "" {
		c.Dex.Public = DefaultDexPublic
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultAddr
	}
	if c.Serve.Dir == "" {
		c.Serve.Dir = c.OutputDir
	}
	return c
}
