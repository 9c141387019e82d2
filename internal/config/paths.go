package config

import "github.com/MINT-SJTU/Evo-SOTA.io/internal/common/fsutil"

// ResolvePaths expands '~' in every path field and joins relative ones onto
// base. Config files pass their own directory so a file can be used from
// anywhere; an empty base keeps paths relative to the working directory.
func (c Config) ResolvePaths(base string) (Config, error) {
	fields := []*string{
		&c.Input, &c.OutputDir, &c.MetricsFile,
		&c.Dex.Workbook, &c.Dex.Output, &c.Dex.Colors, &c.Dex.Public,
		&c.Serve.Dir,
	}
	for _, f := range fields {
		if *f == "" {
			continue
		}
		p, err := fsutil.Resolve(base, *f)
		if err != nil {
			return c, err
		}
		*f = p
	}
	return c, nil
}
