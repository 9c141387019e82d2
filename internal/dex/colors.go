package dex

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"unicode/utf16"

	"github.com/rs/zerolog"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/common/fsutil"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/output"
)

// colorSeed keys the colour stream. Changing it reshuffles the colours of
// every benchmark not yet in the map.
const colorSeed = "dexterous-benchmark-colors"

const maxColorRetries = 1000

// seedFromString hashes the UTF-16 code units of v into a 32-bit seed.
func seedFromString(v string) uint32 {
	h := uint32(2166136261)
	for _, c := range utf16.Encode([]rune(v)) {
		h ^= uint32(c)
		h += (h << 1) + (h << 4) + (h << 7) + (h << 8) + (h << 24)
	}
	return h
}

// mulberry32 returns a generator of floats in [0, 1).
func mulberry32(seed uint32) func() float64 {
	t := seed
	return func() float64 {
		t += 0x6d2b79f5
		r := (t ^ (t >> 15)) * (1 | t)
		r ^= r + (r^(r>>7))*(61|r)
		return float64(r^(r>>14)) / 4294967296
	}
}

func randomColor(rng func() float64) string {
	return fmt.Sprintf("hsl(%d, 70%%, 55%%)", int(math.Floor(rng()*360)))
}

// Colors maps benchmark id to a CSS colour. Assigned colours never change.
type Colors map[string]string

// LoadColors reads the colour map at path. A missing or unreadable file
// yields an empty map.
func LoadColors(path string, log zerolog.Logger) Colors {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("colour map unreadable, starting empty")
		}
		return Colors{}
	}
	var c Colors
	if err := json.Unmarshal(raw, &c); err != nil || c == nil {
		log.Warn().Err(err).Str("path", path).Msg("colour map invalid, starting empty")
		return Colors{}
	}
	return c
}

// Assign gives every id without a colour a fresh one, avoiding colours
// already in use when the stream allows. The stream restarts from the same
// seed each run, so assignment is reproducible.
func (c Colors) Assign(ids []string) {
	rng := mulberry32(seedFromString(colorSeed))
	used := make(map[string]bool, len(c))
	for _, v := range c {
		used[v] = true
	}
	for _, id := range ids {
		if c[id] != "" {
			continue
		}
		color := randomColor(rng)
		for i := 0; used[color] && i < maxColorRetries; i++ {
			color = randomColor(rng)
		}
		c[id] = color
		used[color] = true
	}
}

// Save writes the map as indented JSON.
func (c Colors) Save(path string) error {
	data, err := output.Encode(c)
	if err != nil {
		return fmt.Errorf("encode colours: %w", err)
	}
	return fsutil.WriteFileAtomic(path, data, 0o644)
}
