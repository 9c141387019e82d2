// Command evosota builds the Evo-SOTA leaderboard data files.
//
// With no arguments it runs build: VLA_SOTA.csv in the working directory
// becomes libero.json, metaworld.json, calvin.json and data.json next to it.
package main

import "os"

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Error().Err(err).Msg("evosota failed")
		os.Exit(1)
	}
}
