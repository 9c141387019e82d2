// Package leaderboard turns sheet rows into the published VLA leaderboards.
// It is structured into small files by concern:
//
//   - columns.go: fixed sheet layout (column positions and header names).
//   - row.go: ParseRow, per-row extraction and derived averages.
//   - registry.go: Model records and the merge rules between rows.
//   - derive.go: per-benchmark entry lists built from the registry.
//   - classify.go: category split and stable ranking.
//   - summary.go: home page summary.
//   - build.go: Build, the end-to-end transform, and its Stats.
//
// A model may appear on several rows: once from its own paper and again on
// rows citing results quoted by other papers ("from …" in the paper column).
// Rows from the model's own paper win over cited rows; among rows of the same
// kind, cited rows only fill benchmarks that are still empty while original
// rows always overwrite.
package leaderboard
