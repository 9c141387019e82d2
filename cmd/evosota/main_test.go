package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/dex"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/output"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
)

var fixture = filepath.Join("..", "..", "internal", "leaderboard", "testdata", "vla_sota.csv")

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	root := a.rootCmd()
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	prom := filepath.Join(dir, "build.prom")
	stdout, stderr, err := run(t, "build", "--input", fixture, "--out-dir", dir, "--metrics-file", prom, "--log-format", "json")
	require.NoError(t, err)

	for _, name := range output.Names {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, stdout, "Leaderboards built")
	assert.Contains(t, stdout, "Calvin ABC-D")
	assert.Contains(t, stderr, `"run_id"`)
	assert.Contains(t, stderr, `"models":8`)

	m, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(m), "evosota_build_models 8")
}

func TestRootRunsBuild(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := run(t, "--quiet", "--input", fixture, "--out-dir", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	_, err = os.Stat(filepath.Join(dir, output.SummaryFile))
	assert.NoError(t, err)
}

func TestBuildMissingInput(t *testing.T) {
	_, _, err := run(t, "build", "--input", filepath.Join(t.TempDir(), "nope.csv"), "--log-level", "error")
	require.Error(t, err)
	assert.True(t, sheet.IsInputNotFound(err), "got %v", err)
}

func TestConfigFileUnderFlags(t *testing.T) {
	dir := t.TempDir()
	fileOut := filepath.Join(dir, "from-file")
	flagOut := filepath.Join(dir, "from-flag")
	cfg := filepath.Join(dir, "evosota.toml")
	abs, err := filepath.Abs(fixture)
	require.NoError(t, err)
	body := "input = " + quote(abs) + "\noutput_dir = " + quote(fileOut) + "\nlog_level = \"error\"\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o644))

	_, _, err = run(t, "build", "--config", cfg, "--quiet")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(fileOut, output.LiberoFile))
	assert.NoError(t, err)

	_, _, err = run(t, "build", "--config", cfg, "--quiet", "--out-dir", flagOut)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(flagOut, output.LiberoFile))
	assert.NoError(t, err)
}

func TestBadConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "evosota.ini")
	require.NoError(t, os.WriteFile(cfg, []byte("x=1"), 0o644))
	_, _, err := run(t, "build", "--config", cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load config"), err.Error())
}

func TestDexMissingWorkbook(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "dex",
		"--workbook", filepath.Join(dir, "missing.xlsx"),
		"--output", filepath.Join(dir, "leaderboard.json"),
		"--colors", filepath.Join(dir, "colors.json"),
		"--public", filepath.Join(dir, "benchmarks.json"),
		"--log-level", "error")
	require.Error(t, err)
	assert.True(t, dex.IsWorkbookNotFound(err))
	assert.Contains(t, err.Error(), "missing Excel file")
}

func TestServeMissingCatalog(t *testing.T) {
	_, _, err := run(t, "serve", "--dir", t.TempDir(), "--addr", "127.0.0.1:0", "--log-level", "error")
	require.Error(t, err)
}

func TestServeFromInput(t *testing.T) {
	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	a.flags.Input = fixture
	a.flags.Dex.Output = filepath.Join(t.TempDir(), "missing-dex.json")
	a.logLevel = "error"
	require.NoError(t, a.setup())

	cat, err := a.loadCatalog(true)
	require.NoError(t, err)
	assert.True(t, cat.Ready())
	assert.Nil(t, cat.Dex)
	assert.Len(t, cat.Libero.StandardOpenSource, 4)
	assert.Equal(t, 5, cat.Summary.Libero.TotalModels)
}

func quote(s string) string { return `"` + filepath.ToSlash(s) + `"` }
