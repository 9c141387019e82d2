// Package output writes the built leaderboards as the JSON files the site
// loads.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/common/fsutil"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/leaderboard"
)

// File names relative to the output directory.
const (
	LiberoFile    = "libero.json"
	MetaWorldFile = "metaworld.json"
	CalvinFile    = "calvin.json"
	SummaryFile   = "data.json"
)

// Names lists the files Write produces, in write order.
var Names = []string{LiberoFile, MetaWorldFile, CalvinFile, SummaryFile}

// File is one written file.
type File struct {
	Name string
	Path string
	Size int64
}

// Write encodes res into dir. It stops at the first failure; files already
// written are left in place and reported.
func Write(dir string, res *leaderboard.Result) ([]File, error) {
	docs := []struct {
		name string
		v    any
	}{
		{LiberoFile, res.Libero},
		{MetaWorldFile, res.MetaWorld},
		{CalvinFile, res.Calvin},
		{SummaryFile, res.Summary},
	}
	var files []File
	for _, d := range docs {
		data, err := Encode(d.v)
		if err != nil {
			return files, fmt.Errorf("encode %s: %w", d.name, err)
		}
		path := filepath.Join(dir, d.name)
		if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
			return files, fmt.Errorf("write %s: %w", path, err)
		}
		files = append(files, File{Name: d.name, Path: path, Size: int64(len(data))})
	}
	return files, nil
}

// Encode renders v as two-space indented JSON. Non-ASCII text and HTML
// characters are written literally and there is no trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
