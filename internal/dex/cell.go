package dex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

var (
	reScore    = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)
	reNonSlug  = regexp.MustCompile(`[^a-z0-9]+`)
	reTimeDate = regexp.MustCompile(`^(\d{4})\.(\d{1,2})`)
)

// normalize folds line breaks into spaces and trims. Empty text and "-"
// are missing.
func normalize(raw string) *string {
	v := strings.TrimSpace(strings.ReplaceAll(raw, "\n", " "))
	if v == "" || v == "-" {
		return nil
	}
	return &v
}

// parseScore reads the first number in v: "85.2%" is 85.2, "n/a" is nil.
func parseScore(v *string) *float64 {
	if v == nil || *v == "" {
		return nil
	}
	m := reScore.FindString(*v)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &f
}

func slugify(v string) string {
	return strings.Trim(reNonSlug.ReplaceAllString(strings.ToLower(v), "-"), "-")
}

func labelFromURL(url string) string {
	switch {
	case url == "":
		return "Link"
	case strings.Contains(url, "arxiv"):
		return "Paper"
	case strings.Contains(url, "github"):
		return "Code"
	case strings.Contains(url, "google.com/drive"):
		return "Assets"
	}
	return "Website"
}

func link(url string) *types.Link {
	if url == "" {
		return nil
	}
	return &types.Link{Label: labelFromURL(url), URL: url}
}

// timeScore orders "YYYY.M" times; anything else sorts as 0.
func timeScore(t string) int {
	m := reTimeDate.FindStringSubmatch(t)
	if m == nil {
		return 0
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	return y*100 + mo
}
