package cells

import (
	"testing"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
)

func cell(s string) sheet.Cell { return sheet.NewCell(s) }

func TestValue(t *testing.T) {
	cases := []struct {
		in   string
		want *float64
	}{
		{"98.5", ptr(98.5)},
		{" 97 ", ptr(97)},
		{"4.10", ptr(4.1)},
		{"-3.5", ptr(-3.5)},
		{".5", ptr(0.5)},
		{"1e2", ptr(100)},
		{"79(30个子任务）", ptr(79)},
		{"85.2 （reproduced)", ptr(85.2)},
		{"９５.１", ptr(95.1)},
		{"-", nil},
		{"", nil},
		{"NA", nil},
		{"(未写)", nil},
		{"未写", nil},
		{"有结果", nil},
		{"95%", nil},
		{"inf", nil},
		{"0x10", nil},
		{"n/a", nil},
	}
	for _, c := range cases {
		got := Value(cell(c.in))
		if (got == nil) != (c.want == nil) || (got != nil && *got != *c.want) {
			t.Fatalf("Value(%q) = %v, want %v", c.in, deref(got), deref(c.want))
		}
	}
	if Value(sheet.Missing) != nil {
		t.Fatalf("missing cell should be nil")
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in   string
		want *string
	}{
		{"24.10", str("2024-10")},
		{"24.3", str("2024-03")},
		{" 23.12 ", str("2023-12")},
		{"99.1", str("1999-01")},
		{"2024.10", str("2024.10")},
		{"2024-05", str("2024-05")},
		{"", nil},
	}
	for _, c := range cases {
		got := Date(cell(c.in))
		if (got == nil) != (c.want == nil) || (got != nil && *got != *c.want) {
			t.Fatalf("Date(%q) = %v, want %v", c.in, deref(got), deref(c.want))
		}
	}
}

func TestPaperURL(t *testing.T) {
	cases := []struct {
		in   string
		want *string
	}{
		{"https://arxiv.org/abs/2406.09246", str("https://arxiv.org/abs/2406.09246")},
		{" http://x.org/p （CoRL 2024）", str("http://x.org/p")},
		{"from OpenVLA-OFT", nil},
		{"From https://arxiv.org/abs/1", nil},
		{"方法来自：https://arxiv.org/abs/2 复现", str("https://arxiv.org/abs/2")},
		{"internal report", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := PaperURL(cell(c.in))
		if (got == nil) != (c.want == nil) || (got != nil && *got != *c.want) {
			t.Fatalf("PaperURL(%q) = %v, want %v", c.in, deref(got), deref(c.want))
		}
	}
}

func TestOpenSource(t *testing.T) {
	cases := []struct {
		in   string
		open bool
		url  *string
	}{
		{"https://github.com/openvla/openvla", true, str("https://github.com/openvla/openvla")},
		{"1", true, nil},
		{"0", false, nil},
		{"", false, nil},
		{"soon", false, nil},
	}
	for _, c := range cases {
		if got := IsOpenSource(cell(c.in)); got != c.open {
			t.Fatalf("IsOpenSource(%q) = %v, want %v", c.in, got, c.open)
		}
		got := OpenSourceURL(cell(c.in))
		if (got == nil) != (c.url == nil) || (got != nil && *got != *c.url) {
			t.Fatalf("OpenSourceURL(%q) = %v, want %v", c.in, deref(got), deref(c.url))
		}
	}
}

func TestIsStandardEval(t *testing.T) {
	cases := map[string]bool{
		"1":   true,
		"1.0": true,
		" 1 ": true,
		"0":   false,
		"":    false,
		"yes": false,
		"2":   false,
	}
	for in, want := range cases {
		if got := IsStandardEval(cell(in)); got != want {
			t.Fatalf("IsStandardEval(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsCitation(t *testing.T) {
	cases := map[string]bool{
		"from pi0 paper": true,
		"FROM X":         true,
		" from X":        false,
		"https://a.b":    false,
		"":               false,
	}
	for in, want := range cases {
		if got := IsCitation(cell(in)); got != want {
			t.Fatalf("IsCitation(%q) = %v, want %v", in, got, want)
		}
	}
}

func ptr(f float64) *float64 { return &f }
func str(s string) *string    { return &s }

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
