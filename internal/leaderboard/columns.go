package leaderboard

import "fmt"

// Positional columns; their header text varies between sheet revisions.
const (
	colName       = 1
	colPaper      = 2
	colDate       = 3
	colOpenSource = 4
)

// Named columns. Repeated headers are suffixed by the sheet reader, so the
// three standard/note pairs are told apart by ".1" and ".2".
const (
	colLiberoSpatial = "Libero Spatial"
	colLiberoObject  = "Libero Object"
	colLiberoGoal    = "Libero Goal"
	colLiberoLong    = "Libero Long(10)"
	colLibero90      = "Libero 90"
	colLiberoAverage = "Libero Average"

	colMWEasy     = "Easy"
	colMWMedium   = "Medium"
	colMWHard     = "Hard"
	colMWVeryHard = "Very Hard"
	colMWAverage  = "Meta-world \nAverage"

	colLiberoStandard    = "Standard \nEvaluation \nRule"
	colMetaWorldStandard = "Standard \nEvaluation \nRule.1"
	colCalvinStandard    = "Standard \nEvaluation \nRule.2"

	colLiberoNote    = "Note"
	colMetaWorldNote = "Note.1"
	colCalvinNote    = "Note.2"
)

// CalvinSetting identifies a Calvin train→test environment split.
type CalvinSetting int

const (
	CalvinABCDD CalvinSetting = iota
	CalvinABCD
	CalvinDD
)

// CalvinSettings lists the splits in sheet order.
var CalvinSettings = [...]CalvinSetting{CalvinABCDD, CalvinABCD, CalvinDD}

// Prefix is the setting's name in the sheet headers.
func (s CalvinSetting) Prefix() string {
	switch s {
	case CalvinABCDD:
		return "ABCD-D"
	case CalvinABCD:
		return "ABC-D"
	case CalvinDD:
		return "D-D"
	}
	return ""
}

// Key is the setting's JSON key in calvin.json.
func (s CalvinSetting) Key() string {
	switch s {
	case CalvinABCDD:
		return "abcd_d"
	case CalvinABCD:
		return "abc_d"
	case CalvinDD:
		return "d_d"
	}
	return ""
}

func (s CalvinSetting) String() string { return s.Prefix() }

// ParseCalvinSetting accepts either the JSON key or the sheet prefix.
func ParseCalvinSetting(v string) (CalvinSetting, bool) {
	for _, s := range CalvinSettings {
		if v == s.Key() || v == s.Prefix() {
			return s, true
		}
	}
	return 0, false
}

func calvinInstColumn(s CalvinSetting, n int) string {
	return fmt.Sprintf("Calvin %s:\nLH-MTLC Inst%d", s.Prefix(), n)
}

func calvinAvgLenColumn(s CalvinSetting) string {
	return fmt.Sprintf("Calvin %s:\nLH-MTLC Avg. Len.", s.Prefix())
}
