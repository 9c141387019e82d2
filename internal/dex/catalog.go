package dex

import "github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"

const (
	kindScore = "score"
	kindMeta  = "meta"

	meanColumn = "meanSucc"
)

// column is a benchmark column and the sheet column letter it is read from.
type column struct {
	types.DexColumn
	col string
}

// benchmark is a fixed section of the workbook. linkCells are the header
// cells whose hyperlinks point at the benchmark's paper, code or assets.
type benchmark struct {
	id, name, description string
	columns               []column
	linkCells             []string
}

func score(id, label, col string) column {
	return column{DexColumn: types.DexColumn{ID: id, Label: label, Kind: kindScore}, col: col}
}

func meta(id, label, col string) column {
	return column{DexColumn: types.DexColumn{ID: id, Label: label, Kind: kindMeta}, col: col}
}

// catalogue is the workbook layout: one block of columns per benchmark,
// each ending in Setting, Source and Proof.
var catalogue = []benchmark{
	{
		id:          "adroit",
		name:        "Adroit",
		description: "In-hand manipulation benchmarks featuring the Adroit hand and diverse object tasks.",
		columns: []column{
			score(meanColumn, "Mean Succ", "F"),
			score("pen", "Pen", "G"),
			score("door", "Door", "H"),
			score("hammer", "Hammer", "I"),
			score("relocate", "Relocate", "J"),
			meta("setting", "Setting", "K"),
			meta("source", "Source", "L"),
			meta("proof", "Proof", "M"),
		},
		linkCells: []string{"F2", "J2"},
	},
	{
		id:          "dexart",
		name:        "DexArt",
		description: "DexArt benchmarks emphasize articulated object manipulation and tool use.",
		columns: []column{
			score("laptop", "Laptop", "N"),
			score("faucet", "Faucet", "O"),
			score("toilet", "Toilet", "P"),
			score("bucket", "Bucket", "Q"),
			score(meanColumn, "Mean Succ", "R"),
			meta("setting", "Setting", "S"),
			meta("source", "Source", "T"),
			meta("proof", "Proof", "U"),
		},
		linkCells: []string{"N2", "R2"},
	},
	{
		id:          "bidexhands",
		name:        "Bi-DexHands",
		description: "Bimanual dexterous manipulation tasks from Bi-DexHands.",
		columns: []column{
			score("handover", "HandOver", "V"),
			score("doorCloseInward", "DoorCloseInward", "W"),
			score("doorCloseOutward", "DoorCloseOutward", "X"),
			score("doorOpenInward", "DoorOpenInward", "Y"),
			score("doorOpenOutward", "DoorOpenOutward", "Z"),
			score("scissors", "Scissors", "AA"),
			score("swingCup", "Swing cup", "AB"),
			score("switch", "Switch", "AC"),
			score("kettle", "Kettle", "AD"),
			// Label spelling matches what the site has always shown.
			score("liftUnderarm", "LiftUderarm", "AE"),
			score("pen", "Pen", "AF"),
			score("bottleCap", "BottleCap", "AG"),
			score("catchAbreast", "CatchAbreast", "AH"),
			score("catchOver2UnderArm", "CatchOver2UnderArm", "AI"),
			score("catchUnderarm", "CatchUnderarm", "AJ"),
			score("reOrientation", "ReOrientation", "AK"),
			score("graspAndPlace", "GraspAndPlace", "AL"),
			score("blockStack", "BlockStack", "AM"),
			score("pushBlock", "PushBlock", "AN"),
			score("twoCatchUnderarm", "TwoCatchUnderarm", "AO"),
			score(meanColumn, "Mean Succ", "AP"),
			meta("setting", "Setting", "AQ"),
			meta("source", "Source", "AR"),
			meta("proof", "Proof", "AS"),
		},
		linkCells: []string{"V2", "AH2"},
	},
}

// BenchmarkIDs lists the benchmark ids in catalogue order.
func BenchmarkIDs() []string {
	ids := make([]string, 0, len(catalogue))
	for _, b := range catalogue {
		ids = append(ids, b.id)
	}
	return ids
}

func (b benchmark) publicColumns() []types.DexColumn {
	out := make([]types.DexColumn, 0, len(b.columns))
	for _, c := range b.columns {
		out = append(out, c.DexColumn)
	}
	return out
}
