package figure

import "strings"

// Gender selects which row of the proportion table is used when composing
// a figure.
type Gender uint8

// Gender variants. The zero value is Neutral.
const (
	Neutral Gender = iota
	Male
	Female
)

// String returns the lower-case name of the variant.
func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "neutral"
	}
}

// ParseGender maps a caller-supplied hint to a variant.
// Unrecognised hints fall back to Neutral.
func ParseGender(hint string) Gender {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "m", "male", "man", "masculine":
		return Male
	case "f", "female", "woman", "feminine":
		return Female
	default:
		return Neutral
	}
}

// Proportions holds the per-variant body constants, in workspace units.
// Limb widths are half-widths measured from the bone line to the outline.
type Proportions struct {
	HeadRadius    float64
	JointRadius   float64
	HandRadius    float64
	NeckWidth     float64
	ShoulderWidth float64 // half the shoulder breadth
	HipWidth      float64 // half the hip breadth
	UpperArm      [2]float64
	Forearm       [2]float64
	Thigh         [2]float64
	Calf          [2]float64
	FootLength    float64
}

var proportionTable = map[Gender]Proportions{
	Neutral: {
		HeadRadius:    7.5,
		JointRadius:   2.2,
		HandRadius:    2.1,
		NeckWidth:     2.4,
		ShoulderWidth: 8.6,
		HipWidth:      6.8,
		UpperArm:      [2]float64{3.0, 2.4},
		Forearm:       [2]float64{2.3, 1.7},
		Thigh:         [2]float64{4.2, 3.1},
		Calf:          [2]float64{3.0, 2.0},
		FootLength:    6.0,
	},
	Male: {
		HeadRadius:    7.8,
		JointRadius:   2.4,
		HandRadius:    2.3,
		NeckWidth:     2.9,
		ShoulderWidth: 10.2,
		HipWidth:      6.6,
		UpperArm:      [2]float64{3.5, 2.8},
		Forearm:       [2]float64{2.7, 2.0},
		Thigh:         [2]float64{4.5, 3.3},
		Calf:          [2]float64{3.3, 2.2},
		FootLength:    6.6,
	},
	Female: {
		HeadRadius:    7.1,
		JointRadius:   2.0,
		HandRadius:    1.9,
		NeckWidth:     2.1,
		ShoulderWidth: 7.8,
		HipWidth:      8.0,
		UpperArm:      [2]float64{2.7, 2.1},
		Forearm:       [2]float64{2.0, 1.5},
		Thigh:         [2]float64{4.6, 3.0},
		Calf:          [2]float64{3.0, 1.8},
		FootLength:    5.6,
	},
}

// ProportionsFor returns the proportion row for g. Unknown variants use the
// Neutral row.
func ProportionsFor(g Gender) Proportions {
	if p, ok := proportionTable[g]; ok {
		return p
	}
	return proportionTable[Neutral]
}
