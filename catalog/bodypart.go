package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BodyPart is the category an exercise is grouped under.
type BodyPart string

// The fixed set of categories, in display order.
const (
	Knee      BodyPart = "knee"
	Shoulder  BodyPart = "shoulder"
	Back      BodyPart = "back"
	Neck      BodyPart = "neck"
	Ankle     BodyPart = "ankle"
	Hip       BodyPart = "hip"
	WristHand BodyPart = "wrist_hand"
	Elbow     BodyPart = "elbow"
)

var categories = [...]BodyPart{Knee, Shoulder, Back, Neck, Ankle, Hip, WristHand, Elbow}

// Categories returns the body-part categories in display order.
func Categories() []BodyPart {
	out := make([]BodyPart, len(categories))
	copy(out, categories[:])
	return out
}

// Label returns the display label of b, e.g. "Wrist/Hand".
func (b BodyPart) Label() string {
	// A Caser keeps state and is not safe for concurrent use.
	title := cases.Title(language.English)
	return title.String(strings.ReplaceAll(string(b), "_", "/"))
}

// Valid reports whether b is one of the fixed categories.
func (b BodyPart) Valid() bool {
	for _, c := range categories {
		if c == b {
			return true
		}
	}
	return false
}

// ParseBodyPart accepts a category id or its display label, ignoring case.
func ParseBodyPart(s string) (BodyPart, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("/", "_", " ", "_", "-", "_").Replace(s)
	bp := BodyPart(s)
	return bp, bp.Valid()
}
