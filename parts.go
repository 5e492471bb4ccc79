package figure

import "strings"

// Part is a body-part tag that can be highlighted.
type Part uint8

// Highlightable body parts.
const (
	PartLArm Part = iota
	PartRArm
	PartLLeg
	PartRLeg
	PartBack
	PartNeck

	numParts
)

var partNames = [...]string{
	PartLArm: "lArm",
	PartRArm: "rArm",
	PartLLeg: "lLeg",
	PartRLeg: "rLeg",
	PartBack: "back",
	PartNeck: "neck",
}

// String returns the tag used for p in authored data.
func (p Part) String() string {
	if int(p) < len(partNames) {
		return partNames[p]
	}
	return "unknown"
}

// ParsePart returns the Part named by tag.
func ParsePart(tag string) (Part, bool) {
	for i, name := range partNames {
		if name == tag {
			return Part(i), true
		}
	}
	return 0, false
}

// Parts is a highlight set: the body parts rendered in the accent color.
// The zero value is the empty set.
type Parts uint8

// PartsOf builds a set from the given parts.
func PartsOf(parts ...Part) Parts {
	var s Parts
	for _, p := range parts {
		s = s.With(p)
	}
	return s
}

// Has reports whether p is in the set.
func (s Parts) Has(p Part) bool {
	return p < numParts && s&(1<<p) != 0
}

// With returns the set with p added.
func (s Parts) With(p Part) Parts {
	if p >= numParts {
		return s
	}
	return s | 1<<p
}

// Empty reports whether no part is highlighted.
func (s Parts) Empty() bool {
	return s == 0
}

// Slice lists the parts in declaration order.
func (s Parts) Slice() []Part {
	var out []Part
	for p := Part(0); p < numParts; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// String returns the set as comma-separated tags, e.g. "lLeg,back".
func (s Parts) String() string {
	parts := s.Slice()
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = p.String()
	}
	return strings.Join(tags, ",")
}

// ParseParts parses a comma-separated list of tags. Unknown tags are ignored.
func ParseParts(list string) Parts {
	var s Parts
	for _, tag := range strings.Split(list, ",") {
		if p, ok := ParsePart(strings.TrimSpace(tag)); ok {
			s = s.With(p)
		}
	}
	return s
}
