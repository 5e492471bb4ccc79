package figure

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/figure/drawing"
)

// Colors of the figure and its scene.
var (
	BodyTop      = gg.Hex("#6d9fdc")
	BodyBottom   = gg.Hex("#3d6cab")
	AccentTop    = gg.Hex("#f59a5b")
	AccentBottom = gg.Hex("#d9622b")
	JointColor   = gg.Hex("#2c568d")
	AccentJoint  = gg.Hex("#b94e1d")
	HairColor    = gg.Hex("#3a2c25")
	GlowColor    = gg.Hex("#e6f0fb")
	ShadowColor  = gg.RGBA2(0.1, 0.15, 0.25, 0.16)
	MatColor     = gg.Hex("#a9d3bf")
	SurfaceTint  = gg.Hex("#9aa5b1")
	WallColor    = gg.Hex("#c7ccd4")
	ChairColor   = gg.Hex("#8b6b4a")
	ArrowColor   = gg.Hex("#e0533a")
)

// palette holds the brushes of one figure. Gradient ids are derived from the
// figure's id prefix so several figures can share one document.
type palette struct {
	body        drawing.Brush
	accent      drawing.Brush
	joint       drawing.Brush
	accentJoint drawing.Brush
	hair        drawing.Brush
	glow        drawing.Brush
	shadow      drawing.Brush
	prefix      string
}

func newPalette(prefix string) palette {
	return palette{
		body: drawing.NewLinearGradientBrush(prefix+"-body", 0, 0, 0, WorkspaceHeight).
			AddColorStop(0, BodyTop).
			AddColorStop(1, BodyBottom),
		accent: drawing.NewLinearGradientBrush(prefix+"-accent", 0, 0, 0, WorkspaceHeight).
			AddColorStop(0, AccentTop).
			AddColorStop(1, AccentBottom),
		joint:       drawing.NewSolidBrush(JointColor),
		accentJoint: drawing.NewSolidBrush(AccentJoint),
		hair:        drawing.NewSolidBrush(HairColor),
		glow: drawing.NewRadialGradientBrush(prefix+"-glow", WorkspaceWidth/2, WorkspaceHeight/2, WorkspaceHeight/2).
			AddColorStop(0, GlowColor).
			AddColorStop(1, gg.RGBA2(GlowColor.R, GlowColor.G, GlowColor.B, 0)),
		shadow: drawing.NewSolidBrush(ShadowColor),
		prefix: prefix,
	}
}

// fill returns the limb brush for a part, accented when highlighted.
func (p palette) fill(hl Parts, part Part) drawing.Brush {
	if hl.Has(part) {
		return p.accent
	}
	return p.body
}

// jointFill returns the joint brush for a part.
func (p palette) jointFill(hl Parts, part Part) drawing.Brush {
	if hl.Has(part) {
		return p.accentJoint
	}
	return p.joint
}

func (p palette) arrowMarker() *drawing.Marker {
	return &drawing.Marker{ID: p.prefix + "-arrow", Length: 5, Width: 4}
}
