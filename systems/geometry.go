package systems

import (
	"image/color"
	"math"

	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/shared/radialmath"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Vertices per donut segment: two triangles.
	donutChordSize = 6
	// DrawTriangles takes uint16 indices.
	maxMeshVertices  = math.MaxUint16 + 1
	equilateralAngle = radialmath.TwoPi / 3
)

var root3 = math.Sqrt(3)

// GenerateCircleVertices builds a filled circle as a triangle fan around the
// origin, one triangle per segment.
func GenerateCircleVertices(radius float64, clr color.Color) []ebiten.Vertex {
	segments := min(radialmath.OptimalVertexCount(radius), maxMeshVertices/3)
	step := radialmath.TwoPi / float64(segments)
	vertices := make([]ebiten.Vertex, 0, segments*3)
	prevX, prevY := radialmath.CirclePoint(radius, 0)
	// Loop on segment count rather than angle so rounding never drops or adds
	// a segment.
	for i := 1; i <= segments; i++ {
		nextX, nextY := radialmath.CirclePoint(radius, step*float64(i))
		vertices = append(vertices,
			vertex(prevX, prevY, clr),
			vertex(nextX, nextY, clr),
			vertex(0, 0, clr),
		)
		prevX, prevY = nextX, nextY
	}
	return vertices
}

// GenerateDonutVertices builds a ring from innerRadius to innerRadius+thickness
// as one quad per segment. The segment count follows the outer radius.
func GenerateDonutVertices(innerRadius, thickness float64, clr color.Color) []ebiten.Vertex {
	outerRadius := innerRadius + thickness
	segments := min(radialmath.OptimalVertexCount(outerRadius), maxMeshVertices/donutChordSize)
	step := radialmath.TwoPi / float64(segments)
	vertices := make([]ebiten.Vertex, 0, segments*donutChordSize)
	prevInX, prevInY := radialmath.CirclePoint(innerRadius, 0)
	prevOutX, prevOutY := radialmath.CirclePoint(outerRadius, 0)
	for i := 1; i <= segments; i++ {
		t := step * float64(i)
		nextInX, nextInY := radialmath.CirclePoint(innerRadius, t)
		nextOutX, nextOutY := radialmath.CirclePoint(outerRadius, t)
		vertices = append(vertices,
			vertex(prevOutX, prevOutY, clr),
			vertex(nextOutX, nextOutY, clr),
			vertex(nextInX, nextInY, clr),
			vertex(nextInX, nextInY, clr),
			vertex(prevInX, prevInY, clr),
			vertex(prevOutX, prevOutY, clr),
		)
		prevInX, prevInY = nextInX, nextInY
		prevOutX, prevOutY = nextOutX, nextOutY
	}
	return vertices
}

// GenerateCursorVertices builds the equilateral cursor triangle pointing
// outward at angle. Its center sits size/2 inside tipRadius.
func GenerateCursorVertices(tipRadius, angle, size float64, clr color.Color) []ebiten.Vertex {
	cx, cy := radialmath.CirclePoint(tipRadius-size/2, angle)
	r := size / root3
	vertices := make([]ebiten.Vertex, 0, 3)
	for i := 0; i < 3; i++ {
		px, py := radialmath.CirclePoint(r, angle+equilateralAngle*float64(i))
		vertices = append(vertices, vertex(cx+px, cy+py, clr))
	}
	return vertices
}

// SequentialIndices returns 0..n-1, which is what DrawTriangles needs for
// meshes already laid out as a triangle list.
func SequentialIndices(n int) []uint16 {
	indices := make([]uint16, n)
	for i := range indices {
		indices[i] = uint16(i)
	}
	return indices
}

// EnsureGeometry builds the ring meshes, or rebuilds them when the styles
// changed since the last build. Returns whether anything was rebuilt.
func EnsureGeometry(g *components.GeometryData, styles cfg.Styles) bool {
	if g.Built && g.Styles == styles {
		return false
	}
	g.Inner = GenerateCircleVertices(styles.InnerRadius, styles.InnerBackgroundColor)
	g.Outer = GenerateDonutVertices(
		styles.InnerRadius+styles.GapWidth,
		styles.OuterRadius,
		styles.OuterBackgroundColor,
	)
	g.InnerIndices = SequentialIndices(len(g.Inner))
	g.OuterIndices = SequentialIndices(len(g.Outer))
	g.Styles = styles
	g.Built = true
	g.HighlightValid = false
	return true
}

// UpdateHighlight recolors the outer ring for the selected item. It only
// touches vertex colors, and only when the item count, selection or blend
// differ from the last call. Returns whether the colors were rewritten.
func UpdateHighlight(g *components.GeometryData, itemCount, selectedIndex int, blend float32) bool {
	key := components.HighlightKey{ItemCount: itemCount, SelectedIndex: selectedIndex, Blend: blend}
	if g.HighlightValid && g.Highlight == key {
		return false
	}
	g.Highlight = key
	g.HighlightValid = true

	base := g.Styles.OuterBackgroundColor
	segments := len(g.Outer) / donutChordSize
	if selectedIndex < 0 || itemCount <= 0 {
		for i := range g.Outer {
			setVertexColor(&g.Outer[i], base)
		}
		return true
	}

	highlight := lerpColor(base, g.Styles.HighlightColor, blend)
	for i := 0; i < segments; i++ {
		var clr color.Color = base
		if IsSegmentHighlighted(i, segments, itemCount, selectedIndex) {
			clr = highlight
		}
		for j := 0; j < donutChordSize; j++ {
			setVertexColor(&g.Outer[i*donutChordSize+j], clr)
		}
	}
	return true
}

// IsSegmentHighlighted reports whether ring segment i falls inside the arc
// centered on the selected item. The arc may wrap past the last segment.
func IsSegmentHighlighted(i, segmentCount, itemCount, selectedIndex int) bool {
	if segmentCount <= 0 || itemCount <= 0 || selectedIndex < 0 {
		return false
	}
	segs := float64(segmentCount)
	sliceSize := segs / float64(itemCount)
	relative := float64(selectedIndex) / float64(itemCount)
	end := math.Mod(relative*segs+sliceSize/2, segs)
	start := math.Mod(end-sliceSize+segs, segs)
	fi := float64(i)
	if start < end {
		return fi >= start && fi < end
	}
	return fi >= start || fi < end
}

// HighlightedSegments lists the highlighted segment indices in ring order.
func HighlightedSegments(segmentCount, itemCount, selectedIndex int) []int {
	var out []int
	for i := 0; i < segmentCount; i++ {
		if IsSegmentHighlighted(i, segmentCount, itemCount, selectedIndex) {
			out = append(out, i)
		}
	}
	return out
}

// TranslateVertices copies src into dst offset by (dx, dy), reusing dst's
// backing array when it is large enough.
func TranslateVertices(dst, src []ebiten.Vertex, dx, dy float32) []ebiten.Vertex {
	dst = append(dst[:0], src...)
	for i := range dst {
		dst[i].DstX += dx
		dst[i].DstY += dy
	}
	return dst
}

func vertex(x, y float64, clr color.Color) ebiten.Vertex {
	v := ebiten.Vertex{
		DstX: float32(x),
		DstY: float32(y),
		SrcX: 1,
		SrcY: 1,
	}
	setVertexColor(&v, clr)
	return v
}

func setVertexColor(v *ebiten.Vertex, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	v.ColorR = float32(c.R) / 0xff
	v.ColorG = float32(c.G) / 0xff
	v.ColorB = float32(c.B) / 0xff
	v.ColorA = float32(c.A) / 0xff
}

func lerpColor(from, to color.Color, t float32) color.Color {
	a := color.NRGBAModel.Convert(from).(color.NRGBA)
	b := color.NRGBAModel.Convert(to).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(radialmath.Lerp(float64(x), float64(y), float64(t))))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
