package systems

import (
	"math"
	"testing"

	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/shared/radialmath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightedSegmentsWrapAroundTop(t *testing.T) {
	// 4 items on 24 segments: item 0 is centered on segment 0, so its slice
	// straddles the 23 -> 0 seam.
	assert.Equal(t, []int{0, 1, 2, 21, 22, 23}, HighlightedSegments(24, 4, 0))
}

func TestHighlightedSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		items    int
		selected int
		want     []int
	}{
		{"second item", 24, 4, 1, []int{3, 4, 5, 6, 7, 8}},
		{"last item", 24, 4, 3, []int{15, 16, 17, 18, 19, 20}},
		{"single item covers ring", 6, 1, 0, []int{0, 1, 2, 3, 4, 5}},
		{"no selection", 24, 4, -1, nil},
		{"no items", 24, 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightedSegments(tt.segments, tt.items, tt.selected))
		})
	}
}

func TestHighlightSliceSizeIsConstant(t *testing.T) {
	for selected := 0; selected < 8; selected++ {
		assert.Len(t, HighlightedSegments(48, 8, selected), 6, "selected %d", selected)
	}
}

func TestGenerateCircleVertices(t *testing.T) {
	const radius = 300.0
	vertices := GenerateCircleVertices(radius, cfg.White)
	require.Len(t, vertices, radialmath.OptimalVertexCount(radius)*3)

	for i := 0; i < len(vertices); i += 3 {
		assert.InDelta(t, radius, math.Hypot(float64(vertices[i].DstX), float64(vertices[i].DstY)), 0.01)
		assert.Zero(t, vertices[i+2].DstX)
		assert.Zero(t, vertices[i+2].DstY)
	}
	// The fan closes on the starting point, straight up.
	last := vertices[len(vertices)-2]
	assert.InDelta(t, 0, last.DstX, 0.01)
	assert.InDelta(t, -radius, last.DstY, 0.01)
}

func TestGenerateDonutVerticesUsesOuterRadius(t *testing.T) {
	vertices := GenerateDonutVertices(100, 50, cfg.White)
	require.Len(t, vertices, radialmath.OptimalVertexCount(150)*6)

	for _, v := range vertices {
		r := math.Hypot(float64(v.DstX), float64(v.DstY))
		assert.True(t, math.Abs(r-100) < 0.01 || math.Abs(r-150) < 0.01, "radius %f", r)
	}
}

func TestGenerateCursorVerticesIsEquilateral(t *testing.T) {
	const size = 32.0
	vertices := GenerateCursorVertices(296, math.Pi/2, size, cfg.White)
	require.Len(t, vertices, 3)

	for i := range vertices {
		a, b := vertices[i], vertices[(i+1)%3]
		side := math.Hypot(float64(a.DstX-b.DstX), float64(a.DstY-b.DstY))
		assert.InDelta(t, size, side, 0.01)
	}
	// Pointing right: the tip has the largest x and sits on the x axis.
	assert.InDelta(t, 0, vertices[0].DstY, 0.01)
	assert.Greater(t, vertices[0].DstX, vertices[1].DstX)
	assert.Greater(t, vertices[0].DstX, vertices[2].DstX)
}

func TestEnsureGeometryRebuildsOnlyOnStyleChange(t *testing.T) {
	g := &components.GeometryData{}
	styles := cfg.DefaultStyles()

	require.True(t, EnsureGeometry(g, styles))
	assert.Len(t, g.InnerIndices, len(g.Inner))
	assert.Len(t, g.OuterIndices, len(g.Outer))
	inner := g.Inner

	assert.False(t, EnsureGeometry(g, styles))
	assert.Same(t, &inner[0], &g.Inner[0])

	styles.InnerRadius = 200
	assert.True(t, EnsureGeometry(g, styles))
	assert.Len(t, g.Inner, radialmath.OptimalVertexCount(200)*3)
	assert.False(t, g.HighlightValid)
}

func TestUpdateHighlightRecolorsOnly(t *testing.T) {
	g := &components.GeometryData{}
	styles := cfg.DefaultStyles()
	EnsureGeometry(g, styles)
	positions := make([][2]float32, len(g.Outer))
	for i, v := range g.Outer {
		positions[i] = [2]float32{v.DstX, v.DstY}
	}

	require.True(t, UpdateHighlight(g, 4, 0, 1))
	for i, v := range g.Outer {
		assert.Equal(t, positions[i], [2]float32{v.DstX, v.DstY})
	}

	segments := len(g.Outer) / 6
	highlighted := map[int]bool{}
	for _, i := range HighlightedSegments(segments, 4, 0) {
		highlighted[i] = true
	}
	require.NotEmpty(t, highlighted)
	hc := styles.HighlightColor
	bc := styles.OuterBackgroundColor
	for i := 0; i < segments; i++ {
		v := g.Outer[i*6]
		if highlighted[i] {
			assert.InDelta(t, float32(hc.R)/0xff, v.ColorR, 1e-6)
			assert.InDelta(t, float32(hc.B)/0xff, v.ColorB, 1e-6)
		} else {
			assert.InDelta(t, float32(bc.R)/0xff, v.ColorR, 1e-6)
			assert.InDelta(t, float32(bc.B)/0xff, v.ColorB, 1e-6)
		}
	}
}

func TestUpdateHighlightCacheKey(t *testing.T) {
	g := &components.GeometryData{}
	EnsureGeometry(g, cfg.DefaultStyles())

	assert.True(t, UpdateHighlight(g, 8, 2, 1))
	assert.False(t, UpdateHighlight(g, 8, 2, 1))
	assert.True(t, UpdateHighlight(g, 8, 2, 0.5))
	assert.True(t, UpdateHighlight(g, 8, 3, 0.5))
	assert.True(t, UpdateHighlight(g, 12, 3, 0.5))
}

func TestUpdateHighlightZeroBlendShowsBase(t *testing.T) {
	g := &components.GeometryData{}
	styles := cfg.DefaultStyles()
	EnsureGeometry(g, styles)

	UpdateHighlight(g, 4, 0, 0)
	bc := styles.OuterBackgroundColor
	for _, v := range g.Outer {
		assert.InDelta(t, float32(bc.G)/0xff, v.ColorG, 1e-6)
	}
}

func TestTranslateVerticesReusesBuffer(t *testing.T) {
	src := []ebiten.Vertex{{DstX: 1, DstY: 2}, {DstX: -3, DstY: 4}}
	dst := make([]ebiten.Vertex, 0, 8)

	out := TranslateVertices(dst, src, 10, 20)
	require.Len(t, out, 2)
	assert.Equal(t, float32(11), out[0].DstX)
	assert.Equal(t, float32(24), out[1].DstY)
	assert.Equal(t, float32(1), src[0].DstX)
	assert.Same(t, &dst[:1][0], &out[0])
}
