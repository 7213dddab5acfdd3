package systems

import (
	"image"
	"image/color"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/automoto/radialmenu/assets"
	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/fonts"
	"github.com/automoto/radialmenu/menu"
	"github.com/automoto/radialmenu/observability"
	"github.com/automoto/radialmenu/shared/radialmath"
	"github.com/automoto/radialmenu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

const (
	menuSpriteMaxWidthRatio = 0.8
	selectionIconGap        = 24
	descriptionGap          = 16
	qualityMarkerRadius     = 6
)

var (
	drawOp          = &ebiten.DrawImageOptions{}
	drawTrianglesOp = &ebiten.DrawTrianglesOptions{AntiAlias: true}
	cursorIndices   = []uint16{0, 1, 2}
	radialPlayers   = donburi.NewQuery(filter.Contains(tags.RadialPlayer))
)

// maxMissingIconWarnings bounds the set of items already warned about; it is
// cleared when full, so churned plugin items cannot grow it forever.
const maxMissingIconWarnings = 256

var missingIcons = newIconWarnings(maxMissingIconWarnings)

// iconWarnings remembers which items were logged for a missing icon.
type iconWarnings struct {
	limit  int
	warned map[menu.Item]struct{}
}

func newIconWarnings(limit int) *iconWarnings {
	return &iconWarnings{limit: limit, warned: make(map[menu.Item]struct{})}
}

// first reports whether item has not been warned about yet and records it.
// Items whose dynamic type is not comparable cannot be tracked and are never
// reported.
func (w *iconWarnings) first(item menu.Item) bool {
	if item == nil || !reflect.TypeOf(item).Comparable() {
		return false
	}
	if _, ok := w.warned[item]; ok {
		return false
	}
	if len(w.warned) >= w.limit {
		clear(w.warned)
	}
	w.warned[item] = struct{}{}
	return true
}

// DrawRadialMenu renders every player's open menu, each centered in its own
// column of the screen.
func DrawRadialMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	styles := settings.Config.Styles

	players := radialPlayers.Count(ecs.World)
	if players == 0 {
		return
	}
	bounds := screen.Bounds()
	column := float64(bounds.Dx()) / float64(players)

	i := 0
	radialPlayers.Each(ecs.World, func(entry *donburi.Entry) {
		cx := float64(bounds.Min.X) + column*(float64(i)+0.5)
		cy := float64(bounds.Min.Y) + float64(bounds.Dy())/2
		i++
		drawPlayerMenu(entry, screen, &styles, cx, cy)
	})
}

func drawPlayerMenu(entry *donburi.Entry, screen *ebiten.Image, styles *cfg.Styles, cx, cy float64) {
	cursor := components.Cursor.Get(entry)
	if cursor.ActiveMenu == components.MenuNone {
		return
	}
	g := components.Geometry.Get(entry)
	items := components.RadialMenu.Get(entry).ActiveItems
	activation := components.Activation.Get(entry)

	selected := -1
	if cursor.Target != nil {
		selected = cursor.Target.SelectedIndex
	}
	EnsureGeometry(g, *styles)
	UpdateHighlight(g, len(items), selected, SelectionBlend(activation))

	drawBackgrounds(screen, g, cursor.Target, styles, cx, cy)
	drawItems(screen, items, styles, cx, cy)
	if selected >= 0 && selected < len(items) {
		drawSelectionDetails(screen, items[selected], styles, cx, cy)
	}
}

func drawBackgrounds(screen *ebiten.Image, g *components.GeometryData, target *components.CursorTarget, styles *cfg.Styles, cx, cy float64) {
	white := assets.WhitePixel()
	dx, dy := float32(cx), float32(cy)

	g.Scratch = TranslateVertices(g.Scratch, g.Inner, dx, dy)
	screen.DrawTriangles(g.Scratch, g.InnerIndices, white, drawTrianglesOp)
	g.Scratch = TranslateVertices(g.Scratch, g.Outer, dx, dy)
	screen.DrawTriangles(g.Scratch, g.OuterIndices, white, drawTrianglesOp)

	if target == nil {
		return
	}
	// Three vertices; rebuilt every frame.
	cursorVertices := GenerateCursorVertices(
		styles.InnerRadius-styles.CursorDistance,
		target.Angle,
		styles.CursorSize,
		styles.CursorColor,
	)
	g.Scratch = TranslateVertices(g.Scratch, cursorVertices, dx, dy)
	screen.DrawTriangles(g.Scratch, cursorIndices, white, drawTrianglesOp)
}

func drawItems(screen *ebiten.Image, items []menu.Item, styles *cfg.Styles, cx, cy float64) {
	itemRadius := styles.InnerRadius + styles.GapWidth + styles.OuterRadius/2
	maxWidth := styles.OuterRadius * menuSpriteMaxWidthRatio
	for i, item := range items {
		x, y := radialmath.CirclePoint(itemRadius, radialmath.ItemAngle(i, len(items)))
		icon := iconFor(item)
		w, h := FitIconSize(icon.SourceSize(), float64(styles.MenuSpriteHeight), maxWidth)
		rect := image.Rect(
			int(math.Round(cx+x-w/2)),
			int(math.Round(cy+y-h/2)),
			int(math.Round(cx+x+w/2)),
			int(math.Round(cy+y+h/2)),
		)
		drawIcon(screen, icon, rect)

		if quality, ok := item.Quality(); ok && quality > 0 {
			vector.DrawFilledCircle(screen,
				float32(rect.Min.X+qualityMarkerRadius), float32(rect.Max.Y-qualityMarkerRadius),
				qualityMarkerRadius, QualityColor(quality), true)
		}
		if stack, ok := item.StackSize(); ok {
			label := strconv.Itoa(stack)
			face := fonts.Digits.Face()
			lw, lh := text.Measure(label, face, 0)
			drawText(screen, label, face, float64(rect.Max.X)-lw, float64(rect.Max.Y)-lh, styles.StackSizeColor)
		}
	}
}

func drawSelectionDetails(screen *ebiten.Image, item menu.Item, styles *cfg.Styles, cx, cy float64) {
	icon := iconFor(item)
	height := float64(styles.SelectionSpriteHeight)
	w, h := FitIconSize(icon.SourceSize(), height, math.Inf(1))
	top := cy - h - selectionIconGap
	drawIcon(screen, icon, image.Rect(
		int(math.Round(cx-w/2)), int(math.Round(top)),
		int(math.Round(cx+w/2)), int(math.Round(top+h)),
	))

	titleFace := fonts.Title.Face()
	tw, _ := text.Measure(item.Title(), titleFace, 0)
	drawText(screen, item.Title(), titleFace, cx-tw/2, cy, styles.SelectionTitleColor)

	descFace := fonts.Description.Face()
	y := cy + lineHeight(titleFace) + descriptionGap
	measure := func(s string) float64 {
		w, _ := text.Measure(s, descFace, 0)
		return w
	}
	for _, line := range WrapText(item.Description(), styles.DescriptionWidth, measure) {
		drawText(screen, line, descFace, cx-measure(line)/2, y, styles.SelectionDescriptionColor)
		y += lineHeight(descFace)
	}
}

// iconFor returns the item's icon, substituting the placeholder when the
// texture is missing.
func iconFor(item menu.Item) menu.Icon {
	icon := item.Icon()
	if icon.Texture != nil {
		return icon
	}
	if missingIcons.first(item) {
		observability.L().Warn("menu item has no icon; drawing placeholder", zap.String("item", item.Title()))
	}
	return menu.Icon{Texture: assets.PlaceholderIcon()}
}

func drawIcon(screen *ebiten.Image, icon menu.Icon, dst image.Rectangle) {
	drawRegion(screen, icon.Texture, icon.Source, dst, nil)
	if !icon.TintSource.Empty() && icon.Tint != nil {
		drawRegion(screen, icon.Texture, icon.TintSource, dst, icon.Tint)
	}
}

func drawRegion(screen, texture *ebiten.Image, src, dst image.Rectangle, tint color.Color) {
	img := texture
	if !src.Empty() {
		img = texture.SubImage(src).(*ebiten.Image)
	}
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 || dst.Empty() {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(float64(dst.Dx())/float64(size.X), float64(dst.Dy())/float64(size.Y))
	drawOp.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	if tint != nil {
		drawOp.ColorScale.ScaleWithColor(tint)
	}
	drawOp.Filter = ebiten.FilterNearest
	screen.DrawImage(img, drawOp)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// FitIconSize scales a source size to height, keeping its aspect ratio, then
// shrinks it to maxWidth if it is too wide.
func FitIconSize(source image.Point, height, maxWidth float64) (w, h float64) {
	if source.X <= 0 || source.Y <= 0 {
		return height, height
	}
	w, h = math.Round(height*float64(source.X)/float64(source.Y)), height
	if w > maxWidth {
		scale := maxWidth / w
		w, h = math.Round(w*scale), math.Round(h*scale)
	}
	return w, h
}

// WrapText breaks s into lines no wider than maxWidth at spaces. A single
// word wider than maxWidth gets a line of its own.
func WrapText(s string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() == 0 {
			line.WriteString(word)
			continue
		}
		candidate := line.String() + " " + word
		if measure(candidate) <= maxWidth {
			line.Reset()
			line.WriteString(candidate)
			continue
		}
		lines = append(lines, line.String())
		line.Reset()
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// QualityColor is the marker color for an item quality tier.
func QualityColor(quality int) color.Color {
	switch {
	case quality >= 3:
		return cfg.Iridium
	case quality == 2:
		return cfg.Gold
	}
	return cfg.Silver
}
