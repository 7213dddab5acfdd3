// Package demo supplies sample content for the demo host: an inventory, a few
// shortcuts and a plugin page.
package demo

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/automoto/radialmenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const iconSize = 32

// IconShape selects the procedural icon drawn for an item.
type IconShape int

const (
	ShapeCircle IconShape = iota
	ShapeDiamond
	ShapeBar
)

// Item is a sample inventory item.
type Item struct {
	Name     string
	Desc     string
	Count    int
	Max      int
	Grade    int
	Edible   bool
	Color    color.RGBA
	Shape    IconShape
	iconOnce sync.Once
	icon     *ebiten.Image
}

func (i *Item) DisplayName() string { return i.Name }
func (i *Item) Description() string { return i.Desc }
func (i *Item) Stack() int          { return i.Count }
func (i *Item) MaxStack() int       { return i.Max }
func (i *Item) Quality() int        { return i.Grade }

// Icon builds the texture on first use, once a graphics context exists.
func (i *Item) Icon() menu.Icon {
	i.iconOnce.Do(func() {
		i.icon = ebiten.NewImageFromImage(IconPattern(i.Shape, i.Color, iconSize))
	})
	return menu.Icon{Texture: i.icon}
}

// Inventory is a fixed-size slot inventory. Empty slots are nil.
type Inventory struct {
	slots   []menu.GameItem
	current int
	log     *zap.Logger
}

// NewInventory creates an inventory with size slots, filled in order from
// items. A nil entry leaves its slot empty.
func NewInventory(size int, log *zap.Logger, items ...*Item) *Inventory {
	if log == nil {
		log = zap.NewNop()
	}
	inv := &Inventory{slots: make([]menu.GameItem, size), current: -1, log: log.Named("inventory")}
	for slot, item := range items {
		if slot >= size {
			break
		}
		if item != nil {
			inv.slots[slot] = item
		}
	}
	return inv
}

func (inv *Inventory) Slots() []menu.GameItem { return inv.slots }

func (inv *Inventory) CurrentSlot() int { return inv.current }

func (inv *Inventory) SelectSlot(slot int) {
	if slot < 0 || slot >= len(inv.slots) {
		return
	}
	inv.current = slot
	if item := inv.slots[slot]; item != nil {
		inv.log.Info("equipped", zap.Int("slot", slot), zap.String("item", item.DisplayName()))
	}
}

// TryConsume eats one of an edible item. The slot empties with the last one.
func (inv *Inventory) TryConsume(slot int) bool {
	if slot < 0 || slot >= len(inv.slots) {
		return false
	}
	item, ok := inv.slots[slot].(*Item)
	if !ok || !item.Edible || item.Count <= 0 {
		return false
	}
	item.Count--
	inv.log.Info("consumed", zap.Int("slot", slot), zap.String("item", item.Name), zap.Int("left", item.Count))
	if item.Count == 0 {
		inv.slots[slot] = nil
		if inv.current == slot {
			inv.current = -1
		}
	}
	return true
}

// SampleInventory is a 36-slot inventory spread over three pages, with a few
// gaps.
func SampleInventory(log *zap.Logger) *Inventory {
	tool := func(name string, c color.RGBA) *Item {
		return &Item{Name: name, Desc: "A trusty " + name + ".", Count: 1, Max: 1, Color: c, Shape: ShapeBar}
	}
	food := func(name string, count, grade int, c color.RGBA) *Item {
		return &Item{
			Name:   name,
			Desc:   "Restores a little energy.\nBest eaten\nfresh.\n\nSells well at the market.",
			Count:  count,
			Max:    99,
			Grade:  grade,
			Edible: true,
			Color:  c,
			Shape:  ShapeCircle,
		}
	}
	gem := func(name string, c color.RGBA) *Item {
		return &Item{Name: name, Desc: "Shiny and valuable.", Count: 1, Max: 1, Color: c, Shape: ShapeDiamond}
	}

	return NewInventory(36, log,
		tool("Axe", color.RGBA{R: 150, G: 110, B: 70, A: 255}),
		tool("Pickaxe", color.RGBA{R: 120, G: 120, B: 140, A: 255}),
		tool("Hoe", color.RGBA{R: 110, G: 90, B: 60, A: 255}),
		tool("Watering Can", color.RGBA{R: 70, G: 130, B: 200, A: 255}),
		tool("Scythe", color.RGBA{R: 190, G: 190, B: 200, A: 255}),
		nil,
		food("Salad", 3, 0, color.RGBA{R: 90, G: 200, B: 90, A: 255}),
		food("Cheese", 12, 2, color.RGBA{R: 240, G: 210, B: 90, A: 255}),
		food("Pumpkin Soup", 1, 3, color.RGBA{R: 230, G: 130, B: 40, A: 255}),
		nil,
		nil,
		tool("Fishing Rod", color.RGBA{R: 160, G: 80, B: 60, A: 255}),
		food("Blackberry", 24, 1, color.RGBA{R: 80, G: 40, B: 120, A: 255}),
		food("Coffee", 5, 0, color.RGBA{R: 100, G: 60, B: 30, A: 255}),
		gem("Amethyst", color.RGBA{R: 160, G: 90, B: 220, A: 255}),
		gem("Emerald", color.RGBA{R: 40, G: 200, B: 120, A: 255}),
		gem("Ruby", color.RGBA{R: 220, G: 40, B: 60, A: 255}),
		nil,
		food("Bread", 7, 0, color.RGBA{R: 210, G: 160, B: 100, A: 255}),
		tool("Slingshot", color.RGBA{R: 140, G: 100, B: 50, A: 255}),
		tool("Sword", color.RGBA{R: 200, G: 200, B: 220, A: 255}),
		nil, nil, nil,
		gem("Diamond", color.RGBA{R: 200, G: 240, B: 255, A: 255}),
	)
}

// IconPattern draws shape in c on a transparent size x size image.
func IconPattern(shape IconShape, c color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	radius := float64(size) * 0.4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			var inside bool
			switch shape {
			case ShapeCircle:
				inside = dx*dx+dy*dy <= radius*radius
			case ShapeDiamond:
				inside = math.Abs(dx)+math.Abs(dy) <= radius
			case ShapeBar:
				// A handle with a head at the top.
				inside = (math.Abs(dx) <= radius/4 && math.Abs(dy) <= radius) ||
					(dy < -radius/2 && dy >= -radius && math.Abs(dx) <= radius*0.75)
			}
			if inside {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
