package menu

import "strings"

// GameItem is an item as the host game knows it.
type GameItem interface {
	DisplayName() string
	Description() string
	Stack() int
	MaxStack() int
	Quality() int
	Icon() Icon
}

// Inventory is the host game's view of one player's inventory.
type Inventory interface {
	// Slots returns every inventory slot; empty slots are nil.
	Slots() []GameItem
	// CurrentSlot is the slot of the equipped item.
	CurrentSlot() int
	// SelectSlot equips the item in slot.
	SelectSlot(slot int)
	// TryConsume attempts to eat, use or place the item in slot and reports
	// whether it had an effect.
	TryConsume(slot int) bool
}

// InventoryItem is a menu item backed by an inventory slot.
type InventoryItem struct {
	inventory   Inventory
	slot        int
	item        GameItem
	description string
}

// NewInventoryItem wraps the item at slot.
func NewInventoryItem(inv Inventory, slot int, item GameItem) *InventoryItem {
	return &InventoryItem{
		inventory:   inv,
		slot:        slot,
		item:        item,
		description: CollapseDescription(item.Description()),
	}
}

// Slot returns the inventory slot this item was built from.
func (i *InventoryItem) Slot() int { return i.slot }

func (i *InventoryItem) Title() string { return i.item.DisplayName() }

func (i *InventoryItem) Description() string { return i.description }

func (i *InventoryItem) StackSize() (int, bool) {
	if i.item.MaxStack() > 1 {
		return i.item.Stack(), true
	}
	return 0, false
}

func (i *InventoryItem) Quality() (int, bool) {
	q := i.item.Quality()
	return q, q > 0
}

func (i *InventoryItem) Icon() Icon { return i.item.Icon() }

func (i *InventoryItem) Activate(_ PlayerID, delay DelayedActions, action ItemAction) ActivationResult {
	return ConsumeOrSelect(i.inventory, i.slot, delay, action)
}

// InventoryMenu pages through a player's inventory, pageSize slots at a time.
type InventoryMenu struct {
	inventory    Inventory
	pageSize     int
	pages        StaticPages
	selectedPage int
	dirty        bool
}

// NewInventoryMenu creates a menu over inv. Pages are built on first access.
func NewInventoryMenu(inv Inventory, pageSize int) *InventoryMenu {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &InventoryMenu{inventory: inv, pageSize: pageSize, dirty: true}
}

// Invalidate marks the pages for rebuilding on next access.
func (m *InventoryMenu) Invalidate() {
	m.dirty = true
}

// SetPageSize changes the number of slots per page.
func (m *InventoryMenu) SetPageSize(size int) {
	if size > 0 && size != m.pageSize {
		m.pageSize = size
		m.dirty = true
	}
}

func (m *InventoryMenu) Pages() PageList {
	m.refreshIfDirty()
	return m.pages
}

func (m *InventoryMenu) SelectedPageIndex() int { return m.selectedPage }

func (m *InventoryMenu) SetSelectedPageIndex(i int) { m.selectedPage = i }

// ResetSelectedPage shows the page holding the equipped item. When nothing is
// equipped (e.g. the last of a stack was just eaten), it keeps the current page
// if it has items, then falls back to the first non-empty page, then page 0.
func (m *InventoryMenu) ResetSelectedPage() {
	m.refreshIfDirty()
	if slot := m.equippedOrFirstSlot(); slot >= 0 {
		m.selectedPage = slot / m.pageSize
		return
	}
	if p := SelectedPage(m); p != nil && len(p.Items()) > 0 {
		return
	}
	m.selectedPage = max(FirstNonEmptyPage(m.pages), 0)
}

func (m *InventoryMenu) equippedOrFirstSlot() int {
	slots := m.inventory.Slots()
	current := m.inventory.CurrentSlot()
	if current >= 0 && current < len(slots) && slots[current] != nil {
		return current
	}
	for i, item := range slots {
		if item != nil {
			return i
		}
	}
	return -1
}

func (m *InventoryMenu) refreshIfDirty() {
	if !m.dirty {
		return
	}
	slots := m.inventory.Slots()
	// Fresh slice: callers may still hold the previous page list.
	m.pages = make(StaticPages, 0, (len(slots)+m.pageSize-1)/m.pageSize)
	for start := 0; start < len(slots); start += m.pageSize {
		end := min(start+m.pageSize, len(slots))
		m.pages = append(m.pages, m.buildPage(slots, start, end))
	}
	m.dirty = false
}

func (m *InventoryMenu) buildPage(slots []GameItem, start, end int) Page {
	items := make([]Item, 0, end-start)
	for slot := start; slot < end; slot++ {
		if slots[slot] == nil {
			continue
		}
		items = append(items, NewInventoryItem(m.inventory, slot, slots[slot]))
	}
	inv := m.inventory
	return NewPage(items, func(item Item) bool {
		ii, ok := item.(*InventoryItem)
		return ok && ii.slot == inv.CurrentSlot()
	})
}

// CollapseDescription undoes hard line wrapping in item descriptions so the
// renderer can wrap to its own width. Runs of whitespace become one space, but
// a run containing two or more newlines is kept as a paragraph break.
func CollapseDescription(text string) string {
	var sb strings.Builder
	inWhitespace := false
	newlines := 0
	for _, c := range text {
		if c == ' ' || c == '\r' || c == '\n' || c == '\t' {
			inWhitespace = true
			if c == '\n' {
				newlines++
			}
			continue
		}
		if inWhitespace && sb.Len() > 0 {
			if newlines > 1 {
				sb.WriteString("\n\n")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteRune(c)
		inWhitespace = false
		newlines = 0
	}
	return sb.String()
}
