package menu

// Page is an ordered group of items shown together in a menu.
type Page interface {
	Items() []Item
	// SelectedItemIndex is the item currently in use, or -1.
	SelectedItemIndex() int
}

// PageList is an indexed, possibly lazily built, sequence of pages.
type PageList interface {
	Len() int
	At(i int) Page
}

// ItemPage is a page over a fixed list of items.
type ItemPage struct {
	items      []Item
	isSelected func(Item) bool
}

// NewPage creates a page. isSelected may be nil when no item is ever selected.
func NewPage(items []Item, isSelected func(Item) bool) *ItemPage {
	return &ItemPage{items: items, isSelected: isSelected}
}

func (p *ItemPage) Items() []Item {
	return p.items
}

func (p *ItemPage) SelectedItemIndex() int {
	if p.isSelected == nil {
		return -1
	}
	for i, item := range p.items {
		if p.isSelected(item) {
			return i
		}
	}
	return -1
}

// StaticPages is a PageList backed by a slice.
type StaticPages []Page

func (s StaticPages) Len() int { return len(s) }

func (s StaticPages) At(i int) Page { return s[i] }

// composedPages concatenates page lists.
type composedPages []PageList

func (c composedPages) Len() int {
	n := 0
	for _, l := range c {
		n += l.Len()
	}
	return n
}

func (c composedPages) At(i int) Page {
	for _, l := range c {
		if i < l.Len() {
			return l.At(i)
		}
		i -= l.Len()
	}
	return nil
}

// Compose returns a PageList that reads through each list in order.
func Compose(lists ...PageList) PageList {
	return composedPages(lists)
}
