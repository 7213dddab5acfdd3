package menu

// Menu is a paged radial menu.
type Menu interface {
	Pages() PageList
	SelectedPageIndex() int
	SetSelectedPageIndex(i int)
	// ResetSelectedPage picks the page to show when the menu opens.
	ResetSelectedPage()
}

// SelectedPage returns the currently selected page, or nil when the index is
// out of range.
func SelectedPage(m Menu) Page {
	pages := m.Pages()
	i := m.SelectedPageIndex()
	if i < 0 || i >= pages.Len() {
		return nil
	}
	return pages.At(i)
}

// SelectedItems returns the items of the selected page.
func SelectedItems(m Menu) []Item {
	if p := SelectedPage(m); p != nil {
		return p.Items()
	}
	return nil
}

// NextPage advances to the next non-empty page, wrapping around. Returns
// whether the selection changed.
func NextPage(m Menu) bool {
	return stepPage(m, 1)
}

// PreviousPage moves to the previous non-empty page, wrapping around. Returns
// whether the selection changed.
func PreviousPage(m Menu) bool {
	return stepPage(m, -1)
}

func stepPage(m Menu, dir int) bool {
	pages := m.Pages()
	count := pages.Len()
	if count == 0 {
		return false
	}
	start := m.SelectedPageIndex()
	if start < 0 || start >= count {
		start = 0
	}
	// Stops once back at start, so all-empty menus don't loop forever.
	for i := (start + dir + count) % count; i != start; i = (i + dir + count) % count {
		if len(pages.At(i).Items()) > 0 {
			m.SetSelectedPageIndex(i)
			return true
		}
	}
	return false
}

// FirstNonEmptyPage returns the index of the first page with items, or -1.
func FirstNonEmptyPage(pages PageList) int {
	for i := 0; i < pages.Len(); i++ {
		if len(pages.At(i).Items()) > 0 {
			return i
		}
	}
	return -1
}
