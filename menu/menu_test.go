package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubItem struct {
	title string
}

func (s *stubItem) Title() string          { return s.title }
func (s *stubItem) Description() string    { return "" }
func (s *stubItem) StackSize() (int, bool) { return 0, false }
func (s *stubItem) Quality() (int, bool)   { return 0, false }
func (s *stubItem) Icon() Icon             { return Icon{} }
func (s *stubItem) Activate(PlayerID, DelayedActions, ItemAction) ActivationResult {
	return ResultCustom
}

func pageOf(n int) Page {
	items := make([]Item, n)
	for i := range items {
		items[i] = &stubItem{title: "item"}
	}
	return NewPage(items, nil)
}

type fixedMenu struct {
	pages    StaticPages
	selected int
}

func (m *fixedMenu) Pages() PageList            { return m.pages }
func (m *fixedMenu) SelectedPageIndex() int     { return m.selected }
func (m *fixedMenu) SetSelectedPageIndex(i int) { m.selected = i }
func (m *fixedMenu) ResetSelectedPage()         { m.selected = 0 }

func TestNextPageSkipsEmptyPages(t *testing.T) {
	m := &fixedMenu{pages: StaticPages{pageOf(0), pageOf(0), pageOf(3)}}

	assert.True(t, NextPage(m))
	assert.Equal(t, 2, m.SelectedPageIndex())
}

func TestNextPageAllEmptyIsNoop(t *testing.T) {
	m := &fixedMenu{pages: StaticPages{pageOf(0), pageOf(0), pageOf(0)}}

	assert.False(t, NextPage(m))
	assert.Equal(t, 0, m.SelectedPageIndex())
	assert.False(t, PreviousPage(m))
	assert.Equal(t, 0, m.SelectedPageIndex())
}

func TestPreviousPageWraps(t *testing.T) {
	m := &fixedMenu{pages: StaticPages{pageOf(2), pageOf(0), pageOf(1), pageOf(0)}}

	assert.True(t, PreviousPage(m))
	assert.Equal(t, 2, m.SelectedPageIndex())
	assert.True(t, PreviousPage(m))
	assert.Equal(t, 0, m.SelectedPageIndex())
}

func TestNextPageSingleNonEmptyPage(t *testing.T) {
	m := &fixedMenu{pages: StaticPages{pageOf(0), pageOf(4)}, selected: 1}

	assert.False(t, NextPage(m))
	assert.Equal(t, 1, m.SelectedPageIndex())
}

func TestNextPageWithNoPages(t *testing.T) {
	m := &fixedMenu{}
	assert.False(t, NextPage(m))
	assert.Nil(t, SelectedPage(m))
	assert.Empty(t, SelectedItems(m))
}

func TestItemPageSelectedIndex(t *testing.T) {
	a, b := &stubItem{title: "a"}, &stubItem{title: "b"}
	p := NewPage([]Item{a, b}, func(i Item) bool { return i == b })
	assert.Equal(t, 1, p.SelectedItemIndex())

	none := NewPage([]Item{a}, func(Item) bool { return false })
	assert.Equal(t, -1, none.SelectedItemIndex())
	assert.Equal(t, -1, NewPage([]Item{a}, nil).SelectedItemIndex())
}

func TestComposeReadsThrough(t *testing.T) {
	first := StaticPages{pageOf(1)}
	second := StaticPages{pageOf(2), pageOf(3)}
	c := Compose(first, second)

	assert.Equal(t, 3, c.Len())
	assert.Len(t, c.At(0).Items(), 1)
	assert.Len(t, c.At(2).Items(), 3)
	assert.Nil(t, c.At(3))
}

func TestActivationResultIsTerminal(t *testing.T) {
	assert.False(t, ResultIgnored.IsTerminal())
	assert.False(t, ResultDelayed.IsTerminal())
	assert.True(t, ResultUsed.IsTerminal())
	assert.True(t, ResultSelected.IsTerminal())
	assert.True(t, ResultCustom.IsTerminal())
}
