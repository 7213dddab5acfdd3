package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingFactory struct {
	calls int
	size  int
}

func (c *countingFactory) create(PlayerID) Page {
	c.calls++
	return pageOf(c.size)
}

func TestPlayerPagesCachesBySlot(t *testing.T) {
	r := NewPageRegistry()
	f := &countingFactory{size: 3}
	r.Register("a", "x", f.create)
	pages := r.OpenPlayerPages(1)

	first := pages.At(0)
	assert.Same(t, first, pages.At(0))
	assert.Equal(t, 1, f.calls)
}

func TestInvalidateIsolatesSlots(t *testing.T) {
	r := NewPageRegistry()
	fa := &countingFactory{size: 1}
	fb := &countingFactory{size: 2}
	r.Register("owner_a", "page_x", fa.create)
	r.Register("owner_b", "page_y", fb.create)
	pages := r.OpenPlayerPages(1)
	pages.At(0)
	pages.At(1)

	assert.True(t, r.Invalidate("owner_a", "page_x"))
	pages.At(0)
	pages.At(1)

	assert.Equal(t, 2, fa.calls)
	assert.Equal(t, 1, fb.calls)
}

func TestInvalidateReachesEveryOpenSession(t *testing.T) {
	r := NewPageRegistry()
	f := &countingFactory{size: 1}
	r.Register("a", "x", f.create)
	p1 := r.OpenPlayerPages(1)
	p2 := r.OpenPlayerPages(2)
	p1.At(0)
	p2.At(0)

	r.Invalidate("a", "x")
	p1.At(0)
	p2.At(0)
	assert.Equal(t, 4, f.calls)
}

func TestClosedSessionsAreNotTracked(t *testing.T) {
	r := NewPageRegistry()
	r.Register("a", "x", (&countingFactory{}).create)
	r.OpenPlayerPages(1)
	r.OpenPlayerPages(2)
	assert.Same(t, r.OpenPlayerPages(1), r.OpenPlayerPages(1))
	assert.Equal(t, 2, r.Sessions())

	r.ClosePlayerPages(1)
	assert.Equal(t, 1, r.Sessions())
	assert.True(t, r.Invalidate("a", "x"))
}

func TestInvalidateUnknownKey(t *testing.T) {
	r := NewPageRegistry()
	assert.False(t, r.Invalidate("nobody", "nothing"))
}

func TestRegisterReplacesAndInvalidates(t *testing.T) {
	r := NewPageRegistry()
	old := &countingFactory{size: 1}
	replacement := &countingFactory{size: 5}
	r.Register("a", "x", old.create)
	pages := r.OpenPlayerPages(1)
	pages.At(0)

	r.Register("a", "x", replacement.create)

	assert.Equal(t, 1, r.Len())
	assert.Len(t, pages.At(0).Items(), 5)
	assert.Equal(t, 1, replacement.calls)
}

func TestWholeListInvalidate(t *testing.T) {
	r := NewPageRegistry()
	fa := &countingFactory{size: 1}
	fb := &countingFactory{size: 1}
	r.Register("a", "x", fa.create)
	r.Register("b", "y", fb.create)
	pages := r.OpenPlayerPages(1)
	pages.At(0)
	pages.At(1)

	pages.Invalidate()
	pages.At(0)
	pages.At(1)
	assert.Equal(t, 2, fa.calls)
	assert.Equal(t, 2, fb.calls)
}

func TestInvalidationDuringCreationIsNotCached(t *testing.T) {
	r := NewPageRegistry()
	calls := 0
	r.Register("a", "x", func(PlayerID) Page {
		calls++
		if calls == 1 {
			// A plugin refreshing itself while its page is being built.
			r.Invalidate("a", "x")
		}
		return pageOf(1)
	})
	pages := r.OpenPlayerPages(1)

	pages.At(0)
	pages.At(0)
	pages.At(0)
	assert.Equal(t, 2, calls)
}

func TestAPIWarnsOnUnknownPage(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	api := NewAPI(NewPageRegistry(), zap.New(core))

	api.InvalidatePage("mod.b", "missing")
	api.RegisterPage("mod.a", "chars", func(PlayerID) Page { return pageOf(2) })
	api.InvalidatePage("mod.a", "chars")

	assert.Equal(t, 1, logs.FilterMessage("no menu page registered").Len())
	assert.Equal(t, 1, logs.FilterMessage("registered menu page").Len())
	assert.Equal(t, 1, api.Pages(3).Len())
}
