package menu

import "sync"

// PageFactory creates a player's instance of a registered page. It may cache
// internally but must return a page unique to the player.
type PageFactory func(who PlayerID) Page

type registration struct {
	key     string
	factory PageFactory
}

// PageRegistry holds plugin-registered pages and the per-player page lists
// built from them. Registration and invalidation may come from any goroutine;
// both only flip cached slots, and pages are rebuilt lazily on next read.
type PageRegistry struct {
	mu            sync.RWMutex
	registrations []registration
	indices       map[string]int
	sessions      map[PlayerID]*PlayerPages
}

// NewPageRegistry returns an empty registry.
func NewPageRegistry() *PageRegistry {
	return &PageRegistry{
		indices:  make(map[string]int),
		sessions: make(map[PlayerID]*PlayerPages),
	}
}

// PageKey builds the registry key for a plugin page.
func PageKey(ownerID, pageID string) string {
	return ownerID + ":" + pageID
}

// Len returns the number of registered pages.
func (r *PageRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrations)
}

// Register adds or replaces a page. Replacing a page drops that slot from
// every open player list.
func (r *PageRegistry) Register(ownerID, pageID string, factory PageFactory) {
	key := PageKey(ownerID, pageID)
	r.mu.Lock()
	defer r.mu.Unlock()
	if index, ok := r.indices[key]; ok {
		r.invalidateIndexLocked(index)
		r.registrations[index] = registration{key: key, factory: factory}
		return
	}
	r.registrations = append(r.registrations, registration{key: key, factory: factory})
	r.indices[key] = len(r.registrations) - 1
}

// Invalidate drops the cached page for the key in every open player list.
// Returns false if no such page is registered.
func (r *PageRegistry) Invalidate(ownerID, pageID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	index, ok := r.indices[PageKey(ownerID, pageID)]
	if !ok {
		return false
	}
	r.invalidateIndexLocked(index)
	return true
}

// OpenPlayerPages returns the page list for a player session, creating it if
// needed. Sessions stay tracked until ClosePlayerPages.
func (r *PageRegistry) OpenPlayerPages(who PlayerID) *PlayerPages {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pages, ok := r.sessions[who]; ok {
		return pages
	}
	pages := &PlayerPages{registry: r, who: who}
	r.sessions[who] = pages
	return pages
}

// ClosePlayerPages ends a player session; its list is no longer updated.
func (r *PageRegistry) ClosePlayerPages(who PlayerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, who)
}

// Sessions returns the number of open player sessions.
func (r *PageRegistry) Sessions() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *PageRegistry) invalidateIndexLocked(index int) {
	for _, pages := range r.sessions {
		pages.InvalidateAt(index)
	}
}

func (r *PageRegistry) factoryAt(index int) (PageFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.registrations) {
		return nil, false
	}
	return r.registrations[index].factory, true
}

type pageSlot struct {
	page       Page
	generation uint64
}

// PlayerPages is one player's lazily created view of the registered pages.
type PlayerPages struct {
	registry *PageRegistry
	who      PlayerID

	mu    sync.Mutex
	slots []pageSlot
}

func (p *PlayerPages) Len() int {
	return p.registry.Len()
}

// At returns the page in slot i, creating it on first access.
func (p *PlayerPages) At(i int) Page {
	p.mu.Lock()
	p.growLocked(i)
	slot := p.slots[i]
	p.mu.Unlock()
	if slot.page != nil {
		return slot.page
	}

	factory, ok := p.registry.factoryAt(i)
	if !ok {
		return NewPage(nil, nil)
	}
	// The factory runs unlocked so it may itself call Invalidate.
	page := factory(p.who)
	if page == nil {
		page = NewPage(nil, nil)
	}

	p.mu.Lock()
	// Only cache when nothing invalidated the slot while the factory ran.
	if p.slots[i].generation == slot.generation {
		p.slots[i].page = page
	}
	p.mu.Unlock()
	return page
}

// Invalidate drops every cached page, e.g. after a config change.
func (p *PlayerPages) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.slots {
		p.slots[i].page = nil
		p.slots[i].generation++
	}
}

// InvalidateAt drops the cached page in slot i.
func (p *PlayerPages) InvalidateAt(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.growLocked(i)
	p.slots[i].page = nil
	p.slots[i].generation++
}

func (p *PlayerPages) growLocked(i int) {
	for len(p.slots) <= i {
		p.slots = append(p.slots, pageSlot{})
	}
}
