package menu

// Shortcut is a configured custom menu entry that triggers a host action,
// typically a key binding.
type Shortcut struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keybind     []string `json:"keybind"`
	// EnableActivationDelay opts this shortcut into the tool-switch delay.
	EnableActivationDelay bool `json:"enableActivationDelay"`
	Icon                  Icon `json:"-"`
}

// ShortcutActivator runs a shortcut's action on the host.
type ShortcutActivator func(who PlayerID, s Shortcut)

// ShortcutItem is a menu item for a Shortcut.
type ShortcutItem struct {
	shortcut Shortcut
	activate ShortcutActivator
}

// NewShortcutItem creates an item that runs activate when chosen.
func NewShortcutItem(s Shortcut, activate ShortcutActivator) *ShortcutItem {
	return &ShortcutItem{shortcut: s, activate: activate}
}

func (i *ShortcutItem) Title() string { return i.shortcut.Name }

func (i *ShortcutItem) Description() string { return i.shortcut.Description }

func (i *ShortcutItem) StackSize() (int, bool) { return 0, false }

func (i *ShortcutItem) Quality() (int, bool) { return 0, false }

func (i *ShortcutItem) Icon() Icon { return i.shortcut.Icon }

func (i *ShortcutItem) Activate(who PlayerID, delay DelayedActions, _ ItemAction) ActivationResult {
	if delay == DelayAll || (delay != DelayNone && i.shortcut.EnableActivationDelay) {
		return ResultDelayed
	}
	if i.activate != nil {
		i.activate(who, i.shortcut)
	}
	return ResultCustom
}

// CustomMenu shows the configured shortcuts on page 0, followed by any pages
// registered by plugins.
type CustomMenu struct {
	shortcutPage StaticPages
	extra        PageList
	activate     ShortcutActivator
	selectedPage int
}

// NewCustomMenu creates the shortcut menu. extra may be nil.
func NewCustomMenu(shortcuts []Shortcut, activate ShortcutActivator, extra PageList) *CustomMenu {
	m := &CustomMenu{extra: extra, activate: activate}
	m.RebuildShortcutPage(shortcuts)
	return m
}

// RebuildShortcutPage replaces the shortcut page, e.g. after a config change.
func (m *CustomMenu) RebuildShortcutPage(shortcuts []Shortcut) {
	items := make([]Item, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, NewShortcutItem(s, m.activate))
	}
	m.shortcutPage = StaticPages{NewPage(items, nil)}
}

func (m *CustomMenu) Pages() PageList {
	if m.extra == nil {
		return m.shortcutPage
	}
	return Compose(m.shortcutPage, m.extra)
}

func (m *CustomMenu) SelectedPageIndex() int { return m.selectedPage }

func (m *CustomMenu) SetSelectedPageIndex(i int) { m.selectedPage = i }

func (m *CustomMenu) ResetSelectedPage() { m.selectedPage = 0 }
