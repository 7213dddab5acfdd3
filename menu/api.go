package menu

import "go.uber.org/zap"

// API is the surface exposed to plugins that add their own menu pages.
type API struct {
	registry *PageRegistry
	log      *zap.Logger
}

// NewAPI wraps registry for plugin use. A nil logger disables logging.
func NewAPI(registry *PageRegistry, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{registry: registry, log: log.Named("pages")}
}

// RegisterPage adds or replaces a page owned by ownerID.
func (a *API) RegisterPage(ownerID, pageID string, factory PageFactory) {
	a.registry.Register(ownerID, pageID, factory)
	a.log.Info("registered menu page", zap.String("owner", ownerID), zap.String("page", pageID))
}

// InvalidatePage asks for a page to be recreated the next time it is shown.
func (a *API) InvalidatePage(ownerID, pageID string) {
	if !a.registry.Invalidate(ownerID, pageID) {
		a.log.Warn("no menu page registered", zap.String("owner", ownerID), zap.String("page", pageID))
	}
}

// Pages returns the registered pages for a player session.
func (a *API) Pages(who PlayerID) PageList {
	return a.registry.OpenPlayerPages(who)
}
