package geo

import "sync"

// RouteCache memoizes computed routes per order so the tracking view does
// not re-query the provider every time it opens. One instance is constructed
// at application start and injected into consumers; entries live for the
// process lifetime and are never invalidated, so a changed address leaves a
// stale route behind. Writes to the same key are last-write-wins.
type RouteCache struct {
	mu     sync.RWMutex
	routes map[string]*Route
}

func NewRouteCache() *RouteCache {
	return &RouteCache{routes: make(map[string]*Route)}
}

func (c *RouteCache) Get(orderID string) (*Route, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.routes[orderID]
	return r, ok
}

func (c *RouteCache) Put(orderID string, route *Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[orderID] = route
}
