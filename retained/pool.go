package retained

import "sync"

// ============================================================================
// Route Slice Pooling
// ============================================================================
//
// Every pointer event builds a hit-test route. Pooling the slices keeps
// high-frequency pointermove dispatch from allocating.
//
// Usage:
//   route := acquireRoute()
//   route = hitTestRecursive(root, x, y, route)
//   ... use route ...
//   releaseRoute(route)

// routePool pools []*Widget slices used for hit-test routes.
var routePool = sync.Pool{
	New: func() interface{} {
		return make([]*Widget, 0, 16)
	},
}

// acquireRoute gets an empty route slice from the pool.
func acquireRoute() []*Widget {
	return routePool.Get().([]*Widget)[:0]
}

// releaseRoute returns a route slice to the pool.
// The slice should not be used after calling this.
func releaseRoute(route []*Widget) {
	if route == nil {
		return
	}

	// Clear the slice to avoid holding references (helps GC)
	for i := range route {
		route[i] = nil
	}

	// Only pool slices up to a reasonable size to avoid memory bloat
	if cap(route) <= 64 {
		routePool.Put(route[:0])
	}
}
