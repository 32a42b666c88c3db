package middleware

import "github.com/aretw0/quest/pkg/ports"

// Middleware allows wrapping an AdventureStore to add behavior.
type Middleware func(ports.AdventureStore) ports.AdventureStore

// Chain wraps store with mws; the first middleware is the outermost.
func Chain(store ports.AdventureStore, mws ...Middleware) ports.AdventureStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
