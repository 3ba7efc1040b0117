package keymap

import "slices"

// Resolver looks up the action bound to a key within a fixed set of
// bindings, usually one or more contexts from ByContext.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings. When two bindings claim the same key the
// later one wins, so callers list the narrower context last.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, len(bindings)*2),
		keys:    make(map[Action][]string, len(bindings)),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// Handles reports whether key is bound in this resolver.
func (r *Resolver) Handles(key string) bool {
	_, ok := r.actions[key]
	return ok
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.keys[action])
}

// MenuResolver resolves the keys active while the menu holds input.
func MenuResolver() *Resolver {
	return NewResolver(ByContext(ContextMenu))
}
