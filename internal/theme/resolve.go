package theme

import "context"

type contextKey struct{}

// NewContext returns a child context carrying t as the inherited theme for
// every menu resolved against it. A later NewContext shadows earlier ones.
func NewContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t.Normalize())
}

// FromContext returns the nearest theme attached to ctx.
func FromContext(ctx context.Context) (Theme, bool) {
	if ctx == nil {
		return Theme{}, false
	}
	t, ok := ctx.Value(contextKey{}).(Theme)
	return t, ok
}

// Resolve merges settings with per-field precedence explicit > inherited >
// Default, then normalizes. It has no hidden state: equal inputs give Equal
// results.
func Resolve(explicit Overrides, inherited *Theme) Theme {
	base := Default()
	if inherited != nil {
		base = *inherited
	}
	return base.WithOverrides(explicit).Normalize()
}

// ResolveContext is Resolve with the inherited theme looked up in ctx.
func ResolveContext(ctx context.Context, explicit Overrides) Theme {
	if t, ok := FromContext(ctx); ok {
		return Resolve(explicit, &t)
	}
	return Resolve(explicit, nil)
}
