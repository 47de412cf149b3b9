package cache

// ScopedKeyer wraps a Keyer with a prefix so that entries written on behalf
// of one node never collide with another node's, even for identical inputs.
//
// Example usage:
//
//	// Per-node keys in the preview command
//	nodeKeyer := NewScopedKeyer(NewDefaultKeyer(), "node:17:")
//
//	// Shared keys for one-off renders
//	keyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PreviewKey generates a prefixed key for preview caching.
func (k *ScopedKeyer) PreviewKey(sourceHash string, limit int) string {
	return k.prefix + k.inner.PreviewKey(sourceHash, limit)
}

// PlanKey generates a prefixed key for plan caching.
func (k *ScopedKeyer) PlanKey(imageHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(imageHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
