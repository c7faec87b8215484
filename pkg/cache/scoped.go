package cache

// ScopedKeyer wraps a Keyer with a prefix to keep namespaces apart.
// The CLI scopes keys by program version so a new release never serves
// artifacts rendered by an older one:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "wordhunt:v1.2.0:")
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

// Prefix returns the namespace prepended to every key.
func (k *ScopedKeyer) Prefix() string { return k.prefix }

// RenderKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) RenderKey(subject, contentHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(subject, contentHash, opts)
}
