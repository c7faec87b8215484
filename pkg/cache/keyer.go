package cache

// Keyer derives cache keys.
type Keyer interface {
	// RenderKey returns the key for a rendered artifact of subject ("grid"
	// or "trie") whose input content hashes to contentHash.
	RenderKey(subject, contentHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts lists the render options that change the output.
type RenderKeyOpts struct {
	Format string `json:"format"`
	Layout string `json:"layout,omitempty"`
	Labels bool   `json:"labels,omitempty"`
}

// DefaultKeyer produces keys of the form "render:<subject>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(subject, contentHash string, opts RenderKeyOpts) string {
	return hashKey("render:"+subject, contentHash, opts)
}
