package cache

type scopedKeyer struct {
	Keyer
	prefix string
}

// NewScopedKeyer prefixes every key inner produces. The CLI and server
// scope keys by build version so a shared Redis never serves entries
// written by an incompatible release. A nil inner means the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return scopedKeyer{Keyer: inner, prefix: prefix}
}

func (k scopedKeyer) LayoutKey(operatorHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.Keyer.LayoutKey(operatorHash, opts)
}

func (k scopedKeyer) ArtifactKey(operatorHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.Keyer.ArtifactKey(operatorHash, opts)
}
