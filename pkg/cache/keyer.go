package cache

// Keyer generates cache keys for the pipeline stages. Centralizing key
// construction keeps the layout consistent between CLI and server.
type Keyer interface {
	// DocumentKey keys an encoded LP document by its inputs.
	DocumentKey(p1, p2 []int, objective string) string

	// SolutionKey keys a solver result by the document hash.
	SolutionKey(docHash string) string

	// ReportKey keys a feasibility report by the document hash and the
	// hash of the assignment being checked.
	ReportKey(docHash, valuesHash string) string
}

// DefaultKeyer is the standard key layout: a stage prefix followed by a
// SHA-256 hash of the stage inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DocumentKey generates a key for document caching.
func (k *DefaultKeyer) DocumentKey(p1, p2 []int, objective string) string {
	return hashKey("doc", p1, p2, objective)
}

// SolutionKey generates a key for solver result caching.
func (k *DefaultKeyer) SolutionKey(docHash string) string {
	return hashKey("soln", docHash)
}

// ReportKey generates a key for feasibility report caching.
func (k *DefaultKeyer) ReportKey(docHash, valuesHash string) string {
	return hashKey("report", docHash, valuesHash)
}

// ScopedKeyer wraps a Keyer with a prefix so that separate deployments or
// tenants sharing one backend get disjoint key namespaces.
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

// DocumentKey generates a prefixed document key.
func (k *ScopedKeyer) DocumentKey(p1, p2 []int, objective string) string {
	return k.prefix + k.inner.DocumentKey(p1, p2, objective)
}

// SolutionKey generates a prefixed solver result key.
func (k *ScopedKeyer) SolutionKey(docHash string) string {
	return k.prefix + k.inner.SolutionKey(docHash)
}

// ReportKey generates a prefixed feasibility report key.
func (k *ScopedKeyer) ReportKey(docHash, valuesHash string) string {
	return k.prefix + k.inner.ReportKey(docHash, valuesHash)
}
