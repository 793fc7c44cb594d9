package core

// Property is a descriptive tag attached to a test function in the
// benchmark literature (see benchmarkfcns.xyz).
type Property int

const (
	Continuous Property = iota
	Multimodal
	Convex
	Differentiable
	Separable
)

var propertyNames = [...]string{
	Continuous:     "continuous",
	Multimodal:     "multimodal",
	Convex:         "convex",
	Differentiable: "differentiable",
	Separable:      "separable",
}

// String returns the lower-case tag name.
func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return "unknown"
	}

	return propertyNames[p]
}

// Propertied is implemented by functions that publish their properties.
type Propertied interface {
	Properties() []Property
}

// HasProperty reports whether f publishes p.
func HasProperty(f Propertied, p Property) bool {
	for _, q := range f.Properties() {
		if q == p {
			return true
		}
	}

	return false
}
