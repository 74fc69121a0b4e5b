package generator

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSource sets the random source. A *rand.Rand from math/rand/v2 satisfies Source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}
