// Package lcg implements the Park-Miller minimal standard generator, the
// only source of randomness used by randx.
package lcg

const (
	// Modulus is the Mersenne prime 2^31-1.
	Modulus int64 = 1<<31 - 1
	// Multiplier is the Lehmer multiplier 7^5.
	Multiplier int64 = 16807
)

// Generator holds the state register of a multiplicative LCG.
// A Generator is not safe for concurrent use; create one per call.
type Generator struct {
	state int64
}

// New creates a Generator whose first output is (16807*seed) mod (2^31-1).
//
// The seed is reduced modulo the modulus up front so the product always fits
// in 64 bits, which leaves the sequence unchanged.
func New(seed int64) *Generator {
	s := seed % Modulus
	if s < 0 {
		s += Modulus
	}
	return &Generator{state: s}
}

// State returns the current register value.
func (g *Generator) State() int64 {
	return g.state
}

// Step advances the register and returns the new value.
func (g *Generator) Step() int64 {
	g.state = Multiplier * g.state % Modulus
	return g.state
}

// Next returns the next uniform value in [0, 1).
func (g *Generator) Next() float64 {
	return float64(g.Step()) / float64(Modulus)
}

// Fill writes len(p) consecutive uniforms into p.
func (g *Generator) Fill(p []float64) {
	for i := range p {
		p[i] = g.Next()
	}
}

// Generate returns size samples of n consecutive uniforms each, drawn row
// major from a single stream seeded with seed.
func Generate(n, size int, seed int64) [][]float64 {
	g := New(seed)
	out := make([][]float64, size)
	for i := range out {
		out[i] = make([]float64, n)
		g.Fill(out[i])
	}
	return out
}
