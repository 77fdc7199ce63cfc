package move

// Rand supplies the draw in [0,1) that decides whether a concession step
// lands. Injecting the source keeps identical round contexts reproducible;
// *math/rand.Rand satisfies the interface for callers that want seeded
// variation.
type Rand interface {
	Float64() float64
}

// FixedDraw is a Rand that always returns the same draw.
type FixedDraw float64

// Float64 implements Rand.
func (d FixedDraw) Float64() float64 {
	return float64(d)
}

// DefaultRand returns a deterministic source whose draw of zero always lands
// the concession step for any positive rate.
func DefaultRand() Rand {
	return FixedDraw(0)
}
