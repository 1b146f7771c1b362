package rng

// Fixed additive offsets deriving the five named streams from one base
// seed, so a single integer reproducibly determines an entire run.
const (
	offsetChallenge   = 0
	offsetHindrance   = 1000
	offsetAdvance     = 1500
	offsetSetbackHit  = 2000
	offsetSetbackSize = 3000
)

// Streams bundles the five independent generators one run consumes. Each
// concern owns its generator outright; there is no shared stream whose
// draw order could couple concerns under reordering or parallel campaigns.
type Streams struct {
	Challenge   *Stream
	Hindrance   *Stream
	Advance     *Stream
	SetbackHit  *Stream
	SetbackSize *Stream
}

// NewStreams derives the five streams from base at the fixed offsets.
func NewStreams(base int64) *Streams {
	return &Streams{
		Challenge:   New(base + offsetChallenge),
		Hindrance:   New(base + offsetHindrance),
		Advance:     New(base + offsetAdvance),
		SetbackHit:  New(base + offsetSetbackHit),
		SetbackSize: New(base + offsetSetbackSize),
	}
}
