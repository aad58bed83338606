package machine

import (
	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/sequence"
)

// RandomMelody assigns each present step a random note within
// [ROOT, ROOT+RANGE-1], drawing a single 64-bit seed per Generate and
// deriving every step's note from it so Apply stays pure.
type RandomMelody struct {
	params *param.List
	seed   uint64
}

// NewRandomMelody builds a RandomMelody machine rooted at middle C with
// a one-octave range.
func NewRandomMelody() *RandomMelody {
	root, _ := param.New("ROOT", param.KindNote, 0, 127, 60)
	rng, _ := param.NewNumber("RANGE", 1, 60, 12)
	list, _ := param.NewList(root, rng)
	return &RandomMelody{params: list}
}

func (m *RandomMelody) Name() string        { return "RAND" }
func (m *RandomMelody) Params() *param.List { return m.params }

// Generate draws the single entropy word this machine needs.
func (m *RandomMelody) Generate(entropy EntropySource) {
	m.seed = entropy.RandomU64()
}

// Apply assigns every present step's note from the cached seed, one bit
// position per present step in order, mapped into [ROOT, ROOT+RANGE-1].
func (m *RandomMelody) Apply(seq sequence.Sequence) sequence.Sequence {
	root := m.params.At(0).Raw()
	rng := m.params.At(1).Raw()
	maxNote := root + rng - 1

	notes := make([]uint8, 0, seq.Len())
	shift := uint(0)
	for i := 0; i < seq.Len(); i++ {
		if seq.At(i) == nil {
			continue
		}
		raw := uint8((m.seed >> (shift % 64)) & 0x7F)
		notes = append(notes, mapRange(raw, 0, 127, root, maxNote))
		shift++
	}
	return seq.SetNotes(notes)
}

// mapRange rescales x from [a,b] into [c,d], matching the firmware's
// integer mapping function exactly (including its rounding direction).
func mapRange(x, a, b, c, d uint8) uint8 {
	num := int(x-a) * (int(d) - int(c) + 1)
	den := int(b) - int(a) + 1
	return uint8(num/den + int(c))
}
