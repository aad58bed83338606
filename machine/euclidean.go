package machine

import (
	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/sequence"
)

// Euclidean distributes PULSES active steps as evenly as possible across
// STEPS positions using a Bresenham-style placement, then rotates the
// result by ROTATE before masking the input sequence. It draws no
// entropy; its params alone determine its output.
type Euclidean struct {
	params *param.List
}

// NewEuclidean builds an Euclidean rhythm machine with its default
// params: a 16-step pattern with 4 evenly spaced pulses, unrotated.
func NewEuclidean() *Euclidean {
	steps, _ := param.NewNumber("STEPS", 1, 32, 16)
	pulses, _ := param.NewNumber("PULSES", 0, 32, 4)
	rotate, _ := param.NewNumber("ROTATE", 0, 31, 0)
	list, _ := param.NewList(steps, pulses, rotate)
	return &Euclidean{params: list}
}

func (e *Euclidean) Name() string         { return "EUCLID" }
func (e *Euclidean) Generate(_ EntropySource) {}
func (e *Euclidean) Params() *param.List  { return e.params }

// Apply masks out every rest position in seq, keeping only the steps the
// Euclidean placement selects.
func (e *Euclidean) Apply(seq sequence.Sequence) sequence.Sequence {
	steps := int(e.params.At(0).Raw())
	pulses := int(e.params.At(1).Raw())
	rotate := int(e.params.At(2).Raw())

	base := euclideanPattern(steps, pulses)
	base = rotateBoolLeft(base, rotate)

	mask := make([]bool, seq.Len())
	for i := range mask {
		if len(base) == 0 {
			continue
		}
		mask[i] = base[i%len(base)]
	}
	return seq.MaskSteps(mask)
}

// euclideanPattern places pulses active positions as evenly as possible
// among steps slots, using the classic Bresenham-line construction: the
// active slots are where the integer division i*pulses/steps changes
// value from the previous slot.
func euclideanPattern(steps, pulses int) []bool {
	if steps <= 0 {
		return nil
	}
	if pulses <= 0 {
		return make([]bool, steps)
	}
	if pulses > steps {
		pulses = steps
	}
	pattern := make([]bool, steps)
	prev := -1
	for i := 0; i < steps; i++ {
		cur := (i * pulses) / steps
		if cur != prev {
			pattern[i] = true
		}
		prev = cur
	}
	return pattern
}

// rotateBoolLeft returns a new slice with every element shifted left by
// n positions, wrapping around.
func rotateBoolLeft(mask []bool, n int) []bool {
	length := len(mask)
	if length == 0 {
		return mask
	}
	n = ((n % length) + length) % length
	out := make([]bool, length)
	for i := range out {
		out[i] = mask[(i+n)%length]
	}
	return out
}
