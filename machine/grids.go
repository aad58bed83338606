package machine

import (
	"errors"
	"fmt"

	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/sequence"
)

// Instrument selects which 32-byte track of a Grids pattern to read.
type Instrument uint8

const (
	BD Instrument = iota
	SD
	HH
)

// InstrumentCount is the number of valid Instrument values.
const InstrumentCount = int(HH) + 1

var errUnknownInstrument = errors.New("machine: unknown instrument")

// InstrumentFromByte decodes a raw parameter byte into an Instrument.
func InstrumentFromByte(b uint8) (Instrument, error) {
	if int(b) >= InstrumentCount {
		return 0, fmt.Errorf("%w: %d", errUnknownInstrument, b)
	}
	return Instrument(b), nil
}

func (i Instrument) String() string {
	switch i {
	case BD:
		return "BD"
	case SD:
		return "SD"
	case HH:
		return "HH"
	default:
		return "??"
	}
}

// gridsSteps is the fixed width of one instrument's window into a Grids
// pattern table, and the only sequence length this machine examines.
const gridsSteps = 32

// Grids picks active steps out of one of 25 hard-coded Mutable
// Instruments Grids pattern tables, perturbed by a per-step random
// nudge. Generate draws the 32 per-step entropy samples Apply needs, so
// repeated Apply calls between Generate calls are deterministic.
type Grids struct {
	params *param.List
	rand8  [gridsSteps]uint8
}

// NewGrids builds a Grids machine with its default params: bass drum,
// table 0, fill 4, no perturbation.
func NewGrids() *Grids {
	inst, _ := param.New("INST", param.KindInstrument, 0, uint8(InstrumentCount-1), uint8(BD))
	table, _ := param.NewNumber("TABLE", 0, GridsTableCount-1, 0)
	fill, _ := param.NewNumber("FILL", 0, 7, 4)
	pert, _ := param.NewNumber("PERT", 0, 7, 0)
	list, _ := param.NewList(inst, table, fill, pert)
	return &Grids{params: list}
}

func (g *Grids) Name() string        { return "GRIDS" }
func (g *Grids) Params() *param.List { return g.params }

// Generate draws one fresh 64-bit entropy word per step and caches its
// high byte; this is the only place the Grids machine samples entropy.
func (g *Grids) Generate(entropy EntropySource) {
	for i := range g.rand8 {
		g.rand8[i] = uint8(entropy.RandomU64() >> 56)
	}
}

// Apply keeps a step iff its perturbed pattern level exceeds the
// fill-derived threshold. It only examines the first 32 positions of
// seq; shorter sequences are masked as far as they go, longer ones have
// their tail left untouched.
func (g *Grids) Apply(seq sequence.Sequence) sequence.Sequence {
	instrument := Instrument(g.params.At(0).Raw())
	table := g.params.At(1).Raw()
	fill := g.params.At(2).Raw()
	perturbation := g.params.At(3).Raw()

	patternStart := gridsSteps * int(instrument)
	pattern := gridsPatterns[table][patternStart : patternStart+gridsSteps]

	threshold := uint8(255) - fill*32

	mask := make([]bool, seq.Len())
	for i := range mask {
		perturbDelta := uint8((uint64(g.rand8[i]) * uint64(perturbation)) >> 5)
		level := saturatingAddU8(pattern[i], perturbDelta)
		mask[i] = level > threshold
	}
	return seq.MaskSteps(mask)
}

func saturatingAddU8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
