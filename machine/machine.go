// Package machine implements the polymorphic sequence transformers that
// make up a track's rhythm and melody stages: Unit (pass-through),
// Euclidean and Grids (rhythm), and RandomMelody (melody).
//
// Every machine splits its randomness from its transformation: Generate
// draws whatever entropy it needs and caches it; Apply then transforms a
// Sequence purely from that cached state, so calling Apply twice with no
// intervening Generate yields identical sequences.
package machine

import (
	"errors"
	"fmt"

	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/sequence"
)

// ErrUnknownID is returned when a raw byte does not decode to a known
// machine identifier.
var ErrUnknownID = errors.New("machine: unknown machine id")

// EntropySource supplies random bits to machines that need them. Splitting
// this out as an interface (rather than calling a global RNG) is what
// lets tests hand machines a fixed, known sequence of values.
type EntropySource interface {
	RandomU64() uint64
}

// Machine transforms a Sequence according to its own parameters and
// whatever entropy it last drew.
type Machine interface {
	Name() string
	Generate(entropy EntropySource)
	Apply(seq sequence.Sequence) sequence.Sequence
	Params() *param.List
}

// RhythmMachineID selects which rhythm machine a track uses.
type RhythmMachineID uint8

const (
	RhythmUnit RhythmMachineID = iota
	RhythmEuclid
	RhythmGrids
)

// RhythmMachineIDCount is the number of valid RhythmMachineID values.
const RhythmMachineIDCount = int(RhythmGrids) + 1

// RhythmMachineIDFromByte decodes a raw parameter byte into a RhythmMachineID.
func RhythmMachineIDFromByte(b uint8) (RhythmMachineID, error) {
	if int(b) >= RhythmMachineIDCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownID, b)
	}
	return RhythmMachineID(b), nil
}

func (id RhythmMachineID) String() string {
	switch id {
	case RhythmUnit:
		return "UNIT"
	case RhythmEuclid:
		return "EUCLID"
	case RhythmGrids:
		return "GRIDS"
	default:
		return "????"
	}
}

// NewRhythmMachine builds the concrete rhythm Machine for the given id.
func NewRhythmMachine(id RhythmMachineID) (Machine, error) {
	switch id {
	case RhythmUnit:
		return NewUnit(), nil
	case RhythmEuclid:
		return NewEuclidean(), nil
	case RhythmGrids:
		return NewGrids(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
}

// MelodyMachineID selects which melody machine a track uses.
type MelodyMachineID uint8

const (
	MelodyUnit MelodyMachineID = iota
	MelodyRand
)

// MelodyMachineIDCount is the number of valid MelodyMachineID values.
const MelodyMachineIDCount = int(MelodyRand) + 1

// MelodyMachineIDFromByte decodes a raw parameter byte into a MelodyMachineID.
func MelodyMachineIDFromByte(b uint8) (MelodyMachineID, error) {
	if int(b) >= MelodyMachineIDCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownID, b)
	}
	return MelodyMachineID(b), nil
}

func (id MelodyMachineID) String() string {
	switch id {
	case MelodyUnit:
		return "UNIT"
	case MelodyRand:
		return "RAND"
	default:
		return "????"
	}
}

// NewMelodyMachine builds the concrete melody Machine for the given id.
func NewMelodyMachine(id MelodyMachineID) (Machine, error) {
	switch id {
	case MelodyUnit:
		return NewUnit(), nil
	case MelodyRand:
		return NewRandomMelody(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
}

// Unit is the reference machine: it passes its input through unmodified.
// It has no parameters and draws no entropy.
type Unit struct {
	params *param.List
}

// NewUnit builds a Unit machine.
func NewUnit() *Unit {
	list, _ := param.NewList()
	return &Unit{params: list}
}

func (u *Unit) Name() string                { return "UNIT" }
func (u *Unit) Generate(_ EntropySource)     {}
func (u *Unit) Params() *param.List          { return u.params }
func (u *Unit) Apply(seq sequence.Sequence) sequence.Sequence {
	return seq
}
