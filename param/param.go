// Package param implements the generic Parameter/ParamList value types
// shared by every machine and track in Microgroove. A Parameter holds a
// bounded raw value tagged with a Kind describing which enum (if any) the
// raw byte decodes to; concrete enum decoding lives in the package that
// owns that enum (quantizer.Scale, part.Part, machine's machine IDs, and
// so on) to keep this package a leaf with no dependents upstream of it.
package param

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a parameter would be constructed with a
// default value outside its own min/max bounds. This is a construction-time
// contract violation; it should never be reachable once a binary is wired up
// correctly, but callers are expected to check it rather than trust it away.
var ErrOutOfRange = errors.New("param: value out of range")

// ErrListFull is returned when a ParamList would exceed its fixed capacity.
var ErrListFull = errors.New("param: list is full")

// Capacity is the maximum number of parameters a ParamList can hold, per
// track or machine.
const Capacity = 6

// Kind tags which family of value a Parameter's raw byte represents.
type Kind uint8

const (
	KindNumber Kind = iota
	KindTimeDivision
	KindRhythmMachineID
	KindMelodyMachineID
	KindNote
	KindScale
	KindKey
	KindPart
	KindInstrument
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTimeDivision:
		return "time_division"
	case KindRhythmMachineID:
		return "rhythm_machine_id"
	case KindMelodyMachineID:
		return "melody_machine_id"
	case KindNote:
		return "note"
	case KindScale:
		return "scale"
	case KindKey:
		return "key"
	case KindPart:
		return "part"
	case KindInstrument:
		return "instrument"
	default:
		return "unknown"
	}
}

// Parameter is a named, bounded, wrapping-increment value. Its name is
// meant for an OLED-style readout, so it's kept short.
type Parameter struct {
	name  string
	kind  Kind
	value uint8
	min   uint8
	max   uint8
}

// New builds a Parameter of the given kind with the given bounds and
// default value, and reports ErrOutOfRange if the default falls outside
// [min, max].
func New(name string, kind Kind, min, max, def uint8) (*Parameter, error) {
	if def < min || def > max {
		return nil, fmt.Errorf("param %q: default %d not in [%d, %d]: %w", name, def, min, max, ErrOutOfRange)
	}
	return &Parameter{name: name, kind: kind, value: def, min: min, max: max}, nil
}

// NewNumber is a convenience constructor for a plain numeric parameter.
func NewNumber(name string, min, max, def uint8) (*Parameter, error) {
	return New(name, KindNumber, min, max, def)
}

// Name returns the parameter's short display name.
func (p *Parameter) Name() string { return p.name }

// Kind returns which family of value this parameter's raw byte represents.
func (p *Parameter) Kind() Kind { return p.kind }

// Raw returns the current raw byte value.
func (p *Parameter) Raw() uint8 { return p.value }

// Min returns the lower bound (inclusive) of the parameter's raw value.
func (p *Parameter) Min() uint8 { return p.min }

// Max returns the upper bound (inclusive) of the parameter's raw value.
func (p *Parameter) Max() uint8 { return p.max }

// SetRaw assigns the raw value directly, reporting ErrOutOfRange if it
// falls outside the parameter's bounds.
func (p *Parameter) SetRaw(v uint8) error {
	if v < p.min || v > p.max {
		return fmt.Errorf("param %q: %d not in [%d, %d]: %w", p.name, v, p.min, p.max, ErrOutOfRange)
	}
	p.value = v
	return nil
}

// Increment nudges the parameter's value by n, wrapping around within
// [min, max] rather than clamping or saturating.
func (p *Parameter) Increment(n int) {
	size := int(p.max) - int(p.min) + 1
	a := int(p.value) - int(p.min)
	p.value = uint8(wrappingAdd(a, n, size) + int(p.min))
}

// wrappingAdd adds b to a modulo size, treating a and b as living in a
// ring of the given size starting at 0.
func wrappingAdd(a, b, size int) int {
	return mod(a+mod(b, size), size)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// List is a fixed-capacity, ordered collection of parameters, the shape
// every track and every machine exposes for the input mapper to walk.
type List struct {
	items []*Parameter
}

// NewList builds a List from the given parameters, reporting ErrListFull
// if there are more than Capacity of them.
func NewList(params ...*Parameter) (*List, error) {
	if len(params) > Capacity {
		return nil, fmt.Errorf("param list: %d params exceeds capacity %d: %w", len(params), Capacity, ErrListFull)
	}
	items := make([]*Parameter, len(params))
	copy(items, params)
	return &List{items: items}, nil
}

// Len returns the number of parameters in the list.
func (l *List) Len() int { return len(l.items) }

// At returns the parameter at index i, or nil if i is out of range.
func (l *List) At(i int) *Parameter {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Increment nudges the value of the parameter at index i by n. It is a
// no-op if i is out of range.
func (l *List) Increment(i int, n int) {
	p := l.At(i)
	if p == nil {
		return
	}
	p.Increment(n)
}
