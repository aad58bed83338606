// Package track implements Track, the channel-bound, time-divided view
// over a Sequence that the scheduler actually plays.
package track

import (
	"github.com/microgroove/sequencer/machine"
	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/sequence"
)

// TimeDivision selects how many clock ticks make up one step, expressed
// as pulses-per-quarter-note (ppqn) at the standard 24 ppqn clock.
type TimeDivision uint8

const (
	ThirtySecond TimeDivision = 3
	Sixteenth    TimeDivision = 6
	Eighth       TimeDivision = 12
	Quarter      TimeDivision = 24
	Whole        TimeDivision = 96
)

// timeDivisions lists the valid TimeDivision values in ascending order,
// the order the TD parameter steps through.
var timeDivisions = []TimeDivision{ThirtySecond, Sixteenth, Eighth, Quarter, Whole}

// TimeDivisionFromIndex maps a 0-based parameter index to a TimeDivision.
func TimeDivisionFromIndex(i uint8) TimeDivision {
	if int(i) >= len(timeDivisions) {
		i = uint8(len(timeDivisions) - 1)
	}
	return timeDivisions[i]
}

// IndexOf returns td's position among the valid time divisions, for use
// as a parameter's raw value.
func (td TimeDivision) IndexOf() uint8 {
	for i, v := range timeDivisions {
		if v == td {
			return uint8(i)
		}
	}
	return 0
}

// Param indices within a Track's parameter list.
const (
	ParamRhythmMachineID = 0
	ParamLength           = 1
	ParamTrackNumber      = 2
	ParamMelodyMachineID  = 3
	ParamSpeed            = 4
	ParamMidiChannel      = 5
)

// Track is a channel-bound, time-divided view over a Sequence.
type Track struct {
	Length       int
	TimeDivision TimeDivision
	MidiChannel  uint8
	Sequence     sequence.Sequence

	RhythmMachineID machine.RhythmMachineID
	MelodyMachineID machine.MelodyMachineID

	Params *param.List
}

// DefaultLength is the resting step count a new track starts at: 8,
// because techno.
const DefaultLength = 8

// New builds a default 8-step track on the given MIDI channel, unit
// rhythm and melody machines, and a sixteenth-note time division.
func New(midiChannel uint8) *Track {
	rhythmID, _ := param.New("RHYTHM", param.KindRhythmMachineID, 0, uint8(machine.RhythmMachineIDCount-1), uint8(machine.RhythmUnit))
	length, _ := param.NewNumber("LEN", 1, sequence.MaxSteps, DefaultLength)
	trackNum, _ := param.NewNumber("TRACK", 0, 7, 0)
	melodyID, _ := param.New("MELODY", param.KindMelodyMachineID, 0, uint8(machine.MelodyMachineIDCount-1), uint8(machine.MelodyUnit))
	speed, _ := param.New("SPD", param.KindTimeDivision, 0, uint8(len(timeDivisions)-1), Sixteenth.IndexOf())
	channel, _ := param.NewNumber("CHAN", 0, 15, midiChannel)

	params, _ := param.NewList(rhythmID, length, trackNum, melodyID, speed, channel)

	t := &Track{
		Length:          DefaultLength,
		TimeDivision:    Sixteenth,
		MidiChannel:     midiChannel,
		Sequence:        sequence.New(DefaultLength),
		RhythmMachineID: machine.RhythmUnit,
		MelodyMachineID: machine.MelodyUnit,
		Params:          params,
	}
	return t
}

// ApplyParams writes parameter indices [1]/[4]/[5] back to Length,
// TimeDivision and MidiChannel. Indices 0, 2, 3 are deliberately not
// consumed here: they're read directly by the input mapper, which
// handles machine replacement and the track-number escape hatch itself.
func (t *Track) ApplyParams() {
	t.Length = int(t.Params.At(ParamLength).Raw())
	t.TimeDivision = TimeDivisionFromIndex(t.Params.At(ParamSpeed).Raw())
	t.MidiChannel = t.Params.At(ParamMidiChannel).Raw()
}

// ShouldPlayOnTick reports whether this track has a step boundary at the
// given tick.
func (t *Track) ShouldPlayOnTick(tick uint32) bool {
	return tick%uint32(t.TimeDivision) == 0
}

// StepNum returns which step of the sequence plays at the given tick,
// independent of whether tick actually falls on a step boundary.
func (t *Track) StepNum(tick uint32) int {
	if t.Length == 0 {
		return 0
	}
	return int((tick / uint32(t.TimeDivision)) % uint32(t.Length))
}

// StepAtTick returns the step that should sound at tick, or nil if tick
// isn't a step boundary for this track's time division, or the step
// itself is a rest.
func (t *Track) StepAtTick(tick uint32) *sequence.Step {
	if !t.ShouldPlayOnTick(tick) {
		return nil
	}
	return t.Sequence.At(t.StepNum(tick))
}
