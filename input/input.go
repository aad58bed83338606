// Package input implements the encoder/button mapper: the translation
// from raw front-panel deltas into parameter increments, track
// selection, machine swaps, and sequence regeneration.
package input

import (
	"github.com/microgroove/sequencer/generator"
	"github.com/microgroove/sequencer/machine"
	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/sequencer"
	"github.com/microgroove/sequencer/track"
)

// Mode selects which parameter list the six encoders currently edit.
type Mode uint8

const (
	ModeTrack Mode = iota
	ModeSequence
	ModeRhythm
	ModeGroove
	ModeMelody
	ModeHarmony
)

func (m Mode) String() string {
	switch m {
	case ModeTrack:
		return "TRACK"
	case ModeSequence:
		return "SEQUENCE"
	case ModeRhythm:
		return "RHYTHM"
	case ModeGroove:
		return "GROOVE"
	case ModeMelody:
		return "MELODY"
	case ModeHarmony:
		return "HARMONY"
	default:
		return "????"
	}
}

// modePairs lists the three button-toggled mode pairs in button order.
var modePairs = [3][2]Mode{
	{ModeTrack, ModeSequence},
	{ModeRhythm, ModeGroove},
	{ModeMelody, ModeHarmony},
}

// PressButton returns the mode that pressing the pairIndex'th button
// (0, 1, or 2) transitions to from current: it toggles within the pair
// if current is already a member, otherwise it jumps to the pair's
// first mode.
func PressButton(current Mode, pairIndex int) Mode {
	pair := modePairs[pairIndex]
	switch current {
	case pair[0]:
		return pair[1]
	case pair[1]:
		return pair[0]
	default:
		return pair[0]
	}
}

// EncoderDeltas is one poll's worth of the six front-panel encoders.
// A nil entry means that encoder hasn't moved since the last poll.
type EncoderDeltas [6]*int8

// Mapper holds the live input-mode state and the track/generator slots
// it edits. One Mapper drives one sequencer.
type Mapper struct {
	Mode         Mode
	CurrentTrack int

	Seq        *sequencer.Sequencer
	Generators [sequencer.TrackCount]*generator.SequenceGenerator
}

// NewMapper builds a Mapper in Track mode on track 0, with a default
// generator wired to every track slot.
func NewMapper(seq *sequencer.Sequencer) *Mapper {
	m := &Mapper{Seq: seq}
	for i := range m.Generators {
		m.Generators[i] = generator.New()
	}
	return m
}

// Apply processes one poll's worth of encoder deltas against the
// mapper's current mode.
func (m *Mapper) Apply(entropy machine.EntropySource, deltas EncoderDeltas) {
	switch m.Mode {
	case ModeTrack:
		m.applyTrack(entropy, deltas)
	case ModeSequence:
		m.applySequence(deltas)
	case ModeRhythm:
		// Only Rhythm mode re-draws entropy on param change: it's the
		// mode most likely to touch a machine (Grids) whose output
		// depends on cached randomness, not just its live params.
		if m.applyParamList(deltas, m.currentGenerator().RhythmMachine.Params()) {
			m.currentGenerator().Generate(entropy)
			m.refresh()
		}
	case ModeGroove:
		if m.applyParamList(deltas, m.currentGenerator().GrooveParams) {
			m.refresh()
		}
	case ModeMelody:
		if m.applyParamList(deltas, m.currentGenerator().MelodyMachine.Params()) {
			m.refresh()
		}
	case ModeHarmony:
		if m.applyParamList(deltas, m.currentGenerator().HarmonyParams) {
			m.refresh()
		}
	}
}

func (m *Mapper) currentGenerator() *generator.SequenceGenerator {
	return m.Generators[m.CurrentTrack]
}

func (m *Mapper) currentTrack() *track.Track {
	return m.Seq.Track(m.CurrentTrack)
}

func (m *Mapper) refresh() {
	tr := m.currentTrack()
	if tr == nil {
		return
	}
	tr.Sequence = m.currentGenerator().Apply(tr.Length)
}

// applyTrack implements the Track mode: encoder 2 selects the current
// track (with wraparound); every other present delta increments that
// track's own parameter list, with machine-id changes swapping the
// bound machine and forcing a fresh generate.
func (m *Mapper) applyTrack(entropy machine.EntropySource, deltas EncoderDeltas) {
	if deltas[track.ParamTrackNumber] != nil {
		delta := int(*deltas[track.ParamTrackNumber])
		n := sequencer.TrackCount
		m.CurrentTrack = ((m.CurrentTrack+delta)%n + n) % n
	}

	otherDeltaPresent := false
	for i, d := range deltas {
		if i == track.ParamTrackNumber {
			continue
		}
		if d != nil {
			otherDeltaPresent = true
			break
		}
	}
	if m.currentTrack() == nil {
		if !otherDeltaPresent {
			return
		}
		_ = m.Seq.SetTrack(m.CurrentTrack, track.New(uint8(m.CurrentTrack)))
	}

	tr := m.currentTrack()
	gen := m.currentGenerator()
	forceRefresh := false
	lengthChanged := false

	for i, d := range deltas {
		if d == nil || i == track.ParamTrackNumber {
			continue
		}
		tr.Params.Increment(i, int(*d))

		switch i {
		case track.ParamRhythmMachineID:
			if newID, err := machine.RhythmMachineIDFromByte(tr.Params.At(i).Raw()); err == nil && newID != tr.RhythmMachineID {
				tr.RhythmMachineID = newID
				gen.RhythmMachine, _ = machine.NewRhythmMachine(newID)
				forceRefresh = true
			}
		case track.ParamMelodyMachineID:
			if newID, err := machine.MelodyMachineIDFromByte(tr.Params.At(i).Raw()); err == nil && newID != tr.MelodyMachineID {
				tr.MelodyMachineID = newID
				gen.MelodyMachine, _ = machine.NewMelodyMachine(newID)
				forceRefresh = true
			}
		case track.ParamLength:
			lengthChanged = true
		}
	}

	tr.ApplyParams()

	if forceRefresh {
		gen.Generate(entropy)
		m.refresh()
	} else if lengthChanged {
		m.refresh()
	}
}

// applySequence implements the Sequence mode: deltas increment the
// sequencer's own parameter list (currently just SWING).
func (m *Mapper) applySequence(deltas EncoderDeltas) {
	if m.applyParamList(deltas, m.Seq.Params) {
		m.Seq.ApplySwingParams()
	}
}

// applyParamList increments every present delta against params at the
// matching index, ignoring deltas beyond the list's length. It reports
// whether anything actually changed.
func (m *Mapper) applyParamList(deltas EncoderDeltas, params *param.List) bool {
	changed := false
	for i, d := range deltas {
		if d == nil || i >= params.Len() {
			continue
		}
		params.Increment(i, int(*d))
		changed = true
	}
	return changed
}
