// Package sequencer implements the scheduler: a slot vector of tracks, a
// stopped/playing transport state machine, a tick counter, a tick-period
// estimator, and a swing model. On every external clock tick it emits the
// list of MIDI messages that tick produces, each tagged with how long to
// delay it.
package sequencer

import (
	"fmt"
	"sync"

	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/track"
)

// TrackCount is the number of track slots the sequencer holds.
const TrackCount = 8

// MaxMessagesPerTick bounds how many scheduled messages a single Advance
// call can return.
const MaxMessagesPerTick = TrackCount * 2

// MidiHistorySampleCount is the size of the tick-period estimator's ring
// buffer.
const MidiHistorySampleCount = 6

// DefaultTickDurationUs is the tick length assumed before any real clock
// pulses have arrived: roughly 130 BPM at the standard 24 ppqn.
const DefaultTickDurationUs = 19230

// ErrSlotFull names the condition of placing a track at an
// already-occupied slot index. SetTrack overwrites an occupied slot and
// does not return it; no Sequencer method returns it.
var ErrSlotFull = fmt.Errorf("sequencer: track slot is occupied")

// ErrOutOfRange is returned for a track slot index outside [0, TrackCount).
var ErrOutOfRange = fmt.Errorf("sequencer: track slot index out of range")

// Swing selects how far the "and" of each beat is pushed late. Its
// underlying value is the percentage itself, so SwingNone's 50 makes the
// (swing-50)/8 delay formula a no-op without a special case.
type Swing uint8

const (
	SwingNone  Swing = 50
	SwingMpc54 Swing = 54
	SwingMpc58 Swing = 58
	SwingMpc62 Swing = 62
	SwingMpc66 Swing = 66
	SwingMpc70 Swing = 70
	SwingMpc75 Swing = 75
)

// swings lists the valid Swing values in the order the SWING parameter
// steps through.
var swings = []Swing{SwingNone, SwingMpc54, SwingMpc58, SwingMpc62, SwingMpc66, SwingMpc70, SwingMpc75}

// SwingFromIndex maps a 0-based parameter index to a Swing value.
func SwingFromIndex(i uint8) Swing {
	if int(i) >= len(swings) {
		i = uint8(len(swings) - 1)
	}
	return swings[i]
}

// IndexOf returns sw's position among the valid swing values, for use as
// a parameter's raw value.
func (sw Swing) IndexOf() uint8 {
	for i, v := range swings {
		if v == sw {
			return uint8(i)
		}
	}
	return 0
}

// Param indices within a Sequencer's own parameter list, as exposed to
// the Sequence input mode.
const ParamSwing = 0

// MessageKind distinguishes a note-on from a note-off.
type MessageKind uint8

const (
	NoteOn MessageKind = iota
	NoteOff
)

// MidiMessage is a channel voice message the scheduler wants sent.
type MidiMessage struct {
	Kind     MessageKind
	Channel  uint8
	Note     uint8
	Velocity uint8
}

// ScheduledMessage pairs a MidiMessage with how long after the tick that
// produced it to send it. A DelayUs of 0 means send immediately.
type ScheduledMessage struct {
	Message MidiMessage
	DelayUs uint64
}

// Sequencer is the scheduler: a slot vector of tracks plus transport and
// timing state. All exported methods are goroutine-safe.
type Sequencer struct {
	mu sync.RWMutex

	tracks  [TrackCount]*track.Track
	tick    uint32
	playing bool
	swing   Swing

	hasLastTick       bool
	lastTickInstantUs uint64
	tickHistory       [MidiHistorySampleCount]uint64
	tickHistoryLen    int
	tickHistoryNext   int

	// Params is the Sequence input mode's parameter list: just [SWING],
	// the rest of the six slots reserved. See ApplySwingParams.
	Params *param.List
}

// New returns a Sequencer with no tracks loaded, stopped, and swing off.
func New() *Sequencer {
	swingParam, _ := param.New("SWING", param.KindNumber, 0, uint8(len(swings)-1), SwingNone.IndexOf())
	params, _ := param.NewList(swingParam)
	return &Sequencer{swing: SwingNone, Params: params}
}

// ApplySwingParams writes the SWING parameter back to the live swing
// setting. Called by the input mapper after incrementing Params in
// Sequence mode.
func (s *Sequencer) ApplySwingParams() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swing = SwingFromIndex(s.Params.At(ParamSwing).Raw())
}

// SetTrack places t in slot i, replacing whatever was there.
func (s *Sequencer) SetTrack(i int, t *track.Track) error {
	if i < 0 || i >= TrackCount {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracks[i] = t
	return nil
}

// Track returns the track at slot i, or nil if the slot is empty or i is
// out of range.
func (s *Sequencer) Track(i int) *track.Track {
	if i < 0 || i >= TrackCount {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracks[i]
}

// Swing returns the current swing setting.
func (s *Sequencer) Swing() Swing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.swing
}

// SetSwing changes the swing setting.
func (s *Sequencer) SetSwing(sw Swing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swing = sw
}

// Tick returns the current tick counter.
func (s *Sequencer) Tick() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Playing reports whether the transport is in the Playing state.
func (s *Sequencer) Playing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playing
}

// StartPlaying resets the tick counter and enters Playing, from either
// transport state.
func (s *Sequencer) StartPlaying() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick = 0
	s.playing = true
}

// StopPlaying enters Stopped, preserving the tick counter.
func (s *Sequencer) StopPlaying() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

// ContinuePlaying enters Playing, preserving the tick counter.
func (s *Sequencer) ContinuePlaying() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
}

// Advance processes one external clock tick arriving at nowUs (a
// monotonic microsecond timestamp) and returns the messages it produces.
// It always updates the tick-period estimator, even while stopped, so
// the estimate stays warm for whenever playback resumes.
func (s *Sequencer) Advance(nowUs uint64) []ScheduledMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickDuration := s.averageTickDuration(nowUs)
	if !s.playing {
		return nil
	}

	applySwing := s.swing != SwingNone && s.tick%12 == 6
	var swingDelay uint64
	if applySwing {
		swingDelay = tickDuration * uint64(s.swing-50) / 8
	}

	messages := make([]ScheduledMessage, 0, MaxMessagesPerTick)
	for _, tr := range s.tracks {
		if tr == nil {
			continue
		}
		step := tr.StepAtTick(s.tick)
		if step == nil {
			continue
		}

		noteOnDelay := swingDelay
		if step.Delay > 0 {
			noteOnDelay += tickDuration * uint64(tr.TimeDivision) * uint64(step.Delay) / 100
		}
		messages = append(messages, ScheduledMessage{
			Message: MidiMessage{Kind: NoteOn, Channel: tr.MidiChannel, Note: step.Note, Velocity: step.Velocity},
			DelayUs: noteOnDelay,
		})

		gateUs := tickDuration * uint64(tr.TimeDivision) * uint64(step.LengthStepCents) / 100
		messages = append(messages, ScheduledMessage{
			Message: MidiMessage{Kind: NoteOff, Channel: tr.MidiChannel, Note: step.Note, Velocity: 0},
			DelayUs: gateUs + swingDelay,
		})
	}
	s.tick++

	if len(messages) > MaxMessagesPerTick {
		messages = messages[len(messages)-MaxMessagesPerTick:]
	}
	return messages
}

// averageTickDuration updates the ring buffer with the gap since the
// last tick and returns the mean of its populated entries, or the
// default if this is the first tick seen. Must be called with mu held.
func (s *Sequencer) averageTickDuration(nowUs uint64) uint64 {
	defer func() {
		s.lastTickInstantUs = nowUs
		s.hasLastTick = true
	}()

	if !s.hasLastTick {
		return DefaultTickDurationUs
	}

	gap := nowUs - s.lastTickInstantUs
	s.tickHistory[s.tickHistoryNext] = gap
	s.tickHistoryNext = (s.tickHistoryNext + 1) % MidiHistorySampleCount
	if s.tickHistoryLen < MidiHistorySampleCount {
		s.tickHistoryLen++
	}

	var sum uint64
	for i := 0; i < s.tickHistoryLen; i++ {
		sum += s.tickHistory[i]
	}
	return sum / uint64(s.tickHistoryLen)
}
