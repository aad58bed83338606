// Package playback dispatches the scheduler's output: immediate
// messages go out right away, delayed ones (gated note-offs, swung
// note-ons) are scheduled with time.AfterFunc, mirroring how a single
// MIDI clock tick can fan out into sends spread over the following
// tens of milliseconds.
package playback

import (
	"fmt"
	"time"

	"github.com/microgroove/sequencer/sequencer"
)

// Sender is the minimal MIDI output surface the engine needs; midi.Output
// satisfies it, and tests can swap in a fake.
type Sender interface {
	Send(msg sequencer.MidiMessage) error
}

// Engine turns scheduler ticks into MIDI output.
type Engine struct {
	out Sender
	seq *sequencer.Sequencer
}

// New creates an Engine that sends through out and advances seq.
func New(out Sender, seq *sequencer.Sequencer) *Engine {
	return &Engine{out: out, seq: seq}
}

// HandleClockTick advances the scheduler for one incoming MIDI clock
// pulse arriving at nowUs and dispatches whatever messages it produces.
func (e *Engine) HandleClockTick(nowUs uint64) {
	for _, msg := range e.seq.Advance(nowUs) {
		e.dispatch(msg)
	}
}

func (e *Engine) dispatch(msg sequencer.ScheduledMessage) {
	if msg.DelayUs == 0 {
		e.send(msg.Message)
		return
	}
	time.AfterFunc(time.Duration(msg.DelayUs)*time.Microsecond, func() {
		e.send(msg.Message)
	})
}

func (e *Engine) send(msg sequencer.MidiMessage) {
	if err := e.out.Send(msg); err != nil {
		fmt.Printf("Error sending MIDI: %v\n", err)
	}
}
