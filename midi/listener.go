package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// EventKind classifies an inbound realtime message.
type EventKind uint8

const (
	// EventOther is anything that isn't a clock/transport byte; it
	// carries the raw message for soft-thru.
	EventOther EventKind = iota
	EventClock
	EventStart
	EventStop
	EventContinue
)

// Realtime status bytes, per the MIDI 1.0 spec.
const (
	statusTimingClock byte = 0xF8
	statusStart       byte = 0xFA
	statusContinue    byte = 0xFB
	statusStop        byte = 0xFC
)

// Event is one decoded inbound message.
type Event struct {
	Kind EventKind
	Raw  midi.Message
}

// Listener opens a MIDI input port and decodes its realtime byte
// stream, forwarding every message (recognized or not) to a callback
// along with its classification, so the caller can thru anything it
// doesn't specifically handle.
type Listener struct {
	port drivers.In
	stop func()
}

// OpenListener opens the MIDI input port at the given index and begins
// decoding messages, invoking onEvent for each one. onEvent must not
// block: it runs on the driver's listening goroutine.
func OpenListener(portIndex int, onEvent func(Event)) (*Listener, error) {
	port, err := midi.InPort(portIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get MIDI input port %d: %w", portIndex, err)
	}

	stop, err := midi.ListenTo(port, func(msg midi.Message, _ int32) {
		onEvent(classify(msg))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to listen on MIDI input port %d: %w", portIndex, err)
	}

	return &Listener{port: port, stop: stop}, nil
}

// Close stops listening and releases the input port.
func (l *Listener) Close() error {
	if l.stop != nil {
		l.stop()
	}
	return l.port.Close()
}

func classify(msg midi.Message) Event {
	raw := msg.Bytes()
	if len(raw) == 1 {
		switch raw[0] {
		case statusTimingClock:
			return Event{Kind: EventClock, Raw: msg}
		case statusStart:
			return Event{Kind: EventStart, Raw: msg}
		case statusStop:
			return Event{Kind: EventStop, Raw: msg}
		case statusContinue:
			return Event{Kind: EventContinue, Raw: msg}
		}
	}
	return Event{Kind: EventOther, Raw: msg}
}
