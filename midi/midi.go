// Package midi wraps gomidi/v2 output and input ports: a thin sender
// for the NoteOn/NoteOff vocabulary the scheduler produces, and a
// realtime-byte listener that decodes clock/transport messages while
// passing everything else through unchanged (soft thru).
package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // auto-register RtMIDI driver

	"github.com/microgroove/sequencer/sequencer"
)

// Output is a MIDI output connection.
type Output struct {
	port drivers.Out
	send func(msg midi.Message) error
}

// ListPorts returns the names of the available MIDI output ports.
func ListPorts() ([]string, error) {
	ports := midi.GetOutPorts()
	names := make([]string, len(ports))
	for i, port := range ports {
		names[i] = port.String()
	}
	return names, nil
}

// ListInPorts returns the names of the available MIDI input ports.
func ListInPorts() ([]string, error) {
	ports := midi.GetInPorts()
	names := make([]string, len(ports))
	for i, port := range ports {
		names[i] = port.String()
	}
	return names, nil
}

// Open opens a MIDI output port by index.
func Open(portIndex int) (*Output, error) {
	port, err := midi.OutPort(portIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get MIDI port %d: %w", portIndex, err)
	}

	send, err := midi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender: %w", err)
	}

	return &Output{port: port, send: send}, nil
}

// Close closes the MIDI output port.
func (o *Output) Close() error {
	return o.port.Close()
}

// NoteOn sends a MIDI Note On message.
// note: MIDI note number (0-127, where C4=60). velocity: 0-127.
// channel: MIDI channel (0-15, where 0 = channel 1).
func (o *Output) NoteOn(channel, note, velocity uint8) error {
	return o.send(midi.NoteOn(channel, note, velocity))
}

// NoteOff sends a MIDI Note Off message.
func (o *Output) NoteOff(channel, note uint8) error {
	return o.send(midi.NoteOff(channel, note))
}

// Send dispatches a scheduler MidiMessage as the corresponding MIDI
// channel voice message.
func (o *Output) Send(msg sequencer.MidiMessage) error {
	switch msg.Kind {
	case sequencer.NoteOn:
		return o.NoteOn(msg.Channel, msg.Note, msg.Velocity)
	case sequencer.NoteOff:
		return o.NoteOff(msg.Channel, msg.Note)
	default:
		return fmt.Errorf("midi: unknown message kind %v", msg.Kind)
	}
}

// SendRaw passes an arbitrary MIDI message through unmodified, for
// soft-thru of anything that isn't a recognized clock byte.
func (o *Output) SendRaw(msg midi.Message) error {
	return o.send(msg)
}
