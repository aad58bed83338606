// Package console is the interactive/batch CLI harness: it simulates
// the three mode-cycle buttons and six encoders a real Microgroove unit
// exposes, driving the input mapper and scheduler the same way the
// front panel would.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/microgroove/sequencer/ai"
	"github.com/microgroove/sequencer/input"
	"github.com/microgroove/sequencer/machine"
	"github.com/microgroove/sequencer/param"
)

// Handler processes console commands against a live input mapper.
type Handler struct {
	mapper  *input.Mapper
	entropy machine.EntropySource
	ai      *ai.Client
}

// New creates a command handler. ai may be nil, in which case the "ai"
// command reports that natural-language assist is unavailable.
func New(mapper *input.Mapper, entropy machine.EntropySource, aiClient *ai.Client) *Handler {
	return &Handler{mapper: mapper, entropy: entropy, ai: aiClient}
}

// ProcessCommand parses and executes a single command line.
func (h *Handler) ProcessCommand(ctx context.Context, cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)
	if cmdLine == "" {
		return h.handleShow()
	}

	parts := strings.Fields(cmdLine)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "button":
		return h.handleButton(parts)
	case "enc":
		return h.handleEnc(parts)
	case "deltas":
		return h.handleDeltas(parts)
	case "start":
		h.mapper.Seq.StartPlaying()
		fmt.Println("playing (tick reset to 0)")
		return nil
	case "stop":
		h.mapper.Seq.StopPlaying()
		fmt.Println("stopped")
		return nil
	case "continue":
		h.mapper.Seq.ContinuePlaying()
		fmt.Println("playing (tick preserved)")
		return nil
	case "show":
		return h.handleShow()
	case "ai":
		return h.handleAI(ctx, parts)
	case "help":
		return h.handleHelp()
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// handleButton: button <0|1|2>
func (h *Handler) handleButton(parts []string) error {
	if len(parts) != 2 {
		return fmt.Errorf("usage: button <0|1|2>")
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 0 || n > 2 {
		return fmt.Errorf("invalid button index: %s (want 0, 1, or 2)", parts[1])
	}
	h.mapper.Mode = input.PressButton(h.mapper.Mode, n)
	fmt.Printf("mode -> %s\n", h.mapper.Mode)
	return nil
}

// handleEnc: enc <0-5> <delta>
func (h *Handler) handleEnc(parts []string) error {
	if len(parts) != 3 {
		return fmt.Errorf("usage: enc <0-5> <delta> (e.g., 'enc 1 3')")
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 || idx > 5 {
		return fmt.Errorf("invalid encoder index: %s (want 0-5)", parts[1])
	}
	delta, err := strconv.Atoi(parts[2])
	if err != nil || delta < -8 || delta > 8 {
		return fmt.Errorf("invalid delta: %s (want an integer in [-8, 8])", parts[2])
	}
	v := int8(delta)
	var deltas input.EncoderDeltas
	deltas[idx] = &v
	h.mapper.Apply(h.entropy, deltas)
	fmt.Printf("applied encoder %d delta %d in %s mode\n", idx, delta, h.mapper.Mode)
	return nil
}

// handleDeltas: deltas <d0> <d1> <d2> <d3> <d4> <d5>, each "-" or an integer,
// applied as one simultaneous poll of all six encoders.
func (h *Handler) handleDeltas(parts []string) error {
	if len(parts) != 7 {
		return fmt.Errorf("usage: deltas <d0> <d1> <d2> <d3> <d4> <d5>, each \"-\" or an integer")
	}
	var deltas input.EncoderDeltas
	for i, tok := range parts[1:] {
		if tok == "-" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < -8 || n > 8 {
			return fmt.Errorf("encoder %d: invalid delta %q (want \"-\" or an integer in [-8, 8])", i, tok)
		}
		v := int8(n)
		deltas[i] = &v
	}
	h.mapper.Apply(h.entropy, deltas)
	fmt.Printf("applied deltas in %s mode\n", h.mapper.Mode)
	return nil
}

// handleShow prints a snapshot of the mapper and scheduler state.
func (h *Handler) handleShow() error {
	seq := h.mapper.Seq
	fmt.Printf("mode=%s track=%d playing=%v tick=%d swing=%d\n",
		h.mapper.Mode, h.mapper.CurrentTrack, seq.Playing(), seq.Tick(), seq.Swing())

	tr := seq.Track(h.mapper.CurrentTrack)
	if tr == nil {
		fmt.Println("current track slot is empty")
		return nil
	}
	fmt.Printf("track %d: len=%d channel=%d rhythm=%s melody=%s\n",
		h.mapper.CurrentTrack, tr.Length, tr.MidiChannel, tr.RhythmMachineID, tr.MelodyMachineID)
	return nil
}

// handleAI: ai <free text request>
func (h *Handler) handleAI(ctx context.Context, parts []string) error {
	if h.ai == nil {
		return fmt.Errorf("ai: no client configured (set ANTHROPIC_API_KEY)")
	}
	if len(parts) < 2 {
		return fmt.Errorf("usage: ai <what you want to happen>")
	}
	request := strings.Join(parts[1:], " ")

	labels := h.slotLabels()
	deltas, explanation, err := h.ai.Describe(ctx, h.mapper.Mode, labels, request)
	if err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	h.mapper.Apply(h.entropy, deltas)
	fmt.Println(explanation)
	return nil
}

// slotLabels names what each of the six encoders does in the mapper's
// current mode, for the ai package to prompt with.
func (h *Handler) slotLabels() ai.SlotLabels {
	gen := h.mapper.Generators[h.mapper.CurrentTrack]
	switch h.mapper.Mode {
	case input.ModeTrack:
		return ai.SlotLabels{"RHYTHM machine id", "LEN (step count)", "TRACK (selects current track)", "MELODY machine id", "SPD (time division)", "CHAN (MIDI channel)"}
	case input.ModeSequence:
		return paramListLabels(h.mapper.Seq.Params)
	case input.ModeRhythm:
		return paramListLabels(gen.RhythmMachine.Params())
	case input.ModeGroove:
		return paramListLabels(gen.GrooveParams)
	case input.ModeMelody:
		return paramListLabels(gen.MelodyMachine.Params())
	case input.ModeHarmony:
		return paramListLabels(gen.HarmonyParams)
	default:
		return ai.SlotLabels{}
	}
}

func paramListLabels(params *param.List) ai.SlotLabels {
	var labels ai.SlotLabels
	for i := 0; i < params.Len() && i < len(labels); i++ {
		p := params.At(i)
		labels[i] = fmt.Sprintf("%s (%d-%d)", p.Name(), p.Min(), p.Max())
	}
	return labels
}

func (h *Handler) handleHelp() error {
	fmt.Print(`Available commands:
  button <0|1|2>             Press a mode-cycle button (Track<->Sequence, Rhythm<->Groove, Melody<->Harmony)
  enc <0-5> <delta>          Turn one encoder by delta (-8..8)
  deltas <d0..d5>            Turn all six encoders at once; each is "-" or an integer
  start                      Start playback from tick 0
  stop                       Stop playback, preserving tick
  continue                   Resume playback, preserving tick
  show                       Show mapper and scheduler state
  ai <request>               Ask the AI assistant to turn the encoders for you
  help                       Show this help message
  quit                       Exit the program
  <enter>                    Show state (same as 'show')
`)
	return nil
}

// ReadLoop reads commands from reader until "quit" or EOF.
func (h *Handler) ReadLoop(ctx context.Context, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)

	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(strings.ToLower(line)) == "quit" {
			return nil
		}
		if err := h.ProcessCommand(ctx, line); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		fmt.Print("> ")
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}
