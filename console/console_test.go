package console

import (
	"context"
	"strings"
	"testing"

	"github.com/microgroove/sequencer/input"
	"github.com/microgroove/sequencer/sequencer"
	"github.com/microgroove/sequencer/track"
)

type zeroEntropy struct{}

func (zeroEntropy) RandomU64() uint64 { return 0 }

func newTestHandler() (*Handler, *input.Mapper) {
	seq := sequencer.New()
	_ = seq.SetTrack(0, track.New(0))
	m := input.NewMapper(seq)
	return New(m, zeroEntropy{}, nil), m
}

func TestButtonCommandCyclesMode(t *testing.T) {
	h, m := newTestHandler()
	if err := h.ProcessCommand(context.Background(), "button 0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Mode != input.ModeSequence {
		t.Errorf("Mode = %v, want Sequence", m.Mode)
	}
}

func TestButtonCommandRejectsBadIndex(t *testing.T) {
	h, _ := newTestHandler()
	if err := h.ProcessCommand(context.Background(), "button 9"); err == nil {
		t.Error("expected an error for an out-of-range button index")
	}
}

func TestEncCommandAppliesSingleDelta(t *testing.T) {
	h, m := newTestHandler()
	if err := h.ProcessCommand(context.Background(), "enc 1 4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Seq.Track(0).Length; got != 12 {
		t.Errorf("track length = %d, want 12", got)
	}
}

func TestDeltasCommandAppliesAllSix(t *testing.T) {
	h, m := newTestHandler()
	if err := h.ProcessCommand(context.Background(), "deltas - 2 - - - -"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Seq.Track(0).Length; got != 10 {
		t.Errorf("track length = %d, want 10", got)
	}
}

func TestDeltasCommandRejectsWrongArgCount(t *testing.T) {
	h, _ := newTestHandler()
	if err := h.ProcessCommand(context.Background(), "deltas 1 2 3"); err == nil {
		t.Error("expected an error for the wrong number of delta tokens")
	}
}

func TestTransportCommands(t *testing.T) {
	h, m := newTestHandler()
	_ = h.ProcessCommand(context.Background(), "start")
	if !m.Seq.Playing() {
		t.Fatal("expected playing after 'start'")
	}
	_ = h.ProcessCommand(context.Background(), "stop")
	if m.Seq.Playing() {
		t.Fatal("expected stopped after 'stop'")
	}
	_ = h.ProcessCommand(context.Background(), "continue")
	if !m.Seq.Playing() {
		t.Fatal("expected playing after 'continue'")
	}
}

func TestAICommandWithoutClientErrors(t *testing.T) {
	h, _ := newTestHandler()
	if err := h.ProcessCommand(context.Background(), "ai make it louder"); err == nil {
		t.Error("expected an error when no ai client is configured")
	}
}

func TestUnknownCommandErrors(t *testing.T) {
	h, _ := newTestHandler()
	if err := h.ProcessCommand(context.Background(), "frobnicate"); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestReadLoopStopsOnQuit(t *testing.T) {
	h, _ := newTestHandler()
	reader := strings.NewReader("show\nquit\nenc 0 1\n")
	if err := h.ReadLoop(context.Background(), reader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
