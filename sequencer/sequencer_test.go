package sequencer

import (
	"testing"

	"github.com/microgroove/sequencer/sequence"
	"github.com/microgroove/sequencer/track"
)

func sixteenthTrack(channel uint8) *track.Track {
	tr := track.New(channel)
	tr.TimeDivision = track.Sixteenth
	tr.Length = 16
	tr.Sequence = sequence.New(16)
	return tr
}

func TestAdvanceWhileStoppedProducesNoMessages(t *testing.T) {
	s := New()
	_ = s.SetTrack(0, sixteenthTrack(0))
	if msgs := s.Advance(0); msgs != nil {
		t.Errorf("Advance while stopped = %v, want nil", msgs)
	}
	if s.Tick() != 0 {
		t.Errorf("Tick() = %d, want 0 (stopped Advance must not increment)", s.Tick())
	}
}

func TestAdvanceUsesDefaultTickDurationOnFirstCall(t *testing.T) {
	s := New()
	_ = s.SetTrack(0, sixteenthTrack(0))
	s.StartPlaying()

	msgs := s.Advance(0)
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2 (one note-on/off pair)", len(msgs))
	}
	wantGate := uint64(DefaultTickDurationUs) * 6 * 80 / 100
	if msgs[1].DelayUs != wantGate {
		t.Errorf("NoteOff delay = %d, want %d", msgs[1].DelayUs, wantGate)
	}
	if msgs[1].Message.Kind != NoteOff {
		t.Fatalf("msgs[1].Kind = %v, want NoteOff", msgs[1].Message.Kind)
	}
}

func TestAdvanceOverFullBarProducesExpectedMessageCount(t *testing.T) {
	s := New()
	_ = s.SetTrack(0, sixteenthTrack(0))
	s.StartPlaying()

	var total int
	for i := uint64(0); i < 48; i++ {
		total += len(s.Advance(i * DefaultTickDurationUs))
	}
	// Sixteenth ppqn is 6; 48 ticks cross 8 step boundaries, each a pair.
	if total != 16 {
		t.Errorf("total messages over 48 ticks = %d, want 16", total)
	}
}

func TestTickDurationEstimatorAveragesRecentGaps(t *testing.T) {
	s := New()
	tr := track.New(0)
	tr.TimeDivision = track.ThirtySecond // ppqn 3
	tr.Length = 1
	tr.Sequence = sequence.New(1)
	_ = s.SetTrack(0, tr)
	s.StartPlaying()

	// tick 0: boundary, uses the default duration.
	msgs := s.Advance(0)
	wantGate0 := uint64(DefaultTickDurationUs) * 3 * 80 / 100
	if msgs[1].DelayUs != wantGate0 {
		t.Fatalf("tick 0 NoteOff delay = %d, want %d", msgs[1].DelayUs, wantGate0)
	}

	// tick 1: not a boundary, but records a 1000us gap.
	if msgs := s.Advance(1000); len(msgs) != 0 {
		t.Fatalf("tick 1 produced %d messages, want 0", len(msgs))
	}
	// tick 2: not a boundary, records a 2000us gap. Average so far: 1500.
	if msgs := s.Advance(3000); len(msgs) != 0 {
		t.Fatalf("tick 2 produced %d messages, want 0", len(msgs))
	}
	// tick 3: boundary. Records a 500us gap; average of {1000,2000,500} = 1166.
	msgs = s.Advance(3500)
	if len(msgs) != 2 {
		t.Fatalf("tick 3 produced %d messages, want 2", len(msgs))
	}
	wantTickDuration := uint64(1000+2000+500) / 3
	wantGate3 := wantTickDuration * 3 * 80 / 100
	if msgs[1].DelayUs != wantGate3 {
		t.Errorf("tick 3 NoteOff delay = %d, want %d", msgs[1].DelayUs, wantGate3)
	}
}

func TestSwingDelayAppliesOnlyOnOffbeatSixteenths(t *testing.T) {
	s := New()
	_ = s.SetTrack(0, sixteenthTrack(0))
	s.SetSwing(SwingMpc54)
	s.StartPlaying()

	var msgs []ScheduledMessage
	for i := uint64(0); i < 7; i++ {
		msgs = s.Advance(i * DefaultTickDurationUs)
	}
	// tick 6 is the 2nd sixteenth of the beat: 6%12==6, swing applies.
	wantSwingDelay := uint64(DefaultTickDurationUs) * (54 - 50) / 8
	wantGate := uint64(DefaultTickDurationUs)*6*80/100 + wantSwingDelay
	if msgs[0].DelayUs != wantSwingDelay {
		t.Errorf("swung NoteOn delay = %d, want %d", msgs[0].DelayUs, wantSwingDelay)
	}
	if msgs[1].DelayUs != wantGate {
		t.Errorf("swung NoteOff delay = %d, want %d", msgs[1].DelayUs, wantGate)
	}

	for i := uint64(7); i < 13; i++ {
		msgs = s.Advance(i * DefaultTickDurationUs)
	}
	// tick 12 is back on the downbeat: 12%12==0, no swing.
	if msgs[0].DelayUs != 0 {
		t.Errorf("downbeat NoteOn delay = %d, want 0", msgs[0].DelayUs)
	}
}

func TestStepDelayComposesWithSwingOnNoteOnOnly(t *testing.T) {
	s := New()
	tr := sixteenthTrack(0)
	step := tr.Sequence.At(0)
	step.Delay = 25
	_ = s.SetTrack(0, tr)
	s.SetSwing(SwingMpc54)
	s.StartPlaying()

	msgs := s.Advance(0)
	wantDelayDelay := uint64(DefaultTickDurationUs) * 6 * 25 / 100
	if msgs[0].DelayUs != wantDelayDelay {
		t.Errorf("NoteOn delay = %d, want %d (step.Delay only, tick 0 has no swing)", msgs[0].DelayUs, wantDelayDelay)
	}
	wantGate := uint64(DefaultTickDurationUs) * 6 * 80 / 100
	if msgs[1].DelayUs != wantGate {
		t.Errorf("NoteOff delay = %d, want %d (step.Delay never affects the gate)", msgs[1].DelayUs, wantGate)
	}
}

func TestStartPlayingResetsTickContinuePreservesIt(t *testing.T) {
	s := New()
	_ = s.SetTrack(0, sixteenthTrack(0))
	s.StartPlaying()
	s.Advance(0)
	s.Advance(DefaultTickDurationUs)
	if s.Tick() != 2 {
		t.Fatalf("Tick() = %d, want 2", s.Tick())
	}

	s.StopPlaying()
	if s.Tick() != 2 {
		t.Errorf("StopPlaying changed Tick() to %d, want unchanged 2", s.Tick())
	}
	if msgs := s.Advance(2 * DefaultTickDurationUs); msgs != nil {
		t.Errorf("Advance while stopped = %v, want nil", msgs)
	}
	if s.Tick() != 2 {
		t.Errorf("Advance while stopped changed Tick() to %d, want unchanged 2", s.Tick())
	}

	s.ContinuePlaying()
	if s.Tick() != 2 {
		t.Errorf("ContinuePlaying changed Tick() to %d, want unchanged 2", s.Tick())
	}

	s.StartPlaying()
	if s.Tick() != 0 {
		t.Errorf("StartPlaying left Tick() at %d, want reset to 0", s.Tick())
	}
}

func TestSetTrackRejectsOutOfRangeSlot(t *testing.T) {
	s := New()
	if err := s.SetTrack(-1, sixteenthTrack(0)); err == nil {
		t.Error("SetTrack(-1, ...) should fail")
	}
	if err := s.SetTrack(TrackCount, sixteenthTrack(0)); err == nil {
		t.Error("SetTrack(TrackCount, ...) should fail")
	}
}

func TestEmptyTrackSlotsAreSkipped(t *testing.T) {
	s := New()
	_ = s.SetTrack(3, sixteenthTrack(0))
	s.StartPlaying()
	msgs := s.Advance(0)
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2 (only slot 3 occupied)", len(msgs))
	}
}
