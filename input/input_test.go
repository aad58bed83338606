package input

import (
	"testing"

	"github.com/microgroove/sequencer/machine"
	"github.com/microgroove/sequencer/part"
	"github.com/microgroove/sequencer/sequencer"
	"github.com/microgroove/sequencer/track"
)

type zeroEntropy struct{}

func (zeroEntropy) RandomU64() uint64 { return 0 }

func i8(v int8) *int8 { return &v }

func TestPressButtonTogglesWithinPair(t *testing.T) {
	if got := PressButton(ModeTrack, 0); got != ModeSequence {
		t.Errorf("PressButton(Track, 0) = %v, want Sequence", got)
	}
	if got := PressButton(ModeSequence, 0); got != ModeTrack {
		t.Errorf("PressButton(Sequence, 0) = %v, want Track", got)
	}
	if got := PressButton(ModeGroove, 0); got != ModeTrack {
		t.Errorf("PressButton(Groove, 0) = %v, want Track (jumps to pair head)", got)
	}
	if got := PressButton(ModeRhythm, 1); got != ModeGroove {
		t.Errorf("PressButton(Rhythm, 1) = %v, want Groove", got)
	}
	if got := PressButton(ModeMelody, 2); got != ModeHarmony {
		t.Errorf("PressButton(Melody, 2) = %v, want Harmony", got)
	}
}

func TestTrackModeSelectsTrackWithWraparound(t *testing.T) {
	seq := sequencer.New()
	_ = seq.SetTrack(0, track.New(0))
	m := NewMapper(seq)
	m.Mode = ModeTrack

	deltas := EncoderDeltas{}
	deltas[track.ParamTrackNumber] = i8(-1)
	m.Apply(zeroEntropy{}, deltas)

	if m.CurrentTrack != sequencer.TrackCount-1 {
		t.Errorf("CurrentTrack = %d, want %d (wrapped)", m.CurrentTrack, sequencer.TrackCount-1)
	}
}

func TestTrackModeCreatesTrackLazilyOnNonSelectorDelta(t *testing.T) {
	seq := sequencer.New()
	m := NewMapper(seq)
	m.Mode = ModeTrack
	m.CurrentTrack = 2

	if seq.Track(2) != nil {
		t.Fatal("expected slot 2 to start empty")
	}

	deltas := EncoderDeltas{}
	deltas[track.ParamLength] = i8(1)
	m.Apply(zeroEntropy{}, deltas)

	tr := seq.Track(2)
	if tr == nil {
		t.Fatal("expected a track to be created lazily")
	}
	if tr.MidiChannel != 2 {
		t.Errorf("MidiChannel = %d, want 2 (pre-filled from slot number)", tr.MidiChannel)
	}
}

func TestTrackModeDoesNotCreateTrackOnSelectorOnlyDelta(t *testing.T) {
	seq := sequencer.New()
	m := NewMapper(seq)
	m.Mode = ModeTrack

	deltas := EncoderDeltas{}
	deltas[track.ParamTrackNumber] = i8(1)
	m.Apply(zeroEntropy{}, deltas)

	if seq.Track(0) != nil || seq.Track(1) != nil {
		t.Error("selecting a track should not create one")
	}
}

func TestTrackModeLengthDeltaAppliesParams(t *testing.T) {
	seq := sequencer.New()
	_ = seq.SetTrack(0, track.New(0))
	m := NewMapper(seq)
	m.Mode = ModeTrack

	deltas := EncoderDeltas{}
	deltas[track.ParamLength] = i8(4)
	m.Apply(zeroEntropy{}, deltas)

	if seq.Track(0).Length != 12 {
		t.Errorf("Length = %d, want 12", seq.Track(0).Length)
	}
	if seq.Track(0).Sequence.Len() != 12 {
		t.Errorf("Sequence.Len() = %d, want 12 (refresh should resize the sequence)", seq.Track(0).Sequence.Len())
	}
}

func TestTrackModeMachineIDChangeSwapsMachineAndRefreshes(t *testing.T) {
	seq := sequencer.New()
	_ = seq.SetTrack(0, track.New(0))
	m := NewMapper(seq)
	m.Mode = ModeTrack

	before := seq.Track(0).Sequence

	deltas := EncoderDeltas{}
	deltas[track.ParamRhythmMachineID] = i8(1) // Unit -> Euclid
	m.Apply(zeroEntropy{}, deltas)

	tr := seq.Track(0)
	if tr.RhythmMachineID != machine.RhythmEuclid {
		t.Fatalf("RhythmMachineID = %v, want Euclid", tr.RhythmMachineID)
	}
	if m.currentGenerator().RhythmMachine.Name() != "EUCLID" {
		t.Errorf("generator's RhythmMachine = %s, want EUCLID", m.currentGenerator().RhythmMachine.Name())
	}
	if tr.Sequence.Len() != before.Len() {
		t.Errorf("refreshed sequence length changed: %d vs %d", tr.Sequence.Len(), before.Len())
	}
}

func TestSequenceModeIncrementsSwing(t *testing.T) {
	seq := sequencer.New()
	m := NewMapper(seq)
	m.Mode = ModeSequence

	deltas := EncoderDeltas{}
	deltas[sequencer.ParamSwing] = i8(1)
	m.Apply(zeroEntropy{}, deltas)

	if seq.Swing() != sequencer.SwingMpc54 {
		t.Errorf("Swing() = %v, want SwingMpc54", seq.Swing())
	}
}

func TestGrooveModeChangesPartAndRefreshes(t *testing.T) {
	seq := sequencer.New()
	tr16 := track.New(0)
	tr16.Length = 16
	_ = seq.SetTrack(0, tr16)
	m := NewMapper(seq)
	m.Mode = ModeGroove

	deltas := EncoderDeltas{}
	deltas[0] = i8(int8(part.A))
	m.Apply(zeroEntropy{}, deltas)

	if got := part.Part(m.currentGenerator().GrooveParams.At(0).Raw()); got != part.A {
		t.Errorf("GrooveParams[0] = %v, want A", got)
	}
	tr := seq.Track(0)
	for i := 4; i < 8; i++ {
		if tr.Sequence.At(i) != nil || tr.Sequence.At(i+8) != nil {
			t.Errorf("expected rest at %d/%d under part A", i, i+8)
		}
	}
}

func TestHarmonyModeRefreshesWithoutCreatingTrack(t *testing.T) {
	seq := sequencer.New()
	m := NewMapper(seq)
	m.Mode = ModeHarmony

	deltas := EncoderDeltas{}
	deltas[1] = i8(1)
	// Should not panic even though no current track exists yet.
	m.Apply(zeroEntropy{}, deltas)

	if seq.Track(0) != nil {
		t.Error("Harmony mode should never create a track")
	}
}

func TestDeltasBeyondParamListLengthAreIgnored(t *testing.T) {
	seq := sequencer.New()
	_ = seq.SetTrack(0, track.New(0))
	m := NewMapper(seq)
	m.Mode = ModeMelody // Unit melody machine has zero params

	deltas := EncoderDeltas{}
	deltas[0] = i8(5)
	before := seq.Track(0).Sequence
	m.Apply(zeroEntropy{}, deltas)
	after := seq.Track(0).Sequence

	if after.Len() != before.Len() {
		t.Errorf("sequence length changed despite no-op delta: %d vs %d", after.Len(), before.Len())
	}
}
