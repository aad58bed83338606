package generator

import (
	"testing"

	"github.com/microgroove/sequencer/part"
)

func TestApplyPreservesLength(t *testing.T) {
	g := New()
	g.Generate(noEntropy{})
	seq := g.Apply(16)
	if seq.Len() != 16 {
		t.Errorf("Len() = %d, want 16", seq.Len())
	}
}

func TestApplyIsPureBetweenGenerateCalls(t *testing.T) {
	g := New()
	g.Generate(noEntropy{})
	a := g.Apply(16)
	b := g.Apply(16)
	for i := 0; i < a.Len(); i++ {
		as, bs := a.At(i), b.At(i)
		if (as == nil) != (bs == nil) {
			t.Fatalf("step %d presence differs between calls", i)
		}
		if as != nil && !as.Equal(*bs) {
			t.Fatalf("step %d differs between calls", i)
		}
	}
}

func TestApplyDefaultPartKeepsAllSteps(t *testing.T) {
	g := New()
	g.Generate(noEntropy{})
	seq := g.Apply(16)
	for i := 0; i < seq.Len(); i++ {
		if seq.At(i) == nil {
			t.Errorf("step %d is a rest, want present under default SEQ part", i)
		}
	}
}

func TestApplyPartAFoldsFirstHalfOverSecond(t *testing.T) {
	g := New()
	g.GrooveParams.At(0).SetRaw(uint8(part.A))
	g.Generate(noEntropy{})
	seq := g.Apply(16)
	for i := 0; i < 4; i++ {
		if seq.At(i) == nil || seq.At(i+8) == nil {
			t.Fatalf("A_A_ section %d should be present", i)
		}
		if seq.At(i).Note != seq.At(i+8).Note {
			t.Errorf("step %d note %d != folded step %d note %d", i, seq.At(i).Note, i+8, seq.At(i+8).Note)
		}
	}
	for i := 4; i < 8; i++ {
		if seq.At(i) != nil || seq.At(i+8) != nil {
			t.Errorf("silent section at %d/%d should be a rest", i, i+8)
		}
	}
}

type noEntropy struct{}

func (noEntropy) RandomU64() uint64 { return 0 }
