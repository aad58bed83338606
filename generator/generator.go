// Package generator composes a rhythm machine, a melody machine, and a
// scale/key/part configuration into the pipeline that turns a bare
// length into a fully dressed Sequence.
package generator

import (
	"github.com/microgroove/sequencer/machine"
	"github.com/microgroove/sequencer/param"
	"github.com/microgroove/sequencer/part"
	"github.com/microgroove/sequencer/quantizer"
	"github.com/microgroove/sequencer/sequence"
)

// SequenceGenerator pipes a freshly initialised sequence through a
// rhythm machine, a melody machine, quantization, and a part mask.
type SequenceGenerator struct {
	RhythmMachine machine.Machine
	MelodyMachine machine.Machine
	GrooveParams  *param.List // [PART]
	HarmonyParams *param.List // [SCALE, KEY]
}

// New builds a SequenceGenerator with default machines (Unit rhythm and
// melody), the SEQ part, and chromatic/C harmony.
func New() *SequenceGenerator {
	partParam, _ := param.New("PART", param.KindPart, 0, uint8(part.Count-1), uint8(part.Sequence))
	groove, _ := param.NewList(partParam)

	scaleParam, _ := param.New("SCALE", param.KindScale, 0, uint8(quantizer.ScaleCount-1), uint8(quantizer.Chromatic))
	keyParam, _ := param.New("KEY", param.KindKey, 0, uint8(quantizer.KeyCount-1), uint8(quantizer.C))
	harmony, _ := param.NewList(scaleParam, keyParam)

	return &SequenceGenerator{
		RhythmMachine: machine.NewUnit(),
		MelodyMachine: machine.NewUnit(),
		GrooveParams:  groove,
		HarmonyParams: harmony,
	}
}

// Generate draws fresh entropy for both machines, melody first then
// rhythm (the reverse of the order Apply runs them in).
func (g *SequenceGenerator) Generate(entropy machine.EntropySource) {
	g.MelodyMachine.Generate(entropy)
	g.RhythmMachine.Generate(entropy)
}

// Apply runs the full generation pipeline for a sequence of the given
// length: a fresh initial sequence, then rhythm, then melody, then
// quantization, then the part mask (with the part-A fold).
//
// Apply is pure with respect to whatever entropy the machines last drew
// in Generate: two successive calls with no intervening Generate return
// equal sequences.
func (g *SequenceGenerator) Apply(length int) sequence.Sequence {
	seq := sequence.New(length)
	seq = g.RhythmMachine.Apply(seq)
	seq = g.MelodyMachine.Apply(seq)
	seq = g.quantize(seq)

	p := part.Part(g.GrooveParams.At(0).Raw())
	mask := part.NewMask(p, seq.Len())
	seq = seq.MaskSteps(mask)

	if p == part.A {
		seq = foldFirstHalfOverSecond(seq)
	}
	return seq
}

func (g *SequenceGenerator) quantize(seq sequence.Sequence) sequence.Sequence {
	scale, _ := quantizer.ScaleFromByte(g.HarmonyParams.At(0).Raw())
	key, _ := quantizer.KeyFromByte(g.HarmonyParams.At(1).Raw())
	return seq.MapNotes(func(note uint8) uint8 {
		return quantizer.Quantize(note, scale, key)
	})
}

// foldFirstHalfOverSecond copies the first half of the sequence onto the
// second half, so an "A_A_" part mask produces two identical phrases
// rather than one phrase and one silence. Any odd trailing step beyond
// the doubled half is left untouched.
func foldFirstHalfOverSecond(seq sequence.Sequence) sequence.Sequence {
	half := seq.Len() / 2
	if half == 0 {
		return seq
	}
	steps := append([]*sequence.Step(nil), seq.Steps()...)
	for i := 0; i < half; i++ {
		if steps[i] == nil {
			steps[i+half] = nil
			continue
		}
		cp := *steps[i]
		steps[i+half] = &cp
	}
	return sequence.FromSteps(steps)
}
