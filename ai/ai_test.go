package ai

import (
	"strings"
	"testing"
)

func TestNewRejectsEmptyKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("New(\"\") should return an error")
	}
}

func TestNewAcceptsKey(t *testing.T) {
	client, err := New("sk-ant-test-key")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("New() returned nil client")
	}
}

func TestNewFromEnvRejectsEmptyEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewFromEnv(); err == nil {
		t.Error("NewFromEnv() with empty env var should return an error")
	}
}

func TestParseResponseDecodesDeltasAndExplanation(t *testing.T) {
	deltas, explanation, err := parseResponse("- 3 - - - -1\nNudged the pulse count up and rotated back one step.")
	if err != nil {
		t.Fatalf("parseResponse() unexpected error: %v", err)
	}
	if deltas[0] != nil {
		t.Errorf("deltas[0] = %v, want nil", deltas[0])
	}
	if deltas[1] == nil || *deltas[1] != 3 {
		t.Errorf("deltas[1] = %v, want 3", deltas[1])
	}
	if deltas[5] == nil || *deltas[5] != -1 {
		t.Errorf("deltas[5] = %v, want -1", deltas[5])
	}
	if explanation == "" {
		t.Error("explanation should not be empty")
	}
}

func TestParseResponseRejectsWrongTokenCount(t *testing.T) {
	if _, _, err := parseResponse("- 3 -\nshort line"); err == nil {
		t.Error("parseResponse() should reject a line with fewer than 6 tokens")
	}
}

func TestParseResponseRejectsOutOfRangeDelta(t *testing.T) {
	if _, _, err := parseResponse("- - - - - 20\nexplanation"); err == nil {
		t.Error("parseResponse() should reject a delta outside [-8, 8]")
	}
}

func TestSlotLabelsDescribeMarksReservedSlots(t *testing.T) {
	labels := SlotLabels{"SWING"}
	desc := labels.describe()
	if !strings.Contains(desc, "SWING") || !strings.Contains(desc, "reserved") {
		t.Errorf("describe() = %q, want it to mention SWING and reserved slots", desc)
	}
}
