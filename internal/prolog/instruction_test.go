package prolog

import (
	"testing"

	"github.com/hyperifyio/cehta/internal/textenc"
)

const optionsName = "<?cehta-options"

func instruction(in, name string) (string, bool) {
	text := textenc.FromString(in)
	return Instruction(text, Locate(text), name)
}

func TestInstruction_ReturnsParamsUpToTerminator(t *testing.T) {
	got, ok := instruction("<?cehta-options dialogWidth=40;dialogHeight=20 ?><html></html>", optionsName)
	if !ok {
		t.Fatalf("expected instruction to be found")
	}
	// Starts right after the whitespace run, ends right before "?>".
	if want := "dialogWidth=40;dialogHeight=20 "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInstruction_WhitespaceRunIsSkipped(t *testing.T) {
	got, ok := instruction("<?cehta-options \t\r\n resizable=no?><p>", optionsName)
	if !ok || got != "resizable=no" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestInstruction_AbsentWhenNotInProlog(t *testing.T) {
	in := "<?xml version=\"1.0\"?><html><!-- <?cehta-options dialogWidth=1 ?> --></html>"
	if got, ok := instruction(in, optionsName); ok {
		t.Fatalf("payload must not be scanned, got %q", got)
	}
}

func TestInstruction_PrefixedNameSkippedThenMatch(t *testing.T) {
	// The first occurrence is a longer name with no whitespace after the
	// match; scanning must continue to the well-formed one.
	in := "<?cehta-optionsX a=1?><?cehta-options b=2?><div>"
	got, ok := instruction(in, optionsName)
	if !ok || got != "b=2" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestInstruction_UnterminatedIsAbsent(t *testing.T) {
	if got, ok := instruction("<?cehta-options dialogWidth=40", optionsName); ok {
		t.Fatalf("expected absent, got %q", got)
	}
}

func TestInstruction_TerminatorMayFollowPayloadPointer(t *testing.T) {
	in := "<?cehta-options a<b ?><div>"
	text := textenc.FromString(in)
	payload := Locate(text)
	if rest := text[payload:].String(); rest != "<b ?><div>" {
		t.Fatalf("unexpected payload %q", rest)
	}
	got, ok := Instruction(text, payload, optionsName)
	if !ok || got != "a<b " {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestInstruction_EmptyTextAndName(t *testing.T) {
	if _, ok := Instruction(textenc.Text{}, 0, optionsName); ok {
		t.Fatalf("expected absent for empty text")
	}
	if _, ok := instruction("<?x a?>", ""); ok {
		t.Fatalf("expected absent for empty name")
	}
}

func TestInstruction_PointerOutOfRangeIsClamped(t *testing.T) {
	text := textenc.FromString("<?cehta-options w=1?>")
	got, ok := Instruction(text, len(text)+10, optionsName)
	if !ok || got != "w=1" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}
