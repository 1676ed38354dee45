package forward

import (
	"testing"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/input"
)

func TestTransformRemapsMappedKey(t *testing.T) {
	mapping := evremapper.Mapping{input.KEY_CAPSLOCK: input.KEY_LEFTCTRL}

	in := evremapper.RawEvent{Type: input.EV_KEY, Code: input.KEY_CAPSLOCK, Value: 1}

	out, keep := transform(in, mapping)
	if !keep {
		t.Fatalf("expected event to be kept")
	}

	if out.Code != input.KEY_LEFTCTRL {
		t.Fatalf("expected remapped code %d, got %d", input.KEY_LEFTCTRL, out.Code)
	}

	if out.Value != 1 {
		t.Fatalf("expected value to pass through unchanged, got %d", out.Value)
	}
}

func TestTransformDropsAutorepeat(t *testing.T) {
	mapping := evremapper.Mapping{input.KEY_CAPSLOCK: input.KEY_LEFTCTRL}

	in := evremapper.RawEvent{Type: input.EV_KEY, Code: input.KEY_CAPSLOCK, Value: 2}

	_, keep := transform(in, mapping)
	if keep {
		t.Fatalf("expected autorepeat event to be dropped")
	}
}

func TestTransformPassesThroughUnmapped(t *testing.T) {
	mapping := evremapper.Mapping{input.KEY_CAPSLOCK: input.KEY_LEFTCTRL}

	in := evremapper.RawEvent{Type: input.EV_REL, Code: input.REL_X, Value: 5}

	out, keep := transform(in, mapping)
	if !keep {
		t.Fatalf("expected non-key event to be kept")
	}

	if out != in {
		t.Fatalf("expected unmapped event unchanged, got %+v", out)
	}
}

func TestTransformRemapsMatchingCodeRegardlessOfType(t *testing.T) {
	mapping := evremapper.Mapping{input.KEY_CAPSLOCK: input.KEY_LEFTCTRL}

	in := evremapper.RawEvent{Type: input.EV_MSC, Code: input.KEY_CAPSLOCK, Value: 5}

	out, keep := transform(in, mapping)
	if !keep {
		t.Fatalf("expected event to be kept")
	}

	if out.Code != input.KEY_LEFTCTRL {
		t.Fatalf("expected remap to apply regardless of event type, got code %d", out.Code)
	}
}

func TestTransformPassesThroughUnmappedKey(t *testing.T) {
	mapping := evremapper.Mapping{input.KEY_CAPSLOCK: input.KEY_LEFTCTRL}

	in := evremapper.RawEvent{Type: input.EV_KEY, Code: input.KEY_A, Value: 1}

	out, keep := transform(in, mapping)
	if !keep {
		t.Fatalf("expected unmapped key event to be kept")
	}

	if out.Code != input.KEY_A {
		t.Fatalf("expected code to pass through unchanged, got %d", out.Code)
	}
}
