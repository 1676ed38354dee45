package capmirror

import (
	"testing"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/input"
)

func TestMirrorStripsSynAndFF(t *testing.T) {
	caps := evremapper.CapabilitySet{
		input.EV_SYN: {{Code: 0}},
		input.EV_FF:  {{Code: 0}},
		input.EV_KEY: {{Code: input.KEY_A}},
	}

	out := Mirror(caps)

	if _, ok := out[input.EV_SYN]; ok {
		t.Fatalf("EV_SYN must not appear in mirrored capabilities")
	}

	if _, ok := out[input.EV_FF]; ok {
		t.Fatalf("EV_FF must not appear in mirrored capabilities")
	}

	if len(out[input.EV_KEY]) != 1 {
		t.Fatalf("expected EV_KEY codes to pass through unchanged, got %v", out[input.EV_KEY])
	}
}

func TestMirrorStripsAbsVolume(t *testing.T) {
	caps := evremapper.CapabilitySet{
		input.EV_ABS: {
			{Code: input.ABS_VOLUME},
			{Code: input.ABS_X, Abs: &evremapper.AbsInfo{Min: 0, Max: 255}},
		},
	}

	out := Mirror(caps)

	for _, c := range out[input.EV_ABS] {
		if c.Code == input.ABS_VOLUME {
			t.Fatalf("ABS_VOLUME must be stripped from EV_ABS")
		}
	}

	if len(out[input.EV_ABS]) != 1 {
		t.Fatalf("expected exactly one surviving EV_ABS code, got %d", len(out[input.EV_ABS]))
	}

	if out[input.EV_ABS][0].Abs == nil || out[input.EV_ABS][0].Abs.Max != 255 {
		t.Fatalf("expected absinfo to be preserved for surviving codes")
	}
}
