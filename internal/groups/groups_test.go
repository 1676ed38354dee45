package groups

import (
	"testing"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/input"
)

func TestClassifyMouse(t *testing.T) {
	caps := evremapper.CapabilitySet{
		input.EV_REL: {{Code: input.REL_X}, {Code: input.REL_Y}, {Code: input.REL_WHEEL}},
		input.EV_KEY: {{Code: input.BTN_LEFT}},
	}

	if got := classify(caps); got != evremapper.ClassMouse {
		t.Fatalf("expected ClassMouse, got %v", got)
	}
}

func TestClassifyKeyboard(t *testing.T) {
	caps := evremapper.CapabilitySet{
		input.EV_KEY: {{Code: input.KEY_A}},
	}

	if got := classify(caps); got != evremapper.ClassKeyboard {
		t.Fatalf("expected ClassKeyboard, got %v", got)
	}
}

func TestClassifyUnknown(t *testing.T) {
	caps := evremapper.CapabilitySet{
		input.EV_KEY: {{Code: input.BTN_LEFT}},
	}

	if got := classify(caps); got != evremapper.ClassUnknown {
		t.Fatalf("expected ClassUnknown, got %v", got)
	}
}

func TestGroupKeyUsesPrefixBeforeFirstSlash(t *testing.T) {
	id := input.ID{Bustype: 3, Vendor: 0x46d, Product: 0xc24f}

	got := groupKey(id, "usb-0000:00:14.0-1/input0")
	if got != "31133_49743_usb-0000:00:14.0-1" {
		t.Fatalf("unexpected group key: %s", got)
	}
}

func TestGroupKeyFallsBackToDashWhenPhysEmpty(t *testing.T) {
	id := input.ID{Bustype: 1, Vendor: 2, Product: 3}

	got := groupKey(id, "")
	if got != "12_3_-" {
		t.Fatalf("unexpected group key for empty phys: %s", got)
	}
}

func TestShortestNameTiesBrokenByFirstOccurrence(t *testing.T) {
	names := []string{"Logitech Keyboard", "Keyb", "Abcd"}

	if got := shortestName(names); got != "Keyb" {
		t.Fatalf("expected shortest name Keyb, got %s", got)
	}
}

func TestBuildGroupsUniquifiesDuplicateKeys(t *testing.T) {
	order := []string{"a", "b"}
	entries := map[string]*groupBuilder{
		"a": {paths: []string{"/dev/input/event0"}, names: []string{"Keyboard"}, types: []evremapper.DeviceClass{evremapper.ClassKeyboard}},
		"b": {paths: []string{"/dev/input/event1"}, names: []string{"Keyboard"}, types: []evremapper.DeviceClass{evremapper.ClassKeyboard}},
	}

	groups := buildGroups(order, entries)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	if groups[0].Key != "Keyboard" {
		t.Fatalf("expected first group key Keyboard, got %s", groups[0].Key)
	}

	if groups[1].Key != "Keyboard 2" {
		t.Fatalf("expected second group key to be suffixed, got %s", groups[1].Key)
	}
}

func TestHasCodeAnyCode(t *testing.T) {
	caps := evremapper.CapabilitySet{input.EV_KEY: {{Code: input.KEY_A}}}

	if !hasCode(caps, input.EV_KEY, -1) {
		t.Fatalf("expected EV_KEY presence to be detected")
	}

	if hasCode(caps, input.EV_REL, -1) {
		t.Fatalf("expected EV_REL absence to be detected")
	}
}
