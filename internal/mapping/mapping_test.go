package mapping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/evremapper/evremapper/linux/input"
)

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	path := filepath.Join(dir, name)

	if err = os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	return path
}

func TestLoadPresetTranslatesSymbolicNames(t *testing.T) {
	dir := t.TempDir()

	path := writeJSON(t, dir, "preset.json", map[string]any{
		"mappings": map[string]string{
			"KEY_CAPSLOCK": "KEY_LEFTCTRL",
		},
	})

	m, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}

	if m[input.KEY_CAPSLOCK] != input.KEY_LEFTCTRL {
		t.Fatalf("expected KEY_CAPSLOCK -> KEY_LEFTCTRL, got %v", m)
	}
}

func TestLoadPresetSkipsUnknownNames(t *testing.T) {
	dir := t.TempDir()

	path := writeJSON(t, dir, "preset.json", map[string]any{
		"mappings": map[string]string{
			"KEY_CAPSLOCK":    "KEY_LEFTCTRL",
			"KEY_DOES_NOT_EXIST": "KEY_A",
		},
	})

	m, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}

	if len(m) != 1 {
		t.Fatalf("expected unknown entry to be skipped, got %v", m)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	dir := t.TempDir()

	path := writeJSON(t, dir, "config.json", map[string]any{
		"autoload": map[string]string{
			"some-keyboard": "default",
		},
	})

	table, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}

	if table["some-keyboard"] != "default" {
		t.Fatalf("expected autoload entry to round-trip, got %v", table)
	}
}

func TestLoadGlobalConfigMissingAutoloadKey(t *testing.T) {
	dir := t.TempDir()

	path := writeJSON(t, dir, "config.json", map[string]any{})

	table, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}

	if len(table) != 0 {
		t.Fatalf("expected empty autoload table, got %v", table)
	}
}

func TestCodeByNameUnknown(t *testing.T) {
	if _, ok := CodeByName("KEY_NOT_A_REAL_CODE"); ok {
		t.Fatalf("expected unknown name to report not-ok")
	}
}
