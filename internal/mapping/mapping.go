// Package mapping implements the Mapping Store: it parses preset files
// into a typed {source code -> target code} table, and global config files
// into a {device-group key -> preset name} autoload table. Both formats are
// JSON, per spec.md section 4.7.
package mapping

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/evremapper/evremapper"
)

// presetFile is the on-disk shape of a preset: {"mappings": {"KEY_A": "KEY_B"}}.
type presetFile struct {
	Mappings map[string]string `json:"mappings"`
}

// globalConfigFile is the on-disk shape of config.json:
// {"autoload": {"device-key": "preset-name"}}.
type globalConfigFile struct {
	Autoload map[string]string `json:"autoload"`
}

// LoadPreset reads and parses a preset JSON file at path. Symbolic key
// names are translated against the compile-time kernel code table; an
// unknown name causes that single entry to be skipped (logged), not the
// whole load to fail.
func LoadPreset(path string) (evremapper.Mapping, error) {
	var (
		data []byte
		file presetFile
		err  error
	)

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapping.LoadPreset: %w", err)
	}

	err = json.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("mapping.LoadPreset: %w", err)
	}

	result := make(evremapper.Mapping, len(file.Mappings))

	for src, dst := range file.Mappings {
		srcCode, ok := CodeByName(src)
		if !ok {
			slog.Error("unknown key name in preset, skipping", "preset", path, "name", src)
			continue
		}

		dstCode, ok := CodeByName(dst)
		if !ok {
			slog.Error("unknown key name in preset, skipping", "preset", path, "name", dst)
			continue
		}

		result[srcCode] = dstCode
	}

	return result, nil
}

// LoadGlobalConfig reads and parses config.json at path, returning its
// autoload table unchanged (device-group keys are opaque strings, not
// translated).
func LoadGlobalConfig(path string) (map[string]string, error) {
	var (
		data []byte
		file globalConfigFile
		err  error
	)

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapping.LoadGlobalConfig: %w", err)
	}

	err = json.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("mapping.LoadGlobalConfig: %w", err)
	}

	if file.Autoload == nil {
		file.Autoload = map[string]string{}
	}

	return file.Autoload, nil
}

// CodeByName translates a symbolic key name (e.g. "KEY_CAPSLOCK") into its
// numeric EV_KEY code using the compile-time kernel code table.
func CodeByName(name string) (evremapper.InputCode, bool) {
	code, ok := keyCodesByName[name]
	return code, ok
}
