// Package groups implements the Device Enumerator: it scans the kernel's
// event-device nodes, opens each one, reads its identity and capabilities,
// classifies it, and partitions nodes into device groups.
package groups

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/input"
)

const synthenticPrefix = "ev-remapper"

// Refresh enumerates every currently exposed event-device node and returns
// the device groups they form. A node that fails to open is logged and
// skipped; enumeration as a whole never fails because of one bad node.
func Refresh() ([]evremapper.DeviceGroup, error) {
	var (
		paths   []string
		entries map[string]*groupBuilder
		order   []string
		err     error
	)

	paths, err = filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("groups.Refresh: %w", err)
	}

	entries = make(map[string]*groupBuilder)

	for _, path := range paths {
		var (
			dev   *input.Device
			name  string
			phys  string
			id    input.ID
			caps  evremapper.CapabilitySet
			class evremapper.DeviceClass
			gkey  string
		)

		dev, err = input.NewDeviceReadOnly(path)
		if err != nil {
			slog.Warn("failed to open input device", "path", path, "error", err)
			continue
		}

		name, err = dev.Name()
		if err != nil {
			slog.Warn("failed to read device name", "path", path, "error", err)
			dev.Close()
			continue
		}

		if name == "Power Button" || name == "Sleep Button" {
			dev.Close()
			continue
		}

		if strings.HasPrefix(name, synthenticPrefix) {
			dev.Close()
			continue
		}

		caps, err = dev.Capabilities()
		if err != nil {
			slog.Warn("failed to read device capabilities", "path", path, "error", err)
			dev.Close()
			continue
		}

		if !hasCode(caps, input.EV_KEY, -1) {
			dev.Close()
			continue
		}

		phys, err = dev.Phys()
		if err != nil {
			slog.Warn("failed to read device phys", "path", path, "error", err)
			dev.Close()
			continue
		}

		id, err = dev.InputID()
		if err != nil {
			slog.Warn("failed to read device id", "path", path, "error", err)
			dev.Close()
			continue
		}

		class = classify(caps)
		gkey = groupKey(id, phys)

		if entries[gkey] == nil {
			entries[gkey] = &groupBuilder{}
			order = append(order, gkey)
		}

		entries[gkey].paths = append(entries[gkey].paths, path)
		entries[gkey].names = append(entries[gkey].names, name)
		entries[gkey].types = append(entries[gkey].types, class)

		dev.Close()
	}

	return buildGroups(order, entries), nil
}

type groupBuilder struct {
	paths []string
	names []string
	types []evremapper.DeviceClass
}

// groupKey mirrors spec.md section 4.1:
// "{bustype}{vendor}_{product}_{phys_before_first_slash_or_'-'}".
func groupKey(id input.ID, phys string) string {
	var prefix string

	prefix = phys
	if i := strings.IndexByte(phys, '/'); i >= 0 {
		prefix = phys[:i]
	}

	if prefix == "" {
		prefix = "-"
	}

	return fmt.Sprintf("%d%d_%d_%s", id.Bustype, id.Vendor, id.Product, prefix)
}

func classify(caps evremapper.CapabilitySet) evremapper.DeviceClass {
	if hasCode(caps, input.EV_REL, input.REL_X) &&
		hasCode(caps, input.EV_REL, input.REL_Y) &&
		hasCode(caps, input.EV_REL, input.REL_WHEEL) &&
		hasCode(caps, input.EV_KEY, input.BTN_LEFT) {
		return evremapper.ClassMouse
	}

	if hasCode(caps, input.EV_KEY, input.KEY_A) {
		return evremapper.ClassKeyboard
	}

	return evremapper.ClassUnknown
}

// hasCode reports whether caps[event] contains code. code == -1 means "any
// code at all for this event type" (used to test for EV_KEY presence).
func hasCode(caps evremapper.CapabilitySet, event int, code int) bool {
	var codes []evremapper.CapCode

	codes, ok := caps[evremapper.InputEvent(event)]
	if !ok {
		return false
	}

	if code == -1 {
		return len(codes) > 0
	}

	for _, c := range codes {
		if int(c.Code) == code {
			return true
		}
	}

	return false
}

// buildGroups converts builders, in first-seen order, into DeviceGroups
// with uniquified keys: the shortest name in the group, deduplicated by
// appending " 2", " 3", ... against earlier groups from this same refresh.
func buildGroups(order []string, entries map[string]*groupBuilder) []evremapper.DeviceGroup {
	var (
		result   []evremapper.DeviceGroup
		usedKeys map[string]bool
	)

	usedKeys = make(map[string]bool)
	result = make([]evremapper.DeviceGroup, 0, len(order))

	for _, gkey := range order {
		var (
			b        = entries[gkey]
			keyBase  string
			key      string
			suffix   int
		)

		keyBase = shortestName(b.names)
		key = keyBase
		suffix = 2

		for usedKeys[key] {
			key = keyBase + " " + strconv.Itoa(suffix)
			suffix++
		}

		usedKeys[key] = true

		result = append(result, evremapper.DeviceGroup{
			Key:   key,
			Name:  keyBase,
			Paths: b.paths,
			Names: b.names,
			Types: b.types,
		})
	}

	return result
}

// shortestName returns the shortest string in names, ties broken by first
// occurrence (stable sort by length, take index 0).
func shortestName(names []string) string {
	cp := make([]string, len(names))
	copy(cp, names)

	sort.SliceStable(cp, func(i, j int) bool {
		return len(cp[i]) < len(cp[j])
	})

	return cp[0]
}
