// Package capmirror implements the Capability Mirror: given a source
// device's full capability set, it produces the capability set that is
// safe to hand to uinput device creation.
package capmirror

import (
	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/input"
)

// Mirror copies caps, removing EV_SYN and EV_FF entirely and removing
// ABS_VOLUME from the EV_ABS list if present. Everything else, including
// absinfo, passes through unchanged.
func Mirror(caps evremapper.CapabilitySet) evremapper.CapabilitySet {
	var out evremapper.CapabilitySet

	out = make(evremapper.CapabilitySet, len(caps))

	for event, codes := range caps {
		if event == input.EV_SYN || event == input.EV_FF {
			continue
		}

		if event == input.EV_ABS {
			out[event] = stripAbsVolume(codes)
			continue
		}

		out[event] = codes
	}

	return out
}

func stripAbsVolume(codes []evremapper.CapCode) []evremapper.CapCode {
	var out []evremapper.CapCode

	out = make([]evremapper.CapCode, 0, len(codes))

	for _, c := range codes {
		if c.Code == input.ABS_VOLUME {
			continue
		}

		out = append(out, c)
	}

	return out
}
