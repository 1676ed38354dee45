// Package grab implements the Grab Manager: it opens a source event node,
// decides whether any mapping applies to it, and performs an exclusive
// grab with bounded retry.
package grab

import (
	"time"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/input"
)

const (
	retryAttempts = 10
	retryDelay    = 200 * time.Millisecond
)

// SourceHandle is a grabbed source device, ready for the Event Forwarder.
type SourceHandle struct {
	Path   string
	Device *input.Device
}

// Grab opens path, checks whether mapping applies to any of its EV_KEY
// codes, and attempts an exclusive grab up to 10 times, 200ms apart. It returns (nil, false) for any non-fatal reason the node cannot
// be grabbed: open failure, no applicable mapping, or exhausted retries.
func Grab(path string, mapping evremapper.Mapping) (*SourceHandle, bool) {
	var (
		dev *input.Device
		err error
	)

	dev, err = input.NewDevice(path)
	if err != nil {
		return nil, false
	}

	if !mappingApplies(dev, mapping) {
		dev.Close()
		return nil, false
	}

	if !grabWithRetry(dev) {
		dev.Close()
		return nil, false
	}

	return &SourceHandle{Path: path, Device: dev}, true
}

// Release ungrabs and closes the source handle. Errors from releasing an
// already-released node are swallowed: the caller is tearing down anyway.
func Release(h *SourceHandle) {
	if h == nil || h.Device == nil {
		return
	}

	h.Device.Release()
	h.Device.Close()
}

func mappingApplies(dev *input.Device, mapping evremapper.Mapping) bool {
	var (
		codes []evremapper.InputCode
		err   error
	)

	codes, err = dev.Codes(input.EV_KEY)
	if err != nil {
		return false
	}

	for _, code := range codes {
		if _, ok := mapping[code]; ok {
			return true
		}
	}

	return false
}

func grabWithRetry(dev *input.Device) bool {
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if err := dev.Grab(); err == nil {
			return true
		}

		time.Sleep(retryDelay)
	}

	return false
}
