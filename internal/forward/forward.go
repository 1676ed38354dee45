// Package forward implements the Event Forwarder: a per-device loop that
// reads raw events from one grabbed source, drops autorepeat, remaps key
// codes, and re-emits everything else unchanged to a synthetic device.
package forward

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/internal/grab"
	"github.com/evremapper/evremapper/linux/input"
	"github.com/evremapper/evremapper/linux/uinput"
)

// autorepeatValue is the EV_KEY value the kernel uses for a held-key
// autorepeat event, dropped rather than forwarded per spec.md section 4.4.
const autorepeatValue = 2

// Run reads events from src until ctx is cancelled or the read fails, and
// writes each one (after the autorepeat/remap treatment) to dst. It never
// synthesizes an EV_SYN of its own: every event read, including sync
// events, is written through as-is except where dropped or remapped.
//
// Run returns nil when ctx is cancelled (the caller already knows why);
// any other return is the error that ended the read loop.
func Run(ctx context.Context, src *grab.SourceHandle, dst *uinput.Device, mapping evremapper.Mapping) error {
	var done = make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			src.Device.Close()
		case <-done:
		}
	}()

	defer close(done)

	for {
		event, err := src.Device.ReadEvent()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("forward.Run(%s): %w", src.Path, err)
		}

		out, keep := transform(event, mapping)
		if !keep {
			continue
		}

		if err = dst.Write(out); err != nil {
			slog.Warn("write to synthetic device failed", "source", src.Path, "error", err)
			return fmt.Errorf("forward.Run(%s): %w", src.Path, err)
		}
	}
}

// transform applies the per-event forwarding rule from spec.md section
// 4.4: EV_KEY autorepeat is dropped, a mapped code is substituted regardless
// of event type, and everything else (including EV_SYN) passes through
// unchanged. The second return value reports whether the event should be
// written at all.
func transform(event evremapper.RawEvent, mapping evremapper.Mapping) (evremapper.RawEvent, bool) {
	if event.Type == input.EV_KEY && event.Value == autorepeatValue {
		return event, false
	}

	if target, ok := mapping[event.Code]; ok {
		event.Code = target
	}

	return event, true
}
