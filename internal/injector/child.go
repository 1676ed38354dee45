package injector

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/evremapper/evremapper/internal/capmirror"
	"github.com/evremapper/evremapper/internal/forward"
	"github.com/evremapper/evremapper/internal/grab"
	"github.com/evremapper/evremapper/linux/uinput"
)

// controlFd and statusFd are the [os/exec.Cmd.ExtraFiles] slots [Spawn]
// hands down: fd 3 is the child's end of the control pipe (read-only), fd
// 4 is its end of the status pipe (write-only). Both message types used to
// flow the other direction in the implementation this was ported from,
// which meant a parent reading RUNNING off its own write end; here both
// directions are fixed to flow consistently child-to-parent and
// parent-to-child respectively.
const (
	controlFd = 3
	statusFd  = 4
)

// RunChild is the entry point for the re-executed injector subprocess. It
// reads its config from stdin, grabs every source device named in the
// group, creates one synthetic device per grabbed source mirroring that
// source's own identity and capabilities, and forwards events until it
// receives [controlClose] on its control pipe. It returns the process exit
// code the caller should use.
func RunChild() int {
	var (
		cfg     config
		decoder *json.Decoder
		err     error
	)

	decoder = json.NewDecoder(os.Stdin)

	err = decoder.Decode(&cfg)
	if err != nil {
		slog.Error("injector child: failed to decode config", "error", err)
		return 1
	}

	control := os.NewFile(controlFd, "control")
	status := os.NewFile(statusFd, "status")

	defer status.Close()
	defer control.Close()

	return runChild(cfg, control, status)
}

func runChild(cfg config, control, status *os.File) int {
	var (
		handles []*grab.SourceHandle
		path    string
	)

	for _, path = range cfg.Group.Paths {
		h, ok := grab.Grab(path, cfg.Mapping)
		if ok {
			handles = append(handles, h)
		}
	}

	if len(handles) == 0 {
		reportStatus(status, statusNoDevices)
		return 0
	}

	defer releaseAll(handles)

	synths := make([]*uinput.Device, 0, len(handles))

	defer closeAll(synths)

	for _, h := range handles {
		synth, err := createSynthetic(h)
		if err != nil {
			slog.Error("injector child: failed to create synthetic device", "error", err)
			reportStatus(status, statusFailed)

			if errors.Is(err, uinput.ErrPropsUnsupported) {
				return 12
			}

			return 1
		}

		synths = append(synths, synth)
	}

	reportStatus(status, statusRunning)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watchControl(control, cancel)

	var group errgroup.Group

	for i, h := range handles {
		h, synth := h, synths[i]

		group.Go(func() error {
			return forward.Run(ctx, h, synth, cfg.Mapping)
		})
	}

	if err := group.Wait(); err != nil {
		slog.Warn("injector child: forwarder exited with error", "error", err)
	}

	reportStatus(status, statusStopped)

	return 0
}

// watchControl reads newline-delimited control messages and cancels on
// [controlClose]. It returns when the control pipe is closed, which also
// happens on normal shutdown.
func watchControl(control *os.File, cancel context.CancelFunc) {
	var scanner = bufio.NewScanner(control)

	for scanner.Scan() {
		if scanner.Text() == controlClose {
			cancel()
			return
		}
	}
}

func reportStatus(status io.Writer, line string) {
	fmt.Fprintln(status, line)
}

func releaseAll(handles []*grab.SourceHandle) {
	for _, h := range handles {
		grab.Release(h)
	}
}

func closeAll(synths []*uinput.Device) {
	for _, s := range synths {
		s.Close()
	}
}

// createSynthetic builds the one uinput device paired with a single
// grabbed source, mirroring that source's own identity, properties, and
// capabilities: spec.md's "SyntheticDevice ... One per grabbed source."
func createSynthetic(h *grab.SourceHandle) (*uinput.Device, error) {
	id, err := h.Device.InputID()
	if err != nil {
		return nil, fmt.Errorf("createSynthetic: %w", err)
	}

	name, err := h.Device.Name()
	if err != nil {
		return nil, fmt.Errorf("createSynthetic: %w", err)
	}

	caps, err := h.Device.Capabilities()
	if err != nil {
		return nil, fmt.Errorf("createSynthetic: %w", err)
	}

	props, err := h.Device.Properties()
	if err != nil {
		return nil, fmt.Errorf("createSynthetic: %w", err)
	}

	spec := uinput.Spec{
		Name: name,
		ID: uinput.ID{
			Bustype: id.Bustype,
			Vendor:  id.Vendor,
			Product: id.Product,
			Version: id.Version,
		},
		Props:        props,
		Capabilities: capmirror.Mirror(caps),
	}

	return uinput.Create(spec)
}
