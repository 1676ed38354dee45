package injector

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/evremapper/evremapper"
)

// Handle is the parent side's view of one running injection: a supervised
// child process plus the pipes used to control it and observe its state.
type Handle struct {
	cmd      *exec.Cmd
	controlW *os.File
	statusR  *os.File
	state    atomic.Int32
	stopOnce sync.Once
	done     chan struct{}
	waitErr  error
}

// Spawn starts the injector child process for group, grabbing every path
// in group.Paths and remapping through mapping. It returns once the child
// process has been started; the child reports its own RUNNING/NO_DEVICES/
// FAILED transition asynchronously through [Handle.State].
func Spawn(group evremapper.DeviceGroup, mapping evremapper.Mapping) (*Handle, error) {
	var (
		cfg      config
		payload  []byte
		controlR *os.File
		controlW *os.File
		statusR  *os.File
		statusW  *os.File
		cmd      *exec.Cmd
		handle   *Handle
		err      error
	)

	cfg = config{Group: group, Mapping: mapping}

	payload, err = json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("injector.Spawn: %w", err)
	}

	controlR, controlW, err = os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("injector.Spawn: %w", err)
	}

	statusR, statusW, err = os.Pipe()
	if err != nil {
		controlR.Close()
		controlW.Close()
		return nil, fmt.Errorf("injector.Spawn: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	cmd = exec.Command(exe, ChildSubcommand)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{controlR, statusW}

	err = cmd.Start()
	if err != nil {
		controlR.Close()
		controlW.Close()
		statusR.Close()
		statusW.Close()
		return nil, fmt.Errorf("injector.Spawn: %w", err)
	}

	// The parent keeps controlW (to send CLOSE) and statusR (to receive
	// state). The ends handed to the child via ExtraFiles are duplicated
	// into the child's fd table, so the parent's copies can be closed.
	controlR.Close()
	statusW.Close()

	handle = &Handle{cmd: cmd, controlW: controlW, statusR: statusR, done: make(chan struct{})}
	handle.state.Store(int32(evremapper.StateStarting))

	go handle.supervise()

	return handle, nil
}

// supervise reads status lines until the pipe closes (the child exited or
// closed its end), reaps the process, and reconciles the final state: a
// process that is no longer alive but was last seen STARTING or RUNNING
// without an explicit Stop is reported FAILED, per spec.md section 4.5's
// get_state rules.
func (h *Handle) supervise() {
	var scanner = bufio.NewScanner(h.statusR)

	for scanner.Scan() {
		switch scanner.Text() {
		case statusRunning:
			h.state.Store(int32(evremapper.StateRunning))
		case statusFailed:
			h.state.Store(int32(evremapper.StateFailed))
		case statusNoDevices:
			h.state.Store(int32(evremapper.StateNoDevices))
		case statusStopped:
			h.state.Store(int32(evremapper.StateStopped))
		default:
			slog.Warn("injector: unrecognized status line", "line", scanner.Text())
		}
	}

	h.waitErr = h.cmd.Wait()

	last := evremapper.State(h.state.Load())
	if last == evremapper.StateStarting || last == evremapper.StateRunning {
		h.state.Store(int32(evremapper.StateFailed))
	}

	close(h.done)
}

// State returns the most recently observed lifecycle state.
func (h *Handle) State() evremapper.State {
	return evremapper.State(h.state.Load())
}

// Stop asks the child to release its sources and exit, then waits for it.
// It is safe to call more than once; only the first call signals the
// child, later calls just wait on the same result.
func (h *Handle) Stop() error {
	h.stopOnce.Do(func() {
		h.state.Store(int32(evremapper.StateStopped))
		fmt.Fprintln(h.controlW, controlClose)
		h.controlW.Close()
	})

	<-h.done

	return h.waitErr
}
