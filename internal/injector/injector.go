// Package injector runs one device group's remapping as a supervised child
// process: it grabs every source in the group, creates one synthetic
// device per grabbed source mirroring that source's capabilities, forwards
// each source's remapped events into its own synthetic device, and reports its lifecycle state back to the parent over a
// dedicated status pipe.
//
// The parent/child split exists for the same reason the original
// implementation used a subprocess per injection: an uinput device and its
// grabbed sources must be torn down together, cleanly, even if the parent
// process is killed hard. Re-executing the daemon's own binary with a
// hidden subcommand is the Go-idiomatic substitute for that subprocess
// model (os/exec plus os.Pipe, rather than a process-fork primitive Go
// does not have).
package injector

import (
	"github.com/evremapper/evremapper"
)

// ChildSubcommand is the hidden os.Args[1] value the daemon's main()
// recognizes to dispatch into [RunChild] instead of starting the Manager.
const ChildSubcommand = "__evremapper_injector_child"

// config is the JSON payload the parent writes to the child's stdin at
// startup: everything the child needs to grab its sources and build their
// synthetic devices, without any shared memory between the two processes.
type config struct {
	Group   evremapper.DeviceGroup `json:"group"`
	Mapping evremapper.Mapping     `json:"mapping"`
}

// statusLine values written by the child to its status pipe, one per
// lifecycle transition. They mirror [evremapper.State]'s String() form.
const (
	statusRunning   = "RUNNING"
	statusFailed    = "FAILED"
	statusNoDevices = "NO_DEVICES"
	statusStopped   = "STOPPED"
)

// controlClose is the one control-pipe message the parent ever sends: a
// request to stop forwarding, release every grabbed source, and exit.
const controlClose = "CLOSE"
