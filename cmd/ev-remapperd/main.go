// Command ev-remapperd is the input-remapping daemon: it loads autoload
// presets for currently connected device groups, then runs until signalled
// to stop, at which point every active injection is shut down cleanly.
//
// The external command surface spec.md section 1 assigns to a separate
// bus-binding layer is out of scope here; this binary exercises the same
// control API ("Hello", "SetConfigDir", "Autoload", "StopAll", ...) that
// binding would call into.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/evremapper/evremapper/internal/injector"
	"github.com/evremapper/evremapper/internal/logging"
	"github.com/evremapper/evremapper/internal/manager"
)

const pidFilePath = "/run/ev-remapperd.pid"

func exitIf(err error, code int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "ev-remapperd:", err)
		os.Exit(code)
	}
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == injector.ChildSubcommand {
		os.Exit(injector.RunChild())
	}

	var (
		configDir string
		debug     bool
	)

	flag.StringVar(&configDir, "config-dir", "", "path to the config directory (config.json, mappings/)")
	flag.BoolVar(&debug, "debug", false, "enable debug-level logging")
	flag.Parse()

	lock, err := acquireLock(pidFilePath)
	exitIf(err, 1)

	defer releaseLock(lock)

	logFile, err := logging.Setup(logging.Path(), debug)
	exitIf(err, 1)

	defer logFile.Close()

	mgr := manager.New()

	if configDir != "" {
		mgr.SetConfigDir(configDir)

		_, err = mgr.Autoload()
		if err != nil {
			fmt.Fprintln(os.Stderr, "ev-remapperd: autoload failed:", err)
		}
	}

	if mgr.Hello("ping") != "ping" {
		fmt.Fprintln(os.Stderr, "ev-remapperd: control surface self-check failed")
		os.Exit(8)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	mgr.StopAll()
}

// acquireLock takes an exclusive, non-blocking flock on path, returning an
// error (treated by the caller as exit code 1, "duplicate service
// instance") if another instance already holds it.
func acquireLock(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("acquireLock: %w", err)
	}

	err = unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("acquireLock: another instance is already running: %w", err)
	}

	return file, nil
}

func releaseLock(file *os.File) {
	unix.Flock(int(file.Fd()), unix.LOCK_UN)
	file.Close()
	os.Remove(file.Name())
}
