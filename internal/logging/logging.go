// Package logging sets up the daemon's log file: path selection between
// /var/log and a per-user fallback, truncation of old content on startup,
// and a [log/slog] handler writing to it. Grounded on the log-file
// lifecycle of the implementation this daemon was ported from, expressed
// through the standard library's structured logging package since no
// single third-party logging library is shared across the reference
// repos this module draws on.
package logging

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/evremapper/evremapper/xdg"
)

// maxLines is the number of trailing lines kept across a log truncation
// on startup, matching the lifecycle the daemon's log file has always had.
const maxLines = 1000

// Path returns the log file path this daemon will write to: /var/log if
// it is writable by the current process, otherwise a dotfile under the
// invoking user's home directory.
func Path() string {
	if unix.Access("/var/log", unix.W_OK) == nil {
		return "/var/log/ev-remapper.log"
	}

	return filepath.Join(xdg.Home(), ".log", "ev_remapper.log")
}

// Setup prepares the log file at path (truncating it to its last maxLines
// lines, removing it first if it is unexpectedly a directory) and installs
// a [log/slog] handler writing to it as the default logger. The caller
// must close the returned file once logging is no longer needed.
func Setup(path string, debug bool) (*os.File, error) {
	var (
		file  *os.File
		level slog.Level
		err   error
	)

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("logging.Setup: %w", err)
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		err = os.RemoveAll(path)
		if err != nil {
			return nil, fmt.Errorf("logging.Setup: %w", err)
		}
	}

	err = truncateToTail(path, maxLines)
	if err != nil {
		return nil, fmt.Errorf("logging.Setup: %w", err)
	}

	file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging.Setup: %w", err)
	}

	level = slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})))
	slog.Debug("started logging", "path", path)

	return file, nil
}

// truncateToTail rewrites the file at path (if it exists) to contain only
// its last n lines, matching the original implementation's startup
// behavior of never letting the log file grow unbounded.
func truncateToTail(path string, n int) error {
	var (
		file  *os.File
		lines []string
		err   error
	)

	file, err = os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("truncateToTail: %w", err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	file.Close()

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("truncateToTail: %w", err)
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("truncateToTail: %w", err)
	}

	defer file.Close()

	writer := bufio.NewWriter(file)

	for _, line := range lines {
		_, err = writer.WriteString(line)
		if err != nil {
			return fmt.Errorf("truncateToTail: %w", err)
		}

		err = writer.WriteByte('\n')
		if err != nil {
			return fmt.Errorf("truncateToTail: %w", err)
		}
	}

	return writer.Flush()
}
