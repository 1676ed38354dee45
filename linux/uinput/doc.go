//go:build linux

// Package uinput creates synthetic input devices through the Linux
// kernel's uinput interface: it mirrors a source device's identity,
// input properties, and capability set into a new virtual device,
// then writes re-emitted events to it.
package uinput
