//go:build linux

package uinput

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/ioctl"
	"golang.org/x/sys/unix"
)

// ErrPropsUnsupported is returned when the running kernel's uinput binding
// does not accept input properties through [UI_DEV_SETUP]/[UI_SET_PROPBIT].
// spec.md section 4.5 treats this as fatal (process exit code 12): there is
// deliberately no fallback to the legacy uinput_user_dev struct here.
var ErrPropsUnsupported = errors.New("uinput: kernel binding does not accept input properties")

// Spec describes the synthetic device to create: its mirrored identity,
// name, input properties, and capability set (already passed through the
// Capability Mirror).
type Spec struct {
	Name         string
	ID           ID
	Props        []int
	Capabilities evremapper.CapabilitySet
}

// Device is an open synthetic input device created through /dev/uinput.
type Device struct {
	file *os.File
}

const uinputPath = "/dev/uinput"

// Create opens /dev/uinput, registers every event type/code/property in
// spec, and instantiates the device. If the kernel rejects input
// properties (spec.Props non-empty but UI_DEV_SETUP/UI_SET_PROPBIT fails),
// it returns [ErrPropsUnsupported] instead of silently degrading.
func Create(spec Spec) (*Device, error) {
	var (
		file *os.File
		dev  *Device
		err  error
	)

	file, err = os.OpenFile(uinputPath, os.O_WRONLY|os.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("uinput.Create: %w", err)
	}

	dev = &Device{file: file}

	err = dev.configure(spec)
	if err != nil {
		dev.file.Close()
		return nil, err
	}

	return dev, nil
}

func (dev *Device) configure(spec Spec) error {
	var err error

	for eventType := range spec.Capabilities {
		err = dev.ioctl(UI_SET_EVBIT, uintptr(eventType))
		if err != nil {
			return fmt.Errorf("uinput.Create: UI_SET_EVBIT %d: %w", eventType, err)
		}

		bit, ok := eventBit(int(eventType))
		if !ok {
			continue
		}

		for _, code := range spec.Capabilities[eventType] {
			err = dev.ioctl(bit, uintptr(code.Code))
			if err != nil {
				return fmt.Errorf("uinput.Create: set code %d/%d: %w", eventType, code.Code, err)
			}
		}
	}

	if len(spec.Props) > 0 {
		for _, prop := range spec.Props {
			err = dev.ioctl(UI_SET_PROPBIT, uintptr(prop))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrPropsUnsupported, err)
			}
		}
	}

	err = dev.setup(spec)
	if err != nil {
		return err
	}

	err = dev.setupAbsInfos(spec)
	if err != nil {
		return err
	}

	return dev.ioctl(UI_DEV_CREATE, 0)
}

func (dev *Device) setup(spec Spec) error {
	var setup Setup

	setup.ID = spec.ID
	copy(setup.Name[:], truncateName(spec.Name))

	err := ioctl.Any(dev.file.Fd(), UI_DEV_SETUP, &setup)
	if err != nil {
		if len(spec.Props) > 0 {
			return fmt.Errorf("%w: %v", ErrPropsUnsupported, err)
		}

		return fmt.Errorf("uinput.Create: UI_DEV_SETUP: %w", err)
	}

	return nil
}

func (dev *Device) setupAbsInfos(spec Spec) error {
	codes, ok := spec.Capabilities[0x03] // EV_ABS
	if !ok {
		return nil
	}

	for _, code := range codes {
		if code.Abs == nil {
			continue
		}

		var absSetup AbsSetup

		absSetup.Code = uint16(code.Code)
		absSetup.Abs = AbsInfo{
			Minimum:    code.Abs.Min,
			Maximum:    code.Abs.Max,
			Fuzz:       code.Abs.Fuzz,
			Flat:       code.Abs.Flat,
			Resolution: code.Abs.Resolution,
		}

		if err := ioctl.Any(dev.file.Fd(), UI_ABS_SETUP, &absSetup); err != nil {
			return fmt.Errorf("uinput.Create: UI_ABS_SETUP %d: %w", code.Code, err)
		}
	}

	return nil
}

// truncateName truncates name so that "ev-remapper " + name fits within
// MaxNameSize-1 bytes (leaving room for the NUL terminator), matching
// spec.md's SyntheticDevice name invariant.
func truncateName(name string) string {
	const prefix = "ev-remapper "

	budget := MaxNameSize - 1 - len(prefix)
	if budget < 0 {
		budget = 0
	}

	b := []byte(name)
	if len(b) > budget {
		b = b[:budget]
	}

	return prefix + string(b)
}

// ioctl issues a uinput request whose argument is an immediate value
// (UI_SET_EVBIT, UI_SET_KEYBIT, ..., UI_DEV_CREATE, UI_DEV_DESTROY), not a
// pointer to a struct.
func (dev *Device) ioctl(req uint, arg uintptr) error {
	var errno syscall.Errno

	_, _, errno = unix.Syscall(unix.SYS_IOCTL, dev.file.Fd(), uintptr(req), arg)
	if errno != 0 {
		return errno
	}

	return nil
}

// Write emits one event to the synthetic device.
func (dev *Device) Write(event evremapper.RawEvent) error {
	var (
		buf bytes.Buffer
		raw struct {
			Sec, Usec uint64
			Type      uint16
			Code      uint16
			Value     int32
		}
	)

	raw.Sec = uint64(event.Sec)
	raw.Usec = uint64(event.Usec)
	raw.Type = uint16(event.Type)
	raw.Code = uint16(event.Code)
	raw.Value = event.Value

	if err := binary.Write(&buf, binary.LittleEndian, raw); err != nil {
		return fmt.Errorf("uinput.Write: %w", err)
	}

	if _, err := dev.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("uinput.Write: %w", err)
	}

	return nil
}

// Close destroys the synthetic device and releases the file descriptor.
func (dev *Device) Close() error {
	dev.ioctl(UI_DEV_DESTROY, 0)

	if err := dev.file.Close(); err != nil {
		return fmt.Errorf("uinput.Close: %w", err)
	}

	return nil
}
