//go:build linux

package input

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/ioctl"
	"golang.org/x/sys/unix"
)

// eventSize is the on-the-wire size of a kernel input_event on a 64-bit
// system: two uint64 timestamp fields, two uint16 fields, one int32 value.
const eventSize = 24

// Device represents an evdev input device.
// It wraps the opened /dev/input/eventN file.
type Device struct {
	file *os.File
	fd   uintptr
}

var _ evremapper.InputDevice = (*Device)(nil)

// NewDevice opens the evdev device at the given path read-write and returns
// a Device. Read-write access is required later for [Device.Grab]; callers
// that only enumerate devices may use [NewDeviceReadOnly] instead. The
// caller is responsible for closing the device when no longer needed.
func NewDevice(path string) (*Device, error) {
	return newDevice(path, os.O_RDWR)
}

// NewDeviceReadOnly opens the evdev device at the given path read-only.
// It is sufficient for the Device Enumerator, which only queries identity
// and capabilities and never grabs.
func NewDeviceReadOnly(path string) (*Device, error) {
	return newDevice(path, os.O_RDONLY)
}

func newDevice(path string, flag int) (*Device, error) {
	var (
		device *Device
		file   *os.File
		err    error
	)

	file, err = os.OpenFile(filepath.Clean(path), flag, 0)
	if err != nil {
		return nil, fmt.Errorf("input.NewDevice: %w", err)
	}

	device = &Device{
		file: file,
		fd:   file.Fd(),
	}

	return device, nil
}

// Devices scans /dev/input for event devices, opens each one read-only, and
// returns a slice of Device pointers. If any device fails to open,
// an error is returned and no devices are returned.
func Devices() ([]*Device, error) {
	var (
		devices []*Device
		device  *Device
		paths   []string
		path    string
		err     error
	)

	paths, err = filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("input.Devices: %w", err)
	}

	devices = make([]*Device, 0, len(paths))
	for _, path = range paths {
		device, err = NewDeviceReadOnly(path)
		if err != nil {
			return nil, fmt.Errorf("input.Devices: %w", err)
		}

		devices = append(devices, device)
	}

	return devices, nil
}

// Path returns the device node path this Device was opened from.
func (dev *Device) Path() string {
	return dev.file.Name()
}

// Fd returns the device's raw file descriptor.
func (dev *Device) Fd() uintptr {
	return dev.fd
}

// Name returns the human-readable name of the evdev device.
// It sends the [EVIOCGNAME] ioctl to read up to 256 bytes and
// converts the null-terminated result into a Go string.
func (dev *Device) Name() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = ioctl.Any(dev.fd, EVIOCGNAME(256), &buf[0])
	if err != nil {
		return "", fmt.Errorf("Device.Name: %w", err)
	}

	return unix.ByteSliceToString(buf), nil
}

// Phys returns the device's physical topology string, as reported by the
// [EVIOCGPHYS] ioctl (e.g. "usb-0000:00:14.0-1/input0").
func (dev *Device) Phys() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = ioctl.Any(dev.fd, EVIOCGPHYS(256), &buf[0])
	if err != nil {
		return "", fmt.Errorf("Device.Phys: %w", err)
	}

	return unix.ByteSliceToString(buf), nil
}

// InputID returns the device's raw bus/vendor/product/version identity.
func (dev *Device) InputID() (ID, error) {
	var (
		id  ID
		err error
	)

	err = ioctl.Any(dev.fd, EVIOCGID, &id)
	if err != nil {
		return ID{}, fmt.Errorf("Device.InputID: %w", err)
	}

	return id, nil
}

// ID returns the platform-specific identifier for this evdev device.
// It issues the EVIOCGID ioctl to fetch the bus, vendor, product, and version fields.
// The result is formatted as:
// "bus 0x<bustype> vendor 0x<vendor> product 0x<product> version 0x<version>".
// e.g. "bus 0x3 vendor 0x46d product 0xc24f version 0x111".
func (dev *Device) ID() (string, error) {
	var (
		id  ID
		err error
	)

	id, err = dev.InputID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"bus 0x%x vendor 0x%x product 0x%x version 0x%x",
		id.Bustype,
		id.Vendor,
		id.Product,
		id.Version,
	), nil
}

// Events returns a slice of the supported event types for the device.
// EV_REP is left out even when the device reports it.
func (dev *Device) Events() ([]evremapper.InputEvent, error) {
	var (
		buf       []byte
		events    []evremapper.InputEvent
		eventType evremapper.InputEvent
		err       error
	)

	buf = make([]byte, (EV_MAX+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(0, uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Events: %w", err)
	}

	events = make([]evremapper.InputEvent, 0, EV_CNT)

	for eventType = range EV_CNT {
		if !TestBit(buf, uint(eventType)) {
			continue
		}

		if eventType == EV_REP {
			continue
		}

		events = append(events, eventType)
	}

	return events, nil
}

// Codes returns all supported [evremapper.InputCode] values for the given
// eventType.
func (dev *Device) Codes(eventType evremapper.InputEvent) ([]evremapper.InputCode, error) {
	var (
		buf            []byte
		codes          []evremapper.InputCode
		maxCodes, code uint
		ok             bool
		err            error
	)

	maxCodes, ok = MaxCodes(eventType)
	if !ok {
		return nil, fmt.Errorf("Device.Codes: %w %d", ErrInvalidEventType, eventType)
	}

	buf = make([]byte, (maxCodes+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(uint(eventType), uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Codes: %w", err)
	}

	codes = make([]evremapper.InputCode, 0, maxCodes+1)

	for code = range maxCodes + 1 {
		if !TestBit(buf, code) {
			continue
		}

		codes = append(codes, evremapper.InputCode(code))
	}

	return codes, nil
}

// AbsInfo reads the absinfo parameters for one EV_ABS code via [EVIOCGABS].
func (dev *Device) AbsInfo(code evremapper.InputCode) (evremapper.AbsInfo, error) {
	var (
		info AbsInfo
		err  error
	)

	err = ioctl.Any(dev.fd, EVIOCGABS(uint(code)), &info)
	if err != nil {
		return evremapper.AbsInfo{}, fmt.Errorf("Device.AbsInfo: %w", err)
	}

	return evremapper.AbsInfo{
		Min:        info.Minimum,
		Max:        info.Maximum,
		Fuzz:       info.Fuzz,
		Flat:       info.Flat,
		Resolution: info.Resolution,
	}, nil
}

// Capabilities reads the device's full capability set: every supported
// event type with its supported codes, and absinfo for every EV_ABS code.
func (dev *Device) Capabilities() (evremapper.CapabilitySet, error) {
	var (
		caps   evremapper.CapabilitySet
		events []evremapper.InputEvent
		event  evremapper.InputEvent
		err    error
	)

	events, err = dev.Events()
	if err != nil {
		return nil, fmt.Errorf("Device.Capabilities: %w", err)
	}

	caps = make(evremapper.CapabilitySet, len(events))

	for _, event = range events {
		var (
			codes    []evremapper.InputCode
			code     evremapper.InputCode
			capCodes []evremapper.CapCode
		)

		codes, err = dev.Codes(event)
		if err != nil {
			return nil, fmt.Errorf("Device.Capabilities: %w", err)
		}

		capCodes = make([]evremapper.CapCode, 0, len(codes))

		for _, code = range codes {
			var capCode evremapper.CapCode

			capCode.Code = code

			if event == EV_ABS {
				var (
					abs    evremapper.AbsInfo
					absErr error
				)

				abs, absErr = dev.AbsInfo(code)
				if absErr == nil {
					capCode.Abs = &abs
				}
			}

			capCodes = append(capCodes, capCode)
		}

		caps[event] = capCodes
	}

	return caps, nil
}

// Properties returns the device's INPUT_PROP_* property bits via
// [EVIOCGPROP].
func (dev *Device) Properties() ([]int, error) {
	var (
		buf   []byte
		props []int
		err   error
	)

	buf = make([]byte, (INPUT_PROP_MAX+7)/8)

	err = ioctl.Any(dev.fd, EVIOCGPROP(uint(len(buf))), &buf[0])
	if err != nil {
		return nil, fmt.Errorf("Device.Properties: %w", err)
	}

	props = make([]int, 0, INPUT_PROP_CNT)

	for prop := range INPUT_PROP_CNT {
		if TestBit(buf, uint(prop)) {
			props = append(props, prop)
		}
	}

	return props, nil
}

// Grab exclusively claims the device via [EVIOCGRAB]. While grabbed, the
// kernel stops delivering this device's events to any other consumer.
func (dev *Device) Grab() error {
	var (
		arg int = 1
		err error
	)

	err = ioctl.Any(dev.fd, EVIOCGRAB(), &arg)
	if err != nil {
		return fmt.Errorf("Device.Grab: %w", err)
	}

	return nil
}

// Release gives up a previously acquired exclusive grab.
func (dev *Device) Release() error {
	var err error

	err = ioctl.Any[int](dev.fd, EVIOCGRAB(), nil)
	if err != nil {
		return fmt.Errorf("Device.Release: %w", err)
	}

	return nil
}

// ReadEvent blocks until one input_event is available and returns it.
func (dev *Device) ReadEvent() (evremapper.RawEvent, error) {
	var (
		buf   []byte
		event Event
		err   error
	)

	buf = make([]byte, eventSize)

	_, err = dev.file.Read(buf)
	if err != nil {
		return evremapper.RawEvent{}, err
	}

	err = binary.Read(bytes.NewReader(buf), binary.LittleEndian, &event)
	if err != nil {
		return evremapper.RawEvent{}, fmt.Errorf("Device.ReadEvent: %w", err)
	}

	return evremapper.RawEvent{
		Sec:   int64(event.Sec),
		Usec:  int64(event.Usec),
		Type:  evremapper.InputEvent(event.Type),
		Code:  evremapper.InputCode(event.Code),
		Value: event.Value,
	}, nil
}

// Close closes the evdev device by closing its underlying file handle.
func (dev *Device) Close() error {
	var err error

	err = dev.file.Close()
	if err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}
