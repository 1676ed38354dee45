// Package evremapper defines the platform-independent input device
// abstraction that the linux subpackages implement, plus the domain model
// for the injection engine built on top of it.
package evremapper

// InputEvent identifies a kernel event type (EV_KEY, EV_REL, EV_ABS, ...).
type InputEvent uint16

// InputCode identifies a code within an event type (e.g. a KEY_* or BTN_*
// value when InputEvent is EV_KEY).
type InputCode uint16

// InputDevice is implemented by platform-specific device handles. Linux's
// implementation lives in linux/input.
type InputDevice interface {
	// ID returns a platform-specific identity string for the device.
	ID() (string, error)

	// Name returns the device's human-readable name.
	Name() (string, error)

	// Events returns the event types the device supports.
	Events() ([]InputEvent, error)

	// Codes returns the codes the device supports for the given event type.
	Codes(event InputEvent) ([]InputCode, error)

	// Close releases the underlying device handle.
	Close() error
}

// Device represents a physical or virtual input device.
type Device struct {
	// Name is the human-readable name (e.g. "Xbox Controller",
	// "Logitech Dual Action").
	Name string

	// ID is a platform-specific identifier: on Linux it might be
	// "/dev/input/event5", on Windows it could be a GUID string,
	// and on macOS an IOKit registry path.
	ID string

	// Capabilities describes the features this device supports.
	Capabilities Capabilities
}

// Capabilities describes the feature set supported by an input device.
type Capabilities struct {
	// HasAbsoluteAxes reports whether the device provides absolute
	// axis input (EV_ABS).
	HasAbsoluteAxes bool

	// HasButtons reports whether the device provides button or
	// key input (EV_KEY).
	HasButtons bool

	// IsJoystick reports whether the device is considered a joystick or
	// gamepad. It is true when the device has both absolute axes and
	// buttons.
	IsJoystick bool
}
