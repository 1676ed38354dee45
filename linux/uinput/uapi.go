//go:build linux

package uinput

import "github.com/evremapper/evremapper/linux/ioctl"

// UINPUT_IOCTL_BASE is the ioctl type character used by every uinput
// request code, matching <linux/uinput.h>.
const UINPUT_IOCTL_BASE = 'U'

// MaxNameSize is the fixed length of the Name field in [Setup] and the
// legacy uinput_user_dev struct.
const MaxNameSize = 80

// ID mirrors struct input_id: bustype/vendor/product/version.
type ID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// AbsInfo mirrors struct input_absinfo.
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// Setup mirrors struct uinput_setup, used by [UI_DEV_SETUP].
type Setup struct {
	ID           ID
	Name         [MaxNameSize]byte
	FFEffectsMax uint32
}

// AbsSetup mirrors struct uinput_abs_setup, used by [UI_ABS_SETUP].
type AbsSetup struct {
	Code uint16
	Abs  AbsInfo
}

var (
	// UI_SET_EVBIT registers one supported event type on the device being
	// configured.
	UI_SET_EVBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 100, int32(0))

	// UI_SET_KEYBIT registers one supported EV_KEY code.
	UI_SET_KEYBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 101, int32(0))

	// UI_SET_RELBIT registers one supported EV_REL code.
	UI_SET_RELBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 102, int32(0))

	// UI_SET_ABSBIT registers one supported EV_ABS code.
	UI_SET_ABSBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 103, int32(0))

	// UI_SET_MSCBIT registers one supported EV_MSC code.
	UI_SET_MSCBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 104, int32(0))

	// UI_SET_LEDBIT registers one supported EV_LED code.
	UI_SET_LEDBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 105, int32(0))

	// UI_SET_SNDBIT registers one supported EV_SND code.
	UI_SET_SNDBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 106, int32(0))

	// UI_SET_SWBIT registers one supported EV_SW code.
	UI_SET_SWBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 109, int32(0))

	// UI_SET_PROPBIT registers one supported INPUT_PROP_* bit.
	UI_SET_PROPBIT = ioctl.IOW(UINPUT_IOCTL_BASE, 110, int32(0))

	// UI_DEV_SETUP configures identity and name in one call (kernel >= 4.5).
	UI_DEV_SETUP = ioctl.IOW(UINPUT_IOCTL_BASE, 3, Setup{})

	// UI_ABS_SETUP configures one EV_ABS code's absinfo (kernel >= 4.5).
	UI_ABS_SETUP = ioctl.IOW(UINPUT_IOCTL_BASE, 4, AbsSetup{})

	// UI_GET_SYSNAME reads the sysfs device name assigned to the created
	// device, e.g. "input23".
	UI_GET_SYSNAME = func(length uint) uint {
		return ioctl.IOC(ioctl.IOC_READ, UINPUT_IOCTL_BASE, 44, length)
	}
)

// UI_DEV_CREATE instantiates the configured device.
var UI_DEV_CREATE = ioctl.IO(UINPUT_IOCTL_BASE, 1)

// UI_DEV_DESTROY tears down a created device.
var UI_DEV_DESTROY = ioctl.IO(UINPUT_IOCTL_BASE, 2)

// eventBit maps an event type to the UI_SET_<type>BIT request used to
// register codes of that type, mirroring the eventTypeIoctls table found
// in uinput virtual-device helpers throughout the ecosystem.
func eventBit(eventType int) (uint, bool) {
	switch eventType {
	case 0x01: // EV_KEY
		return UI_SET_KEYBIT, true
	case 0x02: // EV_REL
		return UI_SET_RELBIT, true
	case 0x03: // EV_ABS
		return UI_SET_ABSBIT, true
	case 0x04: // EV_MSC
		return UI_SET_MSCBIT, true
	case 0x11: // EV_LED
		return UI_SET_LEDBIT, true
	case 0x12: // EV_SND
		return UI_SET_SNDBIT, true
	case 0x05: // EV_SW
		return UI_SET_SWBIT, true
	default:
		return 0, false
	}
}
