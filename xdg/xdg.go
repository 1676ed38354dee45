// Package xdg implements the parts of the [XDG Base Directory Specification]
// this module actually consumes: locating the invoking user's home
// directory for the log file fallback path.
//
// [XDG Base Directory Specification]: https://specifications.freedesktop.org/basedir-spec/latest
package xdg

import "os"

// Home returns $HOME, or "/" if it is unset, matching the fallback every
// other helper in the original package used internally.
func Home() string {
	var home string

	home = os.Getenv("HOME")
	if home == "" {
		return "/"
	}

	return home
}
