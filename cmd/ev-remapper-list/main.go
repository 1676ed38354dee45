// Command ev-remapper-list discovers input devices and displays the device
// groups the Manager would assign them: each group's name and key, then each
// member node's path, name and device class. It does not print bus, vendor
// or product identity or capability lists, and it grabs or remaps nothing.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/internal/groups"
)

func exitIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "ev-remapper-list:", err)
		os.Exit(1)
	}
}

func main() {
	var (
		groupList []evremapper.DeviceGroup
		group     evremapper.DeviceGroup
		builder   strings.Builder
		err       error
	)

	groupList, err = groups.Refresh()
	exitIf(err)

	for _, group = range groupList {
		var i int

		builder.WriteString(fmt.Sprintf("Group: %s (key %s)\n", group.Name, group.Key))

		for i = range group.Paths {
			builder.WriteString(fmt.Sprintf(
				"  %s: %s [%s]\n",
				group.Paths[i],
				group.Names[i],
				group.Types[i],
			))
		}

		builder.WriteString(strings.Repeat("-", 60))
		builder.WriteByte('\n')
	}

	fmt.Print(builder.String())
}
