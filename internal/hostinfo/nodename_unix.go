//go:build linux || darwin || freebsd || netbsd || openbsd

package hostinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func nodename() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("hostinfo: uname: %w", err)
	}
	return unix.ByteSliceToString(uts.Nodename[:]), nil
}
