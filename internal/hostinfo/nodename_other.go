//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package hostinfo

import (
	"fmt"
	"os"
)

func nodename() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostinfo: hostname: %w", err)
	}
	return name, nil
}
