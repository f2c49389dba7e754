// Package hostinfo resolves identity information about the local machine.
package hostinfo

import (
	"errors"
	"strings"
)

// ShortHostname returns the node name of the current machine truncated at
// the first dot, like hostname -s.
func ShortHostname() (string, error) {
	name, err := nodename()
	if err != nil {
		return "", err
	}
	return shorten(name)
}

func shorten(name string) (string, error) {
	short, _, _ := strings.Cut(strings.TrimSpace(name), ".")
	if short == "" {
		return "", errors.New("hostinfo: empty host name")
	}
	return short, nil
}
