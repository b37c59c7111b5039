// Package common implements common things used across the code base.
package common

import (
	"fmt"
	"os"
)

// Mkdir creates a directory iff it does not exist, and otherwise ensures
// that the existing path is a directory.
func Mkdir(d string) error {
	const permDir = os.FileMode(0o700)

	fi, err := os.Stat(d)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		return os.MkdirAll(d, permDir)
	default:
		return err
	}

	if !fi.Mode().IsDir() {
		return fmt.Errorf("common/Mkdir: path '%s' is not a directory", d)
	}
	return nil
}
