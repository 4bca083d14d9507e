//go:build !unix

package mapfile

import (
	"errors"
	"os"
)

var errNoMmap = errors.New("mapfile: memory mapping not supported")

// mmap always fails so Open falls back to reading the file.
func mmap(*os.File, int64) ([]byte, error) {
	return nil, errNoMmap
}

func munmap([]byte) error {
	return nil
}
