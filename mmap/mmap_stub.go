//go:build !unix

package mmap

import (
	"errors"
	"os"
)

func mapFile(f *os.File, size int64) ([]byte, error) {
	return nil, errors.ErrUnsupported
}

func unmapFile(b []byte) error {
	return errors.ErrUnsupported
}
