// Package source provides text sources for suffix datasets.
//
// A [Source] yields the full dataset text in one shot. Reading is
// not retried: a failure is terminal for that load attempt.
package source

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable indicates that the dataset text could not be
	// read or fetched.
	ErrUnavailable = errors.New("suffix dataset unavailable")

	// ErrEncoding indicates that the dataset bytes are not valid UTF-8.
	ErrEncoding = errors.New("suffix dataset is not valid UTF-8")
)

// Source yields the full text of a suffix dataset.
type Source interface {
	// String returns a human-readable description of the source.
	String() string

	// ReadText returns the full dataset text.
	//
	// Errors wrap [ErrUnavailable] when the source cannot be read,
	// and [ErrEncoding] when the bytes are not valid text.
	ReadText(ctx context.Context) (string, error)
}
