// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMagicBytes      = errors.New("invalid magic bytes")
	ErrUnsupportedVersion     = errors.New("unsupported version")
	ErrInvalidMetadata        = errors.New("invalid metadata")
	ErrSpatialChannelMismatch = fmt.Errorf("%w: spatial data length does not match channel count", ErrInvalidMetadata)
)

// UnsupportedVersionError carries the version number found in a header
// this package cannot decode.
type UnsupportedVersionError struct {
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported version: %d", e.Version)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// IOError wraps a failure of the underlying stream or file: short reads,
// failed writes, missing files, permissions.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}
