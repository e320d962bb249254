// Package storage provides the string-keyed record device the platform
// persists through. Every record collection is one key holding a JSON
// document; backends only ever see opaque strings.
package storage

import (
	"context"
	"fmt"
)

// Operation names reported by DeviceError and the device metrics.
const (
	OpGet    = "get"
	OpSet    = "set"
	OpDelete = "delete"
)

// Device is a string-keyed value store. Get reports found=false for a
// missing key without an error; errors are reserved for backend faults.
type Device interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// DeviceError wraps a backend fault with the operation and key it hit.
type DeviceError struct {
	Op  string
	Key string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// DeviceOp reports the failing operation and key for error dumps.
func (e *DeviceError) DeviceOp() (string, string) {
	return e.Op, e.Key
}

func wrapErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &DeviceError{Op: op, Key: key, Err: err}
}
