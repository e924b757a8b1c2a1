//go:build linux

package i2cdev

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for argument validation. Transfer returns these (possibly
// wrapped with detail) before any buffer is allocated or syscall issued, so
// a malformed call never touches the kernel.
var (
	// ErrClosed is returned by operations on a closed Bus.
	ErrClosed = errors.New("i2c bus is closed")

	// ErrNoMessages is returned by Transfer when the message list is empty.
	ErrNoMessages = errors.New("transfer requires at least one message")

	// ErrNilMessage is returned by Transfer when the message list contains
	// a nil entry.
	ErrNilMessage = errors.New("transfer message is nil")

	// ErrTooManyMessages is returned when a batch exceeds the kernel's
	// per-transaction message cap.
	ErrTooManyMessages = errors.New("too many messages in one transfer")

	// ErrMessageTooLong is returned when a payload does not fit the
	// kernel's 16-bit length field.
	ErrMessageTooLong = errors.New("message payload exceeds 65535 bytes")

	// ErrBadRecvLen is returned when FlagRecvLen is set on a message that
	// is not a read or whose buffer is empty.
	ErrBadRecvLen = errors.New("recv-len flag requires a non-empty read buffer")
)

// An OpenError reports that the device node could not be opened. Err is the
// originating OS error.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening I2C device %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// A CapabilityError reports that the adapter functionality query failed.
type CapabilityError struct {
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("querying I2C adapter functionality: %v", e.Err)
}

func (e *CapabilityError) Unwrap() error { return e.Err }

// An UnsupportedError reports that the device opened successfully but its
// driver does not support plain I2C transactions. The device is closed
// before this error is returned.
type UnsupportedError struct {
	Path string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("I2C transactions not supported on device %q", e.Path)
}

// A CloseError reports that releasing the descriptor failed. The handle is
// still considered closed; the kernel consumes the descriptor regardless of
// the reported error.
type CloseError struct {
	Err error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("closing I2C device: %v", e.Err)
}

func (e *CloseError) Unwrap() error { return e.Err }

// A TransferError reports that the transfer ioctl itself failed. Write
// payloads are left untouched; read payload contents are undefined.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("I2C transfer: %v", e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
