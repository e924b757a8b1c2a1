//go:build linux

// Package i2cdev provides userspace access to I2C adapters exposed by the
// Linux kernel as /dev/i2c-N character devices.
//
// The core primitive is Transfer, which executes an ordered batch of read
// and write message segments against one device address as a single atomic
// bus transaction (the kernel's I2C_RDWR ioctl). Higher-level helpers (Dev,
// Register, PeriphBus) are thin compositions over Transfer and never issue
// more than one transaction per call.
//
// A Bus does not serialize concurrent Transfer calls; callers that share
// one Bus across goroutines must hold their own lock around it. Distinct
// Bus values, even for the same device path, are independent.
package i2cdev

import "context"

// Transferer executes batched transactions against one I2C adapter. It is
// implemented by *Bus and by test fakes such as inject.Bus.
type Transferer interface {
	// Transfer executes msgs in order as one atomic transaction addressed
	// to addr. On success, each read message's Data is overwritten in place
	// with the bytes returned by the device.
	Transfer(ctx context.Context, addr uint16, msgs []*Message) error
}
