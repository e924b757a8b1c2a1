//go:build linux

// Package inject provides dependency-injected fakes of the i2cdev
// interfaces: each injected function is used when set, otherwise the call
// falls through to the embedded real implementation.
package inject

import (
	"context"

	"go.viam.com/i2cdev"
)

// Bus is an injected i2cdev bus.
type Bus struct {
	i2cdev.Transferer
	TransferFunc func(ctx context.Context, addr uint16, msgs []*i2cdev.Message) error
	CloseFunc    func() error
}

// Transfer calls the injected Transfer or the real version.
func (b *Bus) Transfer(ctx context.Context, addr uint16, msgs []*i2cdev.Message) error {
	if b.TransferFunc == nil {
		return b.Transferer.Transfer(ctx, addr, msgs)
	}
	return b.TransferFunc(ctx, addr, msgs)
}

// Close calls the injected Close or does nothing.
func (b *Bus) Close() error {
	if b.CloseFunc == nil {
		return nil
	}
	return b.CloseFunc()
}
