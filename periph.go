//go:build linux

package i2cdev

import (
	"context"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

var _ i2c.Bus = (*PeriphBus)(nil)

// A PeriphBus adapts a Transferer to periph.io's i2c.Bus interface so that
// the large ecosystem of periph device drivers can run on top of this
// package's transfer engine.
type PeriphBus struct {
	bus  Transferer
	name string
}

// NewPeriphBus wraps bus as a periph.io i2c.Bus. name is only used by
// String; passing the device path is conventional.
func NewPeriphBus(bus Transferer, name string) *PeriphBus {
	return &PeriphBus{bus: bus, name: name}
}

func (p *PeriphBus) String() string { return p.name }

// Tx writes w then reads into r as one transaction, per the i2c.Bus
// contract. With both slices empty it issues a zero-length write, the probe
// used for device detection. Addresses above 0x7F are sent in ten-bit mode.
func (p *PeriphBus) Tx(addr uint16, w, r []byte) error {
	var flags uint16
	if addr > 0x7F {
		flags = FlagTenBitAddr
	}

	var msgs []*Message
	if len(w) > 0 {
		msgs = append(msgs, &Message{Data: w, Flags: flags})
	}
	if len(r) > 0 {
		msgs = append(msgs, &Message{Data: r, Read: true, Flags: flags})
	}
	if len(msgs) == 0 {
		msgs = []*Message{{Flags: flags}}
	}
	return p.bus.Transfer(context.Background(), addr, msgs)
}

// SetSpeed always fails: i2c-dev exposes no clock control, the adapter's
// bus speed is fixed by the kernel driver.
func (p *PeriphBus) SetSpeed(f physic.Frequency) error {
	return errors.Errorf("cannot set I2C bus speed to %s: not supported by i2c-dev", f)
}
