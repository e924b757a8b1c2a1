//go:build linux

package i2cdev_test

import (
	"context"
	"testing"

	"go.viam.com/test"
	"periph.io/x/conn/v3/physic"

	"go.viam.com/i2cdev"
	"go.viam.com/i2cdev/inject"
)

func TestPeriphBusTx(t *testing.T) {
	rec := &capture{}
	bus := i2cdev.NewPeriphBus(&inject.Bus{
		TransferFunc: func(ctx context.Context, addr uint16, msgs []*i2cdev.Message) error {
			rec.addrs = append(rec.addrs, addr)
			rec.batches = append(rec.batches, msgs)
			for _, m := range msgs {
				if m.Read {
					for i := range m.Data {
						m.Data[i] = 0x5A
					}
				}
			}
			return nil
		},
	}, "/dev/i2c-2")

	t.Run("write then read is one transaction", func(t *testing.T) {
		r := make([]byte, 2)
		test.That(t, bus.Tx(0x40, []byte{0x01}, r), test.ShouldBeNil)
		batch := rec.batches[len(rec.batches)-1]
		test.That(t, len(batch), test.ShouldEqual, 2)
		test.That(t, batch[0].Read, test.ShouldBeFalse)
		test.That(t, batch[0].Data, test.ShouldResemble, []byte{0x01})
		test.That(t, batch[1].Read, test.ShouldBeTrue)
		test.That(t, r, test.ShouldResemble, []byte{0x5A, 0x5A})
	})

	t.Run("write only", func(t *testing.T) {
		test.That(t, bus.Tx(0x40, []byte{0x02, 0x03}, nil), test.ShouldBeNil)
		batch := rec.batches[len(rec.batches)-1]
		test.That(t, len(batch), test.ShouldEqual, 1)
		test.That(t, batch[0].Read, test.ShouldBeFalse)
	})

	t.Run("read only", func(t *testing.T) {
		r := make([]byte, 1)
		test.That(t, bus.Tx(0x40, nil, r), test.ShouldBeNil)
		batch := rec.batches[len(rec.batches)-1]
		test.That(t, len(batch), test.ShouldEqual, 1)
		test.That(t, batch[0].Read, test.ShouldBeTrue)
	})

	t.Run("empty tx is a probe write", func(t *testing.T) {
		test.That(t, bus.Tx(0x40, nil, nil), test.ShouldBeNil)
		batch := rec.batches[len(rec.batches)-1]
		test.That(t, len(batch), test.ShouldEqual, 1)
		test.That(t, batch[0].Read, test.ShouldBeFalse)
		test.That(t, len(batch[0].Data), test.ShouldEqual, 0)
	})

	t.Run("ten bit addresses are flagged", func(t *testing.T) {
		r := make([]byte, 1)
		test.That(t, bus.Tx(0x3AB, []byte{0x01}, r), test.ShouldBeNil)
		test.That(t, rec.addrs[len(rec.addrs)-1], test.ShouldEqual, uint16(0x3AB))
		batch := rec.batches[len(rec.batches)-1]
		for _, m := range batch {
			test.That(t, m.Flags&i2cdev.FlagTenBitAddr, test.ShouldEqual, i2cdev.FlagTenBitAddr)
		}
	})
}

func TestPeriphBusSetSpeed(t *testing.T) {
	bus := i2cdev.NewPeriphBus(&inject.Bus{}, "/dev/i2c-2")
	test.That(t, bus.SetSpeed(100*physic.KiloHertz), test.ShouldNotBeNil)
	test.That(t, bus.String(), test.ShouldEqual, "/dev/i2c-2")
}
