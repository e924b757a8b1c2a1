//go:build linux

package i2cdev

import "context"

// A Dev binds a Transferer to one device address, giving the usual
// read/write surface for register-style peripherals. Every method issues at
// most one transaction.
type Dev struct {
	Bus  Transferer
	Addr uint16
}

// Write sends tx to the device.
func (d *Dev) Write(ctx context.Context, tx []byte) error {
	return d.Bus.Transfer(ctx, d.Addr, []*Message{NewWrite(tx)})
}

// Read reads count bytes from the device.
func (d *Dev) Read(ctx context.Context, count int) ([]byte, error) {
	msg := NewRead(count)
	if err := d.Bus.Transfer(ctx, d.Addr, []*Message{msg}); err != nil {
		return nil, err
	}
	return msg.Data, nil
}

// Tx writes w then reads into r as a single transaction, with no bus
// release between the two segments. Either slice may be empty, in which
// case that segment is omitted; with both empty it issues a zero-length
// probe write, the idiom for checking whether a device answers at the
// address.
func (d *Dev) Tx(ctx context.Context, w, r []byte) error {
	var msgs []*Message
	if len(w) > 0 {
		msgs = append(msgs, NewWrite(w))
	}
	if len(r) > 0 {
		msgs = append(msgs, &Message{Data: r, Read: true})
	}
	if len(msgs) == 0 {
		msgs = []*Message{NewWrite(nil)}
	}
	return d.Bus.Transfer(ctx, d.Addr, msgs)
}

// ReadRegister reads count bytes from a register: one transaction of a
// register-pointer write followed by the read.
func (d *Dev) ReadRegister(ctx context.Context, reg byte, count int) ([]byte, error) {
	buf := make([]byte, count)
	if err := d.Tx(ctx, []byte{reg}, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteRegister writes data to a register by prefixing it with the register
// address in a single write segment.
func (d *Dev) WriteRegister(ctx context.Context, reg byte, data []byte) error {
	tx := make([]byte, 0, len(data)+1)
	tx = append(tx, reg)
	tx = append(tx, data...)
	return d.Write(ctx, tx)
}

// A Register is a lightweight wrapper around a Dev for one register.
type Register struct {
	Dev *Dev
	Reg byte
}

// Read reads count bytes from the register.
func (r *Register) Read(ctx context.Context, count int) ([]byte, error) {
	return r.Dev.ReadRegister(ctx, r.Reg, count)
}

// Write writes data to the register.
func (r *Register) Write(ctx context.Context, data []byte) error {
	return r.Dev.WriteRegister(ctx, r.Reg, data)
}
