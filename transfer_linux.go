package i2cdev

import (
	"context"
	"math"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

var _ Transferer = (*Bus)(nil)

// Transfer executes msgs in order as one atomic transaction addressed to
// addr. Every message in the batch shares the single addr argument;
// mixed-address batches are not supported. The call issues exactly one
// I2C_RDWR ioctl and blocks until the driver completes or fails the whole
// batch.
//
// On success, each read message's Data is overwritten in place with the
// bytes the device returned, at the originally requested length. For a
// FlagRecvLen read the caller's Data is also sent to the kernel as the
// seed (Data[0] must be at least 1, see Message.Flags), and the driver
// reports the count it actually read back in Data[0]. Write messages'
// Data is never modified, including on failure.
// The engine works on its own copies of the payloads, so no caller buffer
// is handed to the kernel and no engine buffer outlives the call.
//
// ctx is accepted for interface symmetry; the underlying ioctl is not
// cancellable.
func (b *Bus) Transfer(ctx context.Context, addr uint16, msgs []*Message) error {
	if b.closed {
		return ErrClosed
	}
	if err := validateMessages(msgs); err != nil {
		return err
	}

	// Engine-owned buffers: copies of write payloads, zeroed scratch for
	// plain reads. A recv-len read keeps the caller's payload too: the
	// kernel rejects the message unless its first byte seeds a count of at
	// least one. recs holds pointers into bufs, which keeps them live for
	// the duration of the ioctl.
	bufs := make([][]byte, len(msgs))
	recs := make([]i2cMsg, len(msgs))
	for i, m := range msgs {
		buf := make([]byte, len(m.Data))
		if !m.Read || m.Flags&FlagRecvLen != 0 {
			copy(buf, m.Data)
		}
		bufs[i] = buf

		rec := i2cMsg{
			addr:   addr,
			flags:  m.Flags,
			length: uint16(len(m.Data)),
		}
		if m.Read {
			rec.flags |= flagRead
		}
		if len(buf) > 0 {
			rec.buf = unsafe.Pointer(&buf[0])
		}
		recs[i] = rec
	}

	req := i2cRdwrData{
		msgs:  unsafe.Pointer(&recs[0]),
		nmsgs: uint32(len(recs)),
	}
	err := b.ioctl(b.fd, i2cRdwr, unsafe.Pointer(&req))
	runtime.KeepAlive(recs)
	runtime.KeepAlive(bufs)
	if err != nil {
		return &TransferError{Err: err}
	}

	for i, m := range msgs {
		if m.Read {
			copy(m.Data, bufs[i])
		}
	}
	return nil
}

func validateMessages(msgs []*Message) error {
	if len(msgs) == 0 {
		return ErrNoMessages
	}
	if len(msgs) > rdwrMaxMsgs {
		return errors.Wrapf(ErrTooManyMessages, "%d messages, kernel cap is %d",
			len(msgs), rdwrMaxMsgs)
	}
	for i, m := range msgs {
		if m == nil {
			return errors.Wrapf(ErrNilMessage, "message %d", i)
		}
		if len(m.Data) > math.MaxUint16 {
			return errors.Wrapf(ErrMessageTooLong, "message %d is %d bytes", i, len(m.Data))
		}
		if m.Flags&FlagRecvLen != 0 && (!m.Read || len(m.Data) == 0) {
			return errors.Wrapf(ErrBadRecvLen, "message %d", i)
		}
	}
	return nil
}
