//go:build linux

package i2cdev

// A Message is one segment of an I2C transaction: either a write of Data to
// the device or a read of len(Data) bytes from it. An ordered slice of
// Messages passed to Transfer is executed back-to-back without releasing
// the bus in between.
type Message struct {
	// Data is the payload. For a write it holds the bytes to send; for a
	// read it is a pre-sized buffer whose contents are replaced with the
	// bytes returned by the device. Its length must fit in the kernel's
	// 16-bit length field. A zero-length write is a valid probe message.
	Data []byte

	// Read is the direction of this segment.
	Read bool

	// Flags holds protocol modifier bits (FlagTenBitAddr, FlagNoStart,
	// FlagIgnoreNAK, ...) ORed on top of the direction bit, which is
	// managed by the engine from Read. FlagRecvLen is only valid on a
	// read message with a non-empty buffer, and the kernel additionally
	// requires Data[0] to seed a count of at least 1 with the buffer
	// sized for the driver's maximum block on top of it; the driver
	// reports the byte count it actually read back in Data[0].
	Flags uint16
}

// NewWrite returns a write message carrying data.
func NewWrite(data []byte) *Message {
	return &Message{Data: data}
}

// NewRead returns a read message for count bytes.
func NewRead(count int) *Message {
	return &Message{Data: make([]byte, count), Read: true}
}
