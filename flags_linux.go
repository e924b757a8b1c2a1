package i2cdev

// Message flag bits, passed through to the driver unchanged. Values are
// from <linux/i2c.h>; golang.org/x/sys/unix does not define the Linux I2C
// constants. Apart from the read bit (managed via Message.Read) their
// semantics belong to the driver, not this package. Several of them only
// work on adapters whose capability bitmask includes CapProtocolMangling.
const (
	FlagTenBitAddr uint16 = 0x0010 // I2C_M_TEN
	FlagRecvLen    uint16 = 0x0400 // I2C_M_RECV_LEN
	FlagNoReadACK  uint16 = 0x0800 // I2C_M_NO_RD_ACK
	FlagIgnoreNAK  uint16 = 0x1000 // I2C_M_IGNORE_NAK
	FlagRevDirAddr uint16 = 0x2000 // I2C_M_REV_DIR_ADDR
	FlagNoStart    uint16 = 0x4000 // I2C_M_NOSTART
	FlagStop       uint16 = 0x8000 // I2C_M_STOP

	flagRead uint16 = 0x0001 // I2C_M_RD
)

// Capability is the adapter functionality bitmask reported by the driver.
// It is word-sized because the kernel reports an unsigned long.
type Capability uintptr

// Capability bits this package and its callers commonly care about, from
// <linux/i2c.h>'s I2C_FUNC_* constants. CapI2C (support for batched
// read/write transactions) is required by Open; the rest are informational
// and pass through from the kernel unchanged.
const (
	CapI2C              Capability = 0x00000001 // I2C_FUNC_I2C
	CapTenBitAddr       Capability = 0x00000002 // I2C_FUNC_10BIT_ADDR
	CapProtocolMangling Capability = 0x00000004 // I2C_FUNC_PROTOCOL_MANGLING
	CapSMBusQuick       Capability = 0x00010000 // I2C_FUNC_SMBUS_QUICK
)

// Supports reports whether every bit in mask is present in c.
func (c Capability) Supports(mask Capability) bool {
	return c&mask == mask
}
